// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"testing"

	"github.com/TheOfficialSK/finite-element-structural-analysis-utility/ana"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func Test_fem01(tst *testing.T) {

	/* Cantilever bar under axial end force
	 *
	 *   |
	 *   |  1      E=1000 A=0.5      2    F=2
	 *   |--o========================o-------->
	 *   |          L = 1.5
	 *
	 *   u2x = F L / (E A) = 0.006    sig = F / A = 4
	 */

	//verbose()
	chk.PrintTitle("fem01. cantilever bar. axial end force")

	analysis, err := NewMain("data/bar2.fea", chk.Verbose)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = analysis.Run()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("U = %v\n", analysis.U)

	// displacements
	chk.Array(tst, "U", 1e-15, analysis.U, []float64{0, 0, 0.006, 0})
	ux1, uy1 := analysis.NodeDisp(1)
	ux2, uy2 := analysis.NodeDisp(2)
	chk.Float64(tst, "ux @ node 1", 1e-17, ux1, 0)
	chk.Float64(tst, "uy @ node 1", 1e-17, uy1, 0)
	chk.Float64(tst, "uy @ node 2", 1e-17, uy2, 0)

	// stresses
	chk.IntAssert(len(analysis.Sig), 1)
	sig := analysis.Sig[0]
	chk.IntAssert(sig.Ele, 1)
	chk.Float64(tst, "sy ", 1e-17, sig.Sy, 0)
	chk.Float64(tst, "txy", 1e-17, sig.Txy, 0)

	// comparison with closed-form solution
	sol := ana.AxialBar{E: 1000, A: 0.5, L: 1.5, F: 2}
	sol.CompareSol(tst, ux2, sig.Sx, 1e-14)
}

func Test_fem02(tst *testing.T) {

	/* Two-bar symmetric truss
	 *
	 *               3
	 *               o
	 *             ,'|',          E = 1
	 *       (1) ,'  |  ', (2)    A = 1
	 *         ,'    |    ',
	 *       ,'      v 1.0  ',
	 *    1 o        |        o 2
	 *     ###               ###
	 *      +---1.0--+--1.0---+
	 *
	 *   u3 = (0, -√2)    sig(1) = sig(2) = -1/√2
	 */

	//verbose()
	chk.PrintTitle("fem02. two-bar truss. vertical load at apex")

	analysis, err := NewMain("data/truss3.fea", chk.Verbose)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = analysis.Run()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	io.Pforan("U   = %v\n", analysis.U)
	io.Pforan("sig = %v %v\n", analysis.Sig[0].Sx, analysis.Sig[1].Sx)

	// displacements
	sq2 := 1.4142135623730951
	chk.Array(tst, "U", 1e-14, analysis.U, []float64{0, 0, 0, 0, 0, -sq2})

	// stresses, in element-id order
	chk.IntAssert(len(analysis.Sig), 2)
	chk.IntAssert(analysis.Sig[0].Ele, 1)
	chk.IntAssert(analysis.Sig[1].Ele, 2)
	chk.Float64(tst, "sig(1)", 1e-14, analysis.Sig[0].Sx, -1.0/sq2)
	chk.Float64(tst, "sig(2)", 1e-14, analysis.Sig[1].Sx, -1.0/sq2)
}

func Test_fem03(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem03. superposition: scaled loads scale displacements")

	analysis, err := NewMain("data/truss3.fea", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = analysis.Run()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	// same structure with all loads scaled by c
	c := 2.5
	scaled, err := NewMain("data/truss3.fea", false)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	for _, lod := range scaled.Str.Loads {
		lod.Value *= c
	}
	err = scaled.Run()
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}

	cU := make([]float64, len(analysis.U))
	for i, u := range analysis.U {
		cU[i] = c * u
	}
	chk.Array(tst, "c·U", 1e-13, scaled.U, cU)
}

func Test_fem04(tst *testing.T) {

	/* Unsupported bar: rigid-body modes => singular system
	 *
	 *    1                      2    F=1
	 *    o======================o-------->
	 */

	//verbose()
	chk.PrintTitle("fem04. structure without supports must fail to solve")

	analysis, err := NewMain("data/free2.fea", chk.Verbose)
	if err != nil {
		tst.Errorf("test failed:\n%v", err)
		return
	}
	err = analysis.Run()
	if err == nil {
		tst.Errorf("singular-system error must be non-nil")
		return
	}
	io.Pforan("err = %v\n", err)
}

func Test_fem05(tst *testing.T) {

	//verbose()
	chk.PrintTitle("fem05. degenerate element must abort the analysis")

	_, err := NewMain("data/degen2.fea", chk.Verbose)
	if err == nil {
		tst.Errorf("error due to zero-length element must be non-nil")
		return
	}
	io.Pforan("err = %v\n", err)
}
