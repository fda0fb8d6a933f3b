// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package ana implements closed-form solutions used to verify the numerical results
package ana

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// AxialBar computes the solution of a prismatic bar fixed at one end and
// pulled by an axial force at the free end
//
//          L
//   |--------------|
//   |##            F
//   |##============--->
//   |##
//   fixed        free
//
type AxialBar struct {
	E float64 // Young's modulus
	A float64 // cross-sectional area
	L float64 // bar length
	F float64 // axial force at free end
}

// Displacement returns the axial displacement at distance x from the fixed end
func (o AxialBar) Displacement(x float64) float64 {
	return o.F * x / (o.E * o.A)
}

// Elongation returns the total elongation of the bar
func (o AxialBar) Elongation() float64 {
	return o.Displacement(o.L)
}

// Stress returns the (uniform) axial stress
func (o AxialBar) Stress() float64 {
	return o.F / o.A
}

// CompareSol checks a numerical tip displacement and axial stress against this solution
func (o AxialBar) CompareSol(tst *testing.T, utip, sig, tol float64) {
	chk.AnaNum(tst, "utip", tol, o.Elongation(), utip, chk.Verbose)
	chk.AnaNum(tst, "sig ", tol, o.Stress(), sig, chk.Verbose)
}
