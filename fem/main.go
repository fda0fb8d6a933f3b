// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package fem implements linear static analysis of 2D bar structures
// using the direct stiffness method
package fem

import (
	"github.com/TheOfficialSK/finite-element-structural-analysis-utility/inp"

	"github.com/cpmech/gosl/io"
	"github.com/cpmech/gosl/la"
)

// Main holds all data for one analysis
type Main struct {
	Str     *inp.Structure // input data
	Dom     *Domain        // nodes, elements and global system
	U       la.Vector      // global displacements; 2 per node, node-id order
	Sig     []*Stress      // per-element stresses, element-id order
	ShowMsg bool           // show messages
}

// NewMain reads the structure file and prepares the analysis
//  Input:
//   fnamepath -- structure (.fea) filename including full path
//   verbose   -- show messages
func NewMain(fnamepath string, verbose bool) (o *Main, err error) {
	o = new(Main)
	o.ShowMsg = verbose
	o.Str, err = inp.ReadStructure(fnamepath)
	if err != nil {
		return nil, err
	}
	o.Dom, err = NewDomain(o.Str)
	if err != nil {
		return nil, err
	}
	if o.ShowMsg {
		io.Pf("> Structure file read: %d nodes, %d elements, %d loads\n", len(o.Str.Nodes), len(o.Str.Elems), len(o.Str.Loads))
	}
	return
}

// Run executes assembly, boundary-condition application, solution and
// stress recovery. On error, no partial results are kept.
func (o *Main) Run() (err error) {

	// assemble global system
	if err = o.Dom.Assemble(); err != nil {
		return
	}
	if o.ShowMsg {
		io.Pf("> Global system assembled (%d equations)\n", o.Dom.Ny)
	}

	// boundary conditions
	if err = o.Dom.ApplyEssentialBcs(); err != nil {
		return
	}

	// solution
	o.U, err = SolveLinSys(o.Dom.K, o.Dom.F)
	if err != nil {
		return
	}
	for _, i := range o.Dom.FixedEqs() {
		o.U[i] = 0 // prescribed values are exact
	}

	// stress recovery
	o.Sig = o.Dom.RecoverStresses(o.U)
	if o.ShowMsg {
		io.Pf("> Solution completed\n")
	}
	return
}

// NodeDisp returns the (ux, uy) displacement pair of the node with given id
func (o *Main) NodeDisp(nid int) (ux, uy float64) {
	return o.U[2*(nid-1)], o.U[2*(nid-1)+1]
}
