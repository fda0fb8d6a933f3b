// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/TheOfficialSK/finite-element-structural-analysis-utility/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Domain holds the nodes and bar elements of one structure in addition to the
// assembled global system. The global matrices are mutated during Assemble and
// ApplyEssentialBcs only; they are frozen before solving.
type Domain struct {

	// init: input data and elements
	Str  *inp.Structure // input data
	Rods []*Rod         // bar elements, in element-id order
	Ny   int            // total number of equations == 2 * number of nodes

	// assembled global system
	Kb *la.Triplet // global stiffness matrix (triplet form used during assembly)
	K  *la.Matrix  // [Ny][Ny] dense global stiffness matrix
	F  la.Vector   // [Ny] global force vector
}

// NewDomain builds all elements from the input structure
func NewDomain(str *inp.Structure) (o *Domain, err error) {
	o = new(Domain)
	o.Str = str
	o.Ny = 2 * len(str.Nodes)
	o.Rods = make([]*Rod, len(str.Elems))
	for i, ele := range str.Elems {
		n0 := str.GetNode(ele.N0)
		n1 := str.GetNode(ele.N1)
		if n0 == nil || n1 == nil {
			return nil, chk.Err("element %d references inexistent node: node1=%d node2=%d", ele.Id, ele.N0, ele.N1)
		}
		mat := str.GetMat(ele.Mat)
		if mat == nil {
			return nil, chk.Err("element %d references inexistent material %d", ele.Id, ele.Mat)
		}
		o.Rods[i], err = NewRod(ele, n0, n1, mat)
		if err != nil {
			return nil, err
		}
	}
	return
}

// Assemble accumulates all element stiffness contributions into the global
// stiffness matrix and all loads into the global force vector
func (o *Domain) Assemble() (err error) {

	// stiffness matrix
	o.Kb = new(la.Triplet)
	o.Kb.Init(o.Ny, o.Ny, 16*len(o.Rods))
	for _, rod := range o.Rods {
		rod.AddToKb(o.Kb)
	}
	o.K = o.Kb.ToDense()

	// force vector
	o.F = la.NewVector(o.Ny)
	for _, lod := range o.Str.Loads {
		nod := o.Str.GetNode(lod.Node)
		if nod == nil {
			return chk.Err("load %d references inexistent node %d", lod.Id, lod.Node)
		}
		o.F[2*(nod.Id-1)+lod.Dof] += lod.Value
	}
	return
}

// FixedEqs returns the equation numbers of all constrained DOFs, in ascending order
func (o *Domain) FixedEqs() (eqs []int) {
	for _, nod := range o.Str.Nodes {
		if nod.FixedX() {
			eqs = append(eqs, 2*(nod.Id-1))
		}
		if nod.FixedY() {
			eqs = append(eqs, 2*(nod.Id-1)+1)
		}
	}
	return
}
