// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"math"

	"github.com/TheOfficialSK/finite-element-structural-analysis-utility/inp"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"
)

// Rod represents a structural bar element (for axial loads only) with 2 nodes and
// simply implemented with constant stiffness matrix; i.e. no numerical integration is needed
type Rod struct {

	// basic data
	Ele *inp.Element // the element structure
	X   [][]float64  // matrix of nodal coordinates [ndim][nnode]
	Nu  int          // total number of unknowns == 2 * 2

	// parameters and properties
	E float64 // Young's modulus
	A float64 // cross-sectional area
	L float64 // length of rod

	// vectors and matrices
	T [][]float64 // [2][nu] transformation matrix: global system => rod-aligned system
	K [][]float64 // [nu][nu] element K matrix in global coordinates

	// problem variables
	Umap []int // assembly map (location array/element equations)

	// scratchpad
	ua []float64 // [2] local axial displacements
}

// NewRod returns a new bar element or an error if the element geometry is degenerate
func NewRod(ele *inp.Element, n0, n1 *inp.Node, mat *inp.Material) (o *Rod, err error) {

	// basic data
	o = new(Rod)
	o.Ele = ele
	o.X = [][]float64{{n0.X, n1.X}, {n0.Y, n1.Y}}
	o.Nu = 4
	o.E = mat.E
	o.A = ele.A

	// geometry
	dx := n1.X - n0.X
	dy := n1.Y - n0.Y
	o.L = math.Sqrt(dx*dx + dy*dy)
	if o.L <= 0 {
		return nil, chk.Err("element %d has zero length: nodes %d and %d are coincident", ele.Id, n0.Id, n1.Id)
	}

	// global-to-local transformation matrix
	c := dx / o.L
	s := dy / o.L
	o.T = [][]float64{
		{c, s, 0, 0},
		{0, 0, c, s},
	}

	// K matrix
	α := o.E * o.A / o.L
	o.K = [][]float64{
		{+α * c * c, +α * c * s, -α * c * c, -α * c * s},
		{+α * c * s, +α * s * s, -α * c * s, -α * s * s},
		{-α * c * c, -α * c * s, +α * c * c, +α * c * s},
		{-α * c * s, -α * s * s, +α * c * s, +α * s * s},
	}

	// assembly map: node id n and local DOF d map to equation 2*(n-1)+d
	o.Umap = []int{
		2 * (n0.Id - 1), 2*(n0.Id-1) + 1,
		2 * (n1.Id - 1), 2*(n1.Id-1) + 1,
	}

	o.ua = make([]float64, 2)
	return
}

// AddToKb adds element K to global stiffness matrix Kb
func (o *Rod) AddToKb(Kb *la.Triplet) {
	for i, I := range o.Umap {
		for j, J := range o.Umap {
			Kb.Put(I, J, o.K[i][j])
		}
	}
}

// CalcSig computes the axial stress for given global displacements
func (o *Rod) CalcSig(u la.Vector) float64 {
	for i := 0; i < 2; i++ {
		o.ua[i] = 0
		for j, J := range o.Umap {
			o.ua[i] += o.T[i][j] * u[J]
		}
	}
	εa := (o.ua[1] - o.ua[0]) / o.L // axial strain
	return o.E * εa                 // axial stress
}
