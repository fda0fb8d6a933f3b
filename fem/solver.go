// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/la"

	"gonum.org/v1/gonum/mat"
)

// SolveLinSys solves the linear system K・u = F for the displacement vector u
// using a dense LU factorization with partial pivoting. A singular or
// near-singular K (insufficiently constrained structure with rigid-body
// modes) yields an error; no partial result is returned.
func SolveLinSys(K *la.Matrix, F la.Vector) (u la.Vector, err error) {
	n := len(F)
	A := mat.NewDense(n, n, nil)
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			A.Set(i, j, K.Get(i, j))
		}
	}
	b := mat.NewVecDense(n, F)

	var lu mat.LU
	lu.Factorize(A)
	x := mat.NewVecDense(n, nil)
	if e := lu.SolveVecTo(x, false, b); e != nil {
		return nil, chk.Err("cannot solve linear system: stiffness matrix is singular or near-singular (structure insufficiently constrained?): %v", e)
	}

	u = la.NewVector(n)
	copy(u, x.RawVector().Data)
	return
}
