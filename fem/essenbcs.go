// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/chk"
)

// ApplyEssentialBcs enforces zero prescribed displacements at all constrained
// DOFs using the elimination method: for each fixed equation i, row i and
// column i of K are zeroed, K[i][i] is set to 1 and F[i] to 0. Equation
// numbering is preserved so no renumbering is required downstream.
func (o *Domain) ApplyEssentialBcs() (err error) {
	fixed := o.FixedEqs()
	if len(fixed) == o.Ny {
		return chk.Err("all %d DOFs are constrained: nothing to solve", o.Ny)
	}
	for _, i := range fixed {
		for j := 0; j < o.Ny; j++ {
			o.K.Set(i, j, 0)
			o.K.Set(j, i, 0)
		}
		o.K.Set(i, i, 1)
		o.F[i] = 0
	}
	return
}
