// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package fem

import (
	"github.com/cpmech/gosl/la"
)

// Stress holds the recovered stress components of one element. Bar members
// carry axial load only, thus Sy and Txy are reported as zero.
type Stress struct {
	Ele int     // element id
	Sx  float64 // normal stress
	Sy  float64 // normal stress in the transverse direction
	Txy float64 // shear stress
}

// RecoverStresses computes per-element stresses from the solved displacement
// field. Results come in element-id order.
func (o *Domain) RecoverStresses(u la.Vector) (res []*Stress) {
	res = make([]*Stress, len(o.Rods))
	for i, rod := range o.Rods {
		res[i] = &Stress{Ele: rod.Ele.Id, Sx: rod.CalcSig(u)}
	}
	return
}
