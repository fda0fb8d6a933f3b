// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package out implements the text report of analysis results
package out

import (
	"github.com/TheOfficialSK/finite-element-structural-analysis-utility/fem"

	"github.com/cpmech/gosl/io"
)

// Report returns the tabular text report with displacements per node and
// stresses per element, in id order
func Report(m *fem.Main) (l string) {
	l = "Displacements: \t   x\t\t\ty\n"
	for _, nod := range m.Str.Nodes {
		ux, uy := m.NodeDisp(nod.Id)
		l += io.Sf("Node %4d: %12.6f %12.6f\n", nod.Id, ux, uy)
	}
	l += "\nStresses:\t\t   Stress_x\t\t  Stress_y  Shear stress\n"
	for _, sig := range m.Sig {
		l += io.Sf("Element %4d: %12.6f | %12.6f | %12.6f\n", sig.Ele, sig.Sx, sig.Sy, sig.Txy)
	}
	return
}
