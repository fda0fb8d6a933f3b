// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package inp implements the input data read from a (.fea) structure file
package inp

import (
	"os"
	"strings"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

// FixCode indicates which degrees of freedom of a node are constrained to zero displacement
type FixCode int

const (
	FixNone FixCode = 0 // both DOFs free
	FixX    FixCode = 1 // horizontal displacement prescribed to zero
	FixY    FixCode = 2 // vertical displacement prescribed to zero
	FixBoth FixCode = 3 // both DOFs prescribed to zero
)

// Node holds one vertex of the structure with its support code
type Node struct {
	Id  int     // 1-based id; ids are contiguous
	X   float64 // horizontal coordinate
	Y   float64 // vertical coordinate
	Fix FixCode // support code
}

// FixedX tells whether the horizontal DOF is constrained
func (o *Node) FixedX() bool { return o.Fix == FixX || o.Fix == FixBoth }

// FixedY tells whether the vertical DOF is constrained
func (o *Node) FixedY() bool { return o.Fix == FixY || o.Fix == FixBoth }

// Material holds linear elastic parameters
type Material struct {
	Id int     // 1-based id
	E  float64 // Young's modulus
	Nu float64 // Poisson's coefficient
}

// Element is a 2-node bar member connecting two nodes
type Element struct {
	Id  int     // 1-based id; ids are contiguous
	N0  int     // id of first endpoint node
	N1  int     // id of second endpoint node
	Mat int     // material id
	A   float64 // cross-sectional area
	Th  float64 // thickness
}

// Load applies a force at one DOF of one node. Loads on the same DOF accumulate.
type Load struct {
	Id    int     // 1-based id
	Node  int     // node id
	Dof   int     // local DOF index: 0 is x, 1 is y
	Value float64 // force magnitude
}

// Structure is the read-only input model consumed by the fem package
type Structure struct {
	Ndof  int // total number of DOFs == 2 * number of nodes
	Nodes []*Node
	Mats  []*Material
	Elems []*Element
	Loads []*Load
}

// GetNode returns the node with given id or nil if the id is out of range
func (o *Structure) GetNode(id int) *Node {
	if id < 1 || id > len(o.Nodes) {
		return nil
	}
	return o.Nodes[id-1]
}

// GetMat returns the material with given id or nil if the id is out of range
func (o *Structure) GetMat(id int) *Material {
	if id < 1 || id > len(o.Mats) {
		return nil
	}
	return o.Mats[id-1]
}

// GetElem returns the element with given id or nil if the id is out of range
func (o *Structure) GetElem(id int) *Element {
	if id < 1 || id > len(o.Elems) {
		return nil
	}
	return o.Elems[id-1]
}

// Nbc returns the number of constrained DOFs implied by the node support codes
func (o *Structure) Nbc() (n int) {
	for _, nod := range o.Nodes {
		if nod.FixedX() {
			n++
		}
		if nod.FixedY() {
			n++
		}
	}
	return
}

// ReadStructure reads and validates a structure (.fea) file
//  Format (all lines comma-separated):
//   line 1            -- num_dof, num_nodes, num_bc, num_elements, num_forces, num_loads
//   line 2            -- E, nu
//   num_nodes lines   -- node_id, x, y, fix_code             (fix_code: 0=free 1=x 2=y 3=both)
//   num_elems lines   -- elem_id, node1, node2, mat_id, area, thickness
//   num_loads lines   -- load_id, node_id, force             (force along x)
//                     -- load_id, node_id, dof, force        (dof: 1=x 2=y)
func ReadStructure(fnamepath string) (o *Structure, err error) {

	// read file
	b, err := os.ReadFile(fnamepath)
	if err != nil {
		return nil, chk.Err("cannot read structure file %q: %v", fnamepath, err)
	}
	var lines []string
	for _, line := range strings.Split(string(b), "\n") {
		if s := strings.TrimSpace(line); s != "" {
			lines = append(lines, s)
		}
	}
	if len(lines) < 2 {
		return nil, chk.Err("file %q is too short: missing header or material lines", fnamepath)
	}

	// header line
	h := fields(lines[0])
	if len(h) != 6 {
		return nil, chk.Err("header line must have 6 entries; got %d", len(h))
	}
	ndof := io.Atoi(h[0])
	nnod := io.Atoi(h[1])
	nbc := io.Atoi(h[2])
	nele := io.Atoi(h[3])
	nlod := io.Atoi(h[5]) // num_forces (h[4]) is accepted and ignored
	if nnod < 2 {
		return nil, chk.Err("structure must have at least 2 nodes; got %d", nnod)
	}
	if ndof != 2*nnod {
		return nil, chk.Err("num_dof must equal 2 * num_nodes; got num_dof=%d with num_nodes=%d", ndof, nnod)
	}
	if len(lines) != 2+nnod+nele+nlod {
		return nil, chk.Err("file has %d data lines but header declares %d nodes, %d elements and %d loads", len(lines)-2, nnod, nele, nlod)
	}

	// material line
	m := fields(lines[1])
	if len(m) != 2 {
		return nil, chk.Err("material line must have 2 entries (E, nu); got %d", len(m))
	}
	o = new(Structure)
	o.Ndof = ndof
	o.Mats = []*Material{{Id: 1, E: io.Atof(m[0]), Nu: io.Atof(m[1])}}
	if o.Mats[0].E <= 0 {
		return nil, chk.Err("Young's modulus must be positive; got E=%g", o.Mats[0].E)
	}

	// nodes
	o.Nodes = make([]*Node, nnod)
	for i := 0; i < nnod; i++ {
		f := fields(lines[2+i])
		if len(f) != 4 {
			return nil, chk.Err("node line %d must have 4 entries; got %d", i+1, len(f))
		}
		id := io.Atoi(f[0])
		if id != i+1 {
			return nil, chk.Err("node ids must be contiguous starting from 1; got id=%d at position %d", id, i+1)
		}
		code := io.Atoi(f[3])
		if code < 0 || code > 3 {
			return nil, chk.Err("node %d has unknown fix code %d (must be 0, 1, 2 or 3)", id, code)
		}
		o.Nodes[i] = &Node{Id: id, X: io.Atof(f[1]), Y: io.Atof(f[2]), Fix: FixCode(code)}
	}
	if o.Nbc() != nbc {
		return nil, chk.Err("header declares %d constrained DOFs but node codes imply %d", nbc, o.Nbc())
	}

	// elements
	o.Elems = make([]*Element, nele)
	for i := 0; i < nele; i++ {
		f := fields(lines[2+nnod+i])
		if len(f) != 6 {
			return nil, chk.Err("element line %d must have 6 entries; got %d", i+1, len(f))
		}
		id := io.Atoi(f[0])
		if id != i+1 {
			return nil, chk.Err("element ids must be contiguous starting from 1; got id=%d at position %d", id, i+1)
		}
		e := &Element{Id: id, N0: io.Atoi(f[1]), N1: io.Atoi(f[2]), Mat: io.Atoi(f[3]), A: io.Atof(f[4]), Th: io.Atof(f[5])}
		if o.GetNode(e.N0) == nil || o.GetNode(e.N1) == nil {
			return nil, chk.Err("element %d references inexistent node: node1=%d node2=%d (have %d nodes)", id, e.N0, e.N1, nnod)
		}
		if o.GetMat(e.Mat) == nil {
			return nil, chk.Err("element %d references inexistent material %d", id, e.Mat)
		}
		o.Elems[i] = e
	}

	// loads
	o.Loads = make([]*Load, nlod)
	for i := 0; i < nlod; i++ {
		f := fields(lines[2+nnod+nele+i])
		l := &Load{Id: io.Atoi(f[0])}
		switch len(f) {
		case 3: // load_id, node_id, force => force along x
			l.Node = io.Atoi(f[1])
			l.Dof = 0
			l.Value = io.Atof(f[2])
		case 4: // load_id, node_id, dof, force
			l.Node = io.Atoi(f[1])
			dof := io.Atoi(f[2])
			if dof != 1 && dof != 2 {
				return nil, chk.Err("load %d has unknown DOF code %d (must be 1=x or 2=y)", l.Id, dof)
			}
			l.Dof = dof - 1
			l.Value = io.Atof(f[3])
		default:
			return nil, chk.Err("load line %d must have 3 or 4 entries; got %d", i+1, len(f))
		}
		if o.GetNode(l.Node) == nil {
			return nil, chk.Err("load %d references inexistent node %d (have %d nodes)", l.Id, l.Node, nnod)
		}
		o.Loads[i] = l
	}
	return
}

// fields splits one comma-separated line and trims blanks
func fields(line string) (res []string) {
	for _, s := range strings.Split(line, ",") {
		res = append(res, strings.TrimSpace(s))
	}
	return
}
