// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gotdgl/mesh"
)

// BuildDivergence assembles the operator taking an edge-valued field onto
// the sites: (Dj)[i] = sum over edges k incident to i of
// ±dualEdgeLength[k]·j[k]/area[i], the sign set by whether i is the edge's
// first or second endpoint. Grounded on build_divergence.py; used to take
// the divergence of the supercurrent when solving for the scalar
// potential (spec.md §4.3, §4.4). Always real: divergence carries no link
// variables in the original construction.
func BuildDivergence(m *mesh.Mesh) (*la.Triplet, error) {
	em := m.EdgeMesh
	rows, cols := len(m.X), len(em.Edges)

	var t la.Triplet
	t.Init(rows, cols, 2*cols)
	for k, e := range em.Edges {
		w := em.DualEdgeLengths[k]
		t.Put(e[0], k, w/m.Areas[e[0]])
		t.Put(e[1], k, -w/m.Areas[e[1]])
	}
	return &t, nil
}
