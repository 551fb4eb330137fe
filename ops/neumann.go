// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gotdgl/mesh"
)

// BuildNeumannBoundaryLaplacian assembles the operator that turns a
// prescribed flux on each boundary edge into the right-hand-side
// contribution of a non-homogeneous Neumann condition for the Laplacian:
// rows correspond to sites, columns to boundary edges (in
// EdgeMesh.BoundaryEdgeIndices order). Rows belonging to cfg.FixedSites
// are left empty, since a Dirichlet site takes no Neumann flux. Grounded
// on build_neumann_boundary_laplacian.py; used to inject the prescribed
// input/output current density into the scalar-potential solve (spec.md
// §4.3, §4.4).
func BuildNeumannBoundaryLaplacian(m *mesh.Mesh, cfg Config) (*la.Triplet, error) {
	em := m.EdgeMesh
	rows := len(m.X)
	cols := len(em.BoundaryEdgeIndices)
	fixed := fixedSet(cfg.FixedSites)

	var t la.Triplet
	t.Init(rows, cols, 2*cols)
	for bi, edgeIdx := range em.BoundaryEdgeIndices {
		e := em.Edges[edgeIdx]
		length := em.EdgeLengths[edgeIdx]
		if !fixed[e[0]] {
			t.Put(e[0], bi, length/(2*m.Areas[e[0]]))
		}
		if !fixed[e[1]] {
			t.Put(e[1], bi, length/(2*m.Areas[e[1]]))
		}
	}
	return &t, nil
}
