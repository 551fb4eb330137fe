// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import (
	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gotdgl/mesh"
)

// BuildGradient assembles the real, gauge-trivial gradient operator taking
// a site-valued field onto the edges: (Gφ)[k] = (φ[v]-φ[u])/len[k] for edge
// k=(u,v). Grounded on build_gradient.py's real branch, used for the
// scalar-potential gradient that yields the normal current (spec.md §4.3,
// §4.4).
func BuildGradient(m *mesh.Mesh) (*la.Triplet, error) {
	em := m.EdgeMesh
	rows, cols := len(em.Edges), len(m.X)

	var t la.Triplet
	t.Init(rows, cols, 2*rows)
	for k, e := range em.Edges {
		w := 1 / em.EdgeLengths[k]
		t.Put(k, e[1], w)
		t.Put(k, e[0], -w)
	}
	return &t, nil
}

// BuildGradientComplex assembles the gauge-invariant gradient, folding in
// cfg.LinkExponents as a Peierls phase on the far endpoint of every edge.
// cfg.LinkExponents must be set; this is the operator used to recover the
// supercurrent from the complex order parameter (spec.md §4.3, §4.4).
func BuildGradientComplex(m *mesh.Mesh, cfg Config) (*ComplexMatrix, error) {
	if cfg.LinkExponents == nil {
		return nil, invalidOperator("ops: BuildGradientComplex requires cfg.LinkExponents")
	}
	em := m.EdgeMesh
	rows, cols := len(em.Edges), len(m.X)

	mat := NewComplexMatrix(rows, cols, 2*rows)
	for k, e := range em.Edges {
		w := complex(1/em.EdgeLengths[k], 0)
		link := linkPhase(cfg.LinkExponents[k], em.Directions[k])
		mat.Put(k, e[1], w*link)
		mat.Put(k, e[0], -w)
	}
	return mat, nil
}
