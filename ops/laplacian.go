// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import (
	"math/cmplx"

	"github.com/cpmech/gosl/la"

	"github.com/cpmech/gotdgl/mesh"
)

// BuildLaplacian assembles the real, gauge-trivial Laplacian of m: a
// Voronoi-box, cotangent-weighted discretization with homogeneous Neumann
// boundary conditions by default, or Dirichlet conditions on
// cfg.FixedSites (each such row becomes a single diagonal entry of
// cfg.FixedSitesEigenvalue rather than the usual stencil). Grounded on
// build_laplacian.py's real branch, used where no link variables are
// present (the scalar potential operator, spec.md §4.3).
//
// Rows belonging to a fixed site simply never receive stencil
// contributions during assembly, which is equivalent to (and cheaper than)
// the original's build-then-zero-the-row approach.
func BuildLaplacian(m *mesh.Mesh, cfg Config) (*la.Triplet, error) {
	em := m.EdgeMesh
	n := len(m.X)
	fixed := fixedSet(cfg.FixedSites)

	var t la.Triplet
	t.Init(n, n, 4*len(em.Edges)+len(cfg.FixedSites))

	for k, e := range em.Edges {
		u, v := e[0], e[1]
		w := em.DualEdgeLengths[k] / em.EdgeLengths[k]
		if !fixed[u] {
			t.Put(u, v, w/m.Areas[u])
			t.Put(u, u, -w/m.Areas[u])
		}
		if !fixed[v] {
			t.Put(v, u, w/m.Areas[v])
			t.Put(v, v, -w/m.Areas[v])
		}
	}
	for _, s := range cfg.FixedSites {
		t.Put(s, s, cfg.FixedSitesEigenvalue)
	}
	return &t, nil
}

// BuildLaplacianComplex assembles the gauge-invariant Laplacian of m,
// folding in cfg.LinkExponents as a Peierls phase exp(-i·a·dir) on every
// edge (spec.md §4.3). cfg.LinkExponents must be set; this is the operator
// applied to the complex order parameter.
func BuildLaplacianComplex(m *mesh.Mesh, cfg Config) (*ComplexMatrix, error) {
	if cfg.LinkExponents == nil {
		return nil, invalidOperator("ops: BuildLaplacianComplex requires cfg.LinkExponents")
	}
	em := m.EdgeMesh
	n := len(m.X)
	fixed := fixedSet(cfg.FixedSites)

	mat := NewComplexMatrix(n, n, 4*len(em.Edges)+len(cfg.FixedSites))
	for k, e := range em.Edges {
		u, v := e[0], e[1]
		w := em.DualEdgeLengths[k] / em.EdgeLengths[k]
		link := linkPhase(cfg.LinkExponents[k], em.Directions[k])
		if !fixed[u] {
			wu := complex(w/m.Areas[u], 0)
			mat.Put(u, v, wu*link)
			mat.Put(u, u, -wu)
		}
		if !fixed[v] {
			wv := complex(w/m.Areas[v], 0)
			mat.Put(v, u, wv*cmplx.Conj(link))
			mat.Put(v, v, -wv)
		}
	}
	for _, s := range cfg.FixedSites {
		mat.Put(s, s, complex(cfg.FixedSitesEigenvalue, 0))
	}
	return mat, nil
}

func fixedSet(sites []int) map[int]bool {
	set := make(map[int]bool, len(sites))
	for _, s := range sites {
		set[s] = true
	}
	return set
}

// linkPhase computes exp(-i·a·dir), the Peierls-substitution link variable
// for one edge (spec.md §4.3).
func linkPhase(a, dir [2]float64) complex128 {
	theta := a[0]*dir[0] + a[1]*dir[1]
	return cmplx.Exp(complex(0, -theta))
}
