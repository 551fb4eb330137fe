// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ops builds the sparse discrete differential operators used by the
// tdgl package: the Laplacian, the site-to-edge gradient, the edge-to-site
// divergence and the non-homogeneous Neumann boundary operator (spec.md
// §4.3). Each is a pure function of a mesh.Mesh and a Config; there is no
// mutable builder object to configure step by step (spec.md §9).
package ops

// Config carries the boundary and gauge parameters shared by the operator
// builders: which sites are held fixed (Dirichlet), the eigenvalue placed
// on their diagonal, and the per-edge link exponents used by the
// gauge-invariant (Peierls-substitution) discretization. It replaces the
// original implementation's fluent, stateful MatrixBuilder: a Config is
// just a value, handed to whichever build_* function needs it.
type Config struct {
	FixedSites           []int        // sites held at a fixed value (Dirichlet); nil means none
	FixedSitesEigenvalue float64      // diagonal value placed at each fixed site
	LinkExponents        [][2]float64 // per-edge (ax, ay); nil selects the gauge-trivial operator
}

// NewConfig returns a Config with no fixed sites, no link exponents and the
// conventional unit diagonal eigenvalue.
func NewConfig() Config {
	return Config{FixedSitesEigenvalue: 1}
}

// WithFixedSites returns a copy of cfg with the given Dirichlet sites.
func (cfg Config) WithFixedSites(sites []int) Config {
	cfg.FixedSites = sites
	return cfg
}

// WithLinkExponents returns a copy of cfg carrying the given per-edge link
// exponents (e.g. the discretized vector potential, spec.md §4.3).
func (cfg Config) WithLinkExponents(linkExponents [][2]float64) Config {
	cfg.LinkExponents = linkExponents
	return cfg
}
