// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package sparse wraps gosl/la's sparse direct solver for the one linear
// system the simulator factors once and solves repeatedly: the scalar
// potential's Dirichlet Laplacian (spec.md §4.4). It follows the same
// GetSolver/InitR/Fact/SolveR sequence the teacher uses to drive its
// Jacobian solves (fem/s_implicit.go).
package sparse

import (
	"github.com/cpmech/gosl/la"
)

// PoissonSolver factorizes a real sparse matrix once via UMFPACK and then
// solves Ax = b repeatedly against that factorization, the way the scalar
// potential's Laplacian is factored once at startup and solved once per
// simulation step (spec.md §4.4).
type PoissonSolver struct {
	linsol    la.LinSol
	n         int
	factored  bool
	symmetric bool
}

// NewPoissonSolver returns a solver using the named gosl/la backend
// ("umfpack" by default, matching the teacher's inp/sim.go default).
func NewPoissonSolver(name string) *PoissonSolver {
	if name == "" {
		name = "umfpack"
	}
	return &PoissonSolver{linsol: la.GetSolver(name)}
}

// Factorize initializes and factors a (symmetric-or-not) triplet of size
// n-by-n. It must be called exactly once before Solve; the same
// factorization is reused across every subsequent Solve call.
func (s *PoissonSolver) Factorize(a *la.Triplet, n int, symmetric bool) error {
	verbose, timing := false, false
	if err := s.linsol.InitR(a, symmetric, verbose, timing); err != nil {
		return solveFailure("sparse: cannot initialize linear solver: %v", err)
	}
	if err := s.linsol.Fact(); err != nil {
		return solveFailure("sparse: factorization failed: %v", err)
	}
	s.n = n
	s.symmetric = symmetric
	s.factored = true
	return nil
}

// Solve returns x solving Ax = rhs against the factorization computed by
// Factorize.
func (s *PoissonSolver) Solve(rhs []float64) ([]float64, error) {
	if !s.factored {
		return nil, solveFailure("sparse: Solve called before Factorize")
	}
	x := make([]float64, s.n)
	if err := s.linsol.SolveR(x, rhs, false); err != nil {
		return nil, solveFailure("sparse: solve failed: %v", err)
	}
	return x, nil
}

// Free releases the resources held by the underlying solver.
func (s *PoissonSolver) Free() {
	if s.linsol != nil {
		s.linsol.Free()
	}
}
