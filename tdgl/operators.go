// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdgl

import (
	"github.com/cpmech/gotdgl/mesh"
	"github.com/cpmech/gotdgl/ops"
	"github.com/cpmech/gotdgl/sparse"
)

// Operators holds the six sparse operators a run needs, built once and
// held immutable for its whole duration (spec.md §4.4, §5): the
// factorized scalar-potential Laplacian, its Neumann boundary and
// gradient counterparts, the gauge-invariant (link-phase) Laplacian and
// gradient for the complex order parameter, and the divergence.
type Operators struct {
	LmuSolver *sparse.PoissonSolver // factorized Dirichlet Laplacian for mu, no link phases
	NBmu      *ops.RealMatrix       // Neumann boundary operator, same fixation
	Gmu       *ops.RealMatrix       // gradient, no link phases
	Lpsi      *ops.ComplexMatrix    // gauge-invariant Laplacian, link_exponents=a
	Gpsi      *ops.ComplexMatrix    // gauge-invariant gradient, link_exponents=a
	Div       *ops.RealMatrix       // divergence, edges -> sites
}

// BuildOperators assembles every operator the integrator needs against m,
// fixing metalBoundary (the Dirichlet sites) and using vectorPotential as
// the per-edge link exponents a[M,2] (spec.md §4.4).
func BuildOperators(m *mesh.Mesh, metalBoundary []int, vectorPotential [][2]float64) (*Operators, error) {
	muCfg := ops.NewConfig().WithFixedSites(metalBoundary)

	lmu, err := ops.BuildLaplacian(m, muCfg)
	if err != nil {
		return nil, err
	}
	nbmuT, err := ops.BuildNeumannBoundaryLaplacian(m, muCfg)
	if err != nil {
		return nil, err
	}
	gmuT, err := ops.BuildGradient(m)
	if err != nil {
		return nil, err
	}
	divT, err := ops.BuildDivergence(m)
	if err != nil {
		return nil, err
	}
	numEdges := len(m.EdgeMesh.Edges)
	numSites := len(m.X)
	nbmu := ops.NewRealMatrix(nbmuT, numSites)
	gmu := ops.NewRealMatrix(gmuT, numEdges)
	div := ops.NewRealMatrix(divT, numSites)

	psiCfg := ops.NewConfig().WithFixedSites(metalBoundary).WithLinkExponents(vectorPotential)

	lpsi, err := ops.BuildLaplacianComplex(m, psiCfg)
	if err != nil {
		return nil, err
	}
	gpsi, err := ops.BuildGradientComplex(m, psiCfg)
	if err != nil {
		return nil, err
	}

	solver := sparse.NewPoissonSolver("umfpack")
	if err := solver.Factorize(lmu, len(m.X), false); err != nil {
		return nil, err
	}

	return &Operators{
		LmuSolver: solver,
		NBmu:      nbmu,
		Gmu:       gmu,
		Lpsi:      lpsi,
		Gpsi:      gpsi,
		Div:       div,
	}, nil
}

// VectorPotential computes the symmetric-gauge vector potential sample
// a[M,2] = (1/2)·B·(-ye, xe) for a uniform perpendicular magnetic field B
// (spec.md §4.4).
func VectorPotential(edgeX, edgeY []float64, magneticField float64) [][2]float64 {
	a := make([][2]float64, len(edgeX))
	for k := range a {
		a[k] = [2]float64{
			-magneticField * edgeY[k] / 2,
			magneticField * edgeX[k] / 2,
		}
	}
	return a
}
