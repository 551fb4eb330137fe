// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdgl

import (
	"sort"

	"github.com/cpmech/gotdgl/mesh"
)

// Setup bundles everything a run needs that is derived once from the mesh
// and the magnetic field: the metal-contact boundary sites (ψ and μ are
// fixed there), the input/output current-injection boundary edges, the
// vector potential and the assembled operators. Grounded on
// original_source/simulate.py's Simulate.run_tdgl setup block.
type Setup struct {
	Mesh             *mesh.Mesh
	MetalBoundary    []int
	InputEdgesIndex  []int
	OutputEdgesIndex []int
	VectorPotential  [][2]float64
	Operators        *Operators
}

// NewSetup builds a Setup for m at the given external magnetic field.
func NewSetup(m *mesh.Mesh, magneticField float64) (*Setup, error) {

	inputEdge, outputEdge := m.GetFlowEdges()

	metalBoundary := append(
		m.BoundaryIndexWhere(mesh.And, boxSitePredicates(inputEdge)...),
		m.BoundaryIndexWhere(mesh.And, boxSitePredicates(outputEdge)...)...,
	)
	sort.Ints(metalBoundary)

	inputEdgesIndex := m.EdgeBoundaryIndexWhere(mesh.And, boxEdgePredicates(inputEdge)...)
	outputEdgesIndex := m.EdgeBoundaryIndexWhere(mesh.And, boxEdgePredicates(outputEdge)...)

	a := VectorPotential(m.EdgeMesh.Xe, m.EdgeMesh.Ye, magneticField)

	operators, err := BuildOperators(m, metalBoundary, a)
	if err != nil {
		return nil, err
	}

	return &Setup{
		Mesh:             m,
		MetalBoundary:    metalBoundary,
		InputEdgesIndex:  inputEdgesIndex,
		OutputEdgesIndex: outputEdgesIndex,
		VectorPotential:  a,
		Operators:        operators,
	}, nil
}

func boxSitePredicates(box [4]float64) []mesh.SitePredicate {
	return []mesh.SitePredicate{
		func(xb, _ []float64) []bool { return geScalar(xb, box[0]) },
		func(xb, _ []float64) []bool { return leScalar(xb, box[1]) },
		func(_, yb []float64) []bool { return geScalar(yb, box[2]) },
		func(_, yb []float64) []bool { return leScalar(yb, box[3]) },
	}
}

func boxEdgePredicates(box [4]float64) []mesh.EdgePredicate {
	return []mesh.EdgePredicate{
		func(xe, _ [][2]float64) []bool { return geBoth(xe, box[0]) },
		func(xe, _ [][2]float64) []bool { return leBoth(xe, box[1]) },
		func(_, ye [][2]float64) []bool { return geBoth(ye, box[2]) },
		func(_, ye [][2]float64) []bool { return leBoth(ye, box[3]) },
	}
}

func geScalar(v []float64, limit float64) []bool {
	out := make([]bool, len(v))
	for i, x := range v {
		out[i] = x >= limit
	}
	return out
}

func leScalar(v []float64, limit float64) []bool {
	out := make([]bool, len(v))
	for i, x := range v {
		out[i] = x <= limit
	}
	return out
}

func geBoth(v [][2]float64, limit float64) []bool {
	out := make([]bool, len(v))
	for i, p := range v {
		out[i] = p[0] >= limit && p[1] >= limit
	}
	return out
}

func leBoth(v [][2]float64, limit float64) []bool {
	out := make([]bool, len(v))
	for i, p := range v {
		out[i] = p[0] <= limit && p[1] <= limit
	}
	return out
}
