// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh builds the primal site mesh, the dual (Voronoi) mesh and the
// edge mesh of a two-dimensional simply-connected triangulated domain, and
// exposes the per-site Voronoi areas and coordinate-predicate selectors
// callers use to pick out current-contact and current-injection sites
// (spec.md §3, §4.1, §4.2).
package mesh

import (
	"sort"

	"github.com/cpmech/gosl/utl"
)

// Mesh is a triangular mesh of a simply connected polygon.
type Mesh struct {
	X, Y     []float64 // site coordinates
	Elements [][3]int  // triangles, as triplets of site indices
	Boundary []int     // sorted site indices incident to at least one boundary edge

	Areas []float64 // per-site Voronoi area, Areas[i] > 0

	DualMesh *DualMesh
	EdgeMesh *EdgeMesh

	// Optional metadata used by callers to locate metal contacts, current
	// injection strips and voltage probes (spec.md §3).
	VoltagePoints [2]int
	HasVoltagePoints bool
	InputEdge        [4]float64
	HasInputEdge     bool
	OutputEdge       [4]float64
	HasOutputEdge    bool
}

// FromTriangulation builds a Mesh from a raw triangulation, deriving the
// dual mesh, the edge mesh and the per-site Voronoi areas (spec.md §4.2).
//
// elements may be supplied as (T,3) or (3,T); the latter is auto-transposed
// to keep faith with the tolerance the original implementation grants
// (spec.md §3, §9), though any value this package itself produces or
// persists is always (T,3).
func FromTriangulation(x, y []float64, elements [][]int) (*Mesh, error) {
	if len(x) != len(y) {
		return nil, invalidMesh("mesh: number of x coordinates (%d) must equal number of y coordinates (%d)", len(x), len(y))
	}

	elems, err := normalizeElements(elements, len(x))
	if err != nil {
		return nil, err
	}

	boundary := findBoundary(elems)

	dual, err := dualMeshFromTriangulation(x, y, elems)
	if err != nil {
		return nil, err
	}
	edgeMesh := edgeMeshFromTriangulation(x, y, elems, dual)

	polygons := surroundingPolygons(elems, len(x))
	areas := computeSurroundingAreas(x, y, dual.X, dual.Y, boundary, edgeMesh.Edges, edgeMesh.BoundaryEdgeIndices, polygons)

	return &Mesh{
		X:        x,
		Y:        y,
		Elements: elems,
		Boundary: boundary,
		Areas:    areas,
		DualMesh: dual,
		EdgeMesh: edgeMesh,
	}, nil
}

// normalizeElements validates the shape of the elements array and
// transposes a (3,T) array into (T,3) form.
func normalizeElements(elements [][]int, numSites int) ([][3]int, error) {
	if len(elements) == 0 {
		return nil, invalidMesh("mesh: elements array must not be empty")
	}

	rowLen := len(elements[0])
	for _, row := range elements {
		if len(row) != rowLen {
			return nil, invalidMesh("mesh: elements array must be rectangular")
		}
	}

	var out [][3]int
	switch {
	case rowLen == 3:
		out = make([][3]int, len(elements))
		for i, row := range elements {
			out[i] = [3]int{row[0], row[1], row[2]}
		}
	case len(elements) == 3:
		out = make([][3]int, rowLen)
		for i := 0; i < rowLen; i++ {
			out[i] = [3]int{elements[0][i], elements[1][i], elements[2][i]}
		}
	default:
		return nil, invalidMesh("mesh: elements need to be a (n, 3) or (3, n) array, got (%d, %d)", len(elements), rowLen)
	}

	for i, e := range out {
		if e[0] == e[1] || e[1] == e[2] || e[2] == e[0] {
			return nil, invalidMesh("mesh: triangle %d does not have three distinct sites", i)
		}
		for _, s := range e {
			if s < 0 || s >= numSites {
				return nil, invalidMesh("mesh: triangle %d references site %d out of range [0, %d)", i, s, numSites)
			}
		}
	}
	return out, nil
}

// findBoundary returns the unique site indices incident to a boundary edge.
func findBoundary(elements [][3]int) []int {
	edges, isBoundary := GetEdges(elements)
	seen := make(map[int]bool)
	for i, b := range isBoundary {
		if b {
			seen[edges[i][0]] = true
			seen[edges[i][1]] = true
		}
	}
	out := make([]int, 0, len(seen))
	for s := range seen {
		out = append(out, s)
	}
	sortInts(out)
	return out
}

func sortInts(s []int) {
	sort.Ints(s)
}

// GetFlowEdges normalizes InputEdge and OutputEdge into
// [min(x0,x1), max(x0,x1), min(y0,y1), max(y0,y1)] form, tolerating
// bounding boxes whose corners arrive in the wrong order (spec.md §4.2).
func (m *Mesh) GetFlowEdges() (input, output [4]float64) {
	input = normalizeBox(m.InputEdge)
	output = normalizeBox(m.OutputEdge)
	return
}

func normalizeBox(b [4]float64) [4]float64 {
	return [4]float64{
		utl.Min(b[0], b[1]), utl.Max(b[0], b[1]),
		utl.Min(b[2], b[3]), utl.Max(b[2], b[3]),
	}
}
