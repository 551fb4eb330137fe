// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "math"

// EdgeMesh holds per-edge geometric data derived from the primal mesh:
// midpoints, direction vectors, lengths, dual-edge lengths and the indices
// of the boundary edges (spec.md §3).
type EdgeMesh struct {
	Edges               [][2]int    // [M,2], sorted so Edges[k][0] < Edges[k][1]
	BoundaryEdgeIndices []int       // edges belonging to exactly one triangle
	Xe, Ye              []float64   // edge midpoints
	Directions          [][2]float64 // site[Edges[k][1]] - site[Edges[k][0]]
	EdgeLengths         []float64   // ‖Directions[k]‖
	DualEdgeLengths     []float64   // distance between (or to) incident circumcenters
}

func edgeMeshFromTriangulation(x, y []float64, elements [][3]int, dual *DualMesh) *EdgeMesh {
	edges, isBoundary := GetEdges(elements)

	boundaryIdx := make([]int, 0, len(edges))
	for i, b := range isBoundary {
		if b {
			boundaryIdx = append(boundaryIdx, i)
		}
	}

	xe := make([]float64, len(edges))
	ye := make([]float64, len(edges))
	dirs := make([][2]float64, len(edges))
	lens := make([]float64, len(edges))
	for i, e := range edges {
		xe[i] = (x[e[0]] + x[e[1]]) / 2
		ye[i] = (y[e[0]] + y[e[1]]) / 2
		dx := x[e[1]] - x[e[0]]
		dy := y[e[1]] - y[e[0]]
		dirs[i] = [2]float64{dx, dy}
		lens[i] = math.Hypot(dx, dy)
	}

	dualLens := dualEdgeLengths(xe, ye, elements, dual.X, dual.Y, edges)

	return &EdgeMesh{
		Edges:               edges,
		BoundaryEdgeIndices: boundaryIdx,
		Xe:                  xe,
		Ye:                  ye,
		Directions:          dirs,
		EdgeLengths:         lens,
		DualEdgeLengths:     dualLens,
	}
}

// BoundaryEdges returns the endpoint pairs of the boundary edges.
func (m *EdgeMesh) BoundaryEdges() [][2]int {
	out := make([][2]int, len(m.BoundaryEdgeIndices))
	for i, idx := range m.BoundaryEdgeIndices {
		out[i] = m.Edges[idx]
	}
	return out
}
