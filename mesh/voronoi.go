// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "math"

// generateVoronoiVertices computes the circumcenter of every triangle in
// the tesselation via the planar formula, translating each triangle so
// that its first vertex sits at the origin first (spec.md §4.1). It
// returns InvalidMeshError if any triangle is degenerate (zero denominator).
func generateVoronoiVertices(x, y []float64, elements [][3]int) (xc, yc []float64, err error) {
	n := len(elements)
	xc = make([]float64, n)
	yc = make([]float64, n)

	for i, e := range elements {
		ax, ay := x[e[0]], y[e[0]]
		bx, by := x[e[1]]-ax, y[e[1]]-ay
		cx, cy := x[e[2]]-ax, y[e[2]]-ay

		d := 2 * (bx*cy - by*cx)
		if d == 0 {
			return nil, nil, invalidMesh("mesh: triangle %d is degenerate (zero circumcenter denominator)", i)
		}

		b2 := bx*bx + by*by
		c2 := cx*cx + cy*cy

		xcp := (cy*b2 - by*c2) / d
		ycp := (bx*c2 - cx*b2) / d

		xc[i] = xcp + ax
		yc[i] = ycp + ay
	}
	return
}

// surroundingPolygons returns, for each of the numSites sites, the indices
// of the triangles (equivalently circumcenters) that the site belongs to.
func surroundingPolygons(elements [][3]int, numSites int) [][]int {
	polys := make([][]int, numSites)
	for t, e := range elements {
		for _, s := range e {
			polys[s] = append(polys[s], t)
		}
	}
	return polys
}

// computeSurroundingAreas computes the Voronoi-cell area for every site, per
// spec.md §3's area-computation rule: interior sites get the plain convex
// hull area of their incident circumcenters; boundary sites additionally
// fold in the site itself and the midpoints of its two incident boundary
// edges, subtracting the concave triangle when the resulting polygon isn't
// itself convex.
func computeSurroundingAreas(x, y, xDual, yDual []float64, boundary []int, edges [][2]int, boundaryEdgeIdx []int, polygons [][]int) []float64 {
	boundarySet := make(map[int]bool, len(boundary))
	for _, b := range boundary {
		boundarySet[b] = true
	}

	areas := make([]float64, len(polygons))

	for i, poly := range polygons {
		polyX := make([]float64, len(poly))
		polyY := make([]float64, len(poly))
		for k, t := range poly {
			polyX[k] = xDual[t]
			polyY[k] = yDual[t]
		}

		if !boundarySet[i] {
			a, _ := convexHullArea(polyX, polyY)
			areas[i] = a
			continue
		}

		var midX, midY []float64
		for _, be := range boundaryEdgeIdx {
			e := edges[be]
			if e[0] == i || e[1] == i {
				midX = append(midX, (x[e[0]]+x[e[1]])/2)
				midY = append(midY, (y[e[0]]+y[e[1]])/2)
			}
		}

		fullX := append(append(append([]float64{}, polyX...), x[i]), midX...)
		fullY := append(append(append([]float64{}, polyY...), y[i]), midY...)

		area, isConvex := convexHullArea(fullX, fullY)
		if !isConvex {
			concaveX := append([]float64{x[i]}, midX...)
			concaveY := append([]float64{y[i]}, midY...)
			concave, _ := convexHullArea(concaveX, concaveY)
			area -= concave
		}
		areas[i] = area
	}
	return areas
}

// dualEdgeLengths computes, for every edge, the distance between its two
// incident circumcenters (interior edges) or between its midpoint and its
// single incident circumcenter (boundary edges). Incident triangles are
// found by a hash map keyed on the sorted endpoint pair (spec.md §9), built
// once in O(M) rather than re-derived from the polygon sets per edge.
func dualEdgeLengths(xe, ye []float64, elements [][3]int, xDual, yDual []float64, edges [][2]int) []float64 {
	edgeToTriangles := make(map[edgeKey][]int, 3*len(elements))
	localEdges := [3][2]int{{0, 1}, {1, 2}, {2, 0}}
	for t, e := range elements {
		for _, le := range localEdges {
			u, v := e[le[0]], e[le[1]]
			k := edgeKey{u: u, v: v}
			if k.u > k.v {
				k.u, k.v = k.v, k.u
			}
			edgeToTriangles[k] = append(edgeToTriangles[k], t)
		}
	}

	out := make([]float64, len(edges))
	for i, e := range edges {
		k := edgeKey{u: e[0], v: e[1]}
		if k.u > k.v {
			k.u, k.v = k.v, k.u
		}
		tris := edgeToTriangles[k]
		if len(tris) == 1 {
			dx := xDual[tris[0]] - xe[i]
			dy := yDual[tris[0]] - ye[i]
			out[i] = math.Hypot(dx, dy)
		} else {
			dx := xDual[tris[0]] - xDual[tris[1]]
			dy := yDual[tris[0]] - yDual[tris[1]]
			out[i] = math.Hypot(dx, dy)
		}
	}
	return out
}
