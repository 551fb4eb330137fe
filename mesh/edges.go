// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "sort"

// edgeKey is the sorted (min, max) pair that hashes an edge, keyed by the
// pair rather than a string: the original Python implementation's
// string-hashing of the sorted endpoints is an accident of that
// implementation, not a requirement (spec.md §9).
type edgeKey struct {
	u, v int
}

// GetEdges extracts the unique edges of a triangulation and flags the ones
// that belong to exactly one triangle (the boundary edges).
//
// elements is (T,3): three site indices per triangle. The three edges of
// each triangle are (0,1), (1,2), (2,0); each is sorted so the smaller
// index comes first, then duplicates across triangles are merged by
// occurrence count. An edge seen exactly once is a boundary edge.
func GetEdges(elements [][3]int) (edges [][2]int, isBoundary []bool) {
	counts := make(map[edgeKey]int, 3*len(elements))
	order := make([]edgeKey, 0, 3*len(elements))

	add := func(a, b int) {
		k := edgeKey{u: a, v: b}
		if k.u > k.v {
			k.u, k.v = k.v, k.u
		}
		if _, ok := counts[k]; !ok {
			order = append(order, k)
		}
		counts[k]++
	}

	for _, e := range elements {
		add(e[0], e[1])
		add(e[1], e[2])
		add(e[2], e[0])
	}

	// sorted edge table: ascending by (u, v), matching np.unique's row order
	sort.Slice(order, func(i, j int) bool {
		if order[i].u != order[j].u {
			return order[i].u < order[j].u
		}
		return order[i].v < order[j].v
	})

	edges = make([][2]int, len(order))
	isBoundary = make([]bool, len(order))
	for i, k := range order {
		edges[i] = [2]int{k.u, k.v}
		isBoundary[i] = counts[k] == 1
	}
	return
}
