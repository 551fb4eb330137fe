// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Operator folds the results of several coordinate predicates together:
// And keeps only the sites/edges every predicate selects (intersection),
// Or keeps everything any predicate selects (union). This generalizes the
// original implementation's Operator enum, whose values were literally
// np.all/np.any (spec.md §4.2, §9).
type Operator int

const (
	And Operator = iota
	Or
)

func (op Operator) fold(masks [][]bool) []bool {
	n := len(masks[0])
	out := make([]bool, n)
	for i := 0; i < n; i++ {
		switch op {
		case Or:
			v := false
			for _, m := range masks {
				v = v || m[i]
			}
			out[i] = v
		default: // And
			v := true
			for _, m := range masks {
				v = v && m[i]
			}
			out[i] = v
		}
	}
	return out
}

// SitePredicate selects sites given their coordinates.
type SitePredicate func(x, y []float64) []bool

// EdgePredicate selects edges given, for each edge, the pair of endpoint
// x (and y) coordinates as a (n,2) parallel array.
type EdgePredicate func(xe, ye [][2]float64) []bool

func maskToIndices(mask []bool) []int {
	out := make([]int, 0, len(mask))
	for i, v := range mask {
		if v {
			out = append(out, i)
		}
	}
	return out
}

// SiteIndexWhere returns the indices of every mesh site fulfilling the
// given predicates, folded with op.
func (m *Mesh) SiteIndexWhere(op Operator, preds ...SitePredicate) []int {
	masks := make([][]bool, len(preds))
	for i, p := range preds {
		masks[i] = p(m.X, m.Y)
	}
	return maskToIndices(op.fold(masks))
}

// BoundaryIndexWhere returns the (global) site indices among the boundary
// sites fulfilling the given predicates, folded with op.
func (m *Mesh) BoundaryIndexWhere(op Operator, preds ...SitePredicate) []int {
	xb := make([]float64, len(m.Boundary))
	yb := make([]float64, len(m.Boundary))
	for i, s := range m.Boundary {
		xb[i] = m.X[s]
		yb[i] = m.Y[s]
	}
	masks := make([][]bool, len(preds))
	for i, p := range preds {
		masks[i] = p(xb, yb)
	}
	local := maskToIndices(op.fold(masks))
	out := make([]int, len(local))
	for i, l := range local {
		out[i] = m.Boundary[l]
	}
	return out
}

// EdgeBoundaryIndexWhere returns the local indices (into
// EdgeMesh.BoundaryEdgeIndices) of the boundary edges whose endpoint
// coordinates fulfill the given predicates, folded with op.
func (m *Mesh) EdgeBoundaryIndexWhere(op Operator, preds ...EdgePredicate) []int {
	boundaryEdges := m.EdgeMesh.BoundaryEdges()
	xe := make([][2]float64, len(boundaryEdges))
	ye := make([][2]float64, len(boundaryEdges))
	for i, e := range boundaryEdges {
		xe[i] = [2]float64{m.X[e[0]], m.X[e[1]]}
		ye[i] = [2]float64{m.Y[e[0]], m.Y[e[1]]}
	}
	masks := make([][]bool, len(preds))
	for i, p := range preds {
		masks[i] = p(xe, ye)
	}
	return maskToIndices(op.fold(masks))
}
