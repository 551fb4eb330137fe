// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

// ComplexMatrix is a sparse matrix in coordinate (COO) form over complex128
// values. gosl/la.Triplet is real-valued only, so the gauge-invariant
// Laplacian and gradient (carrying link variables, spec.md §4.3) are
// assembled with this small type instead, following the same
// Init-then-repeated-Put convention as la.Triplet. Only matrix-vector
// products are needed for these operators (spec.md §4.4): the complex
// field update applies the Laplacian and gradient directly and never
// factors or solves them.
type ComplexMatrix struct {
	rows, cols int
	ai, aj     []int
	ax         []complex128
	pos        int
}

// NewComplexMatrix allocates a ComplexMatrix for a rows-by-cols operator
// with room for up to maxNnz Put calls.
func NewComplexMatrix(rows, cols, maxNnz int) *ComplexMatrix {
	return &ComplexMatrix{
		rows: rows,
		cols: cols,
		ai:   make([]int, maxNnz),
		aj:   make([]int, maxNnz),
		ax:   make([]complex128, maxNnz),
	}
}

// Put appends one (i, j, value) entry. Entries sharing the same (i, j) are
// summed by MatVec, mirroring la.Triplet's accumulate-on-assembly semantics.
func (m *ComplexMatrix) Put(i, j int, v complex128) {
	m.ai[m.pos] = i
	m.aj[m.pos] = j
	m.ax[m.pos] = v
	m.pos++
}

// Rows returns the number of rows.
func (m *ComplexMatrix) Rows() int { return m.rows }

// Cols returns the number of columns.
func (m *ComplexMatrix) Cols() int { return m.cols }

// MatVec computes y = M·x.
func (m *ComplexMatrix) MatVec(x []complex128) []complex128 {
	y := make([]complex128, m.rows)
	for k := 0; k < m.pos; k++ {
		y[m.ai[k]] += m.ax[k] * x[m.aj[k]]
	}
	return y
}
