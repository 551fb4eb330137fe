// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import "github.com/cpmech/gosl/la"

// RealMatrix is a real sparse operator kept around only for repeated
// matrix-vector multiplication (never factored or solved): the Neumann
// boundary operator, the mu-gradient and the divergence (spec.md §4.4).
// It mirrors the teacher's own compressed-column conversion
// (fem/essenbcs.go converts its constraint Triplet to a *la.CCMatrix once
// via ToMatrix, then drives la.SpMatVecMulAdd against it every iteration)
// rather than re-deriving a product from the triplet form each call.
type RealMatrix struct {
	ccm  *la.CCMatrix
	rows int
}

// NewRealMatrix converts a fully-assembled triplet with the given row
// count into a RealMatrix.
func NewRealMatrix(t *la.Triplet, rows int) *RealMatrix {
	return &RealMatrix{ccm: t.ToMatrix(nil), rows: rows}
}

// MatVec returns y = M·x.
func (m *RealMatrix) MatVec(x []float64) []float64 {
	y := make([]float64, m.rows)
	la.SpMatVecMulAdd(y, 1, m.ccm, x)
	return y
}
