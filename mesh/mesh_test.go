// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"github.com/cpmech/gosl/chk"
)

// singleTriangle builds the degenerate single-triangle mesh of spec.md's
// seed case S1: sites (0,0), (1,0), (0,1).
func singleTriangle(tst *testing.T) *Mesh {
	x := []float64{0, 1, 0}
	y := []float64{0, 0, 1}
	e := [][]int{{0, 1, 2}}
	m, err := FromTriangulation(x, y, e)
	if err != nil {
		tst.Fatalf("FromTriangulation failed: %v", err)
	}
	return m
}

func Test_mesh01_single_triangle(tst *testing.T) {

	chk.PrintTitle("mesh01. Degenerate single-triangle mesh (S1)")

	m := singleTriangle(tst)

	chk.IntAssert(len(m.Boundary), 3)
	chk.IntAssert(len(m.EdgeMesh.Edges), 3)
	chk.IntAssert(len(m.EdgeMesh.BoundaryEdgeIndices), 3)

	chk.Scalar(tst, "circumcenter x", 1e-15, m.DualMesh.X[0], 0.5)
	chk.Scalar(tst, "circumcenter y", 1e-15, m.DualMesh.Y[0], 0.5)

	var sumArea float64
	for _, a := range m.Areas {
		sumArea += a
	}
	chk.Scalar(tst, "sum of areas", 1e-9, sumArea, 0.5)
}

// squareSplit builds the two-triangle square of spec.md's seed case S2.
func squareSplit(tst *testing.T) *Mesh {
	x := []float64{0, 1, 1, 0}
	y := []float64{0, 0, 1, 1}
	e := [][]int{{0, 1, 2}, {0, 2, 3}}
	m, err := FromTriangulation(x, y, e)
	if err != nil {
		tst.Fatalf("FromTriangulation failed: %v", err)
	}
	return m
}

func Test_mesh02_square_split(tst *testing.T) {

	chk.PrintTitle("mesh02. Square split by diagonal (S2)")

	m := squareSplit(tst)

	chk.IntAssert(len(m.EdgeMesh.Edges), 5)
	chk.IntAssert(len(m.EdgeMesh.BoundaryEdgeIndices), 4)

	var sumArea float64
	for _, a := range m.Areas {
		sumArea += a
	}
	chk.Scalar(tst, "sum of areas", 1e-9, sumArea, 1.0)

	if !(m.Areas[0] > m.Areas[1]) {
		tst.Errorf("expected A[0] > A[1], got A[0]=%v A[1]=%v", m.Areas[0], m.Areas[1])
	}
	chk.Scalar(tst, "A[0] == A[2]", 1e-12, m.Areas[0], m.Areas[2])
	chk.Scalar(tst, "A[1] == A[3]", 1e-12, m.Areas[1], m.Areas[3])
}

// Property 1: boundary edges are exactly those belonging to one triangle,
// and every boundary site is incident to a boundary edge.
func Test_mesh03_boundary_detection_property(tst *testing.T) {

	chk.PrintTitle("mesh03. Boundary detection property")

	m := squareSplit(tst)

	incident := make(map[int]bool)
	for _, idx := range m.EdgeMesh.BoundaryEdgeIndices {
		e := m.EdgeMesh.Edges[idx]
		incident[e[0]] = true
		incident[e[1]] = true
	}
	for _, s := range m.Boundary {
		if !incident[s] {
			tst.Errorf("boundary site %d is not incident to any boundary edge", s)
		}
	}
}

// Property 3: every (u,v) pair with u<v appears at most once.
func Test_mesh04_edge_uniqueness_property(tst *testing.T) {

	chk.PrintTitle("mesh04. Edge uniqueness property")

	m := squareSplit(tst)
	seen := make(map[[2]int]bool)
	for _, e := range m.EdgeMesh.Edges {
		if e[0] >= e[1] {
			tst.Errorf("edge %v not sorted ascending", e)
		}
		if seen[e] {
			tst.Errorf("edge %v appears more than once", e)
		}
		seen[e] = true
	}
}

func Test_mesh05_degenerate_triangle_rejected(tst *testing.T) {

	chk.PrintTitle("mesh05. Degenerate triangle is rejected")

	x := []float64{0, 1, 2}
	y := []float64{0, 0, 0}
	_, err := FromTriangulation(x, y, [][]int{{0, 1, 2}})
	if err == nil {
		tst.Errorf("expected InvalidMeshError for collinear triangle")
	}
	if _, ok := err.(*InvalidMeshError); !ok {
		tst.Errorf("expected *InvalidMeshError, got %T", err)
	}
}

func Test_mesh06_transpose_tolerance(tst *testing.T) {

	chk.PrintTitle("mesh06. (3,T) elements array is auto-transposed")

	x := []float64{0, 1, 0}
	y := []float64{0, 0, 1}
	transposed := [][]int{{0}, {1}, {2}}
	m, err := FromTriangulation(x, y, transposed)
	if err != nil {
		tst.Fatalf("FromTriangulation failed: %v", err)
	}
	chk.IntAssert(len(m.Elements), 1)
}
