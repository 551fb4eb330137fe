// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gotdgl/mesh"
	"github.com/cpmech/gotdgl/ops"
)

func squareMesh(tst *testing.T) *mesh.Mesh {
	x := []float64{0, 1, 1, 0}
	y := []float64{0, 0, 1, 1}
	e := [][]int{{0, 1, 2}, {0, 2, 3}}
	m, err := mesh.FromTriangulation(x, y, e)
	if err != nil {
		tst.Fatalf("FromTriangulation failed: %v", err)
	}
	return m
}

// S3: the gauge-trivial, unfixed Laplacian has the constant vector in its
// null space: L·1 = 0.
func Test_ops01_laplacian_null_space(tst *testing.T) {

	chk.PrintTitle("ops01. Laplacian null space (S3)")

	m := squareMesh(tst)
	n := len(m.X)
	t, err := ops.BuildLaplacian(m, ops.NewConfig())
	if err != nil {
		tst.Fatalf("BuildLaplacian failed: %v", err)
	}

	ones := make([]float64, n)
	for i := range ones {
		ones[i] = 1
	}
	y := ops.NewRealMatrix(t, n).MatVec(ones)
	for _, v := range y {
		chk.Scalar(tst, "L.1", 1e-12, v, 0)
	}
}

// Property 6: Dirichlet idempotence. Applying the Laplacian built with
// fixed sites S to a vector that is nonzero only at sites outside S
// reproduces the same rows regardless of how many times the operator is
// (re)built.
func Test_ops02_dirichlet_idempotence(tst *testing.T) {

	chk.PrintTitle("ops02. Dirichlet idempotence")

	m := squareMesh(tst)
	n := len(m.X)
	cfg := ops.NewConfig().WithFixedSites([]int{0, 3})

	probe := make([]float64, n)
	probe[1] = 1

	t1, err := ops.BuildLaplacian(m, cfg)
	if err != nil {
		tst.Fatalf("BuildLaplacian failed: %v", err)
	}
	t2, err := ops.BuildLaplacian(m, cfg)
	if err != nil {
		tst.Fatalf("BuildLaplacian failed: %v", err)
	}

	y1 := ops.NewRealMatrix(t1, n).MatVec(probe)
	y2 := ops.NewRealMatrix(t2, n).MatVec(probe)
	for _, s := range cfg.FixedSites {
		chk.Scalar(tst, "fixed row value", 1e-14, y1[s], 0)
		chk.Scalar(tst, "rebuilt fixed row matches", 1e-14, y1[s], y2[s])
	}
}

func Test_ops03_gradient_divergence_shapes(tst *testing.T) {

	chk.PrintTitle("ops03. Gradient/divergence shapes")

	m := squareMesh(tst)
	numEdges := len(m.EdgeMesh.Edges)
	numSites := len(m.X)

	g, err := ops.BuildGradient(m)
	if err != nil {
		tst.Fatalf("BuildGradient failed: %v", err)
	}
	d, err := ops.BuildDivergence(m)
	if err != nil {
		tst.Fatalf("BuildDivergence failed: %v", err)
	}

	probe := make([]float64, numSites)
	for i := range probe {
		probe[i] = float64(i + 1)
	}
	gy := ops.NewRealMatrix(g, numEdges).MatVec(probe)
	chk.IntAssert(len(gy), numEdges)

	probeE := make([]float64, numEdges)
	for i := range probeE {
		probeE[i] = float64(i + 1)
	}
	dy := ops.NewRealMatrix(d, numSites).MatVec(probeE)
	chk.IntAssert(len(dy), numSites)
}

func Test_ops04_neumann_boundary_shape(tst *testing.T) {

	chk.PrintTitle("ops04. Neumann boundary operator shape")

	m := squareMesh(tst)
	numSites := len(m.X)
	numBoundaryEdges := len(m.EdgeMesh.BoundaryEdgeIndices)

	t, err := ops.BuildNeumannBoundaryLaplacian(m, ops.NewConfig())
	if err != nil {
		tst.Fatalf("BuildNeumannBoundaryLaplacian failed: %v", err)
	}
	probe := make([]float64, numBoundaryEdges)
	for i := range probe {
		probe[i] = 1
	}
	y := ops.NewRealMatrix(t, numSites).MatVec(probe)
	chk.IntAssert(len(y), numSites)
}

func Test_ops05_complex_laplacian_requires_link_exponents(tst *testing.T) {

	chk.PrintTitle("ops05. Complex Laplacian requires link exponents")

	m := squareMesh(tst)
	_, err := ops.BuildLaplacianComplex(m, ops.NewConfig())
	if err == nil {
		tst.Errorf("expected InvalidOperatorError when link exponents are absent")
	}
	if _, ok := err.(*ops.InvalidOperatorError); !ok {
		tst.Errorf("expected *InvalidOperatorError, got %T", err)
	}
}
