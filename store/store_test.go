// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store_test

import (
	"os"
	"reflect"
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gotdgl/mesh"
	"github.com/cpmech/gotdgl/store"
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

// Property 9: round-trip persistence. Saving a compiled mesh and loading it
// back reproduces every derived array bitwise.
func Test_store01_mesh_roundtrip(tst *testing.T) {

	chk.PrintTitle("store01. Mesh round-trip persistence (property 9)")

	dir, err := os.MkdirTemp("", "gotdgl-store-test")
	if err != nil {
		tst.Fatalf("MkdirTemp failed: %v", err)
	}
	defer os.RemoveAll(dir)

	m := squareMesh(tst)
	s := store.Open(dir)
	if err := s.SaveMesh(store.FromMesh(m)); err != nil {
		tst.Fatalf("SaveMesh failed: %v", err)
	}

	rec, err := s.LoadMesh()
	if err != nil {
		tst.Fatalf("LoadMesh failed: %v", err)
	}
	if !rec.IsCompiled() {
		tst.Fatalf("expected round-tripped record to remain compiled")
	}

	back, err := store.ToMesh(rec)
	if err != nil {
		tst.Fatalf("ToMesh failed: %v", err)
	}

	if !reflect.DeepEqual(m.X, back.X) || !reflect.DeepEqual(m.Y, back.Y) {
		tst.Errorf("site coordinates did not round-trip bitwise")
	}
	if !reflect.DeepEqual(m.Areas, back.Areas) {
		tst.Errorf("areas did not round-trip bitwise")
	}
	if !reflect.DeepEqual(m.EdgeMesh.Edges, back.EdgeMesh.Edges) {
		tst.Errorf("edge table did not round-trip bitwise")
	}
	if !reflect.DeepEqual(m.DualMesh.X, back.DualMesh.X) || !reflect.DeepEqual(m.DualMesh.Y, back.DualMesh.Y) {
		tst.Errorf("dual mesh did not round-trip bitwise")
	}
}

// Property 10: compile idempotence. Compiling an already-compiled record is
// a no-op; compiling a raw record twice yields the same record both times.
func Test_store02_compile_idempotence(tst *testing.T) {

	chk.PrintTitle("store02. Compile idempotence (property 10)")

	dir, err := os.MkdirTemp("", "gotdgl-store-test")
	if err != nil {
		tst.Fatalf("MkdirTemp failed: %v", err)
	}
	defer os.RemoveAll(dir)

	raw := &store.MeshRecord{
		X:        []float64{0, 1, 1, 0},
		Y:        []float64{0, 0, 1, 1},
		Elements: [][]int{{0, 1, 2}, {0, 2, 3}},
	}
	s := store.Open(dir)
	if err := s.SaveMesh(raw); err != nil {
		tst.Fatalf("SaveMesh failed: %v", err)
	}

	compiled, err := s.IsCompiled()
	if err != nil {
		tst.Fatalf("IsCompiled failed: %v", err)
	}
	if compiled {
		tst.Fatalf("raw record should not report as compiled")
	}

	if err := s.Compile(); err != nil {
		tst.Fatalf("Compile failed: %v", err)
	}
	once, err := s.LoadMesh()
	if err != nil {
		tst.Fatalf("LoadMesh failed: %v", err)
	}
	if !once.IsCompiled() {
		tst.Fatalf("expected record to be compiled after Compile")
	}

	if err := s.Compile(); err != nil {
		tst.Fatalf("second Compile failed: %v", err)
	}
	twice, err := s.LoadMesh()
	if err != nil {
		tst.Fatalf("LoadMesh failed: %v", err)
	}

	if !reflect.DeepEqual(once, twice) {
		tst.Errorf("compile(compile(file)) != compile(file)")
	}
}

func Test_store03_snapshot_roundtrip(tst *testing.T) {

	chk.PrintTitle("store03. Snapshot round-trip")

	dir, err := os.MkdirTemp("", "gotdgl-store-test")
	if err != nil {
		tst.Fatalf("MkdirTemp failed: %v", err)
	}
	defer os.RemoveAll(dir)

	s := store.Open(dir)
	rec := &store.SnapshotRecord{
		Step:          100,
		Psi:           []complex128{1, complex(0, 1)},
		Mu:            []float64{0.1, 0.2},
		Supercurrent:  []float64{0.01, 0.02, 0.03},
		NormalCurrent: []float64{0.04, 0.05, 0.06},
		Voltage:       []float64{0, 0.1, 0.2},
		Current:       []float64{1, 1, 1},
		Attrs: store.SnapshotAttrs{
			Current: 1, Flow: 0.3, MagneticField: 0.5, U: 5.79, Gamma: 10.0,
			Step: 100, Time: 0.01, Dt: 1e-4,
		},
	}
	if err := s.SaveSnapshot(rec); err != nil {
		tst.Fatalf("SaveSnapshot failed: %v", err)
	}

	back, err := s.LoadSnapshot(100)
	if err != nil {
		tst.Fatalf("LoadSnapshot failed: %v", err)
	}
	if !reflect.DeepEqual(rec, back) {
		tst.Errorf("snapshot did not round-trip: got %+v, want %+v", back, rec)
	}
}

func Test_store04_load_missing_is_io_failure(tst *testing.T) {

	chk.PrintTitle("store04. Missing record surfaces IoFailureError")

	s := store.Open("/nonexistent-gotdgl-store-dir")
	_, err := s.LoadMesh()
	if err == nil {
		tst.Fatalf("expected an error loading from a nonexistent store")
	}
	if _, ok := err.(*store.IoFailureError); !ok {
		tst.Errorf("expected *IoFailureError, got %T", err)
	}
}
