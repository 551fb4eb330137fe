// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import (
	"bytes"
	"encoding/gob"
	"os"
	"path/filepath"

	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gotdgl/mesh"
)

// Store is a directory-backed record store: one mesh record and one
// snapshot record per saved step, each gob-encoded into its own file,
// generalizing fem.Domain's SaveSol/SaveIvs pair (fem/fileio.go) from a
// fixed nodal/element solution shape to the mesh and snapshot records
// spec.md §4.6 names.
type Store struct {
	Dir string
}

// Open returns a Store rooted at dir. The directory is created lazily on
// first write.
func Open(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) meshPath() string {
	return filepath.Join(s.Dir, "mesh.gob")
}

func (s *Store) alphaPath() string {
	return filepath.Join(s.Dir, "disorder_alpha.gob")
}

func (s *Store) snapshotPath(step int) string {
	return filepath.Join(s.Dir, "data", io.Sf("%010d.gob", step))
}

// SaveMesh writes rec as the store's mesh record, overwriting any previous
// one.
func (s *Store) SaveMesh(rec *MeshRecord) error {
	return encodeFile(s.meshPath(), rec)
}

// LoadMesh reads the store's mesh record. Missing file or decode failure
// surfaces as an IoFailureError (spec.md §7).
func (s *Store) LoadMesh() (*MeshRecord, error) {
	var rec MeshRecord
	if err := decodeFile(s.meshPath(), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// LoadOrBuildMesh loads the store's mesh record and returns a usable
// mesh.Mesh, deriving the dual mesh, edge mesh and areas in memory if the
// record has not been compiled on disk (spec.md §4.6's (a)/(b) cases).
// Unlike Compile, it never rewrites the store.
func (s *Store) LoadOrBuildMesh() (*mesh.Mesh, error) {
	rec, err := s.LoadMesh()
	if err != nil {
		return nil, err
	}
	if rec.IsCompiled() {
		return ToMesh(rec)
	}
	m, err := mesh.FromTriangulation(rec.X, rec.Y, rec.Elements)
	if err != nil {
		return nil, err
	}
	m.VoltagePoints, m.HasVoltagePoints = rec.VoltagePoints, rec.HasVoltagePoints
	m.InputEdge, m.HasInputEdge = rec.InputEdge, rec.HasInputEdge
	m.OutputEdge, m.HasOutputEdge = rec.OutputEdge, rec.HasOutputEdge
	return m, nil
}

// IsCompiled reports whether the store's mesh record already carries every
// derived array (spec.md §4.6).
func (s *Store) IsCompiled() (bool, error) {
	rec, err := s.LoadMesh()
	if err != nil {
		return false, err
	}
	return rec.IsCompiled(), nil
}

// Compile rewrites the store's mesh record in place into the fully-derived
// form, deriving the dual mesh, edge mesh and Voronoi areas from (x, y,
// elements). It is a no-op, per spec.md §4.6, if the record is already
// compiled.
func (s *Store) Compile() error {
	rec, err := s.LoadMesh()
	if err != nil {
		return err
	}
	if rec.IsCompiled() {
		return nil
	}
	m, err := mesh.FromTriangulation(rec.X, rec.Y, rec.Elements)
	if err != nil {
		return err
	}
	m.VoltagePoints, m.HasVoltagePoints = rec.VoltagePoints, rec.HasVoltagePoints
	m.InputEdge, m.HasInputEdge = rec.InputEdge, rec.HasInputEdge
	m.OutputEdge, m.HasOutputEdge = rec.OutputEdge, rec.HasOutputEdge
	return s.SaveMesh(FromMesh(m))
}

// SaveAlpha writes the optional per-site disorder array (spec.md §6,
// "/disorder/alpha").
func (s *Store) SaveAlpha(alpha []float64) error {
	return encodeFile(s.alphaPath(), alpha)
}

// LoadAlpha reads the per-site disorder array. ok is false if none was
// ever saved.
func (s *Store) LoadAlpha() (alpha []float64, ok bool, err error) {
	if _, statErr := os.Stat(s.alphaPath()); os.IsNotExist(statErr) {
		return nil, false, nil
	}
	if err := decodeFile(s.alphaPath(), &alpha); err != nil {
		return nil, false, err
	}
	return alpha, true, nil
}

// SaveSnapshot writes rec under its Step.
func (s *Store) SaveSnapshot(rec *SnapshotRecord) error {
	return encodeFile(s.snapshotPath(rec.Step), rec)
}

// LoadSnapshot reads the record previously saved at step.
func (s *Store) LoadSnapshot(step int) (*SnapshotRecord, error) {
	var rec SnapshotRecord
	if err := decodeFile(s.snapshotPath(step), &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

func encodeFile(path string, v interface{}) error {
	var buf bytes.Buffer
	if err := gob.NewEncoder(&buf).Encode(v); err != nil {
		return ioFailure("store: cannot encode %s: %v", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return ioFailure("store: cannot create directory for %s: %v", path, err)
	}
	fil, err := os.Create(path)
	if err != nil {
		return ioFailure("store: cannot create %s: %v", path, err)
	}
	defer fil.Close()
	if _, err := fil.Write(buf.Bytes()); err != nil {
		return ioFailure("store: cannot write %s: %v", path, err)
	}
	return nil
}

func decodeFile(path string, v interface{}) error {
	fil, err := os.Open(path)
	if err != nil {
		return ioFailure("store: cannot open %s: %v", path, err)
	}
	defer fil.Close()
	if err := gob.NewDecoder(fil).Decode(v); err != nil {
		return ioFailure("store: cannot decode %s: %v", path, err)
	}
	return nil
}
