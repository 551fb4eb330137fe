// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package store persists meshes and simulation snapshots as directories of
// gob-encoded records, generalizing the teacher's fem.Domain.SaveSol /
// fem.Domain.SaveIvs pair (fem/fileio.go) from a per-timestep nodal/element
// solution dump to the mesh and snapshot records spec.md §4.6 and §6 name.
package store

// EdgeMeshRecord mirrors mesh.EdgeMesh for persistence (spec.md §6,
// "/mesh/edge_mesh/*").
type EdgeMeshRecord struct {
	Edges               [][2]int
	BoundaryEdgeIndices []int
	Xe, Ye              []float64
	Directions          [][2]float64
	EdgeLengths         []float64
	DualEdgeLengths     []float64
}

// DualMeshRecord mirrors mesh.DualMesh for persistence (spec.md §6,
// "/mesh/dual_mesh/{x,y}").
type DualMeshRecord struct {
	X, Y []float64
}

// MeshRecord is the mesh group of spec.md §4.6 and §6: either a raw
// triangulation (x, y, elements only) or a fully-derived mesh (every field
// below populated). IsCompiled reports which.
type MeshRecord struct {
	X, Y             []float64
	Elements         [][]int
	BoundaryIndices  []int
	Areas            []float64
	VoltagePoints    [2]int
	HasVoltagePoints bool
	InputEdge        [4]float64
	HasInputEdge     bool
	OutputEdge       [4]float64
	HasOutputEdge    bool

	EdgeMesh *EdgeMeshRecord
	DualMesh *DualMeshRecord
}

// IsCompiled reports whether every derived array is present, i.e. whether
// this record can be restored without recomputing the dual/edge mesh and
// the Voronoi areas (spec.md §4.6).
func (r *MeshRecord) IsCompiled() bool {
	return r.EdgeMesh != nil && r.DualMesh != nil && len(r.Areas) == len(r.X)
}

// SnapshotRecord is a single /data/<step> group of spec.md §6: the
// per-step field values, the running-state buffers accumulated since the
// previous snapshot, and the attributes describing the drive at write time.
type SnapshotRecord struct {
	Step int

	Psi           []complex128
	Mu            []float64
	A             [][2]float64 // only populated once, at step 0
	Supercurrent  []float64
	NormalCurrent []float64

	// Voltage and Current hold the running-state buffers; empty at step 0.
	Voltage []float64
	Current []float64

	Attrs SnapshotAttrs
}

// SnapshotAttrs is a record's "@attrs" group (spec.md §6).
type SnapshotAttrs struct {
	Current       float64
	Flow          float64
	MagneticField float64
	U             float64
	Gamma         float64
	Step          int
	Time          float64
	Dt            float64
}
