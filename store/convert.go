// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import "github.com/cpmech/gotdgl/mesh"

// FromMesh converts a fully-derived mesh.Mesh into its persisted form.
func FromMesh(m *mesh.Mesh) *MeshRecord {
	elements := make([][]int, len(m.Elements))
	for i, e := range m.Elements {
		elements[i] = []int{e[0], e[1], e[2]}
	}
	return &MeshRecord{
		X:                m.X,
		Y:                m.Y,
		Elements:         elements,
		BoundaryIndices:  m.Boundary,
		Areas:            m.Areas,
		VoltagePoints:    m.VoltagePoints,
		HasVoltagePoints: m.HasVoltagePoints,
		InputEdge:        m.InputEdge,
		HasInputEdge:     m.HasInputEdge,
		OutputEdge:       m.OutputEdge,
		HasOutputEdge:    m.HasOutputEdge,
		EdgeMesh: &EdgeMeshRecord{
			Edges:               m.EdgeMesh.Edges,
			BoundaryEdgeIndices: m.EdgeMesh.BoundaryEdgeIndices,
			Xe:                  m.EdgeMesh.Xe,
			Ye:                  m.EdgeMesh.Ye,
			Directions:          m.EdgeMesh.Directions,
			EdgeLengths:         m.EdgeMesh.EdgeLengths,
			DualEdgeLengths:     m.EdgeMesh.DualEdgeLengths,
		},
		DualMesh: &DualMeshRecord{
			X: m.DualMesh.X,
			Y: m.DualMesh.Y,
		},
	}
}

// ToMesh restores a mesh.Mesh from an already-compiled record, without
// recomputing any derived array.
func ToMesh(r *MeshRecord) (*mesh.Mesh, error) {
	if !r.IsCompiled() {
		return nil, ioFailure("store: mesh record is missing derived arrays; compile it first")
	}
	elements := make([][3]int, len(r.Elements))
	for i, e := range r.Elements {
		if len(e) != 3 {
			return nil, ioFailure("store: mesh record element %d has %d entries, want 3", i, len(e))
		}
		elements[i] = [3]int{e[0], e[1], e[2]}
	}
	return &mesh.Mesh{
		X:                r.X,
		Y:                r.Y,
		Elements:         elements,
		Boundary:         r.BoundaryIndices,
		Areas:            r.Areas,
		VoltagePoints:    r.VoltagePoints,
		HasVoltagePoints: r.HasVoltagePoints,
		InputEdge:        r.InputEdge,
		HasInputEdge:     r.HasInputEdge,
		OutputEdge:       r.OutputEdge,
		HasOutputEdge:    r.HasOutputEdge,
		DualMesh: &mesh.DualMesh{
			X: r.DualMesh.X,
			Y: r.DualMesh.Y,
		},
		EdgeMesh: &mesh.EdgeMesh{
			Edges:               r.EdgeMesh.Edges,
			BoundaryEdgeIndices: r.EdgeMesh.BoundaryEdgeIndices,
			Xe:                  r.EdgeMesh.Xe,
			Ye:                  r.EdgeMesh.Ye,
			Directions:          r.EdgeMesh.Directions,
			EdgeLengths:         r.EdgeMesh.EdgeLengths,
			DualEdgeLengths:     r.EdgeMesh.DualEdgeLengths,
		},
	}, nil
}
