// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// DualMesh holds the Voronoi (dual) lattice: the circumcenter of every
// triangle in the primal triangulation.
type DualMesh struct {
	X, Y []float64 // circumcenter coordinates, one pair per triangle
}

func dualMeshFromTriangulation(x, y []float64, elements [][3]int) (*DualMesh, error) {
	xc, yc, err := generateVoronoiVertices(x, y, elements)
	if err != nil {
		return nil, err
	}
	return &DualMesh{X: xc, Y: yc}, nil
}
