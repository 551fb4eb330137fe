// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdgl

import (
	"math"

	"github.com/cpmech/gotdgl/mesh"
)

// ObservableOnSites projects an edge-valued observable (supercurrent or
// normal current) onto sites by summing, for every site, the contribution
// of each incident edge normalized by that edge's unit direction, then
// dividing by the number of contributions and by two. Boundary sites fold in one
// extra zero-valued contribution, exactly as the original implementation
// does (src/tdgl.py get_observable_on_site) — not named by spec.md's
// operation list, but useful per-site export supplementing it.
func ObservableOnSites(observableOnEdge []float64, m *mesh.Mesh) [][2]float64 {
	em := m.EdgeMesh
	n := len(m.X)

	sumX := make([]float64, n)
	sumY := make([]float64, n)
	count := make([]int, n)

	for k, e := range em.Edges {
		dx, dy := em.Directions[k][0], em.Directions[k][1]
		norm := math.Hypot(dx, dy)
		fx := observableOnEdge[k] * dx / norm
		fy := observableOnEdge[k] * dy / norm
		for _, s := range e {
			sumX[s] += fx
			sumY[s] += fy
			count[s]++
		}
	}
	for _, s := range m.Boundary {
		count[s]++
	}

	out := make([][2]float64, n)
	for i := 0; i < n; i++ {
		if count[i] == 0 {
			continue
		}
		out[i] = [2]float64{
			sumX[i] / float64(count[i]) / 2,
			sumY[i] / float64(count[i]) / 2,
		}
	}
	return out
}
