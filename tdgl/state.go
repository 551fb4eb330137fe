// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tdgl implements the semi-implicit, gauge-invariant time
// integrator for the TDGL equations (spec.md §4.4): the complex order
// parameter update, the scalar-potential Poisson solve, the supercurrent
// and normal-current observables, and the boundary current ramp.
package tdgl

// State holds the fields carried from one time step to the next (spec.md
// §3, §4.4). Mesh and operators are immutable for the run; these fields
// are the only ones renewed every step.
type State struct {
	Psi           []complex128 // order parameter, one per site
	Mu            []float64    // scalar electrochemical potential, one per site
	Supercurrent  []float64    // one per edge
	NormalCurrent []float64    // one per edge
}

// NewState builds the initial state of spec.md §4.4: psi=1 everywhere
// except 0 on the metal-contact sites, mu=0, and zero currents.
func NewState(numSites, numEdges int, metalBoundary []int) *State {
	psi := make([]complex128, numSites)
	for i := range psi {
		psi[i] = 1
	}
	for _, s := range metalBoundary {
		psi[s] = 0
	}
	return &State{
		Psi:           psi,
		Mu:            make([]float64, numSites),
		Supercurrent:  make([]float64, numEdges),
		NormalCurrent: make([]float64, numEdges),
	}
}
