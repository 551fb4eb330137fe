// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdgl

// CurrentAtStep implements the boundary-current ramp of spec.md §4.4:
// J(i) = J + (Jmax-J)·floor(i/k)/floor(steps/k), where k is the configured
// number of steps held at each current value. Integer division in Go
// already floors for non-negative operands, matching the original's
// explicit floor-division.
//
// Grounded on simulate.py's update() closure, not on fun.TimeSpace: no
// retrieved use of gosl/fun constructs a dbf.Params literal, so the ramp
// is this direct arithmetic function instead of a fabricated function
// object (see DESIGN.md).
func CurrentAtStep(step, steps, stepsPerCurrent int, current, currentMax float64) float64 {
	return current + (currentMax-current)*float64(step/stepsPerCurrent)/float64(steps/stepsPerCurrent)
}

// ApplyBoundaryCurrent writes +current at the input boundary edges and
// -current at the output boundary edges of a μ-boundary array, zeroing
// every other entry first. Grounded on simulate.py's
// `mu_boundary[input_edges_index] = current_val` /
// `mu_boundary[output_edges_index] = -current_val`.
func ApplyBoundaryCurrent(muBoundary []float64, inputEdgesIndex, outputEdgesIndex []int, current float64) {
	for i := range muBoundary {
		muBoundary[i] = 0
	}
	for _, i := range inputEdgesIndex {
		muBoundary[i] = current
	}
	for _, i := range outputEdgesIndex {
		muBoundary[i] = -current
	}
}
