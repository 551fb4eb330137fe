// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package runner drives the thermalization pass and the main simulation
// loop (spec.md §4.5): it owns the state bag, the running-state buffers,
// snapshot cadence, and progress reporting.
package runner

// RunningState buffers the per-step scalar observables (voltage, current)
// accumulated between snapshots and flushed in bulk (spec.md §3, §4.5).
// Grounded on src/io/running_state.py: a named buffer of fixed size,
// appended to at the in-stage step index and cleared right after each
// snapshot write.
//
// The buffer is sized exactly save_every (not save_every+1, spec.md §9's
// open question): the runner always clears the buffer before calling the
// step function for the iteration that triggers a flush, so the in-stage
// index used by Append never reaches save_every before the next Clear.
type RunningState struct {
	step   int
	buffer int
	values map[string][]float64
}

// NewRunningState allocates a RunningState with one zeroed buffer of size
// buffer per name.
func NewRunningState(names []string, buffer int) *RunningState {
	values := make(map[string][]float64, len(names))
	for _, n := range names {
		values[n] = make([]float64, buffer)
	}
	return &RunningState{buffer: buffer, values: values}
}

// Next advances the in-stage step index.
func (rs *RunningState) Next() { rs.step++ }

// SetStep sets the in-stage step index directly.
func (rs *RunningState) SetStep(step int) { rs.step = step }

// Clear resets the step index to zero and reallocates every named buffer.
func (rs *RunningState) Clear() {
	rs.step = 0
	for name := range rs.values {
		rs.values[name] = make([]float64, rs.buffer)
	}
}

// Append records value for name at the current in-stage step index.
func (rs *RunningState) Append(name string, value float64) {
	rs.values[name][rs.step] = value
}

// Export returns the buffers as they stand, keyed by name.
func (rs *RunningState) Export() map[string][]float64 {
	return rs.values
}
