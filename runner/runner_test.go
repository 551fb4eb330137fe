// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner_test

import (
	"testing"

	"github.com/cpmech/gosl/chk"

	"github.com/cpmech/gotdgl/runner"
)

// Test_runner01_stage_sequencing checks that a snapshot fires at step 0 of
// the main stage, that the step counter resets across the skip/main
// boundary, and that elapsed time keeps accumulating across that boundary
// (spec.md §4.5).
func Test_runner01_stage_sequencing(tst *testing.T) {

	chk.PrintTitle("runner01. Stage sequencing and time continuity")

	var mainTimes []float64
	var snapshotSteps []int

	r := &runner.Runner{
		Dt:        0.1,
		Steps:     9,
		Skip:      4,
		SaveEvery: 5,
		State:     map[string]interface{}{},
		Step: func(state map[string]interface{}, rs *runner.RunningState) error {
			rs.Append("voltage", state["time"].(float64))
			return nil
		},
		Snapshot: func(state map[string]interface{}, rs *runner.RunningState) error {
			snapshotSteps = append(snapshotSteps, state["step"].(int))
			mainTimes = append(mainTimes, state["time"].(float64))
			return nil
		},
	}
	r.RunningState = runner.NewRunningState([]string{"voltage"}, r.SaveEvery)

	if err := r.Run(); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}

	if len(snapshotSteps) != 2 {
		tst.Fatalf("expected 2 snapshots over 10 main steps at SaveEvery=5, got %d", len(snapshotSteps))
	}
	chk.IntAssert(snapshotSteps[0], 0)
	chk.IntAssert(snapshotSteps[1], 5)

	// the skip stage ran 5 iterations (steps 0..4) before resetting, so the
	// main stage's step-0 snapshot should observe time = 0.5, not 0.
	chk.Scalar(tst, "time carries across skip boundary", 1e-12, mainTimes[0], 0.5)
	chk.Scalar(tst, "time at second snapshot", 1e-12, mainTimes[1], 1.0)
}

// Test_runner02_no_skip checks the simple case with no thermalization.
func Test_runner02_no_skip(tst *testing.T) {

	chk.PrintTitle("runner02. No thermalization pass")

	var snapshotSteps []int
	r := &runner.Runner{
		Dt:        1.0,
		Steps:     6,
		Skip:      0,
		SaveEvery: 3,
		State:     map[string]interface{}{},
		Step: func(state map[string]interface{}, rs *runner.RunningState) error {
			return nil
		},
		Snapshot: func(state map[string]interface{}, rs *runner.RunningState) error {
			snapshotSteps = append(snapshotSteps, state["step"].(int))
			return nil
		},
	}
	r.RunningState = runner.NewRunningState(nil, r.SaveEvery)

	if err := r.Run(); err != nil {
		tst.Fatalf("Run failed: %v", err)
	}
	if len(snapshotSteps) != 3 {
		tst.Fatalf("expected 3 snapshots over 7 steps at SaveEvery=3, got %d", len(snapshotSteps))
	}
	chk.IntAssert(snapshotSteps[0], 0)
	chk.IntAssert(snapshotSteps[1], 3)
	chk.IntAssert(snapshotSteps[2], 6)
}
