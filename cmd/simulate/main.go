// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command simulate runs a time-dependent Ginzburg-Landau simulation over a
// persisted mesh and writes snapshots to an output record (spec.md §6).
package main

import (
	"flag"
	"math"
	"os"
	"time"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gotdgl/runner"
	"github.com/cpmech/gotdgl/store"
	"github.com/cpmech/gotdgl/tdgl"
)

func main() {

	verbose := flag.Bool("verbose", false, "run in verbose mode")
	flag.BoolVar(verbose, "v", false, "run in verbose mode (shorthand)")

	current := flag.Float64("current", 0, "initial current density")
	flag.Float64Var(current, "j", 0, "initial current density (shorthand)")

	currentMax := flag.Float64("current-max", math.NaN(), "end current density; interpolated from current when set")
	flag.Float64Var(currentMax, "J", math.NaN(), "end current density (shorthand)")

	stepsPerCurrent := flag.Int("steps-per-current", 1, "number of steps held at each current value")

	magneticField := flag.Float64("magnetic-field", 0, "external magnetic field")
	flag.Float64Var(magneticField, "b", 0, "external magnetic field (shorthand)")

	dt := flag.Float64("time-step", 1e-4, "integration time step")
	flag.Float64Var(dt, "t", 1e-4, "integration time step (shorthand)")

	steps := flag.Int("steps", 10000, "number of simulation steps")
	flag.IntVar(steps, "s", 10000, "number of simulation steps (shorthand)")

	saveEvery := flag.Int("save-every", 100, "steps between snapshots")
	flag.IntVar(saveEvery, "e", 100, "steps between snapshots (shorthand)")

	skip := flag.Int("skip", 0, "steps to thermalize before the main run")

	u := flag.Float64("complex-time-scale", 5.79, "complex field time scale")
	flag.Float64Var(u, "u", 5.79, "complex field time scale (shorthand)")

	gamma := flag.Float64("gamma", 10.0, "gamma")
	flag.Float64Var(gamma, "g", 10.0, "gamma (shorthand)")

	miniters := flag.Int("miniters", -1, "steps between progress updates; unset disables reporting")

	flag.Parse()

	if flag.NArg() < 2 {
		chk.Panic("simulate: INPUT and OUTPUT are both required")
	}
	inputDir, outputDir := flag.Arg(0), flag.Arg(1)

	if *verbose {
		io.PfWhite("Running TDGL simulation with parameters:\n")
		io.Pf("j          = %v\n", *current)
		io.Pf("b          = %v\n", *magneticField)
		io.Pf("u          = %v\n", *u)
		io.Pf("gamma      = %v\n", *gamma)
		io.Pf("dt         = %v\n", *dt)
		io.Pf("steps      = %v\n", *steps)
		io.Pf("save every = %v\n", *saveEvery)
		if !math.IsNaN(*currentMax) {
			io.Pf("current will be interpolated between %v and %v\n", *current, *currentMax)
		}
		if *skip > 0 {
			io.Pf("thermalizing for %v steps\n", *skip)
		}
	}

	in := store.Open(inputDir)
	m, err := in.LoadOrBuildMesh()
	if err != nil {
		io.PfRed("simulate: %v\n", err)
		os.Exit(1)
	}

	setup, err := tdgl.NewSetup(m, *magneticField)
	if err != nil {
		io.PfRed("simulate: %v\n", err)
		os.Exit(1)
	}

	out := store.Open(outputDir)
	if err := out.SaveMesh(store.FromMesh(m)); err != nil {
		io.PfRed("simulate: %v\n", err)
		os.Exit(1)
	}

	numSites := len(m.X)
	numEdges := len(m.EdgeMesh.Edges)

	st := tdgl.NewState(numSites, numEdges, setup.MetalBoundary)
	alpha := make([]float64, numSites)
	for i := range alpha {
		alpha[i] = 1
	}
	muBoundary := make([]float64, len(m.EdgeMesh.BoundaryEdgeIndices))
	tdgl.ApplyBoundaryCurrent(muBoundary, setup.InputEdgesIndex, setup.OutputEdgesIndex, *current)

	params := tdgl.Params{Dt: *dt, U: *u, Gamma: *gamma}

	var minitersPtr *int
	if *miniters >= 0 {
		minitersPtr = miniters
	}

	rs := runner.NewRunningState([]string{"voltage", "current"}, *saveEvery)

	r := &runner.Runner{
		Dt:           *dt,
		Steps:        *steps,
		Skip:         *skip,
		SaveEvery:    *saveEvery,
		Miniters:     minitersPtr,
		State:        map[string]interface{}{"current": *current, "flow": 0.0},
		RunningState: rs,
		Reporter:     runner.ConsoleReporter{},

		Step: func(state map[string]interface{}, rs *runner.RunningState) error {
			i := state["step"].(int)

			currentVal := *current
			if !math.IsNaN(*currentMax) {
				currentVal = tdgl.CurrentAtStep(i, *steps, *stepsPerCurrent, *current, *currentMax)
				tdgl.ApplyBoundaryCurrent(muBoundary, setup.InputEdgesIndex, setup.OutputEdgesIndex, currentVal)
				state["current"] = currentVal
			}
			rs.Append("current", currentVal)

			next, err := tdgl.Step(setup.Operators, st, muBoundary, alpha, m.EdgeMesh.Edges, params)
			if err != nil {
				return err
			}
			if err := tdgl.CheckFinite(i, next.Psi, next.Mu); err != nil {
				return err
			}
			st = next

			v := tdgl.Voltage(st.Mu, m.VoltagePoints)
			state["flow"] = state["flow"].(float64) + v*(*dt)
			rs.Append("voltage", v)
			return nil
		},

		Snapshot: func(state map[string]interface{}, rs *runner.RunningState) error {
			i := state["step"].(int)
			rec := &store.SnapshotRecord{
				Step:          i,
				Psi:           st.Psi,
				Mu:            st.Mu,
				Supercurrent:  st.Supercurrent,
				NormalCurrent: st.NormalCurrent,
				Attrs: store.SnapshotAttrs{
					Current:       state["current"].(float64),
					Flow:          state["flow"].(float64),
					MagneticField: *magneticField,
					U:             *u,
					Gamma:         *gamma,
					Step:          i,
					Time:          state["time"].(float64),
					Dt:            state["dt"].(float64),
				},
			}
			if i == 0 {
				rec.A = setup.VectorPotential
			} else {
				exported := rs.Export()
				rec.Voltage = exported["voltage"]
				rec.Current = exported["current"]
			}
			return out.SaveSnapshot(rec)
		},
	}

	start := time.Now()
	if err := r.Run(); err != nil {
		io.PfRed("simulate: aborted: %v\n", err)
		os.Exit(1)
	}
	if *verbose {
		io.PfGreen("simulation finished in %v\n", time.Since(start))
	}
}
