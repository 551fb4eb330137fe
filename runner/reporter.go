// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package runner

import "github.com/cpmech/gosl/io"

// Reporter receives progress notifications from the run loop. It is
// pluggable and never sits on the hot path (spec.md §4.5, §5): the
// runner calls it only at the cadence Miniters names, never per step.
type Reporter interface {
	Progress(stage string, step, end int)
	Done(stage string)
}

// ConsoleReporter prints progress the way the teacher's fem.FEM.Run
// reports solver stages, via gosl/io's Pf family.
type ConsoleReporter struct{}

func (ConsoleReporter) Progress(stage string, step, end int) {
	io.Pf("> %s %d/%d\n", stage, step, end)
}

func (ConsoleReporter) Done(stage string) {
	io.PfGreen("> %s complete\n", stage)
}

// NopReporter discards every notification; used by tests.
type NopReporter struct{}

func (NopReporter) Progress(stage string, step, end int) {}
func (NopReporter) Done(stage string)                    {}
