// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdgl

import "github.com/cpmech/gosl/chk"

// NumericalFailureError reports that ψ or μ has gone non-finite at a
// snapshot boundary (spec.md §7): there is no retry, the run aborts
// reporting the offending step and field.
type NumericalFailureError struct {
	msg string
}

func (e *NumericalFailureError) Error() string { return e.msg }

func numericalFailure(format string, args ...interface{}) error {
	return &NumericalFailureError{msg: chk.Err(format, args...).Error()}
}
