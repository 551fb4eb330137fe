// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package sparse

import "github.com/cpmech/gosl/chk"

// SolveFailureError reports that factorization or back-substitution of a
// linear system failed.
type SolveFailureError struct {
	msg string
}

func (e *SolveFailureError) Error() string { return e.msg }

func solveFailure(format string, args ...interface{}) error {
	return &SolveFailureError{msg: chk.Err(format, args...).Error()}
}
