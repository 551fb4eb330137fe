// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package store

import "github.com/cpmech/gosl/chk"

// IoFailureError reports a persistence record missing required keys, or any
// other failure to read or write a record (spec.md §7).
type IoFailureError struct {
	Msg string
}

func (e *IoFailureError) Error() string { return e.Msg }

func ioFailure(format string, args ...interface{}) error {
	return &IoFailureError{Msg: chk.Err(format, args...).Error()}
}
