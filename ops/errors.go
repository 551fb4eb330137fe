// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ops

import "github.com/cpmech/gosl/chk"

// InvalidOperatorError reports a Config that cannot be used to build the
// requested operator, such as a missing set of link exponents.
type InvalidOperatorError struct {
	msg string
}

func (e *InvalidOperatorError) Error() string { return e.msg }

func invalidOperator(format string, args ...interface{}) error {
	return &InvalidOperatorError{msg: chk.Err(format, args...).Error()}
}
