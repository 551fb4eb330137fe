// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "github.com/cpmech/gosl/chk"

// InvalidMeshError reports a shape or consistency violation in the raw
// triangulation (x, y, elements) or in a mesh record being restored from
// a store: mismatched coordinate lengths, a malformed elements array, a
// degenerate triangle, or a mesh record missing required arrays.
type InvalidMeshError struct {
	msg string
}

func (e *InvalidMeshError) Error() string { return e.msg }

// invalidMesh builds an InvalidMeshError with a gofem-style formatted message.
func invalidMesh(format string, args ...interface{}) error {
	return &InvalidMeshError{msg: chk.Err(format, args...).Error()}
}
