// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tdgl

// Observable names one of the fields a caller may request out of a
// snapshot, carried symbolically instead of a bare string key. Grounded
// on the original implementation's Observable enum (src/observable.py),
// which this package preserves as a supplementary convenience though
// spec.md itself does not name it.
type Observable int

const (
	ComplexField Observable = iota
	Phase
	Supercurrent
	NormalCurrent
	ScalarPotential
	VectorPotential
	Alpha
)

var observableNames = map[Observable]string{
	ComplexField:    "COMPLEX_FIELD",
	Phase:           "PHASE",
	Supercurrent:    "SUPERCURRENT",
	NormalCurrent:   "NORMAL_CURRENT",
	ScalarPotential: "SCALAR_POTENTIAL",
	VectorPotential: "VECTOR_POTENTIAL",
	Alpha:           "ALPHA",
}

// Keys returns the names of every Observable, in declaration order.
func Keys() []string {
	order := []Observable{ComplexField, Phase, Supercurrent, NormalCurrent, ScalarPotential, VectorPotential, Alpha}
	keys := make([]string, len(order))
	for i, o := range order {
		keys[i] = observableNames[o]
	}
	return keys
}

func (o Observable) String() string {
	if name, ok := observableNames[o]; ok {
		return name
	}
	return "UNKNOWN"
}

// ParseObservable looks an Observable up by its key, as produced by Keys.
func ParseObservable(key string) (Observable, bool) {
	for o, name := range observableNames {
		if name == key {
			return o, true
		}
	}
	return 0, false
}
