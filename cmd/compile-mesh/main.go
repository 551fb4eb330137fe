// Copyright 2015 Dorival Pedroso and Raul Durand. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command compile-mesh rewrites one or more mesh records in place into
// their fully-derived form (spec.md §6).
package main

import (
	"flag"
	"os"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"

	"github.com/cpmech/gotdgl/store"
)

func main() {

	var verbose, silent bool
	flag.BoolVar(&verbose, "verbose", false, "print a line per compiled file")
	flag.BoolVar(&verbose, "v", false, "print a line per compiled file (shorthand)")
	flag.BoolVar(&silent, "silent", false, "suppress all output")
	flag.BoolVar(&silent, "s", false, "suppress all output (shorthand)")
	flag.Parse()

	if flag.NArg() == 0 {
		chk.Panic("compile-mesh: at least one INPUT file is required")
	}

	failed := false
	for _, dir := range flag.Args() {
		s := store.Open(dir)

		already, err := s.IsCompiled()
		if err != nil {
			if !silent {
				io.PfRed("compile-mesh: %s: %v\n", dir, err)
			}
			failed = true
			continue
		}

		if already {
			if verbose && !silent {
				io.Pf("> %s already compiled, skipped\n", dir)
			}
			continue
		}

		if err := s.Compile(); err != nil {
			if !silent {
				io.PfRed("compile-mesh: %s: %v\n", dir, err)
			}
			failed = true
			continue
		}

		if verbose && !silent {
			io.PfGreen("> %s compiled\n", dir)
		}
	}

	if failed {
		os.Exit(1)
	}
}
