// Copyright 2023 The Fesa Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"github.com/TheOfficialSK/finite-element-structural-analysis-utility/fem"
	"github.com/TheOfficialSK/finite-element-structural-analysis-utility/out"

	"github.com/cpmech/gosl/chk"
	"github.com/cpmech/gosl/io"
)

func main() {

	// catch errors
	defer func() {
		if err := recover(); err != nil {
			io.Pfred("\nERROR: %v\n", err)
		}
	}()

	// read input parameters
	fnamepath, _ := io.ArgToFilename(0, "", ".fea", true)
	verbose := io.ArgToBool(1, true)

	// message
	if verbose {
		io.Pf("\nFesa -- 2D Truss Structural Analysis\n")
		io.Pf("\n%v\n", io.ArgsTable("INPUT ARGUMENTS",
			"filename path", "fnamepath", fnamepath,
			"show messages", "verbose", verbose,
		))
	}

	// analysis data
	analysis, err := fem.NewMain(fnamepath, verbose)
	if err != nil {
		chk.Panic("cannot read analysis data:\n%v", err)
	}

	// run analysis
	if err := analysis.Run(); err != nil {
		chk.Panic("Run failed:\n%v", err)
	}

	// results
	io.Pf("\n%s", out.Report(analysis))
}
