// This file is part of aheui, an Aheui language interpreter.
//
// Copyright 2026 The aheui Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command aheui runs an Aheui source file to completion.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"

	"aheui/asm"
	"aheui/vm"

	"github.com/pkg/errors"
)

const usage = "Usage: aheui <file>"

var (
	debug     bool
	trace     bool
	stepLimit int64
)

func atExit(m *vm.Machine, err error) {
	if err == nil {
		return
	}
	if !debug {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "%+v\n", err)
	if m != nil {
		fmt.Fprintf(os.Stderr, "at (%d, %d), storage %d, step %d\n", m.X, m.Y, m.Selected, m.StepCount())
		asm.DumpNeighborhood(m.Grid, m.X, m.Y, 2, os.Stderr)
	}
	os.Exit(1)
}

func run(fileName string) (m *vm.Machine, err error) {
	src, err := os.ReadFile(fileName)
	if err != nil {
		return nil, errors.Wrap(err, "open failed")
	}

	stdout := bufio.NewWriter(os.Stdout)
	io := vm.NewIO(os.Stdin, stdout)
	defer stdout.Flush()

	m = vm.NewMachine(string(src), io)
	if trace {
		m.OnDiagnostic = func(e error) {
			fmt.Fprintf(os.Stderr, "(%d,%d) %v\n", m.X, m.Y, e)
		}
	}
	err = m.Run(stepLimit)
	stdout.Flush()
	return m, err
}

func main() {
	flag.BoolVar(&debug, "debug", false, "on fatal error, dump machine state and a neighborhood of the grid around the IP")
	flag.BoolVar(&trace, "trace", false, "log every recoverable (failure-reflect) diagnostic to stderr as it happens")
	flag.Int64Var(&stepLimit, "steps", 0, "stop after this many steps (0 = unbounded)")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, usage)
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stdout, usage)
		os.Exit(1)
	}

	m, err := run(flag.Arg(0))
	atExit(m, err)
}
