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

package vm

import "strings"

// Grid is a rectangular table of decoded instructions. Rows are decoded
// independently and right-padded with null instructions to a common
// width, the way the teacher's Image is a flat, densely packed slice.
type Grid struct {
	W, H  int
	cells []Instruction
}

// BuildGrid decodes source into a Grid. One trailing line terminator
// ("\n" or "\r\n"), if present, is dropped before splitting — matching
// the original's `.lines()` semantics, where a final terminator is
// optional and does not introduce an extra trailing row. The remainder
// is split on "\n" (a trailing "\r" on each line is stripped, handling
// CRLF throughout), trailing whitespace is trimmed from each line, and
// every remaining rune is decoded left-to-right. Shorter rows are
// right-padded with null instructions to the width of the longest row.
// An empty source, or a source consisting solely of blank lines, yields
// a 0x0 Grid.
func BuildGrid(source string) Grid {
	switch {
	case strings.HasSuffix(source, "\r\n"):
		source = source[:len(source)-2]
	case strings.HasSuffix(source, "\n"):
		source = source[:len(source)-1]
	}
	rawLines := strings.Split(source, "\n")
	rows := make([][]Instruction, 0, len(rawLines))
	width := 0
	for _, line := range rawLines {
		line = strings.TrimRight(line, "\r")
		line = strings.TrimRight(line, " \t\v\f")
		row := make([]Instruction, 0, len(line))
		for _, r := range line {
			row = append(row, Decode(r))
		}
		if len(row) > width {
			width = len(row)
		}
		rows = append(rows, row)
	}
	// A source consisting solely of blank lines still produces rows of
	// length 0; if every row is empty the grid is degenerate (W=0)
	// regardless of row count.
	if width == 0 {
		return Grid{}
	}
	cells := make([]Instruction, width*len(rows))
	for y, row := range rows {
		copy(cells[y*width:], row)
		for x := len(row); x < width; x++ {
			cells[y*width+x] = nullInstruction(0)
		}
	}
	return Grid{W: width, H: len(rows), cells: cells}
}

// Get returns the instruction at (x, y), or false if out of bounds.
func (g Grid) Get(x, y int) (Instruction, bool) {
	if x < 0 || y < 0 || x >= g.W || y >= g.H {
		return Instruction{}, false
	}
	return g.cells[y*g.W+x], true
}
