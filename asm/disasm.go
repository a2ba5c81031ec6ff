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

package asm

import (
	"fmt"
	"io"

	"aheui/vm"
)

// Cell renders one decoded instruction as "<glyph> <op>/<dir>[/<arg>]",
// e.g. "밥 push/right/literal(4)". Non-syllable cells render just their
// glyph and "noop/inert".
func Cell(i vm.Instruction) string {
	s := fmt.Sprintf("%c %s/%s", glyphOrBlank(i.Glyph), i.Op, i.Dir)
	if i.Arg.Kind != vm.ArgNone {
		s += "/" + i.Arg.String()
		if i.Arg.Kind == vm.ArgStorageIndex || i.Arg.Kind == vm.ArgLiteral {
			s += fmt.Sprintf("(%d)", i.Arg.Value)
		}
	}
	return s
}

func glyphOrBlank(r rune) rune {
	if r == 0 {
		return ' '
	}
	return r
}

// Disassemble writes one line per grid row to w, each row rendering every
// cell via Cell separated by tabs.
func Disassemble(g vm.Grid, w io.Writer) error {
	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			cell, _ := g.Get(x, y)
			if x > 0 {
				if _, err := io.WriteString(w, "\t"); err != nil {
					return err
				}
			}
			if _, err := io.WriteString(w, Cell(cell)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}

// DumpNeighborhood writes the cells in a (2*radius+1)-wide, (2*radius+1)-tall
// window centered on (x, y), marking the center cell with a leading "*".
// It is used by cmd/aheui's -debug fatal-error report, the way the teacher's
// asm.Disassemble renders the neighborhood of a faulting PC.
func DumpNeighborhood(g vm.Grid, x, y, radius int, w io.Writer) error {
	for dy := -radius; dy <= radius; dy++ {
		for dx := -radius; dx <= radius; dx++ {
			cx, cy := x+dx, y+dy
			cell, ok := g.Get(cx, cy)
			marker := " "
			if dx == 0 && dy == 0 {
				marker = "*"
			}
			var rendered string
			if !ok {
				rendered = "."
			} else {
				rendered = Cell(cell)
			}
			if _, err := fmt.Fprintf(w, "%s(%d,%d) %s\n", marker, cx, cy, rendered); err != nil {
				return err
			}
		}
	}
	return nil
}
