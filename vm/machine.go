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

import "math"

// Machine is a running Aheui program: a grid, a storage bank, the
// selected storage, the instruction pointer and its direction, and
// termination state. It is built once by NewMachine; storages and grid
// live for the whole run.
type Machine struct {
	Grid       Grid
	Bank       *Bank
	Selected   int
	X, Y       int
	Dir        Direction
	Terminated bool

	// OnDiagnostic, if set, is called with every non-nil error Step
	// produces, including recoverable ones that do not terminate the
	// machine, before Run continues the loop. cmd/aheui wires this to
	// stderr under -trace.
	OnDiagnostic func(error)

	io    *IO
	steps int64
}

// NewMachine builds a Machine from Aheui source text and an I/O adapter.
// The IP starts at (0, 0) moving Down (slow); storage 0 is selected. A
// grid with no cells terminates immediately, before any step is taken.
func NewMachine(source string, io *IO) *Machine {
	m := &Machine{
		Grid: BuildGrid(source),
		Bank: NewBank(),
		Dir:  Direction{Kind: DirDown},
		io:   io,
	}
	if m.Grid.W == 0 || m.Grid.H == 0 {
		m.Terminated = true
	}
	return m
}

// StepCount returns the number of cells successfully dispatched so far
// (both advancing and failure-reflecting steps count).
func (m *Machine) StepCount() int64 { return m.steps }

// resolveDirection computes the effective direction for this step from
// the machine's current direction and the fetched instruction's
// direction, per spec §4.5.
func resolveDirection(current, cell Direction) Direction {
	switch cell.Kind {
	case DirInert:
		return current
	case DirReflectH:
		return reflect(current, true, false)
	case DirReflectV:
		return reflect(current, false, true)
	case DirReflectHV:
		return reflect(current, true, true)
	default:
		return cell
	}
}

// reflect flips the current direction along the requested axes,
// preserving Fast. Flipping Up/Down on a Left/Right direction (or vice
// versa) is a no-op for that axis, matching spec §4.5's "Up/Down
// unchanged" / axis-specific wording.
func reflect(d Direction, horizontal, vertical bool) Direction {
	switch d.Kind {
	case DirRight:
		if horizontal {
			return Direction{Kind: DirLeft, Fast: d.Fast}
		}
	case DirLeft:
		if horizontal {
			return Direction{Kind: DirRight, Fast: d.Fast}
		}
	case DirUp:
		if vertical {
			return Direction{Kind: DirDown, Fast: d.Fast}
		}
	case DirDown:
		if vertical {
			return Direction{Kind: DirUp, Fast: d.Fast}
		}
	}
	return d
}

// advance moves the IP one step (stride 1 or 2) in dir, wrapping on the
// torus defined by the grid's dimensions, and commits dir as the new
// current direction.
func (m *Machine) advance(dir Direction) {
	m.Dir = dir
	stride := dir.Stride()
	switch dir.Kind {
	case DirRight:
		m.X = wrap(m.X+stride, m.Grid.W)
	case DirLeft:
		m.X = wrap(m.X-stride, m.Grid.W)
	case DirUp:
		m.Y = wrap(m.Y-stride, m.Grid.H)
	case DirDown:
		m.Y = wrap(m.Y+stride, m.Grid.H)
	case DirInert:
		// a program whose very first cell is a reflect/inert instruction
		// with no prior direction keeps the initial Down(slow) and moves
		// accordingly; DirInert here only arises before any concrete
		// direction has ever been adopted, which NewMachine prevents by
		// seeding Dir to Down.
	}
}

func wrap(v, n int) int {
	if n <= 0 {
		return 0
	}
	v %= n
	if v < 0 {
		v += n
	}
	return v
}

// stepOutcome is the result of evaluating one operation, threaded
// through to the driver instead of a mutable success flag (design note
// in spec §9).
type stepOutcome int

const (
	outcomeAdvanced stepOutcome = iota
	outcomeReflected
	outcomeTerminated
	outcomeFatal
)

// Step executes exactly one cell: fetch, dispatch, then move per §4.5 or
// bounce-and-retry per §4.6's failure-reflect protocol.
//
// Step fails fast with TerminatedError if the machine has already
// terminated. It reports InstructionNotFoundError (and terminates) if
// the IP is out of bounds, which should be unreachable given correct
// wrap-around.
func (m *Machine) Step() error {
	if m.Terminated {
		return TerminatedError{}
	}
	cell, ok := m.Grid.Get(m.X, m.Y)
	if !ok {
		m.Terminated = true
		return InstructionNotFoundError{X: m.X, Y: m.Y}
	}

	outcome, err := m.exec(cell)
	m.steps++

	switch outcome {
	case outcomeTerminated:
		return err
	case outcomeFatal:
		m.Terminated = true
		return err
	case outcomeAdvanced:
		m.advance(resolveDirection(m.Dir, cell.Dir))
		return err
	case outcomeReflected:
		// bounce back: reflect both the current direction and the
		// instruction's own direction along both axes, then resolve and
		// advance as usual, so the IP retries from the other side.
		bouncedCurrent := reflect(m.Dir, true, true)
		bouncedCellDir := reflect(cell.Dir, true, true)
		m.advance(resolveDirection(bouncedCurrent, bouncedCellDir))
		return err
	}
	return err
}

// Run steps the machine until it terminates, or until stepBudget steps
// have been taken (0 means unbounded). Recoverable errors are reported
// to OnDiagnostic (if set) as they occur but do not themselves stop the
// loop or the final return value; only an error that sets Terminated
// does. If the budget is exhausted before the machine terminates, Run
// returns nil — exhausting a caller-supplied step budget is not itself
// a failure.
func (m *Machine) Run(stepBudget int64) error {
	if stepBudget <= 0 {
		stepBudget = math.MaxInt64
	}
	for taken := int64(0); !m.Terminated && taken < stepBudget; taken++ {
		if err := m.Step(); err != nil {
			if m.OnDiagnostic != nil {
				m.OnDiagnostic(err)
			}
			if m.Terminated {
				return err
			}
		}
	}
	return nil
}
