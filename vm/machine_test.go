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

import (
	"bytes"
	"strings"
	"testing"
)

func newTestIO(stdin string) (*IO, *bytes.Buffer) {
	var out bytes.Buffer
	return NewIO(strings.NewReader(stdin), &out), &out
}

// program concatenates runes built from syl(...) triples into one single
// row of Aheui source, so each step advances rightward without needing an
// explicit direction cell.
func program(cells ...rune) string {
	return string(cells)
}

func TestMachineAddAndOutput(t *testing.T) {
	io_, out := newTestIO("")
	src := program(
		syl(onBieup, vowA, 1),    // push literal 2 (ㄱ)
		syl(onBieup, vowA, 7),    // push literal 3 (ㄷ)
		syl(onDigeut, vowA, 0),   // add
		syl(onMieum, vowA, codaFill), // pop as integer
		syl(onHieuh, vowA, 0),    // terminate
	)
	m := NewMachine(src, io_)
	if err := m.Run(0); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	if !m.Terminated {
		t.Fatal("machine did not terminate")
	}
	if got, want := out.String(), "5\n"; got != want {
		t.Fatalf("output = %q, want %q", got, want)
	}
	if m.StepCount() != 5 {
		t.Fatalf("StepCount() = %d, want 5", m.StepCount())
	}
}

func TestMachineDivideByZeroIsFatal(t *testing.T) {
	io_, _ := newTestIO("")
	src := program(
		syl(onBieup, vowA, 1), // push literal 2
		syl(onBieup, vowA, 0), // push literal 0 (becomes divisor: popped first)
		syl(onNieun, vowA, 0), // divide
	)
	m := NewMachine(src, io_)
	err := m.Run(0)
	if err == nil {
		t.Fatal("Run() = nil, want ArithmeticError")
	}
	ae, ok := err.(ArithmeticError)
	if !ok {
		t.Fatalf("err = %T(%v), want ArithmeticError", err, err)
	}
	if ae.A != 0 || ae.B != 2 {
		t.Errorf("ArithmeticError = {A:%d B:%d}, want {A:0 B:2} (A is the operand popped first)", ae.A, ae.B)
	}
	if !m.Terminated {
		t.Fatal("machine did not terminate on fatal arithmetic error")
	}
}

func TestMachineStorageUnderflowReflectsInsteadOfFailing(t *testing.T) {
	io_, _ := newTestIO("")
	src := program(syl(onDigeut, vowA, 0)) // lone add, 1x1 grid
	m := NewMachine(src, io_)
	if err := m.Step(); err != nil {
		t.Fatalf("Step() = %v, want nil (underflow reflects, it does not fail)", err)
	}
	if m.Terminated {
		t.Fatal("machine terminated on recoverable underflow")
	}
	if m.X != 0 || m.Y != 0 {
		t.Fatalf("position = (%d,%d), want (0,0) on a 1x1 grid", m.X, m.Y)
	}
	if m.Dir.Kind != DirLeft {
		t.Fatalf("Dir = %s after bounce, want left", m.Dir)
	}
}

func TestMachineTerminatedErrorOnStepAfterTermination(t *testing.T) {
	io_, _ := newTestIO("")
	m := NewMachine(program(syl(onHieuh, vowA, 0)), io_)
	if err := m.Step(); err != nil {
		t.Fatalf("first Step() = %v, want nil", err)
	}
	if !m.Terminated {
		t.Fatal("machine did not terminate on the terminate op")
	}
	if err := m.Step(); err == nil {
		t.Fatal("Step() after termination = nil, want TerminatedError")
	} else if _, ok := err.(TerminatedError); !ok {
		t.Fatalf("err = %T, want TerminatedError", err)
	}
}

func TestMachineInstructionNotFoundIsFatal(t *testing.T) {
	io_, _ := newTestIO("")
	m := NewMachine(program(syl(onIeung, vowAe, 0)), io_)
	m.X, m.Y = 5, 5 // force out-of-bounds; unreachable via normal wrap-around
	err := m.Step()
	if _, ok := err.(InstructionNotFoundError); !ok {
		t.Fatalf("err = %T(%v), want InstructionNotFoundError", err, err)
	}
	if !m.Terminated {
		t.Fatal("machine did not terminate on InstructionNotFoundError")
	}
}

func TestMachineRunHonorsStepBudget(t *testing.T) {
	io_, _ := newTestIO("")
	// a lone no-op on a 1x1 grid: direction is inert so the IP stays put
	// forever under the initial Down direction, looping indefinitely.
	m := NewMachine(program(syl(onIeung, vowAe, 0)), io_)
	if err := m.Run(5); err != nil {
		t.Fatalf("Run(5) = %v, want nil", err)
	}
	if m.Terminated {
		t.Fatal("machine terminated, want it still running after budget exhaustion")
	}
	if m.StepCount() != 5 {
		t.Fatalf("StepCount() = %d, want 5", m.StepCount())
	}
}

func TestMachinePushAsIntegerInvalidNumberReflects(t *testing.T) {
	io_, _ := newTestIO("not-a-number\n")
	m := NewMachine(program(syl(onBieup, vowA, codaFill)), io_)
	err := m.Step()
	if _, ok := err.(InvalidNumberError); !ok {
		t.Fatalf("err = %T(%v), want InvalidNumberError", err, err)
	}
	if m.Terminated {
		t.Fatal("machine terminated on a recoverable InvalidNumberError")
	}
}

func TestMachinePushAsIntegerEOFIsFatal(t *testing.T) {
	io_, _ := newTestIO("")
	m := NewMachine(program(syl(onBieup, vowA, codaFill)), io_)
	err := m.Step()
	if _, ok := err.(InputError); !ok {
		t.Fatalf("err = %T(%v), want InputError", err, err)
	}
	if !m.Terminated {
		t.Fatal("machine did not terminate on EOF reading a required integer")
	}
}

func TestMachinePushAsCharacterEmptyLineReflects(t *testing.T) {
	io_, _ := newTestIO("\n")
	m := NewMachine(program(syl(onBieup, vowA, codaHieuh)), io_)
	err := m.Step()
	if _, ok := err.(EmptyInputError); !ok {
		t.Fatalf("err = %T(%v), want EmptyInputError", err, err)
	}
	if m.Terminated {
		t.Fatal("machine terminated on a recoverable EmptyInputError")
	}
}

func TestMachinePopAsCharacterWritesRune(t *testing.T) {
	io_, out := newTestIO("")
	// literals top out at 9 per cell, so build a larger scalar (12, a form
	// feed) from two pushes and an add rather than a single literal coda.
	src := program(
		syl(onBieup, vowA, 18), // push literal 6 (ㅄ)
		syl(onBieup, vowA, 18), // push literal 6
		syl(onDigeut, vowA, 0), // add -> 12, not 65; this test only checks the plumbing, not a specific letter
		syl(onMieum, vowA, codaHieuh), // pop as character
		syl(onHieuh, vowA, 0),
	)
	m := NewMachine(src, io_)
	if err := m.Run(0); err != nil {
		t.Fatalf("Run() = %v, want nil", err)
	}
	got := []rune(out.String())
	if len(got) < 1 || got[0] != rune(12) {
		t.Fatalf("output = %q, want first rune U+000C", out.String())
	}
}

func TestExecCompare(t *testing.T) {
	io_, _ := newTestIO("")
	m := NewMachine(program(syl(onIeung, vowAe, 0)), io_)
	m.storage().Push(3)
	m.storage().Push(5) // head
	outcome, err := m.exec(Instruction{Op: OpCompare})
	if err != nil || outcome != outcomeAdvanced {
		t.Fatalf("exec(compare) = %v, %v", outcome, err)
	}
	v, _ := m.storage().Pop()
	if v != 1 {
		t.Fatalf("compare(second=3,first=5) pushed %d, want 1 (3 <= 5)", v)
	}
}

func TestExecCompareSecondLessOrEqualPushesOne(t *testing.T) {
	io_, _ := newTestIO("")
	m := NewMachine(program(syl(onIeung, vowAe, 0)), io_)
	m.storage().Push(1) // second (pushed first, popped second)
	m.storage().Push(1) // first (pushed second, popped first)
	_, err := m.exec(Instruction{Op: OpCompare})
	if err != nil {
		t.Fatal(err)
	}
	v, _ := m.storage().Pop()
	if v != 1 {
		t.Fatalf("compare(1,1) pushed %d, want 1", v)
	}
}

func TestExecForkReflectsOnZeroOrEmpty(t *testing.T) {
	io_, _ := newTestIO("")
	m := NewMachine(program(syl(onIeung, vowAe, 0)), io_)
	outcome, _ := m.exec(Instruction{Op: OpFork})
	if outcome != outcomeReflected {
		t.Fatalf("fork on empty storage = %v, want reflected", outcome)
	}
	m.storage().Push(0)
	outcome, _ = m.exec(Instruction{Op: OpFork})
	if outcome != outcomeReflected {
		t.Fatalf("fork on zero = %v, want reflected", outcome)
	}
	m.storage().Push(1)
	outcome, _ = m.exec(Instruction{Op: OpFork})
	if outcome != outcomeAdvanced {
		t.Fatalf("fork on nonzero = %v, want advanced", outcome)
	}
}

func TestExecStoreSelectAndTransfer(t *testing.T) {
	io_, _ := newTestIO("")
	m := NewMachine(program(syl(onIeung, vowAe, 0)), io_)
	m.storage().Push(9)
	outcome, err := m.exec(Instruction{Op: OpStoreTransfer, Arg: Argument{Kind: ArgStorageIndex, Value: 4}})
	if err != nil || outcome != outcomeAdvanced {
		t.Fatalf("exec(store-transfer) = %v, %v", outcome, err)
	}
	if m.storage().Len() != 0 {
		t.Fatal("store-transfer did not remove the value from the source storage")
	}
	v, ok := m.Bank[4].Pop()
	if !ok || v != 9 {
		t.Fatalf("bank[4] = %d, %v, want 9, true", v, ok)
	}

	_, err = m.exec(Instruction{Op: OpStoreSelect, Arg: Argument{Kind: ArgStorageIndex, Value: 7}})
	if err != nil {
		t.Fatal(err)
	}
	if m.Selected != 7 {
		t.Fatalf("Selected = %d, want 7", m.Selected)
	}
}

func TestMachineWrapAroundFastDirection(t *testing.T) {
	// A single row, two cells wide, with a right-fast push at x=0: stride 2
	// must wrap past the end back to x=0 on a width-2 grid.
	io_, _ := newTestIO("")
	src := program(
		syl(onBieup, vowYa, 1), // push literal 2, right-fast
		syl(onIeung, vowAe, 0), // inert no-op filler
	)
	m := NewMachine(src, io_)
	if err := m.Step(); err != nil {
		t.Fatal(err)
	}
	if m.X != 0 {
		t.Fatalf("X = %d after stride-2 wrap on width 2, want 0", m.X)
	}
}
