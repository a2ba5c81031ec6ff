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

// exec evaluates the fetched instruction and reports the outcome the
// driver (Step) should apply. It never advances the IP itself — that is
// entirely Step's responsibility, per the design note in spec §9.
func (m *Machine) exec(cell Instruction) (stepOutcome, error) {
	switch cell.Op {
	case OpNoop:
		return outcomeAdvanced, nil
	case OpTerminate:
		m.Terminated = true
		if err := m.io.writeNewline(); err != nil {
			return outcomeTerminated, err
		}
		return outcomeTerminated, nil
	case OpAdd, OpMultiply, OpDivide, OpSubtract, OpModulo:
		return m.execArith(cell.Op)
	case OpPop:
		return m.execPop(cell.Arg)
	case OpPush:
		return m.execPush(cell.Arg)
	case OpDuplicate:
		return m.execDuplicate()
	case OpSwap:
		return m.execSwap()
	case OpStoreSelect:
		m.Selected = cell.Arg.Value
		return outcomeAdvanced, nil
	case OpStoreTransfer:
		return m.execStoreTransfer(cell.Arg)
	case OpCompare:
		return m.execCompare()
	case OpFork:
		return m.execFork()
	default:
		return outcomeAdvanced, nil
	}
}

func (m *Machine) storage() *Storage {
	return m.Bank[m.Selected]
}

// execArith implements Add/Multiply/Divide/Subtract/Modulo: a is the
// value popped first (the head), b is popped next; the pushed result is
// b OP a. A fatal ArithmeticError reports the operands in pop order,
// (a, b), per spec.
func (m *Machine) execArith(op Operation) (stepOutcome, error) {
	s := m.storage()
	if s.Len() < 2 {
		return outcomeReflected, nil
	}
	a, _ := s.Pop()
	b, _ := s.Pop()
	result, err := checkedArith(op, a, b)
	if err != nil {
		return outcomeFatal, err
	}
	s.Push(result)
	return outcomeAdvanced, nil
}

// checkedArith computes b OP a (a popped first, b popped second) with
// overflow/division checking. On failure it reports ArithmeticError with
// the operands in pop order, (a, b), regardless of which side of the
// operator each one lands on.
func checkedArith(op Operation, a, b int64) (int64, error) {
	name := op.String()
	fail := func() (int64, error) { return 0, ArithmeticError{Op: name, A: a, B: b} }
	lhs, rhs := b, a
	switch op {
	case OpAdd:
		r := lhs + rhs
		if (rhs > 0 && r < lhs) || (rhs < 0 && r > lhs) {
			return fail()
		}
		return r, nil
	case OpSubtract:
		r := lhs - rhs
		if (rhs < 0 && r < lhs) || (rhs > 0 && r > lhs) {
			return fail()
		}
		return r, nil
	case OpMultiply:
		if lhs == 0 || rhs == 0 {
			return 0, nil
		}
		r := lhs * rhs
		if r/rhs != lhs || (lhs == -1 && rhs == math.MinInt64) || (rhs == -1 && lhs == math.MinInt64) {
			return fail()
		}
		return r, nil
	case OpDivide:
		if rhs == 0 {
			return fail()
		}
		if lhs == math.MinInt64 && rhs == -1 {
			return fail()
		}
		return lhs / rhs, nil
	case OpModulo:
		if rhs == 0 {
			return fail()
		}
		if lhs == math.MinInt64 && rhs == -1 {
			return fail()
		}
		return lhs % rhs, nil
	default:
		return fail()
	}
}

func (m *Machine) execPop(arg Argument) (stepOutcome, error) {
	s := m.storage()
	v, ok := s.Pop()
	if !ok {
		return outcomeReflected, nil
	}
	switch arg.Kind {
	case ArgAsInteger:
		if err := m.io.writeInteger(v); err != nil {
			return outcomeFatal, err
		}
	case ArgAsCharacter:
		if v < 0 || v > math.MaxInt32 || !isValidScalar(rune(v)) {
			return outcomeFatal, InvalidCharacterError{Value: v}
		}
		if err := m.io.writeCharacter(rune(v)); err != nil {
			return outcomeFatal, err
		}
	case ArgNone:
		// discard silently
	}
	return outcomeAdvanced, nil
}

// isValidScalar reports whether r is a valid Unicode scalar value, i.e.
// not a surrogate and within range.
func isValidScalar(r rune) bool {
	if r < 0 || r > 0x10FFFF {
		return false
	}
	if r >= 0xD800 && r <= 0xDFFF {
		return false
	}
	return true
}

func (m *Machine) execPush(arg Argument) (stepOutcome, error) {
	s := m.storage()
	switch arg.Kind {
	case ArgLiteral:
		s.Push(int64(arg.Value))
		return outcomeAdvanced, nil
	case ArgAsInteger:
		v, err := m.io.readInteger()
		if err != nil {
			if _, recoverable := err.(InvalidNumberError); recoverable {
				return outcomeReflected, err
			}
			return outcomeFatal, err
		}
		s.Push(v)
		return outcomeAdvanced, nil
	case ArgAsCharacter:
		v, err := m.io.readCharacter()
		if err != nil {
			if _, recoverable := err.(EmptyInputError); recoverable {
				return outcomeReflected, err
			}
			return outcomeFatal, err
		}
		s.Push(v)
		return outcomeAdvanced, nil
	default:
		s.Push(0)
		return outcomeAdvanced, nil
	}
}

func (m *Machine) execDuplicate() (stepOutcome, error) {
	if !m.storage().Duplicate() {
		return outcomeReflected, nil
	}
	return outcomeAdvanced, nil
}

func (m *Machine) execSwap() (stepOutcome, error) {
	if !m.storage().Swap() {
		return outcomeReflected, nil
	}
	return outcomeAdvanced, nil
}

func (m *Machine) execStoreTransfer(arg Argument) (stepOutcome, error) {
	v, ok := m.storage().Pop()
	if !ok {
		return outcomeReflected, nil
	}
	m.Bank[arg.Value].Push(v)
	return outcomeAdvanced, nil
}

func (m *Machine) execCompare() (stepOutcome, error) {
	s := m.storage()
	if s.Len() < 2 {
		return outcomeReflected, nil
	}
	v1, _ := s.Pop()
	v2, _ := s.Pop()
	if v2 <= v1 {
		s.Push(1)
	} else {
		s.Push(0)
	}
	return outcomeAdvanced, nil
}

func (m *Machine) execFork() (stepOutcome, error) {
	v, ok := m.storage().Pop()
	if !ok || v == 0 {
		return outcomeReflected, nil
	}
	return outcomeAdvanced, nil
}
