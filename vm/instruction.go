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

import "aheui/jamo"

// Operation is the action a decoded cell performs.
type Operation int

// Operation classes, one per onset consonant group (spec §4.2).
const (
	OpNoop Operation = iota
	OpTerminate
	OpAdd
	OpMultiply
	OpDivide
	OpSubtract
	OpModulo
	OpPop
	OpPush
	OpDuplicate
	OpSwap
	OpStoreSelect
	OpStoreTransfer
	OpCompare
	OpFork
)

func (op Operation) String() string {
	switch op {
	case OpNoop:
		return "noop"
	case OpTerminate:
		return "terminate"
	case OpAdd:
		return "add"
	case OpMultiply:
		return "multiply"
	case OpDivide:
		return "divide"
	case OpSubtract:
		return "subtract"
	case OpModulo:
		return "modulo"
	case OpPop:
		return "pop"
	case OpPush:
		return "push"
	case OpDuplicate:
		return "duplicate"
	case OpSwap:
		return "swap"
	case OpStoreSelect:
		return "store-select"
	case OpStoreTransfer:
		return "store-transfer"
	case OpCompare:
		return "compare"
	case OpFork:
		return "fork"
	default:
		return "?op?"
	}
}

// DirKind is the axis/sense a Direction refers to.
type DirKind int

const (
	DirInert DirKind = iota
	DirRight
	DirLeft
	DirUp
	DirDown
	DirReflectH
	DirReflectV
	DirReflectHV
)

// Direction is a movement or reflection, with an optional doubled stride.
// Fast is meaningless (and always false) for the Inert and Reflect kinds.
type Direction struct {
	Kind DirKind
	Fast bool
}

func (d Direction) String() string {
	var s string
	switch d.Kind {
	case DirInert:
		return "inert"
	case DirRight:
		s = "right"
	case DirLeft:
		s = "left"
	case DirUp:
		s = "up"
	case DirDown:
		s = "down"
	case DirReflectH:
		return "reflect-h"
	case DirReflectV:
		return "reflect-v"
	case DirReflectHV:
		return "reflect-hv"
	default:
		return "?dir?"
	}
	if d.Fast {
		return s + "-fast"
	}
	return s
}

// Stride returns the movement distance for this direction: 2 when Fast,
// 1 otherwise.
func (d Direction) Stride() int {
	if d.Fast {
		return 2
	}
	return 1
}

// ArgKind distinguishes the interpretation of an Argument's Value.
type ArgKind int

const (
	ArgNone ArgKind = iota
	ArgAsInteger
	ArgAsCharacter
	ArgStorageIndex
	ArgLiteral
)

// Argument is an operation's coda-derived parameter.
type Argument struct {
	Kind  ArgKind
	Value int // StorageIndex or Literal payload; unused otherwise.
}

func (a Argument) String() string {
	switch a.Kind {
	case ArgNone:
		return "-"
	case ArgAsInteger:
		return "int"
	case ArgAsCharacter:
		return "char"
	case ArgStorageIndex:
		return "storage"
	case ArgLiteral:
		return "literal"
	default:
		return "?arg?"
	}
}

// Instruction is a single decoded grid cell.
type Instruction struct {
	Op    Operation
	Dir   Direction
	Arg   Argument
	Glyph rune // the source rune this cell was decoded from.
}

// nullInstruction is what a non-syllable rune (or an out-of-bounds padding
// cell) decodes to.
func nullInstruction(r rune) Instruction {
	return Instruction{Op: OpNoop, Dir: Direction{Kind: DirInert}, Arg: Argument{}, Glyph: r}
}

// onsetOps maps a choseong (initial consonant) index to its Operation.
// Unicode orders choseong as ㄱㄲㄴㄷㄸㄹㅁㅂㅃㅅㅆㅇㅈㅉㅊㅋㅌㅍㅎ (indices 0..18).
var onsetOps = [19]Operation{
	0:  OpNoop, // ㄱ
	1:  OpNoop, // ㄲ
	2:  OpDivide,
	3:  OpAdd,
	4:  OpMultiply,
	5:  OpModulo,
	6:  OpPop,
	7:  OpPush,
	8:  OpDuplicate,
	9:  OpStoreSelect,
	10: OpStoreTransfer,
	11: OpNoop, // ㅇ
	12: OpCompare,
	13: OpNoop, // ㅉ
	14: OpFork,
	15: OpNoop, // ㅋ
	16: OpSubtract,
	17: OpSwap,
	18: OpTerminate,
}

// vowelDirs maps a jungseong (vowel) index to its Direction. Unicode orders
// jungseong as ㅏㅐㅑㅒㅓㅔㅕㅖㅗㅘㅙㅚㅛㅜㅝㅞㅟㅠㅡㅢㅣ (indices 0..20).
var vowelDirs = [21]Direction{
	0:  {DirRight, false},
	1:  {DirInert, false},
	2:  {DirRight, true},
	3:  {DirInert, false},
	4:  {DirLeft, false},
	5:  {DirInert, false},
	6:  {DirLeft, true},
	7:  {DirInert, false},
	8:  {DirUp, false},
	9:  {DirInert, false},
	10: {DirInert, false},
	11: {DirInert, false},
	12: {DirUp, true},
	13: {DirDown, false},
	14: {DirInert, false},
	15: {DirInert, false},
	16: {DirInert, false},
	17: {DirDown, true},
	18: {DirReflectV, false},
	19: {DirReflectHV, false},
	20: {DirReflectH, false},
}

// pushLiteral maps a jongseong (coda) index to the canonical Aheui push
// literal for it, keyed by stroke count. Index 0 (no coda) is handled
// separately as Literal(0); indices 21 (ㅇ) and 27 (ㅎ) are handled
// separately as AsInteger/AsCharacter.
var pushLiteral = [28]int{
	1:  2, // ㄱ
	2:  4, // ㄲ
	3:  4, // ㄳ
	4:  2, // ㄴ
	5:  5, // ㄵ
	6:  5, // ㄶ
	7:  3, // ㄷ
	8:  5, // ㄹ
	9:  7, // ㄺ
	10: 9, // ㄻ
	11: 9, // ㄼ
	12: 7, // ㄽ
	13: 9, // ㄾ
	14: 9, // ㄿ
	15: 8, // ㅀ
	16: 4, // ㅁ
	17: 4, // ㅂ
	18: 6, // ㅄ
	19: 2, // ㅅ
	20: 4, // ㅆ
	// 21: ㅇ, handled as ArgAsInteger
	22: 3, // ㅈ
	23: 4, // ㅊ
	24: 3, // ㅋ
	25: 4, // ㅌ
	26: 4, // ㅍ
	// 27: ㅎ, handled as ArgAsCharacter
}

const (
	codaFill   = 21 // ㅇ
	codaHieuh  = 27 // ㅎ
	codaNone   = 0
	onsetCount = 19
	vowelCount = 21
	codaCount  = 28
)

// decodeArgument derives an operation's Argument from its raw coda index,
// per spec §4.2.
func decodeArgument(op Operation, coda int) Argument {
	switch op {
	case OpPush:
		switch coda {
		case codaNone:
			return Argument{Kind: ArgLiteral, Value: 0}
		case codaFill:
			return Argument{Kind: ArgAsInteger}
		case codaHieuh:
			return Argument{Kind: ArgAsCharacter}
		default:
			return Argument{Kind: ArgLiteral, Value: pushLiteral[coda]}
		}
	case OpPop:
		switch coda {
		case codaFill:
			return Argument{Kind: ArgAsInteger}
		case codaHieuh:
			return Argument{Kind: ArgAsCharacter}
		default:
			return Argument{Kind: ArgNone}
		}
	case OpStoreSelect, OpStoreTransfer:
		return Argument{Kind: ArgStorageIndex, Value: coda}
	default:
		return Argument{Kind: ArgNone}
	}
}

// Decode maps one Unicode scalar to an Instruction. Non-syllables decode
// to the null instruction: No-op, Inert direction, no argument.
func Decode(r rune) Instruction {
	onset, vowel, coda, ok := jamo.Decompose(r)
	if !ok {
		return nullInstruction(r)
	}
	op := onsetOps[onset]
	dir := vowelDirs[vowel]
	return Instruction{
		Op:    op,
		Dir:   dir,
		Arg:   decodeArgument(op, coda),
		Glyph: r,
	}
}
