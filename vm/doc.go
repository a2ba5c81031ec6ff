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

// Package vm implements the Aheui virtual machine: a 2-D instruction
// pointer walking a grid of decoded Hangul syllables, operating on a bank
// of 28 stack-or-queue storages.
//
// The machine is built once from a source string via NewMachine and then
// driven one cell at a time with Step, or to completion with Run. After
// Machine.Terminated becomes true, further calls to Step return
// TerminatedError and perform no state change.
package vm
