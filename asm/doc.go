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

// Package asm renders a decoded Aheui grid back to readable text, for the
// -debug post-mortem dump in cmd/aheui. It does not assemble: Aheui has
// no textual assembly form distinct from the Hangul source itself, so
// only the disassembly half of the teacher's asm package has an analog
// here.
package asm
