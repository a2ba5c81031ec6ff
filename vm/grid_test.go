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

import "testing"

func TestBuildGridEmptySource(t *testing.T) {
	g := BuildGrid("")
	if g.W != 0 || g.H != 0 {
		t.Fatalf("BuildGrid(\"\") = %dx%d, want 0x0", g.W, g.H)
	}
}

func TestBuildGridBlankLinesOnly(t *testing.T) {
	g := BuildGrid("\n\n\n")
	if g.W != 0 || g.H != 0 {
		t.Fatalf("BuildGrid on blank lines = %dx%d, want 0x0", g.W, g.H)
	}
}

func TestBuildGridPadsShorterRows(t *testing.T) {
	src := string(syl(onBieup, vowA, 0)) + "\n" + string([]rune{syl(onBieup, vowA, 0), syl(onMieum, vowA, 0)})
	g := BuildGrid(src)
	if g.W != 2 || g.H != 2 {
		t.Fatalf("BuildGrid dims = %dx%d, want 2x2", g.W, g.H)
	}
	padded, ok := g.Get(1, 0)
	if !ok {
		t.Fatal("Get(1,0) out of bounds")
	}
	if padded.Op != OpNoop || padded.Dir.Kind != DirInert {
		t.Errorf("padding cell = %+v, want null instruction", padded)
	}
}

func TestBuildGridStripsCRAndTrailingWhitespace(t *testing.T) {
	src := string(syl(onBieup, vowA, 0)) + "  \r\n" + string(syl(onMieum, vowA, 0))
	g := BuildGrid(src)
	if g.W != 1 || g.H != 2 {
		t.Fatalf("BuildGrid dims = %dx%d, want 1x2", g.W, g.H)
	}
	first, _ := g.Get(0, 0)
	if first.Op != OpPush {
		t.Errorf("row 0 decoded as %s, want push", first.Op)
	}
}

func TestBuildGridOneRowWithTrailingNewline(t *testing.T) {
	g := BuildGrid(string(syl(onHieuh, vowA, 0)) + "\n")
	if g.W != 1 || g.H != 1 {
		t.Fatalf("BuildGrid dims = %dx%d, want 1x1 (trailing newline must not add a phantom row)", g.W, g.H)
	}
}

func TestBuildGridTwoRowsWithTrailingNewline(t *testing.T) {
	src := string(syl(onHieuh, vowA, 0)) + "\n" + string(syl(onHieuh, vowA, 0)) + "\n"
	g := BuildGrid(src)
	if g.W != 1 || g.H != 2 {
		t.Fatalf("BuildGrid dims = %dx%d, want 1x2 (trailing newline must not add a phantom row)", g.W, g.H)
	}
}

func TestBuildGridOneRowWithTrailingCRLF(t *testing.T) {
	g := BuildGrid(string(syl(onHieuh, vowA, 0)) + "\r\n")
	if g.W != 1 || g.H != 1 {
		t.Fatalf("BuildGrid dims = %dx%d, want 1x1 (trailing CRLF must not add a phantom row)", g.W, g.H)
	}
}

func TestGridGetOutOfBounds(t *testing.T) {
	g := BuildGrid(string(syl(onBieup, vowA, 0)))
	if _, ok := g.Get(-1, 0); ok {
		t.Error("Get(-1,0) reported ok=true")
	}
	if _, ok := g.Get(0, -1); ok {
		t.Error("Get(0,-1) reported ok=true")
	}
	if _, ok := g.Get(g.W, 0); ok {
		t.Error("Get(W,0) reported ok=true")
	}
	if _, ok := g.Get(0, g.H); ok {
		t.Error("Get(0,H) reported ok=true")
	}
}
