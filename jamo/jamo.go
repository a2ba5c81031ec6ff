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

// Package jamo decomposes precomposed Hangul syllable code points into their
// three constituent jamo indices: onset (initial consonant), vowel (medial
// vowel) and coda (final consonant, possibly absent).
//
// Decomposition is pure arithmetic on the Unicode Hangul Syllables block
// (U+AC00 ... U+D7A3); there is no table to build or keep warm.
package jamo

const (
	// Base is the first code point of the Hangul Syllables block.
	Base = 0xAC00
	// Last is the last code point of the Hangul Syllables block.
	Last = 0xD7A3

	onsetCount = 19
	vowelCount = 21
	codaCount  = 28
)

// Decompose splits r into (onset, vowel, coda) if r is a precomposed Hangul
// syllable. ok is false for any other rune, in which case onset, vowel and
// coda are zero.
func Decompose(r rune) (onset, vowel, coda int, ok bool) {
	if r < Base || r > Last {
		return 0, 0, 0, false
	}
	h := int(r) - Base
	onset = h / (vowelCount * codaCount)
	vowel = (h % (vowelCount * codaCount)) / codaCount
	coda = h % codaCount
	return onset, vowel, coda, true
}

// Compose is the inverse of Decompose. It does not validate its arguments;
// callers must ensure 0 <= onset < 19, 0 <= vowel < 21 and 0 <= coda < 28.
func Compose(onset, vowel, coda int) rune {
	return rune(Base + onset*vowelCount*codaCount + vowel*codaCount + coda)
}
