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

// discipline is the pop/push ordering rule of a Storage. It is set once
// at construction and never changes afterwards.
type discipline int

const (
	discStack discipline = iota
	discQueue
)

// queueIndices lists the storages that behave as FIFO queues; every other
// index among the 28 behaves as a LIFO stack.
var queueIndices = map[int]bool{21: true, 27: true}

// Storage is one of the 28 integer containers of a Bank. Pop/Peek
// always operate on the "head" as spec §4.4 defines it: for a stack the
// head is the most recently pushed value; for a queue the head is the
// oldest value still waiting to be popped.
//
// Internally data[0] is always the head, regardless of discipline, so
// that Swap and Duplicate (which are always head-relative operations)
// need no discipline branch.
type Storage struct {
	data []int64
	disc discipline
}

func newStorage(disc discipline) *Storage {
	return &Storage{disc: disc}
}

// Len returns the number of values currently held.
func (s *Storage) Len() int {
	return len(s.data)
}

// Push adds v. On a stack it becomes the new head; on a queue it is
// appended at the tail, behind everything already waiting.
func (s *Storage) Push(v int64) {
	if s.disc == discStack {
		s.data = append(s.data, 0)
		copy(s.data[1:], s.data)
		s.data[0] = v
		return
	}
	s.data = append(s.data, v)
}

// Pop removes and returns the head value. ok is false (and the storage is
// left unchanged) if it was empty.
func (s *Storage) Pop() (v int64, ok bool) {
	if len(s.data) == 0 {
		return 0, false
	}
	v = s.data[0]
	s.data = s.data[1:]
	return v, true
}

// Peek returns the head value without removing it.
func (s *Storage) Peek() (v int64, ok bool) {
	if len(s.data) == 0 {
		return 0, false
	}
	return s.data[0], true
}

// Values returns a copy of the storage's contents, head first, for
// diagnostic reporting. It is never used from the execution path.
func (s *Storage) Values() []int64 {
	out := make([]int64, len(s.data))
	copy(out, s.data)
	return out
}

// Swap exchanges the two head elements. It fails (without mutation) if
// len < 2.
func (s *Storage) Swap() bool {
	if len(s.data) < 2 {
		return false
	}
	s.data[0], s.data[1] = s.data[1], s.data[0]
	return true
}

// Duplicate prepends a copy of the head. On a queue this makes the
// duplicate the very next value popped, ahead of everything already
// queued. It fails (without mutation) if the storage is empty.
func (s *Storage) Duplicate() bool {
	if len(s.data) == 0 {
		return false
	}
	s.data = append(s.data, 0)
	copy(s.data[1:], s.data)
	return true
}

// Bank is the fixed set of 28 storages addressed by a Machine. Indices 21
// and 27 are queues; every other index is a stack. The mapping is fixed
// for the lifetime of the bank.
type Bank [28]*Storage

// NewBank builds a Bank with the standard stack/queue layout.
func NewBank() *Bank {
	var b Bank
	for i := range b {
		d := discStack
		if queueIndices[i] {
			d = discQueue
		}
		b[i] = newStorage(d)
	}
	return &b
}
