// SPDX-License-Identifier: Unlicense OR MIT

// Package bitset provides a fixed-size bitset safe to share between
// the main loop and a restricted driver callback context. All
// operations are lock-free; the callback context must never block.
package bitset

import "sync/atomic"

const wordBits = 64

// Atomic is a fixed-size atomic bitset. The zero value is not usable;
// use New.
type Atomic struct {
	words []uint64
}

// New returns a bitset holding n bits, all clear.
func New(n int) *Atomic {
	return &Atomic{words: make([]uint64, (n+wordBits-1)/wordBits)}
}

// Len returns the number of bits in the set.
func (s *Atomic) Len() int {
	return len(s.words) * wordBits
}

// Test reports whether bit i is set.
func (s *Atomic) Test(i int) bool {
	if i < 0 || i >= s.Len() {
		return false
	}
	return atomic.LoadUint64(&s.words[i/wordBits])&(1<<uint(i%wordBits)) != 0
}

// TestAndSet sets bit i and reports whether it was already set.
func (s *Atomic) TestAndSet(i int) bool {
	if i < 0 || i >= s.Len() {
		return false
	}
	w := &s.words[i/wordBits]
	mask := uint64(1) << uint(i%wordBits)
	for {
		old := atomic.LoadUint64(w)
		if old&mask != 0 {
			return true
		}
		if atomic.CompareAndSwapUint64(w, old, old|mask) {
			return false
		}
	}
}

// TestAndClear clears bit i and reports whether it was set.
func (s *Atomic) TestAndClear(i int) bool {
	if i < 0 || i >= s.Len() {
		return false
	}
	w := &s.words[i/wordBits]
	mask := uint64(1) << uint(i%wordBits)
	for {
		old := atomic.LoadUint64(w)
		if old&mask == 0 {
			return false
		}
		if atomic.CompareAndSwapUint64(w, old, old&^mask) {
			return true
		}
	}
}
