// SPDX-License-Identifier: Unlicense OR MIT

package bitset

import (
	"sync"
	"testing"
)

func TestSetClear(t *testing.T) {
	s := New(40)
	if s.Test(3) {
		t.Error("fresh bit set")
	}
	if s.TestAndSet(3) {
		t.Error("first set reported already-set")
	}
	if !s.Test(3) {
		t.Error("bit not set")
	}
	if !s.TestAndSet(3) {
		t.Error("second set did not report already-set")
	}
	if !s.TestAndClear(3) {
		t.Error("clear of a set bit reported clear")
	}
	if s.Test(3) || s.TestAndClear(3) {
		t.Error("bit survived the clear")
	}
}

func TestOutOfRange(t *testing.T) {
	s := New(40)
	if s.Test(-1) || s.TestAndSet(s.Len()) || s.TestAndClear(-1) {
		t.Error("out-of-range bit behaved as in-range")
	}
}

func TestWordBoundaries(t *testing.T) {
	s := New(130)
	for _, i := range []int{0, 63, 64, 127, 128, 129} {
		if s.TestAndSet(i) {
			t.Errorf("bit %d already set", i)
		}
	}
	for _, i := range []int{0, 63, 64, 127, 128, 129} {
		if !s.Test(i) {
			t.Errorf("bit %d lost", i)
		}
	}
	if s.Test(1) || s.Test(65) {
		t.Error("neighboring bits disturbed")
	}
}

func TestConcurrentSetters(t *testing.T) {
	s := New(64)
	var wg sync.WaitGroup
	firsts := make([]int, 8)
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 64; i++ {
				if !s.TestAndSet(i) {
					firsts[g]++
				}
			}
		}(g)
	}
	wg.Wait()
	total := 0
	for _, n := range firsts {
		total += n
	}
	// Exactly one setter wins each bit.
	if total != 64 {
		t.Errorf("got %d first-sets, want 64", total)
	}
}
