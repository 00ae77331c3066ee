// SPDX-License-Identifier: Unlicense OR MIT

package valuator

import "testing"

func TestMaskSetGet(t *testing.T) {
	m := New(3)
	if m.NumAxes() != 3 {
		t.Fatalf("got %d axes, want 3", m.NumAxes())
	}
	if _, ok := m.Double(0); ok {
		t.Error("fresh axis reported as set")
	}
	m.SetDouble(0, 12.5)
	m.SetDouble(2, -3)
	if v, ok := m.Double(0); !ok || v != 12.5 {
		t.Errorf("got (%v, %v), want (12.5, true)", v, ok)
	}
	if m.IsSet(1) {
		t.Error("untouched axis reported as set")
	}
	if v, ok := m.Double(2); !ok || v != -3 {
		t.Errorf("got (%v, %v), want (-3, true)", v, ok)
	}
}

func TestMaskZero(t *testing.T) {
	m := New(2)
	m.SetDouble(0, 1)
	m.SetDouble(1, 2)
	m.Zero()
	for axis := 0; axis < 2; axis++ {
		if m.IsSet(axis) {
			t.Errorf("axis %d still set after Zero", axis)
		}
	}
}

func TestMaskOutOfRange(t *testing.T) {
	m := New(2)
	m.SetDouble(-1, 1)
	m.SetDouble(2, 1)
	if m.IsSet(-1) || m.IsSet(2) {
		t.Error("out-of-range axis set")
	}
	if _, ok := m.Double(5); ok {
		t.Error("out-of-range axis read")
	}
}

func TestMaskAxisClamp(t *testing.T) {
	if got := New(-1).NumAxes(); got != 0 {
		t.Errorf("got %d axes, want 0", got)
	}
	if got := New(MaxAxes + 10).NumAxes(); got != MaxAxes {
		t.Errorf("got %d axes, want %d", got, MaxAxes)
	}
}
