// SPDX-License-Identifier: Unlicense OR MIT

// Package valuator provides per-record snapshots of absolute axis
// state. Every touch record owns one Mask; nothing else aliases it.
package valuator

// MaxAxes is the largest number of axes a device may report.
const MaxAxes = 36

// Mask is a set of axis values, with a validity bit per axis.
type Mask struct {
	bits   uint64
	values []float64
}

// New returns a mask for axes valuator axes, all unset.
func New(axes int) *Mask {
	if axes < 0 {
		axes = 0
	}
	if axes > MaxAxes {
		axes = MaxAxes
	}
	return &Mask{values: make([]float64, axes)}
}

// NumAxes returns the number of axes the mask can hold.
func (m *Mask) NumAxes() int {
	return len(m.values)
}

// Zero unsets every axis.
func (m *Mask) Zero() {
	m.bits = 0
	for i := range m.values {
		m.values[i] = 0
	}
}

// IsSet reports whether axis holds a value.
func (m *Mask) IsSet(axis int) bool {
	return axis >= 0 && axis < len(m.values) && m.bits&(1<<uint(axis)) != 0
}

// SetDouble stores v in axis. Out-of-range axes are ignored.
func (m *Mask) SetDouble(axis int, v float64) {
	if axis < 0 || axis >= len(m.values) {
		return
	}
	m.bits |= 1 << uint(axis)
	m.values[axis] = v
}

// Double returns the value of axis and whether it is set.
func (m *Mask) Double(axis int) (float64, bool) {
	if !m.IsSet(axis) {
		return 0, false
	}
	return m.values[axis], true
}
