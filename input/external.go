// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"github.com/lumino-display/lumino/io/touch"
)

// Resource identifies a protocol resource (a listener's window or
// grab) that synthesized events are addressed to.
type Resource uint32

// HitTester locates the window chain under a screen coordinate. It is
// consulted for Begin events on direct devices only.
type HitTester interface {
	// HitTest populates sp with the ancestor chain of the window at
	// the root coordinates (x, y), from the root down.
	HitTest(sp *Sprite, x, y float64)
}

// GrabSystem is the device grab and button state owned by the grab
// subsystem. The touch core only consumes it when a pointer-emulated
// contact ends.
type GrabSystem interface {
	// UpdateState feeds a synthesized event through the device state
	// bookkeeping (button and touch counts).
	UpdateState(dev *Device, ev *touch.Event)
	// ActiveGrab reports whether the device currently holds a grab.
	ActiveGrab(dev *Device) bool
	// FromPassiveGrab reports whether the current grab was activated
	// from a passive grab.
	FromPassiveGrab(dev *Device) bool
	// ButtonsDown reports whether any buttons or touches are still
	// logically down on the device.
	ButtonsDown(dev *Device) bool
	// PointerGrab reports whether the current grab is a pointer grab.
	PointerGrab(dev *Device) bool
	// Deactivate releases the current grab.
	Deactivate(dev *Device)
}

// Deliverer transmits a synthesized event to a resource. The touch
// core constructs replayed events but never encodes or sends them.
type Deliverer interface {
	Deliver(dev *Device, ev *touch.Event, target Resource)
}

// WorkQueue runs a callback once, later, on the main loop and outside
// the driver callback context.
type WorkQueue interface {
	Schedule(fn func())
}

// DeliveryGate suspends and resumes the driver callback context. The
// deferred resizer brackets every reallocation with Block and Release
// so no callback observes a half-resized registry.
type DeliveryGate interface {
	Block()
	Release()
}
