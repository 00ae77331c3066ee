// SPDX-License-Identifier: Unlicense OR MIT

// Package event contains types for event handling.
package event

// Tag is the stable identifier for an event delivery target.
// For a listener l, the tag is typically &l.
type Tag interface{}

// Window is an opaque handle to a window owned by the window system.
// The input core orders windows in sprite traces but never looks
// inside them.
type Window interface{}

// Event is the marker interface for events.
type Event interface {
	ImplementsEvent()
}
