// SPDX-License-Identifier: Unlicense OR MIT

// Package touch contains the event model for multi-touch contacts.
//
// A touch event is identified by the client-visible ID assigned when
// the contact begins; the hardware-assigned identifier a driver
// reports never appears in events.
package touch

import (
	"strings"
	"time"
)

// Event is a touch event.
type Event struct {
	Kind Kind
	// ID identifies the contact this event belongs to, from Begin
	// to End.
	ID ID
	// Source is the device that generated the event.
	Source DeviceID
	Flags  Flags
	// Button is the logical button for pointer-emulated events.
	Button uint8
	// X and Y are the root coordinates of the contact, in the first
	// two valuator axes.
	X, Y float64
	// Time is when the event was received. The timestamp is relative
	// to an undefined base.
	Time time.Duration
}

// ID is a client-visible touch identifier. The zero ID is reserved
// and never assigned to a contact.
type ID uint32

// DeviceID identifies an input device.
type DeviceID uint8

// Kind of an Event.
type Kind uint8

const (
	// Begin is sent when a contact is first detected.
	Begin Kind = iota + 1
	// Update is sent when an active contact moves or changes axis
	// values.
	Update
	// End is sent when a contact is lifted.
	End
)

// Flags is a bit set of event flags.
type Flags uint8

const (
	// FlagClientID marks an event whose ID field already carries the
	// client-visible identifier rather than a driver one.
	FlagClientID Flags = 1 << iota
	// FlagReplaying marks an event synthesized from recorded history
	// during ownership handoff.
	FlagReplaying
	// FlagPointerEmulated marks an event that also drives pointer
	// emulation.
	FlagPointerEmulated
	// FlagEnd marks the final event of a contact.
	FlagEnd
)

// Mode describes how a device maps contacts to the screen.
type Mode uint8

const (
	// Direct devices (touchscreens) report contacts in screen
	// coordinates; each contact is hit-tested independently.
	Direct Mode = iota
	// Dependent devices (touchpads) report contacts relative to the
	// pointer; all contacts share the pointer's window trace.
	Dependent
)

func (e Event) ImplementsEvent() {}

func (k Kind) String() string {
	switch k {
	case Begin:
		return "Begin"
	case Update:
		return "Update"
	case End:
		return "End"
	default:
		return "invalid"
	}
}

func (f Flags) String() string {
	var strs []string
	if f&FlagClientID != 0 {
		strs = append(strs, "ClientID")
	}
	if f&FlagReplaying != 0 {
		strs = append(strs, "Replaying")
	}
	if f&FlagPointerEmulated != 0 {
		strs = append(strs, "PointerEmulated")
	}
	if f&FlagEnd != 0 {
		strs = append(strs, "End")
	}
	return strings.Join(strs, "|")
}

func (m Mode) String() string {
	switch m {
	case Direct:
		return "Direct"
	case Dependent:
		return "Dependent"
	default:
		return "invalid"
	}
}
