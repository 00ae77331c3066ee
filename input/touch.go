// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"log"

	"golang.org/x/exp/slices"

	"github.com/lumino-display/lumino/internal/bitset"
	"github.com/lumino-display/lumino/io/touch"
)

// Tracker owns the touch registries of every device and allocates
// client-visible touch IDs. All methods run on the main loop except
// FindByDriverID, BeginDriverTouch and EndDriverTouch, which may also
// run in the driver callback context and therefore never grow
// registry storage.
type Tracker struct {
	// Hit locates window chains for direct-mode Begin events.
	Hit HitTester
	// Grabs is consulted when a pointer-emulated contact ends.
	Grabs GrabSystem
	// Events transmits replayed history.
	Events Deliverer
	// Queue schedules the deferred resizer.
	Queue WorkQueue
	// Gate suspends driver callbacks around registry growth.
	Gate DeliveryGate

	opts         Options
	devices      [MaxDevices]*Device
	nextClientID touch.ID
	// resizeWaiting has a device's bit set while its driver registry
	// is undersized. It is the only state shared with the driver
	// callback context.
	resizeWaiting *bitset.Atomic
}

// NewTracker returns a Tracker with the given tunables. Collaborators
// are optional; a nil field disables the corresponding side effect.
func NewTracker(opts Options) *Tracker {
	return &Tracker{
		opts:          opts.withDefaults(),
		nextClientID:  1,
		resizeWaiting: bitset.New(MaxDevices),
	}
}

// NextClientID returns the ID the next contact will be assigned.
func (t *Tracker) NextClientID() touch.ID { return t.nextClientID }

// SetNextClientID overrides the allocator position. Only zero is
// rejected; wraparound behavior is the caller's to probe.
func (t *Tracker) SetNextClientID(id touch.ID) {
	if id != touchIDNone {
		t.nextClientID = id
	}
}

// allocClientID issues the next client-visible ID. The counter is
// process-wide, wraps past zero and skips it. No scan against live
// contacts is made: a collision needs 2^32 allocations on one device
// under a single held contact.
func (t *Tracker) allocClientID() touch.ID {
	id := t.nextClientID
	t.nextClientID++
	if t.nextClientID == touchIDNone {
		t.nextClientID = 1
	}
	return id
}

// FindByDriverID returns the active driver-facing record for the
// hardware-assigned id, creating one if create is set. Safe in the
// driver callback context.
func (t *Tracker) FindByDriverID(dev *Device, driverID uint32, create bool) *DriverTouch {
	for i := range dev.driverTouches {
		ti := &dev.driverTouches[i]
		if ti.active && ti.driverID == driverID {
			return ti
		}
	}
	if create {
		return t.BeginDriverTouch(dev, driverID)
	}
	return nil
}

// BeginDriverTouch creates a driver-facing record for a new contact
// and issues its client-visible ID. The contact is marked for pointer
// emulation only on direct devices with no other active contact.
//
// It returns nil if a contact with the same hardware id is already
// active, or if the registry is full. A full registry is flagged for
// deferred growth and the event must be dropped; growing here would
// reallocate under the driver callback context.
func (t *Tracker) BeginDriverTouch(dev *Device, driverID uint32) *DriverTouch {
	emulatePointer := dev.mode == touch.Direct

	// Hardware ids must be unique among active contacts.
	if t.FindByDriverID(dev, driverID, false) != nil {
		return nil
	}

	var ti *DriverTouch
	for i := range dev.driverTouches {
		// Only emulate pointer events on the first touch.
		if dev.driverTouches[i].active {
			emulatePointer = false
		} else if ti == nil {
			ti = &dev.driverTouches[i]
		}
		if !emulatePointer && ti != nil {
			break
		}
	}

	if ti != nil {
		ti.active = true
		ti.driverID = driverID
		ti.clientID = t.allocClientID()
		ti.emulatePointer = emulatePointer
		return ti
	}

	log.Printf("%s: not enough space for touch events (max %d touchpoints), dropping this event",
		dev.name, len(dev.driverTouches))
	if !t.resizeWaiting.TestAndSet(int(dev.id)) && t.Queue != nil {
		t.Queue.Schedule(t.ResizeQueues)
	}
	return nil
}

// EndDriverTouch releases a driver-facing record. The slot keeps its
// axis storage and is reused in place.
func (t *Tracker) EndDriverTouch(dev *Device, ti *DriverTouch) {
	ti.active = false
}

// FindByClientID returns the active touch point carrying the
// client-visible id.
func (t *Tracker) FindByClientID(dev *Device, id touch.ID) *TouchPoint {
	i := slices.IndexFunc(dev.touches, func(p TouchPoint) bool {
		return p.active && p.clientID == id
	})
	if i < 0 {
		return nil
	}
	return &dev.touches[i]
}

// BeginTouch creates the client-facing touch point for a contact. It
// returns nil if a contact with the same id is already active, so
// stale driver reports cannot clobber a live contact. When every slot
// is taken the registry grows by one and the scan is retried once;
// this path runs on the main loop only.
func (t *Tracker) BeginTouch(dev *Device, source touch.DeviceID, id touch.ID, emulatePointer bool) *TouchPoint {
	if t.FindByClientID(dev, id) != nil {
		return nil
	}

	if p := findInactive(dev); p != nil {
		return activate(p, source, id, emulatePointer)
	}

	dev.touches = append(dev.touches, TouchPoint{})
	initTouchPoint(dev, &dev.touches[len(dev.touches)-1], t.opts.TraceDepth)
	if p := findInactive(dev); p != nil {
		return activate(p, source, id, emulatePointer)
	}
	return nil
}

func findInactive(dev *Device) *TouchPoint {
	i := slices.IndexFunc(dev.touches, func(p TouchPoint) bool {
		return !p.active
	})
	if i < 0 {
		return nil
	}
	return &dev.touches[i]
}

func activate(p *TouchPoint, source touch.DeviceID, id touch.ID, emulatePointer bool) *TouchPoint {
	p.active = true
	p.clientID = id
	p.sourceID = source
	p.emulatePointer = emulatePointer
	return p
}

// EndTouch releases a touch point. It must only be called once every
// event for the contact has been sent and finalized.
//
// For a pointer-emulating contact a pointer-emulated End is fed
// through the grab system's state bookkeeping first, and a passive
// pointer grab with no buttons or touches left down is deactivated.
func (t *Tracker) EndTouch(dev *Device, p *TouchPoint) {
	if p.emulatePointer && t.Grabs != nil {
		ev := touch.Event{
			Kind:   touch.End,
			ID:     p.clientID,
			Source: p.sourceID,
			Button: 1,
			Flags:  touch.FlagPointerEmulated | touch.FlagEnd,
		}
		t.Grabs.UpdateState(dev, &ev)

		if t.Grabs.ActiveGrab(dev) &&
			t.Grabs.FromPassiveGrab(dev) &&
			!t.Grabs.ButtonsDown(dev) &&
			t.Grabs.PointerGrab(dev) {
			t.Grabs.Deactivate(dev)
		}
	}

	p.active = false
	p.pendingFinish = false
	p.sprite.traceGood = 0
	p.listeners = nil
	p.numListeners = 0
	p.grabs = 0
	p.clientID = touchIDNone
	t.FreeHistory(p)
	p.valuators.Zero()
}
