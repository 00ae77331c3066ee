// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"log"

	"github.com/lumino-display/lumino/io/touch"
)

// history is a contact's bounded event log: at most one Begin in the
// first slot followed by Updates, replayable to the next listener
// when ownership moves. End events are never recorded.
type history struct {
	events   []touch.Event
	elements int
}

// AllocHistory gives p an event history with the tracker's configured
// capacity. Calling it on a point that already has one does nothing
// and succeeds.
func (t *Tracker) AllocHistory(p *TouchPoint) bool {
	if p.history != nil {
		return true
	}
	p.history = &history{events: make([]touch.Event, t.opts.HistorySize)}
	return true
}

// FreeHistory releases p's event history. Safe on a point without
// one.
func (t *Tracker) FreeHistory(p *TouchPoint) {
	p.history = nil
}

// HistoryElements returns the number of recorded events.
func (t *Tracker) HistoryElements(p *TouchPoint) int {
	if p.history == nil {
		return 0
	}
	return p.history.elements
}

// RecordHistory appends ev to p's history, if it has one. A second
// Begin for the same contact is ignored rather than rejected, End
// events are never stored, and neither are replayed or
// explicit-client-ID events, so replaying history cannot re-record
// it.
//
// A full history stays full: further Updates overwrite the final slot
// and the element count sticks just below capacity.
func (t *Tracker) RecordHistory(p *TouchPoint, ev *touch.Event) {
	h := p.history
	if h == nil {
		return
	}

	switch ev.Kind {
	case touch.Begin:
		// Don't store the same Begin twice.
		if h.elements > 0 {
			return
		}
	case touch.Update:
	default:
		// No End events in the history.
		return
	}

	// Only real events are recorded.
	if ev.Flags&(touch.FlagClientID|touch.FlagReplaying) != 0 {
		return
	}

	h.events[h.elements] = *ev
	h.elements++
	// FIXME: proper overflow handling.
	if h.elements > len(h.events)-1 {
		h.elements = len(h.events) - 1
		log.Printf("source device %d: history size %d overflowing for touch %d",
			p.sourceID, len(h.events), p.clientID)
	}
}

// ReplayHistory hands p's recorded events to target through the
// tracker's Deliverer. A synthesized Begin carrying the contact's
// initial coordinates goes first, then every recorded Update; all of
// them are tagged as replaying so they are never re-recorded. A point
// without a history replays nothing.
func (t *Tracker) ReplayHistory(dev *Device, p *TouchPoint, target Resource) {
	h := p.history
	if h == nil {
		return
	}

	flags := touch.FlagClientID | touch.FlagReplaying
	if p.emulatePointer {
		flags |= touch.FlagPointerEmulated
	}
	// Fake Begin for the next owner, from the first two axis values
	// of the recorded one.
	first := h.events[0]
	begin := touch.Event{
		Kind:   touch.Begin,
		ID:     p.clientID,
		Source: first.Source,
		Flags:  flags,
		X:      first.X,
		Y:      first.Y,
		Time:   first.Time,
	}
	t.deliver(dev, &begin, target)

	// The first event was the Begin, already replayed.
	for i := 1; i < h.elements; i++ {
		ev := h.events[i]
		ev.Flags |= touch.FlagReplaying
		t.deliver(dev, &ev, target)
	}
}

func (t *Tracker) deliver(dev *Device, ev *touch.Event, target Resource) {
	if t.Events != nil {
		t.Events.Deliver(dev, ev, target)
	}
}
