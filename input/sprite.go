// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"github.com/lumino-display/lumino/io/event"
	"github.com/lumino-display/lumino/io/touch"
)

// EnsureSprite makes sure p carries a window trace before ev is
// delivered, building one for Begin events. It reports whether the
// event should be delivered at all.
//
// A contact may have no trace if there are no applicable grabs or
// event selections, or if every grab owner rejected it. Motion events
// are not worth delivering then, but End events must still pass so
// the contact can be finished and its slot released.
func (t *Tracker) EnsureSprite(dev *Device, p *TouchPoint, ev *touch.Event) bool {
	sp := &p.sprite

	switch ev.Kind {
	case touch.End:
		return true
	case touch.Begin:
	default:
		return sp.traceGood > 0
	}

	if dev.mode == touch.Direct {
		// Focus immediately under the contact in direct mode.
		sp.seedRoot(dev.root)
		if t.Hit != nil {
			t.Hit.HitTest(sp, ev.X, ev.Y)
		} else {
			sp.traceGood = 0
		}
	} else if !t.buildDependentTrace(dev, sp) {
		return false
	}

	if sp.traceGood <= 0 {
		return false
	}

	// Size the listener list now: at most one grab per ancestor
	// window plus the bottom-most event selection.
	p.listeners = make([]Listener, sp.traceGood+1)
	p.numListeners = 0

	return true
}

// buildDependentTrace copies a device-wide trace into sp. All
// contacts on a dependent device share one trace, so an existing
// contact's trace is reused when one is valid; otherwise the device's
// pointer sprite serves. With neither available the build fails and
// sp is left without a valid trace.
func (t *Tracker) buildDependentTrace(dev *Device, sp *Sprite) bool {
	var src *Sprite
	for i := range dev.touches {
		if dev.touches[i].sprite.traceGood > 0 {
			src = &dev.touches[i].sprite
			break
		}
	}
	if src == nil {
		src = dev.sprite
	}
	if src == nil {
		sp.traceGood = 0
		return false
	}

	if src.traceGood > len(sp.trace) {
		sp.trace = make([]event.Window, src.traceGood)
	}
	copy(sp.trace, src.trace[:src.traceGood])
	sp.traceGood = src.traceGood
	return true
}
