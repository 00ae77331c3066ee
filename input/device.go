// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"fmt"

	"github.com/lumino-display/lumino/io/event"
	"github.com/lumino-display/lumino/io/touch"
	"github.com/lumino-display/lumino/valuator"
)

const (
	// MaxDevices is the number of device IDs the server hands out.
	MaxDevices = 40
	// firstUserDevice skips the core pointer and keyboard IDs.
	firstUserDevice = 2
)

// Device is one input device and its two touch registries. Devices
// are created with Tracker.AddDevice and owned by their Tracker; a
// device's registries are only ever touched through it.
type Device struct {
	id      touch.DeviceID
	name    string
	mode    touch.Mode
	numAxes int
	root    event.Window
	// sprite is the device's pointer sprite, the dependent-mode trace
	// of last resort. Nil for devices without a pointer.
	sprite *Sprite

	driverTouches []DriverTouch
	touches       []TouchPoint
}

// Sprite is a window trace: the ancestor chain of the window a
// contact is routed to, root first. Only the first Depth entries are
// meaningful.
type Sprite struct {
	trace     []event.Window
	traceGood int
}

// DriverTouch is a driver-facing touch record. It pairs the
// hardware-assigned identifier with the client-visible ID the contact
// will carry on the protocol.
type DriverTouch struct {
	driverID uint32
	active   bool
	clientID touch.ID
	// emulatePointer is set iff this was the only active contact on
	// the device when it began.
	emulatePointer bool
	valuators      *valuator.Mask
}

// TouchPoint is a client-facing touch record carrying the full
// delivery state of one contact.
type TouchPoint struct {
	clientID       touch.ID
	active         bool
	sourceID       touch.DeviceID
	emulatePointer bool
	pendingFinish  bool
	valuators      *valuator.Mask
	sprite         Sprite
	listeners      []Listener
	numListeners   int
	grabs          int
	history        *history
}

// Listener is one delivery target for a contact: a grab owner on an
// ancestor window, or the bottom-most event selection.
type Listener struct {
	Target event.Tag
	Window event.Window
	Grab   bool
}

// touchIDNone marks an unused client-facing slot. Allocated IDs skip
// zero, so the sentinel can never collide with a live contact.
const touchIDNone touch.ID = 0

// AddDevice registers a device. maxTouches sizes both registries; a
// non-positive count falls back to the tracker's default. root seeds
// every window trace on the device.
func (t *Tracker) AddDevice(id touch.DeviceID, name string, mode touch.Mode, maxTouches, numAxes int, root event.Window) (*Device, error) {
	if id < firstUserDevice || int(id) >= MaxDevices {
		return nil, fmt.Errorf("input: device id %d out of range", id)
	}
	if t.devices[id] != nil {
		return nil, fmt.Errorf("input: device id %d already in use", id)
	}
	if maxTouches <= 0 {
		maxTouches = t.opts.DriverSlots
	}
	dev := &Device{
		id:      id,
		name:    name,
		mode:    mode,
		numAxes: numAxes,
		root:    root,
	}
	dev.driverTouches = make([]DriverTouch, maxTouches)
	for i := range dev.driverTouches {
		initDriverTouch(dev, &dev.driverTouches[i])
	}
	dev.touches = make([]TouchPoint, maxTouches)
	for i := range dev.touches {
		initTouchPoint(dev, &dev.touches[i], t.opts.TraceDepth)
	}
	t.devices[id] = dev
	return dev, nil
}

// RemoveDevice unregisters dev, ending any contacts still active. A
// pending resize flag for the device is left to the resizer, which
// tolerates missing devices.
func (t *Tracker) RemoveDevice(dev *Device) {
	for i := range dev.touches {
		t.freeTouchPoint(dev, &dev.touches[i])
	}
	dev.touches = nil
	dev.driverTouches = nil
	if t.devices[dev.id] == dev {
		t.devices[dev.id] = nil
	}
}

// freeTouchPoint releases a touch point's sub-allocations, ending the
// contact first if it is still active.
func (t *Tracker) freeTouchPoint(dev *Device, p *TouchPoint) {
	if p.active {
		t.EndTouch(dev, p)
	}
	p.valuators = nil
	p.sprite.trace = nil
	p.sprite.traceGood = 0
	p.listeners = nil
	p.numListeners = 0
	p.history = nil
}

func initDriverTouch(dev *Device, ti *DriverTouch) {
	*ti = DriverTouch{valuators: valuator.New(dev.numAxes)}
}

func initTouchPoint(dev *Device, p *TouchPoint, traceDepth int) {
	*p = TouchPoint{
		clientID:  touchIDNone,
		valuators: valuator.New(dev.numAxes),
	}
	p.sprite.trace = make([]event.Window, traceDepth)
	p.sprite.trace[0] = dev.root
}

// ID returns the device's ID.
func (d *Device) ID() touch.DeviceID { return d.id }

// Name returns the device's name.
func (d *Device) Name() string { return d.name }

// Mode returns the device's touch mode.
func (d *Device) Mode() touch.Mode { return d.mode }

// Root returns the device's screen root window.
func (d *Device) Root() event.Window { return d.root }

// SetPointerSprite attaches the device's pointer sprite, used as the
// dependent-mode fallback trace.
func (d *Device) SetPointerSprite(sp *Sprite) { d.sprite = sp }

// DriverTouches returns the number of driver-facing slots.
func (d *Device) DriverTouches() int { return len(d.driverTouches) }

// Touches returns the number of client-facing slots.
func (d *Device) Touches() int { return len(d.touches) }

// SetTrace replaces the sprite's window trace, growing storage as
// needed. The windows must be ordered root first.
func (s *Sprite) SetTrace(windows ...event.Window) {
	if len(windows) > len(s.trace) {
		s.trace = make([]event.Window, len(windows))
	}
	copy(s.trace, windows)
	s.traceGood = len(windows)
}

// Trace returns the valid prefix of the window trace.
func (s *Sprite) Trace() []event.Window {
	return s.trace[:s.traceGood]
}

// Depth returns the number of valid trace entries.
func (s *Sprite) Depth() int { return s.traceGood }

// seedRoot places w at the top of the trace without validating any of
// it, for the hit tester to extend.
func (s *Sprite) seedRoot(w event.Window) {
	if len(s.trace) == 0 {
		s.trace = make([]event.Window, 1)
	}
	s.trace[0] = w
}

// DriverID returns the hardware-assigned identifier.
func (ti *DriverTouch) DriverID() uint32 { return ti.driverID }

// ClientID returns the client-visible ID issued for this contact.
func (ti *DriverTouch) ClientID() touch.ID { return ti.clientID }

// Active reports whether the record tracks a live contact.
func (ti *DriverTouch) Active() bool { return ti.active }

// EmulatePointer reports whether the contact drives pointer emulation.
func (ti *DriverTouch) EmulatePointer() bool { return ti.emulatePointer }

// Valuators returns the record's axis state.
func (ti *DriverTouch) Valuators() *valuator.Mask { return ti.valuators }

// ClientID returns the contact's client-visible ID, or zero for an
// unused slot.
func (p *TouchPoint) ClientID() touch.ID { return p.clientID }

// Active reports whether the record tracks a live contact.
func (p *TouchPoint) Active() bool { return p.active }

// SourceID returns the device the contact originated on.
func (p *TouchPoint) SourceID() touch.DeviceID { return p.sourceID }

// EmulatePointer reports whether the contact drives pointer emulation.
func (p *TouchPoint) EmulatePointer() bool { return p.emulatePointer }

// PendingFinish reports whether the contact has ended physically but
// still awaits listener acceptance.
func (p *TouchPoint) PendingFinish() bool { return p.pendingFinish }

// SetPendingFinish marks the contact as ended-but-unresolved.
func (p *TouchPoint) SetPendingFinish(pending bool) { p.pendingFinish = pending }

// Valuators returns the contact's axis state.
func (p *TouchPoint) Valuators() *valuator.Mask { return p.valuators }

// Sprite returns the contact's window trace.
func (p *TouchPoint) Sprite() *Sprite { return &p.sprite }

// Listeners returns the delivery targets added so far.
func (p *TouchPoint) Listeners() []Listener {
	return p.listeners[:p.numListeners]
}

// AddListener appends a delivery target. It reports failure when the
// list is full; EnsureSprite sizes it to one grab owner per ancestor
// window plus the bottom-most event selection.
func (p *TouchPoint) AddListener(l Listener) bool {
	if p.numListeners >= len(p.listeners) {
		return false
	}
	p.listeners[p.numListeners] = l
	p.numListeners++
	return true
}

// Grabs returns the number of grabbing listeners.
func (p *TouchPoint) Grabs() int { return p.grabs }

// AddGrab records a grabbing listener.
func (p *TouchPoint) AddGrab() { p.grabs++ }

// RemoveGrab drops a grabbing listener.
func (p *TouchPoint) RemoveGrab() {
	if p.grabs > 0 {
		p.grabs--
	}
}
