// SPDX-License-Identifier: Unlicense OR MIT

package input

import (
	"testing"

	"github.com/lumino-display/lumino/io/touch"
)

func TestAddDeviceValidation(t *testing.T) {
	tr := NewTracker(Options{})

	// The first two IDs belong to the core pointer and keyboard.
	if _, err := tr.AddDevice(0, "core", touch.Direct, 1, 2, testRoot); err == nil {
		t.Error("reserved id 0 accepted")
	}
	if _, err := tr.AddDevice(1, "core", touch.Direct, 1, 2, testRoot); err == nil {
		t.Error("reserved id 1 accepted")
	}
	if _, err := tr.AddDevice(MaxDevices, "late", touch.Direct, 1, 2, testRoot); err == nil {
		t.Error("out-of-range id accepted")
	}

	if _, err := tr.AddDevice(2, "ts", touch.Direct, 1, 2, testRoot); err != nil {
		t.Fatal(err)
	}
	if _, err := tr.AddDevice(2, "again", touch.Direct, 1, 2, testRoot); err == nil {
		t.Error("duplicate id accepted")
	}
}

func TestAddDeviceDefaultsSlots(t *testing.T) {
	tr := NewTracker(Options{})
	dev := addDevice(t, tr, 3, touch.Direct, 0)
	if got := dev.DriverTouches(); got != DefaultDriverSlots {
		t.Errorf("got %d driver slots, want %d", got, DefaultDriverSlots)
	}
	if got := dev.Touches(); got != DefaultDriverSlots {
		t.Errorf("got %d touch slots, want %d", got, DefaultDriverSlots)
	}
}

func TestDeviceSlotsSeeded(t *testing.T) {
	tr := NewTracker(Options{})
	dev := addDevice(t, tr, 2, touch.Direct, 2)

	for i := range dev.touches {
		p := &dev.touches[i]
		if p.clientID != touchIDNone {
			t.Errorf("slot %d not marked unused", i)
		}
		if len(p.sprite.trace) != DefaultTraceDepth || p.sprite.trace[0] != testRoot {
			t.Errorf("slot %d trace not seeded with the root window", i)
		}
		if p.valuators == nil || p.valuators.NumAxes() != 2 {
			t.Errorf("slot %d valuators not initialized", i)
		}
	}
	for i := range dev.driverTouches {
		if dev.driverTouches[i].valuators == nil {
			t.Errorf("driver slot %d valuators not initialized", i)
		}
	}
}

func TestRemoveDeviceEndsActiveTouches(t *testing.T) {
	tr := NewTracker(Options{})
	grabs := &fakeGrabs{}
	tr.Grabs = grabs
	dev := addDevice(t, tr, 2, touch.Direct, 2)

	beginTestTouch(t, tr, dev, 1, true)
	tr.RemoveDevice(dev)

	// Ending the emulating contact went through the grab state path.
	if len(grabs.updates) != 1 {
		t.Errorf("got %d state updates, want 1", len(grabs.updates))
	}
	if dev.touches != nil || dev.driverTouches != nil {
		t.Error("registries not released")
	}

	// The ID is free for a new device.
	if _, err := tr.AddDevice(2, "replacement", touch.Direct, 1, 2, testRoot); err != nil {
		t.Errorf("id still in use after removal: %v", err)
	}
}
