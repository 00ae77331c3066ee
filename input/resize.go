// SPDX-License-Identifier: Unlicense OR MIT

package input

// ResizeQueues grows the driver-facing registry of every device
// flagged by BeginDriverTouch. It runs on the main loop with driver
// callbacks suspended for its duration, the only point where registry
// storage may move. Running it with no flagged devices is a no-op,
// and it may be invoked any number of times.
func (t *Tracker) ResizeQueues() {
	if t.Gate != nil {
		t.Gate.Block()
		defer t.Gate.Release()
	}

	for id := firstUserDevice; id < MaxDevices; id++ {
		if !t.resizeWaiting.TestAndClear(id) {
			continue
		}

		// The device may have disappeared by now.
		dev := t.devices[id]
		if dev == nil {
			continue
		}

		// Growing means we dropped events. Grow by half the current
		// size so it stays rare.
		n := len(dev.driverTouches)
		size := n + n/2 + 1
		grown := make([]DriverTouch, size)
		copy(grown, dev.driverTouches)
		for i := n; i < size; i++ {
			initDriverTouch(dev, &grown[i])
		}
		dev.driverTouches = grown
	}
}

// ResizeWaiting reports whether dev is flagged for deferred growth.
func (t *Tracker) ResizeWaiting(dev *Device) bool {
	return t.resizeWaiting.Test(int(dev.id))
}
