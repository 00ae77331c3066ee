// SPDX-License-Identifier: Unlicense OR MIT

package input

const (
	// DefaultHistorySize is the number of events a contact's history
	// can hold before it becomes lossy.
	DefaultHistorySize = 100
	// DefaultTraceDepth is the initial window-trace capacity of a
	// touch point.
	DefaultTraceDepth = 32
	// DefaultDriverSlots is the driver-registry size for devices that
	// do not declare how many contacts they track.
	DefaultDriverSlots = 10
)

// Options are the tunables of a Tracker.
type Options struct {
	// HistorySize is the event-history capacity per contact.
	HistorySize int
	// TraceDepth is the initial window-trace capacity per contact.
	TraceDepth int
	// DriverSlots is the initial driver-registry size for devices
	// that do not declare a contact count.
	DriverSlots int
}

func (o Options) withDefaults() Options {
	if o.HistorySize <= 0 {
		o.HistorySize = DefaultHistorySize
	}
	if o.TraceDepth <= 0 {
		o.TraceDepth = DefaultTraceDepth
	}
	if o.DriverSlots <= 0 {
		o.DriverSlots = DefaultDriverSlots
	}
	return o
}
