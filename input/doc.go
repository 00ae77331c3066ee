// SPDX-License-Identifier: Unlicense OR MIT

/*
Package input implements the multi-touch contact lifecycle of the
display server's input pipeline.

Each device carries two registries. The driver-facing registry maps
the hardware-assigned identifier a driver reports, which is unique
only while the contact is active and may be reused, to a freshly
allocated client-visible ID. The client-facing registry holds the full
delivery state for each contact: its window trace, the listeners the
contact may be delivered to, and an optional replayable event history
used to hand ownership to a new listener.

Driver callbacks may run in a restricted context that preempts the
main loop. Code on that path never allocates registry storage; a
device that runs out of driver slots is marked in an atomic bitset and
grown later by ResizeQueues, scheduled on the Tracker's WorkQueue and
bracketed by its DeliveryGate.
*/
package input
