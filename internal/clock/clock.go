// Package clock provides the periodic scheduling used to step momentum
// simulations.
//
// A Scheduler runs a callback every period until its Timer is stopped. Ticks
// are cooperative: each callback runs to completion on the scheduler's
// execution goroutine before the next tick is considered, and a stopped
// Timer never fires again, even if a tick was already due.
package clock

import "time"

// FramePeriod is the period of one simulated display frame (60 Hz).
const FramePeriod = time.Second / 60

// Scheduler schedules periodic callbacks.
type Scheduler interface {
	// Every calls fn once per period until the returned Timer is stopped.
	Every(period time.Duration, fn func()) Timer
}

// Timer is a handle to a scheduled periodic callback.
type Timer interface {
	// Stop cancels the callback. Safe to call more than once and from
	// inside the callback itself.
	Stop()

	// Stopped returns true once Stop has been called.
	Stopped() bool
}
