// Package schedule provides deferred callbacks for single-threaded game loops.
//
// Actions never run on their own goroutine: Virtual runs them when a test
// advances time, Queue runs them when the UI loop delivers their message.
package schedule

import "time"

// Timer is a handle to a scheduled action.
type Timer interface {
	// Stop prevents the action from running. It reports whether the call
	// stopped the action, false if it already ran or was stopped.
	Stop() bool
}

// Scheduler runs an action once after a delay.
type Scheduler interface {
	After(d time.Duration, action func()) Timer
}

type task struct {
	id      uint64
	due     time.Duration
	action  func()
	stopped bool
	fired   bool
}

func (t *task) Stop() bool {
	if t.stopped || t.fired {
		return false
	}
	t.stopped = true
	return true
}

func (t *task) live() bool {
	return !t.stopped && !t.fired
}
