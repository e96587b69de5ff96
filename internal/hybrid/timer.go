// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package hybrid

import "time"

// TimerHandle is a cancellable pending timer. Stop reports whether the
// timer was stopped before firing.
type TimerHandle interface {
	Stop() bool
}

// Scheduler schedules a function to run after a delay and hands back a
// cancellable handle. The searcher holds at most one pending handle and
// stops it on every query change, so tests can drive the debounce with a
// manual scheduler instead of real time.
type Scheduler interface {
	AfterFunc(d time.Duration, fn func()) TimerHandle
}

// realScheduler schedules on the runtime timer wheel.
type realScheduler struct{}

func (realScheduler) AfterFunc(d time.Duration, fn func()) TimerHandle {
	return time.AfterFunc(d, fn)
}

// NewScheduler returns the wall-clock scheduler.
func NewScheduler() Scheduler {
	return realScheduler{}
}
