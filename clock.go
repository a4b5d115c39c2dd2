package conform

import "time"

// Clock supplies the current time to time-dependent constraints. It is a swap
// point only: the engine core never reads the clock itself, it just threads
// it through to validation bodies via Scope.Now.
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a plain function to the Clock interface.
type ClockFunc func() time.Time

// Now implements Clock.
func (f ClockFunc) Now() time.Time { return f() }

type systemClock struct{}

func (systemClock) Now() time.Time { return time.Now() }

// SystemClock returns the default wall clock backed by time.Now.
func SystemClock() Clock { return systemClock{} }
