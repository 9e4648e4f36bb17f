package clock

import "time"

// Clock provides the time-related operations used by timer-driven components.
// Implementations must be safe for concurrent use.
type Clock interface {
	// Now returns the current time.
	Now() time.Time

	// AfterFunc schedules fn to run in its own goroutine after d has elapsed.
	AfterFunc(d time.Duration, fn func()) Timer

	// NewTimer returns a timer that delivers the current time on C after d.
	NewTimer(d time.Duration) Timer
}

// Timer represents a single scheduled event. For AfterFunc timers the channel
// returned by C never delivers.
type Timer interface {
	// C returns the delivery channel for channel-based timers.
	C() <-chan time.Time

	// Stop cancels the timer. It reports whether the timer was still pending.
	Stop() bool

	// Reset re-arms the timer for d from now. It reports whether the timer
	// was still pending when reset.
	Reset(d time.Duration) bool
}

// New returns a Clock backed by the time package.
func New() Clock {
	return realClock{}
}

type realClock struct{}

func (realClock) Now() time.Time { return time.Now() }

func (realClock) AfterFunc(d time.Duration, fn func()) Timer {
	return &realTimer{t: time.AfterFunc(d, fn)}
}

func (realClock) NewTimer(d time.Duration) Timer {
	return &realTimer{t: time.NewTimer(d)}
}

type realTimer struct {
	t *time.Timer
}

func (rt *realTimer) C() <-chan time.Time        { return rt.t.C }
func (rt *realTimer) Stop() bool                 { return rt.t.Stop() }
func (rt *realTimer) Reset(d time.Duration) bool { return rt.t.Reset(d) }
