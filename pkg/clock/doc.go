// Package clock abstracts wall-clock time behind a small interface so that
// timer-driven components can be exercised deterministically in tests.
//
// The package ships two implementations: the real clock returned by New,
// which delegates straight to the time package, and Mock, a manually advanced
// clock whose timers fire synchronously from Advance in deadline order.
//
// # Usage
//
//	c := clock.New()
//	t := c.AfterFunc(time.Minute, func() { ... })
//	defer t.Stop()
//
// In tests:
//
//	mock := clock.NewMock(time.Unix(0, 0))
//	mock.AfterFunc(time.Minute, func() { fired = true })
//	mock.Advance(time.Minute) // callback runs before Advance returns
package clock
