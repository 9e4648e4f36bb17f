package clock

import (
	"sort"
	"sync"
	"time"
)

// Mock is a manually advanced Clock for deterministic tests. Timers fire
// synchronously from Advance, in deadline order, with the mock's notion of
// "now" set to each timer's deadline while its callback runs. Callbacks may
// schedule new timers; those fire too if they fall within the advanced window.
type Mock struct {
	mu     sync.Mutex
	now    time.Time
	timers []*mockTimer
}

// NewMock returns a Mock clock frozen at start.
func NewMock(start time.Time) *Mock {
	return &Mock{now: start}
}

// Now returns the mock's current time.
func (m *Mock) Now() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.now
}

// AfterFunc schedules fn at now+d. The callback runs synchronously inside a
// future Advance call, not on its own goroutine.
func (m *Mock) AfterFunc(d time.Duration, fn func()) Timer {
	return m.schedule(d, fn)
}

// NewTimer returns a channel-based timer that delivers at now+d.
func (m *Mock) NewTimer(d time.Duration) Timer {
	return m.schedule(d, nil)
}

// Advance moves the clock forward by d, firing every timer whose deadline
// falls within the window. Timers fire one at a time so a callback's
// rescheduling is observed by subsequent firings.
func (m *Mock) Advance(d time.Duration) {
	m.mu.Lock()
	target := m.now.Add(d)
	m.mu.Unlock()

	for {
		t := m.nextDue(target)
		if t == nil {
			break
		}
		t.fire()
	}

	m.mu.Lock()
	if target.After(m.now) {
		m.now = target
	}
	m.mu.Unlock()
}

// PendingTimers reports how many timers are scheduled. Tests use it to assert
// that teardown left nothing armed.
func (m *Mock) PendingTimers() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.timers)
}

func (m *Mock) schedule(d time.Duration, fn func()) *mockTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	t := &mockTimer{
		mock:     m,
		deadline: m.now.Add(d),
		fn:       fn,
		ch:       make(chan time.Time, 1),
		pending:  true,
	}
	m.timers = append(m.timers, t)
	return t
}

// nextDue pops the earliest timer due at or before target, advancing now to
// its deadline. Returns nil when no timer is due.
func (m *Mock) nextDue(target time.Time) *mockTimer {
	m.mu.Lock()
	defer m.mu.Unlock()

	sort.SliceStable(m.timers, func(i, j int) bool {
		return m.timers[i].deadline.Before(m.timers[j].deadline)
	})

	for i, t := range m.timers {
		if t.deadline.After(target) {
			break
		}
		m.timers = append(m.timers[:i], m.timers[i+1:]...)
		if t.deadline.After(m.now) {
			m.now = t.deadline
		}
		return t
	}
	return nil
}

func (m *Mock) remove(t *mockTimer) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i, cand := range m.timers {
		if cand == t {
			m.timers = append(m.timers[:i], m.timers[i+1:]...)
			return true
		}
	}
	return false
}

type mockTimer struct {
	mock     *Mock
	deadline time.Time
	fn       func()
	ch       chan time.Time

	mu      sync.Mutex
	pending bool
}

// fire runs outside the mock's lock so callbacks can schedule or stop timers.
func (t *mockTimer) fire() {
	t.mu.Lock()
	if !t.pending {
		t.mu.Unlock()
		return
	}
	t.pending = false
	t.mu.Unlock()

	if t.fn != nil {
		t.fn()
		return
	}

	select {
	case t.ch <- t.deadline:
	default:
	}
}

func (t *mockTimer) C() <-chan time.Time { return t.ch }

func (t *mockTimer) Stop() bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if !t.pending {
		return false
	}
	t.pending = false
	return t.mock.remove(t)
}

func (t *mockTimer) Reset(d time.Duration) bool {
	wasPending := t.Stop()

	t.mock.mu.Lock()
	t.deadline = t.mock.now.Add(d)
	t.mock.timers = append(t.mock.timers, t)
	t.mock.mu.Unlock()

	t.mu.Lock()
	t.pending = true
	t.mu.Unlock()

	return wasPending
}
