package activity

import (
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/mkovalev/sessionguard/pkg/clock"
	"github.com/mkovalev/sessionguard/pkg/logger"
)

// DefaultThrottle is the minimum spacing between reschedule-hook invocations.
// Bursts of signals inside the window collapse into a single reschedule.
const DefaultThrottle = time.Second

// Monitor records user-interaction signals. Every tracked signal updates the
// last-activity timestamp; the reschedule hook fires at most once per
// throttle window and never while suppressed.
//
// The timestamp is diagnostic only. Lifecycle transitions are timer-driven;
// nothing polls LastActivity to decide state.
type Monitor struct {
	mu         sync.Mutex
	clk        clock.Clock
	limiter    *rate.Limiter
	last       time.Time
	hook       func()
	suppressed bool
	log        *slog.Logger
}

// Option configures a Monitor.
type Option func(*Monitor)

// WithThrottle sets the minimum spacing between hook invocations.
// Throttling is leading edge: the first signal of a burst invokes the hook
// immediately and later signals inside the window are dropped, so a deadline
// rearmed through the hook trails the last raw signal by at most the window.
// A non-positive value disables throttling.
func WithThrottle(d time.Duration) Option {
	return func(m *Monitor) {
		if d <= 0 {
			m.limiter = nil
			return
		}
		m.limiter = rate.NewLimiter(rate.Every(d), 1)
	}
}

// WithLogger sets the logger for the monitor.
func WithLogger(log *slog.Logger) Option {
	return func(m *Monitor) {
		if log != nil {
			m.log = log
		}
	}
}

// NewMonitor creates a Monitor. A nil clock falls back to the real one.
func NewMonitor(clk clock.Clock, opts ...Option) *Monitor {
	if clk == nil {
		clk = clock.New()
	}

	m := &Monitor{
		clk:     clk,
		limiter: rate.NewLimiter(rate.Every(DefaultThrottle), 1),
		last:    clk.Now(),
		log:     slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// Track records a signal. The reschedule hook runs outside the monitor's
// lock so it may call back into the monitor.
func (m *Monitor) Track(sig Signal) {
	m.mu.Lock()
	now := m.clk.Now()
	m.last = now

	hook := m.hook
	run := hook != nil && !m.suppressed
	if run && m.limiter != nil {
		run = m.limiter.AllowN(now, 1)
	}
	m.mu.Unlock()

	if !run {
		return
	}

	m.log.Debug("activity signal", logger.Component("activity"), logger.Event(sig.String()))
	hook()
}

// LastActivity returns the timestamp of the last recognized signal.
func (m *Monitor) LastActivity() time.Time {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.last
}

// Suppress toggles hook suppression. The lifecycle controller suppresses the
// monitor on entering the warning state: activity during the warning never
// silently extends the session, the user must take the explicit action.
// Timestamps keep recording either way.
func (m *Monitor) Suppress(on bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.suppressed = on
}

// Suppressed reports whether hook invocations are currently suppressed.
func (m *Monitor) Suppressed() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.suppressed
}

// Bind installs the reschedule hook.
func (m *Monitor) Bind(hook func()) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hook = hook
}

// Unbind detaches the hook. Safe to call repeatedly and mid-teardown.
func (m *Monitor) Unbind() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.hook = nil
}
