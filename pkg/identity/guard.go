package identity

import (
	"sync"
	"time"

	"github.com/mkovalev/sessionguard/pkg/clock"
)

// LogoutGuard is the reentrancy guard around an in-flight logout. While held,
// identity reads resolve to "no identity" instead of racing the logout's
// cache clear: a fetch issued milliseconds before logout must not repopulate
// the cache with a stale success response after the clear.
//
// Release schedules the actual clear after a grace window rather than
// dropping the guard immediately, so responses already on the wire when
// logout began are still absorbed.
type LogoutGuard struct {
	mu      sync.Mutex
	clk     clock.Clock
	active  bool
	release clock.Timer
}

// NewLogoutGuard creates a guard using the given clock. A nil clock falls
// back to the real one.
func NewLogoutGuard(clk clock.Clock) *LogoutGuard {
	if clk == nil {
		clk = clock.New()
	}
	return &LogoutGuard{clk: clk}
}

// Acquire marks a logout as in flight. Any pending delayed release is
// cancelled so overlapping logout attempts keep the guard held.
func (g *LogoutGuard) Acquire() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.release != nil {
		g.release.Stop()
		g.release = nil
	}
	g.active = true
}

// Release schedules the guard to clear after the grace window. A zero grace
// clears immediately.
func (g *LogoutGuard) Release(grace time.Duration) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.release != nil {
		g.release.Stop()
		g.release = nil
	}

	if grace <= 0 {
		g.active = false
		return
	}

	g.release = g.clk.AfterFunc(grace, func() {
		g.mu.Lock()
		defer g.mu.Unlock()
		g.active = false
		g.release = nil
	})
}

// Active reports whether a logout is in flight or within its grace window.
func (g *LogoutGuard) Active() bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.active
}
