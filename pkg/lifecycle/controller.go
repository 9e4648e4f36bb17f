package lifecycle

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/mkovalev/sessionguard/pkg/activity"
	"github.com/mkovalev/sessionguard/pkg/authclient"
	"github.com/mkovalev/sessionguard/pkg/clock"
	"github.com/mkovalev/sessionguard/pkg/identity"
	"github.com/mkovalev/sessionguard/pkg/logger"
	"github.com/mkovalev/sessionguard/pkg/notify"
)

// SessionAPI is the slice of the API client the controller drives.
type SessionAPI interface {
	FetchIdentity(ctx context.Context, force bool) (*identity.Identity, error)
	Refresh(ctx context.Context) (*identity.Identity, error)
	Logout(ctx context.Context) authclient.Result
	ClearCredentials()
}

// Navigator performs route changes on the controller's behalf.
type Navigator interface {
	RedirectTo(path string)
}

// NavigatorFunc adapts a function to the Navigator interface.
type NavigatorFunc func(path string)

func (f NavigatorFunc) RedirectTo(path string) { f(path) }

// Controller owns the session lifecycle state machine: the periodic liveness
// check, the inactivity-warning delay and the warning countdown, and the
// transitions between Active, Warning and LoggedOut.
//
// The three timers are deliberately independent. The liveness check exists
// to catch server-side invalidation promptly and never extends the warning
// deadline; the warning timer measures pure user inactivity. The countdown
// exists only inside the warning state and is torn down entirely on exit in
// either direction.
//
// All state mutation happens under one mutex with timers cancelled before
// any rearm, so callbacks and network responses interleave like a single
// logical thread.
type Controller struct {
	cfg     Config
	api     SessionAPI
	nav     Navigator
	sink    notify.Sink
	monitor *activity.Monitor
	clk     clock.Clock
	log     *slog.Logger

	mu        sync.Mutex
	state     State
	countdown int

	// Per-timer generations invalidate callbacks from cancelled timers:
	// every stop or rearm bumps the counter, so a callback that already
	// fired but is blocked on mu observes the mismatch and returns without
	// touching the state machine. One counter per timer, because bumping a
	// shared counter on a warning rearm would also kill the still-armed
	// liveness and countdown callbacks.
	genLiveness  uint64
	genWarning   uint64
	genCountdown uint64

	livenessTimer  clock.Timer
	warningTimer   clock.Timer
	countdownTimer clock.Timer

	renewing      bool
	warningForced bool
	started       bool
	stopped       bool

	ctx     context.Context
	ctxStop func() bool

	onTransition func(from, to State)
	onCountdown  func(remaining int)
}

// Option configures a Controller.
type Option func(*Controller)

// WithNavigator sets the navigation collaborator.
func WithNavigator(nav Navigator) Option {
	return func(c *Controller) {
		if nav != nil {
			c.nav = nav
		}
	}
}

// WithSink sets the notification sink.
func WithSink(sink notify.Sink) Option {
	return func(c *Controller) {
		if sink != nil {
			c.sink = sink
		}
	}
}

// WithMonitor sets the activity monitor the controller binds on Start.
func WithMonitor(m *activity.Monitor) Option {
	return func(c *Controller) {
		if m != nil {
			c.monitor = m
		}
	}
}

// WithClock sets the clock driving all three timers.
func WithClock(clk clock.Clock) Option {
	return func(c *Controller) {
		if clk != nil {
			c.clk = clk
		}
	}
}

// WithLogger sets the logger for the controller.
func WithLogger(log *slog.Logger) Option {
	return func(c *Controller) {
		if log != nil {
			c.log = log
		}
	}
}

// WithTransitionHook registers an observer for state changes. The hook runs
// outside the controller's lock and must not block.
func WithTransitionHook(fn func(from, to State)) Option {
	return func(c *Controller) { c.onTransition = fn }
}

// WithCountdownHook registers an observer for countdown ticks.
func WithCountdownHook(fn func(remaining int)) Option {
	return func(c *Controller) { c.onCountdown = fn }
}

// New creates a Controller in StateActive. Nothing is scheduled until Start.
func New(cfg Config, api SessionAPI, opts ...Option) (*Controller, error) {
	if api == nil {
		return nil, ErrNoSessionAPI
	}

	defaults := DefaultConfig()
	if cfg.CheckInterval <= 0 {
		cfg.CheckInterval = defaults.CheckInterval
	}
	if cfg.WarningDelay <= 0 {
		cfg.WarningDelay = defaults.WarningDelay
	}
	if cfg.CountdownDuration <= 0 {
		cfg.CountdownDuration = defaults.CountdownDuration
	}
	if cfg.PasswordResetPrefix == "" {
		cfg.PasswordResetPrefix = defaults.PasswordResetPrefix
	}
	if cfg.LoginPath == "" {
		cfg.LoginPath = defaults.LoginPath
	}

	c := &Controller{
		cfg:   cfg,
		api:   api,
		nav:   NavigatorFunc(func(string) {}),
		sink:  notify.NoopSink{},
		clk:   clock.New(),
		log:   slog.Default(),
		state: StateActive,
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.monitor == nil {
		c.monitor = activity.NewMonitor(c.clk)
	}

	return c, nil
}

// Start runs the initial identity check and arms the timers. A path under
// the password-reset prefix is exempt from the whole lifecycle: nothing is
// armed and no check runs. An absent identity redirects to the login route
// and returns ErrNotAuthenticated.
//
// The controller stops itself when ctx is cancelled, so cleanup runs even if
// the owning component is torn down mid-timer.
func (c *Controller) Start(ctx context.Context, path string) error {
	c.mu.Lock()
	if c.started {
		c.mu.Unlock()
		return ErrAlreadyStarted
	}
	c.started = true
	c.ctx = ctx
	c.mu.Unlock()

	if strings.HasPrefix(path, c.cfg.PasswordResetPrefix) {
		c.log.Debug("lifecycle exempt on credential-reset route",
			logger.Component("lifecycle"), logger.Endpoint(path))
		return nil
	}

	id, err := c.api.FetchIdentity(ctx, true)
	if err != nil || id == nil {
		c.log.Info("initial identity check failed",
			logger.Component("lifecycle"), logger.Error(err))

		c.mu.Lock()
		from := c.state
		c.enterLoggedOutLocked()
		c.mu.Unlock()

		c.api.ClearCredentials()
		c.nav.RedirectTo(c.cfg.LoginPath)
		c.notifyTransition(from, StateLoggedOut)
		return ErrNotAuthenticated
	}

	c.mu.Lock()
	c.armLivenessLocked()
	c.armWarningLocked()
	c.mu.Unlock()

	c.monitor.Bind(c.RescheduleWarning)

	stop := context.AfterFunc(ctx, c.Stop)
	c.mu.Lock()
	c.ctxStop = stop
	c.mu.Unlock()

	c.log.Info("session lifecycle started",
		logger.Component("lifecycle"),
		logger.UserID(id.ID),
		logger.Duration(c.cfg.WarningDelay),
	)
	return nil
}

// Status returns a snapshot of the controller.
func (c *Controller) Status() Status {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Status{
		State:        c.state,
		Countdown:    c.countdown,
		LastActivity: c.monitor.LastActivity(),
	}
}

// Monitor returns the activity monitor feeding this controller.
func (c *Controller) Monitor() *activity.Monitor {
	return c.monitor
}

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// RescheduleWarning restarts the inactivity measurement. The activity
// monitor invokes it on user signals; it is a no-op outside StateActive and
// while the warning is forced open, so activity never silently extends a
// session that is already warning.
func (c *Controller) RescheduleWarning() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !c.started || c.stopped || c.state != StateActive || c.warningForced {
		return
	}
	c.armWarningLocked()
}

// StayLoggedIn is the explicit "keep my session" action from the warning.
// It issues one renewal; success returns to StateActive with a fresh, full
// warning delay, failure forces logout. Duplicate invocations while a
// renewal is in flight are ignored.
func (c *Controller) StayLoggedIn() {
	c.mu.Lock()
	if c.state != StateWarning || c.renewing {
		c.mu.Unlock()
		return
	}
	c.renewing = true
	ctx := c.ctx
	c.mu.Unlock()

	sp := c.sink.StartSpinner("Renewing session")
	id, err := c.api.Refresh(ctx)

	c.mu.Lock()
	c.renewing = false

	if c.state != StateWarning {
		// Logged out while the renewal was in flight; its outcome no
		// longer matters.
		c.mu.Unlock()
		sp.Complete(false, "")
		return
	}

	if err == nil && id != nil {
		c.exitWarningLocked()
		c.mu.Unlock()

		sp.Complete(true, "Session extended")
		c.notifyTransition(StateWarning, StateActive)
		return
	}

	c.enterLoggedOutLocked()
	c.mu.Unlock()

	sp.Complete(false, "Session renewal failed")
	c.api.ClearCredentials()
	c.nav.RedirectTo(c.cfg.LoginPath)
	c.notifyTransition(StateWarning, StateLoggedOut)
}

// Logout is the explicit user logout, valid from Active or Warning. All
// timers are cancelled before the network call is issued.
func (c *Controller) Logout() {
	c.mu.Lock()
	if !c.started || c.state == StateLoggedOut {
		c.mu.Unlock()
		return
	}
	from := c.state
	ctx := c.ctx
	c.enterLoggedOutLocked()
	c.mu.Unlock()

	res := c.api.Logout(ctx)
	c.nav.RedirectTo(c.cfg.LoginPath)
	if res.Err != "" {
		c.sink.ReportError(res.Err)
	}
	c.notifyTransition(from, StateLoggedOut)
}

// ForceWarning opens the warning immediately for diagnostics. The
// warning-delay timer stays suppressed for the remainder of the mount.
func (c *Controller) ForceWarning() {
	c.mu.Lock()
	if !c.started || c.state != StateActive {
		c.mu.Unlock()
		return
	}
	c.warningForced = true
	c.enterWarningLocked()
	c.mu.Unlock()

	c.sink.ReportInfo("Your session is about to expire due to inactivity.")
	c.notifyTransition(StateActive, StateWarning)
}

// Stop cancels all timers, detaches the activity monitor and releases the
// context-cancellation registration. Idempotent; also runs on context
// cancellation.
func (c *Controller) Stop() {
	c.mu.Lock()
	if c.stopped {
		c.mu.Unlock()
		return
	}
	c.stopped = true
	stop := c.ctxStop
	c.ctxStop = nil
	c.teardownTimersLocked()
	c.mu.Unlock()

	if stop != nil {
		stop()
	}
	c.monitor.Unbind()
	c.monitor.Suppress(false)
	c.log.Debug("session lifecycle stopped", logger.Component("lifecycle"))
}

// warningElapsed fires when the inactivity delay passes with no activity.
func (c *Controller) warningElapsed(gen uint64) {
	c.mu.Lock()
	if gen != c.genWarning || c.state != StateActive {
		c.mu.Unlock()
		return
	}
	c.enterWarningLocked()
	c.mu.Unlock()

	c.sink.ReportInfo("Your session is about to expire due to inactivity.")
	c.notifyTransition(StateActive, StateWarning)
}

// tickCountdown decrements once per second while warning. Reaching zero
// forces the logout sequence within the same tick.
func (c *Controller) tickCountdown(gen uint64) {
	c.mu.Lock()
	if gen != c.genCountdown || c.state != StateWarning {
		c.mu.Unlock()
		return
	}

	c.countdown--
	remaining := c.countdown
	c.log.Debug("warning countdown",
		logger.Component("lifecycle"), logger.Countdown(remaining))

	if remaining > 0 {
		c.armCountdownTickLocked()
		c.mu.Unlock()

		if c.onCountdown != nil {
			c.onCountdown(remaining)
		}
		return
	}

	ctx := c.ctx
	c.enterLoggedOutLocked()
	c.mu.Unlock()

	if c.onCountdown != nil {
		c.onCountdown(0)
	}

	res := c.api.Logout(ctx)
	c.nav.RedirectTo(c.cfg.LoginPath)
	if res.Err != "" {
		c.sink.ReportError(res.Err)
	}
	c.notifyTransition(StateWarning, StateLoggedOut)
}

// livenessCheck confirms the server still honors the session. Success stays
// Active without touching the warning timer: liveness is not activity, and
// resetting the inactivity measurement here would over-extend sessions on
// every background check.
func (c *Controller) livenessCheck(gen uint64) {
	c.mu.Lock()
	if gen != c.genLiveness {
		c.mu.Unlock()
		return
	}
	if c.state != StateActive {
		// The check itself only runs while Active, but the cadence must
		// survive a warning cycle: skip the fetch and rearm.
		c.armLivenessLocked()
		c.mu.Unlock()
		return
	}
	ctx := c.ctx
	c.mu.Unlock()

	id, err := c.api.FetchIdentity(ctx, true)

	c.mu.Lock()
	if gen != c.genLiveness {
		c.mu.Unlock()
		return
	}
	if c.state != StateActive {
		c.armLivenessLocked()
		c.mu.Unlock()
		return
	}

	if err != nil || id == nil {
		c.log.Info("liveness check failed",
			logger.Component("lifecycle"), logger.Error(err))
		c.enterLoggedOutLocked()
		c.mu.Unlock()

		c.api.ClearCredentials()
		c.nav.RedirectTo(c.cfg.LoginPath)
		c.notifyTransition(StateActive, StateLoggedOut)
		return
	}

	c.armLivenessLocked()
	c.mu.Unlock()
}

// armWarningLocked cancels any pending warning timer before scheduling the
// next one; a stale duplicate pending alongside a fresh one is a correctness
// bug, not just a leak. The generation bump in the stop makes cancellation
// effective even against a real-clock callback that already fired and is
// waiting on the mutex.
func (c *Controller) armWarningLocked() {
	c.stopWarningLocked()

	if c.state != StateActive || c.warningForced || c.stopped {
		return
	}

	gen := c.genWarning
	c.warningTimer = c.clk.AfterFunc(c.cfg.WarningDelay, func() { c.warningElapsed(gen) })
}

func (c *Controller) armLivenessLocked() {
	c.stopLivenessLocked()

	if c.stopped {
		return
	}

	gen := c.genLiveness
	c.livenessTimer = c.clk.AfterFunc(c.cfg.CheckInterval, func() { c.livenessCheck(gen) })
}

func (c *Controller) armCountdownTickLocked() {
	c.stopCountdownLocked()

	gen := c.genCountdown
	c.countdownTimer = c.clk.AfterFunc(time.Second, func() { c.tickCountdown(gen) })
}

func (c *Controller) stopWarningLocked() {
	c.genWarning++
	if c.warningTimer != nil {
		c.warningTimer.Stop()
		c.warningTimer = nil
	}
}

func (c *Controller) stopLivenessLocked() {
	c.genLiveness++
	if c.livenessTimer != nil {
		c.livenessTimer.Stop()
		c.livenessTimer = nil
	}
}

func (c *Controller) stopCountdownLocked() {
	c.genCountdown++
	if c.countdownTimer != nil {
		c.countdownTimer.Stop()
		c.countdownTimer = nil
	}
}

// enterWarningLocked moves Active -> Warning: full countdown, warning timer
// cleared, activity rescheduling suppressed until the user acts.
func (c *Controller) enterWarningLocked() {
	c.state = StateWarning
	c.countdown = c.cfg.countdownSeconds()

	c.stopWarningLocked()
	c.monitor.Suppress(true)
	c.armCountdownTickLocked()
}

// exitWarningLocked moves Warning -> Active after a successful renewal: the
// countdown is torn down and the warning delay restarts at full duration.
func (c *Controller) exitWarningLocked() {
	c.stopCountdownLocked()

	c.state = StateActive
	c.countdown = 0
	c.monitor.Suppress(false)
	c.armWarningLocked()

	// The liveness chain may have gone quiet while warning (its callback
	// skips the fetch in that state); restart the cadence if so.
	if c.livenessTimer == nil {
		c.armLivenessLocked()
	}
}

// enterLoggedOutLocked is terminal: every timer is cancelled synchronously
// before the transition returns, so no late-firing callback can push the
// machine back out of LoggedOut.
func (c *Controller) enterLoggedOutLocked() {
	c.state = StateLoggedOut
	c.countdown = 0
	c.teardownTimersLocked()
	c.monitor.Unbind()
}

// teardownTimersLocked stops all three timers and bumps their generations so
// callbacks already fired but not yet run observe the mismatch.
func (c *Controller) teardownTimersLocked() {
	c.stopLivenessLocked()
	c.stopWarningLocked()
	c.stopCountdownLocked()
}

func (c *Controller) notifyTransition(from, to State) {
	c.log.Info("lifecycle transition",
		logger.Component("lifecycle"), logger.Transition(from.String(), to.String()))

	if c.onTransition != nil {
		c.onTransition(from, to)
	}
}
