// Package lifecycle implements the client-side session lifecycle state
// machine: Active, Warning with a per-second countdown, and terminal
// LoggedOut.
//
// # Architecture
//
// The Controller drives three independent timers against an injected clock:
//
//   - a periodic liveness check that re-fetches the identity and forces
//     logout when the server no longer honors the session
//   - an inactivity delay that opens the warning when no user activity
//     arrives for the configured duration
//   - the warning countdown, ticking once per second toward forced logout
//
// Liveness and inactivity are deliberately decoupled: a successful liveness
// check never extends the warning deadline, only real user activity does.
// While the warning is open, activity is suppressed entirely; the only way
// back to Active is the explicit StayLoggedIn renewal.
//
// Every transition runs under one mutex with timers cancelled before any
// rearm, and a generation counter invalidates callbacks from timers that
// were torn down after firing. Entering LoggedOut cancels all timers
// synchronously, so the state machine can never leave it.
//
// # Usage
//
//	client, _ := authclient.New(authclient.DefaultConfig())
//	ctrl, err := lifecycle.New(lifecycle.DefaultConfig(), client,
//		lifecycle.WithNavigator(router),
//		lifecycle.WithSink(toasts),
//	)
//	if err != nil {
//		return err
//	}
//	if err := ctrl.Start(ctx, currentPath); err != nil {
//		return err // redirected to login already
//	}
//	defer ctrl.Stop()
//
// User interactions feed the activity monitor, which reschedules the
// warning while the session is Active:
//
//	ctrl.Monitor().Track(activity.SignalKeyPress)
//
// Paths under Config.PasswordResetPrefix are exempt from the whole
// lifecycle: Start arms nothing and returns nil.
package lifecycle
