// Package activity tracks user-interaction signals and feeds the session
// lifecycle controller's inactivity measurement.
//
// A Monitor records the last-activity timestamp on every signal and invokes
// a bound reschedule hook, throttled so bursts collapse into a single
// invocation. The controller suppresses the hook while its logout warning is
// open: during the warning, only the explicit "stay logged in" action may
// extend the session.
package activity
