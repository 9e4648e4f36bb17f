package lifecycle

import (
	"fmt"
	"time"
)

// State is the lifecycle controller's current phase. Exactly one instance
// exists per controller and it is mutated only through transition functions.
type State int

const (
	// StateActive is the normal authenticated phase.
	StateActive State = iota
	// StateWarning means the inactivity warning is open and counting down.
	StateWarning
	// StateLoggedOut is terminal for a mount; a fresh controller starts Active.
	StateLoggedOut
)

func (s State) String() string {
	switch s {
	case StateActive:
		return "active"
	case StateWarning:
		return "warning"
	case StateLoggedOut:
		return "logged_out"
	default:
		return "unknown"
	}
}

// Status is a point-in-time snapshot of the controller.
type Status struct {
	State State

	// Countdown is the seconds remaining before forced logout; meaningful
	// only while State is StateWarning.
	Countdown int

	// LastActivity is the last recognized user interaction, diagnostic only.
	LastActivity time.Time
}

// FormatCountdown renders seconds as M:SS for warning displays.
func FormatCountdown(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}
