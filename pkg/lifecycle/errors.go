package lifecycle

import "errors"

var (
	// ErrAlreadyStarted indicates Start was called twice on one controller
	ErrAlreadyStarted = errors.New("lifecycle.already_started")

	// ErrNoSessionAPI indicates the controller was built without a session API
	ErrNoSessionAPI = errors.New("lifecycle.no_session_api")

	// ErrNotAuthenticated indicates the initial identity check found no session
	ErrNotAuthenticated = errors.New("lifecycle.not_authenticated")
)
