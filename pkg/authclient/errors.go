package authclient

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidBaseURL indicates the identity service base URL could not be parsed
	ErrInvalidBaseURL = errors.New("authclient.invalid_base_url")

	// ErrAuthFailed indicates the server rejected the credentials or session
	ErrAuthFailed = errors.New("authclient.auth_failed")

	// ErrNetwork indicates a transport-level failure reaching the identity service
	ErrNetwork = errors.New("authclient.network_failure")
)

// ValidationError reports malformed local input, surfaced before any network
// round-trip is attempted.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Reason)
}

// IsValidationError reports whether err is a ValidationError.
func IsValidationError(err error) bool {
	var e *ValidationError
	return errors.As(err, &e)
}

// StatusError carries an unexpected HTTP status and the raw response body so
// callers needing diagnostics can inspect what the server actually said.
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("unexpected status %d from identity service", e.StatusCode)
}
