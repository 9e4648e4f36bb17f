package authclient

import "github.com/mkovalev/sessionguard/pkg/identity"

// Result is the uniform outcome of a user-initiated action. Failures are
// carried in Err rather than raised: transport errors, server rejections and
// local validation all land here so callers handle one shape.
type Result struct {
	Success bool

	// RequiresTwoFactor is set when login succeeded pending a second factor.
	// No identity is established until the code is submitted.
	RequiresTwoFactor bool

	// Identity is the established principal on full success.
	Identity *identity.Identity

	// Message is an optional human-readable success detail from the server.
	Message string

	// Err is the human-readable failure, empty on success.
	Err string

	// validation carries the typed error when the failure was local input.
	validation *ValidationError
}

// Validation returns the typed validation error, or nil when the failure did
// not originate from local input.
func (r Result) Validation() *ValidationError {
	return r.validation
}

// OK reports whether the action succeeded.
func (r Result) OK() bool {
	return r.Success && r.Err == ""
}

func errorResult(msg string) Result {
	return Result{Err: msg}
}

func validationResult(field, reason string) Result {
	e := &ValidationError{Field: field, Reason: reason}
	return Result{Err: e.Reason, validation: e}
}
