package credentials

import "errors"

var (
	// ErrNilJar indicates no cookie jar was provided
	ErrNilJar = errors.New("credentials.nil_jar")

	// ErrInvalidBaseURL indicates the identity service base URL could not be parsed
	ErrInvalidBaseURL = errors.New("credentials.invalid_base_url")
)
