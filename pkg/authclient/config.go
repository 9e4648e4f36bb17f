package authclient

import "time"

// Config holds API client configuration.
type Config struct {
	// BaseURL is the identity service address.
	BaseURL string `env:"SESSIONGUARD_BASE_URL" envDefault:"http://127.0.0.1:5252"`

	// RequestTimeout bounds every call to the identity service.
	RequestTimeout time.Duration `env:"SESSIONGUARD_REQUEST_TIMEOUT" envDefault:"30s"`

	// TwoFactorCodeLength is the exact length a verification code must have.
	TwoFactorCodeLength int `env:"SESSIONGUARD_2FA_CODE_LENGTH" envDefault:"8"`

	// LogoutGrace is how long the reentrancy guard stays held after a logout
	// completes, absorbing responses that were already on the wire.
	LogoutGrace time.Duration `env:"SESSIONGUARD_LOGOUT_GRACE" envDefault:"500ms"`
}

// DefaultConfig returns default API client configuration.
func DefaultConfig() Config {
	return Config{
		BaseURL:             "http://127.0.0.1:5252",
		RequestTimeout:      30 * time.Second,
		TwoFactorCodeLength: 8,
		LogoutGrace:         500 * time.Millisecond,
	}
}
