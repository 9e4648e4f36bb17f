package lifecycle

import "time"

// Config holds lifecycle controller configuration. Durations are deployment
// tuning knobs; the transition logic never hardcodes them.
type Config struct {
	// CheckInterval is how often the background liveness check confirms the
	// server still considers the session valid.
	CheckInterval time.Duration `env:"SESSIONGUARD_CHECK_INTERVAL" envDefault:"1m"`

	// WarningDelay is how long without user activity before the logout
	// warning opens.
	WarningDelay time.Duration `env:"SESSIONGUARD_WARNING_DELAY" envDefault:"30m"`

	// CountdownDuration is how long the warning counts down before forcing
	// logout. It ticks in whole seconds.
	CountdownDuration time.Duration `env:"SESSIONGUARD_COUNTDOWN_DURATION" envDefault:"60s"`

	// PasswordResetPrefix exempts a mount from the entire lifecycle: no
	// timers are armed and no identity check runs on matching paths.
	PasswordResetPrefix string `env:"SESSIONGUARD_RESET_PREFIX" envDefault:"/reset_password/"`

	// LoginPath is where forced logouts redirect.
	LoginPath string `env:"SESSIONGUARD_LOGIN_PATH" envDefault:"/login"`
}

// DefaultConfig returns default lifecycle configuration.
func DefaultConfig() Config {
	return Config{
		CheckInterval:       time.Minute,
		WarningDelay:        30 * time.Minute,
		CountdownDuration:   60 * time.Second,
		PasswordResetPrefix: "/reset_password/",
		LoginPath:           "/login",
	}
}

// countdownSeconds converts the configured duration to whole ticks.
func (c Config) countdownSeconds() int {
	secs := int(c.CountdownDuration / time.Second)
	if secs < 1 {
		secs = 1
	}
	return secs
}
