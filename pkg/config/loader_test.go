package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkovalev/sessionguard/pkg/config"
)

type testConfig struct {
	BaseURL      string        `env:"TEST_BASE_URL" envDefault:"http://127.0.0.1:5252"`
	WarningDelay time.Duration `env:"TEST_WARNING_DELAY" envDefault:"30m"`
	Countdown    int           `env:"TEST_COUNTDOWN" envDefault:"60"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "http://127.0.0.1:5252", cfg.BaseURL)
		assert.Equal(t, 30*time.Minute, cfg.WarningDelay)
		assert.Equal(t, 60, cfg.Countdown)
	})

	t.Run("environment overrides defaults", func(t *testing.T) {
		t.Setenv("TEST_BASE_URL", "https://auth.example.com")
		t.Setenv("TEST_WARNING_DELAY", "10s")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))

		assert.Equal(t, "https://auth.example.com", cfg.BaseURL)
		assert.Equal(t, 10*time.Second, cfg.WarningDelay)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		var cfg *testConfig
		err := config.Load(cfg)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("unparsable value surfaces ErrParsingConfig", func(t *testing.T) {
		t.Setenv("TEST_COUNTDOWN", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		t.Setenv("TEST_COUNTDOWN", "boom")

		var cfg testConfig
		assert.Panics(t, func() { config.MustLoad(&cfg) })
	})
}
