package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseBool(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"1", "1", true},
		{"true", "true", true},
		{"TRUE", "TRUE", true},
		{"yes", "yes", true},
		{"YES", "YES", true},
		{"on", "on", true},
		{"ON", "ON", true},
		{"with spaces", "  true  ", true},
		{"0", "0", false},
		{"false", "false", false},
		{"FALSE", "FALSE", false},
		{"no", "no", false},
		{"off", "off", false},
		{"empty", "", false},
		{"random", "random", false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			result := parseBool(tc.input)
			assert.Equal(t, tc.expected, result)
		})
	}
}

func TestApplyEnvironment(t *testing.T) {
	// Cannot run in parallel because we modify environment variables.

	t.Run("SHARDFILE_HOME", func(t *testing.T) {
		cfg := Defaults()
		originalHome := cfg.Home

		t.Setenv(EnvHome, "/custom/home")
		ApplyEnvironment(cfg)

		assert.Equal(t, "/custom/home", cfg.Home)
		assert.NotEqual(t, originalHome, cfg.Home)
	})

	t.Run("SHARDFILE_OUTPUT_FORMAT", func(t *testing.T) {
		cfg := Defaults()

		t.Setenv(EnvOutputFormat, "JSON")
		ApplyEnvironment(cfg)

		assert.Equal(t, "json", cfg.Output.DefaultFormat)
	})

	t.Run("SHARDFILE_VERBOSE", func(t *testing.T) {
		tests := []struct {
			name     string
			value    string
			expected bool
		}{
			{"true", "true", true},
			{"1", "1", true},
			{"yes", "yes", true},
			{"false", "false", false},
			{"0", "0", false},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				cfg := Defaults()

				t.Setenv(EnvVerbose, tc.value)
				ApplyEnvironment(cfg)

				assert.Equal(t, tc.expected, cfg.Output.Verbose)
			})
		}
	})

	t.Run("SHARDFILE_LOG_LEVEL", func(t *testing.T) {
		cfg := Defaults()

		t.Setenv(EnvLogLevel, "DEBUG")
		ApplyEnvironment(cfg)

		assert.Equal(t, "debug", cfg.Logging.Level)
	})

	t.Run("NO_COLOR", func(t *testing.T) {
		cfg := Defaults()
		originalColor := cfg.Output.Color

		t.Setenv(EnvNoColor, "1")
		ApplyEnvironment(cfg)

		assert.Equal(t, "never", cfg.Output.Color)
		assert.NotEqual(t, originalColor, cfg.Output.Color)
	})

	t.Run("SHARDFILE_DEFAULT_SHARES", func(t *testing.T) {
		tests := []struct {
			name     string
			value    string
			expected int
		}{
			{"valid positive", "7", 7},
			{"zero", "0", 0},
			{"negative", "-1", 0},
			{"invalid", "abc", 0},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				cfg := Defaults()
				original := cfg.Share.DefaultShares

				t.Setenv(EnvDefaultN, tc.value)
				ApplyEnvironment(cfg)

				if tc.expected > 0 {
					assert.Equal(t, tc.expected, cfg.Share.DefaultShares)
				} else {
					assert.Equal(t, original, cfg.Share.DefaultShares, "should not override with invalid value")
				}
			})
		}
	})

	t.Run("SHARDFILE_DEFAULT_MIN_SHARES", func(t *testing.T) {
		tests := []struct {
			name     string
			value    string
			expected int
		}{
			{"valid positive", "2", 2},
			{"zero", "0", 0},
			{"negative", "-1", 0},
			{"invalid", "abc", 0},
		}

		for _, tc := range tests {
			t.Run(tc.name, func(t *testing.T) {
				cfg := Defaults()
				original := cfg.Share.DefaultMinShares

				t.Setenv(EnvDefaultK, tc.value)
				ApplyEnvironment(cfg)

				if tc.expected > 0 {
					assert.Equal(t, tc.expected, cfg.Share.DefaultMinShares)
				} else {
					assert.Equal(t, original, cfg.Share.DefaultMinShares, "should not override with invalid value")
				}
			})
		}
	})

	t.Run("multiple env vars", func(t *testing.T) {
		cfg := Defaults()

		t.Setenv(EnvHome, "/custom/home")
		t.Setenv(EnvOutputFormat, "json")
		t.Setenv(EnvVerbose, "true")

		ApplyEnvironment(cfg)

		assert.Equal(t, "/custom/home", cfg.Home)
		assert.Equal(t, "json", cfg.Output.DefaultFormat)
		assert.True(t, cfg.Output.Verbose)
	})
}

func TestDefaults(t *testing.T) {
	t.Parallel()

	cfg := Defaults()

	assert.NotEmpty(t, cfg.Home)
	assert.Positive(t, cfg.Share.DefaultShares)
	assert.Positive(t, cfg.Share.DefaultMinShares)
	assert.NotEmpty(t, cfg.Output.DefaultFormat)
	assert.NotEmpty(t, cfg.Logging.Level)
}
