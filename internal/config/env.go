package config

import (
	"os"
	"strconv"
	"strings"
)

// Environment variable names.
const (
	EnvHome         = "SHARDFILE_HOME"
	EnvOutputFormat = "SHARDFILE_OUTPUT_FORMAT"
	EnvVerbose      = "SHARDFILE_VERBOSE"
	EnvLogLevel     = "SHARDFILE_LOG_LEVEL"
	EnvNoColor      = "NO_COLOR"
	EnvDefaultN     = "SHARDFILE_DEFAULT_SHARES"
	EnvDefaultK     = "SHARDFILE_DEFAULT_MIN_SHARES"
)

// ApplyEnvironment applies environment variable overrides to the configuration.
func ApplyEnvironment(cfg *Config) {
	if v := os.Getenv(EnvHome); v != "" {
		cfg.Home = strings.TrimSpace(v)
	}

	if v := os.Getenv(EnvOutputFormat); v != "" {
		cfg.Output.DefaultFormat = strings.ToLower(strings.TrimSpace(v))
	}

	if v := os.Getenv(EnvVerbose); v != "" {
		cfg.Output.Verbose = parseBool(v)
	}

	if v := os.Getenv(EnvLogLevel); v != "" {
		cfg.Logging.Level = strings.ToLower(strings.TrimSpace(v))
	}

	// NO_COLOR disables colored output.
	if _, ok := os.LookupEnv(EnvNoColor); ok {
		cfg.Output.Color = "never"
	}

	if v := os.Getenv(EnvDefaultN); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.Share.DefaultShares = n
		}
	}

	if v := os.Getenv(EnvDefaultK); v != "" {
		if k, err := strconv.Atoi(v); err == nil && k > 0 {
			cfg.Share.DefaultMinShares = k
		}
	}
}

// parseBool parses a boolean string value.
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "1" || s == "true" || s == "yes" || s == "on" {
		return true
	}
	b, _ := strconv.ParseBool(s)
	return b
}
