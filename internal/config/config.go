// Package config provides configuration management for shardfile.
package config

import (
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/mrz1836/shardfile/internal/fileutil"
)

// Config represents the application configuration.
type Config struct {
	Version int           `yaml:"version"`
	Home    string        `yaml:"home"`
	Share   ShareConfig   `yaml:"share"`
	Output  OutputConfig  `yaml:"output"`
	Logging LoggingConfig `yaml:"logging"`
}

// ShareConfig defines default threshold-sharing parameters used when the
// CLI's --shares/--min-shares flags are not supplied.
type ShareConfig struct {
	DefaultShares    int `yaml:"default_shares"`
	DefaultMinShares int `yaml:"default_min_shares"`
}

// OutputConfig defines output formatting settings.
type OutputConfig struct {
	DefaultFormat string `yaml:"default_format"`
	Color         string `yaml:"color"`
	Verbose       bool   `yaml:"verbose"`
}

// LoggingConfig defines logging settings.
type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Load reads configuration from the specified file.
func Load(path string) (*Config, error) {
	// #nosec G304 -- config file path is from validated user input
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := Defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Save writes configuration to the specified file atomically: the new
// contents land in a temp file in the same directory, fsynced, then
// renamed over path, so a crash mid-write never leaves a truncated config.
func Save(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}

	return fileutil.WriteAtomic(path, data, 0o600)
}

// Path returns the default config file path.
func Path(home string) string {
	return filepath.Join(home, "config.yaml")
}

// GetHome returns the shardfile home directory path.
func (c *Config) GetHome() string {
	return c.Home
}

// GetLoggingLevel returns the configured logging level.
func (c *Config) GetLoggingLevel() string {
	return c.Logging.Level
}

// GetLoggingFile returns the configured log file path.
func (c *Config) GetLoggingFile() string {
	return c.Logging.File
}

// GetOutputFormat returns the default output format.
func (c *Config) GetOutputFormat() string {
	return c.Output.DefaultFormat
}

// IsVerbose returns true if verbose output is enabled.
func (c *Config) IsVerbose() bool {
	return c.Output.Verbose
}

// DefaultShares returns the configured default share count n.
func (c *Config) DefaultShares() int {
	return c.Share.DefaultShares
}

// DefaultMinShares returns the configured default threshold k.
func (c *Config) DefaultMinShares() int {
	return c.Share.DefaultMinShares
}

// DefaultHome returns the default shardfile home directory.
func DefaultHome() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".shardfile"
	}
	return filepath.Join(home, ".shardfile")
}
