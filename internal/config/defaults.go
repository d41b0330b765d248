package config

// Defaults returns the default configuration.
func Defaults() *Config {
	return &Config{
		Version: 1,
		Home:    "~/.shardfile",
		Share: ShareConfig{
			DefaultShares:    5,
			DefaultMinShares: 3,
		},
		Output: OutputConfig{
			DefaultFormat: "auto",
			Color:         "auto",
			Verbose:       false,
		},
		Logging: LoggingConfig{
			Level: "error",
			File:  "~/.shardfile/shardfile.log",
		},
	}
}
