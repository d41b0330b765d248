package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mrz1836/shardfile/internal/config"
	"github.com/mrz1836/shardfile/internal/output"
	shardErr "github.com/mrz1836/shardfile/pkg/errors"
)

// configCmd is the parent command for configuration operations.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration",
	Long:  `View and modify shardfile configuration settings.`,
}

// configInitCmd initializes the configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize configuration",
	Long: `Create a default configuration file at ~/.shardfile/config.yaml.

If a configuration file already exists, this command will not overwrite it
unless --force is specified.

Example:
  shardfile config init
  shardfile config init --force`,
	RunE: runConfigInit,
}

// configShowCmd shows the current configuration.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	Long: `Display the current configuration settings.

Example:
  shardfile config show
  shardfile config show -o json`,
	RunE: runConfigShow,
}

// configGetCmd gets a specific configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configGetCmd = &cobra.Command{
	Use:   "get <path>",
	Short: "Get a configuration value",
	Long: `Get a specific configuration value by its path.

The path uses dot notation to navigate the configuration tree.

Examples:
  shardfile config get share.default_shares
  shardfile config get output.default_format
  shardfile config get logging.level`,
	Args: cobra.ExactArgs(1),
	RunE: runConfigGet,
}

// configSetCmd sets a configuration value.
//
//nolint:gochecknoglobals // Cobra CLI pattern requires package-level command variables
var configSetCmd = &cobra.Command{
	Use:   "set <path> <value>",
	Short: "Set a configuration value",
	Long: `Set a specific configuration value by its path.

The path uses dot notation to navigate the configuration tree.
The configuration file will be updated immediately.

Examples:
  shardfile config set share.default_shares 5
  shardfile config set output.default_format json
  shardfile config set logging.level debug`,
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

//nolint:gochecknoglobals // Cobra CLI pattern requires package-level flag variables
var configForce bool

//nolint:gochecknoinits // Cobra CLI pattern requires init for command registration
func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)

	configInitCmd.Flags().BoolVar(&configForce, "force", false, "overwrite existing configuration")
}

func runConfigInit(cmd *cobra.Command, _ []string) error {
	configPath := config.Path(cfg.Home)

	if _, err := os.Stat(configPath); err == nil && !configForce {
		return shardErr.WithSuggestion(
			shardErr.ErrConfigExists,
			fmt.Sprintf("configuration already exists at %s. Use --force to overwrite.", configPath),
		)
	}

	configDir := filepath.Dir(configPath)
	if err := os.MkdirAll(configDir, 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}

	defaultCfg := config.Defaults()
	defaultCfg.Home = cfg.Home

	if err := config.Save(defaultCfg, configPath); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	w := cmd.OutOrStdout()
	out(w, "Configuration initialized at %s\n", configPath)
	outln(w)
	outln(w, "Edit this file to configure:")
	outln(w, "  - share.default_shares: Default total share count n")
	outln(w, "  - share.default_min_shares: Default reconstruction threshold k")
	outln(w, "  - output.default_format: Output format (text/json)")
	outln(w, "  - logging.level: Log level (off/error/debug)")

	return nil
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	w := cmd.OutOrStdout()
	format := formatter.Format()

	if format == output.FormatJSON {
		return displayConfigJSON(w, cfg)
	}

	return displayConfigText(w, cfg)
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	path := args[0]

	value, err := getConfigValue(cfg, path)
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	outln(w, value)

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	path := args[0]
	value := args[1]

	if _, err := getConfigValue(cfg, path); err != nil {
		return err
	}

	configPath := config.Path(cfg.Home)
	currentCfg, err := config.Load(configPath)
	if err != nil {
		currentCfg = config.Defaults()
	}

	if err := setConfigValue(currentCfg, path, value); err != nil {
		return err
	}

	if err := config.Save(currentCfg, configPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	w := cmd.OutOrStdout()
	out(w, "Set %s = %s\n", path, value)

	return nil
}

// getConfigValue retrieves a value from the config using dot notation.
func getConfigValue(c *config.Config, path string) (string, error) {
	parts := strings.Split(path, ".")

	switch len(parts) {
	case 1:
		switch parts[0] {
		case "home":
			return c.Home, nil
		default:
			return "", shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"key": parts[0]})
		}
	case 2:
		switch parts[0] {
		case "share":
			return getShareValue(c, parts[1])
		case "output":
			return getOutputValue(c, parts[1])
		case "logging":
			return getLoggingValue(c, parts[1])
		default:
			return "", shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"section": parts[0]})
		}
	default:
		return "", shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"path": path})
	}
}

func getShareValue(c *config.Config, key string) (string, error) {
	switch key {
	case "default_shares":
		return strconv.Itoa(c.Share.DefaultShares), nil
	case "default_min_shares":
		return strconv.Itoa(c.Share.DefaultMinShares), nil
	default:
		return "", shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"section": "share", "key": key})
	}
}

func getOutputValue(c *config.Config, key string) (string, error) {
	switch key {
	case "default_format":
		return c.Output.DefaultFormat, nil
	case "verbose":
		return strconv.FormatBool(c.Output.Verbose), nil
	case "color":
		return c.Output.Color, nil
	default:
		return "", shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"section": "output", "key": key})
	}
}

func getLoggingValue(c *config.Config, key string) (string, error) {
	switch key {
	case "level":
		return c.Logging.Level, nil
	case "file":
		return c.Logging.File, nil
	default:
		return "", shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"section": "logging", "key": key})
	}
}

// setConfigValue sets a value in the config using dot notation.
func setConfigValue(c *config.Config, path, value string) error {
	parts := strings.Split(path, ".")

	switch len(parts) {
	case 1:
		switch parts[0] {
		case "home":
			c.Home = value
			return nil
		default:
			return shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"key": parts[0]})
		}
	case 2:
		switch parts[0] {
		case "share":
			return setShareValue(c, parts[1], value)
		case "output":
			return setOutputValue(c, parts[1], value)
		case "logging":
			return setLoggingValue(c, parts[1], value)
		default:
			return shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"section": parts[0]})
		}
	default:
		return shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"path": path})
	}
}

func setShareValue(c *config.Config, key, value string) error {
	switch key {
	case "default_shares":
		n, err := strconv.Atoi(value)
		if err != nil {
			return shardErr.WithDetails(shardErr.ErrThresholdInvalid, map[string]string{"value": value})
		}
		c.Share.DefaultShares = n
		return nil
	case "default_min_shares":
		k, err := strconv.Atoi(value)
		if err != nil {
			return shardErr.WithDetails(shardErr.ErrThresholdInvalid, map[string]string{"value": value})
		}
		c.Share.DefaultMinShares = k
		return nil
	default:
		return shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"section": "share", "key": key})
	}
}

func setOutputValue(c *config.Config, key, value string) error {
	switch key {
	case "default_format":
		if value != "text" && value != "json" && value != "auto" {
			return shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"value": value, "valid": "text, json, or auto"})
		}
		c.Output.DefaultFormat = value
		return nil
	case "verbose":
		c.Output.Verbose = value == "true"
		return nil
	case "color":
		if value != "auto" && value != "always" && value != "never" {
			return shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"value": value, "valid": "auto, always, or never"})
		}
		c.Output.Color = value
		return nil
	default:
		return shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"section": "output", "key": key})
	}
}

func setLoggingValue(c *config.Config, key, value string) error {
	switch key {
	case "level":
		validLevels := []string{"off", "error", "debug"}
		for _, l := range validLevels {
			if value == l {
				c.Logging.Level = value
				return nil
			}
		}
		return shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"value": value, "valid": "off, error, or debug"})
	case "file":
		c.Logging.File = value
		return nil
	default:
		return shardErr.WithDetails(shardErr.ErrUnknownConfigKey, map[string]string{"section": "logging", "key": key})
	}
}

// displayConfigText shows the config in text format.
func displayConfigText(w interface {
	Write(p []byte) (n int, err error)
}, c *config.Config,
) error {
	outln(w, "Configuration:")
	outln(w)
	out(w, "  Home: %s\n", c.Home)
	outln(w)
	outln(w, "  Share:")
	out(w, "    default_shares: %d\n", c.Share.DefaultShares)
	out(w, "    default_min_shares: %d\n", c.Share.DefaultMinShares)
	outln(w)
	outln(w, "  Output:")
	out(w, "    default_format: %s\n", c.Output.DefaultFormat)
	out(w, "    verbose: %t\n", c.Output.Verbose)
	out(w, "    color: %s\n", c.Output.Color)
	outln(w)
	outln(w, "  Logging:")
	out(w, "    level: %s\n", c.Logging.Level)
	out(w, "    file: %s\n", c.Logging.File)

	return nil
}

// displayConfigJSON shows the config in JSON format.
func displayConfigJSON(w interface {
	Write(p []byte) (n int, err error)
}, c *config.Config,
) error {
	type configJSON struct {
		Version int    `json:"version"`
		Home    string `json:"home"`
		Share   struct {
			DefaultShares    int `json:"default_shares"`
			DefaultMinShares int `json:"default_min_shares"`
		} `json:"share"`
		Output struct {
			DefaultFormat string `json:"default_format"`
			Color         string `json:"color"`
			Verbose       bool   `json:"verbose"`
		} `json:"output"`
		Logging struct {
			Level string `json:"level"`
			File  string `json:"file"`
		} `json:"logging"`
	}

	outCfg := configJSON{
		Version: c.Version,
		Home:    c.Home,
	}
	outCfg.Share.DefaultShares = c.Share.DefaultShares
	outCfg.Share.DefaultMinShares = c.Share.DefaultMinShares
	outCfg.Output.DefaultFormat = c.Output.DefaultFormat
	outCfg.Output.Color = c.Output.Color
	outCfg.Output.Verbose = c.Output.Verbose
	outCfg.Logging.Level = c.Logging.Level
	outCfg.Logging.File = c.Logging.File

	return writeJSON(w, outCfg)
}
