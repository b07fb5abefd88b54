package cli

import (
	"errors"
	"fmt"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"os"
	"path/filepath"
	"strings"
)

const (
	appName        = "dtfmt"
	configFileName = "config"
	configFileType = "toml"
	envPrefix      = "DTFMT"
)

// Config holds the settings shared by every command. Values come from, in increasing precedence: defaults, the config
// file, DTFMT_* environment variables and flags.
type Config struct {
	// Timezone is the zone input is read in and output displayed in. Empty means the host's zone.
	Timezone string `mapstructure:"timezone" toml:"timezone"`

	// Format is the output layout, either a token layout or a catalog name such as "ISO"
	Format string `mapstructure:"format" toml:"format"`

	// InputFormat is the layout string input must follow. Empty accepts any common notation.
	InputFormat string `mapstructure:"input_format" toml:"input_format"`

	Strict  bool `mapstructure:"strict" toml:"strict"`
	Verbose bool `mapstructure:"verbose" toml:"verbose"`
}

func defaultConfig() Config {
	return Config{}
}

// configDir returns $XDG_CONFIG_HOME/dtfmt, falling back to ~/.config/dtfmt
func configDir() (string, error) {
	dir := os.Getenv("XDG_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("failed to get home directory: %w", err)
		}
		dir = filepath.Join(home, ".config")
	}

	return filepath.Join(dir, appName), nil
}

// flagKeys maps config keys to the flags that override them
var flagKeys = map[string]string{
	"timezone":     "timezone",
	"format":       "format",
	"input_format": "input-format",
	"strict":       "strict",
	"verbose":      "verbose",
}

// loadConfig resolves the effective configuration for cmd. An explicit path must exist; the default path may not.
// The path of the file that was read is returned, or "" if none was.
func loadConfig(cmd *cobra.Command, path string) (Config, string, error) {
	v := viper.New()

	defaults := defaultConfig()
	v.SetDefault("timezone", defaults.Timezone)
	v.SetDefault("format", defaults.Format)
	v.SetDefault("input_format", defaults.InputFormat)
	v.SetDefault("strict", defaults.Strict)
	v.SetDefault("verbose", defaults.Verbose)

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for key, name := range flagKeys {
		if flag := cmd.Flags().Lookup(name); flag != nil {
			if err := v.BindPFlag(key, flag); err != nil {
				return Config{}, "", fmt.Errorf("failed to bind flag %s: %w", name, err)
			}
		}
	}

	v.SetConfigType(configFileType)
	if path != "" {
		v.SetConfigFile(path)
	} else {
		dir, err := configDir()
		if err != nil {
			return Config{}, "", err
		}
		v.SetConfigName(configFileName)
		v.AddConfigPath(dir)
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, "", fmt.Errorf("failed to read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, "", fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, v.ConfigFileUsed(), nil
}
