package configs

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

type Config struct {
	Store    StoreConfig    `toml:"store"`
	Display  DisplayConfig  `toml:"display"`
	Registry RegistryConfig `toml:"registry"`
}

type StoreConfig struct {
	DefaultPath string `toml:"default_path,omitempty"`
}

type DisplayConfig struct {
	ShowPassword bool `toml:"show_password"`
}

type RegistryConfig struct {
	Path string `toml:"path,omitempty"`
}

// LoadConfig loads the user configuration. A missing file yields defaults.
func LoadConfig() (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(TitanSettings.ConfigPath); os.IsNotExist(err) {
		return config, nil
	}

	if err := LoadTOML(TitanSettings.ConfigPath, config); err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", TitanSettings.ConfigPath, err)
	}

	return config, nil
}

// SaveConfig writes the user configuration.
func SaveConfig(config *Config) error {
	if err := SaveTOML(TitanSettings.ConfigPath, config); err != nil {
		return fmt.Errorf("failed to save config %s: %w", TitanSettings.ConfigPath, err)
	}
	return nil
}

// RegistryPath resolves the registry location: the environment variable,
// then the config file, then the default.
func (c *Config) RegistryPath() string {
	if env := os.Getenv(RegistryEnvVar); env != "" {
		return env
	}
	if c != nil && c.Registry.Path != "" {
		return expandHome(c.Registry.Path)
	}
	return TitanSettings.RegistryPath
}

// DefaultStorePath returns the configured store path, or "" if none.
func (c *Config) DefaultStorePath() string {
	if c == nil {
		return ""
	}
	return expandHome(c.Store.DefaultPath)
}

func expandHome(path string) string {
	if len(path) < 2 || path[:2] != "~/" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, path[2:])
}

// Keys lists the settings accepted by Set.
var Keys = []string{"store.default_path", "display.show_password", "registry.path"}

// Set assigns a setting by its dotted key.
func (c *Config) Set(key, value string) error {
	switch key {
	case "store.default_path":
		c.Store.DefaultPath = value
	case "display.show_password":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("invalid value %q for %s: expected true or false", value, key)
		}
		c.Display.ShowPassword = b
	case "registry.path":
		c.Registry.Path = value
	default:
		return fmt.Errorf("unknown setting %q (valid: %s)", key, strings.Join(Keys, ", "))
	}
	return nil
}
