package configs

import (
	"os"
	"path/filepath"
)

// RegistryEnvVar overrides the registry location.
const RegistryEnvVar = "TITAN_REGISTRY"

type Settings struct {
	RegistryPath string
	ConfigPath   string
	DataPath     string
}

var TitanSettings *Settings

func init() {
	TitanSettings = DefaultSettings()
}

// DefaultSettings derives the standard locations from the environment. It
// falls back to the working directory when no home directory is known.
func DefaultSettings() *Settings {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	configDir, err := os.UserConfigDir()
	if err != nil {
		configDir = filepath.Join(homeDir, ".config")
	}

	dataDir := os.Getenv("XDG_DATA_HOME")
	if dataDir == "" {
		dataDir = filepath.Join(homeDir, ".local", "share")
	}

	registryPath := os.Getenv(RegistryEnvVar)
	if registryPath == "" {
		registryPath = filepath.Join(homeDir, ".titan.lock")
	}

	return &Settings{
		RegistryPath: registryPath,
		ConfigPath:   filepath.Join(configDir, "titan", "config.toml"),
		DataPath:     filepath.Join(dataDir, "titan"),
	}
}

// AuditLogPath returns the location of the audit trail.
func (s *Settings) AuditLogPath() string {
	return filepath.Join(s.DataPath, "audit.jsonl")
}
