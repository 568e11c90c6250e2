package storage

import (
	"os"
	"path/filepath"
)

const (
	appName        = "bo"
	configFileName = "config.toml"
)

// PathProvider returns the location of the config file when none is given.
type PathProvider func() (string, error)

// DefaultConfigPath returns $XDG_CONFIG_HOME/bo/config.toml,
// falling back to ~/.config/bo/config.toml.
func DefaultConfigPath() (string, error) {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		configHome = filepath.Join(homeDir, ".config")
	}
	return filepath.Join(configHome, appName, configFileName), nil
}

// ResolvePath returns explicit if set, otherwise asks the provider.
func ResolvePath(explicit string, provider PathProvider) (string, error) {
	if explicit != "" {
		return explicit, nil
	}
	if provider == nil {
		provider = DefaultConfigPath
	}
	return provider()
}
