package config

import (
	"fmt"
	"os"
	"path/filepath"
)

const (
	// DefaultConfigDir is the directory under $HOME holding bindforge configs
	DefaultConfigDir = ".bindforge"
	// DefaultConfigName is the config file looked up when none is named
	DefaultConfigName = "config.yaml"

	envConfigDir = "BINDFORGE_CONFIG_DIR"
)

// GetConfigDir returns the directory bindforge reads configs from:
// $BINDFORGE_CONFIG_DIR when set, ~/.bindforge otherwise.
func GetConfigDir() (string, error) {
	if dir := os.Getenv(envConfigDir); dir != "" {
		return dir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}
	return filepath.Join(home, DefaultConfigDir), nil
}

// FindConfig locates a configuration file and verifies it exists. An
// absolute path is checked as given. A bare name is resolved inside the
// config directory, gaining a .yaml extension when it has none. An
// empty name means the default config file.
func FindConfig(name string) (string, error) {
	path := name

	if !filepath.IsAbs(name) {
		dir, err := GetConfigDir()
		if err != nil {
			return "", err
		}
		if name == "" {
			name = DefaultConfigName
		} else if filepath.Ext(name) == "" {
			name += ".yaml"
		}
		path = filepath.Join(dir, name)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("config file not found: %s", path)
		}
		return "", fmt.Errorf("failed to stat config file %s: %w", path, err)
	}
	return path, nil
}

// EnsureConfigDir creates the config directory if it doesn't exist
func EnsureConfigDir() (string, error) {
	dir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create config directory %s: %w", dir, err)
	}
	return dir, nil
}
