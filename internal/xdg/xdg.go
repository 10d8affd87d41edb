// Package xdg resolves the XDG base directories used by preptogether.
package xdg

import (
	"os"
	"path/filepath"
)

const appName = "preptogether"

// ConfigDir returns $XDG_CONFIG_HOME/preptogether, defaulting the base to ~/.config.
func ConfigDir() string {
	return dir("XDG_CONFIG_HOME", ".config")
}

// StateDir returns $XDG_STATE_HOME/preptogether, defaulting the base to ~/.local/state.
// The access token and account profiles live here.
func StateDir() string {
	return dir("XDG_STATE_HOME", ".local", "state")
}

// ConfigFile is the default configuration file path.
func ConfigFile() string {
	return filepath.Join(ConfigDir(), "config.yaml")
}

func dir(env string, fallback ...string) string {
	base := os.Getenv(env)
	if base == "" {
		base = filepath.Join(append([]string{os.Getenv("HOME")}, fallback...)...)
	}
	return filepath.Join(base, appName)
}
