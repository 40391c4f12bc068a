// Package paths resolves the configuration and report output directory
// locations for the arquetipo CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir  = "ARQUETIPO_CONFIG_DIR"
	EnvReportsDir = "ARQUETIPO_REPORTS_DIR"
)

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// DefaultConfigDir returns the platform-specific default configuration directory.
//
// Linux:   $XDG_CONFIG_HOME/arquetipo (fallback ~/.config/arquetipo)
// macOS:   ~/Library/Application Support/arquetipo
// Windows: %APPDATA%/arquetipo
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "arquetipo"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "arquetipo"), nil
	default:
		// macOS and Windows use os.UserConfigDir which returns
		// ~/Library/Application Support on macOS and %APPDATA% on Windows.
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "arquetipo"), nil
	}
}

// ResolveConfigDir returns the configuration directory following the
// precedence chain: flag > ARQUETIPO_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if env := os.Getenv(EnvConfigDir); env != "" {
		return filepath.Abs(env)
	}
	return DefaultConfigDir()
}

// ResolveReportsDir returns the directory saved reports are written to,
// following the precedence chain: flag > config.yaml value >
// ARQUETIPO_REPORTS_DIR env > current working directory.
func ResolveReportsDir(flag, configYAMLValue string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configYAMLValue != "" {
		return filepath.Abs(configYAMLValue)
	}
	if env := os.Getenv(EnvReportsDir); env != "" {
		return filepath.Abs(env)
	}
	return os.Getwd()
}
