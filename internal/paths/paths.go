// Package paths resolves configuration and data directory locations for
// the voyager CLI.
package paths

import (
	"os"
	"path/filepath"
	"runtime"
)

// CWD-relative directory names used when no override is given.
const (
	DefaultConfigDirName = ".voyager"
	DefaultDataDirName   = ".voyager-db"
	DefaultSeedDirName   = "seeds"
)

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "VOYAGER_CONFIG_DIR"
	EnvDataDir   = "VOYAGER_DATA_DIR"
	EnvSeedDir   = "VOYAGER_SEED_DIR"
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
// Linux:   $XDG_CONFIG_HOME/voyager (fallback ~/.config/voyager)
// macOS:   ~/Library/Application Support/voyager
// Windows: %APPDATA%/voyager
func DefaultConfigDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return filepath.Join(xdg, "voyager"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config", "voyager"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "voyager"), nil
	}
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/voyager (fallback ~/.local/share/voyager)
// macOS:   ~/Library/Application Support/voyager
// Windows: %APPDATA%/voyager
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, "voyager"), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", "voyager"), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, "voyager"), nil
	}
}

// ResolveConfigDir picks the config directory: flag value, then the
// environment override, then the CWD-relative default.
func ResolveConfigDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(EnvConfigDir); v != "" {
		return v
	}
	return DefaultConfigDirName
}

// ResolveDataDir picks the data directory: flag value, then the
// environment override, then the CWD-relative default.
func ResolveDataDir(flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(EnvDataDir); v != "" {
		return v
	}
	return DefaultDataDirName
}

// ResolveSeedDir picks the seed directory: flag value, then the
// environment override, then the default under the config directory.
func ResolveSeedDir(flagValue, configDir string) string {
	if flagValue != "" {
		return flagValue
	}
	if v := os.Getenv(EnvSeedDir); v != "" {
		return v
	}
	return filepath.Join(configDir, DefaultSeedDirName)
}
