// Package paths resolves configuration, data, and save directory locations.
package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/caarlos0/env/v11"
)

// AppName is the directory name used under every platform root.
const AppName = "gemini"

// SaveSubdir is the fixed save location relative to the user config root.
const SaveSubdir = "gemini/saves"

// Environment variable names for directory overrides.
const (
	EnvConfigDir = "GEMINI_CONFIG_DIR"
	EnvDataDir   = "GEMINI_DATA_DIR"
	EnvSaveDir   = "GEMINI_SAVE_DIR"
)

// Overrides holds directory overrides read from the environment.
type Overrides struct {
	ConfigDir string `env:"GEMINI_CONFIG_DIR"`
	DataDir   string `env:"GEMINI_DATA_DIR"`
	SaveDir   string `env:"GEMINI_SAVE_DIR"`
}

// platformDir holds platform-detection functions that can be overridden in tests.
var platformDir = struct {
	homeDir       func() (string, error)
	userConfigDir func() (string, error)
}{
	homeDir:       os.UserHomeDir,
	userConfigDir: os.UserConfigDir,
}

// LoadOverrides parses the GEMINI_* directory variables.
func LoadOverrides() (Overrides, error) {
	var o Overrides
	if err := env.Parse(&o); err != nil {
		return Overrides{}, fmt.Errorf("parse env: %w", err)
	}
	return o, nil
}

// ConfigRoot returns the platform user-configuration root.
//
// Linux:   $XDG_CONFIG_HOME (fallback ~/.config)
// macOS:   ~/Library/Application Support
// Windows: %APPDATA%
func ConfigRoot() (string, error) {
	if runtime.GOOS == "linux" {
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg, nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".config"), nil
	}
	return platformDir.userConfigDir()
}

// DefaultConfigDir returns the platform-specific default configuration directory.
func DefaultConfigDir() (string, error) {
	root, err := ConfigRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, AppName), nil
}

// DefaultDataDir returns the platform-specific default data directory.
//
// Linux:   $XDG_DATA_HOME/gemini (fallback ~/.local/share/gemini)
// macOS:   ~/Library/Application Support/gemini
// Windows: %APPDATA%/gemini
func DefaultDataDir() (string, error) {
	switch runtime.GOOS {
	case "linux":
		if xdg := os.Getenv("XDG_DATA_HOME"); xdg != "" {
			return filepath.Join(xdg, AppName), nil
		}
		home, err := platformDir.homeDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(home, ".local", "share", AppName), nil
	default:
		dir, err := platformDir.userConfigDir()
		if err != nil {
			return "", err
		}
		return filepath.Join(dir, AppName), nil
	}
}

// DefaultSaveDir returns the user config root joined with SaveSubdir.
func DefaultSaveDir() (string, error) {
	root, err := ConfigRoot()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, filepath.FromSlash(SaveSubdir)), nil
}

// ResolveConfigDir returns the configuration directory following the precedence
// chain: flag > GEMINI_CONFIG_DIR env > DefaultConfigDir().
func ResolveConfigDir(flag string) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	o, err := LoadOverrides()
	if err != nil {
		return "", err
	}
	if o.ConfigDir != "" {
		return filepath.Abs(o.ConfigDir)
	}
	return DefaultConfigDir()
}

// ResolveDataDir returns the data directory following the precedence chain:
// flag > configValue > GEMINI_DATA_DIR env > DefaultDataDir().
func ResolveDataDir(flag, configValue string) (string, error) {
	return resolve(flag, configValue, func(o Overrides) string { return o.DataDir }, DefaultDataDir)
}

// ResolveSaveDir returns the save directory following the precedence chain:
// flag > configValue > GEMINI_SAVE_DIR env > DefaultSaveDir().
func ResolveSaveDir(flag, configValue string) (string, error) {
	return resolve(flag, configValue, func(o Overrides) string { return o.SaveDir }, DefaultSaveDir)
}

func resolve(flag, configValue string, pick func(Overrides) string, fallback func() (string, error)) (string, error) {
	if flag != "" {
		return filepath.Abs(flag)
	}
	if configValue != "" {
		return filepath.Abs(configValue)
	}
	o, err := LoadOverrides()
	if err != nil {
		return "", err
	}
	if v := pick(o); v != "" {
		return filepath.Abs(v)
	}
	return fallback()
}
