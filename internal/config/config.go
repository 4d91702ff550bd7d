// Package config loads config.yaml from the configuration directory.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	fileName = "config"
	fileType = "yaml"
	// FileExt is the config file name inside the config directory.
	FileExt = "config.yaml"

	keySaveDir  = "save_dir"
	keyDataDir  = "data_dir"
	keyLogLevel = "log_level"
	keyJournal  = "journal"

	defaultLogLevel = "warn"
)

// ErrLogLevelUnknown is returned for a log_level that slog does not know.
var ErrLogLevelUnknown = errors.New("unknown log level")

// Config holds the settings read from config.yaml. Empty directory values
// mean "use the next source in the precedence chain".
type Config struct {
	SaveDir  string `yaml:"save_dir,omitempty"`
	DataDir  string `yaml:"data_dir,omitempty"`
	LogLevel string `yaml:"log_level"`
	Journal  bool   `yaml:"journal"`
}

// Default returns the configuration used when config.yaml is absent.
func Default() Config {
	return Config{LogLevel: defaultLogLevel, Journal: true}
}

// Load reads config.yaml from configDir using Viper. A missing config.yaml
// is not an error; defaults apply.
func Load(configDir string) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault(keyLogLevel, def.LogLevel)
	v.SetDefault(keyJournal, def.Journal)
	v.SetConfigName(fileName)
	v.SetConfigType(fileType)
	v.AddConfigPath(configDir)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := Config{
		SaveDir:  v.GetString(keySaveDir),
		DataDir:  v.GetString(keyDataDir),
		LogLevel: v.GetString(keyLogLevel),
		Journal:  v.GetBool(keyJournal),
	}
	if _, err := cfg.Level(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Level parses LogLevel. An empty level is the default.
func (c Config) Level() (slog.Level, error) {
	name := c.LogLevel
	if name == "" {
		name = defaultLogLevel
	}
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.ToLower(name))); err != nil {
		return 0, fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.LogLevel)
	}
	return lvl, nil
}

// WriteIfMissing creates configDir and writes cfg to config.yaml unless the
// file already exists. It reports whether a file was written.
func WriteIfMissing(configDir string, cfg Config) (bool, error) {
	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return false, fmt.Errorf("create config dir: %w", err)
	}

	path := filepath.Join(configDir, FileExt)
	_, err := os.Stat(path)
	if err == nil {
		return false, nil
	}
	if !os.IsNotExist(err) {
		return false, fmt.Errorf("stat config file: %w", err)
	}

	data, err := yaml.Marshal(&cfg)
	if err != nil {
		return false, fmt.Errorf("marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return false, err
	}
	return true, nil
}
