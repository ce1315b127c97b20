// Package config loads the process bootstrap configuration from the
// environment. User-editable settings live in the TOML settings file
// managed by SettingsService; this package only locates things.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ilyakaznacheev/cleanenv"
)

// Default source document names, resolved against the working directory.
const (
	DefaultDictionaryFile = "kanjidic2.xml"
	DefaultStrokesFile    = "kanjivg.xml"
)

// Config is the bootstrap configuration.
type Config struct {
	// Home is the kanji state directory. Empty means ~/.kanji.
	Home string `env:"KANJI_HOME"`

	// DictionaryPath overrides the dictionary source location.
	DictionaryPath string `env:"KANJI_DICTIONARY_PATH"`

	// StrokesPath overrides the stroke source location.
	StrokesPath string `env:"KANJI_STROKES_PATH"`

	// ConfigPath overrides the settings file location.
	ConfigPath string `env:"KANJI_CONFIG_PATH"`

	// DataDirName is the database directory inside Home.
	DataDirName string `env:"KANJI_DATA_DIR_NAME" env-default:"data"`
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if cfg.Home == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: locate home: %w", err)
		}
		cfg.Home = filepath.Join(home, ".kanji")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks the loaded values.
func (c *Config) Validate() error {
	if c.Home == "" {
		return errors.New("home directory must be set")
	}
	if c.DataDirName == "" || filepath.Base(c.DataDirName) != c.DataDirName {
		return fmt.Errorf("data dir name must be a single path element (got %q)", c.DataDirName)
	}
	return nil
}

// DataDir is where the database lives.
func (c *Config) DataDir() string {
	return filepath.Join(c.Home, c.DataDirName)
}

// SettingsPath is the settings file location.
func (c *Config) SettingsPath() string {
	if c.ConfigPath != "" {
		return c.ConfigPath
	}
	return filepath.Join(c.Home, "config.toml")
}

// Sources resolves the two source locations.
// Environment overrides win over the saved settings, which win over the defaults.
func (c *Config) Sources(dictionarySetting, strokesSetting string) (dictionary, strokes string) {
	return firstNonEmpty(c.DictionaryPath, dictionarySetting, DefaultDictionaryFile),
		firstNonEmpty(c.StrokesPath, strokesSetting, DefaultStrokesFile)
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
