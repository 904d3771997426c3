package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap/zapcore"
	"gopkg.in/yaml.v3"

	"primers/internal/game"
)

// ConfigFilename is looked up inside the home directory.
const ConfigFilename = "config.yaml"

// Config holds runtime wiring options for building the app.
type Config struct {
	Home     string      `yaml:"-"`         // config directory, e.g. $HOME/.primers
	LogLevel string      `yaml:"log_level"` // zap level name
	Record   bool        `yaml:"record"`    // keep a history of finished games
	Game     game.Config `yaml:"game"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig(home string) Config {
	return Config{
		Home:     home,
		LogLevel: "warn",
		Record:   true,
		Game:     game.DefaultConfig(),
	}
}

// LoadConfig reads home/config.yaml over the defaults. A missing file is
// not an error.
func LoadConfig(home string) (Config, error) {
	cfg := DefaultConfig(home)

	path := filepath.Join(home, ConfigFilename)
	b, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
		return cfg, nil
	case err != nil:
		return Config{}, err
	}
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.Home = home
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Validate checks the log level and the game settings.
func (c Config) Validate() error {
	if _, err := zapcore.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return c.Game.Validate()
}

// Save writes cfg to home/config.yaml.
func (c Config) Save() error {
	b, err := yaml.Marshal(c)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(c.Home, 0o700); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(c.Home, ConfigFilename), b, 0o600)
}
