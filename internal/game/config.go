package game

import (
	"errors"
	"fmt"

	"primers/internal/domain"
)

// ErrInvalidRange is returned for a range whose minimum exceeds its maximum.
var ErrInvalidRange = errors.New("invalid range")

// Config controls a single game.
type Config struct {
	Range       domain.Range `yaml:"range"`
	MaxAttempts int          `yaml:"max_attempts"` // 0 means unlimited
	ShowTypes   bool         `yaml:"show_types"`
	Commit      bool         `yaml:"commit"`
}

// DefaultConfig is the classic 1..10 game with unlimited attempts.
func DefaultConfig() Config {
	return Config{
		Range:     domain.Range{Min: 1, Max: 10},
		ShowTypes: true,
	}
}

// Validate rejects configurations no game can be played with.
func (c Config) Validate() error {
	if !c.Range.Valid() {
		return fmt.Errorf("%w: min %d is greater than max %d", ErrInvalidRange, c.Range.Min, c.Range.Max)
	}
	if c.MaxAttempts < 0 {
		return fmt.Errorf("max attempts must not be negative, got %d", c.MaxAttempts)
	}
	return nil
}
