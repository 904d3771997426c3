package app

import (
	"go.uber.org/zap"

	"primers/internal/domain"
	"primers/internal/game"
	statssvc "primers/internal/services/stats"
	"primers/internal/store"
)

// Wire bundles the logger, stores and services for the CLI.
type Wire struct {
	Config  Config
	Log     *zap.Logger
	Results domain.ResultStore
	Stats   domain.StatsService
}

// NewWire constructs the dependency graph from cfg. A nil log builds one
// from cfg.LogLevel.
func NewWire(cfg Config, log *zap.Logger) (*Wire, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if log == nil {
		l, err := NewLogger(cfg.LogLevel, false)
		if err != nil {
			return nil, err
		}
		log = l
	}

	// File-based store
	results := store.NewResultFileStore(cfg.Home)

	return &Wire{
		Config:  cfg,
		Log:     log,
		Results: results,
		Stats:   statssvc.New(results),
	}, nil
}

// NewGame builds a game sharing the wire's logger.
func (w *Wire) NewGame(cfg game.Config, picker game.Picker) (*game.Game, error) {
	return game.New(cfg, picker, w.Log.Named("game"))
}

// Close flushes the logger.
func (w *Wire) Close() {
	_ = w.Log.Sync()
}
