package config

import (
	"fmt"

	"github.com/verte-zerg/tuimul/internal/catalog"
	"github.com/verte-zerg/tuimul/internal/game"
	"github.com/verte-zerg/tuimul/internal/model"
)

var logFormats = map[string]struct{}{"pretty": {}, "json": {}}

// Validate checks resolved settings before a run.
func Validate(cfg model.Config) error {
	if cfg.Table < catalog.MinFactor || cfg.Table > catalog.MaxFactor {
		return fmt.Errorf("--table must be between %d and %d", catalog.MinFactor, catalog.MaxFactor)
	}
	if _, err := game.ParseQuestionCount(cfg.Questions); err != nil {
		return fmt.Errorf("--questions: %w", err)
	}
	if _, ok := logFormats[cfg.LogFormat]; !ok {
		return fmt.Errorf("log format must be pretty or json, got %q", cfg.LogFormat)
	}
	return nil
}

// Settings converts resolved settings into game settings.
func Settings(cfg model.Config) (game.Settings, error) {
	count, err := game.ParseQuestionCount(cfg.Questions)
	if err != nil {
		return game.Settings{}, err
	}
	return game.Settings{TableIndex: cfg.Table - catalog.MinFactor, Count: count}, nil
}
