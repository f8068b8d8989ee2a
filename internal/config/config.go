// Package config loads app settings from the environment. Every field has a
// default, so neither app needs any environment to run.
package config

import (
	"fmt"
	"time"

	"TapAndPaint/internal/state"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	GameSeconds       int           `env:"TAPANDPAINT_GAME_SECONDS"       envDefault:"30"`
	MoveInterval      time.Duration `env:"TAPANDPAINT_MOVE_INTERVAL"      envDefault:"800ms"`
	CountdownInterval time.Duration `env:"TAPANDPAINT_COUNTDOWN_INTERVAL" envDefault:"1s"`
	MoleSize          float32       `env:"TAPANDPAINT_MOLE_SIZE"          envDefault:"100"`
	StrictAssets      bool          `env:"TAPANDPAINT_STRICT_ASSETS"      envDefault:"false"`

	// SaveDir overrides the app storage directory for exported drawings.
	SaveDir   string  `env:"TAPANDPAINT_SAVE_DIR"`
	DotRadius float32 `env:"TAPANDPAINT_DOT_RADIUS" envDefault:"10"`
}

// Load parses the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.GameSeconds <= 0 {
		return Config{}, fmt.Errorf("game seconds must be positive, got %d", cfg.GameSeconds)
	}
	if cfg.MoleSize <= 0 || cfg.DotRadius <= 0 {
		return Config{}, fmt.Errorf("mole size and dot radius must be positive")
	}
	return cfg, nil
}

// Game converts the settings for the mole controller.
func (c Config) Game() state.GameConfig {
	return state.GameConfig{
		Seconds:           c.GameSeconds,
		MoveInterval:      c.MoveInterval,
		CountdownInterval: c.CountdownInterval,
		MoleSize:          c.MoleSize,
	}
}
