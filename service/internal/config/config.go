// Package config loads service settings from the environment, optionally
// seeded from .env files.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/Neha1998/colorful-dice-adventure/service/internal/game"
	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all settings of the game server.
type Config struct {
	Addr      string `env:"BIRDS_ADDR" envDefault:"127.0.0.1:8080"`
	LogLevel  string `env:"BIRDS_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"BIRDS_LOG_FORMAT" envDefault:"text"`

	AutoAdvance bool `env:"BIRDS_AUTO_ADVANCE" envDefault:"true"`

	DiceRoll   time.Duration `env:"BIRDS_DICE_ROLL" envDefault:"600ms"`
	MoveStep   time.Duration `env:"BIRDS_MOVE_STEP" envDefault:"300ms"`
	Settle     time.Duration `env:"BIRDS_SETTLE" envDefault:"200ms"`
	ScoreFlash time.Duration `env:"BIRDS_SCORE_FLASH" envDefault:"1500ms"`
	TurnPause  time.Duration `env:"BIRDS_TURN_PAUSE" envDefault:"1s"`

	RedisAddr    string `env:"BIRDS_REDIS_ADDR"`
	RedisChannel string `env:"BIRDS_REDIS_CHANNEL" envDefault:"birds:events"`
}

// Load reads the given .env files (missing files are skipped; variables
// already set in the environment win) and parses Config.
func Load(files ...string) (Config, error) {
	for _, f := range files {
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings the server cannot run with.
func (c Config) Validate() error {
	durations := map[string]time.Duration{
		"BIRDS_DICE_ROLL":   c.DiceRoll,
		"BIRDS_MOVE_STEP":   c.MoveStep,
		"BIRDS_SETTLE":      c.Settle,
		"BIRDS_SCORE_FLASH": c.ScoreFlash,
		"BIRDS_TURN_PAUSE":  c.TurnPause,
	}
	for name, d := range durations {
		if d < 0 {
			return fmt.Errorf("%s must not be negative, got %s", name, d)
		}
	}
	switch strings.ToLower(c.LogFormat) {
	case "text", "json":
	default:
		return fmt.Errorf("BIRDS_LOG_FORMAT must be text or json, got %q", c.LogFormat)
	}
	if c.Addr == "" {
		return errors.New("BIRDS_ADDR must not be empty")
	}
	return nil
}

// Timings returns the animation delays for a game session.
func (c Config) Timings() game.Timings {
	return game.Timings{
		DiceRoll:   c.DiceRoll,
		MoveStep:   c.MoveStep,
		Settle:     c.Settle,
		ScoreFlash: c.ScoreFlash,
		TurnPause:  c.TurnPause,
	}
}
