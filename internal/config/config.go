package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

var ErrInvalid = errors.New("invalid configuration")

// Config is read from LUMEN_* environment variables.
type Config struct {
	Particles       int     `env:"LUMEN_PARTICLES"        envDefault:"50"`
	FPS             int     `env:"LUMEN_FPS"              envDefault:"60"`
	Seed            uint64  `env:"LUMEN_SEED"             envDefault:"0"`
	SpringFrequency float64 `env:"LUMEN_SPRING_FREQUENCY" envDefault:"40"`
	SpringDamping   float64 `env:"LUMEN_SPRING_DAMPING"   envDefault:"1"`
	DebugLog        string  `env:"LUMEN_DEBUG_LOG"`
}

// Load parses the environment and validates the result.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects values the scene cannot run with.
func (c Config) Validate() error {
	switch {
	case c.Particles < 0:
		return fmt.Errorf("%w: LUMEN_PARTICLES must not be negative, got %d", ErrInvalid, c.Particles)
	case c.FPS < 1 || c.FPS > 240:
		return fmt.Errorf("%w: LUMEN_FPS must be within 1..240, got %d", ErrInvalid, c.FPS)
	case c.SpringFrequency <= 0:
		return fmt.Errorf("%w: LUMEN_SPRING_FREQUENCY must be positive, got %g", ErrInvalid, c.SpringFrequency)
	case c.SpringDamping <= 0:
		return fmt.Errorf("%w: LUMEN_SPRING_DAMPING must be positive, got %g", ErrInvalid, c.SpringDamping)
	}
	return nil
}
