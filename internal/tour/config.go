// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package tour

import (
	"errors"
	"fmt"
	"time"

	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/geometry"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/optimizer"
	"github.com/tomtom215/galleria/internal/selection"
)

// Config contains all configuration for the tour engine.
type Config struct {
	// Connectivity is the route cost model.
	Connectivity connectivity.Config `koanf:"connectivity"`

	// Tolerances drive door validation when graphs are loaded.
	Tolerances geometry.Tolerances `koanf:"tolerances"`

	// Selection sizes tours and weights the artwork draw.
	Selection selection.Config `koanf:"selection"`

	// Optimizer orders artworks and estimates durations.
	Optimizer optimizer.Config `koanf:"optimizer"`

	// WordsPerMinute is the narration speaking rate.
	WordsPerMinute float64 `koanf:"words_per_minute"`

	// Limits bounds request cost.
	Limits LimitsConfig `koanf:"limits"`
}

// LimitsConfig contains operational limits.
type LimitsConfig struct {
	// MaxConcurrentGenerations caps CPU-bound generations running at once.
	// Zero disables the cap.
	MaxConcurrentGenerations int `koanf:"max_concurrent_generations"`

	// GenerationTimeout bounds one generation including data loading.
	GenerationTimeout time.Duration `koanf:"generation_timeout"`

	// MaxDuration is the longest visit that may be requested.
	MaxDuration time.Duration `koanf:"max_duration"`
}

// DefaultConfig returns the default engine configuration.
func DefaultConfig() *Config {
	return &Config{
		Connectivity:   connectivity.DefaultConfig(),
		Tolerances:     geometry.DefaultTolerances(),
		Selection:      selection.DefaultConfig(),
		Optimizer:      optimizer.DefaultConfig(),
		WordsPerMinute: museum.DefaultWordsPerMinute,
		Limits: LimitsConfig{
			MaxConcurrentGenerations: 8,
			GenerationTimeout:        10 * time.Second,
			MaxDuration:              8 * time.Hour,
		},
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if err := c.Connectivity.Validate(); err != nil {
		return fmt.Errorf("connectivity: %w", err)
	}
	if err := c.Tolerances.Validate(); err != nil {
		return fmt.Errorf("tolerances: %w", err)
	}
	if err := c.Selection.Validate(); err != nil {
		return fmt.Errorf("selection: %w", err)
	}
	if err := c.Optimizer.Validate(); err != nil {
		return fmt.Errorf("optimizer: %w", err)
	}
	if c.WordsPerMinute <= 0 {
		return fmt.Errorf("words_per_minute must be positive, got %v", c.WordsPerMinute)
	}
	if c.Limits.MaxConcurrentGenerations < 0 {
		return errors.New("limits.max_concurrent_generations must be non-negative")
	}
	if c.Limits.GenerationTimeout < 0 {
		return errors.New("limits.generation_timeout must be non-negative")
	}
	if c.Limits.MaxDuration <= 0 {
		return errors.New("limits.max_duration must be positive")
	}
	return nil
}
