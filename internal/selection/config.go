// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package selection

import (
	"errors"
	"fmt"
)

// Selection weights.
const (
	unvisitedRoomWeight  = 3.0
	visitedRoomWeight    = 0.5
	unvisitedFloorWeight = 2.0
	visitedFloorWeight   = 0.7
	unseenTypeWeight     = 1.5
)

// Config tunes target sizing and the spread factor of the weighted draw.
type Config struct {
	// AverageNarrationSeconds and ObservationSeconds estimate the time spent
	// at each artwork.
	AverageNarrationSeconds float64 `koanf:"average_narration_seconds"`
	ObservationSeconds      float64 `koanf:"observation_seconds"`

	// FillRatio is the share of the requested duration spent at artworks.
	FillRatio float64 `koanf:"fill_ratio"`

	// MinArtworks is the smallest tour produced when enough candidates exist.
	MinArtworks int `koanf:"min_artworks"`

	// DistanceNormalizer divides the mean distance in meters to the
	// artworks already picked; the quotient is clamped to MaxDistanceFactor.
	DistanceNormalizer float64 `koanf:"distance_normalizer_meters"`
	MaxDistanceFactor  float64 `koanf:"max_distance_factor"`
}

// DefaultConfig returns the default selection parameters.
func DefaultConfig() Config {
	return Config{
		AverageNarrationSeconds: 90,
		ObservationSeconds:      60,
		FillRatio:               0.9,
		MinArtworks:             3,
		DistanceNormalizer:      15,
		MaxDistanceFactor:       2,
	}
}

// SecondsPerArtwork returns the estimated time spent at one artwork.
func (c Config) SecondsPerArtwork() float64 {
	return c.AverageNarrationSeconds + c.ObservationSeconds
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.SecondsPerArtwork() <= 0 {
		return errors.New("average_narration_seconds + observation_seconds must be positive")
	}
	if c.AverageNarrationSeconds < 0 || c.ObservationSeconds < 0 {
		return errors.New("narration and observation seconds must be non-negative")
	}
	if c.FillRatio <= 0 || c.FillRatio > 1 {
		return fmt.Errorf("fill_ratio must be in (0, 1], got %v", c.FillRatio)
	}
	if c.MinArtworks < 1 {
		return fmt.Errorf("min_artworks must be at least 1, got %d", c.MinArtworks)
	}
	if c.DistanceNormalizer <= 0 {
		return fmt.Errorf("distance_normalizer_meters must be positive, got %v", c.DistanceNormalizer)
	}
	if c.MaxDistanceFactor <= 0 {
		return fmt.Errorf("max_distance_factor must be positive, got %v", c.MaxDistanceFactor)
	}
	return nil
}
