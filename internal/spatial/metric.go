// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package spatial

import (
	"fmt"
	"math"

	"github.com/paulmach/orb/planar"
)

// Default scale of the reference drawings.
const (
	DefaultMetersPerPixel     = 0.05
	DefaultFloorPenaltyMeters = 20.0
)

// Metric converts drawing distances to meters.
type Metric struct {
	// MetersPerPixel is the drawing scale.
	MetersPerPixel float64 `koanf:"meters_per_pixel"`

	// FloorPenalty is added once per floor crossed when comparing positions
	// on different floors.
	FloorPenalty float64 `koanf:"floor_penalty_meters"`
}

// DefaultMetric returns the scale used by the reference drawings.
func DefaultMetric() Metric {
	return Metric{
		MetersPerPixel: DefaultMetersPerPixel,
		FloorPenalty:   DefaultFloorPenaltyMeters,
	}
}

// Validate checks the metric for usable values.
func (m Metric) Validate() error {
	if m.MetersPerPixel <= 0 || math.IsInf(m.MetersPerPixel, 0) || math.IsNaN(m.MetersPerPixel) {
		return fmt.Errorf("meters_per_pixel must be positive, got %v", m.MetersPerPixel)
	}
	if m.FloorPenalty < 0 || math.IsInf(m.FloorPenalty, 0) || math.IsNaN(m.FloorPenalty) {
		return fmt.Errorf("floor_penalty_meters must be non-negative, got %v", m.FloorPenalty)
	}
	return nil
}

// Planar returns the Euclidean distance in meters, ignoring floors.
func (m Metric) Planar(a, b Position) float64 {
	return planar.Distance(a.Point(), b.Point()) * m.MetersPerPixel
}

// Between returns the planar distance plus the floor penalty for every
// floor separating a and b.
func (m Metric) Between(a, b Position) float64 {
	return m.Planar(a, b) + m.FloorChange(a.Floor, b.Floor)
}

// FloorChange returns the penalty for moving between two floors.
func (m Metric) FloorChange(from, to int) float64 {
	d := from - to
	if d < 0 {
		d = -d
	}
	return float64(d) * m.FloorPenalty
}
