// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package geometry

import (
	"fmt"
	"math"
)

// Default tolerances in drawing units.
const (
	// DefaultEdgeAlignment is the maximum perpendicular offset between two
	// walls that are still considered the same wall.
	DefaultEdgeAlignment = 5.0

	// DefaultMinSharedEdge is the minimum overlap two walls need before the
	// rooms count as adjacent.
	DefaultMinSharedEdge = 20.0

	// DefaultPointOnSegment is the maximum distance between a door marker
	// and the shared wall it sits on.
	DefaultPointOnSegment = 8.0

	// DefaultDoorSnap bounds the search radius used when a door marker has
	// no room hints and its rooms must be located geometrically.
	DefaultDoorSnap = 40.0
)

// Tolerances groups the thresholds used by door validation.
type Tolerances struct {
	EdgeAlignment  float64 `koanf:"edge_alignment"`
	MinSharedEdge  float64 `koanf:"min_shared_edge"`
	PointOnSegment float64 `koanf:"point_on_segment"`
	DoorSnap       float64 `koanf:"door_snap"`
}

// DefaultTolerances returns the tolerances used for the reference drawings.
func DefaultTolerances() Tolerances {
	return Tolerances{
		EdgeAlignment:  DefaultEdgeAlignment,
		MinSharedEdge:  DefaultMinSharedEdge,
		PointOnSegment: DefaultPointOnSegment,
		DoorSnap:       DefaultDoorSnap,
	}
}

// Validate checks that every tolerance is a finite, non-negative number.
func (t Tolerances) Validate() error {
	checks := []struct {
		name  string
		value float64
	}{
		{"edge_alignment", t.EdgeAlignment},
		{"min_shared_edge", t.MinSharedEdge},
		{"point_on_segment", t.PointOnSegment},
		{"door_snap", t.DoorSnap},
	}
	for _, c := range checks {
		if math.IsNaN(c.value) || math.IsInf(c.value, 0) || c.value < 0 {
			return fmt.Errorf("tolerance %s must be a finite non-negative number, got %v", c.name, c.value)
		}
	}
	if t.MinSharedEdge == 0 {
		return fmt.Errorf("tolerance min_shared_edge must be positive")
	}
	return nil
}
