// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package geometry

import (
	"errors"
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// Errors returned by NewRing.
var (
	ErrTooFewPoints      = errors.New("polygon needs at least 3 distinct points")
	ErrNonFinitePoint    = errors.New("polygon contains a non-finite coordinate")
	ErrDegeneratePolygon = errors.New("polygon has zero area")
)

// Segment is a straight wall between two points.
type Segment struct {
	A orb.Point
	B orb.Point
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return planar.Distance(s.A, s.B)
}

// Midpoint returns the point halfway along the segment.
func (s Segment) Midpoint() orb.Point {
	return orb.Point{(s.A[0] + s.B[0]) / 2, (s.A[1] + s.B[1]) / 2}
}

// NewRing builds a closed ring from an outline. Consecutive duplicate points
// are collapsed and the ring is closed if the outline is open.
func NewRing(points []orb.Point) (orb.Ring, error) {
	ring := make(orb.Ring, 0, len(points)+1)
	for _, p := range points {
		if !finite(p[0]) || !finite(p[1]) {
			return nil, ErrNonFinitePoint
		}
		if len(ring) > 0 && ring[len(ring)-1].Equal(p) {
			continue
		}
		ring = append(ring, p)
	}
	if len(ring) > 1 && ring[0].Equal(ring[len(ring)-1]) {
		ring = ring[:len(ring)-1]
	}
	if len(ring) < 3 {
		return nil, ErrTooFewPoints
	}
	ring = append(ring, ring[0])

	if math.Abs(planar.Area(ring)) == 0 {
		return nil, ErrDegeneratePolygon
	}
	return ring, nil
}

// Edges returns the walls of a ring in drawing order.
func Edges(r orb.Ring) []Segment {
	if len(r) < 2 {
		return nil
	}
	n := len(r)
	if r.Closed() {
		n--
	}
	edges := make([]Segment, 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, Segment{A: r[i], B: r[(i+1)%len(r)]})
	}
	return edges
}

// Contains reports whether p lies inside the ring or on its boundary.
func Contains(r orb.Ring, p orb.Point) bool {
	return planar.RingContains(r, p)
}

// DistanceToBoundary returns the shortest distance from p to any wall of r.
func DistanceToBoundary(r orb.Ring, p orb.Point) float64 {
	best := math.Inf(1)
	for _, e := range Edges(r) {
		if d := planar.DistanceFromSegment(e.A, e.B, p); d < best {
			best = d
		}
	}
	return best
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
