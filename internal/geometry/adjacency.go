// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package geometry

import (
	"math"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
)

// SharedEdges returns the overlapping portions of walls of a that coincide
// with walls of b. Two walls coincide when both endpoints of one lie within
// EdgeAlignment of the supporting line of the other. Only overlaps of at
// least MinSharedEdge are returned.
func SharedEdges(a, b orb.Ring, tol Tolerances) []Segment {
	var shared []Segment
	for _, ea := range Edges(a) {
		for _, eb := range Edges(b) {
			seg, ok := overlap(ea, eb, tol.EdgeAlignment)
			if !ok || seg.Length() < tol.MinSharedEdge {
				continue
			}
			shared = append(shared, seg)
		}
	}
	return shared
}

// Adjacent reports whether two rooms share at least one wall.
func Adjacent(a, b orb.Ring, tol Tolerances) bool {
	return len(SharedEdges(a, b, tol)) > 0
}

// OnSegment reports whether p lies within tolerance of segment s.
func OnSegment(p orb.Point, s Segment, tolerance float64) bool {
	return planar.DistanceFromSegment(s.A, s.B, p) <= tolerance
}

// OnAnySegment reports whether p lies within tolerance of any of segs.
func OnAnySegment(p orb.Point, segs []Segment, tolerance float64) bool {
	for _, s := range segs {
		if OnSegment(p, s, tolerance) {
			return true
		}
	}
	return false
}

// overlap projects f onto the supporting line of e and returns the common
// stretch, expressed on e.
func overlap(e, f Segment, alignment float64) (Segment, bool) {
	length := e.Length()
	if length == 0 || f.Length() == 0 {
		return Segment{}, false
	}
	ux := (e.B[0] - e.A[0]) / length
	uy := (e.B[1] - e.A[1]) / length

	// Perpendicular offsets of f's endpoints from e's line.
	if math.Abs(cross(ux, uy, f.A[0]-e.A[0], f.A[1]-e.A[1])) > alignment ||
		math.Abs(cross(ux, uy, f.B[0]-e.A[0], f.B[1]-e.A[1])) > alignment {
		return Segment{}, false
	}

	t1 := ux*(f.A[0]-e.A[0]) + uy*(f.A[1]-e.A[1])
	t2 := ux*(f.B[0]-e.A[0]) + uy*(f.B[1]-e.A[1])
	lo := math.Max(0, math.Min(t1, t2))
	hi := math.Min(length, math.Max(t1, t2))
	if hi <= lo {
		return Segment{}, false
	}

	return Segment{
		A: orb.Point{e.A[0] + ux*lo, e.A[1] + uy*lo},
		B: orb.Point{e.A[0] + ux*hi, e.A[1] + uy*hi},
	}, true
}

func cross(ux, uy, vx, vy float64) float64 {
	return ux*vy - uy*vx
}
