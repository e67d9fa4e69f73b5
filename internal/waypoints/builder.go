// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package waypoints expands an ordered tour into points and straight
// segments that can be drawn on floor plans.
//
// Segments never cross floors. A floor change appears as a stairway point
// followed by a stairway_exit point on another floor, with no segment
// between them; renderers draw it as a jump.
package waypoints

import (
	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
)

// PointArtwork marks a tour stop. Transition points reuse the waypoint
// types of the connectivity package.
const PointArtwork = "artwork"

// Point is a renderable point of the tour.
type Point struct {
	Type       string           `json:"type"`
	Position   spatial.Position `json:"position"`
	EntityID   string           `json:"entity_id"`
	Kind       spatial.LinkKind `json:"kind,omitempty"`
	Transition int              `json:"transition"`
}

// Segment is a straight leg between two points on one floor.
type Segment struct {
	From       spatial.Position `json:"from"`
	To         spatial.Position `json:"to"`
	Floor      int              `json:"floor"`
	Transition int              `json:"transition"`
	Length     float64          `json:"length_meters"`
}

// Result is the expanded tour.
type Result struct {
	Points       []Point   `json:"points"`
	Segments     []Segment `json:"segments"`
	FloorChanges int       `json:"floor_changes"`
	Floors       []int     `json:"floors"`
}

// Router computes routes between positions.
type Router interface {
	Route(from, to spatial.Position) connectivity.Route
}

// Builder expands tours using a Router.
type Builder struct {
	router Router
	metric spatial.Metric
}

// NewBuilder creates a Builder. metric measures segment lengths.
func NewBuilder(router Router, metric spatial.Metric) *Builder {
	return &Builder{router: router, metric: metric}
}

// Build expands ordered into points and segments. Transition i covers the
// walk from ordered[i] to ordered[i+1]; each stop appears once in Points.
func (b *Builder) Build(ordered []museum.Artwork) Result {
	res := Result{}
	if len(ordered) == 0 {
		return res
	}

	floors := make(map[int]bool)
	addFloor := func(f int) {
		if !floors[f] {
			floors[f] = true
			res.Floors = append(res.Floors, f)
		}
	}

	res.Points = append(res.Points, artworkPoint(ordered[0], 0))
	addFloor(ordered[0].Position.Floor)

	for i := 0; i+1 < len(ordered); i++ {
		route := b.router.Route(ordered[i].Position, ordered[i+1].Position)

		leg := make([]Point, 0, len(route.Waypoints)+2)
		leg = append(leg, artworkPoint(ordered[i], i))
		for _, w := range route.Waypoints {
			leg = append(leg, Point{
				Type:       string(w.Type),
				Position:   w.Position,
				EntityID:   w.EntityID,
				Kind:       w.Kind,
				Transition: i,
			})
			if w.Type == connectivity.WaypointStairway {
				res.FloorChanges++
			}
			addFloor(w.Position.Floor)
		}
		leg = append(leg, artworkPoint(ordered[i+1], i))
		addFloor(ordered[i+1].Position.Floor)

		res.Points = append(res.Points, leg[1:]...)
		if route.Reachable() {
			res.Segments = append(res.Segments, b.segments(leg, i)...)
		}
	}
	return res
}

// segments joins consecutive same-floor points of one transition.
func (b *Builder) segments(points []Point, transition int) []Segment {
	var out []Segment
	for j := 0; j+1 < len(points); j++ {
		from, to := points[j].Position, points[j+1].Position
		if from.Floor != to.Floor {
			continue
		}
		out = append(out, Segment{
			From:       from,
			To:         to,
			Floor:      from.Floor,
			Transition: transition,
			Length:     b.metric.Planar(from, to),
		})
	}
	return out
}

func artworkPoint(a museum.Artwork, transition int) Point {
	return Point{
		Type:       PointArtwork,
		Position:   a.Position,
		EntityID:   a.ID,
		Transition: transition,
	}
}
