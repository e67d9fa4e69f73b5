// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package connectivity

import (
	"fmt"
	"math"
	"slices"

	"github.com/tomtom215/galleria/internal/spatial"
)

// Mode restricts which vertical links a route may use.
type Mode string

// Travel modes.
const (
	// ModeAny allows stairs and elevators.
	ModeAny Mode = "any"

	// ModeElevatorOnly excludes stairs for step-free visits.
	ModeElevatorOnly Mode = "elevator_only"
)

// ParseMode converts a mode name, defaulting to ModeAny for "".
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeAny:
		return ModeAny, nil
	case ModeElevatorOnly:
		return ModeElevatorOnly, nil
	default:
		return "", fmt.Errorf("unknown travel mode %q", s)
	}
}

// Allows reports whether a vertical link of kind may be used in mode m.
func (m Mode) Allows(kind spatial.LinkKind) bool {
	if m == ModeElevatorOnly {
		return kind == spatial.LinkElevator
	}
	return true
}

// WaypointType names the transitions a route passes through.
type WaypointType string

// Waypoint types.
const (
	WaypointDoor         WaypointType = "door"
	WaypointStairway     WaypointType = "stairway"
	WaypointStairwayExit WaypointType = "stairway_exit"
)

// Waypoint is a transition on a route.
type Waypoint struct {
	Type     WaypointType     `json:"type"`
	Position spatial.Position `json:"position"`
	EntityID string           `json:"entity_id"`
	Kind     spatial.LinkKind `json:"kind,omitempty"`
}

// Route is the result of a route search.
type Route struct {
	Distance  float64    `json:"distance_meters"`
	Waypoints []Waypoint `json:"waypoints"`
}

// Unreachable is the route returned when no path exists.
func Unreachable() Route {
	return Route{Distance: math.Inf(1)}
}

// Reachable reports whether the route has a finite distance.
func (r Route) Reachable() bool {
	return !math.IsInf(r.Distance, 1)
}

// FloorChanges counts the floors crossed on the route.
func (r Route) FloorChanges() int {
	n := 0
	for _, w := range r.Waypoints {
		if w.Type == WaypointStairway {
			n++
		}
	}
	return n
}

// reversed returns the route walked backwards. Stairway pairs keep the
// entry first.
func (r Route) reversed() Route {
	out := Route{Distance: r.Distance, Waypoints: slices.Clone(r.Waypoints)}
	slices.Reverse(out.Waypoints)
	for i := range out.Waypoints {
		switch out.Waypoints[i].Type {
		case WaypointStairway:
			out.Waypoints[i].Type = WaypointStairwayExit
		case WaypointStairwayExit:
			out.Waypoints[i].Type = WaypointStairway
		}
	}
	return out
}
