// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package spatial

import (
	"strings"

	"github.com/paulmach/orb"

	"github.com/tomtom215/galleria/internal/geometry"
)

// LinkKind distinguishes staircases from elevators.
type LinkKind string

// Supported vertical link kinds.
const (
	LinkStairs   LinkKind = "stairs"
	LinkElevator LinkKind = "elevator"
)

// ParseLinkKind normalizes the kind tags found in drawings.
func ParseLinkKind(s string) (LinkKind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "stairs", "stair", "staircase", "stairway", "escalier":
		return LinkStairs, true
	case "elevator", "lift", "ascenseur":
		return LinkElevator, true
	default:
		return "", false
	}
}

// Position is a point in drawing units attached to a room and a floor.
type Position struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Room  string  `json:"room"`
	Floor int     `json:"floor"`
}

// Point returns the planar coordinates of the position.
func (p Position) Point() orb.Point {
	return orb.Point{p.X, p.Y}
}

// At builds a Position from a point.
func At(pt orb.Point, room string, floor int) Position {
	return Position{X: pt[0], Y: pt[1], Room: room, Floor: floor}
}

// Room is a closed polygon on one floor.
type Room struct {
	ID        string
	PolygonID string
	Name      string
	PlanID    string
	Floor     int
	Outline   orb.Ring
}

// Contains reports whether pt lies inside the room outline.
func (r *Room) Contains(pt orb.Point) bool {
	return r.Outline.Bound().Contains(pt) && geometry.Contains(r.Outline, pt)
}

// Door connects two adjacent rooms of the same floor. RoomA sorts before
// RoomB.
type Door struct {
	ID     string
	RoomA  string
	RoomB  string
	Center orb.Point
	Floor  int
}

// Other returns the room on the far side of the door from room, or "" if
// the door does not touch room.
func (d Door) Other(room string) string {
	switch room {
	case d.RoomA:
		return d.RoomB
	case d.RoomB:
		return d.RoomA
	default:
		return ""
	}
}

// Position returns the door center attributed to RoomA.
func (d Door) Position() Position {
	return At(d.Center, d.RoomA, d.Floor)
}

// Stairway is a vertical edge between two consecutive floors of a link
// group. Lower.Floor+1 == Upper.Floor always holds.
type Stairway struct {
	ID      string
	GroupID string
	Kind    LinkKind
	Lower   Position
	Upper   Position
}

// Touches reports whether the stairway has an endpoint in room on floor.
func (s Stairway) Touches(room string, floor int) bool {
	return (s.Lower.Room == room && s.Lower.Floor == floor) ||
		(s.Upper.Room == room && s.Upper.Floor == floor)
}

// From returns the endpoint in room on floor and the opposite endpoint.
func (s Stairway) From(room string, floor int) (entry, exit Position) {
	if s.Lower.Room == room && s.Lower.Floor == floor {
		return s.Lower, s.Upper
	}
	return s.Upper, s.Lower
}
