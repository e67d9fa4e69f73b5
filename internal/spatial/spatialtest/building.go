// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package spatialtest builds small buildings for tests.
package spatialtest

import (
	"fmt"
	"testing"

	"github.com/paulmach/orb"

	"github.com/tomtom215/galleria/internal/geometry"
	"github.com/tomtom215/galleria/internal/spatial"
)

// Building accumulates raw geometry for one test building.
type Building struct {
	raw spatial.RawGeometry
}

// NewBuilding creates a building with floors plans named plan-0, plan-1...
func NewBuilding(id string, floors int) *Building {
	b := &Building{raw: spatial.RawGeometry{BuildingID: id}}
	for f := 0; f < floors; f++ {
		b.raw.Plans = append(b.raw.Plans, spatial.RawPlan{ID: PlanID(f), Order: f})
	}
	return b
}

// PlanID returns the plan id used for floor f.
func PlanID(f int) string {
	return fmt.Sprintf("plan-%d", f)
}

// Room adds an axis-aligned rectangular room.
func (b *Building) Room(id string, floor int, x, y, w, h float64) *Building {
	b.raw.Rooms = append(b.raw.Rooms, spatial.RawRoom{
		ID:     id,
		Name:   "Room " + id,
		PlanID: PlanID(floor),
		Points: []orb.Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}},
	})
	return b
}

// Door adds a door marker. Hints may be empty.
func (b *Building) Door(id string, floor int, x, y float64, hints ...string) *Building {
	b.raw.Doors = append(b.raw.Doors, spatial.RawDoor{
		ID:        id,
		PlanID:    PlanID(floor),
		X:         x,
		Y:         y,
		RoomHints: hints,
	})
	return b
}

// Link adds one marker of a vertical link group.
func (b *Building) Link(id, group string, kind spatial.LinkKind, floor int, x, y float64) *Building {
	b.raw.Links = append(b.raw.Links, spatial.RawLink{
		ID:      id,
		PlanID:  PlanID(floor),
		GroupID: group,
		Kind:    string(kind),
		X:       x,
		Y:       y,
	})
	return b
}

// Raw returns the accumulated geometry.
func (b *Building) Raw() spatial.RawGeometry {
	return b.raw
}

// Graph loads the building with default tolerances.
func (b *Building) Graph(tb testing.TB) *spatial.Graph {
	tb.Helper()
	return spatial.NewLoader(geometry.DefaultTolerances()).Load(b.raw)
}

// TwoRooms is a ground floor with rooms A and B joined by door d1 at (200, 100).
func TwoRooms() *Building {
	return NewBuilding("two-rooms", 1).
		Room("A", 0, 0, 0, 200, 200).
		Room("B", 0, 200, 0, 200, 200).
		Door("d1", 0, 200, 100, "A", "B")
}

// Corridor is a single floor of n rooms in a row, R0..Rn-1, each 200 wide,
// joined by doors D0..Dn-2.
func Corridor(n int) *Building {
	b := NewBuilding(fmt.Sprintf("corridor-%d", n), 1)
	for i := 0; i < n; i++ {
		b.Room(fmt.Sprintf("R%d", i), 0, float64(i)*200, 0, 200, 200)
	}
	for i := 0; i+1 < n; i++ {
		b.Door(fmt.Sprintf("D%d", i), 0, float64(i+1)*200, 100, fmt.Sprintf("R%d", i), fmt.Sprintf("R%d", i+1))
	}
	return b
}

// Tower stacks one 200x200 room per floor, G0..Gn-1, joined by a single
// link group "lift" of the given kind with markers at (100, 100).
func Tower(floors int, kind spatial.LinkKind) *Building {
	b := NewBuilding(fmt.Sprintf("tower-%d", floors), floors)
	for f := 0; f < floors; f++ {
		b.Room(fmt.Sprintf("G%d", f), f, 0, 0, 200, 200)
		b.Link(fmt.Sprintf("lift-%d", f), "lift", kind, f, 100, 100)
	}
	return b
}
