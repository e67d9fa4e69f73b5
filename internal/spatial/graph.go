// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package spatial

import (
	"slices"
	"time"
)

// Graph is the validated, read-only graph of one building.
type Graph struct {
	buildingID   string
	loadedAt     time.Time
	rooms        map[string]*Room
	roomIDs      []string
	floors       []int
	doors        []Door
	stairways    []Stairway
	doorsByRoom  map[string][]int
	stairsByRoom map[string][]int
	diagnostics  []Diagnostic
}

// Summary describes the contents of a graph.
type Summary struct {
	BuildingID  string       `json:"building_id"`
	LoadedAt    time.Time    `json:"loaded_at"`
	Floors      []int        `json:"floors"`
	Rooms       int          `json:"rooms"`
	Doors       int          `json:"doors"`
	Stairways   int          `json:"stairways"`
	Elevators   int          `json:"elevators"`
	Diagnostics []Diagnostic `json:"diagnostics"`
}

func newGraph(buildingID string, rooms []*Room, doors []Door, stairways []Stairway, diags []Diagnostic) *Graph {
	g := &Graph{
		buildingID:   buildingID,
		loadedAt:     time.Now(),
		rooms:        make(map[string]*Room, len(rooms)),
		doors:        doors,
		stairways:    stairways,
		doorsByRoom:  make(map[string][]int),
		stairsByRoom: make(map[string][]int),
		diagnostics:  diags,
	}

	floorSet := make(map[int]struct{})
	for _, r := range rooms {
		g.rooms[r.ID] = r
		g.roomIDs = append(g.roomIDs, r.ID)
		floorSet[r.Floor] = struct{}{}
	}
	slices.Sort(g.roomIDs)
	for f := range floorSet {
		g.floors = append(g.floors, f)
	}
	slices.Sort(g.floors)

	for i, d := range doors {
		g.doorsByRoom[d.RoomA] = append(g.doorsByRoom[d.RoomA], i)
		g.doorsByRoom[d.RoomB] = append(g.doorsByRoom[d.RoomB], i)
	}
	for i, s := range stairways {
		g.stairsByRoom[s.Lower.Room] = append(g.stairsByRoom[s.Lower.Room], i)
		g.stairsByRoom[s.Upper.Room] = append(g.stairsByRoom[s.Upper.Room], i)
	}
	return g
}

// BuildingID returns the building the graph was loaded for.
func (g *Graph) BuildingID() string { return g.buildingID }

// LoadedAt returns when the graph was assembled.
func (g *Graph) LoadedAt() time.Time { return g.loadedAt }

// Room returns the room with the given id.
func (g *Graph) Room(id string) (*Room, bool) {
	r, ok := g.rooms[id]
	return r, ok
}

// RoomIDs returns all room ids in sorted order.
func (g *Graph) RoomIDs() []string { return slices.Clone(g.roomIDs) }

// Floors returns the floors that hold at least one room, ascending.
func (g *Graph) Floors() []int { return slices.Clone(g.floors) }

// Doors returns every accepted door.
func (g *Graph) Doors() []Door { return slices.Clone(g.doors) }

// Stairways returns every vertical edge.
func (g *Graph) Stairways() []Stairway { return slices.Clone(g.stairways) }

// Diagnostics returns the entities dropped while loading.
func (g *Graph) Diagnostics() []Diagnostic { return slices.Clone(g.diagnostics) }

// DoorsOf returns the doors touching room, ordered by door id.
func (g *Graph) DoorsOf(room string) []Door {
	idx := g.doorsByRoom[room]
	out := make([]Door, len(idx))
	for i, j := range idx {
		out[i] = g.doors[j]
	}
	return out
}

// StairwaysOf returns the vertical edges touching room.
func (g *Graph) StairwaysOf(room string) []Stairway {
	idx := g.stairsByRoom[room]
	out := make([]Stairway, len(idx))
	for i, j := range idx {
		out[i] = g.stairways[j]
	}
	return out
}

// Summary returns counts and diagnostics for reporting.
func (g *Graph) Summary() Summary {
	s := Summary{
		BuildingID:  g.buildingID,
		LoadedAt:    g.loadedAt,
		Floors:      g.Floors(),
		Rooms:       len(g.rooms),
		Doors:       len(g.doors),
		Diagnostics: g.Diagnostics(),
	}
	for _, st := range g.stairways {
		if st.Kind == LinkElevator {
			s.Elevators++
		} else {
			s.Stairways++
		}
	}
	return s
}
