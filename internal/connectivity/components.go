// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package connectivity

import (
	"slices"

	"github.com/tomtom215/galleria/internal/spatial"
)

// Component is a maximal set of rooms reachable from each other.
type Component struct {
	Rooms []string
	Edges int
}

// Isolated reports whether the component is a single room with no edges.
func (c Component) Isolated() bool {
	return len(c.Rooms) <= 1 && c.Edges == 0
}

// Contains reports whether room belongs to the component.
func (c Component) Contains(room string) bool {
	_, ok := slices.BinarySearch(c.Rooms, room)
	return ok
}

// Components partitions the rooms of g, ignoring direction. Doors and the
// vertical links allowed by mode count as edges. Components are ordered by
// their smallest room id and list their rooms sorted.
func Components(g *spatial.Graph, mode Mode) []Component {
	adj := make(map[string][]string)
	edgeCount := make(map[string]int)

	for _, d := range g.Doors() {
		adj[d.RoomA] = append(adj[d.RoomA], d.RoomB)
		adj[d.RoomB] = append(adj[d.RoomB], d.RoomA)
		edgeCount[d.RoomA]++
	}
	for _, s := range g.Stairways() {
		if !mode.Allows(s.Kind) {
			continue
		}
		adj[s.Lower.Room] = append(adj[s.Lower.Room], s.Upper.Room)
		adj[s.Upper.Room] = append(adj[s.Upper.Room], s.Lower.Room)
		edgeCount[s.Lower.Room]++
	}

	seen := make(map[string]bool)
	var out []Component
	for _, id := range g.RoomIDs() {
		if seen[id] {
			continue
		}
		seen[id] = true
		comp := Component{}
		queue := []string{id}
		for len(queue) > 0 {
			cur := queue[0]
			queue = queue[1:]
			comp.Rooms = append(comp.Rooms, cur)
			comp.Edges += edgeCount[cur]
			for _, next := range adj[cur] {
				if !seen[next] {
					seen[next] = true
					queue = append(queue, next)
				}
			}
		}
		slices.Sort(comp.Rooms)
		out = append(out, comp)
	}
	return out
}
