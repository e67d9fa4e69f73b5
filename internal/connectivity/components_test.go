// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package connectivity

import (
	"slices"
	"testing"

	"github.com/tomtom215/galleria/internal/spatial"
	"github.com/tomtom215/galleria/internal/spatial/spatialtest"
)

func TestComponents(t *testing.T) {
	t.Parallel()

	g := spatialtest.TwoRooms().
		Room("C", 0, 1000, 0, 200, 200).
		Room("D", 0, 1200, 0, 200, 200).
		Door("cd", 0, 1200, 100, "C", "D").
		Room("Z", 0, 5000, 5000, 100, 100).
		Graph(t)

	comps := Components(g, ModeAny)
	if len(comps) != 3 {
		t.Fatalf("components = %+v, want 3", comps)
	}
	if !slices.Equal(comps[0].Rooms, []string{"A", "B"}) || comps[0].Edges != 1 {
		t.Errorf("comps[0] = %+v, want A,B with 1 edge", comps[0])
	}
	if !slices.Equal(comps[1].Rooms, []string{"C", "D"}) {
		t.Errorf("comps[1] = %+v, want C,D", comps[1])
	}
	if !comps[2].Isolated() || comps[2].Rooms[0] != "Z" {
		t.Errorf("comps[2] = %+v, want isolated Z", comps[2])
	}
	if comps[0].Isolated() {
		t.Error("A,B should not be isolated")
	}
	if !comps[1].Contains("D") || comps[1].Contains("A") {
		t.Error("Contains() disagrees with Rooms")
	}
}

func TestComponents_ModeFiltersStairs(t *testing.T) {
	t.Parallel()

	g := spatialtest.Tower(2, spatial.LinkStairs).Graph(t)

	if got := Components(g, ModeAny); len(got) != 1 {
		t.Errorf("ModeAny components = %+v, want 1", got)
	}
	got := Components(g, ModeElevatorOnly)
	if len(got) != 2 || !got[0].Isolated() || !got[1].Isolated() {
		t.Errorf("ModeElevatorOnly components = %+v, want 2 isolated", got)
	}
}
