// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package selection

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
	"github.com/tomtom215/galleria/internal/spatial/spatialtest"
)

var adult = museum.NewProfile(map[string]string{"age": "adult"})

// mockSource returns a fixed artwork list.
type mockSource struct {
	artworks []museum.Artwork
	err      error
	calls    int
}

func (m *mockSource) ArtworksForProfile(_ context.Context, _ string, _ museum.Profile) ([]museum.Artwork, error) {
	m.calls++
	return m.artworks, m.err
}

func artwork(id, room string, floor int, x, y float64, kind museum.ArtworkType) museum.Artwork {
	return museum.Artwork{
		ID:       id,
		Title:    "Artwork " + id,
		Type:     kind,
		Position: spatial.Position{X: x, Y: y, Room: room, Floor: floor},
		Criteria: museum.NewProfile(map[string]string{"age": "adult", "lang": "en"}),
	}
}

func ids(arts []museum.Artwork) []string {
	out := make([]string, len(arts))
	for i, a := range arts {
		out[i] = a.ID
	}
	slices.Sort(out)
	return out
}

func newSelector(g *spatial.Graph, mode connectivity.Mode, src Source) *Selector {
	return NewSelector(g, mode, spatial.DefaultMetric(), src, DefaultConfig())
}

func TestSelect_TwoRooms(t *testing.T) {
	t.Parallel()

	src := &mockSource{artworks: []museum.Artwork{
		artwork("a1", "A", 0, 100, 100, museum.TypePainting),
		artwork("b1", "B", 0, 300, 100, museum.TypeSculpture),
	}}
	s := newSelector(spatialtest.TwoRooms().Graph(t), connectivity.ModeAny, src)

	got, err := s.Select(context.Background(), adult, 10*time.Minute, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("Select() error = %v", err)
	}
	if !slices.Equal(ids(got), []string{"a1", "b1"}) {
		t.Errorf("Select() = %v, want both artworks", ids(got))
	}
}

func TestSelect_FiltersProfile(t *testing.T) {
	t.Parallel()

	child := artwork("c1", "A", 0, 50, 50, museum.TypePainting)
	child.Criteria = museum.NewProfile(map[string]string{"age": "child"})
	src := &mockSource{artworks: []museum.Artwork{child}}
	s := newSelector(spatialtest.TwoRooms().Graph(t), connectivity.ModeAny, src)

	_, err := s.Select(context.Background(), adult, 10*time.Minute, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoCandidates) {
		t.Errorf("Select() error = %v, want ErrNoCandidates", err)
	}
}

func TestSelect_SourceError(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	s := newSelector(spatialtest.TwoRooms().Graph(t), connectivity.ModeAny, &mockSource{err: boom})
	if _, err := s.Select(context.Background(), adult, time.Minute, rand.New(rand.NewSource(1))); !errors.Is(err, boom) {
		t.Errorf("Select() error = %v, want wrapped source error", err)
	}
}

func TestSelectFrom_DisjointClusters(t *testing.T) {
	t.Parallel()

	g := spatialtest.TwoRooms().
		Room("C", 0, 1000, 0, 200, 200).
		Room("D", 0, 1200, 0, 200, 200).
		Door("cd", 0, 1200, 100, "C", "D").
		Graph(t)

	candidates := []museum.Artwork{
		artwork("a1", "A", 0, 50, 50, museum.TypePainting),
		artwork("a2", "A", 0, 150, 50, museum.TypePainting),
		artwork("a3", "A", 0, 150, 150, museum.TypePainting),
		artwork("c1", "C", 0, 1100, 100, museum.TypePainting),
		artwork("d1", "D", 0, 1300, 100, museum.TypeSculpture),
	}
	s := newSelector(g, connectivity.ModeAny, nil)

	for seed := int64(0); seed < 20; seed++ {
		got, err := s.SelectFrom(candidates, time.Hour, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("SelectFrom() error = %v", err)
		}
		// C,D has two ground floor rooms with artworks; A,B only one.
		if !slices.Equal(ids(got), []string{"c1", "d1"}) {
			t.Fatalf("seed %d: SelectFrom() = %v, want [c1 d1]", seed, ids(got))
		}
	}
}

func TestReachable_TieBrokenByCount(t *testing.T) {
	t.Parallel()

	g := spatialtest.TwoRooms().
		Room("C", 0, 1000, 0, 200, 200).
		Room("D", 0, 1200, 0, 200, 200).
		Door("cd", 0, 1200, 100, "C", "D").
		Graph(t)

	candidates := []museum.Artwork{
		artwork("a1", "A", 0, 50, 50, museum.TypePainting),
		artwork("c1", "C", 0, 1100, 100, museum.TypePainting),
		artwork("c2", "C", 0, 1150, 100, museum.TypePainting),
	}
	got := newSelector(g, connectivity.ModeAny, nil).Reachable(candidates)
	if !slices.Equal(ids(got), []string{"c1", "c2"}) {
		t.Errorf("Reachable() = %v, want [c1 c2]", ids(got))
	}
}

func TestSelectFrom_IsolatedRoomsIgnored(t *testing.T) {
	t.Parallel()

	g := spatialtest.TwoRooms().Room("Z", 0, 5000, 5000, 100, 100).Graph(t)
	s := newSelector(g, connectivity.ModeAny, nil)

	got, err := s.SelectFrom([]museum.Artwork{
		artwork("z1", "Z", 0, 5050, 5050, museum.TypePainting),
		artwork("z2", "Z", 0, 5060, 5050, museum.TypePainting),
		artwork("b1", "B", 0, 300, 100, museum.TypePainting),
	}, time.Hour, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("SelectFrom() error = %v", err)
	}
	if !slices.Equal(ids(got), []string{"b1"}) {
		t.Errorf("SelectFrom() = %v, want [b1]", ids(got))
	}

	_, err = s.SelectFrom([]museum.Artwork{artwork("z1", "Z", 0, 5050, 5050, museum.TypePainting)}, time.Hour, rand.New(rand.NewSource(3)))
	if !errors.Is(err, ErrDisconnectedBuilding) {
		t.Errorf("only isolated candidates: error = %v, want ErrDisconnectedBuilding", err)
	}
}

func TestSelectFrom_ElevatorOnlyStairs(t *testing.T) {
	t.Parallel()

	candidates := []museum.Artwork{
		artwork("g0", "G0", 0, 50, 50, museum.TypePainting),
		artwork("g1", "G1", 1, 50, 50, museum.TypePainting),
	}

	stairs := spatialtest.Tower(2, spatial.LinkStairs).Graph(t)
	if _, err := newSelector(stairs, connectivity.ModeElevatorOnly, nil).SelectFrom(candidates, time.Hour, rand.New(rand.NewSource(1))); !errors.Is(err, ErrDisconnectedBuilding) {
		t.Errorf("stairs tower in elevator mode: error = %v, want ErrDisconnectedBuilding", err)
	}

	lift := spatialtest.Tower(2, spatial.LinkElevator).Graph(t)
	got, err := newSelector(lift, connectivity.ModeElevatorOnly, nil).SelectFrom(candidates, time.Hour, rand.New(rand.NewSource(1)))
	if err != nil || len(got) != 2 {
		t.Errorf("elevator tower: SelectFrom() = %v, %v; want both artworks", ids(got), err)
	}
}

func TestSelectFrom_UnknownRoomsDropped(t *testing.T) {
	t.Parallel()

	s := newSelector(spatialtest.TwoRooms().Graph(t), connectivity.ModeAny, nil)
	_, err := s.SelectFrom([]museum.Artwork{artwork("x", "nowhere", 0, 0, 0, museum.TypePainting)}, time.Hour, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrDisconnectedBuilding) {
		t.Errorf("error = %v, want ErrDisconnectedBuilding", err)
	}
}

func TestTargetCount(t *testing.T) {
	t.Parallel()

	s := newSelector(spatialtest.TwoRooms().Graph(t), connectivity.ModeAny, nil)

	tests := []struct {
		name      string
		target    time.Duration
		available int
		want      int
	}{
		{"short visit gets the minimum", 5 * time.Minute, 50, 3},
		{"fewer candidates than minimum", 5 * time.Minute, 2, 2},
		{"hour long visit", time.Hour, 50, 21},
		{"capped by availability", time.Hour, 10, 10},
		{"zero duration", 0, 50, 3},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := s.TargetCount(tt.target, tt.available); got != tt.want {
				t.Errorf("TargetCount(%v, %d) = %d, want %d", tt.target, tt.available, got, tt.want)
			}
		})
	}
}

func gridCandidates(t *testing.T) (*spatial.Graph, []museum.Artwork) {
	t.Helper()
	b := spatialtest.NewBuilding("grid", 2)
	var arts []museum.Artwork
	kinds := []museum.ArtworkType{museum.TypePainting, museum.TypeSculpture, museum.TypeDrawing}
	for f := 0; f < 2; f++ {
		for i := 0; i < 4; i++ {
			id := fmt.Sprintf("f%d-r%d", f, i)
			b.Room(id, f, float64(i)*200, 0, 200, 200)
			if i > 0 {
				b.Door("", f, float64(i)*200, 100, id, fmt.Sprintf("f%d-r%d", f, i-1))
			}
			for k := 0; k < 3; k++ {
				arts = append(arts, artwork(fmt.Sprintf("%s-%d", id, k), id, f, float64(i)*200+40+float64(k)*60, 100, kinds[k]))
			}
		}
	}
	b.Link("s0", "stair", spatial.LinkStairs, 0, 100, 100).Link("s1", "stair", spatial.LinkStairs, 1, 100, 100)
	// A separate wing that must never contribute artworks.
	b.Room("w1", 0, 2000, 0, 200, 200).Room("w2", 0, 2200, 0, 200, 200).Door("w", 0, 2200, 100, "w1", "w2")
	arts = append(arts, artwork("wing-1", "w1", 0, 2100, 100, museum.TypePainting))
	return b.Graph(t), arts
}

func TestSelectFrom_Deterministic(t *testing.T) {
	t.Parallel()

	g, arts := gridCandidates(t)
	s := newSelector(g, connectivity.ModeAny, nil)

	first, err := s.SelectFrom(arts, 30*time.Minute, rand.New(rand.NewSource(99)))
	if err != nil {
		t.Fatalf("SelectFrom() error = %v", err)
	}
	for i := 0; i < 5; i++ {
		again, _ := s.SelectFrom(arts, 30*time.Minute, rand.New(rand.NewSource(99)))
		if !slices.Equal(ids(first), ids(again)) {
			t.Fatalf("same seed gave %v and %v", ids(first), ids(again))
		}
	}
	if len(first) != 10 {
		t.Errorf("selected %d artworks, want 10 for 30 minutes", len(first))
	}
}

func TestSelectFrom_SingleComponent(t *testing.T) {
	t.Parallel()

	g, arts := gridCandidates(t)
	s := newSelector(g, connectivity.ModeAny, nil)
	comps := connectivity.Components(g, connectivity.ModeAny)

	for seed := int64(0); seed < 50; seed++ {
		got, err := s.SelectFrom(arts, time.Duration(seed+5)*time.Minute, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("SelectFrom() error = %v", err)
		}
		owner := -1
		for _, a := range got {
			for ci, c := range comps {
				if c.Contains(a.Position.Room) {
					if owner >= 0 && owner != ci {
						t.Fatalf("seed %d: artworks from components %d and %d", seed, owner, ci)
					}
					owner = ci
				}
			}
		}
	}
}

func TestSelectFrom_FirstPickOnGroundFloor(t *testing.T) {
	t.Parallel()

	g, arts := gridCandidates(t)
	cfg := DefaultConfig()
	cfg.MinArtworks = 1
	s := NewSelector(g, connectivity.ModeAny, spatial.DefaultMetric(), nil, cfg)

	for seed := int64(0); seed < 30; seed++ {
		got, err := s.SelectFrom(arts, 0, rand.New(rand.NewSource(seed)))
		if err != nil {
			t.Fatalf("SelectFrom() error = %v", err)
		}
		if len(got) != 1 || got[0].Position.Floor != 0 {
			t.Fatalf("seed %d: first pick = %+v, want one ground floor artwork", seed, got)
		}
	}
}

func TestWeight(t *testing.T) {
	t.Parallel()

	s := newSelector(spatialtest.Corridor(3).Graph(t), connectivity.ModeAny, nil)
	picked := []museum.Artwork{artwork("p", "R0", 0, 100, 100, museum.TypePainting)}
	rooms := map[string]bool{"R0": true}
	floors := map[int]bool{0: true}
	types := map[museum.ArtworkType]int{museum.TypePainting: 1}

	tests := []struct {
		name string
		a    museum.Artwork
		want float64
	}{
		// 300px = 15m away, new room, same floor, new type.
		{"fresh room and type", artwork("x", "R1", 0, 400, 100, museum.TypeSculpture), 3.0 * 0.7 * 1.5 * 1},
		// 600px = 30m away, clamped to 2.
		{"far but same room and type", artwork("y", "R0", 0, 700, 100, museum.TypePainting), 0.5 * 0.7 * 0.5 * 2},
		{"same spot", artwork("z", "R0", 0, 100, 100, museum.TypeSculpture), 0},
		// 15m plus a 20m floor penalty, clamped to 2.
		{"other floor", artwork("u", "R9", 1, 400, 100, museum.TypeSculpture), 3.0 * 2.0 * 1.5 * 2},
		// 20m floor penalty alone.
		{"straight above", artwork("v", "R9", 1, 100, 100, museum.TypeSculpture), 3.0 * 2.0 * 1.5 * (20.0 / 15.0)},
	}
	for _, tt := range tests {
		got := s.weight(tt.a, picked, rooms, floors, types)
		if math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("%s: weight = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestSample(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(5))
	for i := 0; i < 100; i++ {
		if got := sample([]float64{0, 1, 0}, rng); got != 1 {
			t.Fatalf("sample() = %d, want 1", got)
		}
		if got := sample([]float64{0, 0}, rng); got < 0 || got > 1 {
			t.Fatalf("sample() of zero weights = %d", got)
		}
	}
}

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}
	mutations := map[string]func(*Config){
		"zero fill ratio":     func(c *Config) { c.FillRatio = 0 },
		"fill ratio above 1":  func(c *Config) { c.FillRatio = 1.5 },
		"no minimum":          func(c *Config) { c.MinArtworks = 0 },
		"zero normalizer":     func(c *Config) { c.DistanceNormalizer = 0 },
		"zero seconds":        func(c *Config) { c.AverageNarrationSeconds, c.ObservationSeconds = 0, 0 },
		"negative max factor": func(c *Config) { c.MaxDistanceFactor = -1 },
	}
	for name, mutate := range mutations {
		cfg := DefaultConfig()
		mutate(&cfg)
		if err := cfg.Validate(); err == nil {
			t.Errorf("%s: expected validation error", name)
		}
	}
}
