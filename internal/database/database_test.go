// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package database

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/tomtom215/galleria/internal/config"
	"github.com/tomtom215/galleria/internal/geometry"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
	"github.com/tomtom215/galleria/internal/spatial/spatialtest"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(&config.DatabaseConfig{Threads: 1, MaxMemory: "256MB"})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { closeQuietly(db) })
	return db
}

func testDataset() *Dataset {
	crit := map[string]string{"age": "adult", "lang": "en"}
	return &Dataset{
		Criteria: []museum.Category{
			{ID: "age", Options: []string{"adult", "child"}},
			{ID: "lang", Options: []string{"en", "fr"}},
		},
		Buildings: []BuildingDataset{{
			RawGeometry: spatialtest.TwoRooms().Raw(),
			Artworks: []ArtworkRecord{
				{ID: "a1", Title: "Portrait", Materials: "oil on canvas", Narration: "a painted face", Room: "A", X: 100, Y: 100, Criteria: crit},
				{ID: "b1", Title: "Bust", Materials: "marble", Room: "B", X: 300, Y: 100, Criteria: crit},
				{ID: "c1", Title: "Sketch", Materials: "charcoal", Room: "B", X: 320, Y: 120,
					Criteria: map[string]string{"age": "child", "lang": "en"}},
			},
		}},
	}
}

func TestNew_Ping(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	if err := db.Ping(context.Background()); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if db.Conn() == nil {
		t.Error("Conn() = nil")
	}
}

func TestBuildingGeometry_RoundTrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	raw := spatialtest.Tower(3, spatial.LinkElevator).Raw()
	raw.Doors = append(raw.Doors, spatial.RawDoor{ID: "x", PlanID: raw.Plans[0].ID, X: 1, Y: 2, RoomHints: []string{"G0"}})

	if err := db.SaveBuilding(ctx, raw); err != nil {
		t.Fatalf("SaveBuilding() error = %v", err)
	}
	got, err := db.BuildingGeometry(ctx, raw.BuildingID)
	if err != nil {
		t.Fatalf("BuildingGeometry() error = %v", err)
	}
	if len(got.Plans) != 3 || len(got.Rooms) != 3 || len(got.Links) != 3 || len(got.Doors) != 1 {
		t.Fatalf("BuildingGeometry() = %d plans %d rooms %d links %d doors",
			len(got.Plans), len(got.Rooms), len(got.Links), len(got.Doors))
	}
	if !slices.Equal(got.Rooms[0].Points, raw.Rooms[0].Points) {
		t.Errorf("room points = %v, want %v", got.Rooms[0].Points, raw.Rooms[0].Points)
	}
	if !slices.Equal(got.Doors[0].RoomHints, []string{"G0"}) {
		t.Errorf("door hints = %v", got.Doors[0].RoomHints)
	}

	// The stored drawings load into the same graph as the fixture.
	g := spatial.NewLoader(geometry.DefaultTolerances()).Load(got)
	if s := g.Summary(); s.Elevators != 2 || len(s.Floors) != 3 {
		t.Errorf("Summary() = %+v, want 2 elevator edges over 3 floors", s)
	}

	// Saving again replaces, not appends.
	if err := db.SaveBuilding(ctx, raw); err != nil {
		t.Fatalf("SaveBuilding() again error = %v", err)
	}
	again, _ := db.BuildingGeometry(ctx, raw.BuildingID)
	if len(again.Rooms) != 3 {
		t.Errorf("rooms after resave = %d, want 3", len(again.Rooms))
	}
}

func TestBuildingGeometry_NotFound(t *testing.T) {
	t.Parallel()

	db := setupTestDB(t)
	_, err := db.BuildingGeometry(context.Background(), "nowhere")
	if !errors.Is(err, spatial.ErrBuildingNotFound) {
		t.Errorf("BuildingGeometry() error = %v, want ErrBuildingNotFound", err)
	}
}

func TestImportDataset(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	if err := db.ImportDataset(ctx, testDataset()); err != nil {
		t.Fatalf("ImportDataset() error = %v", err)
	}

	buildings, err := db.Buildings(ctx)
	if err != nil || !slices.Equal(buildings, []string{"two-rooms"}) {
		t.Fatalf("Buildings() = %v, %v", buildings, err)
	}

	cat, err := db.CriteriaCatalog(ctx)
	if err != nil {
		t.Fatalf("CriteriaCatalog() error = %v", err)
	}
	if len(cat.Categories) != 2 || cat.Categories[0].ID != "age" ||
		!slices.Equal(cat.Categories[0].Options, []string{"adult", "child"}) {
		t.Errorf("CriteriaCatalog() = %+v", cat)
	}
}

func TestArtworksForProfile(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	if err := db.ImportDataset(ctx, testDataset()); err != nil {
		t.Fatalf("ImportDataset() error = %v", err)
	}

	tests := []struct {
		name    string
		profile museum.Profile
		want    []string
	}{
		{"adult", museum.NewProfile(map[string]string{"age": "adult"}), []string{"a1", "b1"}},
		{"adult english", museum.NewProfile(map[string]string{"age": "adult", "lang": "en"}), []string{"a1", "b1"}},
		{"english", museum.NewProfile(map[string]string{"lang": "en"}), []string{"a1", "b1", "c1"}},
		{"child", museum.NewProfile(map[string]string{"age": "child"}), []string{"c1"}},
		{"french", museum.NewProfile(map[string]string{"lang": "fr"}), nil},
		{"empty", museum.NewProfile(nil), nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			arts, err := db.ArtworksForProfile(ctx, "two-rooms", tt.profile)
			if err != nil {
				t.Fatalf("ArtworksForProfile() error = %v", err)
			}
			var ids []string
			for _, a := range arts {
				ids = append(ids, a.ID)
				if !tt.profile.Matches(a.Criteria) {
					t.Errorf("artwork %s criteria %s do not match %s", a.ID, a.Criteria, tt.profile)
				}
			}
			if !slices.Equal(ids, tt.want) {
				t.Errorf("ids = %v, want %v", ids, tt.want)
			}
		})
	}

	arts, _ := db.ArtworksForProfile(ctx, "two-rooms", museum.NewProfile(map[string]string{"age": "adult"}))
	a1 := arts[0]
	if a1.Position != (spatial.Position{X: 100, Y: 100, Room: "A", Floor: 0}) {
		t.Errorf("position = %+v", a1.Position)
	}
	if a1.Materials != "oil on canvas" || !strings.Contains(a1.Narration, "face") {
		t.Errorf("artwork = %+v", a1)
	}
}

func TestSaveArtwork_Replaces(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	if err := db.ImportDataset(ctx, testDataset()); err != nil {
		t.Fatalf("ImportDataset() error = %v", err)
	}

	moved := museum.Artwork{
		ID:       "a1",
		Title:    "Portrait",
		Position: spatial.Position{X: 150, Y: 50, Room: "A"},
		Criteria: museum.NewProfile(map[string]string{"age": "child"}),
	}
	if err := db.SaveArtwork(ctx, "two-rooms", moved); err != nil {
		t.Fatalf("SaveArtwork() error = %v", err)
	}
	arts, err := db.ArtworksForProfile(ctx, "two-rooms", museum.NewProfile(map[string]string{"age": "child"}))
	if err != nil {
		t.Fatalf("ArtworksForProfile() error = %v", err)
	}
	if len(arts) != 2 || arts[0].ID != "a1" || arts[0].Position.X != 150 {
		t.Errorf("arts = %+v", arts)
	}

	if err := db.SaveArtwork(ctx, "two-rooms", museum.Artwork{ID: "z"}); err == nil {
		t.Error("SaveArtwork() without room should fail")
	}
}

func TestDecodeDataset(t *testing.T) {
	t.Parallel()

	ds, err := DecodeDataset(strings.NewReader(`{
		"criteria": [{"id": "age", "options": ["adult"]}],
		"buildings": [{
			"building_id": "b1",
			"plans": [{"id": "p0", "order": 0}],
			"rooms": [{"id": "R", "plan_id": "p0", "points": [[0,0],[100,0],[100,100],[0,100]]}],
			"artworks": [{"id": "a", "room": "R", "x": 50, "y": 50, "criteria": {"age": "adult"}}]
		}]
	}`))
	if err != nil {
		t.Fatalf("DecodeDataset() error = %v", err)
	}
	if ds.Buildings[0].BuildingID != "b1" || len(ds.Buildings[0].Rooms[0].Points) != 4 {
		t.Errorf("building = %+v", ds.Buildings[0])
	}
	if a := ds.Buildings[0].Artworks[0].Artwork(); a.Position.Room != "R" || a.Criteria.Len() != 1 {
		t.Errorf("artwork = %+v", a)
	}

	if _, err := DecodeDataset(strings.NewReader("{")); err == nil {
		t.Error("DecodeDataset() on bad JSON should fail")
	}
}
