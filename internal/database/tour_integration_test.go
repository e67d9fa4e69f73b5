// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package database

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/galleria/internal/cache"
	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/tour"
)

func TestTourFromDatabase(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	if err := db.ImportDataset(ctx, testDataset()); err != nil {
		t.Fatalf("ImportDataset() error = %v", err)
	}
	store := NewBreakerStore(db, testBreakerConfig())

	engine, err := tour.NewEngine(tour.DefaultConfig(), tour.Sources{
		Geometry: store,
		Artworks: store,
		Catalog:  store,
	}, cache.NewGraphCache(4, time.Minute), zerolog.Nop())
	if err != nil {
		t.Fatalf("NewEngine() error = %v", err)
	}

	seed := int64(11)
	got, err := engine.Generate(ctx, tour.Request{
		BuildingID: "two-rooms",
		Profile:    museum.NewProfile(map[string]string{"age": "adult", "lang": "en"}),
		Duration:   30 * time.Minute,
		Mode:       connectivity.ModeAny,
		Seed:       &seed,
	})
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if !got.Available {
		t.Fatalf("Generate() unavailable: %s %s", got.Reason, got.Message)
	}
	if len(got.Stops) != 2 {
		t.Errorf("stops = %d, want 2", len(got.Stops))
	}
	if got.Summary.FloorChanges != 0 {
		t.Errorf("floor changes = %d, want 0", got.Summary.FloorChanges)
	}

	if _, err := engine.Generate(ctx, tour.Request{
		BuildingID: "missing",
		Profile:    museum.NewProfile(map[string]string{"age": "adult"}),
		Duration:   30 * time.Minute,
	}); err == nil {
		t.Error("Generate() for unknown building should fail")
	}
}
