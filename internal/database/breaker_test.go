// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package database

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/tomtom215/galleria/internal/config"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
)

// flakyReader fails every geometry read with err.
type flakyReader struct {
	err   error
	calls int
}

func (f *flakyReader) BuildingGeometry(context.Context, string) (spatial.RawGeometry, error) {
	f.calls++
	return spatial.RawGeometry{}, f.err
}

func (f *flakyReader) ArtworksForProfile(context.Context, string, museum.Profile) ([]museum.Artwork, error) {
	f.calls++
	return nil, f.err
}

func (f *flakyReader) CriteriaCatalog(context.Context) (museum.Catalog, error) {
	f.calls++
	return museum.Catalog{}, f.err
}

func testBreakerConfig() config.BreakerConfig {
	return config.BreakerConfig{
		Enabled:      true,
		MaxRequests:  1,
		Interval:     time.Minute,
		Timeout:      time.Minute,
		MinRequests:  3,
		FailureRatio: 0.5,
	}
}

func TestBreakerStore_OpensAfterFailures(t *testing.T) {
	t.Parallel()

	reader := &flakyReader{err: errors.New("disk gone")}
	store := NewBreakerStore(reader, testBreakerConfig())
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		if _, err := store.BuildingGeometry(ctx, "b"); err == nil || errors.Is(err, ErrUnavailable) {
			t.Fatalf("call %d error = %v, want the reader error", i, err)
		}
	}
	if store.State() != "open" {
		t.Fatalf("State() = %q, want open", store.State())
	}

	_, err := store.CriteriaCatalog(ctx)
	if !errors.Is(err, ErrUnavailable) {
		t.Errorf("CriteriaCatalog() error = %v, want ErrUnavailable", err)
	}
	if reader.calls != 3 {
		t.Errorf("reader calls = %d, want 3", reader.calls)
	}
}

func TestBreakerStore_IgnoredErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
	}{
		{"not found", fmt.Errorf("load: %w", spatial.ErrBuildingNotFound)},
		{"canceled", context.Canceled},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			reader := &flakyReader{err: tt.err}
			store := NewBreakerStore(reader, testBreakerConfig())
			for i := 0; i < 10; i++ {
				_, err := store.BuildingGeometry(context.Background(), "b")
				if !errors.Is(err, tt.err) {
					t.Fatalf("error = %v, want %v", err, tt.err)
				}
			}
			if store.State() != "closed" {
				t.Errorf("State() = %q, want closed", store.State())
			}
		})
	}
}

func TestBreakerStore_Disabled(t *testing.T) {
	t.Parallel()

	cfg := testBreakerConfig()
	cfg.Enabled = false
	store := NewBreakerStore(&flakyReader{err: errors.New("boom")}, cfg)
	for i := 0; i < 10; i++ {
		_, _ = store.ArtworksForProfile(context.Background(), "b", museum.Profile{})
	}
	if store.State() != "closed" {
		t.Errorf("State() = %q, want closed", store.State())
	}
}

func TestBreakerStore_PassesResults(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	db := setupTestDB(t)
	if err := db.ImportDataset(ctx, testDataset()); err != nil {
		t.Fatalf("ImportDataset() error = %v", err)
	}
	store := NewBreakerStore(db, testBreakerConfig())

	raw, err := store.BuildingGeometry(ctx, "two-rooms")
	if err != nil || len(raw.Rooms) != 2 {
		t.Errorf("BuildingGeometry() = %d rooms, %v", len(raw.Rooms), err)
	}
	arts, err := store.ArtworksForProfile(ctx, "two-rooms", museum.NewProfile(map[string]string{"age": "adult"}))
	if err != nil || len(arts) != 2 {
		t.Errorf("ArtworksForProfile() = %d artworks, %v", len(arts), err)
	}
	cat, err := store.CriteriaCatalog(ctx)
	if err != nil || len(cat.Categories) != 2 {
		t.Errorf("CriteriaCatalog() = %+v, %v", cat, err)
	}
}
