// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package database

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"os"

	"github.com/goccy/go-json"

	"github.com/tomtom215/galleria/internal/logging"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
)

// Dataset is a self-contained export of museum content.
type Dataset struct {
	Criteria  []museum.Category `json:"criteria"`
	Buildings []BuildingDataset `json:"buildings"`
}

// BuildingDataset is one building with its artworks.
type BuildingDataset struct {
	spatial.RawGeometry
	Artworks []ArtworkRecord `json:"artworks"`
}

// ArtworkRecord is the stored form of an artwork; derived fields are
// left out.
type ArtworkRecord struct {
	ID        string            `json:"id"`
	Title     string            `json:"title"`
	Artist    string            `json:"artist"`
	Materials string            `json:"materials"`
	Narration string            `json:"narration"`
	Room      string            `json:"room"`
	Floor     int               `json:"floor"`
	X         float64           `json:"x"`
	Y         float64           `json:"y"`
	Criteria  map[string]string `json:"criteria"`
}

// Artwork converts the record.
func (r ArtworkRecord) Artwork() museum.Artwork {
	return museum.Artwork{
		ID:        r.ID,
		Title:     r.Title,
		Artist:    r.Artist,
		Materials: r.Materials,
		Narration: r.Narration,
		Position:  spatial.Position{X: r.X, Y: r.Y, Room: r.Room, Floor: r.Floor},
		Criteria:  museum.NewProfile(r.Criteria),
	}
}

// DecodeDataset reads a JSON dataset.
func DecodeDataset(r io.Reader) (*Dataset, error) {
	var ds Dataset
	if err := json.NewDecoder(r).Decode(&ds); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	return &ds, nil
}

// ImportFile imports the JSON dataset at path.
func (db *DB) ImportFile(ctx context.Context, path string) error {
	f, err := os.Open(path) //nolint:gosec // path comes from operator configuration
	if err != nil {
		return fmt.Errorf("open dataset: %w", err)
	}
	defer closeWithLog(f, "dataset file")

	ds, err := DecodeDataset(f)
	if err != nil {
		return err
	}
	return db.ImportDataset(ctx, ds)
}

// ImportDataset stores ds in one transaction. Buildings, artworks and
// categories present in ds replace their stored versions.
func (db *DB) ImportDataset(ctx context.Context, ds *Dataset) error {
	err := db.withTx(ctx, func(tx *sql.Tx) error {
		for i, c := range ds.Criteria {
			if err := saveCategory(ctx, tx, i, c); err != nil {
				return err
			}
		}
		for _, b := range ds.Buildings {
			if err := saveBuilding(ctx, tx, b.RawGeometry); err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM artwork_criteria WHERE building_id = ?`, b.BuildingID); err != nil {
				return fmt.Errorf("clear artwork criteria: %w", err)
			}
			if _, err := tx.ExecContext(ctx, `DELETE FROM artworks WHERE building_id = ?`, b.BuildingID); err != nil {
				return fmt.Errorf("clear artworks: %w", err)
			}
			for _, a := range b.Artworks {
				if err := saveArtwork(ctx, tx, b.BuildingID, a.Artwork()); err != nil {
					return err
				}
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("import dataset: %w", err)
	}

	artworks := 0
	for _, b := range ds.Buildings {
		artworks += len(b.Artworks)
	}
	logging.Info().
		Int("categories", len(ds.Criteria)).
		Int("buildings", len(ds.Buildings)).
		Int("artworks", artworks).
		Msg("dataset imported")
	return nil
}
