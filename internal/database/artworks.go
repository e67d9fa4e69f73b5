// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/tomtom215/galleria/internal/metrics"
	"github.com/tomtom215/galleria/internal/museum"
)

// ArtworksForProfile returns the artworks of a building whose criteria
// include every criterion of profile, ordered by id.
func (db *DB) ArtworksForProfile(ctx context.Context, buildingID string, profile museum.Profile) (arts []museum.Artwork, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "artworks", time.Since(start), err) }()

	criteria := profile.Criteria()
	if len(criteria) == 0 {
		return nil, nil
	}

	conds := make([]string, len(criteria))
	args := []any{buildingID, buildingID}
	for i, c := range criteria {
		conds[i] = "(category_id = ? AND option_value = ?)"
		args = append(args, c.Category, c.Option)
	}
	args = append(args, len(criteria))

	//nolint:gosec // only placeholders are interpolated
	query := `SELECT id, title, artist, materials, narration, room_id, floor, x, y
		FROM artworks
		WHERE building_id = ? AND id IN (
			SELECT artwork_id FROM artwork_criteria
			WHERE building_id = ? AND (` + strings.Join(conds, " OR ") + `)
			GROUP BY artwork_id
			HAVING COUNT(DISTINCT category_id) = ?)
		ORDER BY id`

	rows, err := db.conn.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query artworks: %w", err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		a, err := scanArtwork(rows)
		if err != nil {
			return nil, err
		}
		arts = append(arts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate artworks: %w", err)
	}

	if err := db.attachCriteria(ctx, buildingID, arts); err != nil {
		return nil, err
	}
	return arts, nil
}

func scanArtwork(rows *sql.Rows) (museum.Artwork, error) {
	var (
		a                                   museum.Artwork
		title, artist, materials, narration sql.NullString
	)
	if err := rows.Scan(&a.ID, &title, &artist, &materials, &narration,
		&a.Position.Room, &a.Position.Floor, &a.Position.X, &a.Position.Y); err != nil {
		return a, fmt.Errorf("scan artwork: %w", err)
	}
	a.Title, a.Artist = title.String, artist.String
	a.Materials, a.Narration = materials.String, narration.String
	return a, nil
}

// attachCriteria loads the full criteria of arts in one query.
func (db *DB) attachCriteria(ctx context.Context, buildingID string, arts []museum.Artwork) error {
	if len(arts) == 0 {
		return nil
	}
	index := make(map[string]int, len(arts))
	for i, a := range arts {
		index[a.ID] = i
	}

	rows, err := db.conn.QueryContext(ctx,
		`SELECT artwork_id, category_id, option_value FROM artwork_criteria WHERE building_id = ?`, buildingID)
	if err != nil {
		return fmt.Errorf("query artwork criteria: %w", err)
	}
	defer closeWithLog(rows, "rows")

	byArtwork := make(map[string]map[string]string, len(arts))
	for rows.Next() {
		var id, category, option string
		if err := rows.Scan(&id, &category, &option); err != nil {
			return fmt.Errorf("scan artwork criterion: %w", err)
		}
		if _, ok := index[id]; !ok {
			continue
		}
		if byArtwork[id] == nil {
			byArtwork[id] = make(map[string]string)
		}
		byArtwork[id][category] = option
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("iterate artwork criteria: %w", err)
	}

	for id, m := range byArtwork {
		arts[index[id]].Criteria = museum.NewProfile(m)
	}
	return nil
}

// SaveArtwork inserts or replaces an artwork and its criteria.
func (db *DB) SaveArtwork(ctx context.Context, buildingID string, a museum.Artwork) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("replace", "artworks", time.Since(start), err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		return saveArtwork(ctx, tx, buildingID, a)
	})
}

func saveArtwork(ctx context.Context, tx *sql.Tx, buildingID string, a museum.Artwork) error {
	if buildingID == "" || a.ID == "" {
		return errors.New("save artwork: building id and artwork id are required")
	}
	if a.Position.Room == "" {
		return fmt.Errorf("save artwork %s: %w", a.ID, errNoRoom)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM artwork_criteria WHERE building_id = ? AND artwork_id = ?`, buildingID, a.ID); err != nil {
		return fmt.Errorf("clear criteria of %s: %w", a.ID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM artworks WHERE building_id = ? AND id = ?`, buildingID, a.ID); err != nil {
		return fmt.Errorf("clear artwork %s: %w", a.ID, err)
	}

	p := a.Position
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO artworks (building_id, id, title, artist, materials, narration, room_id, floor, x, y)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		buildingID, a.ID, a.Title, a.Artist, a.Materials, a.Narration, p.Room, p.Floor, p.X, p.Y); err != nil {
		return fmt.Errorf("insert artwork %s: %w", a.ID, err)
	}

	for _, c := range a.Criteria.Criteria() {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO artwork_criteria (building_id, artwork_id, category_id, option_value) VALUES (?, ?, ?, ?)`,
			buildingID, a.ID, c.Category, c.Option); err != nil {
			return fmt.Errorf("insert criterion of %s: %w", a.ID, err)
		}
	}
	return nil
}

var errNoRoom = errors.New("artwork has no room")
