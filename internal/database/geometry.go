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
	"time"

	"github.com/goccy/go-json"

	"github.com/tomtom215/galleria/internal/metrics"
	"github.com/tomtom215/galleria/internal/spatial"
)

// BuildingGeometry returns the stored drawings of a building. A building
// without floor plans is unknown.
func (db *DB) BuildingGeometry(ctx context.Context, buildingID string) (raw spatial.RawGeometry, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "building_geometry", time.Since(start), err) }()

	raw.BuildingID = buildingID

	if raw.Plans, err = db.plans(ctx, buildingID); err != nil {
		return raw, err
	}
	if len(raw.Plans) == 0 {
		return raw, fmt.Errorf("building %q: %w", buildingID, spatial.ErrBuildingNotFound)
	}
	if raw.Rooms, err = db.rooms(ctx, buildingID); err != nil {
		return raw, err
	}
	if raw.Doors, err = db.doors(ctx, buildingID); err != nil {
		return raw, err
	}
	if raw.Links, err = db.links(ctx, buildingID); err != nil {
		return raw, err
	}
	return raw, nil
}

func (db *DB) plans(ctx context.Context, buildingID string) ([]spatial.RawPlan, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, ord FROM floor_plans WHERE building_id = ? ORDER BY ord, id`, buildingID)
	if err != nil {
		return nil, fmt.Errorf("query floor plans: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var out []spatial.RawPlan
	for rows.Next() {
		var p spatial.RawPlan
		if err := rows.Scan(&p.ID, &p.Order); err != nil {
			return nil, fmt.Errorf("scan floor plan: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}

func (db *DB) rooms(ctx context.Context, buildingID string) ([]spatial.RawRoom, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, polygon_id, name, plan_id, points FROM rooms WHERE building_id = ? ORDER BY id`, buildingID)
	if err != nil {
		return nil, fmt.Errorf("query rooms: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var out []spatial.RawRoom
	for rows.Next() {
		var (
			r               spatial.RawRoom
			polygonID, name sql.NullString
			points          string
		)
		if err := rows.Scan(&r.ID, &polygonID, &name, &r.PlanID, &points); err != nil {
			return nil, fmt.Errorf("scan room: %w", err)
		}
		r.PolygonID, r.Name = polygonID.String, name.String
		// Malformed outlines are handed to the loader empty and rejected
		// there with a diagnostic.
		if err := json.Unmarshal([]byte(points), &r.Points); err != nil {
			r.Points = nil
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (db *DB) doors(ctx context.Context, buildingID string) ([]spatial.RawDoor, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, plan_id, x, y, room_hints FROM door_markers WHERE building_id = ? ORDER BY id`, buildingID)
	if err != nil {
		return nil, fmt.Errorf("query door markers: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var out []spatial.RawDoor
	for rows.Next() {
		var (
			d     spatial.RawDoor
			hints sql.NullString
		)
		if err := rows.Scan(&d.ID, &d.PlanID, &d.X, &d.Y, &hints); err != nil {
			return nil, fmt.Errorf("scan door marker: %w", err)
		}
		if hints.Valid && hints.String != "" {
			if err := json.Unmarshal([]byte(hints.String), &d.RoomHints); err != nil {
				d.RoomHints = nil
			}
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

func (db *DB) links(ctx context.Context, buildingID string) ([]spatial.RawLink, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, plan_id, group_id, kind, x, y FROM link_markers WHERE building_id = ? ORDER BY id`, buildingID)
	if err != nil {
		return nil, fmt.Errorf("query link markers: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var out []spatial.RawLink
	for rows.Next() {
		var (
			l           spatial.RawLink
			group, kind sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.PlanID, &group, &kind, &l.X, &l.Y); err != nil {
			return nil, fmt.Errorf("scan link marker: %w", err)
		}
		l.GroupID, l.Kind = group.String, kind.String
		out = append(out, l)
	}
	return out, rows.Err()
}

// Buildings returns the ids of all stored buildings.
func (db *DB) Buildings(ctx context.Context) ([]string, error) {
	rows, err := db.conn.QueryContext(ctx,
		`SELECT DISTINCT building_id FROM floor_plans ORDER BY building_id`)
	if err != nil {
		return nil, fmt.Errorf("query buildings: %w", err)
	}
	defer closeWithLog(rows, "rows")

	var out []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan building: %w", err)
		}
		out = append(out, id)
	}
	return out, rows.Err()
}

// SaveBuilding replaces the drawings of raw.BuildingID.
func (db *DB) SaveBuilding(ctx context.Context, raw spatial.RawGeometry) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("replace", "building_geometry", time.Since(start), err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		return saveBuilding(ctx, tx, raw)
	})
}

func saveBuilding(ctx context.Context, tx *sql.Tx, raw spatial.RawGeometry) error {
	id := raw.BuildingID
	if id == "" {
		return errors.New("save building: empty building id")
	}
	for _, table := range []string{"floor_plans", "rooms", "door_markers", "link_markers"} {
		//nolint:gosec // table names come from the fixed list above
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table+" WHERE building_id = ?", id); err != nil {
			return fmt.Errorf("clear %s: %w", table, err)
		}
	}

	for _, p := range raw.Plans {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO floor_plans (building_id, id, ord) VALUES (?, ?, ?)`, id, p.ID, p.Order); err != nil {
			return fmt.Errorf("insert floor plan %s: %w", p.ID, err)
		}
	}
	for _, r := range raw.Rooms {
		points, err := json.Marshal(orEmpty(r.Points))
		if err != nil {
			return fmt.Errorf("encode room %s: %w", r.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO rooms (building_id, id, polygon_id, name, plan_id, points) VALUES (?, ?, ?, ?, ?, ?)`,
			id, r.ID, r.PolygonID, r.Name, r.PlanID, string(points)); err != nil {
			return fmt.Errorf("insert room %s: %w", r.ID, err)
		}
	}
	for _, d := range raw.Doors {
		hints, err := json.Marshal(orEmpty(d.RoomHints))
		if err != nil {
			return fmt.Errorf("encode door %s: %w", d.ID, err)
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO door_markers (building_id, id, plan_id, x, y, room_hints) VALUES (?, ?, ?, ?, ?, ?)`,
			id, d.ID, d.PlanID, d.X, d.Y, string(hints)); err != nil {
			return fmt.Errorf("insert door marker %s: %w", d.ID, err)
		}
	}
	for _, l := range raw.Links {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO link_markers (building_id, id, plan_id, group_id, kind, x, y) VALUES (?, ?, ?, ?, ?, ?, ?)`,
			id, l.ID, l.PlanID, l.GroupID, l.Kind, l.X, l.Y); err != nil {
			return fmt.Errorf("insert link marker %s: %w", l.ID, err)
		}
	}
	return nil
}

func orEmpty[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

func (db *DB) withTx(ctx context.Context, fn func(*sql.Tx) error) error {
	tx, err := db.conn.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}
