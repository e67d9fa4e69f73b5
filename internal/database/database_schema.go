// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package database

import (
	"context"
	"fmt"
)

var schema = []string{
	`CREATE TABLE IF NOT EXISTS floor_plans (
		building_id VARCHAR NOT NULL,
		id          VARCHAR NOT NULL,
		ord         INTEGER NOT NULL,
		PRIMARY KEY (building_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS rooms (
		building_id VARCHAR NOT NULL,
		id          VARCHAR NOT NULL,
		polygon_id  VARCHAR,
		name        VARCHAR,
		plan_id     VARCHAR NOT NULL,
		points      VARCHAR NOT NULL,
		PRIMARY KEY (building_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS door_markers (
		building_id VARCHAR NOT NULL,
		id          VARCHAR NOT NULL,
		plan_id     VARCHAR NOT NULL,
		x           DOUBLE NOT NULL,
		y           DOUBLE NOT NULL,
		room_hints  VARCHAR,
		PRIMARY KEY (building_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS link_markers (
		building_id VARCHAR NOT NULL,
		id          VARCHAR NOT NULL,
		plan_id     VARCHAR NOT NULL,
		group_id    VARCHAR,
		kind        VARCHAR,
		x           DOUBLE NOT NULL,
		y           DOUBLE NOT NULL,
		PRIMARY KEY (building_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS artworks (
		building_id VARCHAR NOT NULL,
		id          VARCHAR NOT NULL,
		title       VARCHAR,
		artist      VARCHAR,
		materials   VARCHAR,
		narration   VARCHAR,
		room_id     VARCHAR NOT NULL,
		floor       INTEGER NOT NULL,
		x           DOUBLE NOT NULL,
		y           DOUBLE NOT NULL,
		PRIMARY KEY (building_id, id)
	)`,
	`CREATE TABLE IF NOT EXISTS artwork_criteria (
		building_id  VARCHAR NOT NULL,
		artwork_id   VARCHAR NOT NULL,
		category_id  VARCHAR NOT NULL,
		option_value VARCHAR NOT NULL,
		PRIMARY KEY (building_id, artwork_id, category_id)
	)`,
	`CREATE TABLE IF NOT EXISTS criteria_categories (
		id  VARCHAR PRIMARY KEY,
		ord INTEGER NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS criteria_options (
		category_id  VARCHAR NOT NULL,
		option_value VARCHAR NOT NULL,
		ord          INTEGER NOT NULL,
		PRIMARY KEY (category_id, option_value)
	)`,
	`CREATE INDEX IF NOT EXISTS idx_artworks_room ON artworks (building_id, room_id)`,
	`CREATE INDEX IF NOT EXISTS idx_artwork_criteria_option ON artwork_criteria (building_id, category_id, option_value)`,
}

func (db *DB) createSchema(ctx context.Context) error {
	for _, stmt := range schema {
		if _, err := db.conn.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
