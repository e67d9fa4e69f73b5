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

	"github.com/tomtom215/galleria/internal/metrics"
	"github.com/tomtom215/galleria/internal/museum"
)

// CriteriaCatalog returns every category with its options, in display
// order.
func (db *DB) CriteriaCatalog(ctx context.Context) (cat museum.Catalog, err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("select", "criteria", time.Since(start), err) }()

	rows, err := db.conn.QueryContext(ctx, `
		SELECT c.id, o.option_value
		FROM criteria_categories c
		LEFT JOIN criteria_options o ON o.category_id = c.id
		ORDER BY c.ord, c.id, o.ord, o.option_value`)
	if err != nil {
		return cat, fmt.Errorf("query criteria: %w", err)
	}
	defer closeWithLog(rows, "rows")

	for rows.Next() {
		var (
			id     string
			option sql.NullString
		)
		if err := rows.Scan(&id, &option); err != nil {
			return cat, fmt.Errorf("scan criterion: %w", err)
		}
		n := len(cat.Categories)
		if n == 0 || cat.Categories[n-1].ID != id {
			cat.Categories = append(cat.Categories, museum.Category{ID: id, Options: []string{}})
			n++
		}
		if option.Valid {
			cat.Categories[n-1].Options = append(cat.Categories[n-1].Options, option.String)
		}
	}
	if err := rows.Err(); err != nil {
		return cat, fmt.Errorf("iterate criteria: %w", err)
	}
	return cat, nil
}

// SaveCategory inserts or replaces a category and its options. order
// places the category in the catalog.
func (db *DB) SaveCategory(ctx context.Context, order int, c museum.Category) (err error) {
	start := time.Now()
	defer func() { metrics.RecordDBQuery("replace", "criteria", time.Since(start), err) }()

	return db.withTx(ctx, func(tx *sql.Tx) error {
		return saveCategory(ctx, tx, order, c)
	})
}

func saveCategory(ctx context.Context, tx *sql.Tx, order int, c museum.Category) error {
	if c.ID == "" {
		return errors.New("save category: empty id")
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM criteria_options WHERE category_id = ?`, c.ID); err != nil {
		return fmt.Errorf("clear options of %s: %w", c.ID, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM criteria_categories WHERE id = ?`, c.ID); err != nil {
		return fmt.Errorf("clear category %s: %w", c.ID, err)
	}
	if _, err := tx.ExecContext(ctx, `INSERT INTO criteria_categories (id, ord) VALUES (?, ?)`, c.ID, order); err != nil {
		return fmt.Errorf("insert category %s: %w", c.ID, err)
	}
	for i, opt := range c.Options {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO criteria_options (category_id, option_value, ord) VALUES (?, ?, ?)`, c.ID, opt, i); err != nil {
			return fmt.Errorf("insert option %s/%s: %w", c.ID, opt, err)
		}
	}
	return nil
}
