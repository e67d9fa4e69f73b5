// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

/*
Package database stores museum content in DuckDB.

The store holds three kinds of data:

  - building drawings: floor_plans, rooms, door_markers, link_markers
  - artworks with their criteria: artworks, artwork_criteria
  - the criteria catalog: criteria_categories, criteria_options

Room outlines and door hints are kept as JSON arrays; the spatial loader
turns them into a validated graph, so the store never interprets geometry.

DB implements the tour engine sources (tour.GeometrySource,
selection.Source, tour.CatalogSource). BreakerStore wraps a DB with a
gobreaker circuit so a failing database is rejected fast instead of
tying up generation slots:

	db, err := database.New(&cfg.Database)
	store := database.NewBreakerStore(db, cfg.Breaker)
	engine, err := tour.NewEngine(&cfg.Tour, tour.Sources{
	    Geometry: store, Artworks: store, Catalog: store,
	}, graphs, logger)

ImportDataset loads a JSON dataset in one transaction, which is how
buildings are provisioned and how tests seed an in-memory database.
*/
package database
