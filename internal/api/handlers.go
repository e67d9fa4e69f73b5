// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package api

import (
	"context"
	"time"

	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
	"github.com/tomtom215/galleria/internal/tour"
)

// TourEngine is the part of tour.Engine the handlers use.
type TourEngine interface {
	Generate(ctx context.Context, req tour.Request) (*tour.Tour, error)
	Route(ctx context.Context, buildingID string, from, to spatial.Position, mode connectivity.Mode) (connectivity.Route, error)
	GraphSummary(ctx context.Context, buildingID string) (spatial.Summary, error)
	Refresh(ctx context.Context, buildingID string) (*spatial.Graph, error)
	Catalog(ctx context.Context) (museum.Catalog, error)
}

// Pinger reports whether the content database answers.
type Pinger interface {
	Ping(ctx context.Context) error
}

// BreakerState reports the content store circuit state.
type BreakerState interface {
	State() string
}

// Handler contains dependencies for API handlers.
//
// Handler methods are split across files:
//   - handlers.go: Handler struct and constructor (this file)
//   - handlers_helpers.go: response, decoding and error mapping helpers
//   - handlers_health.go: health and probe endpoints
//   - handlers_tours.go: tour, route, graph and criteria endpoints
type Handler struct {
	engine    TourEngine
	db        Pinger
	breaker   BreakerState
	version   string
	startTime time.Time
}

// NewHandler creates the API handler. db and breaker may be nil, in which
// case the corresponding health checks are skipped.
func NewHandler(engine TourEngine, db Pinger, breaker BreakerState, version string) *Handler {
	return &Handler{
		engine:    engine,
		db:        db,
		breaker:   breaker,
		version:   version,
		startTime: time.Now(),
	}
}
