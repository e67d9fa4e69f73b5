// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package services

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/galleria/internal/logging"
	"github.com/tomtom215/galleria/internal/spatial"
)

// GraphRefresher reloads building graphs; satisfied by *tour.Engine.
type GraphRefresher interface {
	Refresh(ctx context.Context, buildingID string) (*spatial.Graph, error)
}

// CacheCleaner evicts expired entries; satisfied by *cache.GraphCache.
type CacheCleaner interface {
	CleanupExpired() int
}

// GraphWarmService reloads a fixed set of building graphs on every tick so
// tour requests for them never pay the loading cost. Expired cache entries
// are evicted on the same tick.
type GraphWarmService struct {
	refresher GraphRefresher
	cleaner   CacheCleaner
	buildings []string
	interval  time.Duration
	name      string
	logger    zerolog.Logger
}

// NewGraphWarmService creates the warm-up service. cleaner may be nil.
func NewGraphWarmService(refresher GraphRefresher, cleaner CacheCleaner, buildings []string, interval time.Duration) *GraphWarmService {
	if interval <= 0 {
		interval = 10 * time.Minute
	}
	return &GraphWarmService{
		refresher: refresher,
		cleaner:   cleaner,
		buildings: buildings,
		interval:  interval,
		name:      "graph-warm",
		logger:    logging.WithService("graph-warm"),
	}
}

// Serve implements suture.Service. A building that fails to load is
// logged and retried next tick; it never stops the service.
func (s *GraphWarmService) Serve(ctx context.Context) error {
	s.warm(ctx)

	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			s.warm(ctx)
		}
	}
}

// warm runs one pass and reports how many buildings loaded.
func (s *GraphWarmService) warm(ctx context.Context) int {
	start := time.Now()
	evicted := 0
	if s.cleaner != nil {
		evicted = s.cleaner.CleanupExpired()
	}

	loaded := 0
	for _, id := range s.buildings {
		if ctx.Err() != nil {
			break
		}
		if _, err := s.refresher.Refresh(ctx, id); err != nil {
			event := s.logger.Warn()
			if errors.Is(err, spatial.ErrBuildingNotFound) {
				event = s.logger.Error()
			}
			event.Err(err).Str("building_id", id).Msg("graph warm-up failed")
			continue
		}
		loaded++
	}

	s.logger.Info().
		Int("loaded", loaded).
		Int("configured", len(s.buildings)).
		Int("evicted", evicted).
		Dur("took", time.Since(start)).
		Msg("graph warm-up pass finished")
	return loaded
}

// String implements fmt.Stringer; suture uses it in log messages.
func (s *GraphWarmService) String() string {
	return s.name
}
