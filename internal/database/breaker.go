// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package database

import (
	"context"
	"errors"
	"fmt"

	gobreaker "github.com/sony/gobreaker/v2"

	"github.com/tomtom215/galleria/internal/config"
	"github.com/tomtom215/galleria/internal/logging"
	"github.com/tomtom215/galleria/internal/metrics"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
)

// ErrUnavailable is returned while the circuit is open.
var ErrUnavailable = errors.New("content store unavailable")

// contentReader is the read side of DB.
type contentReader interface {
	BuildingGeometry(ctx context.Context, buildingID string) (spatial.RawGeometry, error)
	ArtworksForProfile(ctx context.Context, buildingID string, profile museum.Profile) ([]museum.Artwork, error)
	CriteriaCatalog(ctx context.Context) (museum.Catalog, error)
}

// BreakerStore guards content reads with a circuit breaker. Unknown
// buildings and cancelled requests do not count as failures.
type BreakerStore struct {
	store contentReader
	cb    *gobreaker.CircuitBreaker[interface{}]
	name  string
}

// NewBreakerStore wraps db. A disabled breaker config yields a breaker
// that never opens.
func NewBreakerStore(db contentReader, cfg config.BreakerConfig) *BreakerStore {
	name := "content-store"
	metrics.CircuitBreakerState.WithLabelValues(name).Set(0)

	logger := logging.WithComponent("circuit-breaker")

	settings := gobreaker.Settings{
		Name:        name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			if !cfg.Enabled || counts.Requests < cfg.MinRequests {
				return false
			}
			ratio := float64(counts.TotalFailures) / float64(counts.Requests)
			if ratio >= cfg.FailureRatio {
				logger.Warn().
					Uint32("failures", counts.TotalFailures).
					Float64("failure_ratio", ratio).
					Msg("opening circuit")
				return true
			}
			return false
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Info().Str("from", stateToString(from)).Str("to", stateToString(to)).Msg("circuit state changed")
			metrics.CircuitBreakerState.WithLabelValues(name).Set(stateToFloat(to))
			metrics.CircuitBreakerTransitions.WithLabelValues(name, stateToString(from), stateToString(to)).Inc()
		},
		IsSuccessful: func(err error) bool {
			return err == nil ||
				errors.Is(err, spatial.ErrBuildingNotFound) ||
				errors.Is(err, context.Canceled)
		},
	}

	return &BreakerStore{
		store: db,
		cb:    gobreaker.NewCircuitBreaker[interface{}](settings),
		name:  name,
	}
}

// State returns the circuit state name: closed, half-open or open.
func (s *BreakerStore) State() string {
	return stateToString(s.cb.State())
}

func (s *BreakerStore) execute(fn func() (interface{}, error)) (interface{}, error) {
	result, err := s.cb.Execute(fn)
	switch {
	case errors.Is(err, gobreaker.ErrOpenState), errors.Is(err, gobreaker.ErrTooManyRequests):
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, "rejected").Inc()
		return nil, fmt.Errorf("%w: %w", ErrUnavailable, err)
	case err != nil:
		metrics.CircuitBreakerRequests.WithLabelValues(s.name, "failure").Inc()
		return nil, err
	}
	metrics.CircuitBreakerRequests.WithLabelValues(s.name, "success").Inc()
	return result, nil
}

// castResult type-asserts a breaker result.
func castResult[T any](result interface{}, err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	typed, ok := result.(T)
	if !ok {
		return zero, fmt.Errorf("circuit breaker: unexpected result type %T", result)
	}
	return typed, nil
}

// BuildingGeometry implements tour.GeometrySource.
func (s *BreakerStore) BuildingGeometry(ctx context.Context, buildingID string) (spatial.RawGeometry, error) {
	return castResult[spatial.RawGeometry](s.execute(func() (interface{}, error) {
		return s.store.BuildingGeometry(ctx, buildingID)
	}))
}

// ArtworksForProfile implements selection.Source.
func (s *BreakerStore) ArtworksForProfile(ctx context.Context, buildingID string, profile museum.Profile) ([]museum.Artwork, error) {
	return castResult[[]museum.Artwork](s.execute(func() (interface{}, error) {
		return s.store.ArtworksForProfile(ctx, buildingID, profile)
	}))
}

// CriteriaCatalog implements tour.CatalogSource.
func (s *BreakerStore) CriteriaCatalog(ctx context.Context) (museum.Catalog, error) {
	return castResult[museum.Catalog](s.execute(func() (interface{}, error) {
		return s.store.CriteriaCatalog(ctx)
	}))
}

func stateToFloat(state gobreaker.State) float64 {
	switch state {
	case gobreaker.StateClosed:
		return 0
	case gobreaker.StateHalfOpen:
		return 1
	case gobreaker.StateOpen:
		return 2
	default:
		return -1
	}
}

func stateToString(state gobreaker.State) string {
	switch state {
	case gobreaker.StateClosed:
		return "closed"
	case gobreaker.StateHalfOpen:
		return "half-open"
	case gobreaker.StateOpen:
		return "open"
	default:
		return "unknown"
	}
}
