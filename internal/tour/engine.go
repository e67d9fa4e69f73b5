// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package tour

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/sync/semaphore"

	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/logging"
	"github.com/tomtom215/galleria/internal/metrics"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/optimizer"
	"github.com/tomtom215/galleria/internal/selection"
	"github.com/tomtom215/galleria/internal/spatial"
	"github.com/tomtom215/galleria/internal/waypoints"
)

// ErrInvalidRequest is wrapped by errors caused by malformed requests.
var ErrInvalidRequest = errors.New("invalid tour request")

// Engine generates tours. It is safe for concurrent use.
type Engine struct {
	cfg     *Config
	sources Sources
	cache   GraphCache
	loader  *spatial.Loader
	sem     *semaphore.Weighted
	logger  zerolog.Logger
}

// NewEngine creates an engine. cache may be nil, in which case every
// request loads its own graph.
//
//nolint:gocritic // logger passed by value is acceptable for zerolog
func NewEngine(cfg *Config, sources Sources, cache GraphCache, logger zerolog.Logger) (*Engine, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	if sources.Geometry == nil || sources.Artworks == nil || sources.Catalog == nil {
		return nil, errors.New("tour engine needs geometry, artwork and catalog sources")
	}

	e := &Engine{
		cfg:     cfg,
		sources: sources,
		cache:   cache,
		loader:  spatial.NewLoader(cfg.Tolerances),
		logger:  logger.With().Str("component", "tour-engine").Logger(),
	}
	if n := cfg.Limits.MaxConcurrentGenerations; n > 0 {
		e.sem = semaphore.NewWeighted(int64(n))
	}
	return e, nil
}

// Config returns the engine configuration.
func (e *Engine) Config() *Config { return e.cfg }

// Generate builds a tour for req. Profile errors wrap *museum.ProfileError
// and unknown buildings wrap spatial.ErrBuildingNotFound. Missing or
// disconnected content is reported through Tour.Available.
func (e *Engine) Generate(ctx context.Context, req Request) (*Tour, error) {
	start := time.Now()

	if err := e.checkRequest(&req); err != nil {
		metrics.TourGenerations.WithLabelValues("invalid").Inc()
		return nil, err
	}

	if e.sem != nil {
		if err := e.sem.Acquire(ctx, 1); err != nil {
			return nil, fmt.Errorf("wait for generation slot: %w", err)
		}
		defer e.sem.Release(1)
	}
	if d := e.cfg.Limits.GenerationTimeout; d > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, d)
		defer cancel()
	}

	logger := logging.CtxWith(ctx).
		Str("component", "tour-engine").
		Str("building_id", req.BuildingID).
		Str("profile", req.Profile.Key()).
		Str("mode", string(req.Mode)).
		Logger()

	catalog, err := e.sources.Catalog.CriteriaCatalog(ctx)
	if err != nil {
		metrics.TourGenerations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("load criteria catalog: %w", err)
	}
	if err := catalog.Validate(req.Profile); err != nil {
		metrics.TourGenerations.WithLabelValues("invalid").Inc()
		return nil, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}

	graph, err := e.Graph(ctx, req.BuildingID)
	if err != nil {
		metrics.TourGenerations.WithLabelValues("error").Inc()
		return nil, err
	}

	rnd := NewRandomness(req.Seed)
	checker := connectivity.NewChecker(graph, req.Mode, e.cfg.Connectivity)
	metric := e.cfg.Connectivity.Metric
	source := annotatedSource{source: e.sources.Artworks, wordsPerMinute: e.cfg.WordsPerMinute}

	t := &Tour{
		ID:          uuid.New().String(),
		BuildingID:  req.BuildingID,
		Profile:     req.Profile,
		Mode:        req.Mode,
		Seed:        rnd.Seed,
		GeneratedAt: start.UTC(),
	}

	selector := selection.NewSelector(graph, req.Mode, metric, source, e.cfg.Selection)
	picked, err := selector.Select(ctx, req.Profile, req.Duration, rnd.Reproducible)
	switch {
	case errors.Is(err, selection.ErrNoCandidates):
		return e.unavailable(t, ReasonNoCandidates, err, start, logger), nil
	case errors.Is(err, selection.ErrDisconnectedBuilding):
		return e.unavailable(t, ReasonDisconnectedBuilding, err, start, logger), nil
	case err != nil:
		metrics.TourGenerations.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("select artworks: %w", err)
	}

	opt := optimizer.New(checker, e.cfg.Optimizer)
	plan := opt.Order(picked, rnd.Variety)
	route := waypoints.NewBuilder(checker, metric).Build(plan.Artworks())

	t.Available = true
	t.Stops = plan.Stops
	t.Points = route.Points
	t.Segments = route.Segments
	t.Summary = summarize(plan, route, len(picked), opt.PlanDuration(plan))

	metrics.TourGenerations.WithLabelValues("ok").Inc()
	metrics.TourGenerationDuration.Observe(time.Since(start).Seconds())
	metrics.TourArtworks.Observe(float64(len(t.Stops)))

	event := logger.Info()
	if t.Summary.Shortfall > 0 {
		event = logger.Warn().Strs("unreachable", t.Summary.UnreachableArtworkIDs)
	}
	event.
		Str("tour_id", t.ID).
		Int("stops", len(t.Stops)).
		Float64("distance_m", t.Summary.TotalDistanceMeters).
		Float64("duration_min", t.Summary.TotalDurationMinutes).
		Int("floor_changes", t.Summary.FloorChanges).
		Dur("elapsed", time.Since(start)).
		Msg("tour generated")

	return t, nil
}

func (e *Engine) checkRequest(req *Request) error {
	if req.BuildingID == "" {
		return fmt.Errorf("%w: building id is required", ErrInvalidRequest)
	}
	if req.Duration < 0 || req.Duration > e.cfg.Limits.MaxDuration {
		return fmt.Errorf("%w: duration must be between 0 and %s", ErrInvalidRequest, e.cfg.Limits.MaxDuration)
	}
	mode, err := connectivity.ParseMode(string(req.Mode))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	req.Mode = mode
	return nil
}

//nolint:gocritic // logger passed by value is acceptable for zerolog
func (e *Engine) unavailable(t *Tour, reason ReasonCode, err error, start time.Time, logger zerolog.Logger) *Tour {
	t.Available = false
	t.Reason = reason
	t.Message = err.Error()
	t.Summary.FloorsVisited = []int{}

	metrics.TourGenerations.WithLabelValues("unavailable").Inc()
	metrics.TourGenerationDuration.Observe(time.Since(start).Seconds())

	logger.Info().
		Str("tour_id", t.ID).
		Str("reason", string(reason)).
		Msg("no tour available")
	return t
}

func summarize(plan optimizer.Plan, route waypoints.Result, selected int, duration float64) Summary {
	rooms := make(map[string]struct{})
	for _, s := range plan.Stops {
		rooms[s.Artwork.Position.Room] = struct{}{}
	}
	floors := slices.Clone(route.Floors)
	slices.Sort(floors)
	if floors == nil {
		floors = []int{}
	}

	s := Summary{
		TotalDistanceMeters:  plan.TotalDistance(),
		TotalDurationMinutes: duration,
		FloorsVisited:        floors,
		RoomsVisited:         len(rooms),
		FloorChanges:         route.FloorChanges,
		SelectedCount:        selected,
		DeliveredCount:       len(plan.Stops),
		Shortfall:            len(plan.Unreachable),
	}
	for _, a := range plan.Unreachable {
		s.UnreachableArtworkIDs = append(s.UnreachableArtworkIDs, a.ID)
	}
	return s
}

// Graph returns the graph of a building, from the cache when possible.
func (e *Engine) Graph(ctx context.Context, buildingID string) (*spatial.Graph, error) {
	if e.cache != nil {
		if g, ok := e.cache.Get(buildingID); ok {
			return g, nil
		}
	}
	return e.Refresh(ctx, buildingID)
}

// Refresh drops the cached graph of a building, reloads it and stores the
// new graph. A failed reload leaves nothing cached.
func (e *Engine) Refresh(ctx context.Context, buildingID string) (*spatial.Graph, error) {
	if e.cache != nil {
		e.cache.Invalidate(buildingID)
	}
	raw, err := e.sources.Geometry.BuildingGeometry(ctx, buildingID)
	if err != nil {
		result := "error"
		if errors.Is(err, spatial.ErrBuildingNotFound) {
			result = "not_found"
		}
		metrics.GraphLoads.WithLabelValues(result).Inc()
		return nil, fmt.Errorf("load geometry for %s: %w", buildingID, err)
	}
	if raw.BuildingID == "" {
		raw.BuildingID = buildingID
	}
	g := e.loader.Load(raw)
	if e.cache != nil {
		e.cache.Set(buildingID, g)
	}
	metrics.GraphLoads.WithLabelValues("ok").Inc()

	s := g.Summary()
	e.logger.Info().
		Str("building_id", buildingID).
		Int("rooms", s.Rooms).
		Int("doors", s.Doors).
		Int("stairways", s.Stairways+s.Elevators).
		Int("rejected", len(s.Diagnostics)).
		Msg("building graph loaded")
	return g, nil
}

// Route finds the route between two positions of a building.
func (e *Engine) Route(ctx context.Context, buildingID string, from, to spatial.Position, mode connectivity.Mode) (connectivity.Route, error) {
	mode, err := connectivity.ParseMode(string(mode))
	if err != nil {
		return connectivity.Route{}, fmt.Errorf("%w: %w", ErrInvalidRequest, err)
	}
	g, err := e.Graph(ctx, buildingID)
	if err != nil {
		return connectivity.Route{}, err
	}
	return connectivity.NewChecker(g, mode, e.cfg.Connectivity).Route(from, to), nil
}

// GraphSummary describes the loaded graph of a building.
func (e *Engine) GraphSummary(ctx context.Context, buildingID string) (spatial.Summary, error) {
	g, err := e.Graph(ctx, buildingID)
	if err != nil {
		return spatial.Summary{}, err
	}
	return g.Summary(), nil
}

// Catalog returns the criteria catalog.
func (e *Engine) Catalog(ctx context.Context) (museum.Catalog, error) {
	return e.sources.Catalog.CriteriaCatalog(ctx)
}

// annotatedSource derives artwork type and narration duration on load.
type annotatedSource struct {
	source         selection.Source
	wordsPerMinute float64
}

func (s annotatedSource) ArtworksForProfile(ctx context.Context, buildingID string, profile museum.Profile) ([]museum.Artwork, error) {
	arts, err := s.source.ArtworksForProfile(ctx, buildingID, profile)
	if err != nil {
		return nil, err
	}
	for i := range arts {
		arts[i] = museum.Annotate(arts[i], s.wordsPerMinute)
	}
	return arts, nil
}
