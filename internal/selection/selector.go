// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package selection

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"slices"
	"time"

	"github.com/rs/zerolog"

	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/logging"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
)

// Expected outcomes for sparse content.
var (
	ErrNoCandidates         = errors.New("no artworks match the profile")
	ErrDisconnectedBuilding = errors.New("no connected region of the building holds matching artworks")
)

// Source loads the artworks of a building for a profile.
type Source interface {
	ArtworksForProfile(ctx context.Context, buildingID string, profile museum.Profile) ([]museum.Artwork, error)
}

// Selector chooses tour artworks inside one building graph.
type Selector struct {
	graph  *spatial.Graph
	mode   connectivity.Mode
	metric spatial.Metric
	source Source
	cfg    Config
	logger zerolog.Logger
}

// NewSelector creates a Selector. mode decides which vertical links join
// regions of the building.
func NewSelector(g *spatial.Graph, mode connectivity.Mode, metric spatial.Metric, source Source, cfg Config) *Selector {
	return &Selector{
		graph:  g,
		mode:   mode,
		metric: metric,
		source: source,
		cfg:    cfg,
		logger: logging.WithComponent("selection"),
	}
}

// Select loads candidates for profile and draws a set sized for target.
// The order of the result carries no meaning.
func (s *Selector) Select(ctx context.Context, profile museum.Profile, target time.Duration, rng *rand.Rand) ([]museum.Artwork, error) {
	loaded, err := s.source.ArtworksForProfile(ctx, s.graph.BuildingID(), profile)
	if err != nil {
		return nil, fmt.Errorf("load candidates: %w", err)
	}
	return s.SelectFrom(museum.FilterByProfile(loaded, profile), target, rng)
}

// SelectFrom runs the region filter and weighted draw over candidates that
// already match the profile.
func (s *Selector) SelectFrom(candidates []museum.Artwork, target time.Duration, rng *rand.Rand) ([]museum.Artwork, error) {
	if len(candidates) == 0 {
		return nil, ErrNoCandidates
	}

	pool := s.Reachable(candidates)
	if len(pool) == 0 {
		return nil, ErrDisconnectedBuilding
	}

	n := s.TargetCount(target, len(pool))
	picked := s.draw(pool, n, rng)

	s.logger.Debug().
		Str("building_id", s.graph.BuildingID()).
		Int("candidates", len(candidates)).
		Int("in_region", len(pool)).
		Int("target", n).
		Int("selected", len(picked)).
		Msg("artworks selected")

	return picked, nil
}

// Reachable keeps the candidates of the best connected region, sorted by id.
func (s *Selector) Reachable(candidates []museum.Artwork) []museum.Artwork {
	byRoom := make(map[string][]museum.Artwork)
	for _, a := range candidates {
		if room, ok := s.graph.Room(a.Position.Room); ok && room.Floor == a.Position.Floor {
			byRoom[a.Position.Room] = append(byRoom[a.Position.Room], a)
		}
	}

	var (
		best                 *connectivity.Component
		bestGround, bestSize int
	)
	for _, comp := range connectivity.Components(s.graph, s.mode) {
		if comp.Isolated() {
			continue
		}
		ground, size := 0, 0
		for _, id := range comp.Rooms {
			arts := byRoom[id]
			size += len(arts)
			if room, _ := s.graph.Room(id); len(arts) > 0 && room.Floor == 0 {
				ground++
			}
		}
		if best == nil || ground > bestGround || (ground == bestGround && size > bestSize) {
			c := comp
			best, bestGround, bestSize = &c, ground, size
		}
	}
	if best == nil || bestSize == 0 {
		return nil
	}

	var pool []museum.Artwork
	for _, id := range best.Rooms {
		pool = append(pool, byRoom[id]...)
	}
	slices.SortFunc(pool, func(a, b museum.Artwork) int { return cmp.Compare(a.ID, b.ID) })
	return pool
}

// TargetCount sizes a tour: at least MinArtworks, at most available.
func (s *Selector) TargetCount(target time.Duration, available int) int {
	n := int(math.Floor(target.Seconds() * s.cfg.FillRatio / s.cfg.SecondsPerArtwork()))
	n = max(n, s.cfg.MinArtworks)
	return min(n, available)
}

func (s *Selector) draw(pool []museum.Artwork, n int, rng *rand.Rand) []museum.Artwork {
	remaining := slices.Clone(pool)
	picked := make([]museum.Artwork, 0, n)

	rooms := make(map[string]bool)
	floors := make(map[int]bool)
	types := make(map[museum.ArtworkType]int)
	take := func(i int) {
		a := remaining[i]
		picked = append(picked, a)
		rooms[a.Position.Room] = true
		floors[a.Position.Floor] = true
		types[a.Type]++
		remaining = slices.Delete(remaining, i, i+1)
	}

	if n > 0 {
		take(s.firstPick(remaining, rng))
	}
	weights := make([]float64, 0, len(remaining))
	for len(picked) < n && len(remaining) > 0 {
		weights = weights[:0]
		for _, a := range remaining {
			weights = append(weights, s.weight(a, picked, rooms, floors, types))
		}
		take(sample(weights, rng))
	}
	return picked
}

// firstPick draws uniformly, from ground floor candidates when there are any.
func (s *Selector) firstPick(pool []museum.Artwork, rng *rand.Rand) int {
	var ground []int
	for i, a := range pool {
		if a.Position.Floor == 0 {
			ground = append(ground, i)
		}
	}
	if len(ground) > 0 {
		return ground[rng.Intn(len(ground))]
	}
	return rng.Intn(len(pool))
}

func (s *Selector) weight(a museum.Artwork, picked []museum.Artwork, rooms map[string]bool, floors map[int]bool, types map[museum.ArtworkType]int) float64 {
	w := visitedRoomWeight
	if !rooms[a.Position.Room] {
		w = unvisitedRoomWeight
	}
	if floors[a.Position.Floor] {
		w *= visitedFloorWeight
	} else {
		w *= unvisitedFloorWeight
	}
	if seen := types[a.Type]; seen == 0 {
		w *= unseenTypeWeight
	} else {
		w *= 1.0 / float64(seen+1)
	}

	var total float64
	for _, p := range picked {
		total += s.metric.Between(a.Position, p.Position)
	}
	spread := total / float64(len(picked)) / s.cfg.DistanceNormalizer
	return w * math.Max(0, math.Min(spread, s.cfg.MaxDistanceFactor))
}

// sample draws an index with probability proportional to weights, or
// uniformly when every weight is zero.
func sample(weights []float64, rng *rand.Rand) int {
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return rng.Intn(len(weights))
	}
	r := rng.Float64() * sum
	for i, w := range weights {
		r -= w
		if r < 0 {
			return i
		}
	}
	return len(weights) - 1
}
