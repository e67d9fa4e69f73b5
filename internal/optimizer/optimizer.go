// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package optimizer

import (
	"cmp"
	"errors"
	"fmt"
	"math/rand"
	"slices"
	"time"

	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
)

// Router computes route distances between positions.
type Router interface {
	Route(from, to spatial.Position) connectivity.Route
}

// Config holds the timing model and rank probabilities.
type Config struct {
	// ObservationMinutes is spent looking at each artwork besides narration.
	ObservationMinutes float64 `koanf:"observation_minutes"`

	// WalkingSpeed in meters per minute.
	WalkingSpeed float64 `koanf:"walking_speed_meters_per_minute"`

	// RankWeights are the probabilities of choosing the nearest, second
	// nearest, ... candidate. They are renormalized when fewer candidates
	// remain.
	RankWeights []float64 `koanf:"rank_weights"`
}

// DefaultConfig returns the default timing model.
func DefaultConfig() Config {
	return Config{
		ObservationMinutes: 1,
		WalkingSpeed:       60,
		RankWeights:        []float64{0.5, 0.3, 0.2},
	}
}

// Validate checks the configuration.
func (c Config) Validate() error {
	if c.ObservationMinutes < 0 {
		return fmt.Errorf("observation_minutes must be non-negative, got %v", c.ObservationMinutes)
	}
	if c.WalkingSpeed <= 0 {
		return fmt.Errorf("walking_speed_meters_per_minute must be positive, got %v", c.WalkingSpeed)
	}
	if len(c.RankWeights) == 0 {
		return errors.New("rank_weights must not be empty")
	}
	var sum float64
	for _, w := range c.RankWeights {
		if w < 0 {
			return fmt.Errorf("rank_weights must be non-negative, got %v", c.RankWeights)
		}
		sum += w
	}
	if sum <= 0 {
		return errors.New("rank_weights must not all be zero")
	}
	return nil
}

// Stop is one artwork of an ordered tour with the route length to the next
// stop (0 for the last).
type Stop struct {
	Artwork        museum.Artwork `json:"artwork"`
	DistanceToNext float64        `json:"distance_to_next_meters"`
}

// Plan is an ordered tour.
type Plan struct {
	Stops []Stop `json:"stops"`

	// Unreachable lists selected artworks left out because no route led to
	// them from the end of the tour.
	Unreachable []museum.Artwork `json:"unreachable,omitempty"`
}

// Artworks returns the artworks in visiting order.
func (p Plan) Artworks() []museum.Artwork {
	out := make([]museum.Artwork, len(p.Stops))
	for i, s := range p.Stops {
		out[i] = s.Artwork
	}
	return out
}

// TotalDistance sums the declared leg distances.
func (p Plan) TotalDistance() float64 {
	var total float64
	for _, s := range p.Stops {
		total += s.DistanceToNext
	}
	return total
}

// Optimizer orders artworks using route distances from a Router.
type Optimizer struct {
	router Router
	cfg    Config
}

// New creates an Optimizer.
func New(router Router, cfg Config) *Optimizer {
	return &Optimizer{router: router, cfg: cfg}
}

type ranked struct {
	index    int
	id       string
	distance float64
}

// Order arranges artworks into a tour. rng drives the start and rank
// choices.
func (o *Optimizer) Order(artworks []museum.Artwork, rng *rand.Rand) Plan {
	if len(artworks) == 0 {
		return Plan{}
	}
	remaining := slices.Clone(artworks)
	slices.SortFunc(remaining, func(a, b museum.Artwork) int { return cmp.Compare(a.ID, b.ID) })

	start := rng.Intn(len(remaining))
	current := remaining[start]
	remaining = slices.Delete(remaining, start, start+1)
	plan := Plan{Stops: []Stop{{Artwork: current}}}

	candidates := make([]ranked, 0, len(remaining))
	for len(remaining) > 0 {
		candidates = candidates[:0]
		for i, a := range remaining {
			r := o.router.Route(current.Position, a.Position)
			if !r.Reachable() {
				continue
			}
			candidates = append(candidates, ranked{index: i, id: a.ID, distance: r.Distance})
		}
		if len(candidates) == 0 {
			plan.Unreachable = remaining
			break
		}
		slices.SortFunc(candidates, func(a, b ranked) int {
			if c := cmp.Compare(a.distance, b.distance); c != 0 {
				return c
			}
			return cmp.Compare(a.id, b.id)
		})

		choice := candidates[o.pickRank(len(candidates), rng)]
		plan.Stops[len(plan.Stops)-1].DistanceToNext = choice.distance
		current = remaining[choice.index]
		remaining = slices.Delete(remaining, choice.index, choice.index+1)
		plan.Stops = append(plan.Stops, Stop{Artwork: current})
	}
	return plan
}

// pickRank draws a rank among the first n candidates.
func (o *Optimizer) pickRank(n int, rng *rand.Rand) int {
	weights := o.cfg.RankWeights[:min(n, len(o.cfg.RankWeights))]
	var sum float64
	for _, w := range weights {
		sum += w
	}
	if sum <= 0 {
		return 0
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

// TotalDistance returns the route length of visiting ordered in sequence.
// Unreachable legs contribute +Inf.
func (o *Optimizer) TotalDistance(ordered []museum.Artwork) float64 {
	var total float64
	for i := 0; i+1 < len(ordered); i++ {
		total += o.router.Route(ordered[i].Position, ordered[i+1].Position).Distance
	}
	return total
}

// EstimateDuration returns the visit time in minutes: narration, a fixed
// observation time per artwork and walking between stops.
func (o *Optimizer) EstimateDuration(ordered []museum.Artwork) float64 {
	return o.duration(ordered, o.TotalDistance(ordered))
}

// PlanDuration is EstimateDuration using the plan's declared leg distances.
func (o *Optimizer) PlanDuration(p Plan) float64 {
	return o.duration(p.Artworks(), p.TotalDistance())
}

func (o *Optimizer) duration(ordered []museum.Artwork, distance float64) float64 {
	var narration time.Duration
	for _, a := range ordered {
		narration += a.NarrationDuration
	}
	return narration.Minutes() +
		float64(len(ordered))*o.cfg.ObservationMinutes +
		distance/o.cfg.WalkingSpeed
}
