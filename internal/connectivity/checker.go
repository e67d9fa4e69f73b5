// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package connectivity

import (
	"cmp"
	"fmt"
	"math"

	"github.com/tomtom215/galleria/internal/metrics"
	"github.com/tomtom215/galleria/internal/spatial"
)

// DefaultTransitionCost is the cost in meters charged for passing one door
// or boarding one stairway.
const DefaultTransitionCost = 5.0

// Search strategies reported in metrics.
const (
	strategySameRoom   = "same_room"
	strategyDirect     = "direct_door"
	strategySameFloor  = "same_floor"
	strategyMultiFloor = "multi_floor"
)

// Config holds the cost model of the Checker.
type Config struct {
	Metric spatial.Metric `koanf:"metric"`

	// TransitionCost is charged per door and per stairway traversal.
	TransitionCost float64 `koanf:"transition_cost_meters"`
}

// DefaultConfig returns the default cost model.
func DefaultConfig() Config {
	return Config{
		Metric:         spatial.DefaultMetric(),
		TransitionCost: DefaultTransitionCost,
	}
}

// Validate checks the cost model.
func (c Config) Validate() error {
	if err := c.Metric.Validate(); err != nil {
		return err
	}
	if c.TransitionCost < 0 || math.IsInf(c.TransitionCost, 0) || math.IsNaN(c.TransitionCost) {
		return fmt.Errorf("transition_cost_meters must be non-negative, got %v", c.TransitionCost)
	}
	return nil
}

// Checker answers route queries over one immutable graph. It holds no
// mutable state and may be shared between goroutines.
type Checker struct {
	graph *spatial.Graph
	mode  Mode
	cfg   Config
}

// NewChecker creates a Checker for g restricted to mode.
func NewChecker(g *spatial.Graph, mode Mode, cfg Config) *Checker {
	if mode == "" {
		mode = ModeAny
	}
	return &Checker{graph: g, mode: mode, cfg: cfg}
}

// Mode returns the travel mode of the checker.
func (c *Checker) Mode() Mode { return c.mode }

// Metric returns the distance metric used by the checker.
func (c *Checker) Metric() spatial.Metric { return c.cfg.Metric }

// Route returns the distance between from and to and the waypoints passed
// on the way. Unknown rooms and disconnected rooms yield Unreachable.
func (c *Checker) Route(from, to spatial.Position) Route {
	if !c.onFloor(from) || !c.onFloor(to) {
		metrics.RouteSearches.WithLabelValues("invalid", "unreachable").Inc()
		return Unreachable()
	}
	if from.Room == to.Room && from.Floor == to.Floor {
		metrics.RouteSearches.WithLabelValues(strategySameRoom, "found").Inc()
		return Route{Distance: c.cfg.Metric.Planar(from, to)}
	}

	// Search from a canonical endpoint so both directions walk the same path.
	if comparePositions(to, from) < 0 {
		r := c.search(to, from)
		if !r.Reachable() {
			return r
		}
		return r.reversed()
	}
	return c.search(from, to)
}

func (c *Checker) onFloor(p spatial.Position) bool {
	r, ok := c.graph.Room(p.Room)
	return ok && r.Floor == p.Floor
}

func (c *Checker) search(from, to spatial.Position) Route {
	if from.Floor == to.Floor {
		if r, ok := c.direct(from, to); ok {
			metrics.RouteSearches.WithLabelValues(strategyDirect, "found").Inc()
			return r
		}
		if path, ok := c.bfs(from, to, false); ok {
			metrics.RouteSearches.WithLabelValues(strategySameFloor, "found").Inc()
			return c.assemble(from, to, path)
		}
	}
	if path, ok := c.bfs(from, to, true); ok {
		metrics.RouteSearches.WithLabelValues(strategyMultiFloor, "found").Inc()
		return c.assemble(from, to, path)
	}
	metrics.RouteSearches.WithLabelValues(strategyMultiFloor, "unreachable").Inc()
	return Unreachable()
}

// direct looks for a door joining the two rooms. When several exist the
// cheapest wins, ties going to the lowest door id.
func (c *Checker) direct(from, to spatial.Position) (Route, bool) {
	best := Route{Distance: math.Inf(1)}
	for _, d := range c.graph.DoorsOf(from.Room) {
		if d.Other(from.Room) != to.Room {
			continue
		}
		wp := d.Position()
		cost := c.cfg.Metric.Planar(from, wp) + c.cfg.Metric.Planar(wp, to)
		if cost < best.Distance {
			best = Route{
				Distance:  cost,
				Waypoints: []Waypoint{{Type: WaypointDoor, Position: wp, EntityID: d.ID}},
			}
		}
	}
	return best, best.Reachable()
}

type node struct {
	room  string
	floor int
}

type edge struct {
	to        node
	cost      float64
	waypoints []Waypoint
}

type via struct {
	from node
	edge edge
}

func (c *Checker) neighbors(n node, vertical bool) []edge {
	var out []edge
	for _, d := range c.graph.DoorsOf(n.room) {
		if d.Floor != n.floor {
			continue
		}
		out = append(out, edge{
			to:        node{room: d.Other(n.room), floor: d.Floor},
			cost:      c.cfg.TransitionCost,
			waypoints: []Waypoint{{Type: WaypointDoor, Position: d.Position(), EntityID: d.ID}},
		})
	}
	if !vertical {
		return out
	}
	for _, s := range c.graph.StairwaysOf(n.room) {
		if !c.mode.Allows(s.Kind) || !s.Touches(n.room, n.floor) {
			continue
		}
		entry, exit := s.From(n.room, n.floor)
		out = append(out, edge{
			to:   node{room: exit.Room, floor: exit.Floor},
			cost: c.cfg.Metric.FloorChange(entry.Floor, exit.Floor) + c.cfg.TransitionCost,
			waypoints: []Waypoint{
				{Type: WaypointStairway, Position: entry, EntityID: s.ID, Kind: s.Kind},
				{Type: WaypointStairwayExit, Position: exit, EntityID: s.ID, Kind: s.Kind},
			},
		})
	}
	return out
}

// bfs returns the edges of a fewest-transition path. Stairways are only
// followed when vertical is set.
func (c *Checker) bfs(from, to spatial.Position, vertical bool) ([]edge, bool) {
	start := node{room: from.Room, floor: from.Floor}
	goal := node{room: to.Room, floor: to.Floor}

	visited := map[node]bool{start: true}
	parent := make(map[node]via)
	queue := []node{start}

	for len(queue) > 0 && !visited[goal] {
		cur := queue[0]
		queue = queue[1:]
		for _, e := range c.neighbors(cur, vertical) {
			if visited[e.to] {
				continue
			}
			visited[e.to] = true
			parent[e.to] = via{from: cur, edge: e}
			queue = append(queue, e.to)
		}
	}
	if !visited[goal] {
		return nil, false
	}

	var path []edge
	for n := goal; n != start; n = parent[n].from {
		path = append(path, parent[n].edge)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path, true
}

func (c *Checker) assemble(from, to spatial.Position, path []edge) Route {
	var (
		waypoints []Waypoint
		internal  float64
	)
	for _, e := range path {
		waypoints = append(waypoints, e.waypoints...)
		internal += e.cost
	}
	first := waypoints[0].Position
	last := waypoints[len(waypoints)-1].Position
	return Route{
		Distance:  c.cfg.Metric.Planar(from, first) + internal + c.cfg.Metric.Planar(last, to),
		Waypoints: waypoints,
	}
}

func comparePositions(a, b spatial.Position) int {
	if c := cmp.Compare(a.Room, b.Room); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Floor, b.Floor); c != 0 {
		return c
	}
	if c := cmp.Compare(a.X, b.X); c != 0 {
		return c
	}
	return cmp.Compare(a.Y, b.Y)
}
