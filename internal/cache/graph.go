// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package cache

import (
	"time"

	"github.com/tomtom215/galleria/internal/metrics"
	"github.com/tomtom215/galleria/internal/spatial"
)

// GraphCache caches loaded building graphs. Graphs are immutable, so a
// cached graph may be shared by concurrent requests.
type GraphCache struct {
	lru *LRU[*spatial.Graph]
}

// NewGraphCache creates a cache of at most maxGraphs graphs kept for ttl.
func NewGraphCache(maxGraphs int, ttl time.Duration) *GraphCache {
	return &GraphCache{lru: NewLRU[*spatial.Graph](maxGraphs, ttl)}
}

// Get returns the cached graph of a building.
func (c *GraphCache) Get(buildingID string) (*spatial.Graph, bool) {
	g, ok := c.lru.Get(buildingID)
	metrics.RecordGraphCache(ok)
	return g, ok
}

// Set caches the graph of a building.
func (c *GraphCache) Set(buildingID string, g *spatial.Graph) {
	c.lru.Add(buildingID, g)
	metrics.GraphCacheEntries.Set(float64(c.lru.Len()))
}

// Invalidate drops the graph of a building.
func (c *GraphCache) Invalidate(buildingID string) {
	c.lru.Remove(buildingID)
	metrics.GraphCacheEntries.Set(float64(c.lru.Len()))
}

// CleanupExpired drops expired graphs.
func (c *GraphCache) CleanupExpired() int {
	n := c.lru.CleanupExpired()
	metrics.GraphCacheEntries.Set(float64(c.lru.Len()))
	return n
}
