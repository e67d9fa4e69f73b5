// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package cache holds in-memory caches with LRU eviction and TTL expiry.
//
// LRU is a generic, mutex-guarded cache backed by a map and a doubly-linked
// list, giving O(1) Get, Add and eviction. GraphCache specializes it for
// immutable building graphs and reports hits and misses to Prometheus:
//
//	graphs := cache.NewGraphCache(64, 30*time.Minute)
//	engine, err := tour.NewEngine(cfg, sources, graphs, logger)
//
// Expired entries are dropped lazily on access and in bulk by
// CleanupExpired, which the graph warm-up service calls on every tick.
package cache
