// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

/*
Package main is the entry point for the Galleria server.

Galleria plans self-guided museum visits. Given a building, a visitor
profile and a time budget, it selects artworks that fit the profile, orders
them into a walkable route through the building's rooms, doors, stairs and
lifts, and returns the result as floor-tagged waypoints and segments.

# Application Architecture

Long-running components run under a Suture v4 supervisor tree:

	RootSupervisor ("galleria")
	├── DataSupervisor ("data-layer")
	│   └── Graph warm-up service (optional, WARM_ENABLED=true)
	└── APISupervisor ("api-layer")
	    └── HTTP Server

Component initialization order:

 1. Configuration: Koanf v2 with environment variables and config files
 2. Logging: zerolog with JSON/console output modes
 3. Database: DuckDB content store, optionally seeded from a JSON dataset
 4. Circuit breaker: gobreaker around catalog reads
 5. Graph cache: TTL-bounded LRU of loaded building graphs
 6. Tour engine: selection, optimization and waypoint generation
 7. Supervisor Tree: Suture v4 process supervision
 8. HTTP Server: Chi router with middleware stack

# Configuration

Configuration is layered (highest priority wins):

  - Environment variables
  - Config file (CONFIG_PATH, ./config.yaml or /etc/galleria/config.yaml)
  - Built-in defaults

Common variables:

	HTTP_PORT=8750                 listen port
	DUCKDB_PATH=/data/galleria.duckdb
	SEED_FILE=/data/museum.json    dataset imported at startup
	LOG_LEVEL=info                 trace, debug, info, warn, error
	LOG_FORMAT=json                json or console
	WARM_ENABLED=true              keep building graphs warm
	WARM_BUILDINGS=louvre-denon,louvre-sully
	WALKING_SPEED=50               meters per minute

# Signal Handling

SIGINT and SIGTERM cancel the root context. The HTTP server drains
in-flight requests within HTTP_SHUTDOWN_TIMEOUT, then the database closes.

# Example Usage

	export DUCKDB_PATH=/tmp/galleria.duckdb
	export SEED_FILE=./testdata/museum.json
	export LOG_FORMAT=console
	./galleria

	curl -X POST localhost:8750/api/v1/buildings/two-rooms/tours \
	  -d '{"profile":{"age":"adult","interest":"painting"},"duration_minutes":45}'
*/
package main
