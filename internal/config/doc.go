// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

/*
Package config loads the service configuration.

Configuration is layered with koanf, later layers overriding earlier ones:

 1. Defaults from defaultConfig
 2. An optional YAML file: $CONFIG_PATH, then config.yaml, config.yml,
    /etc/galleria/config.yaml
 3. Environment variables listed in envMappings

Example file:

	server:
	  port: 8750
	database:
	  path: /var/lib/galleria/galleria.duckdb
	cache:
	  graph_ttl: 30m
	warm:
	  enabled: true
	  interval: 10m
	  buildings: [louvre, orsay]
	tour:
	  connectivity:
	    metric:
	      meters_per_pixel: 0.05
	      floor_penalty_meters: 20
	  limits:
	    max_concurrent_generations: 8

Comma-separated environment values fill list fields:

	CORS_ORIGINS=https://a.example,https://b.example
	WARM_BUILDINGS=louvre,orsay

Load validates the result and fails on the first invalid section.
*/
package config
