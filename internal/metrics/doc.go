// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

/*
Package metrics defines the Prometheus collectors of the service.

All collectors are registered on the default registry through promauto and
exposed by the API at /metrics.

# Available Metrics

Spatial graph:
  - galleria_loader_entities_rejected_total{entity,reason}: drawings
    rejected while building a graph
  - galleria_graph_cache_hits_total, galleria_graph_cache_misses_total
  - galleria_graph_cache_entries: graphs currently cached
  - galleria_graph_loads_total{result}: loads performed by the engine or
    the warm-up service

Routing and tours:
  - galleria_route_searches_total{strategy,result}: strategy is one of
    same_room, direct_door, same_floor, multi_floor, invalid
  - galleria_tour_generations_total{result}: ok, unavailable, invalid, error
  - galleria_tour_generation_duration_seconds
  - galleria_tour_artworks: stops per delivered tour

Storage:
  - galleria_db_query_duration_seconds{operation,table}
  - galleria_db_query_errors_total{operation,table}
  - galleria_circuit_breaker_state{name}: 0 closed, 1 half-open, 2 open
  - galleria_circuit_breaker_requests_total{name,result}
  - galleria_circuit_breaker_transitions_total{name,from_state,to_state}

HTTP:
  - galleria_api_requests_total{method,route,status}
  - galleria_api_request_duration_seconds{method,route}
  - galleria_api_requests_in_flight
*/
package metrics
