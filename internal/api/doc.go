// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

/*
Package api exposes tour generation over HTTP using the chi router.

Endpoints:

	GET  /api/v1/health            overall status
	GET  /api/v1/health/live       liveness probe
	GET  /api/v1/health/ready      readiness probe (content store reachable)
	GET  /api/v1/criteria          criteria catalog
	GET  /api/v1/buildings/{buildingID}/graph          loaded graph summary
	POST /api/v1/buildings/{buildingID}/graph/refresh  reload the graph
	POST /api/v1/buildings/{buildingID}/tours          generate a tour
	POST /api/v1/buildings/{buildingID}/route          route two positions
	GET  /metrics                  Prometheus metrics

Every JSON response uses the models.APIResponse envelope. Errors carry a
machine-readable code:

	VALIDATION_ERROR     400  malformed body or out of range values
	INVALID_PROFILE      400  profile does not fit the criteria catalog
	NOT_FOUND            404  unknown building
	RATE_LIMIT_EXCEEDED  429
	SERVICE_UNAVAILABLE  503  content store circuit open or timeout
	INTERNAL_ERROR       500

A tour that cannot be built because no artwork matches, or because the
matches are unreachable, is not an error: it is returned with 200 and
available=false plus a reason code.
*/
package api
