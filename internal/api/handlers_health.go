// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package api

import (
	"context"
	"net/http"
	"time"

	"github.com/tomtom215/galleria/internal/models"
)

const healthCheckTimeout = 2 * time.Second

// checks runs the dependency checks. ok is false when any fails.
func (h *Handler) checks(ctx context.Context) (checks map[string]string, ok bool) {
	checks = make(map[string]string, 2)
	ok = true

	if h.db != nil {
		ctx, cancel := context.WithTimeout(ctx, healthCheckTimeout)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			checks["database"] = "unreachable"
			ok = false
		} else {
			checks["database"] = "ok"
		}
	}
	if h.breaker != nil {
		state := h.breaker.State()
		checks["circuit_breaker"] = state
		if state == "open" {
			ok = false
		}
	}
	return checks, ok
}

// Health handles health check requests. It always answers 200; status
// is "degraded" when a dependency check fails.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	checks, ok := h.checks(r.Context())

	status := "healthy"
	if !ok {
		status = "degraded"
	}

	respondSuccess(w, r, http.StatusOK, models.HealthResponse{
		Status:        status,
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Checks:        checks,
	}, start)
}

// HealthLive handles liveness probe requests (Kubernetes-style)
// Returns 200 OK if the process is alive, regardless of dependencies
func (h *Handler) HealthLive(w http.ResponseWriter, r *http.Request) {
	respondSuccess(w, r, http.StatusOK, models.HealthResponse{
		Status:        "alive",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
	}, time.Now())
}

// HealthReady handles readiness probe requests (Kubernetes-style)
// Returns 200 OK only if the service is ready to handle traffic
func (h *Handler) HealthReady(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	checks, ok := h.checks(r.Context())

	resp := models.HealthResponse{
		Status:        "ready",
		Version:       h.version,
		UptimeSeconds: time.Since(h.startTime).Seconds(),
		Checks:        checks,
	}
	if !ok {
		resp.Status = "not_ready"
		respondJSON(w, http.StatusServiceUnavailable, &models.APIResponse{
			Status: "error",
			Data:   resp,
			Metadata: models.Metadata{
				Timestamp: time.Now().UTC(),
			},
			Error: &models.APIError{
				Code:    models.ErrCodeUnavailable,
				Message: "service not ready",
			},
		})
		return
	}
	respondSuccess(w, r, http.StatusOK, resp, start)
}
