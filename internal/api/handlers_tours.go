// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package api

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/models"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/spatial"
	"github.com/tomtom215/galleria/internal/tour"
	"github.com/tomtom215/galleria/internal/validation"
)

// buildingID reads and checks the {buildingID} URL parameter.
func buildingID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := chi.URLParam(r, "buildingID")
	if err := validation.ValidateVar("building_id", id, "building_id"); err != nil {
		respondError(w, r, http.StatusBadRequest, models.ErrCodeValidation, err.Error(), nil)
		return "", false
	}
	return id, true
}

// CreateTour generates a tour.
//
//	POST /api/v1/buildings/{buildingID}/tours
//	{"profile": {"age": "adult"}, "duration_minutes": 45, "mode": "any", "seed": 7}
func (h *Handler) CreateTour(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := buildingID(w, r)
	if !ok {
		return
	}
	var body models.TourRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	t, err := h.engine.Generate(r.Context(), tour.Request{
		BuildingID: id,
		Profile:    museum.NewProfile(body.Profile),
		Duration:   time.Duration(body.DurationMinutes * float64(time.Minute)),
		Mode:       connectivity.Mode(body.Mode),
		Seed:       body.Seed,
	})
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, t, start)
}

// Route finds the walking route between two positions.
//
//	POST /api/v1/buildings/{buildingID}/route
func (h *Handler) Route(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := buildingID(w, r)
	if !ok {
		return
	}
	var body models.RouteRequest
	if !decodeJSON(w, r, &body) {
		return
	}

	route, err := h.engine.Route(r.Context(), id, toPosition(body.From), toPosition(body.To), connectivity.Mode(body.Mode))
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, toRouteResponse(route), start)
}

// BuildingGraph describes the loaded graph of a building, including the
// entities the loader rejected.
//
//	GET /api/v1/buildings/{buildingID}/graph
func (h *Handler) BuildingGraph(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := buildingID(w, r)
	if !ok {
		return
	}
	summary, err := h.engine.GraphSummary(r.Context(), id)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, summary, start)
}

// RefreshGraph reloads a building graph from the content store.
//
//	POST /api/v1/buildings/{buildingID}/graph/refresh
func (h *Handler) RefreshGraph(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	id, ok := buildingID(w, r)
	if !ok {
		return
	}
	g, err := h.engine.Refresh(r.Context(), id)
	if err != nil {
		respondEngineError(w, r, err)
		return
	}
	respondSuccess(w, r, http.StatusOK, g.Summary(), start)
}

// Criteria lists the criteria categories and their options.
//
//	GET /api/v1/criteria
func (h *Handler) Criteria(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	cat, err := h.engine.Catalog(r.Context())
	if err != nil {
		respondEngineError(w, r, err)
		return
	}

	resp := models.CriteriaResponse{Categories: make([]models.CriteriaCategory, len(cat.Categories))}
	for i, c := range cat.Categories {
		opts := c.Options
		if opts == nil {
			opts = []string{}
		}
		resp.Categories[i] = models.CriteriaCategory{ID: c.ID, Options: opts}
	}
	respondSuccess(w, r, http.StatusOK, resp, start)
}

func toPosition(p models.PositionInput) spatial.Position {
	return spatial.Position{X: p.X, Y: p.Y, Room: p.Room, Floor: p.Floor}
}

// toRouteResponse replaces the infinite distance of an unreachable route,
// which JSON cannot carry, with reachable=false and a null distance.
func toRouteResponse(route connectivity.Route) models.RouteResponse {
	resp := models.RouteResponse{
		Reachable: route.Reachable(),
		Waypoints: make([]models.RouteWaypoint, len(route.Waypoints)),
	}
	if resp.Reachable {
		d := route.Distance
		resp.DistanceMeters = &d
		resp.FloorChanges = route.FloorChanges()
	}
	for i, wp := range route.Waypoints {
		resp.Waypoints[i] = models.RouteWaypoint{
			Type:     string(wp.Type),
			EntityID: wp.EntityID,
			Kind:     string(wp.Kind),
			X:        wp.Position.X,
			Y:        wp.Position.Y,
			Room:     wp.Position.Room,
			Floor:    wp.Position.Floor,
		}
	}
	return resp
}
