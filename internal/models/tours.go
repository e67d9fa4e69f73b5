// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package models

// TourRequest is the body of POST /api/v1/buildings/{id}/tours.
type TourRequest struct {
	// Profile maps criterion category to option, {"age": "adult"}.
	Profile map[string]string `json:"profile" validate:"required,min=1,dive,keys,required,endkeys,required"`

	// DurationMinutes is the time the visitor wants to spend.
	DurationMinutes float64 `json:"duration_minutes" validate:"gt=0,lte=480"`

	// Mode is "any" (default) or "elevator_only".
	Mode string `json:"mode" validate:"omitempty,travel_mode"`

	// Seed makes the tour reproducible.
	Seed *int64 `json:"seed,omitempty"`
}

// PositionInput locates a point inside a room.
type PositionInput struct {
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Room  string  `json:"room" validate:"required"`
	Floor int     `json:"floor" validate:"gte=0"`
}

// RouteRequest is the body of POST /api/v1/buildings/{id}/route.
type RouteRequest struct {
	From PositionInput `json:"from" validate:"required"`
	To   PositionInput `json:"to" validate:"required"`
	Mode string        `json:"mode" validate:"omitempty,travel_mode"`
}

// RouteWaypoint is a door or vertical link crossed by a route.
type RouteWaypoint struct {
	Type     string  `json:"type"`
	EntityID string  `json:"entity_id"`
	Kind     string  `json:"kind,omitempty"`
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	Room     string  `json:"room"`
	Floor    int     `json:"floor"`
}

// RouteResponse describes a route. DistanceMeters is null when the
// destination cannot be reached.
type RouteResponse struct {
	Reachable      bool            `json:"reachable"`
	DistanceMeters *float64        `json:"distance_meters"`
	FloorChanges   int             `json:"floor_changes"`
	Waypoints      []RouteWaypoint `json:"waypoints"`
}

// CriteriaCategory lists the options of one criterion category.
type CriteriaCategory struct {
	ID      string   `json:"id"`
	Options []string `json:"options"`
}

// CriteriaResponse is the criteria catalog.
type CriteriaResponse struct {
	Categories []CriteriaCategory `json:"categories"`
}
