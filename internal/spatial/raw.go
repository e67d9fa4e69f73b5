// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package spatial

import (
	"errors"

	"github.com/paulmach/orb"
)

// ErrBuildingNotFound is returned by geometry sources for unknown buildings.
var ErrBuildingNotFound = errors.New("building not found")

// RawGeometry is the unvalidated drawing data of one building.
type RawGeometry struct {
	BuildingID string    `json:"building_id"`
	Plans      []RawPlan `json:"plans"`
	Rooms      []RawRoom `json:"rooms"`
	Doors      []RawDoor `json:"doors"`
	Links      []RawLink `json:"links"`
}

// RawPlan is one architectural plan. Plans sorted by Order give floor
// indexes starting at 0.
type RawPlan struct {
	ID    string `json:"id"`
	Order int    `json:"order"`
}

// RawRoom is a room outline drawn on a plan.
type RawRoom struct {
	ID        string      `json:"id"`
	PolygonID string      `json:"polygon_id,omitempty"`
	Name      string      `json:"name"`
	PlanID    string      `json:"plan_id"`
	Points    []orb.Point `json:"points"`
}

// RawDoor is a door marker. Hints may reference room or polygon ids.
type RawDoor struct {
	ID        string   `json:"id"`
	PlanID    string   `json:"plan_id"`
	X         float64  `json:"x"`
	Y         float64  `json:"y"`
	RoomHints []string `json:"room_hints,omitempty"`
}

// RawLink is one floor's marker of a stair or elevator group.
type RawLink struct {
	ID      string  `json:"id"`
	PlanID  string  `json:"plan_id"`
	GroupID string  `json:"group_id"`
	Kind    string  `json:"kind"`
	X       float64 `json:"x"`
	Y       float64 `json:"y"`
}
