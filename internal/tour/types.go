// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package tour

import (
	"context"
	"time"

	"github.com/tomtom215/galleria/internal/connectivity"
	"github.com/tomtom215/galleria/internal/museum"
	"github.com/tomtom215/galleria/internal/optimizer"
	"github.com/tomtom215/galleria/internal/selection"
	"github.com/tomtom215/galleria/internal/spatial"
	"github.com/tomtom215/galleria/internal/waypoints"
)

// GeometrySource loads the raw drawings of a building. Unknown buildings
// yield an error wrapping spatial.ErrBuildingNotFound.
type GeometrySource interface {
	BuildingGeometry(ctx context.Context, buildingID string) (spatial.RawGeometry, error)
}

// CatalogSource loads the criteria catalog.
type CatalogSource interface {
	CriteriaCatalog(ctx context.Context) (museum.Catalog, error)
}

// Sources groups the collaborators the engine reads from.
type Sources struct {
	Geometry GeometrySource
	Artworks selection.Source
	Catalog  CatalogSource
}

// GraphCache stores immutable building graphs.
type GraphCache interface {
	Get(buildingID string) (*spatial.Graph, bool)
	Set(buildingID string, g *spatial.Graph)
	Invalidate(buildingID string)
}

// Request describes a tour to generate.
type Request struct {
	BuildingID string
	Profile    museum.Profile
	Duration   time.Duration
	Mode       connectivity.Mode

	// Seed makes the tour reproducible when set.
	Seed *int64
}

// ReasonCode explains why no tour could be generated.
type ReasonCode string

// Reason codes.
const (
	ReasonNoCandidates         ReasonCode = "NO_CANDIDATES"
	ReasonDisconnectedBuilding ReasonCode = "DISCONNECTED_BUILDING"
)

// Tour is a generated visit.
type Tour struct {
	ID          string            `json:"id"`
	BuildingID  string            `json:"building_id"`
	Profile     museum.Profile    `json:"profile"`
	Mode        connectivity.Mode `json:"mode"`
	Seed        *int64            `json:"seed,omitempty"`
	GeneratedAt time.Time         `json:"generated_at"`

	// Available is false when the building holds no usable artworks for
	// the profile; Reason and Message say why.
	Available bool       `json:"available"`
	Reason    ReasonCode `json:"reason,omitempty"`
	Message   string     `json:"message,omitempty"`

	Stops    []optimizer.Stop    `json:"stops"`
	Points   []waypoints.Point   `json:"points"`
	Segments []waypoints.Segment `json:"segments"`
	Summary  Summary             `json:"summary"`
}

// Summary holds the aggregate metrics of a tour.
type Summary struct {
	TotalDistanceMeters  float64 `json:"total_distance_meters"`
	TotalDurationMinutes float64 `json:"total_duration_minutes"`
	FloorsVisited        []int   `json:"floors_visited"`
	RoomsVisited         int     `json:"rooms_visited"`
	FloorChanges         int     `json:"floor_changes"`

	// SelectedCount artworks were chosen; DeliveredCount made it into the
	// route. Shortfall is the difference, listed in UnreachableArtworkIDs.
	SelectedCount         int      `json:"selected_count"`
	DeliveredCount        int      `json:"delivered_count"`
	Shortfall             int      `json:"shortfall"`
	UnreachableArtworkIDs []string `json:"unreachable_artwork_ids,omitempty"`
}
