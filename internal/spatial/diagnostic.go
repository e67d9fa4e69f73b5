// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package spatial

// Entity kinds reported in diagnostics.
const (
	EntityPlan      = "plan"
	EntityRoom      = "room"
	EntityDoor      = "door"
	EntityLink      = "link"
	EntityLinkGroup = "link_group"
)

// Reason explains why an entity was dropped.
type Reason string

// Drop reasons.
const (
	ReasonDuplicateID      Reason = "duplicate_id"
	ReasonUnknownPlan      Reason = "unknown_plan"
	ReasonDegenerate       Reason = "degenerate_polygon"
	ReasonUnresolvedRooms  Reason = "unresolved_rooms"
	ReasonFloorMismatch    Reason = "floor_mismatch"
	ReasonNotAdjacent      Reason = "rooms_not_adjacent"
	ReasonOffSharedWall    Reason = "off_shared_wall"
	ReasonDuplicateDoor    Reason = "duplicate_door"
	ReasonMissingGroup     Reason = "missing_group"
	ReasonUnknownKind      Reason = "unknown_kind"
	ReasonNoContainingRoom Reason = "no_containing_room"
	ReasonDuplicateFloor   Reason = "duplicate_floor"
	ReasonIncompleteGroup  Reason = "incomplete_group"
	ReasonFloorGap         Reason = "floor_gap"
)

// Diagnostic records one entity dropped by the loader.
type Diagnostic struct {
	Entity string `json:"entity"`
	ID     string `json:"id"`
	Reason Reason `json:"reason"`
	Detail string `json:"detail,omitempty"`
}
