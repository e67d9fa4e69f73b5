// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package geometry implements the planar checks used to validate building
// drawings: point-in-polygon, shared-wall detection between two room
// polygons, and point-on-segment tests.
//
// All coordinates are drawing units (pixels) as exported by the floor plan
// tooling. Every threshold lives in Tolerances so that validation behavior
// can be audited and tuned in one place:
//
//	tol := geometry.DefaultTolerances()
//	walls := geometry.SharedEdges(roomA, roomB, tol)
//	if geometry.Adjacent(roomA, roomB, tol) && geometry.OnAnySegment(door, walls, tol.PointOnSegment) {
//	    // door accepted
//	}
package geometry
