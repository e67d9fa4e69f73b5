// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package connectivity finds walkable routes through a building graph.
//
// Checker.Route returns the distance in meters between two positions and
// the ordered waypoints (doors, stairway entries and exits) a visitor
// passes. The search is breadth-first, so it minimizes the number of
// transitions rather than meters walked. Each door or stairway traversal
// is charged a fixed cost, and the walk from the start to the first
// waypoint and from the last waypoint to the destination is charged at its
// geometric length.
//
// Routes are symmetric: Route(b, a) lists the waypoints of Route(a, b) in
// reverse order with the same distance.
//
// Components partitions the rooms of a graph into connected regions using
// the same edge set as the Checker for a given Mode.
package connectivity
