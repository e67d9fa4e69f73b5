// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package spatial holds the multi-floor building graph and the loader that
// assembles it from raw drawing records.
//
// A Graph is made of Rooms (polygons on a 0-based floor), Doors (validated
// same-floor connections between two adjacent rooms) and Stairways (vertical
// edges between consecutive floors of a stair or elevator group). Graphs are
// immutable once loaded and safe to share between concurrent requests.
//
// The Loader never fails on a single malformed entity. Rooms with degenerate
// outlines, doors that do not sit on a wall shared by their two rooms, and
// link markers that fall outside every room are dropped and recorded as
// Diagnostics on the resulting graph.
package spatial
