// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package tour generates self-guided visits.
//
// Engine ties the pipeline together for one request:
//
//	profile check -> building graph -> selection -> ordering -> waypoints
//
// An Engine holds configuration, data sources and an optional cache of
// immutable building graphs. Everything created during a request (route
// checker, selector, random generators, the tour itself) belongs to that
// request alone, so Generate is safe for concurrent use.
//
// Randomness comes from two generators. The reproducible one drives
// artwork selection and the variety one drives tour ordering. With a seed
// both derive from it and the whole tour is deterministic; without one both
// are drawn from fresh entropy.
//
// Sparse content is an expected outcome, not an error: when no artwork
// matches or none sits in a connected part of the building, Generate
// returns a Tour with Available=false and a ReasonCode.
package tour
