// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package optimizer orders selected artworks into a walkable tour.
//
// The ordering is a variety nearest-neighbor walk: starting from a random
// artwork, each step ranks the unvisited artworks by real route distance and
// picks one of the closest three with fixed probabilities (50/30/20 by
// default). Repeated generations over the same set therefore produce
// different but still compact tours. The result is not an optimal tour.
//
// Artworks that cannot be reached from the current stop are skipped. When
// none of the remaining artworks can be reached the tour ends early and the
// leftovers are reported in Plan.Unreachable.
package optimizer
