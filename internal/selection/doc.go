// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package selection picks the artworks of a tour.
//
// Selection runs in three steps:
//
//  1. Candidates are the artworks whose criteria satisfy the visitor profile.
//  2. Candidates are restricted to one connected region of the building.
//     Isolated rooms are ignored and the region with the most ground floor
//     rooms holding candidates wins, then the one with most candidates.
//  3. A weighted random draw fills the target count, favoring unvisited
//     rooms, unvisited floors, unseen artwork types and stops that are not
//     right next to what was already picked.
//
// All randomness comes from the generator passed by the caller so that a
// seeded request always selects the same artworks.
package selection
