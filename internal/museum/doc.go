// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package museum defines the content side of a visit: artworks, visitor
// profiles and the criteria catalog that profiles are checked against.
package museum
