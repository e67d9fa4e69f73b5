// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package services adapts Galleria's long-running components to
// suture.Service so the supervisor tree can restart them.
//
//   - HTTPServerService runs an *http.Server and shuts it down gracefully.
//   - GraphWarmService keeps configured building graphs loaded and evicts
//     expired cache entries on a fixed interval.
package services
