// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package logging holds the process-wide zerolog logger.
//
// Init configures the global logger once at startup from the "logging"
// section of the configuration. Packages derive component loggers with
// WithComponent and request-scoped loggers with Ctx:
//
//	logger := logging.WithComponent("spatial-loader")
//	logger.Info().Str("building_id", id).Int("rooms", n).Msg("graph loaded")
//
//	logging.Ctx(r.Context()).Warn().Err(err).Msg("tour generation failed")
//
// Always end an event chain with Msg or Send; an unterminated chain is
// never written.
//
// Libraries that log through log/slog (the suture supervisor) are bridged
// to the same logger with NewSlogLogger.
package logging
