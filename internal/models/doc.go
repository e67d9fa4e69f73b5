// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

/*
Package models defines the JSON shapes of the HTTP API.

Every endpoint answers with an APIResponse envelope. Successful calls carry
their payload in Data; failed calls carry an APIError with a stable code:

	{
	  "status": "error",
	  "data": null,
	  "metadata": {"timestamp": "2026-03-01T10:00:00Z", "request_id": "..."},
	  "error": {"code": "INVALID_PROFILE", "message": "unknown criterion category \"mood\""}
	}

Request DTOs carry validate tags checked by the validation package before
they reach the tour engine.
*/
package models
