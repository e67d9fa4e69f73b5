// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

// Package validation wraps a shared go-playground/validator instance.
//
// Request DTOs and configuration sections carry validate tags; handlers
// call ValidateStruct and turn the result into a VALIDATION_ERROR
// response:
//
//	type tourRequest struct {
//	    DurationMinutes float64 `json:"duration_minutes" validate:"gt=0,lte=480"`
//	    Mode            string  `json:"mode" validate:"omitempty,travel_mode"`
//	}
//
//	if verr := validation.ValidateStruct(&req); verr != nil {
//	    apiErr := verr.ToAPIError()
//	    respondError(w, http.StatusBadRequest, apiErr.Code, apiErr.Message, apiErr.Details)
//	    return
//	}
//
// Field names in messages use the json tag when one is present.
//
// Custom tags:
//   - travel_mode: "any" or "elevator_only"
//   - building_id: 1 to 64 characters of letters, digits, dot, dash or
//     underscore
package validation
