// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package config

import (
	"fmt"

	"github.com/tomtom215/galleria/internal/validation"
)

// Validate checks every section. Tagged sections go through the shared
// validator; the tour section validates itself.
func (c *Config) Validate() error {
	if verr := validation.ValidateStruct(c); verr != nil {
		return fmt.Errorf("invalid configuration: %w", verr)
	}
	if err := c.Tour.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: tour: %w", err)
	}
	return nil
}
