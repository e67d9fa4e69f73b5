// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package museum

import (
	"fmt"
	"slices"
)

// Category is a criterion category and its valid options, in display order.
type Category struct {
	ID      string   `json:"id"`
	Options []string `json:"options"`
}

// Catalog is the ordered list of criteria categories.
type Catalog struct {
	Categories []Category `json:"categories"`
}

// Category returns the category with the given id.
func (c Catalog) Category(id string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.ID == id {
			return cat, true
		}
	}
	return Category{}, false
}

// ProfileError reasons.
const (
	ProfileEmpty           = "empty_profile"
	ProfileUnknownCategory = "unknown_category"
	ProfileUnknownOption   = "unknown_option"
)

// ProfileError reports a profile that does not fit the catalog.
type ProfileError struct {
	Reason   string
	Category string
	Option   string
}

func (e *ProfileError) Error() string {
	switch e.Reason {
	case ProfileEmpty:
		return "profile must select at least one criterion"
	case ProfileUnknownCategory:
		return fmt.Sprintf("unknown criterion category %q", e.Category)
	default:
		return fmt.Sprintf("unknown option %q for category %q", e.Option, e.Category)
	}
}

// Validate checks that every criterion of p names a known category and one
// of its options.
func (c Catalog) Validate(p Profile) error {
	if p.Len() == 0 {
		return &ProfileError{Reason: ProfileEmpty}
	}
	for _, crit := range p.Criteria() {
		cat, ok := c.Category(crit.Category)
		if !ok {
			return &ProfileError{Reason: ProfileUnknownCategory, Category: crit.Category, Option: crit.Option}
		}
		if !slices.Contains(cat.Options, crit.Option) {
			return &ProfileError{Reason: ProfileUnknownOption, Category: crit.Category, Option: crit.Option}
		}
	}
	return nil
}
