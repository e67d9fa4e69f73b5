// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package museum

import (
	"cmp"
	"slices"
	"strings"

	"github.com/goccy/go-json"
)

// Criterion is one category -> option choice.
type Criterion struct {
	Category string `json:"category"`
	Option   string `json:"option"`
}

// Profile is a set of criteria with at most one option per category, kept
// sorted by category. The zero value is an empty profile.
type Profile struct {
	criteria []Criterion
}

// NewProfile builds a profile from a category -> option map.
func NewProfile(m map[string]string) Profile {
	p := Profile{criteria: make([]Criterion, 0, len(m))}
	for cat, opt := range m {
		p.criteria = append(p.criteria, Criterion{Category: cat, Option: opt})
	}
	slices.SortFunc(p.criteria, func(a, b Criterion) int { return cmp.Compare(a.Category, b.Category) })
	return p
}

// ProfileOf builds a profile from criteria. Later criteria replace earlier
// ones with the same category.
func ProfileOf(criteria ...Criterion) Profile {
	m := make(map[string]string, len(criteria))
	for _, c := range criteria {
		m[c.Category] = c.Option
	}
	return NewProfile(m)
}

// Len returns the number of criteria.
func (p Profile) Len() int { return len(p.criteria) }

// Criteria returns the criteria sorted by category.
func (p Profile) Criteria() []Criterion { return slices.Clone(p.criteria) }

// Option returns the option chosen for category.
func (p Profile) Option(category string) (string, bool) {
	i, ok := slices.BinarySearchFunc(p.criteria, category, func(c Criterion, cat string) int {
		return cmp.Compare(c.Category, cat)
	})
	if !ok {
		return "", false
	}
	return p.criteria[i].Option, true
}

// Matches reports whether combination holds every criterion of p with the
// same option. combination may carry extra categories.
func (p Profile) Matches(combination Profile) bool {
	for _, c := range p.criteria {
		opt, ok := combination.Option(c.Category)
		if !ok || opt != c.Option {
			return false
		}
	}
	return true
}

// Map returns the profile as a category -> option map.
func (p Profile) Map() map[string]string {
	m := make(map[string]string, len(p.criteria))
	for _, c := range p.criteria {
		m[c.Category] = c.Option
	}
	return m
}

// Key returns a stable string form, e.g. "age=adult;theme=light".
func (p Profile) Key() string {
	var b strings.Builder
	for i, c := range p.criteria {
		if i > 0 {
			b.WriteByte(';')
		}
		b.WriteString(c.Category)
		b.WriteByte('=')
		b.WriteString(c.Option)
	}
	return b.String()
}

// String implements fmt.Stringer.
func (p Profile) String() string { return p.Key() }

// MarshalJSON encodes the profile as an object.
func (p Profile) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.Map())
}

// UnmarshalJSON decodes an object of category -> option.
func (p *Profile) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return err
	}
	*p = NewProfile(m)
	return nil
}
