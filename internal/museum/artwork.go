// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package museum

import (
	"strings"
	"time"
	"unicode"

	"github.com/tomtom215/galleria/internal/spatial"
)

// DefaultWordsPerMinute is the speaking rate used for narration timing.
const DefaultWordsPerMinute = 150.0

// Artwork is a piece on display with narration written for one criteria
// combination. Artworks are read-only.
type Artwork struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	Artist    string           `json:"artist"`
	Materials string           `json:"materials"`
	Type      ArtworkType      `json:"type"`
	Position  spatial.Position `json:"position"`
	Narration string           `json:"narration"`
	Criteria  Profile          `json:"criteria"`

	// NarrationDuration is derived from Narration by Annotate.
	NarrationDuration time.Duration `json:"narration_duration"`
}

// Annotate fills the derived fields of a.
func Annotate(a Artwork, wordsPerMinute float64) Artwork {
	a.Type = ClassifyType(a.Materials)
	a.NarrationDuration = NarrationDuration(a.Narration, wordsPerMinute)
	return a
}

// NarrationDuration returns the time needed to read text aloud.
func NarrationDuration(text string, wordsPerMinute float64) time.Duration {
	if wordsPerMinute <= 0 {
		wordsPerMinute = DefaultWordsPerMinute
	}
	words := len(strings.FieldsFunc(text, unicode.IsSpace))
	return time.Duration(float64(words) / wordsPerMinute * float64(time.Minute))
}

// FilterByProfile keeps the artworks whose criteria satisfy profile.
func FilterByProfile(artworks []Artwork, profile Profile) []Artwork {
	out := make([]Artwork, 0, len(artworks))
	for _, a := range artworks {
		if profile.Matches(a.Criteria) {
			out = append(out, a)
		}
	}
	return out
}
