// Galleria - Self-Guided Museum Visit Routing
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/galleria

package museum

import (
	"strings"
	"unicode"
)

// ArtworkType is a coarse classification used to vary tours.
type ArtworkType string

// Artwork types.
const (
	TypePainting   ArtworkType = "painting"
	TypeSculpture  ArtworkType = "sculpture"
	TypeDrawing    ArtworkType = "drawing"
	TypePrint      ArtworkType = "print"
	TypePhotograph ArtworkType = "photograph"
	TypeTextile    ArtworkType = "textile"
	TypeCeramic    ArtworkType = "ceramic"
	TypeDecorative ArtworkType = "decorative"
	TypeOther      ArtworkType = "other"
)

// typeKeywords is checked in order; the first type with a matching word
// wins. Photographs come before prints ("gelatin silver print").
var typeKeywords = []struct {
	kind  ArtworkType
	words []string
}{
	{TypePhotograph, []string{"photograph", "photography", "photographie", "gelatin", "albumen", "daguerreotype", "cyanotype", "tirage"}},
	{TypePrint, []string{"etching", "engraving", "lithograph", "lithography", "woodcut", "screenprint", "gravure", "eau-forte", "lithographie", "print"}},
	{TypePainting, []string{"oil", "huile", "tempera", "acrylic", "acrylique", "gouache", "watercolor", "watercolour", "aquarelle", "fresco", "canvas", "toile", "panel", "painting", "peinture"}},
	{TypeDrawing, []string{"pencil", "graphite", "charcoal", "chalk", "pastel", "sanguine", "fusain", "crayon", "drawing", "dessin", "ink", "encre"}},
	{TypeSculpture, []string{"bronze", "marble", "marbre", "plaster", "plâtre", "terracotta", "terre", "stone", "pierre", "wood", "bois", "sculpture", "statue"}},
	{TypeCeramic, []string{"ceramic", "céramique", "porcelain", "porcelaine", "earthenware", "faïence", "stoneware", "grès"}},
	{TypeTextile, []string{"textile", "tapestry", "tapisserie", "silk", "soie", "wool", "laine", "linen", "lin", "embroidery", "broderie"}},
	{TypeDecorative, []string{"gold", "silver", "argent", "enamel", "émail", "glass", "verre", "ivory", "ivoire", "furniture"}},
}

// ClassifyType derives an ArtworkType from a materials or technique string.
func ClassifyType(materials string) ArtworkType {
	tokens := strings.FieldsFunc(strings.ToLower(materials), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '-'
	})
	if len(tokens) == 0 {
		return TypeOther
	}
	set := make(map[string]struct{}, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	for _, tk := range typeKeywords {
		for _, w := range tk.words {
			if _, ok := set[w]; ok {
				return tk.kind
			}
		}
	}
	return TypeOther
}
