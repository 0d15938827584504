// seehuhn.de/go/fontmerge - compose monospace fonts from Latin and CJK sources
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package source holds the glyphs of an input font.
package source

import (
	"maps"
	"slices"

	"seehuhn.de/go/fontmerge/shape"
)

// Metrics describes the coordinate system of a source font.
type Metrics struct {
	Em      float64
	Ascent  float64
	Descent float64 // positive, below the baseline

	// Width is the common advance width of a monospaced font, or the
	// advance width of the space glyph otherwise.
	Width     float64
	Monospace bool

	// AvgCharWidth is the xAvgCharWidth value of the OS/2 table, or 0 if
	// unknown.
	AvgCharWidth float64
}

// Source is an immutable, codepoint-indexed set of glyphs.
type Source struct {
	Name    string
	Metrics Metrics

	glyphs map[rune]shape.Glyph
}

// New creates a source.  The glyphs are copied, later changes to the map
// or its outlines do not affect the source.
func New(name string, m Metrics, glyphs map[rune]shape.Glyph) *Source {
	s := &Source{
		Name:    name,
		Metrics: m,
		glyphs:  make(map[rune]shape.Glyph, len(glyphs)),
	}
	for r, g := range glyphs {
		s.glyphs[r] = g.Clone()
	}
	return s
}

// Glyph returns a copy of the glyph for codepoint r.
func (s *Source) Glyph(r rune) (shape.Glyph, bool) {
	g, ok := s.glyphs[r]
	if !ok {
		return shape.Glyph{}, false
	}
	return g.Clone(), true
}

// Has reports whether the source contains a glyph for r.
func (s *Source) Has(r rune) bool {
	_, ok := s.glyphs[r]
	return ok
}

// Len returns the number of codepoints in the source.
func (s *Source) Len() int {
	return len(s.glyphs)
}

// Codepoints returns all codepoints of the source in increasing order.
func (s *Source) Codepoints() []rune {
	return slices.Sorted(maps.Keys(s.glyphs))
}
