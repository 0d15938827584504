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

// Package repertoire implements the glyph table of one output style.
package repertoire

import (
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/fontmerge/internal/uname"
	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/shape"
)

// Metadata describes an output style.
type Metadata struct {
	Family         string
	Subfamily      string
	FullName       string
	PostScriptName string

	Weight     int    // numeric weight class, e.g. 400 or 700
	WeightName string // e.g. "Regular" or "Bold"
	Bold       bool   // the Bold or Bold Italic member of the family
	Italic     bool
	Shear      float64 // horizontal slant of italic glyphs, dx/dy
	Panose     [10]byte

	Copyright string
	License   string
	Version   string
	Vendor    string

	// AvgCharWidth, if non-zero, is written to the OS/2 table instead of
	// the computed average advance width.
	AvgCharWidth int16
}

// Panose returns the PANOSE classification for a style of the family.
// Only the weight digit depends on the style.
func Panose(bold bool) [10]byte {
	weight := byte(5) // book
	if bold {
		weight = 8
	}
	return [10]byte{
		2,      // family kind: Latin text
		11,     // serif style: normal sans
		weight, // weight
		9,      // proportion: monospaced
		2,      // contrast: none
		2,      // stroke variation: no variation
		3,      // arm style: straight arms, horizontal
		2,      // letterform: normal contact
		2,      // midline: standard trimmed
		7,      // x-height: ducking large
	}
}

// Repertoire maps codepoints to glyphs.  The repertoire owns all its
// glyphs: Set and Get copy the outlines.
type Repertoire struct {
	Meta Metadata

	glyphs map[rune]shape.Glyph
}

// New allocates an empty repertoire.
func New() *Repertoire {
	return &Repertoire{glyphs: make(map[rune]shape.Glyph)}
}

// Set stores a copy of g at codepoint r, replacing any previous glyph.
func (rep *Repertoire) Set(r rune, g shape.Glyph) {
	rep.glyphs[r] = g.Clone()
}

// Get returns a copy of the glyph at codepoint r.
func (rep *Repertoire) Get(r rune) (shape.Glyph, bool) {
	g, ok := rep.glyphs[r]
	if !ok {
		return shape.Glyph{}, false
	}
	return g.Clone(), true
}

// Has reports whether the repertoire contains a glyph for r.
func (rep *Repertoire) Has(r rune) bool {
	_, ok := rep.glyphs[r]
	return ok
}

// Delete removes the glyph at codepoint r, if any.
func (rep *Repertoire) Delete(r rune) {
	delete(rep.glyphs, r)
}

// Len returns the number of glyphs.
func (rep *Repertoire) Len() int {
	return len(rep.glyphs)
}

// Codepoints returns all codepoints in increasing order.
func (rep *Repertoire) Codepoints() []rune {
	return slices.Sorted(maps.Keys(rep.glyphs))
}

// CheckAdvances verifies that every glyph is either full-width or
// half-width in the given metric space.
func (rep *Repertoire) CheckAdvances(s *metric.Space) error {
	for _, r := range rep.Codepoints() {
		adv := rep.glyphs[r].Advance
		if !s.IsValidAdvance(adv) {
			return &AdvanceError{Codepoint: r, Advance: adv, Width: s.Width}
		}
	}
	return nil
}

// AdvanceError reports a glyph whose advance width is neither the full nor
// the half cell width.
type AdvanceError struct {
	Codepoint rune
	Advance   float64
	Width     float64
}

func (err *AdvanceError) Error() string {
	return fmt.Sprintf("%s: advance width %g is neither %g nor %g",
		uname.Format(err.Codepoint), err.Advance, err.Width, err.Width/2)
}
