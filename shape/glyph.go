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

package shape

import (
	"math"

	"seehuhn.de/go/geom/matrix"
)

// Glyph is an outline together with its advance width.
type Glyph struct {
	Outline Outline
	Advance float64
}

// Clone returns a deep copy of the glyph.
func (g Glyph) Clone() Glyph {
	return Glyph{Outline: g.Outline.Clone(), Advance: g.Advance}
}

// HasInk reports whether the glyph draws anything.
func (g Glyph) HasInk() bool {
	return !g.Outline.IsEmpty()
}

// LeftBearing returns the distance between the origin and the left edge
// of the ink.  Blank glyphs have a left bearing of 0.
func (g Glyph) LeftBearing() float64 {
	if !g.HasInk() {
		return 0
	}
	return g.Outline.BBox().LLx
}

// RightBearing returns the distance between the right edge of the ink and
// the advance width.
func (g Glyph) RightBearing() float64 {
	if !g.HasInk() {
		return g.Advance
	}
	return g.Advance - g.Outline.BBox().URx
}

// InkWidth returns the width of the bounding box of the glyph outline.
func (g Glyph) InkWidth() float64 {
	if !g.HasInk() {
		return 0
	}
	bbox := g.Outline.BBox()
	return bbox.URx - bbox.LLx
}

// WithLeftBearing returns a copy of the glyph, shifted horizontally so that
// the left bearing becomes lsb.  The advance width is not changed.
func (g Glyph) WithLeftBearing(lsb float64) Glyph {
	if !g.HasInk() {
		return g.Clone()
	}
	return Glyph{
		Outline: g.Outline.Translate(lsb-g.LeftBearing(), 0),
		Advance: g.Advance,
	}
}

// Transform applies m to the outline.  The new advance width is the length
// of the horizontal component of the advance vector (Advance, 0) under the
// linear part of m, so that translations and shears leave the advance
// unchanged.
func (g Glyph) Transform(m matrix.Matrix) Glyph {
	return Glyph{
		Outline: g.Outline.Transform(m),
		Advance: math.Abs(m[0] * g.Advance),
	}
}

// Round rounds the outline coordinates and the advance width to integers.
func (g Glyph) Round() Glyph {
	return Glyph{
		Outline: g.Outline.Round(),
		Advance: math.Round(g.Advance),
	}
}
