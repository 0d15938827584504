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

// Package align decides the horizontal placement and the advance width of
// normalized glyphs.
package align

import (
	"fmt"

	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/shape"
)

// Kind selects the horizontal placement of a glyph inside its cell.
type Kind int

// These are the supported placements.
const (
	// Center places the ink in the middle of the cell.
	Center Kind = iota

	// FlushLeft moves the ink to the left edge of the cell.
	FlushLeft

	// FlushRight moves the ink to the right edge of the cell.
	FlushRight

	// Unmodified keeps the side bearings of the glyph.  Only the advance
	// width is snapped to the width class.
	Unmodified
)

func (k Kind) String() string {
	switch k {
	case Center:
		return "center"
	case FlushLeft:
		return "left"
	case FlushRight:
		return "right"
	case Unmodified:
		return "unmodified"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Rule combines a placement with a width class.
type Rule struct {
	Kind  Kind
	Width metric.WidthClass
}

func (r Rule) String() string {
	return r.Kind.String() + "/" + r.Width.String()
}

// Align positions g according to rule r.
// It returns the adjusted glyph, its advance width and its left bearing.
//
// For [Center] and [Unmodified] with width class [metric.Auto], the glyph
// becomes full-width if its advance exceeds half a cell and half-width
// otherwise.  For [FlushLeft] and [FlushRight] with class Auto the advance
// width is not changed.
func Align(g shape.Glyph, r Rule, s *metric.Space) (shape.Glyph, float64, float64) {
	advance := g.Advance
	switch {
	case r.Width != metric.Auto:
		advance = s.Advance(r.Width)
	case r.Kind == Center || r.Kind == Unmodified:
		advance = s.Advance(s.ClassOf(g.Advance))
	}

	ink := g.InkWidth()
	var lsb float64
	switch r.Kind {
	case Center:
		lsb = (advance - ink) / 2
	case FlushLeft:
		lsb = 0
	case FlushRight:
		lsb = advance - ink
	case Unmodified:
		lsb = g.LeftBearing()
	}

	res := g.WithLeftBearing(lsb)
	res.Advance = advance
	return res, advance, lsb
}
