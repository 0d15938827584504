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

package engine

import (
	"math"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/fontmerge/repertoire"
)

// hints contains the global hinting information of a font.
type hints struct {
	private   *type1.PrivateDict
	capHeight funit.Int16
	xHeight   funit.Int16
}

// computeHints derives the blue zones and standard stem widths from the
// Latin glyphs of rep.
func computeHints(rep *repertoire.Repertoire) *hints {
	h := &hints{
		private: &type1.PrivateDict{
			BlueScale: 0.039625,
			BlueShift: 7,
			BlueFuzz:  1,
		},
	}

	var topMin, topMax, bottomMin, bottomMax float64
	first := true
	for c := 'A'; c <= 'Z'; c++ {
		g, ok := rep.Get(c)
		if !ok || !g.HasInk() {
			continue
		}
		bbox := g.Outline.BBox()
		if first || bbox.URy < topMin {
			topMin = bbox.URy
		}
		if first || bbox.URy > topMax {
			topMax = bbox.URy
		}
		if c != 'Q' {
			if first || bbox.LLy < bottomMin {
				bottomMin = bbox.LLy
			}
			if first || bbox.LLy > bottomMax {
				bottomMax = bbox.LLy
			}
		}
		first = false
	}
	if !first {
		blues := []funit.Int16{
			round16(bottomMin), round16(bottomMax),
			round16(topMin), round16(topMax),
		}
		if g, ok := rep.Get('x'); ok && g.HasInk() {
			xTop := round16(g.Outline.BBox().URy)
			if xTop > blues[1] && xTop < blues[2] {
				blues = []funit.Int16{
					blues[0], blues[1],
					xTop, xTop,
					blues[2], blues[3],
				}
			}
		}
		h.private.BlueValues = blues
	}

	if g, ok := rep.Get('H'); ok && g.HasInk() {
		h.capHeight = round16(g.Outline.BBox().URy)
	}
	if g, ok := rep.Get('x'); ok && g.HasInk() {
		h.xHeight = round16(g.Outline.BBox().URy)
	}
	if g, ok := rep.Get('l'); ok && g.HasInk() {
		h.private.StdVW = math.Round(g.InkWidth())
	}
	if g, ok := rep.Get('-'); ok && g.HasInk() {
		bbox := g.Outline.BBox()
		h.private.StdHW = math.Round(bbox.URy - bbox.LLy)
	}
	return h
}

func round16(x float64) funit.Int16 {
	return funit.Int16(math.Round(x))
}
