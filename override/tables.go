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

package override

import (
	"cmp"
	"fmt"
	"maps"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fontmerge/align"
	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/transform"
)

// BrokenBar draws U+00A6 BROKEN BAR as a copy of U+007C VERTICAL LINE.
func BrokenBar() Table {
	return Table{{
		Name:    "broken-bar",
		Target:  0x00A6,
		Op:      CopyReplace,
		Sources: []rune{0x007C},
	}}
}

// EmDash cuts U+2014 EM DASH down to the part which overlaps the stem of
// U+006C LATIN SMALL LETTER L.
func EmDash() Table {
	return Table{{
		Name:    "em-dash",
		Target:  0x2014,
		Op:      CopyIntersect,
		Sources: []rune{0x2014, 0x006C},
	}}
}

// IdeographicSpace makes U+3000 IDEOGRAPHIC SPACE visible, by stamping the
// outline of U+271A HEAVY GREEK CROSS into U+2610 BALLOT BOX.
func IdeographicSpace() Table {
	return Table{{
		Name:    "ideographic-space",
		Target:  0x3000,
		Op:      CopyIntersect,
		Sources: []rune{0x2610, 0x271A},
		Align:   &align.Rule{Kind: align.Center, Width: metric.Full},
		Scope:   CJK,
	}}
}

// SmallTriangles derives U+25BE and U+25B8 from U+25BC BLACK
// DOWN-POINTING TRIANGLE.
func SmallTriangles(s *metric.Space) Table {
	u := s.Scale(1000)
	extra := transform.Compose(transform.Uniform(0.64), transform.Translate(0, 68*u))
	half := &align.Rule{Kind: align.Center, Width: metric.Half}
	return Table{
		{
			Name:    "small-triangles",
			Target:  0x25BE,
			Op:      CopyReplace,
			Sources: []rune{0x25BC},
			Extra:   &extra,
			Align:   half,
			Scope:   CJK,
		},
		{
			Name:    "small-triangles",
			Target:  0x25B8,
			Op:      Rotate90,
			Sources: []rune{0x25BE},
			Align:   half,
			Scope:   CJK,
		},
	}
}

// Box-drawing characters whose horizontal strokes touch only one side of
// the cell.
var (
	boxFlushLeft = []rune{
		0x2510, 0x2518, 0x2524, 0x2555, 0x2556, 0x2557, 0x255B, 0x255C,
		0x255D, 0x2561, 0x2562, 0x2563,
	}
	boxFlushRight = []rune{
		0x250C, 0x2514, 0x251C, 0x2552, 0x2553, 0x2554, 0x2558, 0x2559,
		0x255A, 0x255E, 0x255F, 0x2560,
	}
)

// BoxDrawing pushes box-drawing corners and tees to the cell edge their
// horizontal strokes point to, so that lines connect across cells.
func BoxDrawing() Table {
	var t Table
	add := func(list []rune, kind align.Kind) {
		for _, r := range list {
			t = append(t, Recipe{
				Name:      "box-drawing",
				Target:    r,
				Op:        Realign,
				Align:     &align.Rule{Kind: kind},
				IfPresent: true,
			})
		}
	}
	add(boxFlushLeft, align.FlushLeft)
	add(boxFlushRight, align.FlushRight)
	slices.SortStableFunc(t, func(a, b Recipe) int { return cmp.Compare(a.Target, b.Target) })
	return t
}

var (
	powerlineLeft = []rune{
		0xE0B0, 0xE0B1, 0xE0B4, 0xE0B5, 0xE0B8, 0xE0B9, 0xE0BC, 0xE0BD,
		0xE0C0, 0xE0C1, 0xE0C4, 0xE0C6, 0xE0C8, 0xE0CC, 0xE0CD, 0xE0D1,
		0xE0D2,
	}
	powerlineRight = []rune{
		0xE0B2, 0xE0B3, 0xE0B6, 0xE0B7, 0xE0BA, 0xE0BB, 0xE0BE, 0xE0BF,
		0xE0C2, 0xE0C3, 0xE0C5, 0xE0C7, 0xE0CA, 0xE0CE, 0xE0D4,
	}
	powerlineCenter = []rune{0xE0CF, 0xE0D0}
)

// Powerline stretches the Powerline symbols U+E0B0 to U+E0D4 over the full
// cell height and pushes each arrow to the cell edge it points away from.
// Geometry offsets are given for a 1024 unit em and scaled to s.
func Powerline(s *metric.Space) Table {
	u := s.Scale(1024)
	down := transform.Translate(0, -55*u)
	squash := func(sx float64) matrix.Matrix {
		return transform.Compose(transform.Scale(sx, 0.982), transform.Translate(0, -1*u))
	}
	shapeOf := func(r rune) matrix.Matrix {
		switch {
		case r >= 0xE0B0 && r <= 0xE0B7:
			return squash(1)
		case r >= 0xE0B8 && r <= 0xE0BF:
			return squash(0.8)
		case r >= 0xE0C0 && r <= 0xE0C3, r == 0xE0C8, r == 0xE0CA:
			return transform.Scale(0.7, 1)
		case r == 0xE0CE:
			return transform.Scale(0.8, 1)
		case r == 0xE0CF:
			return transform.Scale(0.9, 1)
		case r == 0xE0D1, r == 0xE0D2, r == 0xE0D4:
			return squash(1)
		default:
			return matrix.Identity
		}
	}

	kind := make(map[rune]align.Kind)
	for _, r := range powerlineLeft {
		kind[r] = align.FlushLeft
	}
	for _, r := range powerlineRight {
		kind[r] = align.FlushRight
	}
	for _, r := range powerlineCenter {
		kind[r] = align.Center
	}

	var t Table
	for r := rune(0xE0B0); r <= 0xE0D4; r++ {
		k, ok := kind[r]
		if !ok {
			k = align.Unmodified
		}
		extra := transform.Compose(down, shapeOf(r))
		t = append(t, Recipe{
			Name:      "powerline",
			Target:    r,
			Op:        Realign,
			Extra:     &extra,
			Align:     &align.Rule{Kind: k, Width: metric.Full},
			IfPresent: true,
		})
	}
	return t
}

var builtin = map[string]func(*metric.Space) Table{
	"broken-bar":        func(*metric.Space) Table { return BrokenBar() },
	"em-dash":           func(*metric.Space) Table { return EmDash() },
	"ideographic-space": func(*metric.Space) Table { return IdeographicSpace() },
	"small-triangles":   SmallTriangles,
	"box-drawing":       func(*metric.Space) Table { return BoxDrawing() },
	"powerline":         Powerline,
}

// Builtin returns the named recipe table.
func Builtin(name string, s *metric.Space) (Table, error) {
	mk, ok := builtin[name]
	if !ok {
		return nil, fmt.Errorf("unknown override table %q", name)
	}
	return mk(s), nil
}

// BuiltinNames lists the names accepted by [Builtin].
func BuiltinNames() []string {
	return slices.Sorted(maps.Keys(builtin))
}

// Default returns the recipe tables used when a configuration does not
// list any: the glyph syntheses and the box-drawing fix-up.
func Default(s *metric.Space) Table {
	var t Table
	t = append(t, IdeographicSpace()...)
	t = append(t, SmallTriangles(s)...)
	t = append(t, BrokenBar()...)
	t = append(t, EmDash()...)
	t = append(t, BoxDrawing()...)
	return t
}
