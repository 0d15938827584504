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
	"fmt"
	"math"
)

// Pen is the nib shape used to stroke an outline.
type Pen int

// These are the supported pen shapes.
const (
	Circular Pen = iota

	// Calligraphic is a square nib with diagonal Width, whose edges make
	// the stroke Angle with the horizontal.
	Calligraphic
)

func (p Pen) String() string {
	switch p {
	case Circular:
		return "circular"
	case Calligraphic:
		return "calligraphic"
	default:
		return fmt.Sprintf("Pen(%d)", int(p))
	}
}

// Join selects how the stroked outline treats corners.
type Join int

// These are the supported join styles.
const (
	JoinRound Join = iota
	JoinMiter
)

// Overlap selects which side of the stroked path is kept.
type Overlap int

const (
	// RemoveInternal keeps the outer edge of the stroke; the glyph becomes
	// bolder by half the stroke width on every side.
	RemoveInternal Overlap = iota

	// RemoveExternal keeps the inner edge of the stroke; the glyph becomes
	// thinner by half the stroke width on every side.
	RemoveExternal
)

// Stroke describes a weight change of an outline.
type Stroke struct {
	Pen     Pen
	Width   float64
	Angle   float64 // pen rotation in degrees, only for Calligraphic
	Join    Join
	Overlap Overlap
}

// WeightStroke returns the stroke which changes the stem width of a glyph
// by delta font units.  Positive values make glyphs bolder, negative
// values make them lighter.
func WeightStroke(pen Pen, delta float64) Stroke {
	s := Stroke{
		Pen:   pen,
		Width: math.Abs(delta),
	}
	if pen == Calligraphic {
		s.Angle = 45
	}
	if delta < 0 {
		s.Overlap = RemoveExternal
	}
	return s
}

// IsZero reports whether the stroke leaves outlines unchanged.
func (s Stroke) IsZero() bool {
	return s.Width == 0
}
