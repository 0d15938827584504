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

// Package metric describes the coordinate grid shared by all glyphs of a
// composed font.
//
// Every glyph of the output occupies either a full cell of width
// [Space.Width] or a half cell of width Space.Width/2.
package metric

import (
	"fmt"
	"math"
)

// Space is the target em, ascent, descent and cell width of an output font.
// A Space is created once per font family and is shared read-only by all
// styles.
type Space struct {
	Em      float64
	Ascent  float64
	Descent float64 // positive, below the baseline
	Width   float64 // advance width of a full-width glyph
}

// New returns a validated metric space.
func New(em, ascent, descent, width float64) (*Space, error) {
	s := &Space{Em: em, Ascent: ascent, Descent: descent, Width: width}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return s, nil
}

// Validate checks that all values are positive, that ascent and descent
// add up to the em size, and that the half cell width is a whole number of
// font units.
func (s *Space) Validate() error {
	for _, v := range []struct {
		name string
		val  float64
	}{
		{"em", s.Em},
		{"ascent", s.Ascent},
		{"descent", s.Descent},
		{"width", s.Width},
	} {
		if !(v.val > 0) || math.IsInf(v.val, 0) {
			return &InvalidMetricError{Field: v.name, Value: v.val,
				Reason: "must be positive"}
		}
	}
	if math.Mod(s.Width, 2) != 0 {
		return &InvalidMetricError{Field: "width", Value: s.Width,
			Reason: "must be an even number of font units"}
	}
	if s.Ascent+s.Descent != s.Em {
		return &InvalidMetricError{Field: "ascent+descent", Value: s.Ascent + s.Descent,
			Reason: fmt.Sprintf("must equal em %g", s.Em)}
	}
	return nil
}

// Half returns the advance width of a half-width glyph.
func (s *Space) Half() float64 {
	return s.Width / 2
}

// Advance returns the advance width for the given width class.
// [Auto] is not a concrete class and is treated as [Full].
func (s *Space) Advance(c WidthClass) float64 {
	if c == Half {
		return s.Half()
	}
	return s.Width
}

// ClassOf returns the width class a glyph with the given natural advance
// width is assigned to.  Glyphs wider than half a cell are full-width;
// a glyph of exactly half a cell stays half-width.
func (s *Space) ClassOf(advance float64) WidthClass {
	if advance > s.Half() {
		return Full
	}
	return Half
}

// IsValidAdvance reports whether w is one of the two permitted advance
// widths.
func (s *Space) IsValidAdvance(w float64) bool {
	const eps = 1e-6
	return math.Abs(w-s.Width) < eps || math.Abs(w-s.Half()) < eps
}

// Scale returns the factor which converts lengths given for the em size
// ref into this space.
func (s *Space) Scale(ref float64) float64 {
	return s.Em / ref
}

// WidthClass selects the advance width of a glyph.
type WidthClass int

// These are the supported width classes.
const (
	// Auto chooses Full or Half from the natural advance width of the glyph.
	Auto WidthClass = iota
	Half
	Full
)

func (c WidthClass) String() string {
	switch c {
	case Auto:
		return "auto"
	case Half:
		return "half"
	case Full:
		return "full"
	default:
		return fmt.Sprintf("WidthClass(%d)", int(c))
	}
}

// InvalidMetricError is returned by [New] when the metric values are
// inconsistent.
type InvalidMetricError struct {
	Field  string
	Value  float64
	Reason string
}

func (err *InvalidMetricError) Error() string {
	return fmt.Sprintf("invalid metric space: %s = %g %s", err.Field, err.Value, err.Reason)
}
