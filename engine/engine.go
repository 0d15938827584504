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

// Package engine reads and writes font files and implements the outline
// operations needed to compose fonts.
//
// Boolean operations and stroking work on polygons: curves are flattened
// into [Engine.Flatness] line segments each, and the polygons are combined
// with [github.com/ctessum/polyclip-go].  Stroking adds or removes the
// region which a polygonal pen sweeps along the glyph boundary.
package engine

import (
	"time"
)

// Engine implements font input/output and outline operations.
// An Engine can be used concurrently by several goroutines, as long as its
// fields are not modified.
type Engine struct {
	// Flatness is the number of line segments used to approximate a cubic
	// curve in outline operations.
	Flatness int

	// Now returns the creation time written into generated fonts.
	Now func() time.Time
}

// New returns an engine with default settings.
func New() *Engine {
	return &Engine{
		Flatness: 16,
		Now:      time.Now,
	}
}

func (e *Engine) flatness() int {
	if e.Flatness <= 0 {
		return 16
	}
	return e.Flatness
}

func (e *Engine) now() time.Time {
	if e.Now == nil {
		return time.Now()
	}
	return e.Now()
}
