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

// Package merge combines a Latin and a CJK source font into the glyph
// repertoire of one monospaced output style.
//
// [Merge] is a pure function of its inputs: the two sources, the
// [Family] description shared by all styles, and the [style.Profile] of
// the style being built.  [Build] and [BuildAll] add loading, finishing
// and serialization through an [Engine].
package merge

import (
	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/repertoire"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/source"
)

// Geometry provides the outline operations needed to merge repertoires.
type Geometry interface {
	OutlineStroke(o shape.Outline, s shape.Stroke) (shape.Outline, error)
	Intersect(a, b shape.Outline) (shape.Outline, error)
	Union(a, b shape.Outline) (shape.Outline, error)
	RemoveOverlap(o shape.Outline) (shape.Outline, error)
}

// Engine adds font input and output to [Geometry].
type Engine interface {
	Geometry
	Load(path string) (*source.Source, error)
	Serialize(rep *repertoire.Repertoire, space *metric.Space, path string) error
}
