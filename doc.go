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

// Package fontmerge composes a single monospace typeface from a Latin glyph
// source and a CJK glyph source.
//
// The two sources usually disagree in em size, ascent, descent and stroke
// weight.  The sub-packages bring every glyph into one shared coordinate
// system, decide per codepoint whether a glyph occupies a full or a half
// cell, synthesize a small number of glyphs which exist in neither source,
// and finally hand the merged repertoire to an sfnt writer.
//
// The packages, from the bottom up:
//
//   - [seehuhn.de/go/fontmerge/metric]: the target em, ascent, descent and cell width
//   - [seehuhn.de/go/fontmerge/shape]: value-typed glyph outlines
//   - [seehuhn.de/go/fontmerge/transform]: scale, skew and translate matrices
//   - [seehuhn.de/go/fontmerge/align]: horizontal placement and width classes
//   - [seehuhn.de/go/fontmerge/override]: glyph synthesis recipes
//   - [seehuhn.de/go/fontmerge/merge]: the per-style build pipeline
//   - [seehuhn.de/go/fontmerge/engine]: font file I/O and outline boolean operations
//
// By default the library does not log anything.  Use [SetLogger] to enable
// diagnostic output.
package fontmerge
