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

// Package squarefont writes small synthetic fonts for unit tests.
//
// Every inked glyph of a square font is a filled rectangle.  For a glyph
// with advance width a in a font with ascent A, the rectangle covers
// [a·SquareInset, a·(1-SquareInset)] × [0, A·SquareHeight], rounded to
// integer font units.  Blank glyphs have no contours.
//
// The fonts use CFF outlines and a format 4 cmap subtable, so only
// codepoints in the Basic Multilingual Plane can be used.
package squarefont
