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

package source

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fontmerge/shape"
)

func TestSourceIsImmutable(t *testing.T) {
	in := map[rune]shape.Glyph{
		'|': {Outline: shape.Rect(250, -100, 350, 800), Advance: 600},
		' ': {Advance: 600},
	}
	s := New("latin", Metrics{Em: 1000, Ascent: 800, Descent: 200, Width: 600, Monospace: true}, in)

	// modifying the input map does not affect the source
	in['|'].Outline[0].Segs[0].P.X = -1
	delete(in, ' ')

	g, ok := s.Glyph('|')
	if !ok {
		t.Fatal("glyph missing")
	}
	if g.Outline.BBox().LLx != 250 {
		t.Error("source shares geometry with the input map")
	}

	// modifying a returned glyph does not affect the source
	g.Outline[0].Start.X = 1000
	g2, _ := s.Glyph('|')
	if g2.Outline[0].Start.X != 250 {
		t.Error("Glyph returned shared geometry")
	}

	if d := cmp.Diff([]rune{' ', '|'}, s.Codepoints()); d != "" {
		t.Error(d)
	}
	if !s.Has(' ') || s.Has('x') || s.Len() != 2 {
		t.Error("Has/Len are wrong")
	}
}
