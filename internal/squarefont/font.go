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

package squarefont

import (
	"bytes"
	"fmt"
	"maps"
	"math"
	"os"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"
)

// Geometry of the inked glyphs.
const (
	SquareInset  = 0.1
	SquareHeight = 0.7
)

// Glyph describes one glyph of a square font.
type Glyph struct {
	Advance float64
	Blank   bool
}

// Font describes a square font.
type Font struct {
	Family     string
	UnitsPerEm uint16
	Ascent     float64
	Descent    float64 // positive, below the baseline

	Glyphs map[rune]Glyph
}

// Latin returns a font with 1000 units per em and glyphs of
// width 500 for the printable ASCII range and a few other characters.
func Latin() *Font {
	f := &Font{
		Family:     "Square Latin",
		UnitsPerEm: 1000,
		Ascent:     800,
		Descent:    200,
		Glyphs:     make(map[rune]Glyph),
	}
	for r := rune('!'); r <= '~'; r++ {
		f.Glyphs[r] = Glyph{Advance: 500}
	}
	f.Glyphs[' '] = Glyph{Advance: 500, Blank: true}
	for _, r := range []rune{0x00A6, 0x00E9, 0x0301, 0x2014, 0x2500, 0x2502, 0x251C} {
		f.Glyphs[r] = Glyph{Advance: 500}
	}
	return f
}

// CJK returns a font with 2048 units per em, where most glyphs have
// width 2048.
func CJK() *Font {
	f := &Font{
		Family:     "Square CJK",
		UnitsPerEm: 2048,
		Ascent:     1802,
		Descent:    246,
		Glyphs:     make(map[rune]Glyph),
	}
	wide := []rune{
		0x2014, 0x25BC, 0x2610, 0x271A, 0x3001, 0x3002, 0x300C,
		0x3042, 0x30A2, 0x4E00, 0x4E8C, 0x6F22, 0x5B57, 0xFF01,
	}
	for _, r := range wide {
		f.Glyphs[r] = Glyph{Advance: 2048}
	}
	f.Glyphs[0x3000] = Glyph{Advance: 2048, Blank: true}
	f.Glyphs['A'] = Glyph{Advance: 1024}
	f.Glyphs[0xFF71] = Glyph{Advance: 1024}
	return f
}

// Square returns the ink rectangle of an inked glyph with the given
// advance width.
func (f *Font) Square(advance float64) rect.Rect {
	return rect.Rect{
		LLx: math.Round(advance * SquareInset),
		LLy: 0,
		URx: math.Round(advance * (1 - SquareInset)),
		URy: math.Round(f.Ascent * SquareHeight),
	}
}

// Encode returns the font as an OpenType file.
func (f *Font) Encode() ([]byte, error) {
	codes := slices.Sorted(maps.Keys(f.Glyphs))
	upm := float64(f.UnitsPerEm)

	outlines := &cff.Outlines{
		Glyphs: []*cff.Glyph{
			{Name: ".notdef", Width: upm / 2},
		},
		Private: []*type1.PrivateDict{
			{
				BlueScale: 0.039625,
				BlueShift: 7,
				BlueFuzz:  1,
			},
		},
		FDSelect: func(glyph.ID) int { return 0 },
		Encoding: make([]glyph.ID, 256),
	}
	cmapSubtable := cmap.Format4{}
	for _, r := range codes {
		if r > 0xFFFF {
			return nil, fmt.Errorf("squarefont: codepoint %U outside the BMP", r)
		}
		g := f.Glyphs[r]
		gid := glyph.ID(len(outlines.Glyphs))
		name := fmt.Sprintf("uni%04X", r)
		var cg *cff.Glyph
		if g.Blank {
			cg = &cff.Glyph{Name: name, Width: g.Advance}
		} else {
			cg = cff.NewGlyph(name, g.Advance)
			drawSquare(cg, f.Square(g.Advance))
		}
		outlines.Glyphs = append(outlines.Glyphs, cg)
		cmapSubtable[uint16(r)] = gid
		if r < 256 {
			outlines.Encoding[r] = gid
		}
	}

	info := &sfnt.Font{
		FamilyName:         f.Family,
		Ascent:             funit.Int16(f.Ascent),
		Descent:            -funit.Int16(f.Descent),
		UnderlinePosition:  funit.Float64(-upm / 10),
		UnderlineThickness: funit.Float64(upm / 20),
		Outlines:           outlines,
		Width:              os2.WidthNormal,
		Weight:             os2.WeightNormal,
		IsRegular:          true,
		PermUse:            os2.PermInstall,
		UnitsPerEm:         f.UnitsPerEm,
		FontMatrix:         matrix.Matrix{1 / upm, 0, 0, 1 / upm, 0, 0},
		CMapTable: cmap.Table{
			{PlatformID: 0, EncodingID: 3}: cmapSubtable.Encode(0),
		},
	}

	buf := &bytes.Buffer{}
	if _, err := info.Write(buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteFile writes the font to the named file.
func (f *Font) WriteFile(fname string) error {
	data, err := f.Encode()
	if err != nil {
		return err
	}
	return os.WriteFile(fname, data, 0o644)
}

func drawSquare(path interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
}, r rect.Rect) {
	path.MoveTo(r.LLx, r.LLy)
	path.LineTo(r.URx, r.LLy)
	path.LineTo(r.URx, r.URy)
	path.LineTo(r.LLx, r.URy)
}
