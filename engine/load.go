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
	"errors"
	"fmt"
	"io/fs"
	"os"
	"unicode"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/fontmerge"
	"seehuhn.de/go/fontmerge/internal/sfntio"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/source"
)

// Load reads a TrueType or OpenType font file.
// All codepoints mapped by the best available cmap subtable are included.
func (e *Engine) Load(fname string) (*source.Source, error) {
	fd, err := os.Open(fname)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, &SourceNotFoundError{Path: fname}
	} else if err != nil {
		return nil, err
	}
	defer fd.Close()

	info, err := sfnt.Read(fd)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if info.Outlines == nil {
		return nil, fmt.Errorf("%s: no glyph outlines", fname)
	}
	cmap, err := info.CMapTable.GetBest()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}

	byGID := make(map[glyph.ID]shape.Glyph)
	glyphs := make(map[rune]shape.Glyph)
	low, high := cmap.CodeRange()
	for r := max(low, 0); r <= min(high, unicode.MaxRune); r++ {
		if r >= 0xD800 && r <= 0xDFFF {
			continue
		}
		gid := cmap.Lookup(r)
		if gid == 0 {
			continue
		}
		g, seen := byGID[gid]
		if !seen {
			g = shape.Glyph{
				Outline: readOutline(info, gid),
				Advance: float64(info.GlyphWidth(gid)),
			}
			byGID[gid] = g
		}
		glyphs[r] = g
	}

	m := source.Metrics{
		Em:        float64(info.UnitsPerEm),
		Ascent:    float64(info.Ascent),
		Descent:   -float64(info.Descent),
		Monospace: info.IsFixedPitch(),
	}
	for _, r := range []rune{' ', 'M', 0x3000} {
		if g, ok := glyphs[r]; ok {
			m.Width = g.Advance
			break
		}
	}
	if tables, err := sfntio.Read(fd); err == nil {
		if os2, err := sfntio.ReadOS2(tables.Tables["OS/2"]); err == nil {
			m.AvgCharWidth = float64(os2.AvgCharWidth)
		}
	}

	name := info.PostScriptName()
	fontmerge.Logger().Debug("source loaded",
		"file", fname, "font", name, "glyphs", len(glyphs), "em", m.Em)
	return source.New(name, m, glyphs), nil
}

// readOutline converts the outline of a glyph into cubic contours.
func readOutline(info *sfnt.Font, gid glyph.ID) shape.Outline {
	var o shape.Outline
	var cur *shape.Contour
	flush := func() {
		if cur != nil && len(cur.Segs) > 0 {
			o = append(o, *cur)
		}
		cur = nil
	}
	for cmd, pts := range info.Outlines.Path(gid) {
		switch cmd {
		case path.CmdMoveTo:
			flush()
			cur = &shape.Contour{Start: pts[0]}
		case path.CmdLineTo:
			if cur == nil {
				continue
			}
			cur.Segs = append(cur.Segs, shape.Segment{P: pts[0]})
		case path.CmdQuadTo:
			if cur == nil {
				continue
			}
			cur.Segs = append(cur.Segs, shape.QuadToCubic(cur.End(), pts[0], pts[1]))
		case path.CmdCubeTo:
			if cur == nil {
				continue
			}
			cur.Segs = append(cur.Segs, shape.Segment{Cubic: true, C1: pts[0], C2: pts[1], P: pts[2]})
		case path.CmdClose:
			flush()
		}
	}
	flush()
	return o
}
