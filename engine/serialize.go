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
	"bytes"
	"fmt"
	"math"
	"os"
	"path/filepath"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/fontmerge"
	"seehuhn.de/go/fontmerge/internal/sfntio"
	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/repertoire"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/transform"
)

// Serialize writes the repertoire as an OpenType font with CFF outlines.
// The file is written atomically: on error, no file is left at path.
func (e *Engine) Serialize(rep *repertoire.Repertoire, space *metric.Space, path string) error {
	data, err := e.Encode(rep, space)
	if err != nil {
		return &SerializationError{Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".fontmerge-*")
	if err != nil {
		return &SerializationError{Path: path, Err: err}
	}
	tmpName := tmp.Name()
	_, err = tmp.Write(data)
	if err2 := tmp.Close(); err == nil {
		err = err2
	}
	if err == nil {
		err = os.Chmod(tmpName, 0o644)
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		os.Remove(tmpName)
		return &SerializationError{Path: path, Err: err}
	}

	fontmerge.Logger().Info("font written",
		"file", path, "glyphs", rep.Len(), "bytes", len(data))
	return nil
}

// Encode returns the binary representation of the repertoire as an
// OpenType font.  Only codepoints in the Basic Multilingual Plane are
// included.
func (e *Engine) Encode(rep *repertoire.Repertoire, space *metric.Space) ([]byte, error) {
	if err := space.Validate(); err != nil {
		return nil, err
	}
	meta := &rep.Meta
	em := space.Em

	outlines := &cff.Outlines{
		Glyphs:   []*cff.Glyph{cff.NewGlyph(".notdef", space.Half())},
		FDSelect: func(glyph.ID) int { return 0 },
		Encoding: make([]glyph.ID, 256),
	}
	cmapSubtable := cmap.Format4{}
	var dropped int
	var totalAdvance float64
	for _, r := range rep.Codepoints() {
		if r > 0xFFFF {
			dropped++
			continue
		}
		g, _ := rep.Get(r)
		gid := glyph.ID(len(outlines.Glyphs))
		outlines.Glyphs = append(outlines.Glyphs, makeGlyph(fmt.Sprintf("uni%04X", r), g))
		cmapSubtable[uint16(r)] = gid
		if r < 256 {
			outlines.Encoding[r] = gid
		}
		totalAdvance += g.Advance
	}
	if dropped > 0 {
		fontmerge.Logger().Warn("codepoints outside the BMP omitted",
			"font", meta.PostScriptName, "count", dropped)
	}
	if len(outlines.Glyphs) > 0xFFFF {
		return nil, fmt.Errorf("too many glyphs (%d)", len(outlines.Glyphs))
	}

	h := computeHints(rep)
	outlines.Private = []*type1.PrivateDict{h.private}

	bold := meta.Bold
	var italicAngle float64
	if meta.Italic {
		shear := meta.Shear
		if shear == 0 {
			shear = transform.ItalicSkew
		}
		italicAngle = -math.Atan(shear) * 180 / math.Pi
	}
	now := e.now()
	info := &sfnt.Font{
		FamilyName: meta.Family,
		Width:      os2.WidthNormal,
		Weight:     os2.Weight(meta.Weight),
		IsBold:     bold,
		IsItalic:   meta.Italic,
		IsRegular:  !bold && !meta.Italic,

		Copyright: meta.Copyright,
		License:   meta.License,

		CreationTime:     now,
		ModificationTime: now,

		UnitsPerEm: uint16(math.Round(em)),
		FontMatrix: matrix.Matrix{1 / em, 0, 0, 1 / em, 0, 0},

		Ascent:             round16(space.Ascent),
		Descent:            -round16(space.Descent),
		CapHeight:          h.capHeight,
		XHeight:            h.xHeight,
		ItalicAngle:        italicAngle,
		UnderlinePosition:  funit.Float64(math.Round(-0.1 * em)),
		UnderlineThickness: funit.Float64(math.Round(0.05 * em)),

		PermUse: os2.PermInstall,

		Outlines: outlines,
		CMapTable: cmap.Table{
			{PlatformID: 0, EncodingID: 3}: cmapSubtable.Encode(0),
			{PlatformID: 3, EncodingID: 1}: cmapSubtable.Encode(0),
		},
	}

	buf := &bytes.Buffer{}
	if _, err := info.Write(buf); err != nil {
		return nil, err
	}

	// Adjust the tables which sfnt.Font does not fully control.
	tables, err := sfntio.Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		return nil, err
	}
	avg := meta.AvgCharWidth
	if avg == 0 && rep.Len() > 0 {
		avg = int16(math.Round(totalAdvance / float64(rep.Len())))
	}
	err = sfntio.PatchOS2(tables.Tables["OS/2"], &sfntio.OS2Fields{
		AvgCharWidth: avg,
		WeightClass:  uint16(meta.Weight),
		WidthClass:   5,
		FsType:       0,
		Panose:       meta.Panose,
		Vendor:       meta.Vendor,
	})
	if err != nil {
		return nil, err
	}
	if err := sfntio.PatchRevision(tables.Tables["head"], revision(meta.Version)); err != nil {
		return nil, err
	}
	names, err := sfntio.EncodeNames(nameRecords(meta))
	if err != nil {
		return nil, err
	}
	tables.Tables["name"] = names
	tables.Tables["gasp"] = sfntio.Gasp()

	out := &bytes.Buffer{}
	if _, err := tables.Write(out); err != nil {
		return nil, err
	}
	return out.Bytes(), nil
}

// makeGlyph converts a glyph into CFF format.  Coordinates are expected to
// be rounded already.
func makeGlyph(name string, g shape.Glyph) *cff.Glyph {
	cg := cff.NewGlyph(name, g.Advance)
	for _, c := range g.Outline {
		if len(c.Segs) == 0 {
			continue
		}
		cg.MoveTo(c.Start.X, c.Start.Y)
		segs := c.Segs
		if last := segs[len(segs)-1]; !last.Cubic && last.P == c.Start {
			segs = segs[:len(segs)-1] // CFF contours close automatically
		}
		for _, s := range segs {
			if s.Cubic {
				cg.CurveTo(s.C1.X, s.C1.Y, s.C2.X, s.C2.Y, s.P.X, s.P.Y)
			} else {
				cg.LineTo(s.P.X, s.P.Y)
			}
		}
	}
	return cg
}

// nameRecords returns the entries of the "name" table, in English and in
// Japanese.
func nameRecords(meta *repertoire.Metadata) []sfntio.NameRecord {
	version := "Version " + meta.Version
	uniqueID := meta.Vendor + ": " + meta.FullName + ": " + meta.Version
	var recs []sfntio.NameRecord
	for _, lang := range []uint16{sfntio.LangEnglishUS, sfntio.LangJapanese} {
		family, subfamily := meta.Family, meta.Subfamily
		if subfamily != "Regular" && subfamily != "Bold" &&
			subfamily != "Italic" && subfamily != "Bold Italic" {
			// Legacy applications only know the four basic styles.
			family = meta.Family + " " + meta.Subfamily
			subfamily = "Regular"
			if meta.Italic {
				subfamily = "Italic"
			}
		}
		recs = append(recs,
			sfntio.NameRecord{ID: sfntio.NameCopyright, Lang: lang, Value: meta.Copyright},
			sfntio.NameRecord{ID: sfntio.NameFamily, Lang: lang, Value: family},
			sfntio.NameRecord{ID: sfntio.NameSubfamily, Lang: lang, Value: subfamily},
			sfntio.NameRecord{ID: sfntio.NameUniqueID, Lang: lang, Value: uniqueID},
			sfntio.NameRecord{ID: sfntio.NameFull, Lang: lang, Value: meta.FullName},
			sfntio.NameRecord{ID: sfntio.NameVersion, Lang: lang, Value: version},
			sfntio.NameRecord{ID: sfntio.NamePostScript, Lang: lang, Value: meta.PostScriptName},
			sfntio.NameRecord{ID: sfntio.NameLicense, Lang: lang, Value: meta.License},
		)
		if family != meta.Family {
			recs = append(recs,
				sfntio.NameRecord{ID: sfntio.NamePreferredFamily, Lang: lang, Value: meta.Family},
				sfntio.NameRecord{ID: sfntio.NamePreferredSubfamily, Lang: lang, Value: meta.Subfamily},
			)
		}
	}
	return recs
}

// revision converts a version string like "1.2.3" into the value of the
// fontRevision field, here 1.002.
func revision(version string) float64 {
	var major, minor int
	n, _ := fmt.Sscanf(version, "%d.%d", &major, &minor)
	switch n {
	case 0:
		return 1
	case 1:
		return float64(major)
	}
	return float64(major) + float64(minor)/1000
}
