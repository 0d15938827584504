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

package merge

import (
	"errors"
	"fmt"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fontmerge/align"
	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/override"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/source"
)

// Family holds the settings shared by all styles of a font family.
// A Family must not be modified while builds are running.
type Family struct {
	Name      string
	Version   string // e.g. "1.2.0"
	Vendor    string // four character OS/2 vendor ID
	Copyright string
	License   string

	Space *metric.Space

	// Overrides is applied to every style.  Recipes with scope
	// [override.CJK] run on the CJK glyphs before the sources are merged.
	Overrides override.Table

	LatinPolicy *align.Policy
	CJKPolicy   *align.Policy

	// LatinExclude lists codepoints which are always taken from the CJK
	// source.
	LatinExclude []Range

	// LatinAdjust lists extra transformations for ranges of Latin glyphs.
	// These are applied after the main transformation and before
	// alignment.
	LatinAdjust []Adjustment

	// LatinPen and CJKPen select the pen used for weight changes.
	LatinPen shape.Pen
	CJKPen   shape.Pen

	// LatinAscent and CJKAscent, if non-zero, replace the ascent of the
	// respective source when computing the scale factor.
	LatinAscent float64
	CJKAscent   float64

	// ItalicSkew, if non-zero, is the shear factor used for italic styles.
	ItalicSkew float64

	// PostProcess enables overlap removal and rounding of all glyphs
	// before the font is written.
	PostProcess bool

	// SourceDir is prepended to relative source file names, DistDir to
	// output file names.
	SourceDir string
	DistDir   string
}

// Range is an inclusive range of codepoints.
type Range struct {
	First, Last rune
}

// Contains reports whether r lies in the range.
func (rg Range) Contains(r rune) bool {
	return r >= rg.First && r <= rg.Last
}

// Adjustment is an extra transformation for a range of codepoints.
type Adjustment struct {
	Range
	M matrix.Matrix
}

// NewFamily returns a family description with the default alignment
// policies and the default override table.
func NewFamily(name string, space *metric.Space) *Family {
	return &Family{
		Name:         name,
		Version:      "1.0.0",
		Space:        space,
		Overrides:    override.Default(space),
		LatinPolicy:  align.Latin(),
		CJKPolicy:    align.CJK(),
		LatinExclude: []Range{{First: 0x2026, Last: 0x2026}},
	}
}

// Validate checks the family settings.
func (fam *Family) Validate() error {
	var errs []error
	if fam.Name == "" {
		errs = append(errs, errors.New("missing family name"))
	}
	if fam.Space == nil {
		errs = append(errs, errors.New("missing metric space"))
	} else if err := fam.Space.Validate(); err != nil {
		errs = append(errs, err)
	}
	if len(fam.Vendor) > 4 {
		errs = append(errs, fmt.Errorf("vendor ID %q longer than 4 characters", fam.Vendor))
	}
	if err := fam.Overrides.Validate(); err != nil {
		errs = append(errs, err)
	}
	for _, rg := range slices.Concat(fam.LatinExclude, adjustRanges(fam.LatinAdjust)) {
		if rg.First > rg.Last {
			errs = append(errs, fmt.Errorf("invalid range %04X-%04X", rg.First, rg.Last))
		}
	}
	if err := errors.Join(errs...); err != nil {
		return &ConfigurationError{Reason: "invalid family settings", Err: err}
	}
	return nil
}

func adjustRanges(adj []Adjustment) []Range {
	res := make([]Range, len(adj))
	for i, a := range adj {
		res[i] = a.Range
	}
	return res
}

func (fam *Family) excludes(r rune) bool {
	for _, rg := range fam.LatinExclude {
		if rg.Contains(r) {
			return true
		}
	}
	return false
}

func (fam *Family) latinPolicy() *align.Policy {
	if fam.LatinPolicy == nil {
		return align.Latin()
	}
	return fam.LatinPolicy
}

func (fam *Family) cjkPolicy() *align.Policy {
	if fam.CJKPolicy == nil {
		return align.CJK()
	}
	return fam.CJKPolicy
}

// sourcePath returns the path of a source file.
func (fam *Family) sourcePath(fname string) string {
	if fam.SourceDir == "" || filepath.IsAbs(fname) {
		return fname
	}
	return filepath.Join(fam.SourceDir, fname)
}

// outputPath returns the path of an output file.
func (fam *Family) outputPath(fname string) string {
	if fam.DistDir == "" || filepath.IsAbs(fname) {
		return fname
	}
	return filepath.Join(fam.DistDir, fname)
}

// metrics returns the metrics of src, with the ascent replaced by the
// given value if it is positive.
func metrics(src *source.Source, ascent float64) source.Metrics {
	m := src.Metrics
	if ascent > 0 {
		m.Ascent = ascent
	}
	return m
}
