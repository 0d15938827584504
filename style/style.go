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

// Package style describes the individual styles of a font family.
package style

import (
	"errors"
	"fmt"
	"strings"
)

// Profile describes how one output style is built.
type Profile struct {
	// Style is the subfamily name, e.g. "Regular" or "Bold".
	Style string

	// Weight is the numeric weight class, between 1 and 1000.
	Weight int

	Italic bool

	// Latin and CJK are the file names of the two source fonts.
	Latin string
	CJK   string

	// LatinWeightDelta and CJKWeightDelta change the stem width of the
	// respective source, in target font units.  Zero leaves the source
	// weight unchanged.
	LatinWeightDelta float64
	CJKWeightDelta   float64

	// Filename is the name of the output file.  If empty, a name is
	// derived from the family and style names.
	Filename string
}

// Validate checks the profile for missing or out-of-range values.
func (p *Profile) Validate() error {
	var errs []error
	if p.Style == "" {
		errs = append(errs, errors.New("missing style name"))
	}
	if p.Weight < 1 || p.Weight > 1000 {
		errs = append(errs, fmt.Errorf("weight %d out of range", p.Weight))
	}
	if p.Latin == "" {
		errs = append(errs, errors.New("missing Latin source"))
	}
	if p.CJK == "" {
		errs = append(errs, errors.New("missing CJK source"))
	}
	return errors.Join(errs...)
}

// IsBold reports whether the style is the Bold or Bold Italic member of
// the family.  Other heavy styles, like SemiBold or Black, are not.
func (p *Profile) IsBold() bool {
	name := strings.TrimSpace(strings.TrimSuffix(p.Style, "Italic"))
	return name == "Bold"
}

// PostScriptName returns the PostScript name of the style,
// e.g. "MyFont-BoldItalic".
func (p *Profile) PostScriptName(family string) string {
	return strings.ReplaceAll(family, " ", "") + "-" + strings.ReplaceAll(p.Style, " ", "")
}

// FullName returns the full font name, e.g. "My Font Bold".
func (p *Profile) FullName(family string) string {
	return family + " " + p.Style
}

// OutputName returns the file name of the generated font.
func (p *Profile) OutputName(family string) string {
	if p.Filename != "" {
		return p.Filename
	}
	return p.PostScriptName(family) + ".otf"
}
