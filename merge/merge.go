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
	"math"
	"unicode"

	"seehuhn.de/go/fontmerge"
	"seehuhn.de/go/fontmerge/align"
	"seehuhn.de/go/fontmerge/override"
	"seehuhn.de/go/fontmerge/repertoire"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/source"
	"seehuhn.de/go/fontmerge/style"
	"seehuhn.de/go/fontmerge/transform"
)

// Merge builds the repertoire of one style from the two sources.
//
// The CJK glyphs are transformed, re-weighted and aligned first, and the
// CJK-scoped override recipes are applied to them.  Then the Latin glyphs
// are re-weighted, transformed and aligned, and copied over the CJK
// glyphs, except for codepoints synthesized by CJK-scoped recipes.
// Finally the remaining override recipes are applied and the style
// metadata is attached.
//
// Every glyph of the result has an advance width of either the full or
// the half cell width of fam.Space.
func Merge(latin, cjk *source.Source, fam *Family, p *style.Profile, geom Geometry) (*repertoire.Repertoire, error) {
	space := fam.Space
	tp := transform.Profile{Italic: p.Italic, Skew: fam.ItalicSkew}
	log := fontmerge.Logger().With("style", p.Style)

	rep := repertoire.New()

	// CJK glyphs, stroked after the transformation
	cjkMetrics := metrics(cjk, fam.CJKAscent)
	m := transform.Resolve(cjkMetrics, space, tp)
	stroke := shape.WeightStroke(fam.CJKPen, p.CJKWeightDelta)
	policy := fam.cjkPolicy()
	for _, r := range cjk.Codepoints() {
		g, _ := cjk.Glyph(r)
		g = g.Transform(m)
		if !stroke.IsZero() && g.HasInk() {
			o, err := geom.OutlineStroke(g.Outline, stroke)
			if err != nil {
				return nil, &shape.GeometryOperationError{Op: "stroke", Codepoint: r, Err: err}
			}
			g.Outline = o
		}
		g, _, _ = align.Align(g, policy.Classify(r), space)
		rep.Set(r, g)
	}
	err := fam.Overrides.Apply(rep, geom, space, override.CJK)
	if err != nil {
		return nil, err
	}
	protected := fam.Overrides.Targets(override.CJK)
	log.Debug("CJK glyphs normalized", "source", cjk.Name, "glyphs", rep.Len())

	// Latin glyphs, stroked before the transformation
	latinMetrics := metrics(latin, fam.LatinAscent)
	m = transform.Resolve(latinMetrics, space, tp)
	k := transform.ScaleFactor(latinMetrics, space)
	stroke = shape.WeightStroke(fam.LatinPen, p.LatinWeightDelta/k)
	policy = fam.latinPolicy()
	var copied int
	for _, r := range latin.Codepoints() {
		if fam.excludes(r) || protected[r] {
			continue
		}
		g, _ := latin.Glyph(r)
		if !isWorthOutputting(r, g) {
			continue
		}
		if !stroke.IsZero() && g.HasInk() {
			o, err := geom.OutlineStroke(g.Outline, stroke)
			if err != nil {
				return nil, &shape.GeometryOperationError{Op: "stroke", Codepoint: r, Err: err}
			}
			g.Outline = o
		}
		g = g.Transform(m)
		for _, adj := range fam.LatinAdjust {
			if adj.Contains(r) {
				g.Outline = g.Outline.Transform(adj.M)
			}
		}
		g, _, _ = align.Align(g, policy.Classify(r), space)
		rep.Set(r, g)
		copied++
	}
	log.Debug("Latin glyphs merged", "source", latin.Name, "glyphs", copied)

	err = fam.Overrides.Apply(rep, geom, space, override.Merged)
	if err != nil {
		return nil, err
	}

	rep.Meta = repertoire.Metadata{
		Family:         fam.Name,
		Subfamily:      p.Style,
		FullName:       p.FullName(fam.Name),
		PostScriptName: p.PostScriptName(fam.Name),
		Weight:         p.Weight,
		WeightName:     WeightName(p.Weight),
		Bold:           p.IsBold(),
		Italic:         p.Italic,
		Shear:          tp.Shear(),
		Panose:         repertoire.Panose(p.IsBold()),
		Copyright:      fam.Copyright,
		License:        fam.License,
		Version:        fam.Version,
		Vendor:         fam.Vendor,
	}
	if avg := cjkMetrics.AvgCharWidth; avg > 0 {
		scaled := math.Round(avg * transform.ScaleFactor(cjkMetrics, space))
		rep.Meta.AvgCharWidth = int16(min(scaled, math.MaxInt16))
	}

	if err := rep.CheckAdvances(space); err != nil {
		return nil, err
	}
	return rep, nil
}

// isWorthOutputting reports whether a Latin glyph should replace the
// corresponding CJK glyph.  Blank glyphs are only used for space
// characters.
func isWorthOutputting(r rune, g shape.Glyph) bool {
	return g.HasInk() || unicode.Is(unicode.Zs, r)
}

// WeightName returns the conventional name of a numeric weight class.
func WeightName(weight int) string {
	switch {
	case weight <= 150:
		return "Thin"
	case weight <= 250:
		return "ExtraLight"
	case weight <= 350:
		return "Light"
	case weight <= 450:
		return "Regular"
	case weight <= 550:
		return "Medium"
	case weight <= 650:
		return "SemiBold"
	case weight <= 750:
		return "Bold"
	case weight <= 850:
		return "ExtraBold"
	default:
		return "Black"
	}
}
