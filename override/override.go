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

// Package override synthesizes glyphs which are missing or unsuitable in
// the source fonts.
//
// A [Table] is an ordered list of [Recipe] values.  Each recipe replaces
// one target codepoint with geometry derived from glyphs already present in
// the repertoire: a copy, the intersection of two glyphs, a mirror image or
// a rotated copy.  Recipes are applied in declaration order, so that a
// later recipe for the same target wins.
package override

import (
	"fmt"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fontmerge/align"
	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/repertoire"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/transform"
)

// Op is a glyph synthesis operation.
type Op int

// These are the supported operations.
const (
	// CopyReplace replaces the target by a copy of Sources[0].
	CopyReplace Op = iota

	// CopyIntersect replaces the target by the intersection of Sources[0]
	// and Sources[1].  The advance width is taken from Sources[0].
	CopyIntersect

	// Mirror replaces the target by Sources[0], reflected about the
	// vertical center line of its advance box.
	Mirror

	// Rotate90 replaces the target by Sources[0], rotated
	// counter-clockwise by 90 degrees about the origin.
	Rotate90

	// Realign applies Extra and Align to the target glyph itself.
	// Sources is ignored.
	Realign
)

func (op Op) String() string {
	switch op {
	case CopyReplace:
		return "copy"
	case CopyIntersect:
		return "intersect"
	case Mirror:
		return "mirror"
	case Rotate90:
		return "rotate90"
	case Realign:
		return "realign"
	default:
		return fmt.Sprintf("Op(%d)", int(op))
	}
}

func (op Op) numSources() int {
	switch op {
	case CopyIntersect:
		return 2
	case Realign:
		return 0
	default:
		return 1
	}
}

// Scope selects the stage of the build at which a recipe is applied.
type Scope int

const (
	// Merged recipes run after the Latin glyphs have been copied into
	// the repertoire.
	Merged Scope = iota

	// CJK recipes run on the normalized CJK glyphs alone, before any
	// Latin glyph is copied.  Their targets are not overwritten by Latin
	// glyphs.
	CJK
)

func (s Scope) String() string {
	if s == CJK {
		return "cjk"
	}
	return "merged"
}

// Recipe describes how to synthesize one glyph.
type Recipe struct {
	// Name identifies the table the recipe belongs to, for error messages.
	Name string

	Target  rune
	Op      Op
	Sources []rune

	// Extra, if non-nil, is applied to the synthesized glyph before
	// alignment.
	Extra *matrix.Matrix

	// Align, if non-nil, positions the synthesized glyph.
	Align *align.Rule

	Scope Scope

	// IfPresent makes the recipe a no-op when a required glyph is missing,
	// instead of failing the build.
	IfPresent bool
}

// Geometry provides the outline boolean operations needed by recipes.
type Geometry interface {
	Intersect(a, b shape.Outline) (shape.Outline, error)
}

// Table is an ordered list of recipes.
type Table []Recipe

// Apply runs all recipes of the given scope, in declaration order.
func (t Table) Apply(rep *repertoire.Repertoire, geom Geometry, s *metric.Space, scope Scope) error {
	if err := t.Validate(); err != nil {
		return err
	}
	for i := range t {
		rec := &t[i]
		if rec.Scope != scope {
			continue
		}
		if err := rec.apply(rep, geom, s); err != nil {
			return err
		}
	}
	return nil
}

// Targets returns the set of codepoints written by the recipes of the given
// scope.
func (t Table) Targets(scope Scope) map[rune]bool {
	res := make(map[rune]bool)
	for _, rec := range t {
		if rec.Scope == scope {
			res[rec.Target] = true
		}
	}
	return res
}

// Validate checks that every recipe names the right number of sources.
func (t Table) Validate() error {
	for _, rec := range t {
		if n := rec.Op.numSources(); len(rec.Sources) < n {
			return fmt.Errorf("override %s for %U: %s needs %d source glyphs, got %d",
				rec.Name, rec.Target, rec.Op, n, len(rec.Sources))
		}
	}
	return nil
}

func (rec *Recipe) apply(rep *repertoire.Repertoire, geom Geometry, s *metric.Space) error {
	needed := rec.Sources[:rec.Op.numSources()]
	if rec.Op == Realign {
		needed = []rune{rec.Target}
	}
	srcs := make([]shape.Glyph, len(needed))
	for i, r := range needed {
		g, ok := rep.Get(r)
		if !ok {
			if rec.IfPresent {
				return nil
			}
			return &MissingSourceGlyphError{Recipe: rec.Name, Target: rec.Target, Source: r}
		}
		srcs[i] = g
	}

	var g shape.Glyph
	switch rec.Op {
	case CopyReplace, Realign:
		g = srcs[0]
	case CopyIntersect:
		o, err := geom.Intersect(srcs[0].Outline, srcs[1].Outline)
		if err != nil {
			return &shape.GeometryOperationError{Op: "intersect", Codepoint: rec.Target, Err: err}
		}
		g = shape.Glyph{Outline: o, Advance: srcs[0].Advance}
	case Mirror:
		src := srcs[0]
		g = src.Transform(transform.Compose(
			transform.Scale(-1, 1),
			transform.Translate(src.Advance, 0),
		))
	case Rotate90:
		src := srcs[0]
		g = shape.Glyph{
			Outline: src.Outline.Transform(transform.Rotate(90)),
			Advance: src.Advance,
		}
	default:
		return fmt.Errorf("override %s for %U: unknown operation %d", rec.Name, rec.Target, rec.Op)
	}

	if rec.Extra != nil {
		g = g.Transform(*rec.Extra)
	}
	if rec.Align != nil {
		g, _, _ = align.Align(g, *rec.Align, s)
	}
	rep.Set(rec.Target, g)
	return nil
}
