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
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fontmerge/engine"
	"seehuhn.de/go/fontmerge/internal/squarefont"
	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/override"
	"seehuhn.de/go/fontmerge/repertoire"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/source"
	"seehuhn.de/go/fontmerge/style"
)

func testSpace(t *testing.T) *metric.Space {
	t.Helper()
	space, err := metric.New(1000, 800, 200, 1000)
	if err != nil {
		t.Fatal(err)
	}
	return space
}

func testEngine() *engine.Engine {
	return engine.New()
}

func latinSource() *source.Source {
	m := source.Metrics{Em: 1000, Ascent: 800, Descent: 200, Width: 600, Monospace: true}
	return source.New("LatinTest", m, map[rune]shape.Glyph{
		' ':    {Advance: 600},
		0x0007: {Advance: 600},
		'A':    {Outline: shape.Rect(100, 0, 500, 700), Advance: 600},
		'|':    {Outline: shape.Rect(270, -100, 330, 800), Advance: 600},
		0x2026: {Outline: shape.Rect(50, 0, 550, 100), Advance: 600},
		0x251C: {Outline: shape.Rect(270, -200, 600, 800), Advance: 600},
		0x3000: {Advance: 600},
	})
}

func cjkSource() *source.Source {
	m := source.Metrics{Em: 1000, Ascent: 880, Descent: 120, Width: 1000, AvgCharWidth: 1000}
	return source.New("CJKTest", m, map[rune]shape.Glyph{
		'A':    {Outline: shape.Rect(0, 0, 500, 500), Advance: 500},
		0x2026: {Outline: shape.Rect(100, 0, 900, 100), Advance: 1000},
		0x2610: {Outline: shape.Rect(100, -50, 900, 750), Advance: 1000},
		0x271A: {Outline: shape.Rect(300, 0, 700, 700), Advance: 1000},
		0x3000: {Advance: 1000},
		0x4E00: {Outline: shape.Rect(50, 300, 950, 400), Advance: 1000},
		0xFF71: {Outline: shape.Rect(100, 0, 400, 600), Advance: 500},
	})
}

func testFamily(t *testing.T, overrides override.Table) *Family {
	fam := NewFamily("Test Mono", testSpace(t))
	fam.Overrides = overrides
	fam.Vendor = "TEST"
	return fam
}

var regular = &style.Profile{Style: "Regular", Weight: 400, Latin: "latin.otf", CJK: "cjk.otf"}

func mustMerge(t *testing.T, fam *Family, p *style.Profile) *repertoire.Repertoire {
	t.Helper()
	rep, err := Merge(latinSource(), cjkSource(), fam, p, testEngine())
	if err != nil {
		t.Fatal(err)
	}
	return rep
}

func mustGet(t *testing.T, rep *repertoire.Repertoire, r rune) shape.Glyph {
	t.Helper()
	g, ok := rep.Get(r)
	if !ok {
		t.Fatalf("%U missing", r)
	}
	return g
}

func TestCJKScale(t *testing.T) {
	rep := mustMerge(t, testFamily(t, nil), regular)

	g := mustGet(t, rep, 0x4E00)
	if g.Advance != 1000 {
		t.Errorf("advance %g, want 1000", g.Advance)
	}
	k := 800.0 / 880.0
	if w := g.InkWidth(); math.Abs(w-900*k) > 1e-6 {
		t.Errorf("ink width %g, want %g", w, 900*k)
	}
	if d := g.LeftBearing() - g.RightBearing(); math.Abs(d) > 1 {
		t.Errorf("glyph not centered: lsb-rsb = %g", d)
	}

	// half-width forms
	g = mustGet(t, rep, 0xFF71)
	if g.Advance != 500 {
		t.Errorf("half-width katakana has advance %g", g.Advance)
	}
}

func TestAdvanceInvariant(t *testing.T) {
	fam := testFamily(t, override.Table{})
	fam.Overrides = append(fam.Overrides, override.IdeographicSpace()...)
	fam.Overrides = append(fam.Overrides, override.BrokenBar()...)
	fam.Overrides = append(fam.Overrides, override.BoxDrawing()...)
	for _, p := range []*style.Profile{
		regular,
		{Style: "Bold Italic", Weight: 700, Italic: true, Latin: "l", CJK: "c", LatinWeightDelta: 30, CJKWeightDelta: 20},
	} {
		rep := mustMerge(t, fam, p)
		for _, r := range rep.Codepoints() {
			g := mustGet(t, rep, r)
			if g.Advance != 1000 && g.Advance != 500 {
				t.Errorf("%s: %U has advance %g", p.Style, r, g.Advance)
			}
		}
	}
}

func TestLatinWins(t *testing.T) {
	rep := mustMerge(t, testFamily(t, nil), regular)

	g := mustGet(t, rep, 'A')
	if w := g.InkWidth(); math.Abs(w-400) > 1e-6 {
		t.Errorf("'A' has ink width %g, want 400 from the Latin source", w)
	}

	// excluded from the Latin source
	g = mustGet(t, rep, 0x2026)
	if w := g.InkWidth(); math.Abs(w-800*800/880.0) > 1e-6 {
		t.Errorf("U+2026 has ink width %g, want the CJK glyph", w)
	}

	// blank glyphs are only copied for space characters
	if !rep.Has(' ') {
		t.Error("space missing")
	}
	if rep.Has(0x0007) {
		t.Error("blank control character copied")
	}
}

func TestCJKOverridesProtected(t *testing.T) {
	rep := mustMerge(t, testFamily(t, override.IdeographicSpace()), regular)
	g := mustGet(t, rep, 0x3000)
	if !g.HasInk() {
		t.Error("U+3000 was replaced by the blank Latin glyph")
	}
	if g.Advance != 1000 {
		t.Errorf("U+3000 has advance %g", g.Advance)
	}
}

func TestBrokenBar(t *testing.T) {
	rep := mustMerge(t, testFamily(t, override.BrokenBar()), regular)
	bar := mustGet(t, rep, '|')
	broken := mustGet(t, rep, 0x00A6)
	if d := cmp.Diff(bar, broken); d != "" {
		t.Errorf("U+00A6 differs from U+007C (-want +got):\n%s", d)
	}
}

func TestBoxDrawingFlushRight(t *testing.T) {
	rep := mustMerge(t, testFamily(t, override.BoxDrawing()), regular)
	g := mustGet(t, rep, 0x251C)
	lsb := g.LeftBearing()
	if want := g.Advance - g.InkWidth(); math.Abs(lsb-want) > 1e-6 {
		t.Errorf("lsb = %g, want %g", lsb, want)
	}
	if math.Abs(lsb-g.RightBearing()) < 1 {
		t.Error("box-drawing glyph is centered")
	}
}

func TestWeightDelta(t *testing.T) {
	p := *regular
	p.LatinWeightDelta = 40
	rep := mustMerge(t, testFamily(t, nil), &p)
	g := mustGet(t, rep, 'A')
	if w := g.InkWidth(); math.Abs(w-440) > 2 {
		t.Errorf("'A' has ink width %g, want 440", w)
	}
	if d := g.LeftBearing() - g.RightBearing(); math.Abs(d) > 1 {
		t.Errorf("glyph not centered: lsb-rsb = %g", d)
	}

	p = *regular
	p.CJKWeightDelta = -20
	rep = mustMerge(t, testFamily(t, nil), &p)
	g = mustGet(t, rep, 0x4E00)
	want := 900*800/880.0 - 20
	if w := g.InkWidth(); math.Abs(w-want) > 2 {
		t.Errorf("U+4E00 has ink width %g, want %g", w, want)
	}
}

func TestItalic(t *testing.T) {
	p := *regular
	p.Italic = true
	rep := mustMerge(t, testFamily(t, nil), &p)
	g := mustGet(t, rep, '|')
	// a 60 unit wide bar spanning 900 units, sheared by 0.25
	if w := g.InkWidth(); math.Abs(w-(60+0.25*900)) > 1e-6 {
		t.Errorf("ink width %g", w)
	}
	if rep.Meta.Shear != 0.25 {
		t.Errorf("shear %g, want 0.25", rep.Meta.Shear)
	}

	fam := testFamily(t, nil)
	fam.ItalicSkew = 0.1
	rep = mustMerge(t, fam, &p)
	if rep.Meta.Shear != 0.1 {
		t.Errorf("shear %g, want 0.1", rep.Meta.Shear)
	}
}

func TestMetadata(t *testing.T) {
	fam := testFamily(t, nil)
	fam.Version = "2.1.0"
	p := &style.Profile{Style: "Bold", Weight: 700, Latin: "l", CJK: "c"}
	rep := mustMerge(t, fam, p)

	want := repertoire.Metadata{
		Family:         "Test Mono",
		Subfamily:      "Bold",
		FullName:       "Test Mono Bold",
		PostScriptName: "TestMono-Bold",
		Weight:         700,
		WeightName:     "Bold",
		Bold:           true,
		Panose:         [10]byte{2, 11, 8, 9, 2, 2, 3, 2, 2, 7},
		Version:        "2.1.0",
		Vendor:         "TEST",
		AvgCharWidth:   909,
	}
	if d := cmp.Diff(want, rep.Meta); d != "" {
		t.Errorf("metadata mismatch (-want +got):\n%s", d)
	}

	rep = mustMerge(t, fam, regular)
	if rep.Meta.Panose[2] != 5 {
		t.Errorf("regular style has PANOSE weight %d", rep.Meta.Panose[2])
	}
}

func TestWeightName(t *testing.T) {
	cases := map[int]string{
		100: "Thin",
		300: "Light",
		400: "Regular",
		500: "Medium",
		600: "SemiBold",
		700: "Bold",
		900: "Black",
	}
	for w, want := range cases {
		if got := WeightName(w); got != want {
			t.Errorf("WeightName(%d) = %q, want %q", w, got, want)
		}
	}
}

// writeSources writes square test fonts into dir.
func writeSources(t *testing.T, dir string) {
	t.Helper()
	latin := squarefont.Latin()
	if err := latin.WriteFile(filepath.Join(dir, "latin.otf")); err != nil {
		t.Fatal(err)
	}
	latin.Glyphs['|'] = squarefont.Glyph{Advance: 500, Blank: true}
	if err := latin.WriteFile(filepath.Join(dir, "latin-nobar.otf")); err != nil {
		t.Fatal(err)
	}
	if err := squarefont.CJK().WriteFile(filepath.Join(dir, "cjk.otf")); err != nil {
		t.Fatal(err)
	}
}

func buildFamily(t *testing.T, overrides override.Table) *Family {
	dir := t.TempDir()
	writeSources(t, dir)
	fam := testFamily(t, overrides)
	fam.SourceDir = dir
	fam.DistDir = t.TempDir()
	return fam
}

func TestFinishRechecksAdvances(t *testing.T) {
	rep := repertoire.New()
	rep.Set(0xFF71, shape.Glyph{Outline: shape.Rect(100, 0, 400, 700), Advance: 500.5})

	// a cell width which metric.New rejects
	odd := &metric.Space{Em: 1000, Ascent: 800, Descent: 200, Width: 1001}
	err := finish(rep, odd, testEngine())
	var advErr *repertoire.AdvanceError
	if !errors.As(err, &advErr) {
		t.Fatalf("got error %v, want AdvanceError", err)
	}
	if advErr.Codepoint != 0xFF71 {
		t.Errorf("error for %U, want U+FF71", advErr.Codepoint)
	}

	rep.Set(0xFF71, shape.Glyph{Outline: shape.Rect(100, 0, 400, 700), Advance: 500})
	if err := finish(rep, testSpace(t), testEngine()); err != nil {
		t.Errorf("unexpected error %v", err)
	}
}

func TestMissingSourceGlyph(t *testing.T) {
	fam := buildFamily(t, override.BrokenBar())
	p := &style.Profile{Style: "Regular", Weight: 400, Latin: "latin-nobar.otf", CJK: "cjk.otf"}

	_, _, err := Build(fam, p, testEngine())
	var missing *override.MissingSourceGlyphError
	if !errors.As(err, &missing) {
		t.Fatalf("got error %v, want MissingSourceGlyphError", err)
	}
	if missing.Source != '|' {
		t.Errorf("wrong source codepoint %U", missing.Source)
	}

	entries, err := os.ReadDir(fam.DistDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output written: %v", entries)
	}
}

func TestBuildAll(t *testing.T) {
	fam := buildFamily(t, override.BrokenBar())
	fam.PostProcess = true
	profiles := []*style.Profile{
		{Style: "Regular", Weight: 400, Latin: "latin.otf", CJK: "cjk.otf"},
		{Style: "Bold", Weight: 700, Latin: "latin.otf", CJK: "cjk.otf", LatinWeightDelta: 10, CJKWeightDelta: 10},
		{Style: "Light", Weight: 300, Latin: "latin-nobar.otf", CJK: "cjk.otf"},
	}

	for _, parallel := range []bool{false, true} {
		res, err := BuildAll(fam, profiles, testEngine(), parallel)
		if err != nil {
			t.Fatal(err)
		}
		if len(res) != len(profiles) {
			t.Fatalf("%d results, want %d", len(res), len(profiles))
		}
		for _, r := range res[:2] {
			if r.Err != nil {
				t.Errorf("%s: %v", r.Profile.Style, r.Err)
				continue
			}
			if _, err := os.Stat(r.Path); err != nil {
				t.Errorf("%s: %v", r.Profile.Style, err)
			}
			if filepath.Base(r.Path) != r.Profile.PostScriptName(fam.Name)+".otf" {
				t.Errorf("unexpected output file %q", r.Path)
			}
		}

		// the failure of one style does not affect the others
		var missing *override.MissingSourceGlyphError
		if !errors.As(res[2].Err, &missing) {
			t.Errorf("Light: got error %v, want MissingSourceGlyphError", res[2].Err)
		}
		if res[2].Path != "" {
			t.Errorf("Light: output %q reported", res[2].Path)
		}
	}
}

func TestBuildAllMissingFile(t *testing.T) {
	fam := buildFamily(t, nil)
	profiles := []*style.Profile{
		{Style: "Regular", Weight: 400, Latin: "latin.otf", CJK: "cjk.otf"},
		{Style: "Bold", Weight: 700, Latin: "latin.otf", CJK: "missing.otf"},
	}

	res, err := BuildAll(fam, profiles, testEngine(), false)
	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("got error %v, want ConfigurationError", err)
	}
	if confErr.Style != "Bold" {
		t.Errorf("error reported for style %q", confErr.Style)
	}
	if res != nil {
		t.Error("results returned despite configuration error")
	}

	entries, err := os.ReadDir(fam.DistDir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("output written: %v", entries)
	}
}

func TestBuildMissingSource(t *testing.T) {
	fam := buildFamily(t, nil)
	p := &style.Profile{Style: "Regular", Weight: 400, Latin: "latin.otf", CJK: "missing.otf"}
	_, _, err := Build(fam, p, testEngine())
	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("got error %v, want ConfigurationError", err)
	}
	var notFound *engine.SourceNotFoundError
	if !errors.As(err, &notFound) {
		t.Errorf("error %v does not wrap SourceNotFoundError", err)
	}
}

func TestFamilyValidate(t *testing.T) {
	fam := testFamily(t, nil)
	if err := fam.Validate(); err != nil {
		t.Fatal(err)
	}

	fam.Vendor = "TOOLONG"
	fam.LatinExclude = append(fam.LatinExclude, Range{First: 0x2600, Last: 0x25FF})
	err := fam.Validate()
	var confErr *ConfigurationError
	if !errors.As(err, &confErr) {
		t.Fatalf("got error %v, want ConfigurationError", err)
	}
}
