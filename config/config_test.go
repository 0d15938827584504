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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fontmerge/merge"
	"seehuhn.de/go/fontmerge/override"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/style"
)

const testConfig = `
family: Example Mono
version: 1.2.0
vendor: EXMP
license_file: LICENSE.txt
copyright: Copyright (c) 2026 Example
source_dir: sources
dist_dir: dist
metrics: {em: 1000, ascent: 880, descent: 120, width: 1000}
post_process: true
overrides: [ideographic-space, broken-bar, powerline]
latin_exclude: ["U+2026", "2500-25FF"]
latin_adjust:
  - range: 2500-25AF
    scale: 1.024
    translate: [0, -30]
cjk_pen: calligraphic
styles:
  - style: Regular
    weight: 400
    latin: latin-regular.ttf
    cjk: cjk-regular.otf
  - style: Bold
    weight: 700
    latin: latin-bold.ttf
    cjk: cjk-regular.otf
    cjk_weight_delta: 20
    filename: ExampleMono-Bold.otf
`

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	fname := filepath.Join(dir, "fontmerge.yaml")
	if err := os.WriteFile(fname, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return fname
}

func TestLoad(t *testing.T) {
	fname := writeConfig(t, testConfig)
	dir := filepath.Dir(fname)
	err := os.WriteFile(filepath.Join(dir, "LICENSE.txt"), []byte("Example License\n"), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	fam, profiles, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}

	if fam.Name != "Example Mono" || fam.Version != "1.2.0" || fam.Vendor != "EXMP" {
		t.Errorf("wrong family settings: %q %q %q", fam.Name, fam.Version, fam.Vendor)
	}
	if fam.License != "Example License" {
		t.Errorf("license %q", fam.License)
	}
	if fam.SourceDir != filepath.Join(dir, "sources") || fam.DistDir != filepath.Join(dir, "dist") {
		t.Errorf("wrong directories %q %q", fam.SourceDir, fam.DistDir)
	}
	if fam.Space.Em != 1000 || fam.Space.Ascent != 880 || fam.Space.Width != 1000 {
		t.Errorf("wrong metrics %#v", fam.Space)
	}
	if !fam.PostProcess {
		t.Error("post processing not enabled")
	}
	if fam.CJKPen != shape.Calligraphic || fam.LatinPen != shape.Circular {
		t.Errorf("wrong pens %s %s", fam.LatinPen, fam.CJKPen)
	}

	targets := fam.Overrides.Targets(override.Merged)
	if !targets[0x00A6] || !targets[0xE0B0] {
		t.Error("merged-scope recipes missing")
	}

	wantExclude := []merge.Range{{First: 0x2026, Last: 0x2026}, {First: 0x2500, Last: 0x25FF}}
	if d := cmp.Diff(wantExclude, fam.LatinExclude); d != "" {
		t.Errorf("exclusions (-want +got):\n%s", d)
	}
	if len(fam.LatinAdjust) != 1 {
		t.Fatalf("%d adjustments", len(fam.LatinAdjust))
	}
	m := fam.LatinAdjust[0].M
	if m[0] != 1.024 || m[3] != 1.024 || m[5] != -30 {
		t.Errorf("wrong adjustment %v", m)
	}

	wantProfiles := []*style.Profile{
		{Style: "Regular", Weight: 400, Latin: "latin-regular.ttf", CJK: "cjk-regular.otf"},
		{Style: "Bold", Weight: 700, Latin: "latin-bold.ttf", CJK: "cjk-regular.otf",
			CJKWeightDelta: 20, Filename: "ExampleMono-Bold.otf"},
	}
	if d := cmp.Diff(wantProfiles, profiles); d != "" {
		t.Errorf("profiles (-want +got):\n%s", d)
	}
}

func TestDefaults(t *testing.T) {
	fname := writeConfig(t, `
family: Example Mono
metrics: {em: 1000, ascent: 800, descent: 200, width: 1000}
styles: []
`)
	fam, _, err := Load(fname)
	if err != nil {
		t.Fatal(err)
	}
	if fam.Version != "1.0.0" {
		t.Errorf("version %q", fam.Version)
	}
	if len(fam.Overrides) == 0 {
		t.Error("default overrides missing")
	}
	if len(fam.LatinExclude) != 1 {
		t.Errorf("default exclusions %v", fam.LatinExclude)
	}
}

func TestLoadErrors(t *testing.T) {
	cases := map[string]string{
		"syntax":      "family: [unterminated\n",
		"unknown key": "family: X\ncolour: red\n",
		"metrics":     "family: X\nmetrics: {em: 1000, ascent: 800, descent: 100, width: 1000}\n",
		"odd width":   "family: X\nmetrics: {em: 1000, ascent: 800, descent: 200, width: 1001}\n",
		"override":    "family: X\nmetrics: {em: 1000, ascent: 800, descent: 200, width: 1000}\noverrides: [no-such-table]\n",
		"range":       "family: X\nmetrics: {em: 1000, ascent: 800, descent: 200, width: 1000}\nlatin_exclude: [\"25FF-2500\"]\n",
		"pen":         "family: X\nmetrics: {em: 1000, ascent: 800, descent: 200, width: 1000}\nlatin_pen: square\n",
		"empty":       "",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, _, err := Load(writeConfig(t, body))
			var confErr *merge.ConfigurationError
			if !errors.As(err, &confErr) {
				t.Fatalf("got error %v, want ConfigurationError", err)
			}
		})
	}

	_, _, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	var confErr *merge.ConfigurationError
	if !errors.As(err, &confErr) {
		t.Errorf("got error %v, want ConfigurationError", err)
	}
}

func TestParseRange(t *testing.T) {
	cases := []struct {
		in   string
		want merge.Range
	}{
		{"2026", merge.Range{First: 0x2026, Last: 0x2026}},
		{"U+2500-U+257F", merge.Range{First: 0x2500, Last: 0x257F}},
		{" e0b0 - e0d4 ", merge.Range{First: 0xE0B0, Last: 0xE0D4}},
	}
	for _, c := range cases {
		got, err := ParseRange(c.in)
		if err != nil {
			t.Errorf("%q: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("%q: got %v, want %v", c.in, got, c.want)
		}
	}

	for _, bad := range []string{"", "xyz", "110000", "20-10"} {
		if _, err := ParseRange(bad); err == nil {
			t.Errorf("%q: missing error", bad)
		}
	}
}

func TestParseUnknownField(t *testing.T) {
	_, err := Parse(strings.NewReader("styles:\n  - style: Regular\n    wieght: 400\n"))
	if err == nil {
		t.Error("misspelled key accepted")
	}
}
