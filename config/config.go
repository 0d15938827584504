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

// Package config reads the YAML description of a font family build.
//
// A minimal configuration file looks like this:
//
//	family: Example Mono
//	version: 1.0.0
//	metrics: {em: 1000, ascent: 880, descent: 120, width: 1000}
//	styles:
//	  - style: Regular
//	    weight: 400
//	    latin: latin-regular.ttf
//	    cjk: cjk-regular.otf
//
// Relative paths are interpreted relative to the directory containing the
// configuration file.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/fontmerge/merge"
	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/override"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/style"
	"seehuhn.de/go/fontmerge/transform"
)

// File is the structure of a configuration file.
type File struct {
	Family        string `yaml:"family"`
	Version       string `yaml:"version"`
	Vendor        string `yaml:"vendor"`
	Copyright     string `yaml:"copyright"`
	CopyrightFile string `yaml:"copyright_file"`
	License       string `yaml:"license"`
	LicenseFile   string `yaml:"license_file"`
	SourceDir     string `yaml:"source_dir"`
	DistDir       string `yaml:"dist_dir"`

	Metrics     Metrics  `yaml:"metrics"`
	ItalicSkew  float64  `yaml:"italic_skew"`
	PostProcess bool     `yaml:"post_process"`
	Overrides   []string `yaml:"overrides"`

	LatinExclude []string     `yaml:"latin_exclude"`
	LatinAdjust  []Adjustment `yaml:"latin_adjust"`
	LatinPen     string       `yaml:"latin_pen"`
	CJKPen       string       `yaml:"cjk_pen"`
	LatinAscent  float64      `yaml:"latin_ascent"`
	CJKAscent    float64      `yaml:"cjk_ascent"`

	Styles []Style `yaml:"styles"`
}

// Metrics describes the metric space of the generated fonts.
type Metrics struct {
	Em      float64 `yaml:"em"`
	Ascent  float64 `yaml:"ascent"`
	Descent float64 `yaml:"descent"`
	Width   float64 `yaml:"width"`
}

// Adjustment is an extra transformation for a range of Latin glyphs.
// The glyphs are first scaled about the origin and then translated.
type Adjustment struct {
	Range     string     `yaml:"range"`
	Scale     float64    `yaml:"scale"`
	Translate [2]float64 `yaml:"translate"`
}

// Style describes one output style.
type Style struct {
	Style            string  `yaml:"style"`
	Weight           int     `yaml:"weight"`
	Italic           bool    `yaml:"italic"`
	Latin            string  `yaml:"latin"`
	CJK              string  `yaml:"cjk"`
	LatinWeightDelta float64 `yaml:"latin_weight_delta"`
	CJKWeightDelta   float64 `yaml:"cjk_weight_delta"`
	Filename         string  `yaml:"filename"`
}

// Load reads a configuration file.
func Load(fname string) (*merge.Family, []*style.Profile, error) {
	data, err := os.ReadFile(fname)
	if err != nil {
		return nil, nil, &merge.ConfigurationError{File: fname, Reason: "cannot read configuration", Err: err}
	}
	cfg, err := Parse(bytes.NewReader(data))
	if err != nil {
		return nil, nil, &merge.ConfigurationError{File: fname, Reason: "malformed configuration", Err: err}
	}
	fam, profiles, err := cfg.Resolve(filepath.Dir(fname))
	if err != nil {
		return nil, nil, &merge.ConfigurationError{File: fname, Reason: "invalid configuration", Err: err}
	}
	return fam, profiles, nil
}

// Parse decodes a configuration file.  Unknown keys are an error.
func Parse(r io.Reader) (*File, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	cfg := &File{}
	if err := dec.Decode(cfg); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errors.New("empty configuration")
		}
		return nil, err
	}
	return cfg, nil
}

// Resolve converts the configuration into a family description and the
// list of styles.  Relative paths are interpreted relative to dir.
func (cfg *File) Resolve(dir string) (*merge.Family, []*style.Profile, error) {
	m := cfg.Metrics
	space, err := metric.New(m.Em, m.Ascent, m.Descent, m.Width)
	if err != nil {
		return nil, nil, err
	}

	fam := merge.NewFamily(cfg.Family, space)
	if cfg.Version != "" {
		fam.Version = cfg.Version
	}
	fam.Vendor = cfg.Vendor
	fam.ItalicSkew = cfg.ItalicSkew
	fam.PostProcess = cfg.PostProcess
	fam.LatinAscent = cfg.LatinAscent
	fam.CJKAscent = cfg.CJKAscent
	fam.SourceDir = resolvePath(dir, cfg.SourceDir)
	fam.DistDir = resolvePath(dir, cfg.DistDir)

	fam.Copyright, err = textOrFile(cfg.Copyright, resolveFile(dir, cfg.CopyrightFile))
	if err != nil {
		return nil, nil, err
	}
	fam.License, err = textOrFile(cfg.License, resolveFile(dir, cfg.LicenseFile))
	if err != nil {
		return nil, nil, err
	}

	if cfg.Overrides != nil {
		fam.Overrides = nil
		for _, name := range cfg.Overrides {
			t, err := override.Builtin(name, space)
			if err != nil {
				return nil, nil, err
			}
			fam.Overrides = append(fam.Overrides, t...)
		}
	}

	if cfg.LatinExclude != nil {
		fam.LatinExclude = nil
		for _, s := range cfg.LatinExclude {
			rg, err := ParseRange(s)
			if err != nil {
				return nil, nil, err
			}
			fam.LatinExclude = append(fam.LatinExclude, rg)
		}
	}
	for _, adj := range cfg.LatinAdjust {
		rg, err := ParseRange(adj.Range)
		if err != nil {
			return nil, nil, err
		}
		scale := adj.Scale
		if scale == 0 {
			scale = 1
		}
		fam.LatinAdjust = append(fam.LatinAdjust, merge.Adjustment{
			Range: rg,
			M: transform.Compose(
				transform.Uniform(scale),
				transform.Translate(adj.Translate[0], adj.Translate[1]),
			),
		})
	}

	if fam.LatinPen, err = parsePen(cfg.LatinPen); err != nil {
		return nil, nil, err
	}
	if fam.CJKPen, err = parsePen(cfg.CJKPen); err != nil {
		return nil, nil, err
	}

	profiles := make([]*style.Profile, len(cfg.Styles))
	for i, s := range cfg.Styles {
		profiles[i] = &style.Profile{
			Style:            s.Style,
			Weight:           s.Weight,
			Italic:           s.Italic,
			Latin:            s.Latin,
			CJK:              s.CJK,
			LatinWeightDelta: s.LatinWeightDelta,
			CJKWeightDelta:   s.CJKWeightDelta,
			Filename:         s.Filename,
		}
	}
	return fam, profiles, nil
}

// ParseRange parses a codepoint range like "2500-257F" or a single
// codepoint like "U+2026".
func ParseRange(s string) (merge.Range, error) {
	first, last, isRange := strings.Cut(s, "-")
	a, err := parseCodepoint(first)
	if err != nil {
		return merge.Range{}, err
	}
	b := a
	if isRange {
		b, err = parseCodepoint(last)
		if err != nil {
			return merge.Range{}, err
		}
	}
	if b < a {
		return merge.Range{}, fmt.Errorf("invalid range %q", s)
	}
	return merge.Range{First: a, Last: b}, nil
}

func parseCodepoint(s string) (rune, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(strings.TrimPrefix(s, "U+"), "u+")
	x, err := strconv.ParseUint(s, 16, 32)
	if err != nil || x > 0x10FFFF {
		return 0, fmt.Errorf("invalid codepoint %q", s)
	}
	return rune(x), nil
}

func parsePen(s string) (shape.Pen, error) {
	switch s {
	case "", "circular":
		return shape.Circular, nil
	case "calligraphic":
		return shape.Calligraphic, nil
	default:
		return 0, fmt.Errorf("unknown pen %q", s)
	}
}

func textOrFile(text, fname string) (string, error) {
	if fname == "" {
		return text, nil
	}
	if text != "" {
		return "", fmt.Errorf("both text and file %q given", fname)
	}
	data, err := os.ReadFile(fname)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(data)), nil
}

func resolvePath(dir, p string) string {
	if p == "" {
		return dir
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

func resolveFile(dir, p string) string {
	if p == "" {
		return ""
	}
	return resolvePath(dir, p)
}
