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
	"io/fs"
	"os"
	"sync"
	"time"

	"seehuhn.de/go/fontmerge"
	"seehuhn.de/go/fontmerge/metric"
	"seehuhn.de/go/fontmerge/repertoire"
	"seehuhn.de/go/fontmerge/shape"
	"seehuhn.de/go/fontmerge/source"
	"seehuhn.de/go/fontmerge/style"
)

// Result is the outcome of building one style.
type Result struct {
	Profile    *style.Profile
	Repertoire *repertoire.Repertoire
	Path       string // output file, empty if the build failed
	Err        error
}

// Build loads the sources of one style, merges them and writes the
// resulting font.  If any step fails, no output file is written.
func Build(fam *Family, p *style.Profile, eng Engine) (*repertoire.Repertoire, string, error) {
	if err := p.Validate(); err != nil {
		return nil, "", &ConfigurationError{Style: p.Style, Reason: "invalid style", Err: err}
	}
	latin, err := loadSource(eng, fam.sourcePath(p.Latin), p.Style)
	if err != nil {
		return nil, "", err
	}
	cjk, err := loadSource(eng, fam.sourcePath(p.CJK), p.Style)
	if err != nil {
		return nil, "", err
	}

	rep, err := Merge(latin, cjk, fam, p, eng)
	if err != nil {
		return nil, "", err
	}
	if fam.PostProcess {
		if err := finish(rep, fam.Space, eng); err != nil {
			return nil, "", err
		}
	}

	out := fam.outputPath(p.OutputName(fam.Name))
	if err := eng.Serialize(rep, fam.Space, out); err != nil {
		return nil, "", err
	}
	return rep, out, nil
}

// BuildAll builds all styles of a family.
//
// Before any glyphs are processed, the family settings, all profiles and
// the existence of all source files are checked; any problem is reported
// as a [*ConfigurationError] and no style is built.  Otherwise the styles
// are built independently, concurrently if parallel is set.  A failure in
// one style does not affect the others.
func BuildAll(fam *Family, profiles []*style.Profile, eng Engine, parallel bool) ([]Result, error) {
	if err := CheckFiles(fam, profiles); err != nil {
		return nil, err
	}

	log := fontmerge.Logger()
	res := make([]Result, len(profiles))
	build := func(i int) {
		p := profiles[i]
		start := time.Now()
		rep, out, err := Build(fam, p, eng)
		if err != nil {
			err = &BuildError{Style: p.Style, Err: err}
			log.Error("build failed", "style", p.Style, "error", err)
		} else {
			log.Info("style built", "style", p.Style, "file", out,
				"glyphs", rep.Len(), "elapsed", time.Since(start).Round(time.Millisecond))
		}
		res[i] = Result{Profile: p, Repertoire: rep, Path: out, Err: err}
	}

	if !parallel {
		for i := range profiles {
			build(i)
		}
		return res, nil
	}

	var wg sync.WaitGroup
	for i := range profiles {
		wg.Add(1)
		go func() {
			defer wg.Done()
			build(i)
		}()
	}
	wg.Wait()
	return res, nil
}

// CheckFiles verifies the family settings and the style profiles, and
// checks that all source files exist.  All problems found are reported
// together.
func CheckFiles(fam *Family, profiles []*style.Profile) error {
	if err := fam.Validate(); err != nil {
		return err
	}
	if len(profiles) == 0 {
		return &ConfigurationError{Reason: "no styles defined"}
	}

	var errs []error
	seen := make(map[string]bool)
	for _, p := range profiles {
		if err := p.Validate(); err != nil {
			errs = append(errs, &ConfigurationError{Style: p.Style, Reason: "invalid style", Err: err})
			continue
		}
		out := p.OutputName(fam.Name)
		if seen[out] {
			errs = append(errs, &ConfigurationError{Style: p.Style, File: out, Reason: "duplicate output file"})
		}
		seen[out] = true

		for _, fname := range []string{p.Latin, p.CJK} {
			fname = fam.sourcePath(fname)
			info, err := os.Stat(fname)
			if err != nil {
				errs = append(errs, &ConfigurationError{Style: p.Style, File: fname, Reason: "source file not found", Err: err})
			} else if !info.Mode().IsRegular() {
				errs = append(errs, &ConfigurationError{Style: p.Style, File: fname, Reason: "not a regular file"})
			}
		}
	}
	return errors.Join(errs...)
}

func loadSource(eng Engine, fname, styleName string) (*source.Source, error) {
	src, err := eng.Load(fname)
	if err == nil {
		return src, nil
	}
	reason := "cannot read source font"
	if errors.Is(err, fs.ErrNotExist) {
		reason = "source file not found"
	}
	return nil, &ConfigurationError{Style: styleName, File: fname, Reason: reason, Err: err}
}

// finish removes overlapping contours and rounds all coordinates.  The
// rounded advance widths are checked again.
func finish(rep *repertoire.Repertoire, space *metric.Space, geom Geometry) error {
	for _, r := range rep.Codepoints() {
		g, _ := rep.Get(r)
		if g.HasInk() {
			o, err := geom.RemoveOverlap(g.Outline)
			if err != nil {
				return &shape.GeometryOperationError{Op: "remove overlap", Codepoint: r, Err: err}
			}
			g.Outline = o
		}
		rep.Set(r, g.Round())
	}
	return rep.CheckAdvances(space)
}
