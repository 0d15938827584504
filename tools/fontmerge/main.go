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

package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"golang.org/x/term"

	"seehuhn.de/go/fontmerge"
	"seehuhn.de/go/fontmerge/config"
	"seehuhn.de/go/fontmerge/engine"
	"seehuhn.de/go/fontmerge/merge"
	"seehuhn.de/go/fontmerge/override"
	"seehuhn.de/go/fontmerge/tools/internal/buildinfo"
	"seehuhn.de/go/fontmerge/tools/internal/profile"
)

var (
	parallel   = flag.Bool("j", false, "build the styles in parallel")
	verbose    = flag.Bool("v", false, "show debug messages")
	jsonLog    = flag.Bool("json", false, "write log messages as JSON")
	listTables = flag.Bool("list-overrides", false, "list the built-in override tables and exit")
	showVer    = flag.Bool("version", false, "show version information and exit")
	flatness   = flag.Int("flatness", 16, "line `segments` per curve in outline operations")
	cpuprofile = flag.String("cpuprofile", "", "write cpu profile to `file`")
	memprofile = flag.String("memprofile", "", "write memory profile to `file`")
)

func main() {
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "fontmerge \u2014 compose monospace fonts from Latin and CJK sources\n")
		fmt.Fprintf(os.Stderr, "%s\n\n", buildinfo.Short("fontmerge"))
		fmt.Fprintf(os.Stderr, "Usage:\n")
		fmt.Fprintf(os.Stderr, "  fontmerge [options] <config.yaml>\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  fontmerge family.yaml\n")
		fmt.Fprintf(os.Stderr, "  fontmerge -j -v family.yaml\n")
	}
	flag.Parse()

	switch {
	case *showVer:
		fmt.Println(buildinfo.Long("fontmerge"))
		return
	case *listTables:
		fmt.Println(strings.Join(override.BuiltinNames(), "\n"))
		return
	}

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(1)
	}

	logger := newLogger(os.Stderr, *verbose, *jsonLog)
	fontmerge.SetLogger(logger)

	if err := run(flag.Arg(0), logger); err != nil {
		logger.Error("build failed", "error", err)
		os.Exit(1)
	}
}

func run(fname string, logger *slog.Logger) error {
	stop, err := profile.Start(*cpuprofile, *memprofile, logger)
	if err != nil {
		return err
	}
	defer stop()

	fam, profiles, err := config.Load(fname)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(fam.DistDir, 0o755); err != nil {
		return err
	}

	eng := engine.New()
	eng.Flatness = *flatness

	results, err := merge.BuildAll(fam, profiles, eng, *parallel)
	if err != nil {
		return err
	}

	var errs []error
	for _, res := range results {
		if res.Err != nil {
			errs = append(errs, res.Err)
			continue
		}
		fmt.Println(res.Path)
	}
	return errors.Join(errs...)
}

// newLogger returns a logger writing to w.  Text output is used when w is
// a terminal, JSON otherwise.
func newLogger(w io.Writer, verbose, forceJSON bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	if !forceJSON && isTerminal(w) {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
