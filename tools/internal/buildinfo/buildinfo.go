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

// Package buildinfo reports version information for the command line
// tools.
package buildinfo

import (
	"runtime/debug"
	"strings"
)

// Short returns a short version string for a CLI tool, e.g.
// "fontmerge (seehuhn.de/go/fontmerge v0.1.0)".
func Short(toolName string) string {
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return toolName
	}
	if v := version(info); v != "" {
		return toolName + " (" + info.Main.Path + " " + v + ")"
	}
	return toolName
}

// Long returns the version string of a CLI tool, followed by the versions
// of the font libraries it was built with, one per line.
func Long(toolName string) string {
	lines := []string{Short(toolName)}
	info, ok := debug.ReadBuildInfo()
	if !ok {
		return lines[0]
	}
	for _, dep := range info.Deps {
		if !strings.HasPrefix(dep.Path, "seehuhn.de/go/") &&
			!strings.HasPrefix(dep.Path, "golang.org/x/image") {
			continue
		}
		v := dep.Version
		if dep.Replace != nil {
			v += " => " + dep.Replace.Path
		}
		lines = append(lines, "  "+dep.Path+" "+v)
	}
	return strings.Join(lines, "\n")
}

// version returns the module version, or the VCS revision for development
// builds.
func version(info *debug.BuildInfo) string {
	if v := info.Main.Version; v != "" && v != "(devel)" {
		return v
	}

	var rev string
	var dirty bool
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			rev = s.Value
		case "vcs.modified":
			dirty = s.Value == "true"
		}
	}
	if len(rev) > 8 {
		rev = rev[:8]
	}
	if rev != "" && dirty {
		rev += "+dirty"
	}
	return rev
}
