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
	"fmt"
	"strings"
)

// ConfigurationError indicates a problem with the build settings or a
// missing source file.  Configuration errors are detected before any
// glyphs are processed.
type ConfigurationError struct {
	Style  string
	File   string
	Reason string
	Err    error
}

func (err *ConfigurationError) Error() string {
	var parts []string
	if err.Style != "" {
		parts = append(parts, "style "+err.Style)
	}
	if err.File != "" {
		parts = append(parts, err.File)
	}
	msg := err.Reason
	if msg == "" {
		msg = "invalid configuration"
	}
	parts = append(parts, msg)
	if err.Err != nil {
		parts = append(parts, err.Err.Error())
	}
	return strings.Join(parts, ": ")
}

func (err *ConfigurationError) Unwrap() error {
	return err.Err
}

// BuildError wraps the error which aborted the build of one style.
type BuildError struct {
	Style string
	Err   error
}

func (err *BuildError) Error() string {
	return fmt.Sprintf("building %s: %v", err.Style, err.Err)
}

func (err *BuildError) Unwrap() error {
	return err.Err
}
