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

package engine

import (
	"fmt"
	"io/fs"
)

// SourceNotFoundError is returned by [Engine.Load] when the font file does
// not exist.
type SourceNotFoundError struct {
	Path string
}

func (err *SourceNotFoundError) Error() string {
	return fmt.Sprintf("source font %q not found", err.Path)
}

// Is allows to detect missing sources using errors.Is(err, fs.ErrNotExist).
func (err *SourceNotFoundError) Is(target error) bool {
	return target == fs.ErrNotExist
}

// SerializationError is returned by [Engine.Serialize] when the output
// font cannot be generated or written.
type SerializationError struct {
	Path string
	Err  error
}

func (err *SerializationError) Error() string {
	return fmt.Sprintf("cannot write %q: %v", err.Path, err.Err)
}

func (err *SerializationError) Unwrap() error {
	return err.Err
}
