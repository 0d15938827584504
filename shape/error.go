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

package shape

import (
	"fmt"

	"seehuhn.de/go/fontmerge/internal/uname"
)

// GeometryOperationError is returned when an outline operation fails for a
// glyph.
type GeometryOperationError struct {
	Op        string
	Codepoint rune
	Err       error
}

func (err *GeometryOperationError) Error() string {
	return fmt.Sprintf("%s: %s failed: %v", uname.Format(err.Codepoint), err.Op, err.Err)
}

func (err *GeometryOperationError) Unwrap() error {
	return err.Err
}
