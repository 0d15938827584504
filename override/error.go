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

package override

import (
	"fmt"

	"seehuhn.de/go/fontmerge/internal/uname"
)

// MissingSourceGlyphError is returned when a recipe refers to a codepoint
// which is not present in the repertoire.
type MissingSourceGlyphError struct {
	Recipe string
	Target rune
	Source rune
}

func (err *MissingSourceGlyphError) Error() string {
	return fmt.Sprintf("override %q for %s: source glyph %s is missing",
		err.Recipe, uname.Format(err.Target), uname.Format(err.Source))
}
