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

package sfntio

import (
	"bytes"
	"encoding/binary"
	"errors"
	"sort"

	"golang.org/x/text/encoding/unicode"
)

// Name IDs used in the "name" table.
const (
	NameCopyright          = 0
	NameFamily             = 1
	NameSubfamily          = 2
	NameUniqueID           = 3
	NameFull               = 4
	NameVersion            = 5
	NamePostScript         = 6
	NameLicense            = 13
	NamePreferredFamily    = 16
	NamePreferredSubfamily = 17
)

// Windows language IDs.
const (
	LangEnglishUS = 0x0409
	LangJapanese  = 0x0411
)

// NameRecord is one string of the "name" table.
// All records are written for the Windows platform with Unicode BMP
// encoding.
type NameRecord struct {
	ID    uint16
	Lang  uint16
	Value string
}

// EncodeNames returns a format 0 "name" table containing the given
// records.
func EncodeNames(records []NameRecord) ([]byte, error) {
	recs := make([]NameRecord, 0, len(records))
	for _, rec := range records {
		if rec.Value != "" {
			recs = append(recs, rec)
		}
	}
	sort.SliceStable(recs, func(i, j int) bool {
		if recs[i].Lang != recs[j].Lang {
			return recs[i].Lang < recs[j].Lang
		}
		return recs[i].ID < recs[j].ID
	})

	enc := unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM).NewEncoder()
	storage := &bytes.Buffer{}
	header := &bytes.Buffer{}
	stringOffset := 6 + 12*len(recs)
	_ = binary.Write(header, binary.BigEndian, [3]uint16{0, uint16(len(recs)), uint16(stringOffset)})
	for _, rec := range recs {
		s, err := enc.String(rec.Value)
		if err != nil {
			return nil, err
		}
		if len(s) > 0xFFFF || storage.Len() > 0xFFFF {
			return nil, errors.New("sfntio: name table too large")
		}
		_ = binary.Write(header, binary.BigEndian, [6]uint16{
			3, // platform: Windows
			1, // encoding: Unicode BMP
			rec.Lang,
			rec.ID,
			uint16(len(s)),
			uint16(storage.Len()),
		})
		storage.WriteString(s)
	}
	header.Write(storage.Bytes())
	return header.Bytes(), nil
}
