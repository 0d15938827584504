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

// Package sfntio reads and writes the table directory of sfnt font files.
//
// The package works on raw table data.  It is used to patch individual
// fields of a font after it has been generated, without decoding and
// re-encoding the glyph data.
package sfntio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"sort"
)

// Scaler types of sfnt files.
const (
	ScalerTypeTrueType = 0x00010000
	ScalerTypeCFF      = 0x4F54544F
	ScalerTypeApple    = 0x74727565
)

// Font is the table level representation of an sfnt file.
type Font struct {
	ScalerType uint32
	Tables     map[string][]byte
}

// Read reads all tables of an sfnt file.
func Read(r io.ReaderAt) (*Font, error) {
	var buf [16]byte
	_, err := r.ReadAt(buf[:6], 0)
	if err != nil {
		return nil, err
	}
	scalerType := binary.BigEndian.Uint32(buf[:4])
	numTables := int(binary.BigEndian.Uint16(buf[4:6]))

	if scalerType != ScalerTypeTrueType &&
		scalerType != ScalerTypeCFF &&
		scalerType != ScalerTypeApple {
		return nil, fmt.Errorf("sfntio: unsupported scaler type 0x%08x", scalerType)
	}
	if numTables > 280 {
		return nil, errors.New("sfntio: too many tables")
	}

	type record struct {
		name   string
		offset uint32
		length uint32
	}
	records := make([]record, 0, numTables)
	for i := 0; i < numTables; i++ {
		_, err := r.ReadAt(buf[:], int64(12+i*16))
		if err != nil {
			return nil, err
		}
		records = append(records, record{
			name:   string(buf[:4]),
			offset: binary.BigEndian.Uint32(buf[8:12]),
			length: binary.BigEndian.Uint32(buf[12:16]),
		})
	}
	if len(records) == 0 {
		return nil, errors.New("sfntio: no tables found")
	}

	sort.Slice(records, func(i, j int) bool {
		return records[i].offset < records[j].offset
	})
	if records[0].offset < uint32(12+16*numTables) {
		return nil, errors.New("sfntio: invalid table offset")
	}
	for i := 1; i < len(records); i++ {
		if records[i-1].offset+records[i-1].length > records[i].offset {
			return nil, errors.New("sfntio: overlapping tables")
		}
	}

	f := &Font{
		ScalerType: scalerType,
		Tables:     make(map[string][]byte, numTables),
	}
	for _, rec := range records {
		data := make([]byte, rec.length)
		n, err := r.ReadAt(data, int64(rec.offset))
		if n < len(data) {
			if err == nil || err == io.EOF {
				err = fmt.Errorf("sfntio: table %q extends beyond EOF", rec.name)
			}
			return nil, err
		}
		f.Tables[rec.name] = data
	}
	return f, nil
}

// Has reports whether all the named tables are present.
func (f *Font) Has(names ...string) bool {
	for _, name := range names {
		if _, ok := f.Tables[name]; !ok {
			return false
		}
	}
	return true
}
