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
	"encoding/binary"
	"errors"
)

// OS2Fields lists the "OS/2" table fields which can be patched.
// Zero values leave the corresponding field unchanged, except for FsType
// which is always written.
type OS2Fields struct {
	AvgCharWidth int16
	WeightClass  uint16
	WidthClass   uint16
	FsType       uint16
	Panose       [10]byte
	Vendor       string
}

var errShortOS2 = errors.New("sfntio: OS/2 table too short")

// PatchOS2 modifies an "OS/2" table in place.
func PatchOS2(data []byte, fields *OS2Fields) error {
	if len(data) < 62 {
		return errShortOS2
	}
	if fields.AvgCharWidth != 0 {
		binary.BigEndian.PutUint16(data[2:4], uint16(fields.AvgCharWidth))
	}
	if fields.WeightClass != 0 {
		binary.BigEndian.PutUint16(data[4:6], fields.WeightClass)
	}
	if fields.WidthClass != 0 {
		binary.BigEndian.PutUint16(data[6:8], fields.WidthClass)
	}
	binary.BigEndian.PutUint16(data[8:10], fields.FsType)
	if fields.Panose != [10]byte{} {
		copy(data[32:42], fields.Panose[:])
	}
	if fields.Vendor != "" {
		vendor := []byte("    ")
		copy(vendor, fields.Vendor)
		copy(data[58:62], vendor)
	}
	return nil
}

// ReadOS2 extracts the patchable fields from an "OS/2" table.
func ReadOS2(data []byte) (*OS2Fields, error) {
	if len(data) < 62 {
		return nil, errShortOS2
	}
	f := &OS2Fields{
		AvgCharWidth: int16(binary.BigEndian.Uint16(data[2:4])),
		WeightClass:  binary.BigEndian.Uint16(data[4:6]),
		WidthClass:   binary.BigEndian.Uint16(data[6:8]),
		FsType:       binary.BigEndian.Uint16(data[8:10]),
		Vendor:       string(data[58:62]),
	}
	copy(f.Panose[:], data[32:42])
	return f, nil
}

// PatchRevision sets the fontRevision field of a "head" table.
func PatchRevision(head []byte, revision float64) error {
	if len(head) < 8 {
		return errors.New("sfntio: head table too short")
	}
	binary.BigEndian.PutUint32(head[4:8], uint32(int32(revision*65536+0.5)))
	return nil
}

// Gasp returns a "gasp" table which enables grid fitting and symmetric
// smoothing at all sizes.
func Gasp() []byte {
	return []byte{
		0, 1, // version
		0, 1, // numRanges
		0xFF, 0xFF, // rangeMaxPPEM
		0, 0x0F, // gridfit, dogray, symmetric gridfit, symmetric smoothing
	}
}
