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
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRoundTrip(t *testing.T) {
	head := make([]byte, 54)
	binary.BigEndian.PutUint32(head[12:16], 0x5F0F3CF5) // magic
	in := &Font{
		ScalerType: ScalerTypeCFF,
		Tables: map[string][]byte{
			"head": head,
			"OS/2": make([]byte, 96),
			"gasp": Gasp(),
			"name": {1, 2, 3}, // length not a multiple of 4
			"DSIG": nil,
		},
	}
	buf := &bytes.Buffer{}
	if _, err := in.Write(buf); err != nil {
		t.Fatal(err)
	}
	if buf.Len()%4 != 0 {
		t.Errorf("file length %d not padded", buf.Len())
	}
	if sum := Checksum(buf.Bytes()); sum != 0xB1B0AFBA {
		t.Errorf("file checksum %08x", sum)
	}

	out, err := Read(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatal(err)
	}
	if out.ScalerType != ScalerTypeCFF {
		t.Errorf("scaler type %08x", out.ScalerType)
	}
	delete(in.Tables, "DSIG")
	if d := cmp.Diff(in.Tables, out.Tables); d != "" {
		t.Error(d)
	}
	if !out.Has("head", "OS/2", "gasp") || out.Has("glyf") {
		t.Error("Has is wrong")
	}
}

func TestReadInvalid(t *testing.T) {
	_, err := Read(bytes.NewReader([]byte{0, 0, 0, 1, 0, 0, 0, 0, 0, 0, 0, 0}))
	if err == nil {
		t.Error("invalid scaler type accepted")
	}
}

func TestChecksum(t *testing.T) {
	cases := []struct {
		in   []byte
		want uint32
	}{
		{nil, 0},
		{[]byte{0, 0, 0, 1}, 1},
		{[]byte{0, 0, 0, 1, 2}, 0x02000001},
		{[]byte{0xFF, 0xFF, 0xFF, 0xFF, 0, 0, 0, 2}, 1},
	}
	for _, c := range cases {
		if got := Checksum(c.in); got != c.want {
			t.Errorf("Checksum(%v) = %08x, want %08x", c.in, got, c.want)
		}
	}
}

func TestPatchOS2(t *testing.T) {
	data := make([]byte, 96)
	in := &OS2Fields{
		AvgCharWidth: 1000,
		WeightClass:  700,
		WidthClass:   5,
		FsType:       0,
		Panose:       [10]byte{2, 11, 8, 9, 2, 2, 3, 2, 2, 7},
		Vendor:       "nv",
	}
	if err := PatchOS2(data, in); err != nil {
		t.Fatal(err)
	}
	out, err := ReadOS2(data)
	if err != nil {
		t.Fatal(err)
	}
	in.Vendor = "nv  "
	if d := cmp.Diff(in, out); d != "" {
		t.Error(d)
	}

	if err := PatchOS2(make([]byte, 10), in); err == nil {
		t.Error("short table accepted")
	}
}

func TestPatchRevision(t *testing.T) {
	head := make([]byte, 54)
	if err := PatchRevision(head, 1.008); err != nil {
		t.Fatal(err)
	}
	got := float64(binary.BigEndian.Uint32(head[4:8])) / 65536
	if got < 1.0079 || got > 1.0081 {
		t.Errorf("revision %g", got)
	}
}

func TestEncodeNames(t *testing.T) {
	data, err := EncodeNames([]NameRecord{
		{ID: NameFamily, Lang: LangJapanese, Value: "うたたね"},
		{ID: NameFamily, Lang: LangEnglishUS, Value: "Utatane"},
		{ID: NameLicense, Lang: LangEnglishUS, Value: ""},
	})
	if err != nil {
		t.Fatal(err)
	}
	count := binary.BigEndian.Uint16(data[2:4])
	if count != 2 {
		t.Fatalf("%d records", count)
	}
	storage := int(binary.BigEndian.Uint16(data[4:6]))

	// the English record sorts first
	rec := data[6:18]
	lang := binary.BigEndian.Uint16(rec[4:6])
	length := int(binary.BigEndian.Uint16(rec[8:10]))
	offset := int(binary.BigEndian.Uint16(rec[10:12]))
	if lang != LangEnglishUS || length != 14 {
		t.Errorf("lang %04x, length %d", lang, length)
	}
	want := []byte{0, 'U', 0, 't', 0, 'a', 0, 't', 0, 'a', 0, 'n', 0, 'e'}
	if d := cmp.Diff(want, data[storage+offset:storage+offset+length]); d != "" {
		t.Error(d)
	}
}
