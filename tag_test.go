// libdxf - a library for reading and writing DXF files
// Copyright (C) 2026  Bert Timmerman <bert.timmerman@xs4all.nl>
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

package dxf

import "testing"

func TestCodeType(t *testing.T) {
	cases := []struct {
		code int
		tp   TagType
	}{
		{0, TypeString},
		{2, TypeString},
		{5, TypeHandle},
		{8, TypeString},
		{10, TypeFloat},
		{40, TypeFloat},
		{50, TypeFloat},
		{62, TypeInt16},
		{70, TypeInt16},
		{90, TypeInt32},
		{100, TypeString},
		{102, TypeString},
		{105, TypeHandle},
		{160, TypeInt64},
		{210, TypeFloat},
		{280, TypeInt16},
		{290, TypeBool},
		{310, TypeBinary},
		{330, TypeHandle},
		{360, TypeHandle},
		{390, TypeHandle},
		{420, TypeInt32},
		{430, TypeString},
		{440, TypeInt32},
		{999, TypeString},
		{1001, TypeString},
		{1010, TypeFloat},
		{1070, TypeInt16},
		{1071, TypeInt32},
	}
	for _, c := range cases {
		if got := CodeType(c.code); got != c.tp {
			t.Errorf("code %d: got %d, want %d", c.code, got, c.tp)
		}
	}
}

func TestTagAccessors(t *testing.T) {
	tag := Tag{Code: 40, Value: " 2.5 "}
	x, err := tag.Float()
	if err != nil || x != 2.5 {
		t.Errorf("Float: got %v, %v", x, err)
	}

	tag = Tag{Code: 70, Value: "  64"}
	n, err := tag.Int()
	if err != nil || n != 64 {
		t.Errorf("Int: got %v, %v", n, err)
	}

	tag = Tag{Code: 5, Value: "2AF"}
	h, err := tag.Handle()
	if err != nil || h != 0x2AF {
		t.Errorf("Handle: got %v, %v", h, err)
	}

	tag = Tag{Code: 8, Value: " Walls "}
	if got := tag.Text(); got != "Walls" {
		t.Errorf("Text: got %q", got)
	}

	if !(Tag{Code: 0, Value: "LINE"}).IsEntityStart() {
		t.Error("group 0 must start an entity")
	}
	if (Tag{Code: 8, Value: "0"}).IsEntityStart() {
		t.Error("group 8 must not start an entity")
	}
}

func TestTagBadValues(t *testing.T) {
	if _, err := (Tag{Code: 40, Value: "abc"}).Float(); err == nil {
		t.Error("expected error")
	}
	if _, err := (Tag{Code: 70, Value: "1.5"}).Int(); err == nil {
		t.Error("expected error")
	}
	if _, err := (Tag{Code: 5, Value: "XYZ"}).Handle(); err == nil {
		t.Error("expected error")
	}
}

func TestHandleWire(t *testing.T) {
	h, err := ParseHandle("1aF")
	if err != nil {
		t.Fatal(err)
	}
	if h != 0x1AF {
		t.Errorf("got %x", uint64(h))
	}
	if got := h.wire(); got != "1AF" {
		t.Errorf("got %q, want 1AF", got)
	}
	if got := h.String(); got != "1af" {
		t.Errorf("got %q, want 1af", got)
	}
}
