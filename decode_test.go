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

package dxf_test

import (
	"errors"
	"io"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	dxf "github.com/bert/libdxf-sub006"
	"github.com/bert/libdxf-sub006/entity"
)

// entityCmp lets cmp look inside the blank subclass marker fields.
var entityCmp = cmp.Exporter(func(reflect.Type) bool { return true })

// stream renders tag pairs the way they appear on disk, with the group
// code right-aligned in three columns.
func stream(pairs ...string) string {
	b := &strings.Builder{}
	for i := 0; i+1 < len(pairs); i += 2 {
		code := pairs[i]
		for n := len(code); n < 3; n++ {
			b.WriteByte(' ')
		}
		b.WriteString(code)
		b.WriteByte('\n')
		b.WriteString(pairs[i+1])
		b.WriteByte('\n')
	}
	return b.String()
}

func TestReadCircle(t *testing.T) {
	in := stream(
		"0", "CIRCLE",
		"5", "2A",
		"8", "0",
		"10", "1.000000",
		"20", "2.000000",
		"30", "0.000000",
		"40", "5.000000",
		"0", "EOF",
	)
	rd := dxf.NewReader(strings.NewReader(in), "test", nil)
	e, err := rd.ReadEntity()
	if err != nil {
		t.Fatal(err)
	}

	want := &entity.Circle{
		Common: entity.Common{
			Handle:        0x2A,
			Layer:         "0",
			Linetype:      "BYLAYER",
			Color:         256,
			LinetypeScale: 1,
		},
		Center:    dxf.Point{X: 1, Y: 2},
		Radius:    5,
		Extrusion: dxf.Point{Z: 1},
	}
	if d := cmp.Diff(want, e, entityCmp); d != "" {
		t.Errorf("circle differs (-want +got):\n%s", d)
	}

	// the terminating group 0 tag must still be in the stream
	tag, err := rd.ReadTag()
	if err != nil {
		t.Fatal(err)
	}
	if tag.Code != 0 || tag.Text() != "EOF" {
		t.Errorf("got %v", tag)
	}
}

func TestReadUnknownGroupCode(t *testing.T) {
	in := stream(
		"0", "CIRCLE",
		"8", "0",
		"49", "1.5",
		"40", "5.000000",
		"0", "EOF",
	)
	var diags []dxf.Diagnostic
	rd := dxf.NewReader(strings.NewReader(in), "test", &dxf.ReaderOptions{
		Diagnostics: func(d dxf.Diagnostic) { diags = append(diags, d) },
	})
	e, err := rd.ReadEntity()
	if err != nil {
		t.Fatal(err)
	}
	if e.(*entity.Circle).Radius != 5 {
		t.Error("tags after the unknown code must still be stored")
	}
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Code != 49 || !strings.Contains(diags[0].Message, "unknown group code") {
		t.Errorf("got %v", diags[0])
	}
}

func TestReadMalformedValue(t *testing.T) {
	in := stream(
		"0", "CIRCLE",
		"8", "0",
		"40", "five",
		"0", "EOF",
	)
	rd := dxf.NewReader(strings.NewReader(in), "test", nil)
	e, err := rd.ReadEntity()
	var mErr *dxf.MalformedEntityError
	if !errors.As(err, &mErr) {
		t.Fatalf("got %v", err)
	}
	if e != nil {
		t.Error("no partial entity may be returned")
	}
}

func TestReadUnknownEntity(t *testing.T) {
	in := stream(
		"0", "FROBNICATOR",
		"1", "whatever",
		"10", "1.0",
		"0", "LINE",
		"8", "Walls",
		"0", "EOF",
	)
	rd := dxf.NewReader(strings.NewReader(in), "test", nil)

	_, err := rd.ReadEntity()
	if !errors.Is(err, dxf.ErrUnknownEntity) {
		t.Fatalf("got %v, want ErrUnknownEntity", err)
	}

	// the unknown entity's body has been consumed, reading continues
	// at the next entity
	e, err := rd.ReadEntity()
	if err != nil {
		t.Fatal(err)
	}
	line, ok := e.(*entity.Line)
	if !ok {
		t.Fatalf("got %T", e)
	}
	if line.Layer != "Walls" {
		t.Errorf("got layer %q", line.Layer)
	}
}

func TestReadReactors(t *testing.T) {
	in := stream(
		"0", "CIRCLE",
		"102", "{ACAD_REACTORS",
		"330", "DEAD",
		"330", "BEEF",
		"102", "}",
		"8", "0",
		"40", "1.000000",
		"0", "EOF",
	)
	rd := dxf.NewReader(strings.NewReader(in), "test", nil)
	e, err := rd.ReadEntity()
	if err != nil {
		t.Fatal(err)
	}
	want := []dxf.Handle{0xDEAD, 0xBEEF}
	if d := cmp.Diff(want, e.(*entity.Circle).Reactors); d != "" {
		t.Errorf("reactors differ (-want +got):\n%s", d)
	}
}

func TestReadOutOfRange(t *testing.T) {
	in := stream(
		"0", "CIRCLE",
		"8", "0",
		"62", "300",
		"0", "EOF",
	)
	var diags []dxf.Diagnostic
	rd := dxf.NewReader(strings.NewReader(in), "test", &dxf.ReaderOptions{
		Diagnostics: func(d dxf.Diagnostic) { diags = append(diags, d) },
	})
	e, err := rd.ReadEntity()
	if err != nil {
		t.Fatal(err)
	}
	// the value is stored as-is, with a diagnostic
	if got := e.(*entity.Circle).Color; got != 300 {
		t.Errorf("got color %d", got)
	}
	if len(diags) != 1 || diags[0].Code != 62 {
		t.Errorf("got %v", diags)
	}
}

func TestReadStrictVersion(t *testing.T) {
	in := stream(
		"0", "CIRCLE",
		"8", "0",
		"420", "255",
		"0", "EOF",
	)

	// default mode stores the tag even though 420 needs R2004
	rd := dxf.NewReader(strings.NewReader(in), "test",
		&dxf.ReaderOptions{Version: dxf.R12})
	e, err := rd.ReadEntity()
	if err != nil {
		t.Fatal(err)
	}
	if got := e.(*entity.Circle).TrueColor; got != 255 {
		t.Errorf("got %d, want 255", got)
	}

	// strict mode discards it with a diagnostic
	var diags []dxf.Diagnostic
	rd = dxf.NewReader(strings.NewReader(in), "test", &dxf.ReaderOptions{
		Version:     dxf.R12,
		Strict:      true,
		Diagnostics: func(d dxf.Diagnostic) { diags = append(diags, d) },
	})
	e, err = rd.ReadEntity()
	if err != nil {
		t.Fatal(err)
	}
	if got := e.(*entity.Circle).TrueColor; got != 0 {
		t.Errorf("got %d, want 0", got)
	}
	if len(diags) != 1 || diags[0].Code != 420 {
		t.Errorf("got %v", diags)
	}
}

func TestReadVertexOrder(t *testing.T) {
	in := stream(
		"0", "LWPOLYLINE",
		"8", "0",
		"90", "3",
		"10", "0.0",
		"20", "0.0",
		"10", "1.0",
		"20", "0.5",
		"42", "0.25",
		"10", "2.0",
		"20", "1.0",
		"0", "EOF",
	)
	rd := dxf.NewReader(strings.NewReader(in), "test", nil)
	e, err := rd.ReadEntity()
	if err != nil {
		t.Fatal(err)
	}
	p := e.(*entity.LWPolyline)
	want := []dxf.Point{{}, {X: 1, Y: 0.5}, {X: 2, Y: 1}}
	if d := cmp.Diff(want, p.Vertices); d != "" {
		t.Errorf("vertices differ (-want +got):\n%s", d)
	}
	if d := cmp.Diff([]float64{0.25}, p.Bulges); d != "" {
		t.Errorf("bulges differ (-want +got):\n%s", d)
	}
}

func TestReadUnexpectedEOF(t *testing.T) {
	in := stream(
		"0", "CIRCLE",
		"8", "0",
		"40", "5.000000",
	)
	rd := dxf.NewReader(strings.NewReader(in), "test", nil)
	_, err := rd.ReadEntity()
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("got %v, want io.ErrUnexpectedEOF", err)
	}
}
