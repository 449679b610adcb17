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

package document

import (
	"bytes"
	"image"
	"image/color"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	dxf "github.com/bert/libdxf-sub006"
	"github.com/bert/libdxf-sub006/entity"
)

// entityCmp lets cmp look inside the blank subclass marker fields.
var entityCmp = cmp.Exporter(func(reflect.Type) bool { return true })

// stock returns entity fields with all optional values at their
// defaults, so that a save/load cycle reproduces the entity exactly.
func stock(layer string) entity.Common {
	return entity.Common{
		Layer:         layer,
		Linetype:      "BYLAYER",
		Color:         256,
		LinetypeScale: 1,
	}
}

func TestSaveLoad(t *testing.T) {
	doc := &Document{
		Version: dxf.R2000,
		ExtMin:  dxf.Point{X: -10, Y: -10},
		ExtMax:  dxf.Point{X: 10, Y: 10},
		Entities: []dxf.Entity{
			&entity.Circle{
				Common:    stock("0"),
				Center:    dxf.Point{X: 1, Y: 2},
				Radius:    5,
				Extrusion: dxf.Point{Z: 1},
			},
			&entity.Line{
				Common:    stock("Walls"),
				Start:     dxf.Point{X: 0, Y: 0},
				End:       dxf.Point{X: 10, Y: 10},
				Extrusion: dxf.Point{Z: 1},
			},
		},
	}

	buf := &bytes.Buffer{}
	if err := Save(buf, doc, nil); err != nil {
		t.Fatal(err)
	}

	got, err := Load(bytes.NewReader(buf.Bytes()), &LoadOptions{
		Diagnostics: func(d dxf.Diagnostic) {
			t.Errorf("unexpected diagnostic: %s", d)
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if d := cmp.Diff(doc, got, entityCmp); d != "" {
		t.Errorf("document differs (-want +got):\n%s", d)
	}
}

func TestSaveLoadPolyline(t *testing.T) {
	p := &entity.Polyline{
		Common: stock("0"),
		Flags:  1,
		Vertices: []*entity.Vertex{
			{Common: stock("0"), Location: dxf.Point{X: 0, Y: 0}},
			{Common: stock("0"), Location: dxf.Point{X: 4, Y: 0}},
			{Common: stock("0"), Location: dxf.Point{X: 4, Y: 3}, Bulge: 0.5},
		},
	}
	doc := &Document{
		Version:  dxf.R12,
		Entities: []dxf.Entity{p},
	}

	buf := &bytes.Buffer{}
	if err := Save(buf, doc, nil); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, kind := range []string{"POLYLINE", "VERTEX", "SEQEND"} {
		if !strings.Contains(out, kind) {
			t.Errorf("output lacks %s", kind)
		}
	}

	got, err := Load(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	// the vertex chain is attached to its polyline, not listed
	// individually
	if len(got.Entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(got.Entities))
	}
	if d := cmp.Diff(p, got.Entities[0], entityCmp); d != "" {
		t.Errorf("polyline differs (-want +got):\n%s", d)
	}
}

func TestSaveLoadInsert(t *testing.T) {
	ins := &entity.Insert{
		Common:   stock("0"),
		Block:    "DOOR",
		Position: dxf.Point{X: 2, Y: 3},
		XScale:   1,
		YScale:   1,
		ZScale:   1,
		Columns:  1,
		Rows:     1,
		Attribs: []*entity.Attrib{{
			Common:   stock("0"),
			Tag:      "ROOM",
			Value:    "101",
			Height:   2.5,
			Position: dxf.Point{X: 2, Y: 3},
			Style:    "STANDARD",
		}},
	}
	doc := &Document{
		Version:  dxf.R2000,
		Entities: []dxf.Entity{ins},
	}

	buf := &bytes.Buffer{}
	if err := Save(buf, doc, nil); err != nil {
		t.Fatal(err)
	}
	got, err := Load(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(got.Entities))
	}
	if d := cmp.Diff(ins, got.Entities[0], entityCmp); d != "" {
		t.Errorf("insert differs (-want +got):\n%s", d)
	}
}

func TestCodePageRoundTrip(t *testing.T) {
	doc := &Document{
		Version:  dxf.R2000,
		CodePage: "ANSI_1252",
		Entities: []dxf.Entity{
			&entity.Text{
				Common:      stock("Café"),
				Value:       "Überhöht",
				Height:      2.5,
				WidthFactor: 1,
				Style:       "STANDARD",
			},
		},
	}

	buf := &bytes.Buffer{}
	if err := Save(buf, doc, nil); err != nil {
		t.Fatal(err)
	}
	if !bytes.Contains(buf.Bytes(), []byte{0xE9}) {
		t.Error("output is not in the declared code page")
	}

	got, err := Load(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	text := got.Entities[0].(*entity.Text)
	if text.Layer != "Café" || text.Value != "Überhöht" {
		t.Errorf("got %q on layer %q", text.Value, text.Layer)
	}
}

func TestObjectsSection(t *testing.T) {
	dict := &entity.Dictionary{
		Handle:  0xC,
		Cloning: 1,
		Names:   []string{"ACAD_GROUP", "ACAD_LAYOUT"},
		Refs:    []dxf.Handle{0xD, 0xE},
	}
	doc := &Document{
		Version: dxf.R2018,
		Objects: []dxf.Entity{dict},
	}

	buf := &bytes.Buffer{}
	if err := Save(buf, doc, nil); err != nil {
		t.Fatal(err)
	}
	got, err := Load(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(got.Objects) != 1 {
		t.Fatalf("got %d objects, want 1", len(got.Objects))
	}
	if d := cmp.Diff(dict, got.Objects[0], entityCmp); d != "" {
		t.Errorf("dictionary differs (-want +got):\n%s", d)
	}

	// no OBJECTS section before R13
	doc.Version = dxf.R12
	buf.Reset()
	if err := Save(buf, doc, nil); err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "OBJECTS") {
		t.Error("OBJECTS section must be omitted before R13")
	}
}

func TestThumbnailRoundTrip(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			img.Set(x, y, color.RGBA{R: uint8(32 * x), G: uint8(64 * y), B: 200, A: 255})
		}
	}
	doc := &Document{
		Version:   dxf.R2004,
		Thumbnail: img,
	}

	buf := &bytes.Buffer{}
	if err := Save(buf, doc, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "THUMBNAILIMAGE") {
		t.Fatal("output lacks a THUMBNAILIMAGE section")
	}

	got, err := Load(bytes.NewReader(buf.Bytes()), nil)
	if err != nil {
		t.Fatal(err)
	}
	if got.Thumbnail == nil {
		t.Fatal("thumbnail missing after reload")
	}
	if got.Thumbnail.Bounds() != img.Bounds() {
		t.Fatalf("got bounds %v", got.Thumbnail.Bounds())
	}
	for y := 0; y < 2; y++ {
		for x := 0; x < 4; x++ {
			want := img.RGBAAt(x, y)
			if got := color.RGBAModel.Convert(got.Thumbnail.At(x, y)); got != want {
				t.Errorf("pixel (%d,%d): got %v, want %v", x, y, got, want)
			}
		}
	}
}

func TestLoadHeader(t *testing.T) {
	in := strings.Join([]string{
		"  0", "SECTION",
		"  2", "HEADER",
		"  9", "$ACADVER",
		"  1", "AC1015",
		"  9", "$EXTMIN",
		" 10", "-3.5",
		" 20", "-2.0",
		" 30", "0.0",
		"  9", "$EXTMAX",
		" 10", "100.0",
		" 20", "80.0",
		" 30", "0.0",
		"  0", "ENDSEC",
		"  0", "EOF",
	}, "\n") + "\n"

	doc, err := Load(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}
	if doc.Version != dxf.R2000 {
		t.Errorf("got version %s", doc.Version)
	}
	want := dxf.Point{X: -3.5, Y: -2}
	if doc.ExtMin != want {
		t.Errorf("got ExtMin %v", doc.ExtMin)
	}
	if doc.ExtMax.X != 100 || doc.ExtMax.Y != 80 {
		t.Errorf("got ExtMax %v", doc.ExtMax)
	}
}

func TestLoadSkipsUnknownSections(t *testing.T) {
	in := strings.Join([]string{
		"  0", "SECTION",
		"  2", "TABLES",
		"  0", "TABLE",
		"  2", "LAYER",
		"  0", "ENDTAB",
		"  0", "ENDSEC",
		"  0", "SECTION",
		"  2", "ENTITIES",
		"  0", "CIRCLE",
		"  8", "0",
		" 40", "1.000000",
		"  0", "ENDSEC",
		"  0", "EOF",
	}, "\n") + "\n"

	doc, err := Load(strings.NewReader(in), nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Entities) != 1 {
		t.Fatalf("got %d entities, want 1", len(doc.Entities))
	}
	if doc.Entities[0].EntityType() != "CIRCLE" {
		t.Errorf("got %s", doc.Entities[0].EntityType())
	}
}
