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

package entity

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	dxf "github.com/bert/libdxf-sub006"
)

func TestBoxLine(t *testing.T) {
	l := &Line{
		Start: dxf.Point{X: 3, Y: -1, Z: 2},
		End:   dxf.Point{X: -2, Y: 4, Z: 0},
	}
	b, ok := Box(l)
	if !ok {
		t.Fatal("expected a box")
	}
	want := BBox{
		Min: dxf.Point{X: -2, Y: -1, Z: 0},
		Max: dxf.Point{X: 3, Y: 4, Z: 2},
	}
	if d := cmp.Diff(want, b); d != "" {
		t.Errorf("box differs (-want +got):\n%s", d)
	}
}

func TestBoxCircle(t *testing.T) {
	c := &Circle{Center: dxf.Point{X: 10, Y: 20}, Radius: 5}
	b, ok := Box(c)
	if !ok {
		t.Fatal("expected a box")
	}
	want := BBox{
		Min: dxf.Point{X: 5, Y: 15},
		Max: dxf.Point{X: 15, Y: 25},
	}
	if d := cmp.Diff(want, b); d != "" {
		t.Errorf("box differs (-want +got):\n%s", d)
	}
	if b.Degenerate() {
		t.Error("a circle with positive radius has extent")
	}
}

func TestBoxPolyline(t *testing.T) {
	p := &Polyline{
		Vertices: []*Vertex{
			{Location: dxf.Point{X: 1, Y: 1}},
			{Location: dxf.Point{X: 4, Y: 0}},
			{Location: dxf.Point{X: 2, Y: 7}},
		},
	}
	b, ok := Box(p)
	if !ok {
		t.Fatal("expected a box")
	}
	want := BBox{
		Min: dxf.Point{X: 1, Y: 0},
		Max: dxf.Point{X: 4, Y: 7},
	}
	if d := cmp.Diff(want, b); d != "" {
		t.Errorf("box differs (-want +got):\n%s", d)
	}

	if _, ok := Box(&Polyline{}); ok {
		t.Error("an empty polyline has no extent")
	}
}

func TestBoxDegenerate(t *testing.T) {
	p := &Point{Location: dxf.Point{X: 1, Y: 2}}
	b, ok := Box(p)
	if !ok {
		t.Fatal("expected a box")
	}
	if !b.Degenerate() {
		t.Error("a point has no extent")
	}

	if _, ok := Box(&Seqend{}); ok {
		t.Error("SEQEND has no extent")
	}
}

func TestBoxMerge(t *testing.T) {
	a := BBox{Max: dxf.Point{X: 1, Y: 1}}
	b := BBox{Min: dxf.Point{X: 2, Y: -3}, Max: dxf.Point{X: 4, Y: 0}}
	got := a.Merge(b)
	want := BBox{
		Min: dxf.Point{Y: -3},
		Max: dxf.Point{X: 4, Y: 1},
	}
	if d := cmp.Diff(want, got); d != "" {
		t.Errorf("box differs (-want +got):\n%s", d)
	}
}
