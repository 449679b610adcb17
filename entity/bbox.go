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
	"math"

	"github.com/zooyer/golib/xmath"

	dxf "github.com/bert/libdxf-sub006"
)

// BBox is an axis-aligned bounding box.
type BBox struct {
	Min, Max dxf.Point
}

const bboxEpsilon = 1e-9

// Degenerate reports whether the box has no extent in X and Y.
func (b BBox) Degenerate() bool {
	return xmath.Equal(b.Min.X, b.Max.X, bboxEpsilon) &&
		xmath.Equal(b.Min.Y, b.Max.Y, bboxEpsilon)
}

// Merge returns the smallest box containing both b and other.
func (b BBox) Merge(other BBox) BBox {
	return BBox{
		Min: dxf.Point{
			X: math.Min(b.Min.X, other.Min.X),
			Y: math.Min(b.Min.Y, other.Min.Y),
			Z: math.Min(b.Min.Z, other.Min.Z),
		},
		Max: dxf.Point{
			X: math.Max(b.Max.X, other.Max.X),
			Y: math.Max(b.Max.Y, other.Max.Y),
			Z: math.Max(b.Max.Z, other.Max.Z),
		},
	}
}

func boxAround(pts ...dxf.Point) (BBox, bool) {
	if len(pts) == 0 {
		return BBox{}, false
	}
	b := BBox{Min: pts[0], Max: pts[0]}
	for _, p := range pts[1:] {
		b = b.Merge(BBox{Min: p, Max: p})
	}
	return b, true
}

// Box computes the axis-aligned bounding box of an entity.  The second
// return value is false for kinds without a defined extent (SEQEND,
// DICTIONARY) and for empty polylines.
//
// Arcs are bounded by their full circle; INSERT array parameters are not
// expanded.
func Box(e dxf.Entity) (BBox, bool) {
	switch e := e.(type) {
	case *Line:
		return boxAround(e.Start, e.End)
	case *Circle:
		return circleBox(e.Center, e.Radius), true
	case *Arc:
		return circleBox(e.Center, e.Radius), true
	case *Point:
		return boxAround(e.Location)
	case *Text:
		return boxAround(e.Position)
	case *Solid:
		return boxAround(e.Corner1, e.Corner2, e.Corner3, e.Corner4)
	case *Trace:
		return boxAround(e.Corner1, e.Corner2, e.Corner3, e.Corner4)
	case *Insert:
		return boxAround(e.Position)
	case *LWPolyline:
		return boxAround(e.Vertices...)
	case *MLine:
		return boxAround(e.Vertices...)
	case *Polyline:
		pts := make([]dxf.Point, len(e.Vertices))
		for i, v := range e.Vertices {
			pts[i] = v.Location
		}
		return boxAround(pts...)
	case *Image:
		return boxAround(e.Position)
	}
	return BBox{}, false
}

func circleBox(center dxf.Point, r float64) BBox {
	return BBox{
		Min: dxf.Point{X: center.X - r, Y: center.Y - r, Z: center.Z},
		Max: dxf.Point{X: center.X + r, Y: center.Y + r, Z: center.Z},
	}
}
