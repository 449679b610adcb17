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

import dxf "github.com/bert/libdxf-sub006"

// LWPolyline is a lightweight polyline: a flat polyline whose vertices
// are stored inline instead of as chained VERTEX entities.  Introduced
// with R14.
type LWPolyline struct {
	Common

	_ struct{} `dxf:"100=AcDbPolyline,min=R13"`

	// VertexCount is the number of vertices.
	VertexCount int32 `dxf:"90"`

	// Flags: 1 closed, 128 plinegen.
	Flags int16 `dxf:"70,optional"`

	// ConstantWidth is the width used for all segments unless
	// per-vertex widths are given.
	ConstantWidth float64 `dxf:"43,optional"`

	// Vertices holds the vertex points, one 10/20 pair each, in
	// drawing order.
	Vertices []dxf.Point `dxf:"10,2d"`

	// Bulges holds the bulge value following each vertex; empty when
	// all segments are straight.
	Bulges []float64 `dxf:"42,optional"`

	// Extrusion is the extrusion direction.
	Extrusion dxf.Point `dxf:"210,default=0;0;1,optional"`
}

// EntityType returns "LWPOLYLINE".
// This implements the [dxf.Entity] interface.
func (p *LWPolyline) EntityType() string {
	return "LWPOLYLINE"
}
