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

// Polyline is the classic polyline entity.  On the wire its vertices are
// separate VERTEX entities chained behind the POLYLINE and terminated by
// a SEQEND; the document reader collects the chain into the Vertices
// slice, and the document writer emits it again.
type Polyline struct {
	Common

	_ struct{} `dxf:"100=AcDb2dPolyline,min=R13"`

	// VerticesFollow is always 1: vertex entities follow the polyline.
	VerticesFollow int16 `dxf:"66,default=1,optional,range=0:1"`

	// Anchor holds the polyline elevation in its Z coordinate; X and Y
	// are always 0.
	Anchor dxf.Point `dxf:"10,optional"`

	// Flags: 1 closed, 8 3D polyline, 16 polygon mesh.
	Flags int16 `dxf:"70,optional"`

	// StartWidth and EndWidth are the default segment widths.
	StartWidth float64 `dxf:"40,optional"`
	EndWidth   float64 `dxf:"41,optional"`

	// Extrusion is the extrusion direction.
	Extrusion dxf.Point `dxf:"210,default=0;0;1,optional"`

	// Vertices holds the chained VERTEX entities, in drawing order.
	Vertices []*Vertex `dxf:"-"`
}

// EntityType returns "POLYLINE".
// This implements the [dxf.Entity] interface.
func (p *Polyline) EntityType() string {
	return "POLYLINE"
}

// Vertex is one vertex of a POLYLINE chain.
type Vertex struct {
	Common

	_ struct{} `dxf:"100=AcDbVertex,min=R13"`
	_ struct{} `dxf:"100=AcDb2dVertex,min=R13"`

	// Location is the vertex position.
	Location dxf.Point `dxf:"10"`

	// StartWidth and EndWidth override the polyline's widths for the
	// segment starting here.
	StartWidth float64 `dxf:"40,optional"`
	EndWidth   float64 `dxf:"41,optional"`

	// Bulge is the tangent of a quarter of the included angle of the
	// arc segment starting here; 0 for a straight segment.
	Bulge float64 `dxf:"42,optional"`

	// Flags: 1 extra vertex from curve fitting, 16 spline frame
	// control point.
	Flags int16 `dxf:"70,optional"`

	// TangentDir is the curve-fit tangent direction in degrees.
	TangentDir float64 `dxf:"50,optional"`
}

// EntityType returns "VERTEX".
// This implements the [dxf.Entity] interface.
func (v *Vertex) EntityType() string {
	return "VERTEX"
}

// Seqend terminates a chain of VERTEX or ATTRIB entities.
type Seqend struct {
	Common
}

// EntityType returns "SEQEND".
// This implements the [dxf.Entity] interface.
func (s *Seqend) EntityType() string {
	return "SEQEND"
}
