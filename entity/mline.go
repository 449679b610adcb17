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

// MLine is a multi-line: several parallel lines drawn as one entity.
// Introduced with R13.
type MLine struct {
	Common

	_ struct{} `dxf:"100=AcDbMline,min=R13"`

	// Style is the name of the MLINESTYLE to use.
	Style string `dxf:"2,default=STANDARD,optional"`

	// StyleRef is the hard reference to the MLINESTYLE object.
	StyleRef dxf.Handle `dxf:"340"`

	// Scale is the overall width scale factor.
	Scale float64 `dxf:"40,default=1,optional"`

	// Justification: 0 top, 1 zero (center), 2 bottom.
	Justification int16 `dxf:"70,optional,range=0:2"`

	// Flags: 1 unlocked, 2 closed, 4 no start caps, 8 no end caps.
	Flags int16 `dxf:"71,optional"`

	// VertexCount is the number of vertices.
	VertexCount int16 `dxf:"72"`

	// StyleElements is the number of parallel elements in the style.
	StyleElements int16 `dxf:"73"`

	// Start is the start point of the multi-line.
	Start dxf.Point `dxf:"10"`

	// Extrusion is the extrusion direction.
	Extrusion dxf.Point `dxf:"210,default=0;0;1,optional"`

	// Vertices holds the vertex points, one 11/21/31 triple each, in
	// segment order.
	Vertices []dxf.Point `dxf:"11"`

	// Directions holds the direction vector of the segment starting at
	// each vertex.
	Directions []dxf.Point `dxf:"12,optional"`

	// MiterDirs holds the miter direction vector at each vertex.
	MiterDirs []dxf.Point `dxf:"13,optional"`
}

// EntityType returns "MLINE".
// This implements the [dxf.Entity] interface.
func (m *MLine) EntityType() string {
	return "MLINE"
}
