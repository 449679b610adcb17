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

// Insert places a block reference, optionally as a rectangular array.
type Insert struct {
	Common

	_ struct{} `dxf:"100=AcDbBlockReference,min=R13"`

	// AttribsFollow is 1 if ATTRIB entities follow, terminated by a
	// SEQEND.
	AttribsFollow int16 `dxf:"66,optional,range=0:1"`

	// Block is the name of the block to insert.
	Block string `dxf:"2"`

	// Position is the insertion point.
	Position dxf.Point `dxf:"10"`

	// XScale, YScale, ZScale are the scale factors.
	XScale float64 `dxf:"41,default=1,optional"`
	YScale float64 `dxf:"42,default=1,optional"`
	ZScale float64 `dxf:"43,default=1,optional"`

	// Rotation is the rotation angle in degrees.
	Rotation float64 `dxf:"50,optional"`

	// Columns and Rows give the array size.
	Columns int16 `dxf:"70,default=1,optional"`
	Rows    int16 `dxf:"71,default=1,optional"`

	// ColumnSpacing and RowSpacing give the array distances.
	ColumnSpacing float64 `dxf:"44,optional"`
	RowSpacing    float64 `dxf:"45,optional"`

	// Extrusion is the extrusion direction.
	Extrusion dxf.Point `dxf:"210,default=0;0;1,optional"`

	// Attribs holds the attached attributes when AttribsFollow is set.
	// They are chained behind the INSERT on the wire and terminated by
	// a SEQEND; the document reader collects them here.
	Attribs []*Attrib `dxf:"-"`
}

// EntityType returns "INSERT".
// This implements the [dxf.Entity] interface.
func (i *Insert) EntityType() string {
	return "INSERT"
}
