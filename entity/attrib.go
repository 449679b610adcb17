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

// Attrib is an attribute value attached to an INSERT.
type Attrib struct {
	Common

	_ struct{} `dxf:"100=AcDbText,min=R13"`

	// Position is the text alignment point.
	Position dxf.Point `dxf:"10"`

	// Height is the text height.
	Height float64 `dxf:"40"`

	// Value is the attribute value.
	Value string `dxf:"1"`

	_ struct{} `dxf:"100=AcDbAttribute,min=R13"`

	// Tag identifies the attribute within its block.
	Tag string `dxf:"2"`

	// Flags: 1 invisible, 2 constant, 4 verification required,
	// 8 preset.
	Flags int16 `dxf:"70"`

	// FieldLength is the declared field length.
	FieldLength int16 `dxf:"73,optional"`

	// Rotation is the text rotation in degrees.
	Rotation float64 `dxf:"50,optional"`

	// Style is the name of the text style.
	Style string `dxf:"7,default=STANDARD,optional"`

	// Extrusion is the extrusion direction.
	Extrusion dxf.Point `dxf:"210,default=0;0;1,optional"`
}

// EntityType returns "ATTRIB".
// This implements the [dxf.Entity] interface.
func (a *Attrib) EntityType() string {
	return "ATTRIB"
}
