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

// Text is a single line of text.
type Text struct {
	Common

	_ struct{} `dxf:"100=AcDbText,min=R13"`

	// Position is the first alignment point.
	Position dxf.Point `dxf:"10"`

	// Height is the text height.
	Height float64 `dxf:"40"`

	// Value is the text itself.
	Value string `dxf:"1"`

	// Rotation is the text rotation in degrees.
	Rotation float64 `dxf:"50,optional"`

	// WidthFactor is the relative X scale factor.
	WidthFactor float64 `dxf:"41,default=1,optional"`

	// ObliqueAngle is the slant of the characters in degrees.
	ObliqueAngle float64 `dxf:"51,optional"`

	// Style is the name of the text style.
	Style string `dxf:"7,default=STANDARD,optional"`

	// GenerationFlags is 2 for backward, 4 for upside-down text.
	GenerationFlags int16 `dxf:"71,optional"`

	// HorizontalAlign selects the horizontal justification.
	HorizontalAlign int16 `dxf:"72,optional"`

	// AlignmentPoint is the second alignment point, used when
	// HorizontalAlign or VerticalAlign is nonzero.
	AlignmentPoint dxf.Point `dxf:"11,optional"`

	// Extrusion is the extrusion direction.
	Extrusion dxf.Point `dxf:"210,default=0;0;1,optional"`

	// VerticalAlign selects the vertical justification.
	VerticalAlign int16 `dxf:"73,optional"`
}

// EntityType returns "TEXT".
// This implements the [dxf.Entity] interface.
func (t *Text) EntityType() string {
	return "TEXT"
}
