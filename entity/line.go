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

// Line is a straight line segment.
type Line struct {
	Common

	_ struct{} `dxf:"100=AcDbLine,min=R13"`

	// Start is the start point of the line.
	Start dxf.Point `dxf:"10"`

	// End is the end point of the line.
	End dxf.Point `dxf:"11"`

	// Extrusion is the extrusion direction.
	Extrusion dxf.Point `dxf:"210,default=0;0;1,optional"`
}

// EntityType returns "LINE".
// This implements the [dxf.Entity] interface.
func (l *Line) EntityType() string {
	return "LINE"
}
