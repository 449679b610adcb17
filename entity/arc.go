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

// Arc is a circular arc.  Angles are in degrees, counter-clockwise from
// the X axis of the object coordinate system.
type Arc struct {
	Common

	_ struct{} `dxf:"100=AcDbCircle,min=R13"`

	// Center is the center point of the arc's circle.
	Center dxf.Point `dxf:"10"`

	// Radius is the arc radius.
	Radius float64 `dxf:"40"`

	_ struct{} `dxf:"100=AcDbArc,min=R13"`

	// StartAngle is the start angle in degrees.
	StartAngle float64 `dxf:"50"`

	// EndAngle is the end angle in degrees.
	EndAngle float64 `dxf:"51"`

	// Extrusion is the extrusion direction.
	Extrusion dxf.Point `dxf:"210,default=0;0;1,optional"`
}

// EntityType returns "ARC".
// This implements the [dxf.Entity] interface.
func (a *Arc) EntityType() string {
	return "ARC"
}
