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

// Ellipse is a full or partial ellipse.  The entity was introduced with
// R13.
type Ellipse struct {
	Common

	_ struct{} `dxf:"100=AcDbEllipse,min=R13"`

	// Center is the center point.
	Center dxf.Point `dxf:"10"`

	// MajorAxis is the endpoint of the major axis, relative to the
	// center.
	MajorAxis dxf.Point `dxf:"11"`

	// Extrusion is the extrusion direction.
	Extrusion dxf.Point `dxf:"210,default=0;0;1,optional"`

	// Ratio is the length ratio of minor to major axis.
	Ratio float64 `dxf:"40"`

	// StartParam and EndParam delimit a partial ellipse; 0 to 2*pi is
	// the full ellipse.
	StartParam float64 `dxf:"41"`
	EndParam   float64 `dxf:"42"`
}

// EntityType returns "ELLIPSE".
// This implements the [dxf.Entity] interface.
func (e *Ellipse) EntityType() string {
	return "ELLIPSE"
}
