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

// Trace is a filled quadrilateral, identical in layout to SOLID.
type Trace struct {
	Common

	_ struct{} `dxf:"100=AcDbTrace,min=R13"`

	Corner1 dxf.Point `dxf:"10"`
	Corner2 dxf.Point `dxf:"11"`
	Corner3 dxf.Point `dxf:"12"`
	Corner4 dxf.Point `dxf:"13"`

	// Extrusion is the extrusion direction.
	Extrusion dxf.Point `dxf:"210,default=0;0;1,optional"`
}

// EntityType returns "TRACE".
// This implements the [dxf.Entity] interface.
func (t *Trace) EntityType() string {
	return "TRACE"
}
