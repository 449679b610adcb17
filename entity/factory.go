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

func init() {
	dxf.Register("ARC", func() dxf.Entity { return new(Arc) })
	dxf.Register("ATTRIB", func() dxf.Entity { return new(Attrib) })
	dxf.Register("CIRCLE", func() dxf.Entity { return new(Circle) })
	dxf.Register("DICTIONARY", func() dxf.Entity { return new(Dictionary) })
	dxf.Register("ELLIPSE", func() dxf.Entity { return new(Ellipse) })
	dxf.Register("IMAGE", func() dxf.Entity { return new(Image) })
	dxf.Register("INSERT", func() dxf.Entity { return new(Insert) })
	dxf.Register("LINE", func() dxf.Entity { return new(Line) })
	dxf.Register("LWPOLYLINE", func() dxf.Entity { return new(LWPolyline) })
	dxf.Register("MLINE", func() dxf.Entity { return new(MLine) })
	dxf.Register("POINT", func() dxf.Entity { return new(Point) })
	dxf.Register("POLYLINE", func() dxf.Entity { return new(Polyline) })
	dxf.Register("SEQEND", func() dxf.Entity { return new(Seqend) })
	dxf.Register("SOLID", func() dxf.Entity { return new(Solid) })
	dxf.Register("TEXT", func() dxf.Entity { return new(Text) })
	dxf.Register("TRACE", func() dxf.Entity { return new(Trace) })
}
