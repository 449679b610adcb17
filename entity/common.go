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

// Package entity defines the common DXF entity kinds as plain data.
//
// Each kind is a struct whose "dxf" tags drive the generic engine in the
// parent package: the tags name the group codes, defaults and version
// ranges; the structs contain no parsing or serialization logic of their
// own.
package entity

import dxf "github.com/bert/libdxf-sub006"

// Common holds the fields shared by all graphical entities
// (the AcDbEntity subclass).
type Common struct {
	// Handle is the unique identifier of this entity (group 5).
	Handle dxf.Handle `dxf:"5,optional"`

	// Reactors lists the persistent reactors attached to the entity,
	// wrapped in a {ACAD_REACTORS block.
	Reactors []dxf.Handle `dxf:"330,group=ACAD_REACTORS,min=R14,optional"`

	// ExtensionDict is the hard owner pointer to the extension
	// dictionary, wrapped in a {ACAD_XDICTIONARY block.
	ExtensionDict dxf.Handle `dxf:"360,group=ACAD_XDICTIONARY,min=R13,optional"`

	// Owner is the soft pointer to the owning block record.
	Owner dxf.Handle `dxf:"330,min=R13,optional"`

	_ struct{} `dxf:"100=AcDbEntity,min=R13"`

	// Paperspace is 1 for entities in paper space, 0 (default) for
	// model space.
	Paperspace int16 `dxf:"67,optional,range=0:1"`

	// Layer is the name of the layer the entity lives on.
	Layer string `dxf:"8,default=0"`

	// Linetype is the name of the linetype, or "BYLAYER".
	Linetype string `dxf:"6,default=BYLAYER,optional"`

	// Elevation is the entity elevation; superseded by the Z coordinate
	// of the definition points from R11 on.
	Elevation float64 `dxf:"38,optional,max=R10"`

	// Thickness is the extrusion distance of the entity.
	Thickness float64 `dxf:"39,optional"`

	// Color is the AutoCAD Color Index; 256 means "by layer",
	// 0 means "by block".
	Color int16 `dxf:"62,default=256,optional,range=0:256"`

	// LinetypeScale is the independent linetype scale of the entity.
	LinetypeScale float64 `dxf:"48,default=1,optional,min=R13"`

	// Visibility is 0 for visible, 1 for invisible.
	Visibility int16 `dxf:"60,optional,range=0:1"`

	// GraphicsDataSize is the number of bytes of proxy graphics data.
	GraphicsDataSize int32 `dxf:"92,optional,min=R2000"`

	// GraphicsData holds the proxy graphics, in chunks of up to 254
	// bytes encoded as hexadecimal lines.
	GraphicsData []string `dxf:"310,optional,min=R2000"`

	// TrueColor is a 24-bit RGB value; overrides Color when present.
	TrueColor int32 `dxf:"420,optional,min=R2004"`

	// ColorName names a color from a color book.
	ColorName string `dxf:"430,optional,min=R2004"`

	// Transparency is the transparency value of the entity.
	Transparency int32 `dxf:"440,optional,min=R2004"`

	// PlotStyle is the hard pointer to the plot style object.
	PlotStyle dxf.Handle `dxf:"390,optional,min=R2007"`

	// ShadowMode selects how the entity casts and receives shadows.
	ShadowMode int16 `dxf:"284,optional,min=R2007,range=0:3"`
}
