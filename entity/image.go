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

// Image places a raster image.  Introduced with R14.
type Image struct {
	Common

	_ struct{} `dxf:"100=AcDbRasterImage,min=R13"`

	// ClassVersion is the raster image class version.
	ClassVersion int32 `dxf:"90,optional"`

	// Position is the insertion point (lower left corner).
	Position dxf.Point `dxf:"10"`

	// UVector and VVector span one pixel in image space.
	UVector dxf.Point `dxf:"11"`
	VVector dxf.Point `dxf:"12"`

	// Size is the image size in pixels (U and V values).
	Size dxf.Point `dxf:"13,2d"`

	// ImageDef is the hard reference to the IMAGEDEF object.
	ImageDef dxf.Handle `dxf:"340"`

	// DisplayFlags: 1 show image, 2 show when not aligned, 4 use
	// clipping boundary, 8 transparency on.
	DisplayFlags int16 `dxf:"70,default=1,optional"`

	// Clipping is 1 when the clip boundary is in use.
	Clipping int16 `dxf:"280,optional,range=0:1"`

	// Brightness, Contrast and Fade adjust the display, 0..100.
	Brightness int16 `dxf:"281,default=50,optional,range=0:100"`
	Contrast   int16 `dxf:"282,default=50,optional,range=0:100"`
	Fade       int16 `dxf:"283,optional,range=0:100"`

	// ImageDefReactor is the hard reference to the IMAGEDEF_REACTOR
	// object.
	ImageDefReactor dxf.Handle `dxf:"360,optional"`

	// ClipType is 1 for a rectangular, 2 for a polygonal boundary.
	ClipType int16 `dxf:"71,default=1,optional,range=1:2"`

	// ClipVertexCount is the number of clip boundary vertices.
	ClipVertexCount int32 `dxf:"91,optional"`

	// ClipVertices holds the clip boundary polygon, one 14/24 pair per
	// vertex, in boundary order.
	ClipVertices []dxf.Point `dxf:"14,2d"`
}

// EntityType returns "IMAGE".
// This implements the [dxf.Entity] interface.
func (i *Image) EntityType() string {
	return "IMAGE"
}
