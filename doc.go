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

// Package dxf implements the tag-stream layer of the AutoCAD Drawing
// Exchange Format: a line-oriented text encoding in which every value is
// preceded by an integer group code identifying its meaning and type.
//
// The package provides the generic machinery shared by all entity kinds:
// a [Scanner] and [Writer] for the two-line tag encoding, a [Reader] that
// assembles entities from tags, and a version-gated serializer
// ([EntityTags]).  Entity kinds themselves are pure data: structs whose
// "dxf" tags describe group codes, defaults and version ranges (see
// [Entity]).  The entity package defines the common kinds; the document
// package assembles whole drawing files.
package dxf
