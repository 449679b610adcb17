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

// Dictionary is a non-graphical object mapping names to object handles.
// It lives in the OBJECTS section; R13 and newer.
type Dictionary struct {
	// Handle is the unique identifier of the dictionary (group 5).
	Handle dxf.Handle `dxf:"5,optional"`

	// Reactors lists the persistent reactors, wrapped in a
	// {ACAD_REACTORS block.
	Reactors []dxf.Handle `dxf:"330,group=ACAD_REACTORS,min=R14,optional"`

	// Owner is the soft pointer to the owning object.
	Owner dxf.Handle `dxf:"330,optional"`

	_ struct{} `dxf:"100=AcDbDictionary,min=R13"`

	// Cloning selects the duplicate record handling, 0..5.
	Cloning int16 `dxf:"281,default=1,optional,range=0:5"`

	// Names and Refs are parallel lists: entry i maps Names[i] to the
	// object Refs[i].
	Names []string     `dxf:"3"`
	Refs  []dxf.Handle `dxf:"350"`
}

// EntityType returns "DICTIONARY".
// This implements the [dxf.Entity] interface.
func (d *Dictionary) EntityType() string {
	return "DICTIONARY"
}
