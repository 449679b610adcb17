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

// Package aci provides the fixed AutoCAD Color Index lookup table.
package aci

import "strings"

// Special color index values used in group 62.
const (
	ByBlock = 0
	ByLayer = 256
)

var names = map[int]string{
	ByBlock: "BYBLOCK",
	1:       "red",
	2:       "yellow",
	3:       "green",
	4:       "cyan",
	5:       "blue",
	6:       "magenta",
	7:       "white",
	8:       "dark gray",
	9:       "light gray",
	ByLayer: "BYLAYER",
}

// Name returns the conventional name of a color index, or "" if the
// index has no name of its own.
func Name(index int) string {
	return names[index]
}

// Index returns the color index for a conventional name.  The second
// return value is false if the name is unknown.  Matching ignores case.
func Index(name string) (int, bool) {
	name = strings.ToLower(name)
	for i, n := range names {
		if strings.ToLower(n) == name {
			return i, true
		}
	}
	return 0, false
}

// Valid reports whether index is a legal group 62 value.
func Valid(index int) bool {
	return index >= 0 && index <= 256
}
