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

package dxf

import (
	"strconv"
	"strings"
)

// Tag is one group code/value pair from a DXF stream.
//
// The value is kept as the raw text of the value line, with the trailing
// line break removed but leading white space preserved.
type Tag struct {
	Code  int
	Value string
}

// TagType describes the wire type of a group code.  The mapping from code
// ranges to types is fixed and does not depend on the DXF version.
type TagType int

// The wire types used by DXF group codes.
const (
	TypeString TagType = iota
	TypeFloat
	TypeInt16
	TypeInt32
	TypeInt64
	TypeBool
	TypeHandle
	TypeBinary
)

// CodeType returns the wire type for a group code.
func CodeType(code int) TagType {
	switch {
	case code == 5 || code == 105:
		return TypeHandle
	case code >= 0 && code <= 9:
		return TypeString
	case code >= 10 && code <= 59:
		return TypeFloat
	case code >= 60 && code <= 79:
		return TypeInt16
	case code >= 90 && code <= 99:
		return TypeInt32
	case code == 100 || code == 102:
		return TypeString
	case code >= 110 && code <= 149:
		return TypeFloat
	case code >= 160 && code <= 169:
		return TypeInt64
	case code >= 170 && code <= 179:
		return TypeInt16
	case code >= 210 && code <= 239:
		return TypeFloat
	case code >= 270 && code <= 289:
		return TypeInt16
	case code >= 290 && code <= 299:
		return TypeBool
	case code >= 300 && code <= 309:
		return TypeString
	case code >= 310 && code <= 319:
		return TypeBinary
	case code >= 320 && code <= 369:
		return TypeHandle
	case code >= 370 && code <= 389:
		return TypeInt16
	case code >= 390 && code <= 399:
		return TypeHandle
	case code >= 400 && code <= 409:
		return TypeInt16
	case code >= 410 && code <= 419:
		return TypeString
	case code >= 420 && code <= 429:
		return TypeInt32
	case code >= 430 && code <= 439:
		return TypeString
	case code >= 440 && code <= 459:
		return TypeInt32
	case code >= 460 && code <= 469:
		return TypeFloat
	case code >= 470 && code <= 481:
		return TypeString
	case code >= 1010 && code <= 1059:
		return TypeFloat
	case code >= 1060 && code <= 1070:
		return TypeInt16
	case code == 1071:
		return TypeInt32
	default:
		return TypeString
	}
}

// Float parses the tag value as a double.
func (t Tag) Float() (float64, error) {
	return strconv.ParseFloat(strings.TrimSpace(t.Value), 64)
}

// Int parses the tag value as a decimal integer.
func (t Tag) Int() (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(t.Value), 10, 64)
}

// Handle parses the tag value as a hexadecimal handle.
func (t Tag) Handle() (Handle, error) {
	h, err := strconv.ParseUint(strings.TrimSpace(t.Value), 16, 64)
	return Handle(h), err
}

// Text returns the tag value with surrounding white space removed.
func (t Tag) Text() string {
	return strings.TrimSpace(t.Value)
}

// IsEntityStart reports whether the tag opens a new entity, i.e. whether
// its group code is 0.  The same tag terminates the preceding entity.
func (t Tag) IsEntityStart() bool {
	return t.Code == 0
}

// Point is a 3D coordinate.  A point field occupies three group codes:
// the X code given in the field descriptor, the Y code 10 above it and
// the Z code 20 above it.
type Point struct {
	X, Y, Z float64
}
