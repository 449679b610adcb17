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

// Handle is the unique identifier of a database record (group 5), or a
// soft/hard owner pointer to one (groups 330/360 and friends).  On the
// wire a handle is hexadecimal without a "0x" prefix.  The zero value
// means "no handle assigned".
type Handle uint64

// ParseHandle parses the hexadecimal wire representation of a handle.
func ParseHandle(s string) (Handle, error) {
	h, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, err
	}
	return Handle(h), nil
}

func (h Handle) String() string {
	return strconv.FormatUint(uint64(h), 16)
}

// wire returns the uppercase hexadecimal form used in DXF output.
func (h Handle) wire() string {
	return strings.ToUpper(strconv.FormatUint(uint64(h), 16))
}
