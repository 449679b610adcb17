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

import "strconv"

// Version represents a release of the DXF format.
//
// Versions are ordered: a later release compares greater than an earlier
// one.  The zero value means "version unknown" and never satisfies any
// version requirement.
type Version int

// DXF versions supported by this library.
const (
	_ Version = iota
	R10
	R11
	R12
	R13
	R14
	R2000
	R2004
	R2007
	R2010
	R2013
	R2018
)

// ParseVersion parses the value of the $ACADVER header variable,
// e.g. "AC1015".
//
// The AC1009 database version was used for both the R11 and R12 releases;
// it parses as R12.
func ParseVersion(verString string) (Version, error) {
	switch verString {
	case "AC1006":
		return R10, nil
	case "AC1009":
		return R12, nil
	case "AC1012":
		return R13, nil
	case "AC1014":
		return R14, nil
	case "AC1015":
		return R2000, nil
	case "AC1018":
		return R2004, nil
	case "AC1021":
		return R2007, nil
	case "AC1024":
		return R2010, nil
	case "AC1027":
		return R2013, nil
	case "AC1032":
		return R2018, nil
	}
	return 0, errVersion
}

// ToString returns the $ACADVER representation of ver, e.g. "AC1015".
// If ver does not correspond to a supported DXF version, an error is
// returned.
func (ver Version) ToString() (string, error) {
	switch ver {
	case R10:
		return "AC1006", nil
	case R11, R12:
		return "AC1009", nil
	case R13:
		return "AC1012", nil
	case R14:
		return "AC1014", nil
	case R2000:
		return "AC1015", nil
	case R2004:
		return "AC1018", nil
	case R2007:
		return "AC1021", nil
	case R2010:
		return "AC1024", nil
	case R2013:
		return "AC1027", nil
	case R2018:
		return "AC1032", nil
	}
	return "", errVersion
}

func (ver Version) String() string {
	names := map[Version]string{
		R10:   "R10",
		R11:   "R11",
		R12:   "R12",
		R13:   "R13",
		R14:   "R14",
		R2000: "R2000",
		R2004: "R2004",
		R2007: "R2007",
		R2010: "R2010",
		R2013: "R2013",
		R2018: "R2018",
	}
	if s, ok := names[ver]; ok {
		return s
	}
	return "dxf.Version(" + strconv.Itoa(int(ver)) + ")"
}

// parseVersionName parses a release name as used in field descriptors,
// e.g. "R14" or "R2000".
func parseVersionName(s string) (Version, bool) {
	for v := R10; v <= R2018; v++ {
		if v.String() == s {
			return v, true
		}
	}
	return 0, false
}
