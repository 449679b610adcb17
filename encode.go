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
	"fmt"
	"reflect"
)

// VersionError indicates that a non-default entity field is outside its
// version range for the version being written.  It is only returned in
// strict mode; otherwise the field is silently suppressed.
type VersionError struct {
	Field string
	Have  Version
}

func (err *VersionError) Error() string {
	return fmt.Sprintf("field %s is not available in %s", err.Field, err.Have)
}

// EntityTags serializes e into a tag sequence for the given target
// version: canonical field order, fields outside their version range
// suppressed, optional fields suppressed when equal to their default,
// group 102 blocks emitted as a unit only when non-empty.
//
// Re-assembling the returned tags yields an entity equal to e, up to
// fields suppressed by version gating (which come back as defaults).
func EntityTags(e Entity, ver Version) ([]Tag, error) {
	return entityTags(e, ver, false)
}

func entityTags(e Entity, ver Version, strict bool) ([]Tag, error) {
	v := reflect.ValueOf(e)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return nil, fmt.Errorf("dxf: entity %T is not a pointer to a struct", e)
	}
	v = v.Elem()
	info, err := structInfoFor(v.Type())
	if err != nil {
		return nil, err
	}

	tags := []Tag{{Code: 0, Value: e.EntityType()}}
	i := 0
	for i < len(info.fields) {
		f := info.fields[i]

		if f.group != "" {
			var members []Tag
			j := i
			for j < len(info.fields) && info.fields[j].group == f.group {
				members, err = appendFieldTags(members, v, info.fields[j], ver, strict)
				if err != nil {
					return nil, err
				}
				j++
			}
			if len(members) > 0 {
				tags = append(tags, Tag{Code: 102, Value: "{" + f.group})
				tags = append(tags, members...)
				tags = append(tags, Tag{Code: 102, Value: "}"})
			}
			i = j
			continue
		}

		tags, err = appendFieldTags(tags, v, f, ver, strict)
		if err != nil {
			return nil, err
		}
		i++
	}
	return tags, nil
}

func appendFieldTags(tags []Tag, v reflect.Value, f *field, ver Version, strict bool) ([]Tag, error) {
	if f.kind == kindMarker {
		if f.inVersion(ver) {
			tags = append(tags, Tag{Code: 100, Value: f.marker})
		}
		return tags, nil
	}

	fv := v.FieldByIndex(f.index)
	if !f.inVersion(ver) {
		if strict && !f.isDefault(fv) {
			return nil, &VersionError{Field: f.name, Have: ver}
		}
		return tags, nil
	}
	if f.optional && f.isDefault(fv) {
		return tags, nil
	}

	if f.repeated {
		for k := 0; k < fv.Len(); k++ {
			tags = appendValueTags(tags, fv.Index(k), f)
		}
		return tags, nil
	}
	return appendValueTags(tags, fv, f), nil
}

func appendValueTags(tags []Tag, fv reflect.Value, f *field) []Tag {
	switch f.kind {
	case kindString:
		s := fv.String()
		if s == "" {
			// unset strings are written as their default
			s = f.defStr
		}
		tags = append(tags, Tag{Code: f.code, Value: s})
	case kindFloat:
		tags = append(tags, Tag{Code: f.code, Value: formatFloat(fv.Float())})
	case kindInt:
		tags = append(tags, Tag{Code: f.code, Value: formatInt(fv.Int())})
	case kindHandle:
		tags = append(tags, Tag{Code: f.code, Value: Handle(fv.Uint()).wire()})
	case kindPoint:
		p := fv.Interface().(Point)
		tags = append(tags, Tag{Code: f.code, Value: formatFloat(p.X)})
		tags = append(tags, Tag{Code: f.code + 10, Value: formatFloat(p.Y)})
		if !f.twoD {
			tags = append(tags, Tag{Code: f.code + 20, Value: formatFloat(p.Z)})
		}
	}
	return tags
}
