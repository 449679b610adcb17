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
	"strconv"
	"strings"
	"sync"
)

type fieldKind uint8

const (
	kindString fieldKind = iota
	kindFloat
	kindInt
	kindHandle
	kindPoint
	kindMarker
)

type field struct {
	name     string
	code     int
	index    []int
	kind     fieldKind
	repeated bool
	twoD     bool
	optional bool
	group    string
	marker   string
	minVer   Version
	maxVer   Version
	hasDef   bool
	defStr   string
	defNum   float64
	defPt    Point
	hasRange bool
	rangeLo  int64
	rangeHi  int64
}

func (f *field) inVersion(ver Version) bool {
	if f.minVer != 0 && ver < f.minVer {
		return false
	}
	if f.maxVer != 0 && ver > f.maxVer {
		return false
	}
	return true
}

func (f *field) isDefault(fv reflect.Value) bool {
	if f.repeated {
		return fv.Len() == 0
	}
	switch f.kind {
	case kindString:
		// an empty string means "not set" and counts as default
		s := fv.String()
		return s == f.defStr || s == ""
	case kindFloat:
		return fv.Float() == f.defNum
	case kindInt:
		return fv.Int() == int64(f.defNum)
	case kindHandle:
		return fv.Uint() == uint64(f.defNum)
	case kindPoint:
		return fv.Interface().(Point) == f.defPt
	}
	return false
}

// codeRef resolves one group code to a field slot.  For point fields,
// coord selects the coordinate: 0 for the X code, 1 for the Y code
// (X code + 10), 2 for the Z code (X code + 20).
type codeRef struct {
	f     *field
	coord int
}

type fieldKey struct {
	group string
	code  int
}

// structInfo is the field descriptor table for one entity type.
type structInfo struct {
	fields  []*field
	byKey   map[fieldKey]codeRef
	markers map[string]bool
}

var structInfoCache sync.Map // reflect.Type -> *structInfo

// structInfoFor returns the descriptor table for t, building and caching
// it on first use.
func structInfoFor(t reflect.Type) (*structInfo, error) {
	if cached, ok := structInfoCache.Load(t); ok {
		return cached.(*structInfo), nil
	}
	info := &structInfo{
		byKey:   make(map[fieldKey]codeRef),
		markers: make(map[string]bool),
	}
	if err := info.addFields(t, nil); err != nil {
		return nil, err
	}
	structInfoCache.Store(t, info)
	return info, nil
}

func (info *structInfo) addFields(t reflect.Type, prefix []int) error {
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		index := make([]int, len(prefix)+1)
		copy(index, prefix)
		index[len(prefix)] = i

		tag, hasTag := sf.Tag.Lookup("dxf")
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct && !hasTag {
			if err := info.addFields(sf.Type, index); err != nil {
				return err
			}
			continue
		}
		if !hasTag || tag == "-" {
			continue
		}

		f, err := parseFieldTag(sf, tag)
		if err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}
		f.index = index
		info.fields = append(info.fields, f)

		if f.kind == kindMarker {
			info.markers[f.marker] = true
			continue
		}
		if err := info.register(f, f.code, 0); err != nil {
			return fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
		}
		if f.kind == kindPoint {
			if err := info.register(f, f.code+10, 1); err != nil {
				return fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
			}
			if !f.twoD {
				if err := info.register(f, f.code+20, 2); err != nil {
					return fmt.Errorf("%s.%s: %w", t.Name(), sf.Name, err)
				}
			}
		}
	}
	return nil
}

func (info *structInfo) register(f *field, code, coord int) error {
	key := fieldKey{group: f.group, code: code}
	if _, exists := info.byKey[key]; exists {
		return fmt.Errorf("duplicate group code %d", code)
	}
	info.byKey[key] = codeRef{f: f, coord: coord}
	return nil
}

func parseFieldTag(sf reflect.StructField, tag string) (*field, error) {
	parts := strings.Split(tag, ",")
	f := &field{name: sf.Name}

	head := parts[0]
	if name, isMarker := strings.CutPrefix(head, "100="); isMarker {
		f.kind = kindMarker
		f.code = 100
		f.marker = name
	} else {
		code, err := strconv.Atoi(head)
		if err != nil {
			return nil, fmt.Errorf("invalid group code %q", head)
		}
		f.code = code

		ft := sf.Type
		if ft.Kind() == reflect.Slice {
			f.repeated = true
			ft = ft.Elem()
		}
		switch {
		case ft == reflect.TypeFor[Point]():
			f.kind = kindPoint
		case ft == reflect.TypeFor[Handle]():
			f.kind = kindHandle
		case ft.Kind() == reflect.String:
			f.kind = kindString
		case ft.Kind() == reflect.Float64:
			f.kind = kindFloat
		case ft.Kind() == reflect.Int16 || ft.Kind() == reflect.Int32 ||
			ft.Kind() == reflect.Int64:
			f.kind = kindInt
		default:
			return nil, fmt.Errorf("unsupported field type %s", sf.Type)
		}
	}

	for _, opt := range parts[1:] {
		key, val, hasVal := strings.Cut(opt, "=")
		switch {
		case opt == "optional":
			f.optional = true
		case opt == "2d":
			if f.kind != kindPoint {
				return nil, fmt.Errorf("option 2d on non-point field")
			}
			f.twoD = true
		case key == "default" && hasVal:
			if err := f.setDefault(val); err != nil {
				return nil, err
			}
		case key == "min" && hasVal:
			v, ok := parseVersionName(val)
			if !ok {
				return nil, fmt.Errorf("unknown version %q", val)
			}
			f.minVer = v
		case key == "max" && hasVal:
			v, ok := parseVersionName(val)
			if !ok {
				return nil, fmt.Errorf("unknown version %q", val)
			}
			f.maxVer = v
		case key == "group" && hasVal:
			f.group = val
		case key == "range" && hasVal:
			lo, hi, ok := strings.Cut(val, ":")
			if !ok {
				return nil, fmt.Errorf("invalid range %q", val)
			}
			var err error
			f.rangeLo, err = strconv.ParseInt(lo, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid range %q", val)
			}
			f.rangeHi, err = strconv.ParseInt(hi, 10, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid range %q", val)
			}
			f.hasRange = true
		default:
			return nil, fmt.Errorf("unknown option %q", opt)
		}
	}
	return f, nil
}

func (f *field) setDefault(val string) error {
	f.hasDef = true
	switch f.kind {
	case kindString:
		f.defStr = val
	case kindFloat, kindInt, kindHandle:
		x, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return fmt.Errorf("invalid default %q", val)
		}
		f.defNum = x
	case kindPoint:
		coords := strings.Split(val, ";")
		if len(coords) != 3 {
			return fmt.Errorf("invalid point default %q", val)
		}
		var xyz [3]float64
		for i, c := range coords {
			x, err := strconv.ParseFloat(c, 64)
			if err != nil {
				return fmt.Errorf("invalid point default %q", val)
			}
			xyz[i] = x
		}
		f.defPt = Point{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	default:
		return fmt.Errorf("default on marker field")
	}
	return nil
}

// applyDefaults initializes every defaulted scalar slot before any tags
// are consumed.
func applyDefaults(v reflect.Value, info *structInfo) {
	for _, f := range info.fields {
		if !f.hasDef || f.repeated {
			continue
		}
		fv := v.FieldByIndex(f.index)
		switch f.kind {
		case kindString:
			fv.SetString(f.defStr)
		case kindFloat:
			fv.SetFloat(f.defNum)
		case kindInt:
			fv.SetInt(int64(f.defNum))
		case kindHandle:
			fv.SetUint(uint64(f.defNum))
		case kindPoint:
			fv.Set(reflect.ValueOf(f.defPt))
		}
	}
}

// backfillStringDefaults replaces string slots that are still empty after
// the tag loop with their declared defaults.  This covers both omitted
// tags and tags with an empty value line.
func backfillStringDefaults(v reflect.Value, info *structInfo) {
	for _, f := range info.fields {
		if f.kind != kindString || f.repeated || !f.hasDef {
			continue
		}
		fv := v.FieldByIndex(f.index)
		if fv.String() == "" {
			fv.SetString(f.defStr)
		}
	}
}
