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
	"errors"
	"fmt"
	"io"
	"reflect"
	"strconv"
	"strings"
)

// ReaderOptions allows to influence the way a DXF stream is read.
type ReaderOptions struct {
	// Version is the DXF version the input claims to be.  If zero,
	// the newest supported version is assumed.
	Version Version

	// Strict discards tags that are not allowed in the declared
	// version, with a diagnostic.  When off, such tags are stored.
	Strict bool

	// Diagnostics receives recoverable problems (unknown group codes,
	// out-of-range values).  If nil, diagnostics are dropped.
	Diagnostics DiagnosticHandler
}

// Reader assembles entities from a DXF tag stream.
type Reader struct {
	// Version is the DXF version of the input.
	Version Version

	// Strict is the strict-version-rules flag, fixed at creation time.
	Strict bool

	scan *Scanner
	diag DiagnosticHandler
}

// NewReader creates a Reader for the given stream.  The source name src
// is used in errors and diagnostics and may be empty.  opt may be nil.
func NewReader(r io.Reader, src string, opt *ReaderOptions) *Reader {
	if opt == nil {
		opt = &ReaderOptions{}
	}
	ver := opt.Version
	if ver == 0 {
		ver = R2018
	}
	return &Reader{
		Version: ver,
		Strict:  opt.Strict,
		scan:    NewScanner(r, src),
		diag:    opt.Diagnostics,
	}
}

// ReadTag returns the next tag from the stream.
func (r *Reader) ReadTag() (Tag, error) {
	return r.scan.ReadTag()
}

// Unread hands a tag back to the stream.
func (r *Reader) Unread(tag Tag) {
	r.scan.Unread(tag)
}

// Line returns the number of the last physical line consumed.
func (r *Reader) Line() int {
	return r.scan.Line()
}

// ReadEntity assembles the next entity.  The next tag in the stream must
// be a group 0 tag naming the entity kind.
//
// If the kind has not been registered, the entity's tags are consumed and
// an error wrapping [ErrUnknownEntity] is returned; the caller can
// continue reading at the following entity.  A malformed entity aborts
// with a [MalformedEntityError] and no partial entity is returned.
func (r *Reader) ReadEntity() (Entity, error) {
	tag, err := r.scan.ReadTag()
	if err != nil {
		return nil, err
	}
	if tag.Code != 0 {
		return nil, &MalformedEntityError{
			Src:  r.scan.Src(),
			Line: r.scan.Line(),
			Err:  fmt.Errorf("expected entity start, got group %d", tag.Code),
		}
	}

	name := tag.Text()
	e := NewEntity(name)
	if e == nil {
		r.report(tag, "unknown entity kind "+strconv.Quote(name))
		if err := r.skipBody(); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w %q", ErrUnknownEntity, name)
	}

	if err := r.decodeBody(e); err != nil {
		return nil, err
	}
	return e, nil
}

// skipBody consumes tags up to, but not including, the next group 0 tag.
func (r *Reader) skipBody() error {
	for {
		tag, err := r.scan.ReadTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tag.Code == 0 {
			r.scan.Unread(tag)
			return nil
		}
	}
}

// decodeBody runs the tag loop for one entity.  The opening group 0 tag
// has already been consumed; the terminating group 0 tag is left in the
// stream for the next entity.
func (r *Reader) decodeBody(e Entity) error {
	v := reflect.ValueOf(e)
	if v.Kind() != reflect.Pointer || v.Elem().Kind() != reflect.Struct {
		return fmt.Errorf("dxf: entity %T is not a pointer to a struct", e)
	}
	v = v.Elem()
	info, err := structInfoFor(v.Type())
	if err != nil {
		return err
	}

	applyDefaults(v, info)

	group := "" // name of the open 102 block, if any
	for {
		tag, err := r.scan.ReadTag()
		if err == io.EOF {
			// entities end on a group 0 tag, never on EOF
			return &MalformedEntityError{
				Src:  r.scan.Src(),
				Line: r.scan.Line(),
				Err:  io.ErrUnexpectedEOF,
			}
		}
		if err != nil {
			return err
		}
		if tag.Code == 0 {
			r.scan.Unread(tag)
			break
		}

		if tag.Code == 102 {
			val := tag.Text()
			switch {
			case strings.HasPrefix(val, "{"):
				group = val[1:]
			case val == "}":
				group = ""
			default:
				r.report(tag, "malformed group 102 marker "+strconv.Quote(val))
			}
			continue
		}
		if tag.Code == 100 {
			if !info.markers[tag.Text()] {
				r.report(tag, "unknown subclass marker "+strconv.Quote(tag.Text()))
			}
			continue
		}

		ref, ok := info.byKey[fieldKey{group: group, code: tag.Code}]
		if !ok {
			r.report(tag, "unknown group code "+strconv.Itoa(tag.Code))
			continue
		}
		if r.Strict && !ref.f.inVersion(r.Version) {
			r.report(tag, fmt.Sprintf("group %d not allowed in %s",
				tag.Code, r.Version))
			continue
		}

		if err := setField(v, ref, tag); err != nil {
			return &MalformedEntityError{
				Src:  r.scan.Src(),
				Line: r.scan.Line(),
				Err:  err,
			}
		}
		if ref.f.hasRange {
			if n, err := tag.Int(); err == nil &&
				(n < ref.f.rangeLo || n > ref.f.rangeHi) {
				r.report(tag, fmt.Sprintf("group %d value %d outside %d..%d",
					tag.Code, n, ref.f.rangeLo, ref.f.rangeHi))
			}
		}
	}

	backfillStringDefaults(v, info)
	return nil
}

func setField(v reflect.Value, ref codeRef, tag Tag) error {
	f := ref.f
	fv := v.FieldByIndex(f.index)

	switch f.kind {
	case kindString:
		if f.repeated {
			fv.Set(reflect.Append(fv, reflect.ValueOf(tag.Value)))
		} else {
			fv.SetString(tag.Value)
		}

	case kindFloat:
		x, err := tag.Float()
		if err != nil {
			return malformedValue(tag, err)
		}
		if f.repeated {
			fv.Set(reflect.Append(fv, reflect.ValueOf(x)))
		} else {
			fv.SetFloat(x)
		}

	case kindInt:
		n, err := tag.Int()
		if err != nil {
			return malformedValue(tag, err)
		}
		if f.repeated {
			el := reflect.New(fv.Type().Elem()).Elem()
			if el.OverflowInt(n) {
				return malformedValue(tag, errors.New("integer overflow"))
			}
			el.SetInt(n)
			fv.Set(reflect.Append(fv, el))
		} else {
			if fv.OverflowInt(n) {
				return malformedValue(tag, errors.New("integer overflow"))
			}
			fv.SetInt(n)
		}

	case kindHandle:
		h, err := tag.Handle()
		if err != nil {
			return malformedValue(tag, err)
		}
		if f.repeated {
			fv.Set(reflect.Append(fv, reflect.ValueOf(h)))
		} else {
			fv.SetUint(uint64(h))
		}

	case kindPoint:
		x, err := tag.Float()
		if err != nil {
			return malformedValue(tag, err)
		}
		if f.repeated {
			// the X code opens a new list node; Y and Z codes fill
			// the node most recently opened
			if ref.coord == 0 {
				fv.Set(reflect.Append(fv, reflect.ValueOf(Point{X: x})))
			} else {
				if fv.Len() == 0 {
					fv.Set(reflect.Append(fv, reflect.ValueOf(Point{})))
				}
				fv.Index(fv.Len() - 1).Field(ref.coord).SetFloat(x)
			}
		} else {
			fv.Field(ref.coord).SetFloat(x)
		}
	}
	return nil
}

func malformedValue(tag Tag, err error) error {
	return fmt.Errorf("group %d value %q: %w", tag.Code, tag.Value, err)
}

func (r *Reader) report(tag Tag, msg string) {
	if r.diag == nil {
		return
	}
	r.diag(Diagnostic{
		Src:     r.scan.Src(),
		Line:    r.scan.Line(),
		Code:    tag.Code,
		Value:   tag.Value,
		Message: msg,
	})
}
