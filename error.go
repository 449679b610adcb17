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
	"strconv"
)

var (
	errVersion = errors.New("unsupported DXF version")

	// ErrTruncated indicates that the input ended in the middle of a
	// group code/value pair.
	ErrTruncated = errors.New("incomplete tag pair")

	// ErrUnknownEntity indicates that a group 0 tag named an entity kind
	// which has not been registered.  The body of the entity has been
	// consumed, so the caller can continue with the next entity.
	ErrUnknownEntity = errors.New("unknown entity kind")
)

// MalformedEntityError indicates that an entity could not be assembled
// from the tag stream.  No partial entity is returned in this case.
type MalformedEntityError struct {
	Src  string
	Line int
	Err  error
}

func (err *MalformedEntityError) Error() string {
	middle := ""
	if err.Err != nil {
		middle = ": " + err.Err.Error()
	}
	tail := ""
	if err.Line > 0 {
		tail = " (line " + strconv.Itoa(err.Line) + ")"
	}
	if err.Src != "" {
		tail += " in " + err.Src
	}
	return "not a valid DXF entity" + middle + tail
}

func (err *MalformedEntityError) Unwrap() error {
	return err.Err
}

// A Diagnostic describes a recoverable problem found while assembling an
// entity: an unrecognized group code, or a value outside its documented
// range.  Diagnostics never abort assembly; the tag is discarded (unknown
// code) or stored as-is (out of range).
type Diagnostic struct {
	Src     string
	Line    int
	Code    int
	Value   string
	Message string
}

func (d Diagnostic) String() string {
	s := d.Message
	if d.Line > 0 {
		s += " (line " + strconv.Itoa(d.Line) + ")"
	}
	if d.Src != "" {
		s += " in " + d.Src
	}
	return s
}

// A DiagnosticHandler receives recoverable problems during assembly.
// Handlers must not write to the serialized output stream.
type DiagnosticHandler func(Diagnostic)
