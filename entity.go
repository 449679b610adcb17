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

import "sync"

// Entity is a drawing element or non-graphical database record, encoded
// on the wire as a sequence of tags terminated by the next group 0 tag.
//
// An Entity must be a pointer to a struct whose fields carry "dxf" struct
// tags.  The tag starts with the group code of the field, followed by
// options:
//
//   - "optional": the field is suppressed on output when its value equals
//     the declared default (or the zero value if no default is declared).
//   - "default=v": the value used for the field when the tag is omitted
//     from the input.  Point defaults use semicolons, e.g. "0;0;1".
//   - "min=R13", "max=R12": the version range in which the field applies.
//   - "group=NAME": the field lives inside a group 102 block
//     "{NAME" ... "}".  Consecutive fields with the same group name are
//     emitted as one block, and only if at least one of them is set.
//   - "2d": a Point field carrying only X and Y group codes.
//   - "range=lo:hi": the documented value range; values outside it are
//     reported as diagnostics and stored unchanged.
//
// A blank field with tag "100=Name" declares a subclass marker.
//
// Field order in the struct is the canonical tag order on output.
// Slice-typed fields are repeated fields: each matching tag appends one
// element, in stream order.
type Entity interface {
	// EntityType returns the name used in the group 0 tag,
	// e.g. "CIRCLE".
	EntityType() string
}

var (
	registryMu sync.RWMutex
	registry   = make(map[string]func() Entity)
)

// Register makes an entity kind known to the reader.  The function fn
// must return a new, empty entity.  Register panics if the name is
// already taken.
func Register(name string, fn func() Entity) {
	registryMu.Lock()
	defer registryMu.Unlock()
	if _, exists := registry[name]; exists {
		panic("dxf: entity kind " + name + " registered twice")
	}
	registry[name] = fn
}

// NewEntity returns a new, empty entity of the named kind, or nil if the
// kind has not been registered.
func NewEntity(name string) Entity {
	registryMu.RLock()
	defer registryMu.RUnlock()
	fn := registry[name]
	if fn == nil {
		return nil
	}
	return fn()
}
