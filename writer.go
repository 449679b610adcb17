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
	"bufio"
	"io"
	"strconv"
)

// Writer emits group code/value pairs to a DXF stream.
//
// The target version and the strict flag are fixed when the writer is
// created and apply to every entity written through it.
type Writer struct {
	// Version is the DXF version the output is targeted at.  Fields
	// outside their version range are suppressed.
	Version Version

	// Strict rejects entities that use features from a later version
	// instead of silently suppressing them.
	Strict bool

	w   *bufio.Writer
	buf []byte
}

// NewWriter prepares a DXF tag stream for writing.
func NewWriter(w io.Writer, ver Version) *Writer {
	return &Writer{
		Version: ver,
		w:       bufio.NewWriter(w),
	}
}

// WriteTag emits a single tag.  The group code is written right-aligned
// in three columns, as legacy writers do.
func (w *Writer) WriteTag(code int, value string) error {
	w.buf = appendTag(w.buf[:0], code, value)
	_, err := w.w.Write(w.buf)
	return err
}

// WriteEntity serializes one entity.  The tag stream for the entity is
// assembled in memory first; if serialization fails, nothing is written.
func (w *Writer) WriteEntity(e Entity) error {
	tags, err := entityTags(e, w.Version, w.Strict)
	if err != nil {
		return err
	}
	w.buf = w.buf[:0]
	for _, t := range tags {
		w.buf = appendTag(w.buf, t.Code, t.Value)
	}
	_, err = w.w.Write(w.buf)
	return err
}

// Flush writes any buffered data to the underlying io.Writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

func appendTag(buf []byte, code int, value string) []byte {
	c := strconv.Itoa(code)
	for n := len(c); n < 3; n++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, c...)
	buf = append(buf, '\n')
	buf = append(buf, value...)
	buf = append(buf, '\n')
	return buf
}

// formatFloat renders a double the way legacy DXF writers do: fixed
// point with six decimals, no exponent.
func formatFloat(x float64) string {
	return strconv.FormatFloat(x, 'f', 6, 64)
}

func formatInt(x int64) string {
	return strconv.FormatInt(x, 10)
}
