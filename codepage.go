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
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

// Files older than R2007 are stored in the code page named by the
// $DWGCODEPAGE header variable; R2007 and newer files are UTF-8.
var codePages = map[string]encoding.Encoding{
	"ANSI_874":  charmap.Windows874,
	"ANSI_1250": charmap.Windows1250,
	"ANSI_1251": charmap.Windows1251,
	"ANSI_1252": charmap.Windows1252,
	"ANSI_1253": charmap.Windows1253,
	"ANSI_1254": charmap.Windows1254,
	"ANSI_1255": charmap.Windows1255,
	"ANSI_1256": charmap.Windows1256,
	"ANSI_1257": charmap.Windows1257,
	"ANSI_1258": charmap.Windows1258,
	"DOS437":    charmap.CodePage437,
	"DOS850":    charmap.CodePage850,
	"DOS852":    charmap.CodePage852,
	"DOS855":    charmap.CodePage855,
	"DOS866":    charmap.CodePage866,
	"ISO8859-1": charmap.ISO8859_1,
	"ISO8859-2": charmap.ISO8859_2,
	"KOI8":      charmap.KOI8R,
}

// CodePage returns the text encoding for a $DWGCODEPAGE value.  The
// second return value is false if the code page is not supported, or if
// name denotes UTF-8 (which needs no transcoding).
func CodePage(name string) (encoding.Encoding, bool) {
	enc, ok := codePages[strings.ToUpper(name)]
	return enc, ok
}

// DecodeReader wraps r so that text in the named code page is read as
// UTF-8.  For unknown code pages and for UTF-8 itself, r is returned
// unchanged.
func DecodeReader(r io.Reader, codePage string) io.Reader {
	enc, ok := CodePage(codePage)
	if !ok {
		return r
	}
	return transform.NewReader(r, enc.NewDecoder())
}

// EncodeWriter wraps w so that UTF-8 text is written in the named code
// page.  For unknown code pages and for UTF-8 itself, w is returned
// unchanged.
func EncodeWriter(w io.Writer, codePage string) io.Writer {
	enc, ok := CodePage(codePage)
	if !ok {
		return w
	}
	return transform.NewWriter(w, enc.NewEncoder())
}
