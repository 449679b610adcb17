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

package document

import (
	"fmt"
	"io"
	"os"

	dxf "github.com/bert/libdxf-sub006"
	"github.com/bert/libdxf-sub006/entity"
)

// SaveOptions allows to influence the way a DXF file is written.
type SaveOptions struct {
	// Strict makes the writer reject entities that use features from a
	// version newer than the document's, instead of suppressing them.
	Strict bool
}

// Create writes the document to the named file.
func Create(name string, doc *Document, opt *SaveOptions) error {
	fd, err := os.Create(name)
	if err != nil {
		return err
	}
	if err := Save(fd, doc, opt); err != nil {
		fd.Close()
		return err
	}
	return fd.Close()
}

// Save writes the document as a DXF file.  The target version is
// doc.Version; for versions before R2007 the output is transcoded to
// doc.CodePage.
func Save(w io.Writer, doc *Document, opt *SaveOptions) error {
	if opt == nil {
		opt = &SaveOptions{}
	}
	ver := doc.Version
	if ver == 0 {
		ver = dxf.R2018
	}
	verString, err := ver.ToString()
	if err != nil {
		return err
	}

	out := w
	if ver < dxf.R2007 && doc.CodePage != "" {
		out = dxf.EncodeWriter(w, doc.CodePage)
	}
	tw := dxf.NewWriter(out, ver)
	tw.Strict = opt.Strict

	// HEADER
	tw.WriteTag(0, "SECTION")
	tw.WriteTag(2, "HEADER")
	tw.WriteTag(9, "$ACADVER")
	tw.WriteTag(1, verString)
	if doc.CodePage != "" && ver < dxf.R2007 {
		tw.WriteTag(9, "$DWGCODEPAGE")
		tw.WriteTag(3, doc.CodePage)
	}
	writeHeaderPoint(tw, "$INSBASE", doc.InsBase)
	writeHeaderPoint(tw, "$EXTMIN", doc.ExtMin)
	writeHeaderPoint(tw, "$EXTMAX", doc.ExtMax)
	tw.WriteTag(0, "ENDSEC")

	if doc.Thumbnail != nil && ver >= dxf.R2000 {
		if err := writeThumbnail(tw, doc.Thumbnail); err != nil {
			return err
		}
	}

	tw.WriteTag(0, "SECTION")
	tw.WriteTag(2, "ENTITIES")
	for _, e := range doc.Entities {
		if err := writeEntity(tw, e); err != nil {
			return err
		}
	}
	tw.WriteTag(0, "ENDSEC")

	if len(doc.Objects) > 0 && ver >= dxf.R13 {
		tw.WriteTag(0, "SECTION")
		tw.WriteTag(2, "OBJECTS")
		for _, e := range doc.Objects {
			if err := tw.WriteEntity(e); err != nil {
				return err
			}
		}
		tw.WriteTag(0, "ENDSEC")
	}

	if err := tw.WriteTag(0, "EOF"); err != nil {
		return err
	}
	if err := tw.Flush(); err != nil {
		return err
	}
	if c, ok := out.(io.Closer); ok && out != w {
		// the transcoder may hold back an incomplete rune
		return c.Close()
	}
	return nil
}

// writeEntity emits e together with any chained VERTEX or ATTRIB
// entities and their SEQEND terminator.
func writeEntity(tw *dxf.Writer, e dxf.Entity) error {
	switch e := e.(type) {
	case *entity.Polyline:
		if len(e.Vertices) > 0 {
			e.VerticesFollow = 1
		}
		if err := tw.WriteEntity(e); err != nil {
			return err
		}
		for _, v := range e.Vertices {
			v.Layer = orLayer(v.Layer, e.Layer)
			if err := tw.WriteEntity(v); err != nil {
				return err
			}
		}
		return tw.WriteEntity(&entity.Seqend{
			Common: entity.Common{Layer: e.Layer},
		})
	case *entity.Insert:
		if len(e.Attribs) > 0 {
			e.AttribsFollow = 1
		}
		if err := tw.WriteEntity(e); err != nil {
			return err
		}
		if len(e.Attribs) == 0 {
			return nil
		}
		for _, a := range e.Attribs {
			if err := tw.WriteEntity(a); err != nil {
				return err
			}
		}
		return tw.WriteEntity(&entity.Seqend{
			Common: entity.Common{Layer: e.Layer},
		})
	default:
		return tw.WriteEntity(e)
	}
}

func orLayer(layer, fallback string) string {
	if layer == "" {
		return fallback
	}
	return layer
}

func writeHeaderPoint(tw *dxf.Writer, name string, p dxf.Point) {
	tw.WriteTag(9, name)
	tw.WriteTag(10, fmt.Sprintf("%f", p.X))
	tw.WriteTag(20, fmt.Sprintf("%f", p.Y))
	tw.WriteTag(30, fmt.Sprintf("%f", p.Z))
}
