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

// Package document reads and writes whole DXF drawing files: the HEADER
// section, the optional THUMBNAILIMAGE preview, and the ENTITIES and
// OBJECTS sections.  Individual entities are handled by the engine in
// the parent package.
package document

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"

	dxf "github.com/bert/libdxf-sub006"
	"github.com/bert/libdxf-sub006/entity"
)

// Document is the in-memory form of a DXF file.
type Document struct {
	// Version is the DXF version of the file, from $ACADVER.
	Version dxf.Version

	// CodePage is the text code page of the file, from $DWGCODEPAGE.
	// Empty means UTF-8 (the only encoding from R2007 on).
	CodePage string

	// InsBase, ExtMin and ExtMax are the base point and the drawing
	// extents from the header.
	InsBase dxf.Point
	ExtMin  dxf.Point
	ExtMax  dxf.Point

	// Thumbnail is the preview bitmap, if the file has one.
	Thumbnail image.Image

	// Entities holds the drawing entities in file order.  VERTEX and
	// ATTRIB chains are attached to their POLYLINE/INSERT owners and do
	// not appear here individually.
	Entities []dxf.Entity

	// Objects holds the non-graphical records of the OBJECTS section.
	Objects []dxf.Entity
}

// LoadOptions allows to influence the way a DXF file is read.
type LoadOptions struct {
	// Strict discards tags not allowed in the file's declared version.
	Strict bool

	// Diagnostics receives recoverable problems.  If nil, diagnostics
	// are dropped.
	Diagnostics dxf.DiagnosticHandler
}

// Open reads the named DXF file.
func Open(name string, opt *LoadOptions) (*Document, error) {
	fd, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer fd.Close()
	return load(fd, name, opt)
}

// Load reads a DXF file from r.
func Load(r io.Reader, opt *LoadOptions) (*Document, error) {
	return load(r, "", opt)
}

func load(r io.Reader, src string, opt *LoadOptions) (*Document, error) {
	if opt == nil {
		opt = &LoadOptions{}
	}

	// The code page of the file is only known once the header has been
	// read, so the input is scanned twice: once for the header, then in
	// full with the right decoder.
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	doc := &Document{}
	if err := doc.scanHeader(bytes.NewReader(data), src); err != nil {
		return nil, err
	}

	var body io.Reader = bytes.NewReader(data)
	if doc.Version < dxf.R2007 {
		body = dxf.DecodeReader(body, doc.CodePage)
	}
	rd := dxf.NewReader(body, src, &dxf.ReaderOptions{
		Version:     doc.Version,
		Strict:      opt.Strict,
		Diagnostics: opt.Diagnostics,
	})
	if err := doc.parse(rd); err != nil {
		return nil, err
	}
	return doc, nil
}

// scanHeader reads only the HEADER section, before any transcoding.
func (doc *Document) scanHeader(r io.Reader, src string) error {
	rd := dxf.NewReader(r, src, nil)
	for {
		tag, err := rd.ReadTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tag.Code != 0 {
			continue
		}
		switch tag.Text() {
		case "SECTION":
			name, err := sectionName(rd)
			if err != nil {
				return err
			}
			if name == "HEADER" {
				return doc.parseHeader(rd)
			}
		case "EOF":
			return nil
		}
	}
}

func sectionName(rd *dxf.Reader) (string, error) {
	tag, err := rd.ReadTag()
	if err != nil {
		return "", err
	}
	if tag.Code != 2 {
		rd.Unread(tag)
		return "", nil
	}
	return tag.Text(), nil
}

func (doc *Document) parse(rd *dxf.Reader) error {
	for {
		tag, err := rd.ReadTag()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if tag.Code != 0 {
			continue
		}
		switch tag.Text() {
		case "EOF":
			return nil
		case "SECTION":
			name, err := sectionName(rd)
			if err != nil {
				return err
			}
			switch name {
			case "HEADER":
				// already handled by scanHeader; values are
				// plain ASCII, re-reading them is harmless
				if err := doc.parseHeader(rd); err != nil {
					return err
				}
			case "ENTITIES":
				if err := doc.parseEntities(rd, &doc.Entities); err != nil {
					return err
				}
			case "OBJECTS":
				if err := doc.parseEntities(rd, &doc.Objects); err != nil {
					return err
				}
			case "THUMBNAILIMAGE":
				if err := doc.parseThumbnail(rd); err != nil {
					return err
				}
			default:
				if err := skipSection(rd); err != nil {
					return err
				}
			}
		}
	}
}

// parseHeader consumes header variables up to ENDSEC.  Unknown variables
// are skipped.
func (doc *Document) parseHeader(rd *dxf.Reader) error {
	current := ""
	for {
		tag, err := rd.ReadTag()
		if err != nil {
			return err
		}
		if tag.Code == 0 && tag.Text() == "ENDSEC" {
			return nil
		}
		if tag.Code == 9 {
			current = tag.Text()
			continue
		}
		switch current {
		case "$ACADVER":
			if tag.Code == 1 {
				v, err := dxf.ParseVersion(tag.Text())
				if err != nil {
					return fmt.Errorf("$ACADVER: %w", err)
				}
				doc.Version = v
			}
		case "$DWGCODEPAGE":
			if tag.Code == 3 {
				doc.CodePage = tag.Text()
			}
		case "$INSBASE":
			setHeaderCoord(&doc.InsBase, tag)
		case "$EXTMIN":
			setHeaderCoord(&doc.ExtMin, tag)
		case "$EXTMAX":
			setHeaderCoord(&doc.ExtMax, tag)
		}
	}
}

func setHeaderCoord(p *dxf.Point, tag dxf.Tag) {
	x, err := tag.Float()
	if err != nil {
		return
	}
	switch tag.Code {
	case 10:
		p.X = x
	case 20:
		p.Y = x
	case 30:
		p.Z = x
	}
}

func skipSection(rd *dxf.Reader) error {
	for {
		tag, err := rd.ReadTag()
		if err != nil {
			return err
		}
		if tag.Code == 0 && tag.Text() == "ENDSEC" {
			return nil
		}
	}
}

func (doc *Document) parseEntities(rd *dxf.Reader, dst *[]dxf.Entity) error {
	for {
		tag, err := rd.ReadTag()
		if err != nil {
			return err
		}
		if tag.Code == 0 && tag.Text() == "ENDSEC" {
			return nil
		}
		rd.Unread(tag)

		e, err := rd.ReadEntity()
		if errors.Is(err, dxf.ErrUnknownEntity) {
			continue
		}
		if err != nil {
			return err
		}

		switch e := e.(type) {
		case *entity.Polyline:
			if err := collectVertices(rd, e); err != nil {
				return err
			}
		case *entity.Insert:
			if e.AttribsFollow != 0 {
				if err := collectAttribs(rd, e); err != nil {
					return err
				}
			}
		}
		*dst = append(*dst, e)
	}
}

// collectVertices attaches the VERTEX chain following a POLYLINE,
// consuming the terminating SEQEND.
func collectVertices(rd *dxf.Reader, p *entity.Polyline) error {
	for {
		e, err := rd.ReadEntity()
		if err != nil {
			return err
		}
		switch e := e.(type) {
		case *entity.Vertex:
			p.Vertices = append(p.Vertices, e)
		case *entity.Seqend:
			return nil
		default:
			return fmt.Errorf("dxf: %s inside POLYLINE vertex chain",
				e.EntityType())
		}
	}
}

// collectAttribs attaches the ATTRIB chain following an INSERT,
// consuming the terminating SEQEND.
func collectAttribs(rd *dxf.Reader, ins *entity.Insert) error {
	for {
		e, err := rd.ReadEntity()
		if err != nil {
			return err
		}
		switch e := e.(type) {
		case *entity.Attrib:
			ins.Attribs = append(ins.Attribs, e)
		case *entity.Seqend:
			return nil
		default:
			return fmt.Errorf("dxf: %s inside INSERT attribute chain",
				e.EntityType())
		}
	}
}
