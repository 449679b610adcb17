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
	"bytes"
	"encoding/binary"
	"encoding/hex"
	"errors"
	"fmt"
	"image"
	"strings"

	"golang.org/x/image/bmp"

	dxf "github.com/bert/libdxf-sub006"
)

// The THUMBNAILIMAGE section stores the preview as a Windows DIB: the
// BITMAPINFO header and pixel data, without the 14-byte BITMAPFILEHEADER
// a .bmp file starts with.  The file header is added before decoding and
// stripped again after encoding.

const bmpFileHeaderSize = 14

// parseThumbnail consumes a THUMBNAILIMAGE section up to ENDSEC.
func (doc *Document) parseThumbnail(rd *dxf.Reader) error {
	var chunks []string
	for {
		tag, err := rd.ReadTag()
		if err != nil {
			return err
		}
		if tag.Code == 0 && tag.Text() == "ENDSEC" {
			break
		}
		if tag.Code == 310 {
			chunks = append(chunks, tag.Text())
		}
		// group 90 (the byte count) is implied by the chunks
	}
	if len(chunks) == 0 {
		return nil
	}

	dib, err := hex.DecodeString(strings.Join(chunks, ""))
	if err != nil {
		return fmt.Errorf("thumbnail: %w", err)
	}
	img, err := decodeDIB(dib)
	if err != nil {
		return fmt.Errorf("thumbnail: %w", err)
	}
	doc.Thumbnail = img
	return nil
}

func writeThumbnail(tw *dxf.Writer, img image.Image) error {
	buf := &bytes.Buffer{}
	if err := bmp.Encode(buf, img); err != nil {
		return err
	}
	dib := buf.Bytes()[bmpFileHeaderSize:]

	tw.WriteTag(0, "SECTION")
	tw.WriteTag(2, "THUMBNAILIMAGE")
	tw.WriteTag(90, fmt.Sprintf("%d", len(dib)))
	enc := strings.ToUpper(hex.EncodeToString(dib))
	for len(enc) > 0 {
		n := min(len(enc), 128)
		if err := tw.WriteTag(310, enc[:n]); err != nil {
			return err
		}
		enc = enc[n:]
	}
	return tw.WriteTag(0, "ENDSEC")
}

// decodeDIB reconstructs the BITMAPFILEHEADER and decodes the result as
// a .bmp image.
func decodeDIB(dib []byte) (image.Image, error) {
	if len(dib) < 40 {
		return nil, errors.New("DIB header too short")
	}
	infoSize := binary.LittleEndian.Uint32(dib[0:4])
	bitCount := binary.LittleEndian.Uint16(dib[14:16])
	clrUsed := binary.LittleEndian.Uint32(dib[32:36])

	paletteSize := uint32(0)
	if bitCount <= 8 {
		if clrUsed != 0 {
			paletteSize = 4 * clrUsed
		} else {
			paletteSize = 4 * (1 << bitCount)
		}
	}
	offset := bmpFileHeaderSize + infoSize + paletteSize

	buf := make([]byte, 0, bmpFileHeaderSize+len(dib))
	buf = append(buf, 'B', 'M')
	buf = binary.LittleEndian.AppendUint32(buf, uint32(bmpFileHeaderSize+len(dib)))
	buf = binary.LittleEndian.AppendUint32(buf, 0) // reserved
	buf = binary.LittleEndian.AppendUint32(buf, offset)
	buf = append(buf, dib...)

	return bmp.Decode(bytes.NewReader(buf))
}
