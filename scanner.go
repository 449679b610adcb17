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
	"errors"
	"io"
	"strconv"
	"strings"
)

// Scanner reads group code/value pairs from a DXF stream.  Every tag is
// two physical lines: the group code line, then the value line.  The
// scanner owns the stream cursor and the line counter; no other component
// advances either.
//
// The end of an entity is signalled only by a tag with group code 0,
// which simultaneously opens the next entity.  Callers use [Scanner.Unread]
// to hand such a tag back for the next entity's assembly.
type Scanner struct {
	r    *bufio.Reader
	src  string
	line int

	unread    Tag
	hasUnread bool
}

// NewScanner creates a Scanner reading from r.  The source name src is
// used in errors and diagnostics and may be empty.
func NewScanner(r io.Reader, src string) *Scanner {
	return &Scanner{
		r:   bufio.NewReader(r),
		src: src,
	}
}

// Src returns the source name given to NewScanner.
func (s *Scanner) Src() string {
	return s.src
}

// Line returns the number of the last physical line consumed.
func (s *Scanner) Line() int {
	return s.line
}

// ReadTag returns the next tag from the stream.
//
// At a clean end of input, ReadTag returns io.EOF.  If the input ends
// after a group code line, the returned error wraps [ErrTruncated].
// I/O errors from the underlying stream are returned as-is.
func (s *Scanner) ReadTag() (Tag, error) {
	if s.hasUnread {
		s.hasUnread = false
		return s.unread, nil
	}

	var codeStr string
	for {
		line, err := s.readLine()
		if err != nil {
			if err == io.EOF && line == "" {
				return Tag{}, io.EOF
			}
			if err == io.EOF {
				// a group code with no value line
				return Tag{}, s.truncated()
			}
			return Tag{}, err
		}
		codeStr = strings.TrimSpace(line)
		if codeStr != "" {
			break
		}
		// blank lines between tags are tolerated
	}

	code, err := strconv.Atoi(codeStr)
	if err != nil {
		return Tag{}, &MalformedEntityError{
			Src:  s.src,
			Line: s.line,
			Err:  errors.New("invalid group code " + strconv.Quote(codeStr)),
		}
	}

	value, err := s.readLine()
	if err != nil {
		if err == io.EOF && value == "" {
			return Tag{}, s.truncated()
		}
		if err != io.EOF {
			return Tag{}, err
		}
		// final value line without a trailing newline
	}

	return Tag{Code: code, Value: strings.TrimRight(value, "\r\n")}, nil
}

// Unread hands tag back to the scanner.  The next call to ReadTag returns
// it again.  At most one tag can be pending.
func (s *Scanner) Unread(tag Tag) {
	if s.hasUnread {
		panic("dxf: Unread called twice")
	}
	s.unread = tag
	s.hasUnread = true
}

func (s *Scanner) readLine() (string, error) {
	line, err := s.r.ReadString('\n')
	if line != "" {
		s.line++
	}
	if err != nil && err != io.EOF {
		return line, err
	}
	if err == io.EOF && line != "" {
		return line, io.EOF
	}
	return line, err
}

func (s *Scanner) truncated() error {
	return &MalformedEntityError{
		Src:  s.src,
		Line: s.line,
		Err:  ErrTruncated,
	}
}
