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

// Dxf-inspect summarizes DXF files: version, code page, and entity
// counts per kind.  Files are processed concurrently.
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"
	"golang.org/x/term"

	dxf "github.com/bert/libdxf-sub006"
	"github.com/bert/libdxf-sub006/document"
)

func main() {
	strict := flag.Bool("strict", false, "apply strict version rules")
	quiet := flag.Bool("q", false, "suppress diagnostics")
	flag.Parse()
	if flag.NArg() == 0 {
		fmt.Fprintln(os.Stderr, "usage: dxf-inspect [-strict] [-q] file.dxf ...")
		os.Exit(1)
	}

	width := 80
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}

	var mu sync.Mutex // serializes report output

	g := &errgroup.Group{}
	g.SetLimit(runtime.NumCPU())
	for _, name := range flag.Args() {
		g.Go(func() error {
			var diags []dxf.Diagnostic
			opt := &document.LoadOptions{
				Strict: *strict,
				Diagnostics: func(d dxf.Diagnostic) {
					diags = append(diags, d)
				},
			}
			doc, err := document.Open(name, opt)
			if err != nil {
				return fmt.Errorf("%s: %w", name, err)
			}

			mu.Lock()
			defer mu.Unlock()
			report(name, doc, diags, width, *quiet)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func report(name string, doc *document.Document, diags []dxf.Diagnostic, width int, quiet bool) {
	cp := doc.CodePage
	if cp == "" {
		cp = "UTF-8"
	}
	fmt.Printf("%s: %s, %s, %d entities, %d objects\n",
		name, doc.Version, cp, len(doc.Entities), len(doc.Objects))

	counts := make(map[string]int)
	for _, e := range doc.Entities {
		counts[e.EntityType()]++
	}
	kinds := make([]string, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Strings(kinds)

	line := "   "
	for _, k := range kinds {
		item := fmt.Sprintf(" %s=%d", k, counts[k])
		if len(line)+len(item) > width {
			fmt.Println(line)
			line = "   "
		}
		line += item
	}
	if strings.TrimSpace(line) != "" {
		fmt.Println(line)
	}

	if quiet {
		return
	}
	for _, d := range diags {
		fmt.Fprintln(os.Stderr, d)
	}
}
