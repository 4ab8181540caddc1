// Copyright The Aion Authors
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package source

import "sort"

// Position is a 1-indexed (line, column) pair, suitable for direct display
// in a diagnostic.
type Position struct {
	Line uint32
	Col  uint32
}

// File holds the full text of one loaded source file together with
// precomputed line-start offsets, so that a byte offset can be resolved to
// a (line, col) position via binary search rather than a linear scan.
type File struct {
	name       string
	text       []byte
	lineStarts []uint32
}

// NewFile constructs a File and precomputes its line-start table.
func NewFile(name string, text []byte) *File {
	starts := []uint32{0}
	//
	for i, b := range text {
		if b == '\n' {
			starts = append(starts, uint32(i+1))
		}
	}
	//
	return &File{name: name, text: text, lineStarts: starts}
}

// Name returns the file's path as it was loaded.
func (f *File) Name() string {
	return f.name
}

// Text returns the raw file contents.
func (f *File) Text() []byte {
	return f.text
}

// Resolve converts a byte offset into a 1-indexed (line, col) position.
// Offsets beyond the end of the file resolve to the last position.
func (f *File) Resolve(offset uint32) Position {
	if offset > uint32(len(f.text)) {
		offset = uint32(len(f.text))
	}
	// Find the last line-start <= offset.
	i := sort.Search(len(f.lineStarts), func(i int) bool {
		return f.lineStarts[i] > offset
	})
	line := i // i is 1-indexed already, since lineStarts[0] == 0 is line 1
	if line < 1 {
		line = 1
	}
	//
	lineStart := f.lineStarts[line-1]
	//
	return Position{Line: uint32(line), Col: offset - lineStart + 1}
}

// Slice returns the raw bytes covered by a span into this file.
func (f *File) Slice(span Span) []byte {
	end := span.End
	if end > uint32(len(f.text)) {
		end = uint32(len(f.text))
	}
	//
	return f.text[span.Start:end]
}

// Database is the append-only set of loaded source files.  FileId values
// issued by Add are permanent for the lifetime of the Database; it is
// append-only during loading and read-only thereafter, matching the
// concurrency model of the rest of the compiler (§5: shared resources).
type Database struct {
	files []*File
}

// NewDatabase constructs an empty source database.
func NewDatabase() *Database {
	return &Database{}
}

// Add registers a new file and returns its permanent FileId.
func (d *Database) Add(name string, text []byte) FileId {
	id := FileId(len(d.files))
	d.files = append(d.files, NewFile(name, text))
	//
	return id
}

// Get returns the file registered under id, or nil if id is DummyFile or
// otherwise out of range.
func (d *Database) Get(id FileId) *File {
	if id == DummyFile || int(id) >= len(d.files) {
		return nil
	}
	//
	return d.files[id]
}

// Contains reports whether id refers to a file present in this database, or
// is the designated dummy span (invariant 7: "all spans resolve to files
// present in the source database, or are the dummy span").
func (d *Database) Contains(id FileId) bool {
	return id == DummyFile || int(id) < len(d.files)
}
