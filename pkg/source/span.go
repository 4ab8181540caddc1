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

// Package source implements the source database: loaded file text, a
// byte-offset Span type, and offset-to-(line,col) resolution shared by
// every stage that needs to attach a diagnostic to a location.
package source

// FileId is a permanent handle into a Database, issued in load order.
type FileId uint32

// DummyFile is the FileId used by Dummy spans; it never resolves to a real
// loaded file.
const DummyFile FileId = ^FileId(0)

// Span is a byte-offset range `[Start,End)` within one source file.  Spans
// are plain values so they can be embedded in IR entities, hashed, and
// compared for equality without reference to the underlying text.
type Span struct {
	File  FileId
	Start uint32
	End   uint32
}

// Dummy is the designated span used to mark synthetic origin: entities
// introduced by elaboration or optimisation (e.g. a constant folded cell)
// rather than read from source text.
var Dummy = Span{File: DummyFile, Start: 0, End: 0}

// IsDummy reports whether this span marks synthetic origin.
func (s Span) IsDummy() bool {
	return s.File == DummyFile
}

// Merge returns the smallest span covering both s and other.  Both must
// refer to the same file; merging across files panics, since that would
// indicate a programmer error upstream (e.g. carelessly combining spans
// from two different elaboration units).
func (s Span) Merge(other Span) Span {
	if s.IsDummy() {
		return other
	} else if other.IsDummy() {
		return s
	} else if s.File != other.File {
		panic("source: cannot merge spans from different files")
	}
	//
	start, end := s.Start, s.End
	//
	if other.Start < start {
		start = other.Start
	}
	//
	if other.End > end {
		end = other.End
	}
	//
	return Span{s.File, start, end}
}

// Len returns the number of bytes covered by this span.
func (s Span) Len() uint32 {
	return s.End - s.Start
}
