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
package source_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/source"
)

func TestFileResolveFindsLineAndColumn(t *testing.T) {
	f := source.NewFile("top.v", []byte("module top;\nwire clk;\nendmodule\n"))

	pos := f.Resolve(12)
	assert.Equal(t, source.Position{Line: 2, Col: 1}, pos)

	pos = f.Resolve(17)
	assert.Equal(t, source.Position{Line: 2, Col: 6}, pos)
}

func TestFileSliceReturnsSpanBytesAndClampsAtEOF(t *testing.T) {
	f := source.NewFile("top.v", []byte("wire clk;"))

	assert.Equal(t, []byte("wire"), f.Slice(source.Span{Start: 0, End: 4}))
	assert.Equal(t, []byte("clk;"), f.Slice(source.Span{Start: 5, End: 100}))
}

func TestDatabaseAddAndGetRoundTrip(t *testing.T) {
	db := source.NewDatabase()
	id := db.Add("top.v", []byte("module top; endmodule"))

	f := db.Get(id)
	assert.NotNil(t, f)
	assert.Equal(t, "top.v", f.Name())
	assert.True(t, db.Contains(id))
}

func TestDatabaseGetReturnsNilForDummyOrOutOfRange(t *testing.T) {
	db := source.NewDatabase()

	assert.Nil(t, db.Get(source.DummyFile))
	assert.Nil(t, db.Get(source.FileId(42)))
	assert.True(t, db.Contains(source.DummyFile))
	assert.False(t, db.Contains(source.FileId(42)))
}

func TestSpanIsDummyAndLen(t *testing.T) {
	assert.True(t, source.Dummy.IsDummy())

	s := source.Span{File: 0, Start: 10, End: 25}
	assert.False(t, s.IsDummy())
	assert.EqualValues(t, 15, s.Len())
}

func TestSpanMergeCombinesRangesAndHandlesDummy(t *testing.T) {
	a := source.Span{File: 1, Start: 10, End: 20}
	b := source.Span{File: 1, Start: 15, End: 30}

	merged := a.Merge(b)
	assert.Equal(t, source.Span{File: 1, Start: 10, End: 30}, merged)

	assert.Equal(t, b, source.Dummy.Merge(b))
	assert.Equal(t, a, a.Merge(source.Dummy))
}

func TestSpanMergeAcrossFilesPanics(t *testing.T) {
	a := source.Span{File: 1, Start: 0, End: 5}
	b := source.Span{File: 2, Start: 0, End: 5}

	assert.Panics(t, func() { a.Merge(b) })
}
