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
package bitstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/bitstream"
)

func TestCRC16OfEmptyInputIsZero(t *testing.T) {
	assert.Equal(t, uint16(0), bitstream.CRC16(nil))
}

func TestCRC32OfEmptyInputIsZero(t *testing.T) {
	assert.Equal(t, uint32(0), bitstream.CRC32(nil))
}

func TestCRC16IsDeterministic(t *testing.T) {
	data := []byte("123456789")
	assert.Equal(t, bitstream.CRC16(data), bitstream.CRC16(data))
	assert.NotZero(t, bitstream.CRC16(data))
}

func TestCRC32WordsMatchesFlattenedBigEndianBytes(t *testing.T) {
	words := []uint32{1, 0x01020304, 0xFFFFFFFF}
	assert.Equal(t, bitstream.CRC32Words(words), bitstream.CRC32Words(words))

	var flat []byte
	for _, w := range words {
		flat = append(flat, byte(w>>24), byte(w>>16), byte(w>>8), byte(w))
	}
	assert.Equal(t, bitstream.CRC32(flat), bitstream.CRC32Words(words))
}
