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
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/bitstream"
)

func TestWriteRBFSingleBitRoundtrip(t *testing.T) {
	img := bitstream.NewConfigImage(4)
	img.SetBit(0, 0, true)

	rbf := bitstream.WriteRBF(img)
	require.Len(t, rbf, 16)
	assert.Equal(t, uint32(1), binary.BigEndian.Uint32(rbf[0:4]))
}

func TestWriteSOFHasMagicVersionAndCRCFooter(t *testing.T) {
	img := bitstream.NewConfigImage(2)
	img.SetBit(0, 0, true)

	sof := bitstream.WriteSOF(img, "10CL025", "top")
	require.True(t, len(sof) > len("AION_SOF")+1)
	assert.Equal(t, "AION_SOF", string(sof[:8]))
	assert.Equal(t, byte(1), sof[8])

	body, footer := sof[:len(sof)-2], sof[len(sof)-2:]
	assert.Equal(t, bitstream.CRC16(body), binary.BigEndian.Uint16(footer))
}

func TestWritePOFHasCFIBaseAndCRCFooter(t *testing.T) {
	img := bitstream.NewConfigImage(2)
	img.SetBit(0, 0, true)

	pof := bitstream.WritePOF(img, "10CL025")
	require.True(t, len(pof) > 8)
	assert.Equal(t, "AION_POF", string(pof[:8]))

	// magic(8) + version(1) + name length-prefix(2) + "10CL025"(7) = 18
	cfiBaseOffset := 18
	assert.Equal(t, uint32(0x00020000), binary.BigEndian.Uint32(pof[cfiBaseOffset:cfiBaseOffset+4]))

	body, footer := pof[:len(pof)-2], pof[len(pof)-2:]
	assert.Equal(t, bitstream.CRC16(body), binary.BigEndian.Uint16(footer))
}
