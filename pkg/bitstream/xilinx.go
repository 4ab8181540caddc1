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
package bitstream

import "bytes"

// bitTag identifies one TLV field of a Xilinx BIT file, following the
// vendor format's own lettered field tags.
type bitTag byte

// Recognised BIT tags: design name, part name, and the configuration data
// block.
const (
	tagDesignName bitTag = 'a'
	tagPartName   bitTag = 'b'
	tagData       bitTag = 'e'
)

func writeShortTLV(buf *bytes.Buffer, tag bitTag, value []byte) {
	buf.WriteByte(byte(tag))
	writeU16(buf, uint16(len(value)))
	buf.Write(value)
}

// WriteBIT serializes img as a Xilinx BIT file: a TLV-style header (design
// name, part name) followed by the frame data under the 'e' tag (each
// frame's address and words, big-endian u32), concluded with a trailing
// CRC-32 over everything preceding it. No configuration command sequence
// is written; the 'e' block holds the frame data only.
func WriteBIT(img *ConfigImage, deviceName, designName string) []byte {
	var cmds bytes.Buffer
	writeFrames(&cmds, img.Finalize())

	var buf bytes.Buffer
	writeShortTLV(&buf, tagDesignName, []byte(designName+"\x00"))
	writeShortTLV(&buf, tagPartName, []byte(deviceName+"\x00"))

	buf.WriteByte(byte(tagData))
	writeU32(&buf, uint32(cmds.Len()))
	buf.Write(cmds.Bytes())

	writeU32(&buf, CRC32(buf.Bytes()))
	return buf.Bytes()
}
