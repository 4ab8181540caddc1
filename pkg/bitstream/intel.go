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

// pofCFIBase is the fixed CFI flash base address every POF carries (spec
// §4.10 "CFI base 0x00020000").
const pofCFIBase uint32 = 0x00020000

// WriteRBF serializes img as a raw binary file: the concatenation of every
// touched frame's words in big-endian order, sorted by frame address, with
// no header, footer or CRC (spec §4.10 "RBF").
func WriteRBF(img *ConfigImage) []byte {
	var buf bytes.Buffer
	for _, f := range img.Finalize() {
		for _, w := range f.Words {
			writeU32(&buf, w)
		}
	}
	return buf.Bytes()
}

// WriteSOF serializes img as an SRAM Object File: magic, version, the
// device and design names, frame/frame-word counts, every frame, and a
// trailing CRC-16 over everything preceding it (spec §4.10 "SOF").
func WriteSOF(img *ConfigImage, deviceName, designName string) []byte {
	frames := img.Finalize()

	var buf bytes.Buffer
	buf.WriteString("AION_SOF")
	buf.WriteByte(1)
	writeName(&buf, deviceName)
	writeName(&buf, designName)
	writeU32(&buf, uint32(len(frames)))
	writeU32(&buf, img.FrameWordCount())
	writeFrames(&buf, frames)

	writeU16(&buf, CRC16(buf.Bytes()))
	return buf.Bytes()
}

// WritePOF serializes img as a Programmer Object File: magic, version, the
// device name, the fixed CFI base address, the configuration data's length,
// frame/frame-word counts, the configuration data itself, and a trailing
// CRC-16 over everything preceding it (spec §4.10 "POF").
func WritePOF(img *ConfigImage, deviceName string) []byte {
	frames := img.Finalize()

	var data bytes.Buffer
	writeFrames(&data, frames)

	var buf bytes.Buffer
	buf.WriteString("AION_POF")
	buf.WriteByte(1)
	writeName(&buf, deviceName)
	writeU32(&buf, pofCFIBase)
	writeU32(&buf, uint32(data.Len()))
	writeU32(&buf, uint32(len(frames)))
	writeU32(&buf, img.FrameWordCount())
	buf.Write(data.Bytes())

	writeU16(&buf, CRC16(buf.Bytes()))
	return buf.Bytes()
}
