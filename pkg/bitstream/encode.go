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

import (
	"bytes"
	"encoding/binary"
)

// writeName appends a big-endian u16 length prefix followed by name's
// bytes, the length-prefixed string layout every vendor writer in this
// package uses for device/design names.
func writeName(buf *bytes.Buffer, name string) {
	raw := []byte(name)
	binary.Write(buf, binary.BigEndian, uint16(len(raw))) //nolint:errcheck
	buf.Write(raw)
}

func writeU32(buf *bytes.Buffer, v uint32) {
	binary.Write(buf, binary.BigEndian, v) //nolint:errcheck
}

func writeU16(buf *bytes.Buffer, v uint16) {
	binary.Write(buf, binary.BigEndian, v) //nolint:errcheck
}

// writeFrames appends every frame's address followed by its words, each as
// a big-endian u32, the per-frame layout the Intel and Xilinx writers both
// share (spec §4.10 "per-frame (address u32 BE + words u32 BE)").
func writeFrames(buf *bytes.Buffer, frames []Frame) {
	for _, f := range frames {
		writeU32(buf, f.Address)
		for _, w := range f.Words {
			writeU32(buf, w)
		}
	}
}
