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

// Package cyclone implements bitstream.ConfigBitDatabase for Intel Cyclone
// devices (spec §4.10, §4.13 EXPANDED): a representative, not
// database-exact, frame/bit layout, paralleling pkg/arch/cyclone's
// representative (not database-exact) resource totals. Intel's
// configuration-bit mapping is not publicly documented the way Project
// X-Ray documents Xilinx 7-series, so there is no real database this
// package could load even optionally.
package cyclone

import (
	"hash/fnv"

	"github.com/aion-eda/aion/pkg/bitstream"
	"github.com/aion-eda/aion/pkg/ir"
)

const (
	frameWordCount  uint32 = 32
	totalFrameCount uint32 = 2048
)

// Database is Cyclone's bitstream.ConfigBitDatabase.
type Database struct{}

// New returns a Cyclone ConfigBitDatabase.
func New() bitstream.ConfigBitDatabase { return Database{} }

func (Database) FrameWordCount() uint32  { return frameWordCount }
func (Database) TotalFrameCount() uint32 { return totalFrameCount }

// siteFrame spreads a site identifier across the frame address space
// deterministically. Sites are placement-stage synthetic integer strings
// (DESIGN.md, "Routing scope"), not real Cyclone tile coordinates, so a
// hash-based spread is as representative as any other assignment.
func siteFrame(site string) uint32 {
	h := fnv.New32a()
	h.Write([]byte(site)) //nolint:errcheck
	return h.Sum32() % totalFrameCount
}

// LUTConfigBits lays out initVector's low inputCount-wide truth table
// starting at bit offset 0 of site's frame.
func (Database) LUTConfigBits(site string, initVector uint64, inputCount uint) []bitstream.ConfigBit {
	frame := siteFrame(site)
	n := uint(1) << inputCount
	bits := make([]bitstream.ConfigBit, n)
	for i := uint(0); i < n; i++ {
		bits[i] = bitstream.ConfigBit{Frame: frame, BitOffset: uint32(i), Value: initVector&(1<<i) != 0}
	}
	return bits
}

// ffControlBitOffset is the representative bit offset of a Cyclone ALM
// register's control bit, beyond any LUT truth table this site also holds.
const ffControlBitOffset = 64

func (Database) FFConfigBits(site string) []bitstream.ConfigBit {
	return []bitstream.ConfigBit{{Frame: siteFrame(site), BitOffset: ffControlBitOffset, Value: true}}
}

const (
	iobufDirectionBitOffset = 96
	iobufStandardBitOffset  = 97
)

func (Database) IOBufConfigBits(site string, direction ir.PortDirection, standard string) []bitstream.ConfigBit {
	frame := siteFrame(site)
	std := fnv.New32a()
	std.Write([]byte(standard)) //nolint:errcheck
	return []bitstream.ConfigBit{
		{Frame: frame, BitOffset: iobufDirectionBitOffset, Value: direction == ir.Output || direction == ir.InOut},
		{Frame: frame, BitOffset: iobufStandardBitOffset, Value: std.Sum32()&1 != 0},
	}
}

func (Database) PIPConfigBits(pip string) []bitstream.ConfigBit {
	frame := siteFrame(pip)
	return []bitstream.ConfigBit{{Frame: frame, BitOffset: 0, Value: true}}
}

const (
	bramWidthBitBase = 128
	bramDepthBitBase = 160
)

func (Database) BRAMConfigBits(site string, width, depth uint) []bitstream.ConfigBit {
	frame := siteFrame(site)
	var bits []bitstream.ConfigBit
	for i := uint(0); i < 8; i++ {
		bits = append(bits, bitstream.ConfigBit{Frame: frame, BitOffset: uint32(bramWidthBitBase + i), Value: width&(1<<i) != 0})
	}
	for i := uint(0); i < 16; i++ {
		bits = append(bits, bitstream.ConfigBit{Frame: frame, BitOffset: uint32(bramDepthBitBase + i), Value: depth&(1<<i) != 0})
	}
	return bits
}

const (
	dspWidthABitBase = 192
	dspWidthBBitBase = 208
)

func (Database) DSPConfigBits(site string, widthA, widthB uint) []bitstream.ConfigBit {
	frame := siteFrame(site)
	var bits []bitstream.ConfigBit
	for i := uint(0); i < 8; i++ {
		bits = append(bits, bitstream.ConfigBit{Frame: frame, BitOffset: uint32(dspWidthABitBase + i), Value: widthA&(1<<i) != 0})
	}
	for i := uint(0); i < 8; i++ {
		bits = append(bits, bitstream.ConfigBit{Frame: frame, BitOffset: uint32(dspWidthBBitBase + i), Value: widthB&(1<<i) != 0})
	}
	return bits
}
