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

// Package bitstream implements spec §4.10: the ConfigBitDatabase trait (the
// second of the toolchain's two dynamically-dispatched interfaces, alongside
// pkg/arch.Architecture), the ConfigImage bit accumulator, and the Intel and
// Xilinx vendor file writers built over it.
package bitstream

import "sort"

// ConfigBit is one physical configuration-bit location/value pair a
// ConfigBitDatabase method produces (spec §4.10 "list of
// ConfigBit{frame, bit-offset, value}").
type ConfigBit struct {
	Frame     uint32
	BitOffset uint32
	Value     bool
}

// Frame is one frame-address row of a finalized ConfigImage: a dense,
// frame-word-count-sized array of 32-bit words.
type Frame struct {
	Address uint32
	Words   []uint32
}

// ConfigImage accumulates ConfigBits into a frame-address -> word-array
// mapping (spec §4.10 "A ConfigImage accumulates bits into a mapping
// (frame-address -> dense word array of frame-word-count 32-bit words)").
// Only frames that received at least one SetBit call appear in Finalize's
// output; an all-zero frame that was never touched is not materialised.
type ConfigImage struct {
	frameWordCount uint32
	frames         map[uint32][]uint32
}

// NewConfigImage creates an empty image whose frames each hold
// frameWordCount 32-bit words.
func NewConfigImage(frameWordCount uint32) *ConfigImage {
	return &ConfigImage{frameWordCount: frameWordCount, frames: make(map[uint32][]uint32)}
}

// FrameWordCount returns the word width of every frame in this image.
func (img *ConfigImage) FrameWordCount() uint32 { return img.frameWordCount }

// SetBit writes one bit into frame at bitOffset (LSB-first within each
// 32-bit word: bitOffset 0 is the least-significant bit of word 0,
// bitOffset 32 the least-significant bit of word 1, and so on).
func (img *ConfigImage) SetBit(frame, bitOffset uint32, value bool) {
	words := img.frames[frame]
	if words == nil {
		words = make([]uint32, img.frameWordCount)
		img.frames[frame] = words
	}
	wordIdx, bitIdx := bitOffset/32, bitOffset%32
	if value {
		words[wordIdx] |= 1 << bitIdx
	} else {
		words[wordIdx] &^= 1 << bitIdx
	}
}

// Apply writes every bit of bits into the image via SetBit, the usual way a
// ConfigBitDatabase method's output is folded into a build's image.
func (img *ConfigImage) Apply(bits []ConfigBit) {
	for _, b := range bits {
		img.SetBit(b.Frame, b.BitOffset, b.Value)
	}
}

// Finalize returns every touched frame sorted by ascending address (spec
// §4.10 "finalize() returns the frames sorted by ascending frame address").
func (img *ConfigImage) Finalize() []Frame {
	frames := make([]Frame, 0, len(img.frames))
	for addr, words := range img.frames {
		frames = append(frames, Frame{Address: addr, Words: words})
	}
	sort.Slice(frames, func(i, j int) bool { return frames[i].Address < frames[j].Address })
	return frames
}
