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

import "github.com/aion-eda/aion/pkg/ir"

// ConfigBitDatabase maps a device's logical cell configurations onto
// physical configuration bits (spec §4.10 "Each generator consumes the PnR
// netlist plus a ConfigBitDatabase (device-specific) that maps logical cell
// configurations to physical bits"). Exactly one other interface in this
// toolchain is dispatched dynamically rather than matched on a tagged union
// — pkg/arch.Architecture — and this is the other (spec §9 "Dynamic
// dispatch via narrow traits"); a build instantiates exactly one
// ConfigBitDatabase, supplied by the Architecture's device family, and
// passes it by reference through bitstream emission only.
type ConfigBitDatabase interface {
	// LUTConfigBits returns the configuration bits encoding a LUT's
	// truth-table init vector at site: one bit per entry of an
	// inputCount-input LUT, 2^inputCount bits in all.
	LUTConfigBits(site string, initVector uint64, inputCount uint) []ConfigBit
	// FFConfigBits returns the configuration bits for a flip-flop's
	// fixed (non-LUT-programmable) control bits at site.
	FFConfigBits(site string) []ConfigBit
	// IOBufConfigBits returns the configuration bits selecting an I/O
	// buffer's direction and electrical standard at site.
	IOBufConfigBits(site string, direction ir.PortDirection, standard string) []ConfigBit
	// PIPConfigBits returns the configuration bits that enable one
	// programmable interconnect point, named as src->dst (the same
	// naming pkg/pnr/route's RouteTree PIP nodes use).
	PIPConfigBits(pip string) []ConfigBit
	// BRAMConfigBits returns the configuration bits for a block-RAM
	// site's width/depth mode selection.
	BRAMConfigBits(site string, width, depth uint) []ConfigBit
	// DSPConfigBits returns the configuration bits for a DSP site's
	// operand-width mode selection.
	DSPConfigBits(site string, widthA, widthB uint) []ConfigBit
	// FrameWordCount is the word width of every frame this database
	// addresses, the value a ConfigImage built against this database
	// must be constructed with.
	FrameWordCount() uint32
	// TotalFrameCount is the device's total frame count.
	TotalFrameCount() uint32
}
