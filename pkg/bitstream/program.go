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
	"fmt"

	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/pnr"
)

// siteName derives the ConfigBitDatabase site identifier for a placed
// PnrCell. The string itself carries no format guarantee beyond
// uniqueness per site index — both family databases spread it across
// their frame address space with hash/fnv (spec §4.10 "ConfigBitDatabase
// ... device-specific").
func siteName(site uint) string {
	return fmt.Sprintf("site%d", site)
}

// ioDirection picks the governing PortDirection of an IOBUF cell from its
// connections: an Output-only IOBUF drives its pad, an Input-only one
// senses it, and anything mixed is InOut.
func ioDirection(cell ir.Cell) ir.PortDirection {
	var sawInput, sawOutput bool
	for _, conn := range cell.Connections {
		switch conn.Direction {
		case ir.Input:
			sawInput = true
		case ir.Output:
			sawOutput = true
		case ir.InOut:
			return ir.InOut
		}
	}
	switch {
	case sawInput && sawOutput:
		return ir.InOut
	case sawOutput:
		return ir.Output
	default:
		return ir.Input
	}
}

// Program walks a placed-and-routed PnR netlist and asks db for the
// physical configuration bits of every placed cell and every PIP any
// net's route tree uses, returning the resulting frame image (spec §4.10
// "Each generator consumes the PnR netlist plus a ConfigBitDatabase ...
// that maps logical cell configurations to physical bits"). Cells with no
// site assigned (placement failed or was never attempted) and nets with
// no route tree are skipped rather than treated as an error: a partial
// image from an incomplete build is still useful for inspection, and the
// pipeline's earlier stages are responsible for surfacing the diagnostic
// that explains why placement or routing did not complete.
func Program(module *ir.Module, nl *pnr.Netlist, interner *ident.Interner, db ConfigBitDatabase) *ConfigImage {
	img := NewConfigImage(db.FrameWordCount())

	nl.Cells.All(func(_ arena.Id, pc pnr.PnrCell) bool {
		if !pc.Placed() {
			return true
		}

		cell := module.Cell(pc.Source)
		site := siteName(pc.Site)

		switch pc.Kind {
		case ir.CellLut:
			init, _ := cell.Kind.Init.ToUint()
			img.Apply(db.LUTConfigBits(site, init, cell.Kind.Width))
		case ir.CellDff, ir.CellLatch:
			img.Apply(db.FFConfigBits(site))
		case ir.CellBram:
			img.Apply(db.BRAMConfigBits(site, cell.Kind.Width, cell.Kind.Depth))
		case ir.CellDsp:
			img.Apply(db.DSPConfigBits(site, cell.Kind.WidthA, cell.Kind.WidthB))
		case ir.CellIobuf:
			standard := interner.String(cell.Kind.IOStandard)
			img.Apply(db.IOBufConfigBits(site, ioDirection(cell), standard))
		}

		return true
	})

	nl.Nets.All(func(_ arena.Id, net pnr.PnrNet) bool {
		for _, pipName := range net.Route.PIPsUsed(nil) {
			img.Apply(db.PIPConfigBits(pipName))
		}
		return true
	})

	return img
}
