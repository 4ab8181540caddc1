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

// Package pnr implements the flat place-and-route netlist of spec §4.5:
// a representation disjoint from the IR, built once by walking the
// post-tech-map module and consumed by pkg/pnr/place and pkg/pnr/route.
//
// Scope note (see DESIGN.md, "PnR netlist bridge scope"): pkg/elaborate
// never decomposes combinational logic into gate-level ir.Cells (only
// module instantiations and, after pkg/synth.MapModule, registers/latches
// become Cells — see DESIGN.md, "Tech-mapping scope"). The bridge therefore
// allocates one PnrCell per live ir.Cell — instances, Dffs, Latches, and
// any device-specific resource primitive a TechMapper produces — and one
// PnrNet per distinct ir.SignalId those cells' connections mention.
// Combinational logic living in plain Assignments/Combinational processes
// has no placeable representative of its own in this netlist; it
// contributes no nets beyond the signals its neighbouring resource cells
// already reference.
package pnr

import (
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/synth"
)

type (
	// PnrCellId indexes Netlist.Cells.
	PnrCellId arena.Id
	// PnrNetId indexes Netlist.Nets.
	PnrNetId arena.Id
	// PnrPinId indexes Netlist.Pins.
	PnrPinId arena.Id
)

// UnplacedSite marks a PnrCell with no site assignment yet.
const UnplacedSite = ^uint(0)

// PnrCell is one placeable primitive (spec §4.5 "PnrCell (type, optional
// site placement, fixed-flag)").
type PnrCell struct {
	// Source identifies the ir.Cell this was bridged from; the bitstream
	// stage reads the cell's kind parameters (LUT init, widths, I/O
	// standard) through it.
	Source ir.CellId
	Kind   ir.CellKindTag
	Site   uint
	Fixed  bool
	Pins   []PnrPinId
}

// Placed reports whether this cell has been assigned a site.
func (c PnrCell) Placed() bool { return c.Site != UnplacedSite }

// PnrPin is one port instance of one PnrCell (spec §4.5 "PnrPin
// (direction, owning cell, optional net)").
type PnrPin struct {
	Cell      PnrCellId
	Port      ident.ID
	Direction ir.ConnDirection
	Net       PnrNetId
}

const noNet PnrNetId = PnrNetId(arena.Invalid)

// HasNet reports whether this pin is actually connected.
func (p PnrPin) HasNet() bool { return p.Net != noNet }

// PnrNet is one IR signal's worth of connectivity (spec §4.5 "PnrNet
// (driver pin, sink pins, optional route tree, timing-critical flag)").
type PnrNet struct {
	Signal    ir.SignalId
	Driver    PnrPinId
	HasDriver bool
	Sinks     []PnrPinId
	Route     *RouteTree
	Critical  bool
}

// Netlist is the flat PnR-stage netlist bridged from one elaborated,
// synthesised ir.Module.
type Netlist struct {
	Cells arena.Arena[PnrCell]
	Nets  arena.Arena[PnrNet]
	Pins  arena.Arena[PnrPin]

	netBySignal map[ir.SignalId]PnrNetId
}

// Build walks module's live cells (per synth's liveness flags) and
// constructs the flat PnR netlist: one PnrCell per live ir.Cell, one
// PnrPin per cell connection, and one PnrNet per distinct signal those
// connections reference.
func Build(module *ir.Module, live *synth.Netlist) *Netlist {
	nl := &Netlist{netBySignal: make(map[ir.SignalId]PnrNetId)}

	module.Cells.All(func(id arena.Id, c ir.Cell) bool {
		if !live.IsCellLive(ir.CellId(id)) {
			return true
		}

		cellId := PnrCellId(nl.Cells.Alloc(PnrCell{
			Source: ir.CellId(id),
			Kind:   c.Kind.Tag,
			Site:   UnplacedSite,
		}))

		var pins []PnrPinId
		for _, conn := range c.Connections {
			pinId := PnrPinId(nl.Pins.Alloc(PnrPin{Cell: cellId, Port: conn.Port, Direction: conn.Direction, Net: noNet}))
			pins = append(pins, pinId)

			for _, sig := range conn.Signal.Signals(nil) {
				netId := nl.netFor(sig)
				net := nl.Nets.Get(arena.Id(netId))
				pin := nl.Pins.Get(arena.Id(pinId))
				pin.Net = netId
				nl.Pins.Set(arena.Id(pinId), pin)

				switch conn.Direction {
				case ir.Output, ir.InOut:
					if !net.HasDriver {
						net.Driver = pinId
						net.HasDriver = true
					} else {
						net.Sinks = append(net.Sinks, pinId)
					}
				default:
					net.Sinks = append(net.Sinks, pinId)
				}
				nl.Nets.Set(arena.Id(netId), net)
			}
		}

		cell := nl.Cells.Get(arena.Id(cellId))
		cell.Pins = pins
		nl.Cells.Set(arena.Id(cellId), cell)

		return true
	})

	return nl
}

func (nl *Netlist) netFor(sig ir.SignalId) PnrNetId {
	if id, ok := nl.netBySignal[sig]; ok {
		return id
	}
	id := PnrNetId(nl.Nets.Alloc(PnrNet{Signal: sig, Driver: PnrPinId(arena.Invalid)}))
	nl.netBySignal[sig] = id
	return id
}
