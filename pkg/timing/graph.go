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

// Package timing implements spec §4.9: timing graph construction over the
// placed/routed PnR netlist, SDC/XDC constraint parsing, and the
// as-late-as-possible worst-path slack algorithm.
//
// Scope note (see DESIGN.md, "Static timing analysis scope"): pkg/elaborate
// never decomposes combinational logic into gate-level ir.Cells (see
// DESIGN.md, "Synthesis" and "PnR netlist bridge scope"), so the PnR
// netlist this graph is built from only has placeable representatives for
// registers, latches and module instances. The timing graph therefore
// models net/route delay between those pins and the module's primary
// ports; it does not model the propagation delay of a combinational
// expression tree between two registers, since that tree was never
// materialised as gates with per-arc timing of their own.
package timing

import (
	"fmt"

	"github.com/aion-eda/aion/pkg/arch"
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/pnr"
)

// NodeKind classifies one timing-graph node (spec §4.9 "nodes ∈
// {PrimaryInput, PrimaryOutput, CellPin, Register}").
type NodeKind uint8

// Recognised node kinds.
const (
	PrimaryInput NodeKind = iota
	PrimaryOutput
	CellPin
	Register
)

// NodeId indexes Graph.Nodes.
type NodeId arena.Id

// Node is one timing-graph vertex: a primary port boundary, a resource
// cell's pin, or a register boundary (the Q pin arrival-resets each cycle,
// the D pin is the setup-check sink).
type Node struct {
	Kind NodeKind
	// Pin is valid for CellPin and Register nodes.
	Pin pnr.PnrPinId
	// Port names the module port for PrimaryInput/PrimaryOutput nodes.
	Port ident.ID
}

// EdgeType classifies one timing-graph edge (spec §4.9 "edges carry a
// Delay{min, typ, max} and type ∈ {NetDelay, CellDelay, SetupCheck,
// HoldCheck}").
type EdgeType uint8

// Recognised edge types.
const (
	NetDelay EdgeType = iota
	CellDelay
	SetupCheck
	HoldCheck
)

// Delay carries the three timing figures spec §4.6's PIPs and this
// package's edges both use, in nanoseconds.
type Delay struct {
	Min float64
	Typ float64
	Max float64
}

// Edge is one directed timing arc between two nodes.
type Edge struct {
	From, To NodeId
	Delay    Delay
	Type     EdgeType
}

// Graph is the timing graph bridged from one placed/routed PnR netlist.
type Graph struct {
	Nodes arena.Arena[Node]
	Edges []Edge

	// NodeByPortName resolves an SDC/XDC constraint's port-name target to
	// its timing-graph node; an Output/InOut port's node wins a name
	// collision with an Input/InOut port of the same name (SDC endpoint
	// targets are overwhelmingly output-side).
	NodeByPortName map[string]NodeId

	out map[NodeId][]int
	in  map[NodeId][]int
}

// Out returns the edge indices leaving id.
func (g *Graph) Out(id NodeId) []int { return g.out[id] }

// In returns the edge indices arriving at id.
func (g *Graph) In(id NodeId) []int { return g.in[id] }

func (g *Graph) addEdge(e Edge) {
	idx := len(g.Edges)
	g.Edges = append(g.Edges, e)
	g.out[e.From] = append(g.out[e.From], idx)
	g.in[e.To] = append(g.in[e.To], idx)
}

// Build bridges module's ports and nl's placed/routed cells/nets into a
// timing graph. graph supplies PIP delay figures for routed nets; an empty
// graph (no device routing data loaded, or stub routing — spec §4.8) makes
// every net-delay edge zero, per the "stub routing timing-meaningfulness"
// open question: arrival times over such a graph are only meaningful under
// the zero-net-delay assumption.
func Build(module *ir.Module, nl *pnr.Netlist, routing arch.RoutingGraph, interner *ident.Interner) *Graph {
	g := &Graph{
		NodeByPortName: make(map[string]NodeId),
		out:            make(map[NodeId][]int),
		in:             make(map[NodeId][]int),
	}

	pipDelay := make(map[string]float64, len(routing.PIPs))
	for _, p := range routing.PIPs {
		pipDelay[p.SrcWire+"->"+p.DstWire] = p.MaxDelay
	}

	nodeByPin := make(map[pnr.PnrPinId]NodeId)
	nl.Pins.All(func(id arena.Id, pin pnr.PnrPin) bool {
		cell := nl.Cells.Get(arena.Id(pin.Cell))
		kind := CellPin
		if cell.Kind == ir.CellDff || cell.Kind == ir.CellLatch {
			kind = Register
		}
		nodeId := NodeId(g.Nodes.Alloc(Node{Kind: kind, Pin: pnr.PnrPinId(id)}))
		nodeByPin[pnr.PnrPinId(id)] = nodeId
		return true
	})

	// Primary ports: an Input/InOut port is a synthetic driver for nets
	// with no internal PnrCell driver; an Output/InOut port is an extra
	// sink receiving every net's arrival (spec §4.9's forward pass starts
	// at PrimaryInputs, its required-time pass starts at PrimaryOutputs).
	inputNodeBySignal := make(map[ir.SignalId]NodeId)
	outputNodeBySignal := make(map[ir.SignalId]NodeId)
	for _, port := range module.Ports {
		name := interner.String(port.Name)
		if port.Direction == ir.Input || port.Direction == ir.InOut {
			id := NodeId(g.Nodes.Alloc(Node{Kind: PrimaryInput, Port: port.Name}))
			inputNodeBySignal[port.Signal] = id
			g.NodeByPortName[name] = id
		}
		if port.Direction == ir.Output || port.Direction == ir.InOut {
			id := NodeId(g.Nodes.Alloc(Node{Kind: PrimaryOutput, Port: port.Name}))
			outputNodeBySignal[port.Signal] = id
			g.NodeByPortName[name] = id
		}
	}

	nl.Nets.All(func(_ arena.Id, net pnr.PnrNet) bool {
		var source NodeId
		hasSource := false

		if net.HasDriver {
			source, hasSource = nodeByPin[net.Driver], true
		} else if id, ok := inputNodeBySignal[net.Signal]; ok {
			source, hasSource = id, true
		}
		if !hasSource {
			// Undriven net (already flagged W102 by pkg/lint elsewhere);
			// nothing to propagate arrival time from.
			return true
		}

		for _, sinkId := range net.Sinks {
			sinkNode := nodeByPin[sinkId]
			sinkPin := nl.Pins.Get(arena.Id(sinkId))
			delay := netDelay(net.Route, pinName(sinkPin, interner), pipDelay)
			g.addEdge(Edge{From: source, To: sinkNode, Delay: delay, Type: NetDelay})
		}
		if outId, ok := outputNodeBySignal[net.Signal]; ok {
			g.addEdge(Edge{From: source, To: outId, Delay: Delay{}, Type: NetDelay})
		}
		return true
	})

	return g
}

// pinName must match pkg/pnr/route's own pinName format, since it is the
// name used for a PnrPin's leaf node in a RouteTree.
func pinName(pin pnr.PnrPin, interner *ident.Interner) string {
	return fmt.Sprintf("cell%d.%s", pin.Cell, interner.String(pin.Port))
}

// netDelay sums the PIP delays traversed by the route-tree branch leading
// to the sink named sinkPin, or zero if route is nil (unrouted), the
// branch uses the Direct fallback, or no matching leaf is found.
func netDelay(route *pnr.RouteTree, sinkPin string, pipDelay map[string]float64) Delay {
	if route == nil {
		return Delay{}
	}
	max, ok := branchDelay(route, sinkPin, pipDelay)
	if !ok {
		return Delay{}
	}
	return Delay{Min: max, Typ: max, Max: max}
}

func branchDelay(t *pnr.RouteTree, target string, pipDelay map[string]float64) (float64, bool) {
	if t.Kind == pnr.ResourceSitePin && t.Name == target {
		return 0, true
	}
	for _, c := range t.Children {
		if d, ok := branchDelay(c, target, pipDelay); ok {
			own := 0.0
			if t.Kind == pnr.ResourcePIP {
				own = pipDelay[t.Name]
			}
			return own + d, true
		}
	}
	return 0, false
}
