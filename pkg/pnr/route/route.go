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

// Package route implements spec §4.8: PathFinder negotiated-congestion
// routing with an A* inner search when a device's routing graph is
// loaded, degrading to a stub Direct route tree per net when it is not.
package route

import (
	"fmt"

	"github.com/aion-eda/aion/pkg/arch"
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/pnr"
)

// Options tunes the PathFinder loop; zero-value Options fills in the
// spec's stated defaults via WithDefaults.
type Options struct {
	MaxIterations int
	Capacity      int
	HistoryFactor float64
}

// WithDefaults fills unset fields with spec §4.8's stated defaults: 50
// outer iterations, capacity 1 per wire.
func (o Options) WithDefaults() Options {
	if o.MaxIterations == 0 {
		o.MaxIterations = 50
	}
	if o.Capacity == 0 {
		o.Capacity = 1
	}
	if o.HistoryFactor == 0 {
		o.HistoryFactor = 1
	}
	return o
}

// Result reports the outcome of one Route call.
type Result struct {
	// Converged is true if every net routed without any wire left over
	// capacity (spec §4.8 "If no wire is over capacity, terminate
	// successfully"), or if routing used the Direct fallback (there is
	// no congestion to converge on in that mode).
	Converged  bool
	Iterations int
	Stub       bool
}

// Route assigns nl.Nets[*].Route a RouteTree, negotiating congestion over
// graph's wires/PIPs when graph carries one, or building a stub Direct
// tree per net when it does not (spec §4.8 "If a device has no loaded
// routing graph, routing degrades to stub ... This is a deliberate
// fallback, not a placeholder").
func Route(nl *pnr.Netlist, graph arch.RoutingGraph, interner *ident.Interner, opts Options) Result {
	opts = opts.WithDefaults()

	if graph.Empty() {
		routeDirect(nl, interner)
		return Result{Converged: true, Stub: true}
	}

	g := buildWireGraph(graph)
	congestion := newCongestionMap(opts.Capacity)

	for iter := 0; iter < opts.MaxIterations; iter++ {
		congestion.resetPresentDemand()

		nl.Nets.All(func(id arena.Id, net pnr.PnrNet) bool {
			if !net.HasDriver || len(net.Sinks) == 0 {
				return true
			}
			tree := routeNet(nl, g, congestion, net, interner)
			net.Route = tree
			net.Critical = false
			nl.Nets.Set(id, net)
			return true
		})

		if !congestion.anyOverCapacity() {
			return Result{Converged: true, Iterations: iter + 1}
		}
		congestion.raiseHistory(opts.HistoryFactor)
	}

	return Result{Converged: false, Iterations: opts.MaxIterations}
}

// pinName derives the symbolic identifier used as a RouteTree site-pin
// node's name: "cell<id>.<port>", since this toolchain does not model a
// physical package-pin naming scheme of its own.
func pinName(pin pnr.PnrPin, interner *ident.Interner) string {
	return fmt.Sprintf("cell%d.%s", pin.Cell, interner.String(pin.Port))
}

// sourceWire resolves the wire a pin's (site, port) binds to, per the
// architecture's SitePinBinding table. A loaded routing graph names sites
// by their physical device identifier (e.g. "SLICE_X12Y4"), while
// pkg/pnr/place assigns the synthetic flat integer site-ids of spec §4.7;
// this toolchain does not maintain a mapping between the two (see
// DESIGN.md, "Routing scope"), so a binding only resolves when a device's
// SitePinBinding.Site happens to equal the decimal form of the placed
// site-id. Any pin that doesn't resolve falls back to a per-net Direct
// branch rather than failing the whole route.
func sourceWire(graph arch.RoutingGraph, site uint, port string) (string, bool) {
	siteName := fmt.Sprint(site)
	for _, b := range graph.SitePins {
		if b.Pin == port && b.Site == siteName {
			return b.Wire, true
		}
	}
	return "", false
}

func routeNet(nl *pnr.Netlist, g *wireGraph, congestion *congestionMap, net pnr.PnrNet, interner *ident.Interner) *pnr.RouteTree {
	driverPin := nl.Pins.Get(arena.Id(net.Driver))
	driverCell := nl.Cells.Get(arena.Id(driverPin.Cell))

	root := &pnr.RouteTree{Kind: pnr.ResourceSitePin, Name: pinName(driverPin, interner)}

	srcWire, ok := sourceWire(g.graph, driverCell.Site, interner.String(driverPin.Port))
	if !ok {
		// No physical binding for this pin: fall back to a Direct branch
		// for every sink of this one net rather than failing the whole
		// build over a single unbound pin.
		for _, sinkId := range net.Sinks {
			root.Children = append(root.Children, directBranch(nl, sinkId, interner))
		}
		return root
	}

	for _, sinkId := range net.Sinks {
		sinkPin := nl.Pins.Get(arena.Id(sinkId))
		sinkCell := nl.Cells.Get(arena.Id(sinkPin.Cell))
		dstWire, ok := sourceWire(g.graph, sinkCell.Site, interner.String(sinkPin.Port))
		if !ok {
			root.Children = append(root.Children, directBranch(nl, sinkId, interner))
			continue
		}

		path, found := aStar(g, congestion, srcWire, dstWire)
		if !found {
			root.Children = append(root.Children, directBranch(nl, sinkId, interner))
			continue
		}

		branch := buildBranch(path, pinName(sinkPin, interner))
		congestion.recordUsage(path)
		root.Children = append(root.Children, branch)
	}

	return root
}

// buildBranch turns an A*-found wire path into alternating Wire/PIP
// RouteTree nodes, terminated by the sink's site pin.
func buildBranch(path []pipEdge, sinkPinName string) *pnr.RouteTree {
	if len(path) == 0 {
		return &pnr.RouteTree{Kind: pnr.ResourceSitePin, Name: sinkPinName}
	}

	root := &pnr.RouteTree{Kind: pnr.ResourceWire, Name: path[0].src}
	cur := root
	for _, e := range path {
		pipNode := &pnr.RouteTree{Kind: pnr.ResourcePIP, Name: e.src + "->" + e.dst}
		wireNode := &pnr.RouteTree{Kind: pnr.ResourceWire, Name: e.dst}
		cur.Children = append(cur.Children, pipNode)
		pipNode.Children = append(pipNode.Children, wireNode)
		cur = wireNode
	}
	cur.Children = append(cur.Children, &pnr.RouteTree{Kind: pnr.ResourceSitePin, Name: sinkPinName})

	return root
}
