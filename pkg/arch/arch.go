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

// Package arch defines the device family abstraction of spec §4.6: the one
// of two object-safe interfaces (alongside pkg/bitstream.ConfigBitDatabase)
// the rest of the toolchain dispatches through dynamically rather than by
// tagged union, since "device family" is an open set a concrete build of
// this toolchain cannot enumerate in advance.
package arch

import "github.com/aion-eda/aion/pkg/synth"

// ResourceCounts totals the placeable sites of a device, in the order
// pkg/pnr/place carves site-id ranges from them (spec §4.7 "Site-id ranges
// are carved from the architecture's resource counts: LUTs occupy
// [0, total_luts), FFs the next total_ffs, and so on for BRAM, DSP, IO,
// PLL").
type ResourceCounts struct {
	LUTs uint
	FFs  uint
	BRAM uint
	DSP  uint
	IO   uint
	PLL  uint
}

// Total returns the sum of every resource count, the size of the flat
// site-id space pkg/pnr/place allocates over.
func (r ResourceCounts) Total() uint {
	return r.LUTs + r.FFs + r.BRAM + r.DSP + r.IO + r.PLL
}

// Wire is one named node in a routing graph.
type Wire struct {
	Name string
}

// PIP is a programmable interconnect point: a directed edge between two
// wires with the three delay figures static timing analysis needs (spec
// §4.6 "PIPs (src-wire, dst-wire, min/typ/max delay)").
type PIP struct {
	SrcWire  string
	DstWire  string
	MinDelay float64
	TypDelay float64
	MaxDelay float64
}

// SitePinBinding binds one pin of one placement site to a routing-graph
// wire, the join point between pkg/pnr/place's site assignment and
// pkg/pnr/route's wire graph.
type SitePinBinding struct {
	Site string
	Pin  string
	Wire string
}

// RoutingGraph is the device's physical interconnect fabric (spec §4.6
// "routing-graph() returning a structure of wires, PIPs ..., and
// site-pin → wire bindings"). A zero-value RoutingGraph (no wires, no
// PIPs) is a legal return from Architecture.RoutingGraph for a family
// without a loaded database; pkg/pnr/route then falls back to the
// synthetic Direct router of §4.8.
type RoutingGraph struct {
	Wires    []Wire
	PIPs     []PIP
	SitePins []SitePinBinding
}

// Empty reports whether the graph carries no physical detail at all, the
// condition under which pkg/pnr/route must use its Direct fallback.
func (g RoutingGraph) Empty() bool {
	return len(g.Wires) == 0 && len(g.PIPs) == 0
}

// Architecture is the device-family trait of spec §4.6: everything the
// rest of the pipeline needs to know about a target device without caring
// which vendor it comes from. Exactly two interfaces in this toolchain are
// dispatched dynamically rather than matched on a tagged union — this is
// one of them (spec §9 "Dynamic dispatch via narrow traits"); a build
// instantiates exactly one Architecture and passes it by reference through
// synthesis, placement, routing, timing and bitstream emission.
type Architecture interface {
	// FamilyName identifies the vendor architecture family, e.g. "cyclone"
	// or "xc7".
	FamilyName() string
	// DeviceName identifies the specific part within the family, e.g.
	// "10CL025" or "xc7a35t".
	DeviceName() string
	// Resources reports the device's placeable site totals.
	Resources() ResourceCounts
	// LUTInputCount is the input arity of the device's native LUT
	// primitive (4, 5, 6, ...). No pipeline stage reads it: tech-mapping
	// lowers only registers and latches (DESIGN.md, "Tech-mapping scope").
	LUTInputCount() uint
	// TechMapper returns the device-specific mapper synthesis dispatches
	// live cells through (spec §4.4, §4.6 "tech-mapper() → TechMapper").
	TechMapper() synth.TechMapper
	// RoutingGraph returns the device's physical interconnect, or a zero
	// value if none is loaded (spec §4.6 "may be empty for families
	// without a loaded database").
	RoutingGraph() RoutingGraph
}
