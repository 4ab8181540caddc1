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

// Package xc7 implements a Xilinx 7-series Architecture (spec §4.13
// EXPANDED): representative resource totals by default, with an optional
// Project X-Ray database loaded from AION_XRAY_DB / the project's
// xray_db_path setting supplying a real RoutingGraph when present (spec
// §4.6 "may be empty for families without a loaded database").
package xc7

import (
	"os"
	"path/filepath"

	"github.com/segmentio/encoding/json"

	"github.com/aion-eda/aion/pkg/aerr"
	"github.com/aion-eda/aion/pkg/arch"
	"github.com/aion-eda/aion/pkg/synth"
)

// XRayDBEnv is the environment variable consulted when no explicit
// database path is supplied to New.
const XRayDBEnv = "AION_XRAY_DB"

// Device is one entry in the built-in 7-series device table.
type Device struct {
	name      string
	resources arch.ResourceCounts
}

// Known 7-series devices, with representative (not database-exact)
// resource totals scaled from Xilinx's published data sheets.
var devices = map[string]Device{
	"xc7a35t": {
		name:      "xc7a35t",
		resources: arch.ResourceCounts{LUTs: 20800, FFs: 41600, BRAM: 50, DSP: 90, IO: 210, PLL: 5},
	},
	"xc7a100t": {
		name:      "xc7a100t",
		resources: arch.ResourceCounts{LUTs: 63400, FFs: 126800, BRAM: 135, DSP: 240, IO: 300, PLL: 6},
	},
	"xc7k325t": {
		name:      "xc7k325t",
		resources: arch.ResourceCounts{LUTs: 203800, FFs: 407600, BRAM: 445, DSP: 840, IO: 500, PLL: 10},
	},
}

// lutInputCount is the 7-series LUT6's input arity, constant across the
// family (every 7-series device uses the same 6-LUT fabric primitive).
const lutInputCount = 6

// New looks up a 7-series device by name. dbPath, if non-empty, overrides
// AION_XRAY_DB as the Project X-Ray database directory to load a
// RoutingGraph from; when both are empty the returned Architecture has an
// empty RoutingGraph and PnR uses the synthetic/Direct fallback of §4.8.
func New(device, dbPath string) (arch.Architecture, bool) {
	d, ok := devices[device]
	if !ok {
		return nil, false
	}

	if dbPath == "" {
		dbPath = os.Getenv(XRayDBEnv)
	}

	a := &architecture{device: d}
	if dbPath != "" {
		graph, err := loadRoutingGraph(dbPath, device)
		if err == nil {
			a.routing = graph
		}
		// A database path that fails to load is not a build error (spec
		// §4.6 "may be empty"): the family still works via the fallback,
		// it simply loses real delay figures.
	}

	return a, true
}

type architecture struct {
	device  Device
	routing arch.RoutingGraph
}

func (a *architecture) FamilyName() string { return "xc7" }
func (a *architecture) DeviceName() string { return a.device.name }

func (a *architecture) Resources() arch.ResourceCounts { return a.device.resources }
func (a *architecture) LUTInputCount() uint             { return lutInputCount }

func (a *architecture) TechMapper() synth.TechMapper {
	return techMapper{}
}

func (a *architecture) RoutingGraph() arch.RoutingGraph {
	return a.routing
}

// techMapper is xc7's synth.TechMapper: the 7-series SLICE flip-flop has a
// dedicated set/reset pin independent of the D input, so sequential resets
// map onto a cell-level reset connection rather than folding into the
// D-side logic (spec §4.4, §4.6).
type techMapper struct{}

func (m techMapper) Name() string             { return "xc7" }
func (m techMapper) SupportsAsyncReset() bool { return true }

// xrayTile is the subset of a Project X-Ray tile_type.json entry this
// loader understands: named wires and the fixed-delay PIPs between them.
// A real X-Ray database nests far more (pin-function maps, site types,
// package pinouts); anything this struct doesn't name is ignored rather
// than rejected, so a genuine database directory loads the delay-relevant
// slice without this package needing to model the whole schema.
type xrayTile struct {
	Wires []string `json:"wires"`
	PIPs  []struct {
		SrcWire  string  `json:"src_wire"`
		DstWire  string  `json:"dst_wire"`
		MinDelay float64 `json:"min_delay_ns"`
		TypDelay float64 `json:"typ_delay_ns"`
		MaxDelay float64 `json:"max_delay_ns"`
	} `json:"pips"`
}

// loadRoutingGraph reads "<dbPath>/<device>/tile_type.json" and converts
// it into a RoutingGraph. Missing or malformed files are returned as an
// internal error (aerr) rather than a diagnostic; New discards that error
// and keeps the empty RoutingGraph, so a broken database path never fails
// the build.
func loadRoutingGraph(dbPath, device string) (arch.RoutingGraph, error) {
	path := filepath.Join(dbPath, device, "tile_type.json")

	data, err := os.ReadFile(path)
	if err != nil {
		return arch.RoutingGraph{}, aerr.Wrap(err, "xc7: reading X-Ray database %q", path)
	}

	var tile xrayTile
	if err := json.Unmarshal(data, &tile); err != nil {
		return arch.RoutingGraph{}, aerr.Wrap(err, "xc7: parsing X-Ray database %q", path)
	}

	graph := arch.RoutingGraph{}
	for _, w := range tile.Wires {
		graph.Wires = append(graph.Wires, arch.Wire{Name: w})
	}
	for _, p := range tile.PIPs {
		graph.PIPs = append(graph.PIPs, arch.PIP{
			SrcWire:  p.SrcWire,
			DstWire:  p.DstWire,
			MinDelay: p.MinDelay,
			TypDelay: p.TypDelay,
			MaxDelay: p.MaxDelay,
		})
	}

	return graph, nil
}
