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

// Package cyclone implements an Intel Cyclone Architecture (spec §4.13
// EXPANDED): representative, not database-exact, resource totals so the
// pipeline runs end to end without a vendor database. Intel devices have
// no publicly documented open routing database comparable to Project
// X-Ray, so RoutingGraph always returns the empty value; pkg/pnr/route's
// Direct fallback of §4.8 is the only supported path for this family.
package cyclone

import (
	"github.com/aion-eda/aion/pkg/arch"
	"github.com/aion-eda/aion/pkg/synth"
)

// Device is one entry in the built-in Cyclone device table.
type Device struct {
	name      string
	resources arch.ResourceCounts
	lutInputs uint
	asyncRst  bool
}

// Known Cyclone devices, with representative (not database-exact)
// resource totals scaled from Intel's published datasheets.
var devices = map[string]Device{
	"10CL025": {
		name:      "10CL025",
		resources: arch.ResourceCounts{LUTs: 24624, FFs: 24624, BRAM: 66, DSP: 132, IO: 224, PLL: 4},
		lutInputs: 4,
		asyncRst:  false,
	},
	"10CL120": {
		name:      "10CL120",
		resources: arch.ResourceCounts{LUTs: 119088, FFs: 119088, BRAM: 432, DSP: 288, IO: 338, PLL: 4},
		lutInputs: 4,
		asyncRst:  false,
	},
	"5CEBA4": {
		name:      "5CEBA4",
		resources: arch.ResourceCounts{LUTs: 18480, FFs: 18480, BRAM: 66, DSP: 66, IO: 224, PLL: 4},
		lutInputs: 6,
		asyncRst:  false,
	},
}

// New looks up a Cyclone device by name, returning false if unrecognised
// (the caller should raise E211 "missing architecture" per spec §7).
func New(device string) (arch.Architecture, bool) {
	d, ok := devices[device]
	if !ok {
		return nil, false
	}
	return &architecture{device: d}, true
}

type architecture struct {
	device Device
}

func (a *architecture) FamilyName() string { return "cyclone" }
func (a *architecture) DeviceName() string { return a.device.name }

func (a *architecture) Resources() arch.ResourceCounts { return a.device.resources }
func (a *architecture) LUTInputCount() uint             { return a.device.lutInputs }

func (a *architecture) TechMapper() synth.TechMapper {
	return techMapper{asyncReset: a.device.asyncRst}
}

// RoutingGraph always returns the empty value: Cyclone has no open routing
// database this toolchain can load, so PnR always falls back to synthetic
// placement / Direct routing for this family (spec §4.6 "may be empty").
func (a *architecture) RoutingGraph() arch.RoutingGraph {
	return arch.RoutingGraph{}
}

// techMapper is Cyclone's synth.TechMapper: its ALM-based flip-flop has no
// dedicated async-reset pin, so sequential resets fold into the D-side
// combinational logic instead (spec §4.4, §4.6).
type techMapper struct{ asyncReset bool }

func (m techMapper) Name() string             { return "cyclone" }
func (m techMapper) SupportsAsyncReset() bool { return m.asyncReset }
