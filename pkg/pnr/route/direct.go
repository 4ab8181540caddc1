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
package route

import (
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/pnr"
)

// routeDirect assigns every net a single-node-per-sink Direct route tree,
// skipping congestion tracking entirely (spec §4.8 "routing degrades to
// stub: each net is assigned a single-node Direct route tree; congestion
// tracking is skipped").
func routeDirect(nl *pnr.Netlist, interner *ident.Interner) {
	nl.Nets.All(func(id arena.Id, net pnr.PnrNet) bool {
		if !net.HasDriver {
			return true
		}

		driverPin := nl.Pins.Get(arena.Id(net.Driver))
		root := &pnr.RouteTree{Kind: pnr.ResourceSitePin, Name: pinName(driverPin, interner)}
		for _, sinkId := range net.Sinks {
			root.Children = append(root.Children, directBranch(nl, sinkId, interner))
		}

		net.Route = root
		nl.Nets.Set(id, net)
		return true
	})
}

// directBranch builds the Direct node for one sink pin.
func directBranch(nl *pnr.Netlist, sinkId pnr.PnrPinId, interner *ident.Interner) *pnr.RouteTree {
	sinkPin := nl.Pins.Get(arena.Id(sinkId))
	return &pnr.RouteTree{
		Kind: pnr.ResourceDirect,
		Name: "direct",
		Children: []*pnr.RouteTree{
			{Kind: pnr.ResourceSitePin, Name: pinName(sinkPin, interner)},
		},
	}
}
