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
package route_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/arch"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/pnr"
	"github.com/aion-eda/aion/pkg/pnr/route"
	"github.com/aion-eda/aion/pkg/synth"
)

func buildTwoCellNetlist(t *testing.T) (*pnr.Netlist, *ident.Interner) {
	t.Helper()
	interner := ident.New()
	design := ir.NewDesign(interner)
	bit1 := design.Types.Intern(ir.Type{Kind: ir.TypeBit, Width: 1})
	module := ir.NewModule(interner.Intern("top"))
	design.AllocModule(module)

	a := module.AllocSignal(ir.Signal{Name: interner.Intern("a"), Type: bit1, Kind: ir.Wire})
	module.AllocCell(ir.Cell{
		Instance: interner.Intern("u1"),
		Kind:     ir.CellKind{Tag: ir.CellLatch, Width: 1},
		Connections: []ir.Connection{
			{Port: interner.Intern("q"), Signal: ir.Sig(a), Direction: ir.Output},
		},
	})
	module.AllocCell(ir.Cell{
		Instance: interner.Intern("u2"),
		Kind:     ir.CellKind{Tag: ir.CellLatch, Width: 1},
		Connections: []ir.Connection{
			{Port: interner.Intern("d"), Signal: ir.Sig(a), Direction: ir.Input},
		},
	})

	live := synth.NewNetlist(module)
	return pnr.Build(module, live), interner
}

func TestRouteWithEmptyGraphUsesDirectStub(t *testing.T) {
	nl, interner := buildTwoCellNetlist(t)

	result := route.Route(nl, arch.RoutingGraph{}, interner, route.Options{})
	assert.True(t, result.Stub)
	assert.True(t, result.Converged)

	net := nl.Nets.Get(0)
	require.NotNil(t, net.Route)
	assert.Equal(t, pnr.ResourceSitePin, net.Route.Kind)
	require.Len(t, net.Route.Children, 1)
	assert.Equal(t, pnr.ResourceDirect, net.Route.Children[0].Kind)
}

func TestRouteWithGraphFallsBackPerNetWhenPinsUnbound(t *testing.T) {
	nl, interner := buildTwoCellNetlist(t)

	graph := arch.RoutingGraph{
		Wires: []arch.Wire{{Name: "W0"}, {Name: "W1"}},
		PIPs:  []arch.PIP{{SrcWire: "W0", DstWire: "W1", MaxDelay: 0.1}},
	}

	result := route.Route(nl, graph, interner, route.Options{})
	assert.True(t, result.Converged)

	net := nl.Nets.Get(0)
	require.NotNil(t, net.Route)
	require.Len(t, net.Route.Children, 1)
	assert.Equal(t, pnr.ResourceDirect, net.Route.Children[0].Kind)
}
