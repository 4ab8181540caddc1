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
package timing_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/arch"
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/pnr"
	"github.com/aion-eda/aion/pkg/synth"
	"github.com/aion-eda/aion/pkg/timing"
)

// buildHandoffModule builds in -> (Dff) -> out: a module with one input
// port driving a register whose Q drives an output port directly.
func buildHandoffModule(t *testing.T) (*ir.Module, *pnr.Netlist, *ident.Interner) {
	t.Helper()
	interner := ident.New()
	design := ir.NewDesign(interner)
	bit1 := design.Types.Intern(ir.Type{Kind: ir.TypeBit, Width: 1})
	module := ir.NewModule(interner.Intern("top"))
	design.AllocModule(module)

	inSig := module.AllocSignal(ir.Signal{Name: interner.Intern("d"), Type: bit1, Kind: ir.Port})
	qSig := module.AllocSignal(ir.Signal{Name: interner.Intern("q"), Type: bit1, Kind: ir.Port})

	module.Ports = []ir.PortDecl{
		{Name: interner.Intern("d"), Direction: ir.Input, Type: bit1, Signal: inSig},
		{Name: interner.Intern("q"), Direction: ir.Output, Type: bit1, Signal: qSig},
	}

	module.AllocCell(ir.Cell{
		Instance: interner.Intern("reg0"),
		Kind:     ir.CellKind{Tag: ir.CellDff, Width: 1},
		Connections: []ir.Connection{
			{Port: interner.Intern("d"), Signal: ir.Sig(inSig), Direction: ir.Input},
			{Port: interner.Intern("q"), Signal: ir.Sig(qSig), Direction: ir.Output},
		},
	})

	live := synth.NewNetlist(module)
	return module, pnr.Build(module, live), interner
}

func TestBuildConnectsPrimaryPortsToRegister(t *testing.T) {
	module, nl, interner := buildHandoffModule(t)

	g := timing.Build(module, nl, arch.RoutingGraph{}, interner)
	require.NotZero(t, g.Nodes.Len())
	assert.Contains(t, g.NodeByPortName, "d")
	assert.Contains(t, g.NodeByPortName, "q")

	assert.NotEmpty(t, g.Edges)
}

func TestAnalyzeReportsMetTimingWithGenerousPeriod(t *testing.T) {
	module, nl, interner := buildHandoffModule(t)
	g := timing.Build(module, nl, arch.RoutingGraph{}, interner)

	applied := timing.ResolveConstraints(g, timing.Constraints{
		Clocks: []timing.Clock{{Name: "clk", Period: 1000}},
	})

	report := timing.Analyze(g, applied, 5)
	assert.True(t, report.Met)
	assert.GreaterOrEqual(t, report.WorstSlack, 0.0)
}

func TestAnalyzeExemptsFalsePathEndpoint(t *testing.T) {
	module, nl, interner := buildHandoffModule(t)
	g := timing.Build(module, nl, arch.RoutingGraph{}, interner)

	applied := timing.ResolveConstraints(g, timing.Constraints{
		Clocks:     []timing.Clock{{Name: "clk", Period: 1000}},
		Exceptions: []timing.PathException{{Kind: timing.FalsePath, To: "q"}},
	})

	report := timing.Analyze(g, applied, 5)
	for _, p := range report.Paths {
		for _, el := range p.Elements {
			node := g.Nodes.Get(arena.Id(el.Node))
			if node.Kind == timing.PrimaryOutput {
				t.Fatalf("exempted output port %q should not appear in a reported path", "q")
			}
		}
	}
}

func TestParseSDCRecognisesDirectivesAndWarnsOnUnknown(t *testing.T) {
	sink := diag.NewSink()
	text := "create_clock -name clk -period 10.0 [get_ports clk]\n" +
		"set_input_delay -clock clk 1.5 [get_ports d]\n" +
		"set_output_delay -clock clk 1.5 [get_ports q]\n" +
		"set_false_path -from [get_ports a] -to [get_ports b]\n" +
		"set_multicycle_path 2 -from [get_ports a] -to [get_ports b]\n" +
		"set_max_delay 3.0 -from [get_ports a] -to [get_ports b]\n" +
		"frobnicate_timing_thing foo\n"

	c := timing.ParseSDC(text, sink)

	require.Len(t, c.Clocks, 1)
	assert.Equal(t, "clk", c.Clocks[0].Port)
	assert.Equal(t, 10.0, c.Clocks[0].Period)
	require.Len(t, c.InputDelays, 1)
	require.Len(t, c.OutputDelays, 1)
	require.Len(t, c.Exceptions, 3)

	diags := sink.Snapshot()
	require.Len(t, diags, 1)
	assert.Equal(t, timing.T010UnknownConstraint, diags[0].Code)
}
