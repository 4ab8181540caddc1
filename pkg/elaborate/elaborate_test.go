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
package elaborate_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/elaborate"
	"github.com/aion-eda/aion/pkg/frontend"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/source"
)

func TestElaborateResolvesTopModulePortsAndSignals(t *testing.T) {
	bundle := frontend.Bundle{
		Modules: []frontend.ModuleDecl{
			{
				Name: "top",
				Ports: []frontend.PortDecl{
					{Name: "clk", Direction: ir.Input},
					{Name: "q", Direction: ir.Output},
				},
				Signals: []frontend.SignalDecl{
					{Name: "sum", Kind: ir.Wire},
				},
			},
		},
	}

	interner := ident.New()
	sink := diag.NewSink()
	design := elaborate.Elaborate(bundle, elaborate.Config{Top: "top"}, interner, sink)

	require.False(t, sink.HasErrors())
	require.True(t, design.Top.Valid())

	top := design.TopModule()
	require.NotNil(t, top)
	assert.Len(t, top.Ports, 2)

	_, ok := top.FindSignal(interner.Intern("sum"))
	assert.True(t, ok)
}

func TestElaborateReportsDuplicateModule(t *testing.T) {
	bundle := frontend.Bundle{
		Modules: []frontend.ModuleDecl{
			{Name: "top", Span: source.Span{Start: 0, End: 1}},
			{Name: "top", Span: source.Span{Start: 2, End: 3}},
		},
	}

	sink := diag.NewSink()
	elaborate.Elaborate(bundle, elaborate.Config{Top: "top"}, ident.New(), sink)

	diags := sink.Snapshot()
	require.NotEmpty(t, diags)
	assert.Equal(t, diag.E202DuplicateModule, diags[0].Code)
}

func TestElaborateReportsMissingTopButStillElaboratesRest(t *testing.T) {
	bundle := frontend.Bundle{
		Modules: []frontend.ModuleDecl{
			{Name: "other"},
		},
	}

	sink := diag.NewSink()
	design := elaborate.Elaborate(bundle, elaborate.Config{Top: "missing"}, ident.New(), sink)

	diags := sink.Snapshot()
	require.NotEmpty(t, diags)
	assert.Equal(t, diag.E206TopMissing, diags[0].Code)
	assert.Equal(t, ir.InvalidModule, design.Top)
	assert.EqualValues(t, 1, design.ModuleCount())
}

func TestElaborateDetectsCircularInstantiation(t *testing.T) {
	bundle := frontend.Bundle{
		Modules: []frontend.ModuleDecl{
			{
				Name: "a",
				Instances: []frontend.InstanceDecl{
					{ModuleName: "b", InstanceName: "u_b"},
				},
			},
			{
				Name: "b",
				Instances: []frontend.InstanceDecl{
					{ModuleName: "a", InstanceName: "u_a"},
				},
			},
		},
	}

	sink := diag.NewSink()
	elaborate.Elaborate(bundle, elaborate.Config{Top: "a"}, ident.New(), sink)

	found := false
	for _, d := range sink.Snapshot() {
		if d.Code == diag.E207CircularInstantiate {
			found = true
		}
	}
	assert.True(t, found)
}

func TestElaborateInstanceFlagsUnknownAndUnconnectedPorts(t *testing.T) {
	bundle := frontend.Bundle{
		Modules: []frontend.ModuleDecl{
			{
				Name: "leaf",
				Ports: []frontend.PortDecl{
					{Name: "x", Direction: ir.Input},
				},
			},
			{
				Name: "top",
				Instances: []frontend.InstanceDecl{
					{
						ModuleName:   "leaf",
						InstanceName: "u_leaf",
						Connections: []frontend.ConnDecl{
							{Port: "y", Signal: frontend.LValue{Kind: frontend.LValueIdent, Name: "missing"}},
						},
					},
				},
			},
		},
	}

	sink := diag.NewSink()
	design := elaborate.Elaborate(bundle, elaborate.Config{Top: "top"}, ident.New(), sink)

	var codes []diag.Code
	for _, d := range sink.Snapshot() {
		codes = append(codes, d.Code)
	}
	assert.Contains(t, codes, diag.E208UnknownPort)
	assert.Contains(t, codes, diag.W201UnconnectedPort)

	top := design.TopModule()
	assert.EqualValues(t, 1, top.Cells.Len())
}
