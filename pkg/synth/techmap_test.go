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
package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/synth"
)

// stubMapper is a minimal TechMapper used only to exercise MapModule,
// independent of any real device catalog.
type stubMapper struct{ asyncReset bool }

func (m stubMapper) Name() string             { return "stub" }
func (m stubMapper) SupportsAsyncReset() bool { return m.asyncReset }

func TestMapModuleLowersRegisterToDff(t *testing.T) {
	design, module, bit4 := newModule(t, "counter")
	clk := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("clk"), Type: bit4, Kind: ir.Port})
	count := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("count"), Type: bit4, Kind: ir.Reg})

	body := ir.Assign(ir.Sig(count), ir.SignalExpr(ir.Sig(count), bit4))
	module.AllocProcess(ir.Process{
		Kind:        ir.Sequential,
		Body:        body,
		Sensitivity: ir.Sensitivity{Kind: ir.SensitivityEdgeList, Edges: []ir.EdgeEntry{{Signal: clk, Edge: ir.Posedge}}},
	})

	nl := synth.NewNetlist(module)
	changed := synth.MapModule(design, module, nl, stubMapper{})
	assert.True(t, changed)

	assert.Equal(t, uint32(1), module.Cells.Len())
	cell := module.Cells.Get(0)
	assert.Equal(t, ir.CellDff, cell.Kind.Tag)

	q, ok := cell.Conn(design.Interner.Intern("q"))
	assert.True(t, ok)
	assert.Equal(t, count, q.Signal)

	// The process body no longer writes count directly; it now drives the
	// freshly allocated $d wire the Dff samples.
	writes := body.Target
	assert.NotEqual(t, count, writes.Signal)
}

func TestMapModuleSkipsCombinationalProcesses(t *testing.T) {
	design, module, bit4 := newModule(t, "passthrough")
	inSig := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("in"), Type: bit4, Kind: ir.Wire})
	outSig := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("out"), Type: bit4, Kind: ir.Wire})

	body := ir.Assign(ir.Sig(outSig), ir.SignalExpr(ir.Sig(inSig), bit4))
	module.AllocProcess(ir.Process{Kind: ir.Combinational, Body: body, Sensitivity: ir.Sensitivity{Kind: ir.SensitivityAll}})

	nl := synth.NewNetlist(module)
	changed := synth.MapModule(design, module, nl, stubMapper{})
	assert.False(t, changed)
	assert.Equal(t, uint32(0), module.Cells.Len())
}
