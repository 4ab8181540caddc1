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
package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/lint"
	"github.com/aion-eda/aion/pkg/logic"
)

// buildCounter assembles a small module by hand: a clocked register `count`
// driven from a process, plus one dangling wire `spare` nothing reads, to
// exercise unused-signal and undriven-signal without going through a full
// frontend/elaborate pass.
func buildCounter(t *testing.T) (*ir.Design, *ir.Module) {
	t.Helper()
	//
	interner := ident.New()
	design := ir.NewDesign(interner)
	bit1 := design.Types.Intern(ir.BitVecType(1, false))
	//
	module := ir.NewModule(interner.Intern("counter"))
	clk := module.AllocSignal(ir.Signal{Name: interner.Intern("clk"), Type: bit1, Kind: ir.Port})
	count := module.AllocSignal(ir.Signal{Name: interner.Intern("count"), Type: bit1, Kind: ir.Reg})
	spare := module.AllocSignal(ir.Signal{Name: interner.Intern("spare"), Type: bit1, Kind: ir.Wire})
	_ = spare
	//
	module.Ports = append(module.Ports, ir.PortDecl{Name: interner.Intern("clk"), Direction: ir.Input, Type: bit1, Signal: clk})
	//
	body := ir.Assign(ir.Sig(count), ir.UnaryExpr(ir.UnaryNot, ir.SignalExpr(ir.Sig(count), bit1), bit1))
	module.AllocProcess(ir.Process{
		Kind:        ir.Sequential,
		Body:        body,
		Sensitivity: ir.Sensitivity{Kind: ir.SensitivityEdgeList, Edges: []ir.EdgeEntry{{Signal: clk, Edge: ir.Posedge}}},
	})
	//
	id := design.AllocModule(module)
	design.Top = id
	//
	return design, module
}

func TestUnusedSignal(t *testing.T) {
	design, module := buildCounter(t)
	sink := diag.NewSink()
	//
	UnusedSignal{}.Check(design, module, design.Interner, sink)
	//
	found := sink.Snapshot()
	assert.Len(t, found, 1)
	assert.Equal(t, diag.W101Unused, found[0].Code)
}

func TestUndrivenSignal(t *testing.T) {
	design, module := buildCounter(t)
	sink := diag.NewSink()
	//
	UndrivenSignal{}.Check(design, module, design.Interner, sink)
	//
	found := sink.Snapshot()
	assert.Len(t, found, 1)
	assert.Equal(t, diag.W102Undriven, found[0].Code)
}

func TestMissingResetFlagsClockOnlySensitivity(t *testing.T) {
	design, module := buildCounter(t)
	sink := diag.NewSink()
	//
	MissingReset{}.Check(design, module, design.Interner, sink)
	//
	assert.Len(t, sink.Snapshot(), 1)
}

func TestMultipleDrivers(t *testing.T) {
	design, module := buildCounter(t)
	bit1 := design.Types.Intern(ir.BitVecType(1, false))
	//
	countSig, ok := module.FindSignal(design.Interner.Intern("count"))
	assert.True(t, ok)
	//
	module.Assigns = append(module.Assigns, ir.Assignment{
		Target: ir.Sig(countSig),
		Expr:   ir.LiteralExpr(logic.FromUint(1, 0), bit1),
	})
	//
	sink := diag.NewSink()
	MultipleDrivers{}.Check(design, module, design.Interner, sink)
	//
	found := sink.Snapshot()
	assert.Len(t, found, 1)
	assert.Equal(t, diag.W109MultipleDrivers, found[0].Code)
}

func TestDefaultRuleSetCoversMinimumSet(t *testing.T) {
	rs := Default()
	assert.Len(t, rs, 15)
	//
	seen := make(map[string]bool)
	for _, r := range rs {
		assert.False(t, seen[r.Name()], "duplicate rule name %s", r.Name())
		seen[r.Name()] = true
	}
}

var _ lint.Rule = UnusedSignal{}
