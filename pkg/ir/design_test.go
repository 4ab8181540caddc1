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
package ir_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
)

func TestModuleResolvesByFindSignalAndFindPort(t *testing.T) {
	interner := ident.New()
	m := ir.NewModule(interner.Intern("top"))

	bitId := ir.TypeId(0)
	sigId := m.AllocSignal(ir.Signal{Name: interner.Intern("clk"), Type: bitId, Kind: ir.Wire})
	m.Ports = append(m.Ports, ir.PortDecl{Name: interner.Intern("clk"), Direction: ir.Input, Type: bitId, Signal: sigId})

	found, ok := m.FindSignal(interner.Intern("clk"))
	require.True(t, ok)
	assert.Equal(t, sigId, found)

	port, ok := m.FindPort(interner.Intern("clk"))
	require.True(t, ok)
	assert.Equal(t, sigId, port.Signal)

	_, ok = m.FindSignal(interner.Intern("nope"))
	assert.False(t, ok)
}

func TestDesignModuleCountAndTopModule(t *testing.T) {
	interner := ident.New()
	design := ir.NewDesign(interner)

	top := ir.NewModule(interner.Intern("top"))
	topId := design.AllocModule(top)
	design.Top = topId

	sub := ir.NewModule(interner.Intern("sub"))
	design.AllocModule(sub)

	assert.EqualValues(t, 2, design.ModuleCount())
	assert.Same(t, top, design.TopModule())

	found, ok := design.FindModule(interner.Intern("sub"))
	require.True(t, ok)
	assert.Same(t, sub, design.Module(found))
}

func TestValidateCatchesOutOfRangeSignalReference(t *testing.T) {
	interner := ident.New()
	design := ir.NewDesign(interner)

	m := ir.NewModule(interner.Intern("top"))
	badRef := ir.SignalRef{Kind: ir.RefSignal, Signal: ir.SignalId(99)}
	m.AllocCell(ir.Cell{
		Kind:        ir.CellKind{Tag: ir.CellNot},
		Connections: []ir.Connection{{Port: interner.Intern("a"), Signal: badRef}},
	})
	design.Top = design.AllocModule(m)

	errs := design.Validate()
	require.NotEmpty(t, errs)
	assert.Contains(t, errs[0], "signal reference out of range")
}

func TestValidatePassesForWellFormedModule(t *testing.T) {
	interner := ident.New()
	design := ir.NewDesign(interner)

	m := ir.NewModule(interner.Intern("top"))
	sigId := m.AllocSignal(ir.Signal{Name: interner.Intern("a"), Type: ir.TypeId(0), Kind: ir.Wire})
	m.AllocCell(ir.Cell{
		Kind:        ir.CellKind{Tag: ir.CellNot},
		Connections: []ir.Connection{{Port: interner.Intern("a"), Signal: ir.SignalRef{Kind: ir.RefSignal, Signal: sigId}}},
	})
	design.Top = design.AllocModule(m)

	assert.Empty(t, design.Validate())
}

func TestTypeDBInternsStructurallyEqualTypes(t *testing.T) {
	db := ir.NewTypeDB()

	a := db.Intern(ir.BitVecType(8, false))
	b := db.Intern(ir.BitVecType(8, false))
	c := db.Intern(ir.BitVecType(16, false))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, ir.BitVecType(8, false), db.Get(a))
}

func TestInvalidIdsAreNotValid(t *testing.T) {
	assert.False(t, ir.InvalidModule.Valid())
	assert.False(t, ir.InvalidSignal.Valid())
	assert.False(t, ir.InvalidClockDomain.Valid())
}
