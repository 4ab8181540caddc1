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
package pnr_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/pnr"
	"github.com/aion-eda/aion/pkg/synth"
)

func TestBuildBridgesLiveDffIntoOneCellTwoNets(t *testing.T) {
	interner := ident.New()
	design := ir.NewDesign(interner)
	bit1 := design.Types.Intern(ir.Type{Kind: ir.TypeBit, Width: 1})
	module := ir.NewModule(interner.Intern("top"))
	design.AllocModule(module)

	d := module.AllocSignal(ir.Signal{Name: interner.Intern("d"), Type: bit1, Kind: ir.Wire})
	q := module.AllocSignal(ir.Signal{Name: interner.Intern("q"), Type: bit1, Kind: ir.Reg})
	clk := module.AllocSignal(ir.Signal{Name: interner.Intern("clk"), Type: bit1, Kind: ir.Port})

	module.AllocCell(ir.Cell{
		Instance: interner.Intern("q$reg"),
		Kind:     ir.CellKind{Tag: ir.CellDff, Width: 1},
		Connections: []ir.Connection{
			{Port: interner.Intern("d"), Signal: ir.Sig(d), Direction: ir.Input},
			{Port: interner.Intern("q"), Signal: ir.Sig(q), Direction: ir.Output},
			{Port: interner.Intern("clk"), Signal: ir.Sig(clk), Direction: ir.Input},
		},
	})

	live := synth.NewNetlist(module)
	require.True(t, live.IsCellLive(0))

	nl := pnr.Build(module, live)
	assert.Equal(t, uint32(1), nl.Cells.Len())
	assert.Equal(t, uint32(3), nl.Nets.Len())
	assert.Equal(t, uint32(3), nl.Pins.Len())

	cell := nl.Cells.Get(0)
	assert.Equal(t, ir.CellDff, cell.Kind)
	assert.False(t, cell.Placed())
	assert.Len(t, cell.Pins, 3)
}

func TestBuildSkipsDeadCells(t *testing.T) {
	interner := ident.New()
	design := ir.NewDesign(interner)
	bit1 := design.Types.Intern(ir.Type{Kind: ir.TypeBit, Width: 1})
	module := ir.NewModule(interner.Intern("top"))
	design.AllocModule(module)

	a := module.AllocSignal(ir.Signal{Name: interner.Intern("a"), Type: bit1, Kind: ir.Wire})
	module.AllocCell(ir.Cell{
		Instance: interner.Intern("u"),
		Kind:     ir.CellKind{Tag: ir.CellLatch, Width: 1},
		Connections: []ir.Connection{
			{Port: interner.Intern("q"), Signal: ir.Sig(a), Direction: ir.Output},
		},
	})

	live := synth.NewNetlist(module)
	live.MarkCellDead(0)

	nl := pnr.Build(module, live)
	assert.Equal(t, uint32(0), nl.Cells.Len())
}
