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
package place_test

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/arch"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/pnr"
	"github.com/aion-eda/aion/pkg/pnr/place"
	"github.com/aion-eda/aion/pkg/synth"
)

func buildDffChain(t *testing.T, n int) *pnr.Netlist {
	t.Helper()
	interner := ident.New()
	design := ir.NewDesign(interner)
	bit1 := design.Types.Intern(ir.Type{Kind: ir.TypeBit, Width: 1})
	module := ir.NewModule(interner.Intern("top"))
	design.AllocModule(module)

	clk := module.AllocSignal(ir.Signal{Name: interner.Intern("clk"), Type: bit1, Kind: ir.Port})

	prev := module.AllocSignal(ir.Signal{Name: interner.Intern("s0"), Type: bit1, Kind: ir.Reg})
	for i := 1; i <= n; i++ {
		next := module.AllocSignal(ir.Signal{Name: interner.Intern("s"), Type: bit1, Kind: ir.Reg})
		module.AllocCell(ir.Cell{
			Instance: interner.Intern("r"),
			Kind:     ir.CellKind{Tag: ir.CellDff, Width: 1},
			Connections: []ir.Connection{
				{Port: interner.Intern("d"), Signal: ir.Sig(prev), Direction: ir.Input},
				{Port: interner.Intern("q"), Signal: ir.Sig(next), Direction: ir.Output},
				{Port: interner.Intern("clk"), Signal: ir.Sig(clk), Direction: ir.Input},
			},
		})
		prev = next
	}

	live := synth.NewNetlist(module)
	return pnr.Build(module, live)
}

func TestRandomPlaceAssignsDisjointSites(t *testing.T) {
	nl := buildDffChain(t, 8)
	res := arch.ResourceCounts{LUTs: 10, FFs: 10, BRAM: 2, DSP: 2, IO: 4, PLL: 1}
	rng := rand.New(rand.NewPCG(1, 2))

	require.NoError(t, place.RandomPlace(nl, res, nil, rng))

	seen := make(map[uint]bool)
	for _, c := range nl.Cells.Items() {
		require.True(t, c.Placed())
		assert.False(t, seen[c.Site])
		seen[c.Site] = true
	}
}

func TestRandomPlaceFailsWhenClassExhausted(t *testing.T) {
	nl := buildDffChain(t, 4)
	res := arch.ResourceCounts{LUTs: 10, FFs: 2, BRAM: 2, DSP: 2, IO: 4, PLL: 1}
	rng := rand.New(rand.NewPCG(1, 2))

	err := place.RandomPlace(nl, res, nil, rng)
	assert.Error(t, err)
}

func TestAnnealRunsAndReportsStats(t *testing.T) {
	nl := buildDffChain(t, 12)
	res := arch.ResourceCounts{LUTs: 10, FFs: 200, BRAM: 2, DSP: 2, IO: 4, PLL: 1}
	rng := rand.New(rand.NewPCG(7, 9))

	require.NoError(t, place.RandomPlace(nl, res, nil, rng))
	stats := place.Anneal(nl, rng)

	assert.Greater(t, stats.Moves, 0)
	assert.GreaterOrEqual(t, stats.Accepted, 0)
	assert.GreaterOrEqual(t, stats.FinalCost, 0.0)
}
