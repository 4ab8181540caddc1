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
package place

import (
	"math"
	"math/rand/v2"

	"github.com/aion-eda/aion/pkg/pnr"
)

// Stats reports what one Anneal call did, for build logging.
type Stats struct {
	InitialCost float64
	FinalCost   float64
	Moves       int
	Accepted    int
}

// Anneal refines an already-placed netlist by simulated annealing against
// HPWL cost (spec §4.7 "Refinement phase"). The acceptance rule — accept
// improving moves unconditionally, accept worsening moves with probability
// exp(-delta/T), geometric cooling per temperature step — is the same
// Metropolis-Hastings shape as a software stochastic optimiser's MCMC
// chain (grounded on the retrieval pack's oisee-z80-optimizer
// pkg/stoke/mcmc.go Chain.Step: mutate, evaluate delta, accept
// unconditionally if delta <= 0 else with probability exp(-delta/T), then
// anneal), adapted from mutating an instruction sequence to swapping two
// placement sites.
func Anneal(nl *pnr.Netlist, rng *rand.Rand) Stats {
	movable := movableCells(nl)
	n := len(nl.Cells.Items())

	stats := Stats{InitialCost: hpwl(nl)}
	cost := stats.InitialCost

	temperature := 2 * math.Sqrt(float64(n))
	movesPerTemp := max(10, 10*n)

	for temperature > 0.01 {
		accepted := 0

		for step := 0; step < movesPerTemp; step++ {
			a, b, ok := pickCompatiblePair(movable, rng)
			if !ok {
				break
			}

			delta, apply := trySwap(nl, a, b, cost)

			accept := delta < 0
			if !accept && temperature > 0 {
				accept = rng.Float64() < math.Exp(-delta/temperature)
			}

			stats.Moves++
			if accept {
				apply()
				cost += delta
				accepted++
				stats.Accepted++
			}
		}

		if movesPerTemp > 0 && float64(accepted)/float64(movesPerTemp) < 0.001 {
			break
		}

		temperature *= 0.95
	}

	stats.FinalCost = cost
	return stats
}

// movableCells groups non-fixed cell indices by site class, the
// compatible-swap-partner grouping spec §4.7 names (LUT↔LUT, LUT↔Carry,
// FF↔FF, BRAM↔BRAM, DSP↔DSP, IO↔IO, PLL↔PLL — already one SiteClass each
// since siteClass maps Carry into ClassLUT).
func movableCells(nl *pnr.Netlist) [classCount][]pnr.PnrCellId {
	var groups [classCount][]pnr.PnrCellId

	cells := nl.Cells.Items()
	for i, c := range cells {
		if c.Fixed {
			continue
		}
		class, ok := siteClass(c.Kind)
		if !ok {
			continue
		}
		groups[class] = append(groups[class], pnr.PnrCellId(i))
	}

	return groups
}

// pickCompatiblePair chooses a random non-empty site class with at least
// two movable cells, then two distinct cells within it.
func pickCompatiblePair(groups [classCount][]pnr.PnrCellId, rng *rand.Rand) (pnr.PnrCellId, pnr.PnrCellId, bool) {
	var candidates []SiteClass
	for c, g := range groups {
		if len(g) >= 2 {
			candidates = append(candidates, SiteClass(c))
		}
	}
	if len(candidates) == 0 {
		return 0, 0, false
	}

	class := candidates[rng.IntN(len(candidates))]
	g := groups[class]

	i := rng.IntN(len(g))
	j := rng.IntN(len(g) - 1)
	if j >= i {
		j++
	}

	return g[i], g[j], true
}

// trySwap computes the cost delta of swapping a and b's sites against
// currentCost, returning an apply closure that commits the swap (called
// only on acceptance, matching spec §4.7 "On rejection, restore" by simply
// never mutating the netlist in the first place).
func trySwap(nl *pnr.Netlist, a, b pnr.PnrCellId, currentCost float64) (float64, func()) {
	cells := nl.Cells.Items()
	siteA, siteB := cells[a].Site, cells[b].Site

	cells[a].Site, cells[b].Site = siteB, siteA
	newCost := hpwl(nl)
	cells[a].Site, cells[b].Site = siteA, siteB

	return newCost - currentCost, func() {
		cells[a].Site, cells[b].Site = siteB, siteA
	}
}
