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

// Package place implements spec §4.7: random initial placement onto
// device sites followed by simulated-annealing refinement against a
// half-perimeter-wirelength cost.
package place

import (
	"math"
	"math/rand/v2"

	"github.com/bits-and-blooms/bitset"

	"github.com/aion-eda/aion/pkg/aerr"
	"github.com/aion-eda/aion/pkg/arch"
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/pnr"
)

// SiteClass groups the device's placeable site kinds, the granularity
// compatible swaps and the initial site-id carve-up both operate at (spec
// §4.7 "Site-id ranges are carved from the architecture's resource
// counts").
type SiteClass uint8

// Recognised site classes, in the fixed order their site-id ranges are
// carved: LUTs, then FFs, then BRAM, DSP, IO, PLL.
const (
	ClassLUT SiteClass = iota
	ClassFF
	ClassBRAM
	ClassDSP
	ClassIO
	ClassPLL
	classCount
)

// siteClass maps a cell kind to the site class it occupies. CellCarry
// shares the LUT range (spec §4.7 "LUT↔Carry" as a compatible swap pair);
// CellInstance and CellBlackBox — opaque cells this toolchain does not
// decompose further (DESIGN.md, "PnR netlist bridge scope") — are placed
// as LUT-class macros, the least restrictive site kind.
func siteClass(tag ir.CellKindTag) (SiteClass, bool) {
	switch tag {
	case ir.CellLut, ir.CellCarry, ir.CellInstance, ir.CellBlackBox,
		ir.CellAnd, ir.CellOr, ir.CellXor, ir.CellNot, ir.CellMux,
		ir.CellAdd, ir.CellSub, ir.CellMul, ir.CellShl, ir.CellShr,
		ir.CellEq, ir.CellLt, ir.CellConcat, ir.CellSlice, ir.CellRepeat, ir.CellConst:
		return ClassLUT, true
	case ir.CellDff, ir.CellLatch:
		return ClassFF, true
	case ir.CellMemory, ir.CellBram:
		return ClassBRAM, true
	case ir.CellDsp:
		return ClassDSP, true
	case ir.CellIobuf:
		return ClassIO, true
	case ir.CellPll:
		return ClassPLL, true
	default:
		return 0, false
	}
}

// siteRange is the half-open [Low, High) site-id interval a class owns.
type siteRange struct{ Low, High uint }

func (r siteRange) size() uint { return r.High - r.Low }

// carveSiteRanges lays out the flat site-id space in the order spec §4.7
// names: "LUTs occupy [0, total_luts), FFs the next total_ffs, and so on
// for BRAM, DSP, IO, PLL".
func carveSiteRanges(res arch.ResourceCounts) [classCount]siteRange {
	counts := [classCount]uint{ClassLUT: res.LUTs, ClassFF: res.FFs, ClassBRAM: res.BRAM, ClassDSP: res.DSP, ClassIO: res.IO, ClassPLL: res.PLL}
	var ranges [classCount]siteRange
	next := uint(0)
	for c := SiteClass(0); c < classCount; c++ {
		ranges[c] = siteRange{Low: next, High: next + counts[c]}
		next += counts[c]
	}
	return ranges
}

// Fixed names a cell whose site assignment must not be disturbed by
// either placement phase.
type Fixed struct {
	Cell pnr.PnrCellId
	Site uint
}

// RandomPlace assigns every non-fixed cell in nl a random, unoccupied site
// within its class's range (spec §4.7 "Initial phase (random)"). Fixed
// cells retain the site given in fixed. Returns an internal error if a
// class runs out of sites or a cell's kind has no site class (spec §7:
// resource exhaustion is a build precondition failure, not a diagnostic).
func RandomPlace(nl *pnr.Netlist, res arch.ResourceCounts, fixed []Fixed, rng *rand.Rand) error {
	ranges := carveSiteRanges(res)
	occupied := make([]*bitset.BitSet, classCount)
	for c := range occupied {
		occupied[c] = bitset.New(uint(ranges[c].size()))
	}

	// Items returns the arena's backing slice; indexed writes below mutate
	// cell placement in place without a second Get/Set round trip per
	// cell.
	cells := nl.Cells.Items()
	isFixed := make(map[pnr.PnrCellId]uint, len(fixed))
	for _, f := range fixed {
		isFixed[f.Cell] = f.Site
		class, ok := siteClass(cells[f.Cell].Kind)
		if !ok {
			return aerr.New("place: fixed cell %d has no site class", f.Cell)
		}
		occupied[class].Set(uint(f.Site - ranges[class].Low))
	}

	for i := range cells {
		id := pnr.PnrCellId(i)
		if site, ok := isFixed[id]; ok {
			cells[i].Site = site
			cells[i].Fixed = true
			continue
		}

		class, ok := siteClass(cells[i].Kind)
		if !ok {
			return aerr.New("place: cell %d (kind %d) has no site class", i, cells[i].Kind)
		}
		r := ranges[class]
		if r.size() == 0 {
			return aerr.New("place: device has no sites of class %d for cell %d", class, i)
		}

		site, err := randomFreeSite(occupied[class], r, rng)
		if err != nil {
			return err
		}
		cells[i].Site = site
	}

	return nil
}

func randomFreeSite(occ *bitset.BitSet, r siteRange, rng *rand.Rand) (uint, error) {
	free := r.size() - occ.Count()
	if free == 0 {
		return 0, aerr.New("place: no free site left in range [%d, %d)", r.Low, r.High)
	}

	// Pick the k-th free bit uniformly, rather than rejection-sampling
	// individual site ids, so this terminates in bounded time even when
	// the range is nearly full.
	k := uint(rng.Uint64N(uint64(free)))
	for offset := uint(0); offset < r.size(); offset++ {
		if occ.Test(offset) {
			continue
		}
		if k == 0 {
			occ.Set(offset)
			return r.Low + offset, nil
		}
		k--
	}
	return 0, aerr.New("place: site accounting inconsistent in range [%d, %d)", r.Low, r.High)
}

// hpwl is the site-id → (x, y) half-perimeter-wirelength cost function of
// spec §4.7: "projecting site-ids to synthetic (x, y) via x = site mod
// 100, y = site div 100; sum over nets of (max_x − min_x) + (max_y −
// min_y)".
func hpwl(nl *pnr.Netlist) float64 {
	total := 0.0

	nl.Nets.All(func(_ arena.Id, net pnr.PnrNet) bool {
		minX, minY := math.MaxInt, math.MaxInt
		maxX, maxY := math.MinInt, math.MinInt
		seen := false

		visit := func(pinId pnr.PnrPinId) {
			pin := nl.Pins.Get(arena.Id(pinId))
			cell := nl.Cells.Get(arena.Id(pin.Cell))
			if !cell.Placed() {
				return
			}
			x, y := int(cell.Site%100), int(cell.Site/100)
			seen = true
			if x < minX {
				minX = x
			}
			if x > maxX {
				maxX = x
			}
			if y < minY {
				minY = y
			}
			if y > maxY {
				maxY = y
			}
		}

		if net.HasDriver {
			visit(net.Driver)
		}
		for _, s := range net.Sinks {
			visit(s)
		}

		if seen {
			total += float64((maxX - minX) + (maxY - minY))
		}
		return true
	})

	return total
}
