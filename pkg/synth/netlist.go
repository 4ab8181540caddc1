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

// Package synth implements the optimisation and technology-mapping stage of
// spec §4.4: constant propagation, dead-code elimination and
// common-subexpression elimination over one Module, followed by mapping
// synthesizable registers onto device-specific flip-flop primitives.
//
// Elaboration (pkg/elaborate) does not decompose behavioural logic into
// individual gate-level Cells — a Module's combinational function lives in
// its Assignment and Process expression trees, and only module
// instantiations become Cells (see pkg/elaborate/elaborate.go,
// elaborateInstance). The netlist view this package builds therefore tracks
// liveness over the entities the IR actually has stable ids for — Cells and
// Processes — while the optimisation passes operate directly on the
// Assignment/Process expression trees where the bulk of the logic lives.
// Tech-mapping is the point where register state is finally committed to
// concrete Dff/Latch resource Cells (see techmap.go).
package synth

import "github.com/aion-eda/aion/pkg/ir"

// Netlist is a mutable liveness view over one Module's Cells and Processes,
// built fresh by each optimisation pass that needs it (spec §4.4 "a
// liveness flag"). Assignments carry no stable id (plain indices into a
// slice that DeadCodeEliminate can freely truncate), so no liveness vector
// is kept for them.
type Netlist struct {
	Module *ir.Module

	// CellLive is indexed by the Cell arena id.
	CellLive []bool
	// ProcessLive is indexed by the Process arena id.
	ProcessLive []bool
}

// NewNetlist builds a netlist view of module with every cell and process
// marked live.
func NewNetlist(module *ir.Module) *Netlist {
	nl := &Netlist{Module: module}

	nl.CellLive = make([]bool, module.Cells.Len())
	for i := range nl.CellLive {
		nl.CellLive[i] = true
	}

	nl.ProcessLive = make([]bool, module.Processes.Len())
	for i := range nl.ProcessLive {
		nl.ProcessLive[i] = true
	}

	return nl
}

// IsCellLive reports whether id is still considered live.
func (nl *Netlist) IsCellLive(id ir.CellId) bool {
	return nl.CellLive[id]
}

// IsProcessLive reports whether id is still considered live.
func (nl *Netlist) IsProcessLive(id ir.ProcessId) bool {
	return nl.ProcessLive[id]
}

// MarkCellDead clears id's liveness flag.
func (nl *Netlist) MarkCellDead(id ir.CellId) {
	nl.CellLive[id] = false
}

// MarkProcessDead clears id's liveness flag.
func (nl *Netlist) MarkProcessDead(id ir.ProcessId) {
	nl.ProcessLive[id] = false
}

// LiveCellCount returns the number of cells still marked live.
func (nl *Netlist) LiveCellCount() int {
	n := 0
	for _, live := range nl.CellLive {
		if live {
			n++
		}
	}
	return n
}
