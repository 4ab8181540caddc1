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
package synth

import (
	"fmt"

	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/lint"
)

// TechMapper captures the one technology-specific fact tech-mapping needs
// from an Architecture (spec §4.6): whether its flip-flop primitive offers
// a dedicated asynchronous reset pin, or only synchronous reset (which is
// folded into the D-side combinational logic instead, needing no cell-level
// change here). Resource totals and per-device LUT input counts live on the
// Architecture interface itself (pkg/arch) — those describe the device,
// not how a cell gets rewritten. pkg/pnr/place reads the resource totals to
// carve its site ranges; no stage reads the LUT input count (see DESIGN.md,
// "Tech-mapping scope").
type TechMapper interface {
	Name() string
	SupportsAsyncReset() bool
}

// MapModule lowers every live Sequential/Latched process's register and
// latch targets onto concrete CellDff/CellLatch resource cells (spec §4.4
// "tech mapping ... DFFs (subject to input-count limits)"). Elaboration
// keeps a register's driving logic inline in its process body rather than
// as a separate combinational cell (see netlist.go), so mapping a register
// means redirecting the process's writes from the register signal onto a
// freshly allocated "$d" wire and appending a resource cell that samples
// that wire into the register on the right edge (and, for an async-reset
// device, a dedicated reset pin wired to the second sensitivity edge).
//
// Purely combinational logic (plain Assignments, Combinational processes)
// is left as expression trees: this implementation does not flatten gate
// networks down to LUT truth tables (see DESIGN.md, "Tech-mapping scope"),
// and no downstream stage estimates its LUT cost either.
func MapModule(design *ir.Design, module *ir.Module, nl *Netlist, mapper TechMapper) bool {
	changed := false
	moduleId, _ := design.FindModule(module.Name)

	type job struct {
		id ir.ProcessId
		p  ir.Process
	}
	var jobs []job

	module.Processes.All(func(id arena.Id, p ir.Process) bool {
		if !nl.IsProcessLive(ir.ProcessId(id)) {
			return true
		}
		if p.Kind == ir.Sequential || p.Kind == ir.Latched {
			jobs = append(jobs, job{ir.ProcessId(id), p})
		}
		return true
	})

	for _, j := range jobs {
		if mapRegisterProcess(design, module, moduleId, j.id, j.p, nl, mapper) {
			changed = true
		}
	}

	return changed
}

func mapRegisterProcess(design *ir.Design, module *ir.Module, moduleId ir.ModuleId, procId ir.ProcessId, p ir.Process, nl *Netlist, mapper TechMapper) bool {
	written := dedupSignals(lint.CollectWrittenSignals(p.Body, nil))
	changed := false

	for _, w := range written {
		sig := module.Signal(w)
		if sig.Kind != ir.Reg && sig.Kind != ir.SignalLatch {
			continue
		}

		dName := design.Interner.Intern(fmt.Sprintf("%s$d", design.Interner.String(sig.Name)))
		dId := module.AllocSignal(ir.Signal{Name: dName, Type: sig.Type, Kind: ir.Wire})

		redirectWrites(p.Body, w, dId)

		width := lint.SignalWidth(design, module, w)
		conns := []ir.Connection{
			{Port: design.Interner.Intern("d"), Signal: ir.Sig(dId), Direction: ir.Input},
			{Port: design.Interner.Intern("q"), Signal: ir.Sig(w), Direction: ir.Output},
		}

		tag := ir.CellDff
		hasReset := false

		if p.Kind == ir.Sequential {
			if len(p.Sensitivity.Edges) == 0 {
				continue
			}
			clk := p.Sensitivity.Edges[0].Signal
			conns = append(conns, ir.Connection{Port: design.Interner.Intern("clk"), Signal: ir.Sig(clk), Direction: ir.Input})

			if mapper.SupportsAsyncReset() && len(p.Sensitivity.Edges) > 1 {
				rst := p.Sensitivity.Edges[1].Signal
				conns = append(conns, ir.Connection{Port: design.Interner.Intern("rst"), Signal: ir.Sig(rst), Direction: ir.Input})
				hasReset = true
			}
		} else {
			tag = ir.CellLatch
			if len(p.Sensitivity.Signals) > 0 {
				en := p.Sensitivity.Signals[0]
				conns = append(conns, ir.Connection{Port: design.Interner.Intern("en"), Signal: ir.Sig(en), Direction: ir.Input})
			}
		}

		cell := ir.Cell{
			Instance:    design.Interner.Intern(fmt.Sprintf("%s$reg", design.Interner.String(sig.Name))),
			Kind:        ir.CellKind{Tag: tag, Width: width, HasReset: hasReset},
			Connections: conns,
		}

		cellId := module.AllocCell(cell)
		nl.CellLive = append(nl.CellLive, true)
		design.Source.PutCell(moduleId, cellId, design.Source.Process(moduleId, procId))

		changed = true
	}

	return changed
}

func dedupSignals(in []ir.SignalId) []ir.SignalId {
	var out []ir.SignalId
	for _, s := range in {
		found := false
		for _, o := range out {
			if o == s {
				found = true
				break
			}
		}
		if !found {
			out = append(out, s)
		}
	}
	return out
}

// redirectWrites rewrites every whole-signal assignment to from within body
// so it targets to instead, leaving slice/concat writes (which only cover
// part of the register) untouched — those remain a future refinement (see
// DESIGN.md, "Tech-mapping scope").
func redirectWrites(body *ir.Stmt, from, to ir.SignalId) {
	lint.WalkStmt(body, func(s *ir.Stmt) {
		if s.Kind != ir.StmtAssign {
			return
		}
		if s.Target.Kind == ir.RefSignal && s.Target.Signal == from {
			s.Target.Signal = to
		}
	})
}
