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
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/lint"
)

// pureCellKind reports whether tag's side effects are entirely captured by
// its output connections, so a cell of that kind can be dropped when none
// of its outputs are observable. CellInstance, Dff/Latch/Memory and
// BlackBox are conservatively always kept live: an instance may hide state
// or further instantiation the optimiser cannot see into, and registers,
// memories and black boxes carry state across cycles regardless of whether
// anything currently reads them.
func pureCellKind(tag ir.CellKindTag) bool {
	switch tag {
	case ir.CellInstance, ir.CellDff, ir.CellLatch, ir.CellMemory, ir.CellBlackBox:
		return false
	default:
		return true
	}
}

// DeadCodeEliminate removes concurrent assignments and marks processes/
// cells dead when nothing observable depends on what they drive (spec
// §4.4 "dead-code elimination": "cells reachable from outputs ... clear
// the liveness flag on the rest"). Assignments are removed outright since
// they carry no externally-referenced id; processes and cells only have
// their nl liveness flag cleared, since pkg/ir.SourceMap and hierarchy
// paths key off their stable arena ids.
func DeadCodeEliminate(module *ir.Module, nl *Netlist) bool {
	observable := initialObservableSignals(module)

	assignLive := make([]bool, len(module.Assigns))
	processLive := make([]bool, module.Processes.Len())

	for {
		progressed := false

		for i, a := range module.Assigns {
			if assignLive[i] {
				continue
			}
			if touchesAny(a.Target.Signals(nil), observable) {
				assignLive[i] = true
				observable = addSignals(observable, lint.CollectReadSignals(wrapAssignExpr(a), nil))
				progressed = true
			}
		}

		module.Processes.All(func(id arena.Id, p ir.Process) bool {
			if processLive[id] {
				return true
			}
			written := lint.CollectWrittenSignals(p.Body, nil)
			if touchesAny(written, observable) {
				processLive[id] = true
				observable = addSignals(observable, lint.CollectReadSignals(p.Body, nil))
				progressed = true
			}
			return true
		})

		if !progressed {
			break
		}
	}

	changed := false

	kept := module.Assigns[:0]
	for i, a := range module.Assigns {
		if assignLive[i] {
			kept = append(kept, a)
		} else {
			changed = true
		}
	}
	module.Assigns = kept

	module.Processes.All(func(id arena.Id, p ir.Process) bool {
		if !processLive[id] && nl.ProcessLive[id] {
			nl.MarkProcessDead(ir.ProcessId(id))
			changed = true
		}
		return true
	})

	module.Cells.All(func(id arena.Id, c ir.Cell) bool {
		if !nl.CellLive[id] {
			return true
		}
		if !pureCellKind(c.Kind.Tag) {
			return true
		}
		outs := cellOutputSignals(c)
		if !touchesAny(outs, observable) {
			nl.MarkCellDead(ir.CellId(id))
			changed = true
		}
		return true
	})

	return changed
}

// initialObservableSignals seeds the backward-liveness worklist with every
// signal a module exposes to the outside world or otherwise cannot treat as
// purely internal: output/inout ports, clock-domain clocks, and cell
// connections (module instances may depend on a signal in ways the
// optimiser cannot see past).
func initialObservableSignals(module *ir.Module) []ir.SignalId {
	var out []ir.SignalId

	for _, p := range module.Ports {
		if p.Direction == ir.Output || p.Direction == ir.InOut {
			out = append(out, p.Signal)
		}
	}

	for _, d := range module.Domains {
		out = append(out, d.Clock)
	}

	module.Cells.All(func(_ arena.Id, c ir.Cell) bool {
		for _, conn := range c.Connections {
			if conn.Direction == ir.Input || conn.Direction == ir.InOut {
				out = append(out, conn.Signal.Signals(nil)...)
			}
		}
		return true
	})

	return out
}

func touchesAny(signals, observable []ir.SignalId) bool {
	for _, s := range signals {
		for _, o := range observable {
			if s == o {
				return true
			}
		}
	}
	return false
}

func addSignals(observable, more []ir.SignalId) []ir.SignalId {
	for _, m := range more {
		found := false
		for _, o := range observable {
			if o == m {
				found = true
				break
			}
		}
		if !found {
			observable = append(observable, m)
		}
	}
	return observable
}

// wrapAssignExpr adapts an Assignment's bare Expr to the Stmt-shaped input
// lint.CollectReadSignals expects, without allocating a throwaway process.
func wrapAssignExpr(a ir.Assignment) *ir.Stmt {
	return ir.Assign(a.Target, a.Expr)
}

func cellOutputSignals(c ir.Cell) []ir.SignalId {
	var out []ir.SignalId
	for _, conn := range c.Connections {
		if conn.Direction == ir.Output || conn.Direction == ir.InOut {
			out = conn.Signal.Signals(out)
		}
	}
	return out
}
