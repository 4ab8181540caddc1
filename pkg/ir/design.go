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
package ir

import (
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/source"
)

// Design is the fully-elaborated, language-independent representation of a
// hardware project (spec §3 "Design"): a top module handle, the arena of
// every reachable Module, the shared type database, and the source map.
type Design struct {
	Top     ModuleId
	Modules arena.Arena[*Module]
	Types   *TypeDB
	Source  *SourceMap
	Interner *ident.Interner
}

// NewDesign constructs an empty design bound to the given interner.
func NewDesign(interner *ident.Interner) *Design {
	return &Design{
		Types:    NewTypeDB(),
		Source:   NewSourceMap(),
		Interner: interner,
	}
}

// AllocModule adds a module to the design and returns its id.
func (d *Design) AllocModule(m *Module) ModuleId {
	return ModuleId(d.Modules.Alloc(m))
}

// Module resolves a ModuleId within this design.
func (d *Design) Module(id ModuleId) *Module {
	return d.Modules.Get(arena.Id(id))
}

// TopModule returns the design's top-level module.
func (d *Design) TopModule() *Module {
	return d.Module(d.Top)
}

// FindModule returns the id of the module named name, if it exists.
func (d *Design) FindModule(name ident.ID) (ModuleId, bool) {
	var found ModuleId
	var ok bool
	//
	d.Modules.All(func(id arena.Id, m *Module) bool {
		if m.Name == name {
			found, ok = ModuleId(id), true
			return false
		}
		return true
	})
	//
	return found, ok
}

// ModuleCount returns the number of modules reachable in this design. An
// empty top-level design (spec §8 "Empty design") still has exactly one:
// the top module itself.
func (d *Design) ModuleCount() uint32 {
	return d.Modules.Len()
}

// Validate checks the universal invariants of spec §8 against this design,
// returning every violation found (rather than failing fast), since this
// is used both by tests and as a defensive internal consistency check
// after optimisation passes.
func (d *Design) Validate() []string {
	var errs []string
	//
	d.Modules.All(func(_ arena.Id, m *Module) bool {
		checkModuleInvariants(d, m, &errs)
		return true
	})
	//
	return errs
}

func checkModuleInvariants(d *Design, m *Module, errs *[]string) {
	nsig := m.Signals.Len()
	//
	m.Cells.All(func(_ arena.Id, c Cell) bool {
		for _, conn := range c.Connections {
			checkRefInvariant(conn.Signal, nsig, errs)
		}
		//
		if c.Kind.Tag == CellInstance {
			callee := d.Module(c.Kind.Module)
			for _, conn := range c.Connections {
				if _, ok := callee.FindPort(conn.Port); !ok {
					*errs = append(*errs, "connection port not found on instantiated module")
				}
			}
		}
		return true
	})
	//
	m.Processes.All(func(_ arena.Id, p Process) bool {
		if !p.Valid() {
			*errs = append(*errs, "sequential process without edge-list sensitivity")
		}
		return true
	})
}

func checkRefInvariant(ref SignalRef, nsig uint32, errs *[]string) {
	switch ref.Kind {
	case RefSignal, RefSlice:
		if uint32(arena.Id(ref.Signal)) >= nsig {
			*errs = append(*errs, "signal reference out of range")
		}
	case RefConcat:
		for _, p := range ref.Parts {
			checkRefInvariant(p, nsig, errs)
		}
	}
}

// source.Span is re-exported for convenience so IR-adjacent packages don't
// need a second import for the common case of attaching a span.
type Span = source.Span
