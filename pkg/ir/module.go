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
	"github.com/aion-eda/aion/pkg/chash"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/logic"
)

// PortDirection classifies a Module port (spec §3 "Port direction").
type PortDirection uint8

// Recognised port directions.
const (
	Input PortDirection = iota
	Output
	InOut
)

// Parameter is one declared module parameter: its name, type, and resolved
// (possibly overridden) value (spec §3 "Module": "parameters").
type Parameter struct {
	Name  ident.ID
	Type  TypeId
	Value logic.Vector
	// DefaultExpr is a slot for the original default expression (§3.1
	// EXPANDED). Elaboration leaves it nil; its E209 diagnostics point at
	// the parameter declaration's span instead.
	DefaultExpr *Expr
}

// PortDecl is one declared module port (spec §3 "Module": "ports").
type PortDecl struct {
	Name      ident.ID
	Direction PortDirection
	Type      TypeId
	Signal    SignalId
}

// Assignment is one concurrent (continuous) assignment within a Module
// (spec §3 "Module": "list of concurrent Assignment").
type Assignment struct {
	Target SignalRef
	Expr   *Expr
}

// Module is one hardware description unit: ports, signals, behaviour (spec
// §3 "Module").
type Module struct {
	Name       ident.ID
	Parameters []Parameter
	Ports      []PortDecl
	Signals    arena.Arena[Signal]
	Cells      arena.Arena[Cell]
	Processes  arena.Arena[Process]
	Assigns    []Assignment
	Domains    []ClockDomain
	// SourceHash is a slot for the content hash of this module's source
	// inputs (§4.11 "per-module {interface-hash, body-hash, ...}").
	// Elaboration leaves it zero; `aion build` keys its cache on the
	// bundle file's hash instead.
	SourceHash chash.Hash
}

// NewModule constructs an empty module with the given name.
func NewModule(name ident.ID) *Module {
	return &Module{Name: name}
}

// AllocSignal adds a signal to this module and returns its id.
func (m *Module) AllocSignal(s Signal) SignalId {
	return SignalId(m.Signals.Alloc(s))
}

// AllocCell adds a cell to this module and returns its id.
func (m *Module) AllocCell(c Cell) CellId {
	return CellId(m.Cells.Alloc(c))
}

// AllocProcess adds a process to this module and returns its id.
func (m *Module) AllocProcess(p Process) ProcessId {
	return ProcessId(m.Processes.Alloc(p))
}

// Signal resolves a SignalId within this module.
func (m *Module) Signal(id SignalId) Signal {
	return m.Signals.Get(arena.Id(id))
}

// Cell resolves a CellId within this module.
func (m *Module) Cell(id CellId) Cell {
	return m.Cells.Get(arena.Id(id))
}

// SetCell overwrites a cell in place, used by synthesis passes rewriting a
// cell's kind/connections without changing its identity.
func (m *Module) SetCell(id CellId, c Cell) {
	m.Cells.Set(arena.Id(id), c)
}

// Process resolves a ProcessId within this module.
func (m *Module) Process(id ProcessId) Process {
	return m.Processes.Get(arena.Id(id))
}

// FindSignal returns the id of the signal named name, if declared.
func (m *Module) FindSignal(name ident.ID) (SignalId, bool) {
	var found SignalId
	var ok bool
	//
	m.Signals.All(func(id arena.Id, s Signal) bool {
		if s.Name == name {
			found, ok = SignalId(id), true
			return false
		}
		return true
	})
	//
	return found, ok
}

// FindPort returns the port declaration named name, if any.
func (m *Module) FindPort(name ident.ID) (PortDecl, bool) {
	for _, p := range m.Ports {
		if p.Name == name {
			return p, true
		}
	}
	//
	return PortDecl{}, false
}
