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

import "github.com/aion-eda/aion/pkg/source"

// scopedId pairs an entity id with the module it lives in, since Signal,
// Cell and Process ids are only unique within their owning module.
type scopedId struct {
	Module ModuleId
	Id     uint32
}

// SourceMap holds four hash tables from entity handle (scoped by module
// where applicable) to Span (spec §3 "Source map"), populated by
// elaboration from the source-language ASTs.
type SourceMap struct {
	modules   map[ModuleId]source.Span
	signals   map[scopedId]source.Span
	cells     map[scopedId]source.Span
	processes map[scopedId]source.Span
}

// NewSourceMap constructs an empty source map.
func NewSourceMap() *SourceMap {
	return &SourceMap{
		modules:   make(map[ModuleId]source.Span),
		signals:   make(map[scopedId]source.Span),
		cells:     make(map[scopedId]source.Span),
		processes: make(map[scopedId]source.Span),
	}
}

// PutModule records the span of a module's declaration.
func (m *SourceMap) PutModule(id ModuleId, span source.Span) {
	m.modules[id] = span
}

// Module returns the span of a module's declaration, or the dummy span if
// unrecorded.
func (m *SourceMap) Module(id ModuleId) source.Span {
	if s, ok := m.modules[id]; ok {
		return s
	}
	return source.Dummy
}

// PutSignal records the span of a signal declaration within a module.
func (m *SourceMap) PutSignal(mod ModuleId, id SignalId, span source.Span) {
	m.signals[scopedId{mod, uint32(id)}] = span
}

// Signal returns the span of a signal declaration, or the dummy span if
// unrecorded.
func (m *SourceMap) Signal(mod ModuleId, id SignalId) source.Span {
	if s, ok := m.signals[scopedId{mod, uint32(id)}]; ok {
		return s
	}
	return source.Dummy
}

// PutCell records the span of a cell (instantiation or lowered construct)
// within a module.
func (m *SourceMap) PutCell(mod ModuleId, id CellId, span source.Span) {
	m.cells[scopedId{mod, uint32(id)}] = span
}

// Cell returns the span of a cell, or the dummy span if unrecorded.
func (m *SourceMap) Cell(mod ModuleId, id CellId) source.Span {
	if s, ok := m.cells[scopedId{mod, uint32(id)}]; ok {
		return s
	}
	return source.Dummy
}

// PutProcess records the span of a process (always-block) within a
// module.
func (m *SourceMap) PutProcess(mod ModuleId, id ProcessId, span source.Span) {
	m.processes[scopedId{mod, uint32(id)}] = span
}

// Process returns the span of a process, or the dummy span if unrecorded.
func (m *SourceMap) Process(mod ModuleId, id ProcessId) source.Span {
	if s, ok := m.processes[scopedId{mod, uint32(id)}]; ok {
		return s
	}
	return source.Dummy
}
