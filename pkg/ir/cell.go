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
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/logic"
)

// CellKindTag tags the variant held by a Cell's Kind field (spec §3 "Cell
// kind"). Pre-synthesis and post-tech-map variants share one enum since a
// Cell can be rewritten in place by tech mapping (§4.4).
type CellKindTag uint8

// Recognised cell-kind tags.
const (
	CellInstance CellKindTag = iota
	CellAnd
	CellOr
	CellXor
	CellNot
	CellMux
	CellAdd
	CellSub
	CellMul
	CellShl
	CellShr
	CellEq
	CellLt
	CellConcat
	CellSlice
	CellRepeat
	CellConst
	CellDff
	CellLatch
	CellMemory
	// Post-tech-map primitives.
	CellLut
	CellCarry
	CellBram
	CellDsp
	CellPll
	CellIobuf
	CellBlackBox
)

// ParamBinding is one `name => value` parameter override supplied at an
// instantiation site.
type ParamBinding struct {
	Name  ident.ID
	Value logic.Vector
}

// MemoryPorts describes a Memory cell's port counts.
type MemoryPorts struct {
	Depth      uint
	Width      uint
	ReadPorts  uint
	WritePorts uint
}

// CellKind is a tagged sum over every cell variant in the spec, generic
// and post-mapped alike (spec §3 "Cell kind").
type CellKind struct {
	Tag CellKindTag
	// CellInstance.
	Module ModuleId
	Params []ParamBinding
	// Width-parameterised gates/arithmetic/comparison cells, and Dff/Latch.
	Width uint
	// CellMux.
	SelectWidth uint
	// CellSlice.
	Offset uint
	// CellRepeat.
	Count uint
	// CellConst.
	Value logic.Vector
	// CellDff.
	HasReset  bool
	HasEnable bool
	// CellMemory.
	Memory MemoryPorts
	// CellLut.
	Init logic.Vector
	// CellBram.
	Depth uint
	// CellDsp.
	WidthA uint
	WidthB uint
	// CellPll.
	InFreqHz  float64
	OutFreqHz float64
	// CellIobuf.
	IOStandard ident.ID
	// CellBlackBox.
	PortNames []ident.ID
}

// ConnDirection mirrors PortDirection for a cell connection (spec §3
// "Cell": "list of connections (port-name → signal-reference +
// direction)").
type ConnDirection = PortDirection

// Connection is one port-name → signal-reference binding on a Cell.
type Connection struct {
	Port      ident.ID
	Signal    SignalRef
	Direction ConnDirection
}

// Cell is one IR-level primitive or module instance within a Module (spec
// §3 "Cell").
type Cell struct {
	Instance    ident.ID
	Kind        CellKind
	Connections []Connection
	// HierPath is set by elaboration to the instance name at the
	// instantiation site (§3.1 EXPANDED). Each module is elaborated once, so
	// no enclosing instance path is prepended, and no later stage reads it.
	HierPath string
}

// Conn looks up the signal reference bound to a named port, if any.
func (c *Cell) Conn(port ident.ID) (SignalRef, bool) {
	for _, conn := range c.Connections {
		if conn.Port == port {
			return conn.Signal, true
		}
	}
	//
	return SignalRef{}, false
}
