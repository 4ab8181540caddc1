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

// ProcessKind classifies a behavioural process (spec §3 "Process").
type ProcessKind uint8

// Recognised process kinds.
const (
	Combinational ProcessKind = iota
	Sequential
	Latched
	Initial
)

// Edge distinguishes the triggering edge of a clock-domain sensitivity
// entry.
type Edge uint8

// Recognised edges.
const (
	Posedge Edge = iota
	Negedge
	BothEdges
)

// EdgeEntry is one (signal, edge) pair in a process's edge-list
// sensitivity.
type EdgeEntry struct {
	Signal SignalId
	Edge   Edge
}

// SensitivityKind tags the variant held by a Sensitivity.
type SensitivityKind uint8

// Recognised sensitivity variants.
const (
	SensitivityAll SensitivityKind = iota
	SensitivityEdgeList
	SensitivitySignalList
)

// Sensitivity describes what triggers a Process to re-evaluate.
type Sensitivity struct {
	Kind    SensitivityKind
	Edges   []EdgeEntry
	Signals []SignalId
}

// Process is one behavioural block (spec §3 "Process"): a Verilog always
// block or VHDL process, lowered to a statement tree plus a sensitivity
// description.
type Process struct {
	Kind        ProcessKind
	Body        *Stmt
	Sensitivity Sensitivity
}

// Valid checks invariant 4: a Sequential process's sensitivity must be an
// EdgeList with at least one entry.
func (p *Process) Valid() bool {
	if p.Kind != Sequential {
		return true
	}
	//
	return p.Sensitivity.Kind == SensitivityEdgeList && len(p.Sensitivity.Edges) > 0
}
