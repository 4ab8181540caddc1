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

// SignalKind classifies how a Signal is driven (spec §3 "Signal").
type SignalKind uint8

// Recognised signal kinds.
const (
	Wire SignalKind = iota
	Reg
	SignalLatch
	Port
	Const
)

// Signal is one named, typed value-carrier within a Module (spec §3
// "Signal").
type Signal struct {
	Name ident.ID
	Type TypeId
	Kind SignalKind
	// Initial value (Reg/Latch) or reset value (Reg with has-reset),
	// depending on usage; nil means "no initial/reset value specified".
	// A Const signal must carry a non-nil value (invariant 5).
	Initial *logic.Vector
	// ClockDomain is the clock domain this signal is associated with, if
	// any (invariant 6: referenced domain signals must be Wire or Port,
	// declared in the same module).
	ClockDomain ClockDomainId
}

// ClockDomain names one clock domain declared within a Module (spec §3
// "Module": "list of ClockDomain").
type ClockDomain struct {
	Name  ident.ID
	Clock SignalId
}
