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

import "github.com/aion-eda/aion/pkg/arena"

// Distinct, typed arena indices for each IR entity kind (spec §9 "Cyclic
// structures": "represent with typed 32-bit indices ... signals reference
// clock domains via ClockDomainId, not pointers"). Each is a defined type
// over arena.Id rather than an alias, so the compiler rejects e.g. passing
// a CellId where a SignalId is expected.
type (
	ModuleId      arena.Id
	SignalId      arena.Id
	CellId        arena.Id
	ProcessId     arena.Id
	ClockDomainId arena.Id
)

// InvalidSignal is the sentinel "no signal" reference.
var InvalidSignal = SignalId(arena.Invalid)

// InvalidModule is the sentinel "no module" reference.
var InvalidModule = ModuleId(arena.Invalid)

// InvalidClockDomain is the sentinel "no clock domain" reference.
var InvalidClockDomain = ClockDomainId(arena.Invalid)

// Valid reports whether id was actually issued by a Design's module arena.
func (id ModuleId) Valid() bool {
	return arena.Id(id).Valid()
}

// Valid reports whether id was actually issued by a Module's signal arena.
func (id SignalId) Valid() bool {
	return arena.Id(id).Valid()
}

// Valid reports whether id was actually issued by a Module's clock-domain
// list.
func (id ClockDomainId) Valid() bool {
	return arena.Id(id).Valid()
}
