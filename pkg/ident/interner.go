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

// Package ident implements process-wide string interning.  Every name
// appearing in the intermediate representation (module, signal, port,
// parameter, clock domain, ...) is resolved to an ID here; equality of
// names reduces to equality of IDs.
package ident

import "sync"

// ID is an opaque handle for an interned string.  IDs are allocated densely
// from zero, so the zero value is the ID of the first string interned and is
// not a "not set" sentinel.
type ID uint32

// Interner maps strings to IDs and back.  Reads (Lookup, String) may proceed
// concurrently; Intern serialises writes behind the same lock so that a
// string is never assigned two different IDs.
//
// An Interner is constructed explicitly per compilation session rather than
// being a process-wide singleton, so that tests (and concurrent builds) get
// isolated namespaces.
type Interner struct {
	mu     sync.RWMutex
	byName map[string]ID
	byID   []string
}

// New constructs an empty interner.
func New() *Interner {
	return &Interner{
		byName: make(map[string]ID),
	}
}

// Intern returns the ID for s, allocating a fresh one if s has not been seen
// before by this interner.
func (p *Interner) Intern(s string) ID {
	p.mu.RLock()
	if id, ok := p.byName[s]; ok {
		p.mu.RUnlock()
		return id
	}
	p.mu.RUnlock()
	//
	p.mu.Lock()
	defer p.mu.Unlock()
	// Check again, in case another writer won the race between RUnlock and
	// Lock above.
	if id, ok := p.byName[s]; ok {
		return id
	}
	//
	id := ID(len(p.byID))
	p.byID = append(p.byID, s)
	p.byName[s] = id
	//
	return id
}

// Lookup returns the ID already assigned to s, if any.
func (p *Interner) Lookup(s string) (ID, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	id, ok := p.byName[s]
	//
	return id, ok
}

// String returns the text associated with id.  Panics if id was never
// allocated by this interner, since that indicates a programmer error (an ID
// leaked from a different interner, or a corrupt deserialisation).
func (p *Interner) String(id ID) string {
	p.mu.RLock()
	defer p.mu.RUnlock()
	//
	if int(id) >= len(p.byID) {
		panic("ident: unknown interned id")
	}
	//
	return p.byID[id]
}

// Len returns the number of distinct strings interned so far.
func (p *Interner) Len() uint {
	p.mu.RLock()
	defer p.mu.RUnlock()
	//
	return uint(len(p.byID))
}
