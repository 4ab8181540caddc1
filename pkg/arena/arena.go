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

// Package arena implements the append-only, stable-index container used
// throughout the intermediate representation.  Every IR entity (signal,
// cell, process, module, ...) lives in one of these rather than behind a
// pointer: insertion order is preserved, indices never change once issued,
// and nothing is ever removed.  This sidesteps reference-counted or shared
// pointers entirely and keeps every entity a plain value.
package arena

// Id is a typed, dense, 32-bit index into an Arena[T].  The zero value
// refers to the first element inserted into an arena, so a separate
// "invalid id" representation is needed where "unset" must be distinguished
// from "first element" (see Id.Valid via a -1 sentinel stored as ^Id(0)).
type Id uint32

// Invalid is the sentinel id used to represent "no entity" where a zero id
// would be ambiguous with a real first entry.
const Invalid Id = ^Id(0)

// Valid reports whether id was actually issued by an Arena.Alloc call.
func (id Id) Valid() bool {
	return id != Invalid
}

// Raw returns the underlying numeric index.
func (id Id) Raw() uint32 {
	return uint32(id)
}

// Arena is a dense, append-only, insertion-ordered container of T, indexed
// by Id.  The zero value is an empty, ready-to-use arena.
type Arena[T any] struct {
	items []T
}

// Alloc appends x to the arena and returns its new, permanent Id.
func (a *Arena[T]) Alloc(x T) Id {
	id := Id(len(a.items))
	a.items = append(a.items, x)
	//
	return id
}

// Get returns the element stored at id.  Panics if id is out of range,
// since that indicates a dangling reference from a different arena or a
// corrupt deserialisation — a programmer error, not a user error.
func (a *Arena[T]) Get(id Id) T {
	return a.items[id]
}

// Set overwrites the element stored at id in place.  Used by optimisation
// passes that rewrite a cell or signal without changing its identity.
func (a *Arena[T]) Set(id Id, x T) {
	a.items[id] = x
}

// Len returns the number of elements allocated so far.
func (a *Arena[T]) Len() uint32 {
	return uint32(len(a.items))
}

// All iterates the arena in insertion order, yielding (id, value) pairs.
// Downstream passes rely on this order being deterministic so that
// user-visible output (diagnostics, cache artifacts, frame packing) does
// not depend on map iteration order.
func (a *Arena[T]) All(fn func(Id, T) bool) {
	for i, x := range a.items {
		if !fn(Id(i), x) {
			return
		}
	}
}

// Items returns the underlying slice of values, in insertion order. Callers
// must not retain it past the next Alloc call, which may reallocate.
func (a *Arena[T]) Items() []T {
	return a.items
}
