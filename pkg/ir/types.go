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

// Package ir implements the unified, language-independent intermediate
// representation shared by Verilog, SystemVerilog and VHDL elaboration
// (spec §3 "Data model"). Every entity lives in an append-only arena
// (pkg/arena) and is referenced by a typed, stable 32-bit index — there are
// no owning pointers between modules, matching §9 "Arena + ID pattern".
package ir

import (
	"fmt"

	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ident"
)

// TypeId indexes into a TypeDB. Types are interned: equality is handle
// equality.
type TypeId = arena.Id

// TypeKind tags the variant held by a Type.
type TypeKind uint8

// Recognised type kinds (spec §3 "Type").
const (
	TypeBit TypeKind = iota
	TypeBitVec
	TypeInteger
	TypeReal
	TypeBool
	TypeStr
	TypeArray
	TypeEnum
	TypeRecord
	TypeError
)

// EnumVariant is one named value of an Enum type.
type EnumVariant struct {
	Name  ident.ID
	Value int64
}

// RecordField is one named, typed field of a Record type.
type RecordField struct {
	Name ident.ID
	Type TypeId
}

// Type is a tagged sum over the spec's type grammar. Only the fields
// relevant to Kind are meaningful; this mirrors the teacher's
// tagged-variant convention (spec §9 "Tagged variants") of one small struct
// per sum type rather than an interface hierarchy.
type Type struct {
	Kind TypeKind
	// BitVec / Array element width, or BitVec signedness via Signed.
	Width  uint
	Signed bool
	// Array element type and size.
	Elem TypeId
	Size uint
	// Enum / Record name.
	Name ident.ID
	// Enum variants.
	Variants []EnumVariant
	// Record fields.
	Fields []RecordField
}

// TypeDB interns Types: two structurally-equal Type values resolve to the
// same TypeId. This mirrors the spec's "Types are interned; equality is
// handle equality" invariant.
type TypeDB struct {
	arena arena.Arena[Type]
	index map[string]TypeId
}

// NewTypeDB constructs an empty type database.
func NewTypeDB() *TypeDB {
	return &TypeDB{index: make(map[string]TypeId)}
}

// Intern returns the TypeId for t, allocating a fresh entry only if an
// identical Type has not already been interned.
func (db *TypeDB) Intern(t Type) TypeId {
	key := typeKey(t)
	if id, ok := db.index[key]; ok {
		return id
	}
	//
	id := db.arena.Alloc(t)
	db.index[key] = id
	//
	return id
}

// Get resolves a TypeId back to its Type.
func (db *TypeDB) Get(id TypeId) Type {
	return db.arena.Get(id)
}

func typeKey(t Type) string {
	key := fmt.Sprintf("%d:%d:%v:%d:%d:%d:%d", t.Kind, t.Width, t.Signed, t.Elem, t.Size, t.Name, len(t.Variants))
	//
	for _, v := range t.Variants {
		key += fmt.Sprintf(";%d=%d", v.Name, v.Value)
	}
	//
	for _, f := range t.Fields {
		key += fmt.Sprintf(";%d:%d", f.Name, f.Type)
	}
	//
	return key
}

// Common, pre-built type shapes used throughout elaboration.
var (
	BitType  = Type{Kind: TypeBit, Width: 1}
	BoolType = Type{Kind: TypeBool}
	IntType  = Type{Kind: TypeInteger}
	RealType = Type{Kind: TypeReal}
	StrType  = Type{Kind: TypeStr}
	ErrType  = Type{Kind: TypeError}
)

// BitVecType constructs a BitVec{width,signed} type value.
func BitVecType(width uint, signed bool) Type {
	return Type{Kind: TypeBitVec, Width: width, Signed: signed}
}
