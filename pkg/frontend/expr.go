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
package frontend

import (
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/source"
)

// ExprKind tags the variant held by an Expr, pre-elaboration (identifiers
// are still plain strings, not yet resolved to SignalIds).
type ExprKind uint8

// Recognised pre-elaboration expression variants.
const (
	ExprIdent ExprKind = iota
	ExprNumber
	ExprUnary
	ExprBinary
	ExprTernary
	ExprConcat
	ExprIndex
	ExprSlice
	ExprCall
)

// Expr is the pre-elaboration expression tree. Unlike ir.Expr, names are
// unresolved strings and no type has been assigned yet.
type Expr struct {
	Kind ExprKind
	Span source.Span
	// ExprIdent.
	Name string
	// ExprNumber: unsigned value plus an explicit bit width (0 means
	// "infer from context").
	Value uint64
	Width uint
	// ExprUnary.
	UnOp    ir.UnaryOp
	Operand *Expr
	// ExprBinary.
	BinOp ir.BinaryOp
	Lhs   *Expr
	Rhs   *Expr
	// ExprTernary.
	Cond *Expr
	Then *Expr
	Else *Expr
	// ExprConcat.
	Parts []*Expr
	// ExprIndex / ExprSlice.
	Base *Expr
	High *Expr
	Low  *Expr
	// ExprCall.
	Func string
	Args []*Expr
}

// Ident constructs an ExprIdent node.
func Ident(name string, span source.Span) *Expr {
	return &Expr{Kind: ExprIdent, Name: name, Span: span}
}

// Number constructs an ExprNumber node.
func Number(value uint64, width uint, span source.Span) *Expr {
	return &Expr{Kind: ExprNumber, Value: value, Width: width, Span: span}
}

// Binary constructs an ExprBinary node.
func Binary(op ir.BinaryOp, lhs, rhs *Expr, span source.Span) *Expr {
	return &Expr{Kind: ExprBinary, BinOp: op, Lhs: lhs, Rhs: rhs, Span: span}
}

// Unary constructs an ExprUnary node.
func Unary(op ir.UnaryOp, operand *Expr, span source.Span) *Expr {
	return &Expr{Kind: ExprUnary, UnOp: op, Operand: operand, Span: span}
}

// LValueKind tags the variant held by an LValue.
type LValueKind uint8

// Recognised pre-elaboration lvalue variants.
const (
	LValueIdent LValueKind = iota
	LValueSlice
	LValueConcat
)

// LValue is the pre-elaboration assignment-target tree (mirrors
// ir.SignalRef over unresolved names).
type LValue struct {
	Kind  LValueKind
	Name  string
	High  *Expr
	Low   *Expr
	Parts []LValue
	Span  source.Span
}
