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

import "github.com/aion-eda/aion/pkg/logic"

// ExprKind tags the variant held by an Expr (spec §3 "Expression").
type ExprKind uint8

// Recognised expression variants.
const (
	ExprSignal ExprKind = iota
	ExprLiteral
	ExprUnary
	ExprBinary
	ExprTernary
	ExprFuncCall
	ExprConcat
	ExprRepeat
	ExprIndex
	ExprSlice
)

// UnaryOp enumerates unary operators.
type UnaryOp uint8

// Recognised unary operators.
const (
	UnaryNot UnaryOp = iota // bitwise/logical NOT
	UnaryNeg                // arithmetic negation
	UnaryReduceAnd
	UnaryReduceOr
	UnaryReduceXor
)

// BinaryOp enumerates binary operators: arithmetic, bitwise, shift,
// comparison and logical.
type BinaryOp uint8

// Recognised binary operators.
const (
	BinaryAdd BinaryOp = iota
	BinarySub
	BinaryMul
	BinaryAnd
	BinaryOr
	BinaryXor
	BinaryShl
	BinaryShr
	BinaryEq
	BinaryNeq
	BinaryLt
	BinaryLe
	BinaryGt
	BinaryGe
	BinaryLogicalAnd
	BinaryLogicalOr
)

// Expr is a tagged sum over the expression grammar. Subexpressions are
// pointers since Go structs cannot be directly self-referential; this
// mirrors how the teacher represents its own term trees
// (pkg/ir/term.go) as an interface hierarchy, simplified here to one
// struct per the "Tagged variants" design note (spec §9).
type Expr struct {
	Kind ExprKind
	Type TypeId
	// ExprSignal.
	Ref SignalRef
	// ExprLiteral.
	Literal logic.Vector
	// ExprUnary.
	UnOp     UnaryOp
	Operand  *Expr
	// ExprBinary.
	BinOp BinaryOp
	Lhs   *Expr
	Rhs   *Expr
	// ExprTernary.
	Cond *Expr
	Then *Expr
	Else *Expr
	// ExprFuncCall.
	FuncName string
	Args     []*Expr
	// ExprConcat / ExprRepeat.
	Parts []*Expr
	Count uint
	// ExprIndex / ExprSlice.
	Base *Expr
	High uint
	Low  uint
}

// SignalExpr constructs an ExprSignal node.
func SignalExpr(ref SignalRef, t TypeId) *Expr {
	return &Expr{Kind: ExprSignal, Ref: ref, Type: t}
}

// LiteralExpr constructs an ExprLiteral node.
func LiteralExpr(v logic.Vector, t TypeId) *Expr {
	return &Expr{Kind: ExprLiteral, Literal: v, Type: t}
}

// UnaryExpr constructs an ExprUnary node.
func UnaryExpr(op UnaryOp, operand *Expr, t TypeId) *Expr {
	return &Expr{Kind: ExprUnary, UnOp: op, Operand: operand, Type: t}
}

// BinaryExpr constructs an ExprBinary node.
func BinaryExpr(op BinaryOp, lhs, rhs *Expr, t TypeId) *Expr {
	return &Expr{Kind: ExprBinary, BinOp: op, Lhs: lhs, Rhs: rhs, Type: t}
}

// TernaryExpr constructs an ExprTernary node.
func TernaryExpr(cond, then, els *Expr, t TypeId) *Expr {
	return &Expr{Kind: ExprTernary, Cond: cond, Then: then, Else: els, Type: t}
}
