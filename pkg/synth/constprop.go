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
package synth

import (
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/lint"
	"github.com/aion-eda/aion/pkg/logic"
)

// ConstantPropagate folds every expression in module's concurrent
// assignments and process bodies that turns out to depend only on
// literals, mutating the expression trees in place (spec §4.4 "constant
// propagation").
//
// This mirrors the teacher's constant-propagation shape
// (pkg/mir/const.go, constantPropagationForTerm): fold each operand
// first, then fold the node itself if every operand it depends on became
// constant. The teacher dispatches over an interface-hierarchy Term type;
// here the same recursive fold-bottom-up strategy runs over the tagged-
// union ir.Expr instead.
func ConstantPropagate(design *ir.Design, module *ir.Module) bool {
	changed := false

	for i := range module.Assigns {
		if foldExpr(design, module.Assigns[i].Expr) {
			changed = true
		}
	}

	module.Processes.All(func(id arena.Id, p ir.Process) bool {
		if foldStmt(design, p.Body) {
			changed = true
		}
		return true
	})

	return changed
}

// foldStmt folds every expression reachable from stmt (its own direct
// expressions plus every nested statement's), returning whether anything
// changed.
func foldStmt(design *ir.Design, stmt *ir.Stmt) bool {
	changed := false

	lint.WalkStmt(stmt, func(s *ir.Stmt) {
		for _, e := range lint.StmtExprs(s) {
			if foldExpr(design, e) {
				changed = true
			}
		}
	})

	return changed
}

// foldExpr folds e in place to an ExprLiteral (or, for a constant-selected
// ternary, to its chosen branch) whenever every subexpression it depends on
// is itself constant. Returns whether e or any of its descendants changed.
func foldExpr(design *ir.Design, e *ir.Expr) bool {
	if e == nil {
		return false
	}

	changed := false

	switch e.Kind {
	case ir.ExprUnary:
		changed = foldExpr(design, e.Operand) || changed
		if lit, ok := asLiteral(e.Operand); ok {
			if v, ok := evalUnary(e.UnOp, lit); ok {
				*e = *ir.LiteralExpr(v, e.Type)
				return true
			}
		}
	case ir.ExprBinary:
		changed = foldExpr(design, e.Lhs) || changed
		changed = foldExpr(design, e.Rhs) || changed
		lhs, lok := asLiteral(e.Lhs)
		rhs, rok := asLiteral(e.Rhs)
		if lok && rok {
			width := design.Types.Get(e.Type).Width
			if v, ok := evalBinary(e.BinOp, lhs, rhs, width); ok {
				*e = *ir.LiteralExpr(v, e.Type)
				return true
			}
		}
	case ir.ExprTernary:
		changed = foldExpr(design, e.Cond) || changed
		changed = foldExpr(design, e.Then) || changed
		changed = foldExpr(design, e.Else) || changed
		if lit, ok := asLiteral(e.Cond); ok {
			if u, ok := lit.ToUint(); ok {
				if u != 0 {
					*e = *e.Then
				} else {
					*e = *e.Else
				}
				return true
			}
		}
	case ir.ExprConcat, ir.ExprRepeat:
		for _, p := range e.Parts {
			changed = foldExpr(design, p) || changed
		}
	case ir.ExprFuncCall:
		for _, a := range e.Args {
			changed = foldExpr(design, a) || changed
		}
	case ir.ExprIndex, ir.ExprSlice:
		changed = foldExpr(design, e.Base) || changed
	}

	return changed
}

// asLiteral reports whether e is a resolved ExprLiteral node, returning its
// value.
func asLiteral(e *ir.Expr) (logic.Vector, bool) {
	if e != nil && e.Kind == ir.ExprLiteral {
		return e.Literal, true
	}
	return logic.Vector{}, false
}
