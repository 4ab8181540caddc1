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

import "github.com/aion-eda/aion/pkg/ir"

// CommonSubexpressionEliminate canonicalises concurrent assignments that
// compute the same expression and redirects the later ones to read the
// earlier one's target signal instead of recomputing it (spec §4.4 "common
// subexpression elimination ... redirects fan-out to a canonical
// representative"). The first assignment found with a given expression
// shape is the canonical representative; later duplicates keep their own
// target signal (so anything already bound to it still resolves) but their
// driving expression becomes a plain reference to the canonical signal.
func CommonSubexpressionEliminate(module *ir.Module) bool {
	changed := false

	type seen struct {
		expr   *ir.Expr
		signal ir.SignalId
	}
	var seenExprs []seen

	for i := range module.Assigns {
		a := &module.Assigns[i]
		if a.Target.Kind != ir.RefSignal {
			continue
		}

		matched := false
		for _, s := range seenExprs {
			if s.signal == a.Target.Signal {
				continue
			}
			if exprEqual(s.expr, a.Expr) {
				a.Expr = ir.SignalExpr(ir.Sig(s.signal), a.Expr.Type)
				changed = true
				matched = true
				break
			}
		}
		if !matched {
			seenExprs = append(seenExprs, seen{expr: a.Expr, signal: a.Target.Signal})
		}
	}

	return changed
}

// exprEqual reports whether two expression trees are structurally
// identical (same shape, same leaves), independent of which Assignment or
// Process they were found in.
func exprEqual(a, b *ir.Expr) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Kind != b.Kind || a.Type != b.Type {
		return false
	}

	switch a.Kind {
	case ir.ExprSignal:
		return refEqual(a.Ref, b.Ref)
	case ir.ExprLiteral:
		return a.Literal.Equal(b.Literal)
	case ir.ExprUnary:
		return a.UnOp == b.UnOp && exprEqual(a.Operand, b.Operand)
	case ir.ExprBinary:
		return a.BinOp == b.BinOp && exprEqual(a.Lhs, b.Lhs) && exprEqual(a.Rhs, b.Rhs)
	case ir.ExprTernary:
		return exprEqual(a.Cond, b.Cond) && exprEqual(a.Then, b.Then) && exprEqual(a.Else, b.Else)
	case ir.ExprFuncCall:
		if a.FuncName != b.FuncName || len(a.Args) != len(b.Args) {
			return false
		}
		for i := range a.Args {
			if !exprEqual(a.Args[i], b.Args[i]) {
				return false
			}
		}
		return true
	case ir.ExprConcat, ir.ExprRepeat:
		if a.Count != b.Count || len(a.Parts) != len(b.Parts) {
			return false
		}
		for i := range a.Parts {
			if !exprEqual(a.Parts[i], b.Parts[i]) {
				return false
			}
		}
		return true
	case ir.ExprIndex, ir.ExprSlice:
		return a.High == b.High && a.Low == b.Low && exprEqual(a.Base, b.Base)
	default:
		return false
	}
}

// refEqual reports whether two signal references denote the same thing.
func refEqual(a, b ir.SignalRef) bool {
	if a.Kind != b.Kind {
		return false
	}
	switch a.Kind {
	case ir.RefSignal:
		return a.Signal == b.Signal
	case ir.RefSlice:
		return a.Signal == b.Signal && a.High == b.High && a.Low == b.Low
	case ir.RefConcat:
		if len(a.Parts) != len(b.Parts) {
			return false
		}
		for i := range a.Parts {
			if !refEqual(a.Parts[i], b.Parts[i]) {
				return false
			}
		}
		return true
	case ir.RefConst:
		return a.Const.Equal(b.Const)
	default:
		return false
	}
}
