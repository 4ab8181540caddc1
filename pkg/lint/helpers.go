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

// Package lint implements the rule engine of spec §4.3: stateless rule
// objects registered once, run over every module of a Design, with a
// deny/allow/warn policy applied at emit time.
package lint

import (
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/ir"
)

// CollectReadSignals appends every SignalId read by stmt (and its nested
// statements) onto out and returns the result. This is one of the shared
// structural helpers named in spec §4.3.
func CollectReadSignals(stmt *ir.Stmt, out []ir.SignalId) []ir.SignalId {
	if stmt == nil {
		return out
	}
	//
	switch stmt.Kind {
	case ir.StmtAssign:
		out = collectExprSignals(stmt.Expr, out)
	case ir.StmtIf:
		out = collectExprSignals(stmt.Cond, out)
		out = CollectReadSignals(stmt.Then, out)
		out = CollectReadSignals(stmt.Else, out)
	case ir.StmtCase:
		out = collectExprSignals(stmt.Subject, out)
		for _, arm := range stmt.Arms {
			for _, p := range arm.Patterns {
				out = collectExprSignals(p, out)
			}
			out = CollectReadSignals(arm.Body, out)
		}
		out = CollectReadSignals(stmt.Default, out)
	case ir.StmtBlock:
		for _, s := range stmt.Stmts {
			out = CollectReadSignals(s, out)
		}
	case ir.StmtWait, ir.StmtDelay, ir.StmtForever:
		out = CollectReadSignals(stmt.Body, out)
	case ir.StmtDisplay:
		for _, a := range stmt.Args {
			out = collectExprSignals(a, out)
		}
	}
	//
	return out
}

// CollectWrittenSignals appends every SignalId assigned to by stmt (and its
// nested statements) onto out and returns the result.
func CollectWrittenSignals(stmt *ir.Stmt, out []ir.SignalId) []ir.SignalId {
	if stmt == nil {
		return out
	}
	//
	switch stmt.Kind {
	case ir.StmtAssign:
		out = stmt.Target.Signals(out)
	case ir.StmtIf:
		out = CollectWrittenSignals(stmt.Then, out)
		out = CollectWrittenSignals(stmt.Else, out)
	case ir.StmtCase:
		for _, arm := range stmt.Arms {
			out = CollectWrittenSignals(arm.Body, out)
		}
		out = CollectWrittenSignals(stmt.Default, out)
	case ir.StmtBlock:
		for _, s := range stmt.Stmts {
			out = CollectWrittenSignals(s, out)
		}
	case ir.StmtWait, ir.StmtDelay, ir.StmtForever:
		out = CollectWrittenSignals(stmt.Body, out)
	}
	//
	return out
}

func collectExprSignals(e *ir.Expr, out []ir.SignalId) []ir.SignalId {
	if e == nil {
		return out
	}
	//
	switch e.Kind {
	case ir.ExprSignal:
		out = e.Ref.Signals(out)
	case ir.ExprUnary:
		out = collectExprSignals(e.Operand, out)
	case ir.ExprBinary:
		out = collectExprSignals(e.Lhs, out)
		out = collectExprSignals(e.Rhs, out)
	case ir.ExprTernary:
		out = collectExprSignals(e.Cond, out)
		out = collectExprSignals(e.Then, out)
		out = collectExprSignals(e.Else, out)
	case ir.ExprFuncCall:
		for _, a := range e.Args {
			out = collectExprSignals(a, out)
		}
	case ir.ExprConcat, ir.ExprRepeat:
		for _, p := range e.Parts {
			out = collectExprSignals(p, out)
		}
	case ir.ExprIndex, ir.ExprSlice:
		out = collectExprSignals(e.Base, out)
	}
	//
	return out
}

// CountDrivers counts the number of distinct structural drivers of signal
// within module: concurrent assignments targeting it, process assignments
// targeting it, and cell connections driving it as an Output/InOut.
func CountDrivers(module *ir.Module, signal ir.SignalId) int {
	count := 0
	//
	for _, a := range module.Assigns {
		if refTargets(a.Target, signal) {
			count++
		}
	}
	//
	module.Processes.All(func(_ arena.Id, p ir.Process) bool {
		for _, w := range CollectWrittenSignals(p.Body, nil) {
			if w == signal {
				count++
			}
		}
		return true
	})
	//
	module.Cells.All(func(_ arena.Id, c ir.Cell) bool {
		for _, conn := range c.Connections {
			if conn.Direction == ir.Output || conn.Direction == ir.InOut {
				if refTargets(conn.Signal, signal) {
					count++
				}
			}
		}
		return true
	})
	//
	return count
}

func refTargets(ref ir.SignalRef, signal ir.SignalId) bool {
	for _, s := range ref.Signals(nil) {
		if s == signal {
			return true
		}
	}
	return false
}

// WalkStmt invokes fn on stmt and every statement nested within it.
func WalkStmt(stmt *ir.Stmt, fn func(*ir.Stmt)) {
	if stmt == nil {
		return
	}
	//
	fn(stmt)
	//
	switch stmt.Kind {
	case ir.StmtIf:
		WalkStmt(stmt.Then, fn)
		WalkStmt(stmt.Else, fn)
	case ir.StmtCase:
		for _, arm := range stmt.Arms {
			WalkStmt(arm.Body, fn)
		}
		WalkStmt(stmt.Default, fn)
	case ir.StmtBlock:
		for _, s := range stmt.Stmts {
			WalkStmt(s, fn)
		}
	case ir.StmtWait, ir.StmtDelay, ir.StmtForever:
		WalkStmt(stmt.Body, fn)
	}
}

// WalkExpr invokes fn on e and every subexpression nested within it.
func WalkExpr(e *ir.Expr, fn func(*ir.Expr)) {
	if e == nil {
		return
	}
	//
	fn(e)
	//
	switch e.Kind {
	case ir.ExprUnary:
		WalkExpr(e.Operand, fn)
	case ir.ExprBinary:
		WalkExpr(e.Lhs, fn)
		WalkExpr(e.Rhs, fn)
	case ir.ExprTernary:
		WalkExpr(e.Cond, fn)
		WalkExpr(e.Then, fn)
		WalkExpr(e.Else, fn)
	case ir.ExprFuncCall:
		for _, a := range e.Args {
			WalkExpr(a, fn)
		}
	case ir.ExprConcat, ir.ExprRepeat:
		for _, p := range e.Parts {
			WalkExpr(p, fn)
		}
	case ir.ExprIndex, ir.ExprSlice:
		WalkExpr(e.Base, fn)
	}
}

// StmtExprs returns the direct (non-nested) expressions a statement carries:
// an assignment's assigned-value expression, an If's condition, a Case's
// subject and arm patterns, or a Display's arguments, not those of nested
// statements.
func StmtExprs(stmt *ir.Stmt) []*ir.Expr {
	switch stmt.Kind {
	case ir.StmtAssign:
		return []*ir.Expr{stmt.Expr}
	case ir.StmtIf:
		return []*ir.Expr{stmt.Cond}
	case ir.StmtCase:
		out := []*ir.Expr{stmt.Subject}
		for _, arm := range stmt.Arms {
			out = append(out, arm.Patterns...)
		}
		return out
	case ir.StmtDisplay:
		return stmt.Args
	default:
		return nil
	}
}

// SignalWidth returns the bit width of signal within module, resolved
// through design's shared type database.
func SignalWidth(design *ir.Design, module *ir.Module, signal ir.SignalId) uint {
	return design.Types.Get(module.Signal(signal).Type).Width
}

// ExprWidth returns the bit width of e's type, resolved through design's
// shared type database.
func ExprWidth(design *ir.Design, e *ir.Expr) uint {
	if e == nil {
		return 0
	}
	return design.Types.Get(e.Type).Width
}

// StmtHasFullElseCoverage reports whether an If statement has an Else
// branch (possibly itself an If, i.e. an else-if chain) rather than falling
// through — the structural precondition the latch-inferred rule checks for.
func StmtHasFullElseCoverage(stmt *ir.Stmt) bool {
	if stmt == nil || stmt.Kind != ir.StmtIf {
		return false
	}
	//
	return stmt.Else != nil
}
