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
package elaborate

import (
	"fmt"

	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/frontend"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/logic"
)

// moduleCtx carries the state needed to lower one frontend.ModuleDecl's body
// into ir terms: the module under construction, its parameter environment,
// and the name→SignalId bindings built up as ports and signals are
// allocated.
type moduleCtx struct {
	e      *elaborator
	module *ir.Module
	modId  ir.ModuleId
	sigMap map[string]ir.SignalId
	params map[string]uint64
}

func (ctx *moduleCtx) signalWidth(id ir.SignalId) uint {
	sig := ctx.module.Signal(id)
	return ctx.e.design.Types.Get(sig.Type).Width
}

func (ctx *moduleCtx) bitVecType(width uint, signed bool) ir.TypeId {
	if width == 1 && !signed {
		return ctx.e.design.Types.Intern(ir.BitType)
	}
	return ctx.e.design.Types.Intern(ir.BitVecType(width, signed))
}

func (ctx *moduleCtx) lookupSignal(name string) (ir.SignalId, bool) {
	id, ok := ctx.sigMap[name]
	return id, ok
}

// evalWidth evaluates an (optional) pre-elaboration width expression to a
// concrete bit count. A nil expression means "width 1" (spec §3.1 "Width
// expressions ... unadorned declarations default to one bit"). An expression
// that does not constant-fold falls back to 1 and is otherwise left for the
// E209 diagnostic emitted at the point the value mattered (parameter default
// or override).
func evalWidth(e *frontend.Expr, env map[string]uint64) uint {
	if e == nil {
		return 1
	}
	//
	v, ok := constEval(e, env)
	if !ok || v == 0 {
		return 1
	}
	//
	return uint(v)
}

// constEval folds a pre-elaboration expression to a uint64 against an
// environment of already-resolved parameter values (spec §4.2 "parameter
// defaults ... constant expressions over previously-declared parameters").
// ok is false when e is not a constant expression in this environment (an
// unresolved identifier, or a construct that isn't foldable at all, such as
// a signal read).
func constEval(e *frontend.Expr, env map[string]uint64) (uint64, bool) {
	if e == nil {
		return 0, false
	}
	//
	switch e.Kind {
	case frontend.ExprNumber:
		return e.Value, true
	case frontend.ExprIdent:
		v, ok := env[e.Name]
		return v, ok
	case frontend.ExprUnary:
		v, ok := constEval(e.Operand, env)
		if !ok {
			return 0, false
		}
		//
		switch e.UnOp {
		case ir.UnaryNot:
			return ^v, true
		case ir.UnaryNeg:
			return -v, true
		case ir.UnaryReduceAnd, ir.UnaryReduceOr, ir.UnaryReduceXor:
			return 0, false
		default:
			return 0, false
		}
	case frontend.ExprBinary:
		lhs, ok := constEval(e.Lhs, env)
		if !ok {
			return 0, false
		}
		//
		rhs, ok := constEval(e.Rhs, env)
		if !ok {
			return 0, false
		}
		//
		switch e.BinOp {
		case ir.BinaryAdd:
			return lhs + rhs, true
		case ir.BinarySub:
			return lhs - rhs, true
		case ir.BinaryMul:
			return lhs * rhs, true
		case ir.BinaryAnd:
			return lhs & rhs, true
		case ir.BinaryOr:
			return lhs | rhs, true
		case ir.BinaryXor:
			return lhs ^ rhs, true
		case ir.BinaryShl:
			return lhs << rhs, true
		case ir.BinaryShr:
			return lhs >> rhs, true
		case ir.BinaryEq:
			return boolUint(lhs == rhs), true
		case ir.BinaryNeq:
			return boolUint(lhs != rhs), true
		case ir.BinaryLt:
			return boolUint(lhs < rhs), true
		case ir.BinaryLe:
			return boolUint(lhs <= rhs), true
		case ir.BinaryGt:
			return boolUint(lhs > rhs), true
		case ir.BinaryGe:
			return boolUint(lhs >= rhs), true
		case ir.BinaryLogicalAnd:
			return boolUint(lhs != 0 && rhs != 0), true
		case ir.BinaryLogicalOr:
			return boolUint(lhs != 0 || rhs != 0), true
		default:
			return 0, false
		}
	default:
		// Ternary/concat/index/slice/call are never treated as constant in
		// this elaborator: none of them arise in the contexts (widths,
		// parameter defaults/overrides, generate conditions) that call
		// constEval.
		return 0, false
	}
}

func boolUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// resolveExpr lowers a pre-elaboration expression into an ir.Expr, resolving
// identifiers against ctx's parameter environment first and its signal
// bindings second (spec §4.2 step 4(d): "concurrent assignments and process
// bodies are lowered by resolving every identifier against the module's
// signal and parameter namespace"). An identifier found in neither is
// reported as E204 and replaced by a 1-bit X constant so elaboration can
// continue.
func (ctx *moduleCtx) resolveExpr(e *frontend.Expr) *ir.Expr {
	if e == nil {
		return nil
	}
	//
	switch e.Kind {
	case frontend.ExprIdent:
		if v, ok := ctx.params[e.Name]; ok {
			return ir.LiteralExpr(logic.FromUint(32, v), ctx.bitVecType(32, false))
		}
		//
		if sigId, ok := ctx.lookupSignal(e.Name); ok {
			t := ctx.module.Signal(sigId).Type
			return ir.SignalExpr(ir.Sig(sigId), t)
		}
		//
		ctx.e.sink.Emit(diag.New(diag.Error, diag.E204UnknownSignal, e.Span,
			fmt.Sprintf("unknown identifier %q", e.Name)))
		//
		return ir.LiteralExpr(logic.NewVector(1, logic.X), ctx.bitVecType(1, false))
	case frontend.ExprNumber:
		width := e.Width
		if width == 0 {
			width = 32
		}
		return ir.LiteralExpr(logic.FromUint(width, e.Value), ctx.bitVecType(width, false))
	case frontend.ExprUnary:
		operand := ctx.resolveExpr(e.Operand)
		return ir.UnaryExpr(e.UnOp, operand, operand.Type)
	case frontend.ExprBinary:
		lhs := ctx.resolveExpr(e.Lhs)
		rhs := ctx.resolveExpr(e.Rhs)
		return ir.BinaryExpr(e.BinOp, lhs, rhs, lhs.Type)
	case frontend.ExprTernary:
		cond := ctx.resolveExpr(e.Cond)
		then := ctx.resolveExpr(e.Then)
		els := ctx.resolveExpr(e.Else)
		return ir.TernaryExpr(cond, then, els, then.Type)
	case frontend.ExprConcat:
		parts := make([]*ir.Expr, len(e.Parts))
		for i, p := range e.Parts {
			parts[i] = ctx.resolveExpr(p)
		}
		return &ir.Expr{Kind: ir.ExprConcat, Parts: parts}
	case frontend.ExprIndex:
		base := ctx.resolveExpr(e.Base)
		idx, _ := constEval(e.High, ctx.params)
		return &ir.Expr{Kind: ir.ExprIndex, Base: base, High: uint(idx), Low: uint(idx)}
	case frontend.ExprSlice:
		base := ctx.resolveExpr(e.Base)
		hi, _ := constEval(e.High, ctx.params)
		lo, _ := constEval(e.Low, ctx.params)
		return &ir.Expr{Kind: ir.ExprSlice, Base: base, High: uint(hi), Low: uint(lo)}
	case frontend.ExprCall:
		args := make([]*ir.Expr, len(e.Args))
		for i, a := range e.Args {
			args[i] = ctx.resolveExpr(a)
		}
		return &ir.Expr{Kind: ir.ExprFuncCall, FuncName: e.Func, Args: args}
	default:
		ctx.e.sink.Emit(diag.New(diag.Error, diag.E210Unsupported, e.Span,
			"unsupported expression form"))
		return ir.LiteralExpr(logic.NewVector(1, logic.X), ctx.bitVecType(1, false))
	}
}

// resolveLValue lowers a pre-elaboration assignment target into an
// ir.SignalRef, reporting E204 for a name not bound to any declared signal.
func (ctx *moduleCtx) resolveLValue(lv frontend.LValue) ir.SignalRef {
	switch lv.Kind {
	case frontend.LValueIdent:
		sigId, ok := ctx.lookupSignal(lv.Name)
		if !ok {
			ctx.e.sink.Emit(diag.New(diag.Error, diag.E204UnknownSignal, lv.Span,
				fmt.Sprintf("unknown signal %q", lv.Name)))
			return ir.ConstRef(logic.NewVector(1, logic.X))
		}
		return ir.Sig(sigId)
	case frontend.LValueSlice:
		sigId, ok := ctx.lookupSignal(lv.Name)
		if !ok {
			ctx.e.sink.Emit(diag.New(diag.Error, diag.E204UnknownSignal, lv.Span,
				fmt.Sprintf("unknown signal %q", lv.Name)))
			return ir.ConstRef(logic.NewVector(1, logic.X))
		}
		//
		hi, _ := constEval(lv.High, ctx.params)
		lo, _ := constEval(lv.Low, ctx.params)
		return ir.SliceOf(sigId, uint(hi), uint(lo))
	case frontend.LValueConcat:
		parts := make([]ir.SignalRef, len(lv.Parts))
		for i, p := range lv.Parts {
			parts[i] = ctx.resolveLValue(p)
		}
		return ir.Concat(parts...)
	default:
		return ir.ConstRef(logic.NewVector(1, logic.X))
	}
}

// resolveStmt lowers a pre-elaboration statement tree into ir.Stmt.
func (ctx *moduleCtx) resolveStmt(s *frontend.Stmt) *ir.Stmt {
	if s == nil {
		return ir.Nop()
	}
	//
	switch s.Kind {
	case frontend.StmtAssign:
		return ir.Assign(ctx.resolveLValue(s.Target), ctx.resolveExpr(s.Expr))
	case frontend.StmtIf:
		var els *ir.Stmt
		if s.Else != nil {
			els = ctx.resolveStmt(s.Else)
		}
		return ir.If(ctx.resolveExpr(s.Cond), ctx.resolveStmt(s.Then), els)
	case frontend.StmtCase:
		arms := make([]ir.CaseArm, len(s.Arms))
		for i, a := range s.Arms {
			patterns := make([]*ir.Expr, len(a.Patterns))
			for j, p := range a.Patterns {
				patterns[j] = ctx.resolveExpr(p)
			}
			arms[i] = ir.CaseArm{Patterns: patterns, Body: ctx.resolveStmt(a.Body)}
		}
		//
		var def *ir.Stmt
		if s.Default != nil {
			def = ctx.resolveStmt(s.Default)
		}
		//
		return &ir.Stmt{Kind: ir.StmtCase, Subject: ctx.resolveExpr(s.Subject), Arms: arms, Default: def}
	case frontend.StmtBlock:
		stmts := make([]*ir.Stmt, len(s.Stmts))
		for i, inner := range s.Stmts {
			stmts[i] = ctx.resolveStmt(inner)
		}
		return ir.Block(stmts...)
	case frontend.StmtAssertion:
		return &ir.Stmt{Kind: ir.StmtAssertion, AssertKind: s.AssertKind, Message: s.Message}
	case frontend.StmtNop:
		return ir.Nop()
	default:
		return ir.Nop()
	}
}
