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
package rules

import (
	"fmt"

	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/lint"
	"github.com/aion-eda/aion/pkg/source"
)

// MagicNumber flags a literal other than 0 or 1 used directly in an
// expression rather than through a named parameter (C203). Individual
// Expr nodes carry no span of their own (only Module/Signal/Cell/Process
// declarations are tracked in the source map), so a flagged literal is
// reported against the enclosing module's span; see DESIGN.md's recorded
// decision on this fallback.
type MagicNumber struct{}

// Code implements lint.Rule.
func (MagicNumber) Code() diag.Code { return diag.C203MagicNumber }

// Name implements lint.Rule.
func (MagicNumber) Name() string { return "magic-number" }

// Description implements lint.Rule.
func (MagicNumber) Description() string {
	return "literal constant used directly in an expression instead of a named parameter"
}

// DefaultSeverity implements lint.Rule.
func (MagicNumber) DefaultSeverity() diag.Severity { return diag.Note }

// Check implements lint.Rule.
func (MagicNumber) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	span := source.Dummy
	if moduleId, ok := design.FindModule(module.Name); ok {
		span = design.Source.Module(moduleId)
	}
	//
	visit := func(e *ir.Expr) {
		lint.WalkExpr(e, func(node *ir.Expr) {
			if node.Kind != ir.ExprLiteral {
				return
			}
			v, ok := node.Literal.ToUint()
			if !ok || v == 0 || v == 1 {
				return
			}
			//
			msg := fmt.Sprintf("magic number %d used directly in an expression", v)
			sink.Emit(diag.New(diag.Note, diag.C203MagicNumber, span, msg))
		})
	}
	//
	for _, a := range module.Assigns {
		visit(a.Expr)
	}
	module.Processes.All(func(_ arena.Id, p ir.Process) bool {
		lint.WalkStmt(p.Body, func(s *ir.Stmt) {
			for _, e := range lint.StmtExprs(s) {
				visit(e)
			}
		})
		return true
	})
}
