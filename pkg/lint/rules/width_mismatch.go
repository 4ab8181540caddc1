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

// WidthMismatch flags an assignment whose right-hand side width differs
// from its target width (W103). Narrowing is also reported by Truncation
// with the more specific diagnosis; this rule covers the general case,
// including widening, since either direction is worth a second look.
type WidthMismatch struct{}

// Code implements lint.Rule.
func (WidthMismatch) Code() diag.Code { return diag.W103WidthMismatch }

// Name implements lint.Rule.
func (WidthMismatch) Name() string { return "width-mismatch" }

// Description implements lint.Rule.
func (WidthMismatch) Description() string {
	return "assignment target and source widths differ"
}

// DefaultSeverity implements lint.Rule.
func (WidthMismatch) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (WidthMismatch) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	signalWidth := func(id ir.SignalId) uint { return lint.SignalWidth(design, module, id) }
	//
	check := func(target ir.SignalRef, expr *ir.Expr, span source.Span) {
		tw, ew := target.Width(signalWidth), lint.ExprWidth(design, expr)
		if tw == ew || ew == 0 {
			return
		}
		//
		msg := fmt.Sprintf("target width %d does not match source width %d", tw, ew)
		sink.Emit(diag.New(diag.Warning, diag.W103WidthMismatch, span, msg))
	}
	//
	moduleId, _ := design.FindModule(module.Name)
	//
	for _, a := range module.Assigns {
		check(a.Target, a.Expr, design.Source.Module(moduleId))
	}
	//
	module.Processes.All(func(_ arena.Id, p ir.Process) bool {
		lint.WalkStmt(p.Body, func(s *ir.Stmt) {
			if s.Kind == ir.StmtAssign {
				check(s.Target, s.Expr, design.Source.Module(moduleId))
			}
		})
		return true
	})
}
