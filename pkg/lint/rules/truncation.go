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

// Truncation flags an assignment whose source is wider than its target
// (W107): the high bits are silently dropped, a frequent source of
// off-by-width bugs.
type Truncation struct{}

// Code implements lint.Rule.
func (Truncation) Code() diag.Code { return diag.W107Truncation }

// Name implements lint.Rule.
func (Truncation) Name() string { return "truncation" }

// Description implements lint.Rule.
func (Truncation) Description() string {
	return "assignment source is wider than its target and is silently truncated"
}

// DefaultSeverity implements lint.Rule.
func (Truncation) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (Truncation) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	signalWidth := func(id ir.SignalId) uint { return lint.SignalWidth(design, module, id) }
	//
	check := func(target ir.SignalRef, expr *ir.Expr, span source.Span) {
		tw, ew := target.Width(signalWidth), lint.ExprWidth(design, expr)
		if ew <= tw {
			return
		}
		//
		msg := fmt.Sprintf("source width %d truncated to target width %d", ew, tw)
		sink.Emit(diag.New(diag.Warning, diag.W107Truncation, span, msg))
	}
	//
	moduleId, _ := design.FindModule(module.Name)
	modSpan := design.Source.Module(moduleId)
	//
	for _, a := range module.Assigns {
		check(a.Target, a.Expr, modSpan)
	}
	//
	module.Processes.All(func(_ arena.Id, p ir.Process) bool {
		lint.WalkStmt(p.Body, func(s *ir.Stmt) {
			if s.Kind == ir.StmtAssign {
				check(s.Target, s.Expr, modSpan)
			}
		})
		return true
	})
}
