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
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/lint"
)

// LatchInferred flags a combinational process containing an If without a
// full Else (or a Case without a Default) that assigns a signal in the
// covered branch (W106): on the uncovered path that signal holds its
// previous value, which synthesises to an inferred latch rather than the
// intended combinational logic.
type LatchInferred struct{}

// Code implements lint.Rule.
func (LatchInferred) Code() diag.Code { return diag.W106LatchInferred }

// Name implements lint.Rule.
func (LatchInferred) Name() string { return "latch-inferred" }

// Description implements lint.Rule.
func (LatchInferred) Description() string {
	return "combinational process has a conditional assignment without full branch coverage"
}

// DefaultSeverity implements lint.Rule.
func (LatchInferred) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (LatchInferred) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	moduleId, _ := design.FindModule(module.Name)
	//
	module.Processes.All(func(id arena.Id, p ir.Process) bool {
		if p.Kind != ir.Combinational {
			return true
		}
		//
		reported := false
		lint.WalkStmt(p.Body, func(s *ir.Stmt) {
			if reported {
				return
			}
			switch s.Kind {
			case ir.StmtIf:
				if len(lint.CollectWrittenSignals(s.Then, nil)) > 0 && !lint.StmtHasFullElseCoverage(s) {
					reported = true
				}
			case ir.StmtCase:
				if s.Default == nil {
					for _, arm := range s.Arms {
						if len(lint.CollectWrittenSignals(arm.Body, nil)) > 0 {
							reported = true
							break
						}
					}
				}
			}
		})
		if reported {
			span := design.Source.Process(moduleId, ir.ProcessId(id))
			sink.Emit(diag.New(diag.Warning, diag.W106LatchInferred, span,
				"incomplete conditional assignment infers a latch"))
		}
		return true
	})
}
