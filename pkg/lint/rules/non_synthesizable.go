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

// NonSynthesizable flags process constructs with no hardware
// correspondence: an explicit timing delay (W110), simulation-only by
// construction since real gates have no `#10`-style wait.
type NonSynthesizable struct{}

// Code implements lint.Rule.
func (NonSynthesizable) Code() diag.Code { return diag.W110NonSynthesizable }

// Name implements lint.Rule.
func (NonSynthesizable) Name() string { return "non-synthesizable" }

// Description implements lint.Rule.
func (NonSynthesizable) Description() string {
	return "process contains a construct with no synthesizable hardware equivalent"
}

// DefaultSeverity implements lint.Rule.
func (NonSynthesizable) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (NonSynthesizable) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	moduleId, _ := design.FindModule(module.Name)
	//
	module.Processes.All(func(id arena.Id, p ir.Process) bool {
		found := false
		lint.WalkStmt(p.Body, func(s *ir.Stmt) {
			if found {
				return
			}
			if s.Kind == ir.StmtDelay && s.DurationFs != nil {
				found = true
			}
		})
		if found {
			span := design.Source.Process(moduleId, ir.ProcessId(id))
			sink.Emit(diag.New(diag.Warning, diag.W110NonSynthesizable, span,
				"explicit timing delay has no synthesizable equivalent"))
		}
		return true
	})
}
