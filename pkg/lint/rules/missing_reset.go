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
)

// MissingReset flags a sequential process with neither an asynchronous
// reset edge in its sensitivity list nor a synchronous reset check as the
// outermost statement of its body (W104). Both shapes are common register
// idioms; lacking either, a register has no known way to reach a defined
// initial state.
type MissingReset struct{}

// Code implements lint.Rule.
func (MissingReset) Code() diag.Code { return diag.W104MissingReset }

// Name implements lint.Rule.
func (MissingReset) Name() string { return "missing-reset" }

// Description implements lint.Rule.
func (MissingReset) Description() string {
	return "sequential process has no synchronous or asynchronous reset"
}

// DefaultSeverity implements lint.Rule.
func (MissingReset) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (MissingReset) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	moduleId, _ := design.FindModule(module.Name)
	//
	module.Processes.All(func(id arena.Id, p ir.Process) bool {
		if p.Kind != ir.Sequential {
			return true
		}
		if p.Sensitivity.Kind != ir.SensitivityEdgeList {
			return true
		}
		if len(p.Sensitivity.Edges) > 1 {
			// An additional edge beyond the clock is an async reset.
			return true
		}
		if p.Body != nil && p.Body.Kind == ir.StmtIf {
			// A leading If is assumed to be the synchronous reset check.
			return true
		}
		//
		span := design.Source.Process(moduleId, ir.ProcessId(id))
		sink.Emit(diag.New(diag.Warning, diag.W104MissingReset, span, "register has no reset"))
		//
		return true
	})
}
