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

// IncompleteSensitivity flags a combinational process whose explicit
// signal-list sensitivity omits a signal its body actually reads (W105):
// the classic simulation/synthesis mismatch of `always @(a, b)` reading
// `c` too.
type IncompleteSensitivity struct{}

// Code implements lint.Rule.
func (IncompleteSensitivity) Code() diag.Code { return diag.W105IncompleteSensitivty }

// Name implements lint.Rule.
func (IncompleteSensitivity) Name() string { return "incomplete-sensitivity" }

// Description implements lint.Rule.
func (IncompleteSensitivity) Description() string {
	return "combinational process sensitivity list omits a signal its body reads"
}

// DefaultSeverity implements lint.Rule.
func (IncompleteSensitivity) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (IncompleteSensitivity) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	moduleId, _ := design.FindModule(module.Name)
	//
	module.Processes.All(func(id arena.Id, p ir.Process) bool {
		if p.Kind != ir.Combinational || p.Sensitivity.Kind != ir.SensitivitySignalList {
			return true
		}
		//
		listed := make(map[ir.SignalId]bool, len(p.Sensitivity.Signals))
		for _, s := range p.Sensitivity.Signals {
			listed[s] = true
		}
		//
		reported := false
		for _, read := range lint.CollectReadSignals(p.Body, nil) {
			if listed[read] || reported {
				continue
			}
			//
			span := design.Source.Process(moduleId, ir.ProcessId(id))
			sink.Emit(diag.New(diag.Warning, diag.W105IncompleteSensitivty, span,
				"sensitivity list omits a signal read by this process"))
			reported = true
		}
		return true
	})
}
