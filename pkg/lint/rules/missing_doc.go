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
)

// MissingDoc flags a module with a declared interface but a completely
// empty body (C202): no signals, no concurrent assignments, no processes,
// no instances. The IR carries no source comment text to check for an
// actual doc comment, so this approximates "undocumented" structurally —
// a real design's module is rarely left with nothing behind its ports.
type MissingDoc struct{}

// Code implements lint.Rule.
func (MissingDoc) Code() diag.Code { return diag.C202MissingDoc }

// Name implements lint.Rule.
func (MissingDoc) Name() string { return "missing-doc" }

// Description implements lint.Rule.
func (MissingDoc) Description() string {
	return "module declares ports but has an entirely empty body"
}

// DefaultSeverity implements lint.Rule.
func (MissingDoc) DefaultSeverity() diag.Severity { return diag.Note }

// Check implements lint.Rule.
func (MissingDoc) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	if len(module.Ports) == 0 {
		return
	}
	if module.Cells.Len() > 0 || module.Processes.Len() > 0 || len(module.Assigns) > 0 {
		return
	}
	//
	internalSignals := false
	module.Signals.All(func(_ arena.Id, s ir.Signal) bool {
		if s.Kind != ir.Port {
			internalSignals = true
			return false
		}
		return true
	})
	if internalSignals {
		return
	}
	//
	moduleId, _ := design.FindModule(module.Name)
	msg := fmt.Sprintf("module %q declares ports but has an empty body", interner.String(module.Name))
	sink.Emit(diag.New(diag.Note, diag.C202MissingDoc, design.Source.Module(moduleId), msg))
}
