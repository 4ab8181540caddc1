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
	"strings"

	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
)

// InconsistentStyle flags a module whose signal names mix snake_case and
// camelCase within the same scope (C204), rather than committing to one
// convention throughout.
type InconsistentStyle struct{}

// Code implements lint.Rule.
func (InconsistentStyle) Code() diag.Code { return diag.C204InconsistentStyle }

// Name implements lint.Rule.
func (InconsistentStyle) Name() string { return "inconsistent-style" }

// Description implements lint.Rule.
func (InconsistentStyle) Description() string {
	return "module mixes snake_case and camelCase signal names"
}

// DefaultSeverity implements lint.Rule.
func (InconsistentStyle) DefaultSeverity() diag.Severity { return diag.Note }

// Check implements lint.Rule.
func (InconsistentStyle) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	var sawSnake, sawCamel bool
	//
	module.Signals.All(func(_ arena.Id, s ir.Signal) bool {
		name := interner.String(s.Name)
		if strings.Contains(name, "_") {
			sawSnake = true
		}
		if hasUppercase(name) {
			sawCamel = true
		}
		return true
	})
	//
	if sawSnake && sawCamel {
		moduleId, _ := design.FindModule(module.Name)
		sink.Emit(diag.New(diag.Note, diag.C204InconsistentStyle, design.Source.Module(moduleId),
			"module mixes snake_case and camelCase signal names"))
	}
}
