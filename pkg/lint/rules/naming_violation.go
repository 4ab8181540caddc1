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

// NamingViolation flags signal names that mix in uppercase letters (C201),
// the convention violation against an all-lower snake_case house style.
type NamingViolation struct{}

// Code implements lint.Rule.
func (NamingViolation) Code() diag.Code { return diag.C201NamingViolation }

// Name implements lint.Rule.
func (NamingViolation) Name() string { return "naming-violation" }

// Description implements lint.Rule.
func (NamingViolation) Description() string {
	return "signal name does not follow lower_snake_case convention"
}

// DefaultSeverity implements lint.Rule.
func (NamingViolation) DefaultSeverity() diag.Severity { return diag.Note }

// Check implements lint.Rule.
func (NamingViolation) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	moduleId, _ := design.FindModule(module.Name)
	//
	module.Signals.All(func(id arena.Id, s ir.Signal) bool {
		name := interner.String(s.Name)
		if !hasUppercase(name) {
			return true
		}
		//
		span := design.Source.Signal(moduleId, ir.SignalId(id))
		msg := fmt.Sprintf("signal %q does not follow lower_snake_case", name)
		sink.Emit(diag.New(diag.Note, diag.C201NamingViolation, span, msg))
		//
		return true
	})
}

func hasUppercase(s string) bool {
	for _, r := range s {
		if r >= 'A' && r <= 'Z' {
			return true
		}
	}
	return false
}
