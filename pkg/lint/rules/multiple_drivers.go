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
)

// MultipleDrivers flags a signal structurally driven from more than one
// source (W109): more than one concurrent assignment, process, or cell
// output targeting it. This is a conservative, structural count — it does
// not attempt to prove the sources are mutually exclusive.
type MultipleDrivers struct{}

// Code implements lint.Rule.
func (MultipleDrivers) Code() diag.Code { return diag.W109MultipleDrivers }

// Name implements lint.Rule.
func (MultipleDrivers) Name() string { return "multiple-drivers" }

// Description implements lint.Rule.
func (MultipleDrivers) Description() string {
	return "signal has more than one structural driver"
}

// DefaultSeverity implements lint.Rule.
func (MultipleDrivers) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (MultipleDrivers) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	moduleId, _ := design.FindModule(module.Name)
	//
	module.Signals.All(func(id arena.Id, s ir.Signal) bool {
		sid := ir.SignalId(id)
		if s.Kind == ir.Const {
			return true
		}
		//
		if n := lint.CountDrivers(module, sid); n > 1 {
			span := design.Source.Signal(moduleId, sid)
			msg := fmt.Sprintf("signal %q has %d structural drivers", interner.String(s.Name), n)
			sink.Emit(diag.New(diag.Warning, diag.W109MultipleDrivers, span, msg))
		}
		return true
	})
}
