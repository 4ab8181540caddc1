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

// UndrivenSignal flags internal wires/regs that are read somewhere but have
// no structural driver (W102). Input ports are exempt: they are driven by
// the instantiating context.
type UndrivenSignal struct{}

// Code implements lint.Rule.
func (UndrivenSignal) Code() diag.Code { return diag.W102Undriven }

// Name implements lint.Rule.
func (UndrivenSignal) Name() string { return "undriven-signal" }

// Description implements lint.Rule.
func (UndrivenSignal) Description() string {
	return "signal is read but has no driving assignment, process, or cell output"
}

// DefaultSeverity implements lint.Rule.
func (UndrivenSignal) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (UndrivenSignal) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	moduleId, _ := design.FindModule(module.Name)
	//
	module.Signals.All(func(id arena.Id, s ir.Signal) bool {
		sid := ir.SignalId(id)
		if s.Kind == ir.Port {
			if dir, ok := portDirection(module, sid); ok && dir == ir.Input {
				return true
			}
		}
		if s.Kind == ir.Const {
			return true
		}
		if lint.CountDrivers(module, sid) > 0 {
			return true
		}
		//
		span := design.Source.Signal(moduleId, sid)
		msg := fmt.Sprintf("signal %q is never driven", interner.String(s.Name))
		sink.Emit(diag.New(diag.Warning, diag.W102Undriven, span, msg))
		//
		return true
	})
}

func portDirection(module *ir.Module, signal ir.SignalId) (ir.PortDirection, bool) {
	for _, p := range module.Ports {
		if p.Signal == signal {
			return p.Direction, true
		}
	}
	return 0, false
}
