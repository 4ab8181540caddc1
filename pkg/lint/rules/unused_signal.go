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

// Package rules holds the built-in lint.Rule implementations of spec §4.3's
// minimum rule set.
package rules

import (
	"fmt"

	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/lint"
)

// UnusedSignal flags internal wires/regs that are never read anywhere in
// the module (W101). Ports are exempt: an Output port's consumer lives
// outside the module, and an Input port's producer does too.
type UnusedSignal struct{}

// Code implements lint.Rule.
func (UnusedSignal) Code() diag.Code { return diag.W101Unused }

// Name implements lint.Rule.
func (UnusedSignal) Name() string { return "unused-signal" }

// Description implements lint.Rule.
func (UnusedSignal) Description() string {
	return "internal signal is declared but never read"
}

// DefaultSeverity implements lint.Rule.
func (UnusedSignal) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (UnusedSignal) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	var reads []ir.SignalId
	//
	for _, a := range module.Assigns {
		reads = appendExprSignals(reads, a.Expr)
	}
	module.Processes.All(func(_ arena.Id, p ir.Process) bool {
		reads = lint.CollectReadSignals(p.Body, reads)
		return true
	})
	module.Cells.All(func(_ arena.Id, c ir.Cell) bool {
		for _, conn := range c.Connections {
			if conn.Direction == ir.Input {
				reads = conn.Signal.Signals(reads)
			}
		}
		return true
	})
	//
	read := make(map[ir.SignalId]bool, len(reads))
	for _, r := range reads {
		read[r] = true
	}
	//
	moduleId, _ := design.FindModule(module.Name)
	//
	module.Signals.All(func(id arena.Id, s ir.Signal) bool {
		sid := ir.SignalId(id)
		if s.Kind == ir.Port || s.Kind == ir.Const {
			return true
		}
		if read[sid] {
			return true
		}
		//
		span := design.Source.Signal(moduleId, sid)
		msg := fmt.Sprintf("signal %q is never read", interner.String(s.Name))
		sink.Emit(diag.New(diag.Warning, diag.W101Unused, span, msg))
		//
		return true
	})
}

func appendExprSignals(out []ir.SignalId, e *ir.Expr) []ir.SignalId {
	var result []ir.SignalId
	lint.WalkExpr(e, func(node *ir.Expr) {
		if node.Kind == ir.ExprSignal {
			result = node.Ref.Signals(result)
		}
	})
	return append(out, result...)
}
