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

// DeadLogic flags an unconditional assignment to a signal that is
// unconditionally overwritten by a later statement in the same block
// before anything reads it in between (W108): the earlier assignment can
// never have an observable effect.
type DeadLogic struct{}

// Code implements lint.Rule.
func (DeadLogic) Code() diag.Code { return diag.W108DeadLogic }

// Name implements lint.Rule.
func (DeadLogic) Name() string { return "dead-logic" }

// Description implements lint.Rule.
func (DeadLogic) Description() string {
	return "assignment is unconditionally overwritten before it can be observed"
}

// DefaultSeverity implements lint.Rule.
func (DeadLogic) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (DeadLogic) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	moduleId, _ := design.FindModule(module.Name)
	modSpan := design.Source.Module(moduleId)
	//
	module.Processes.All(func(_ arena.Id, p ir.Process) bool {
		lint.WalkStmt(p.Body, func(s *ir.Stmt) {
			if s.Kind != ir.StmtBlock {
				return
			}
			for i := 0; i < len(s.Stmts)-1; i++ {
				a, ok := soleAssign(s.Stmts[i])
				if !ok {
					continue
				}
				for j := i + 1; j < len(s.Stmts); j++ {
					b, ok := soleAssign(s.Stmts[j])
					if !ok {
						break
					}
					readsA := false
					for _, r := range lint.CollectReadSignals(b, nil) {
						if a.Target.Kind == ir.RefSignal && r == a.Target.Signal {
							readsA = true
						}
					}
					if readsA {
						break
					}
					if sameWholeSignal(a.Target, b.Target) {
						sink.Emit(diag.New(diag.Warning, diag.W108DeadLogic, modSpan,
							"assignment is overwritten before it can be observed"))
						break
					}
				}
			}
		})
		return true
	})
}

func soleAssign(s *ir.Stmt) (*ir.Stmt, bool) {
	if s != nil && s.Kind == ir.StmtAssign {
		return s, true
	}
	return nil, false
}

func sameWholeSignal(a, b ir.SignalRef) bool {
	return a.Kind == ir.RefSignal && b.Kind == ir.RefSignal && a.Signal == b.Signal
}
