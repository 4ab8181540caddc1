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

// PortMismatch re-checks, as a lint-level warning, that every connection of
// an instantiation cell names a port that actually exists on the callee
// (W111). Elaboration already rejects this with E208; this rule exists so
// the same structural property is also visible to `aion lint`-only
// invocations run against a design loaded from the incremental cache,
// where elaboration itself did not just run.
type PortMismatch struct{}

// Code implements lint.Rule.
func (PortMismatch) Code() diag.Code { return diag.W111PortMismatch }

// Name implements lint.Rule.
func (PortMismatch) Name() string { return "port-mismatch" }

// Description implements lint.Rule.
func (PortMismatch) Description() string {
	return "instantiation connects a port name the callee module does not declare"
}

// DefaultSeverity implements lint.Rule.
func (PortMismatch) DefaultSeverity() diag.Severity { return diag.Warning }

// Check implements lint.Rule.
func (PortMismatch) Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink) {
	moduleId, _ := design.FindModule(module.Name)
	//
	module.Cells.All(func(id arena.Id, c ir.Cell) bool {
		if c.Kind.Tag != ir.CellInstance {
			return true
		}
		//
		callee := design.Module(c.Kind.Module)
		for _, conn := range c.Connections {
			if _, ok := callee.FindPort(conn.Port); ok {
				continue
			}
			//
			span := design.Source.Cell(moduleId, ir.CellId(id))
			msg := fmt.Sprintf("port %q not found on module %q", interner.String(conn.Port), interner.String(callee.Name))
			sink.Emit(diag.New(diag.Warning, diag.W111PortMismatch, span, msg))
		}
		return true
	})
}
