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
package lint

import (
	"github.com/aion-eda/aion/pkg/arena"
	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
)

// Config is the deny/allow/warn policy applied at emit time (spec §4.3,
// and the `[lint]` table of §4.12's project configuration).
type Config struct {
	Deny  []string
	Allow []string
	Warn  []string
}

func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

// Engine iterates modules × registered rules (spec §4.3).
type Engine struct {
	rules []Rule
}

// NewEngine constructs an engine with the given rules registered.
func NewEngine(rules ...Rule) *Engine {
	return &Engine{rules: rules}
}

// Register adds a rule to the engine after construction.
func (e *Engine) Register(r Rule) {
	e.rules = append(e.rules, r)
}

// Rules returns the engine's registered rules, in registration order.
func (e *Engine) Rules() []Rule {
	return e.rules
}

// Run checks every module in design against every registered rule,
// applying cfg's allow/deny policy before diagnostics reach sink:
// allowed-rule diagnostics are dropped, denied-rule diagnostics have their
// severity promoted to Error.
func (e *Engine) Run(design *ir.Design, interner *ident.Interner, cfg Config, sink *diag.Sink) {
	design.Modules.All(func(_ arena.Id, m *ir.Module) bool {
		for _, rule := range e.rules {
			if contains(cfg.Allow, rule.Name()) {
				continue
			}
			//
			scratch := diag.NewSink()
			rule.Check(design, m, interner, scratch)
			//
			for _, d := range scratch.Drain() {
				if contains(cfg.Deny, rule.Name()) {
					d.Severity = diag.Error
				}
				sink.Emit(d)
			}
		}
		//
		return true
	})
}
