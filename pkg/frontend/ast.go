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

// Package frontend defines the neutral, language-independent AST shape
// that elaboration consumes (spec §4.2 "Input: a bundle of per-language
// ASTs"). The three source-language parsers (Verilog-2005,
// SystemVerilog-2017, VHDL-2008) are external collaborators per spec §1;
// this package is the contract they produce against, not a parser itself.
package frontend

import (
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/source"
)

// Bundle is the full set of per-language module/entity declarations handed
// to elaboration, already flattened across whichever of the three
// front-ends produced them.
type Bundle struct {
	Modules []ModuleDecl
}

// ParamDecl is one declared module parameter, prior to resolution.
type ParamDecl struct {
	Name    string
	Default *Expr // nil: no default supplied
	Span    source.Span
}

// PortDecl is one declared module port, prior to binding to a signal.
type PortDecl struct {
	Name      string
	Direction ir.PortDirection
	Width     *Expr // nil means width 1
	Signed    bool
	Span      source.Span
}

// SignalKind mirrors ir.SignalKind for declarations not yet bound to a
// Module's signal arena.
type SignalKind = ir.SignalKind

// SignalDecl is one declared internal wire/reg.
type SignalDecl struct {
	Name   string
	Kind   SignalKind
	Width  *Expr
	Signed bool
	Span   source.Span
}

// AssignDecl is one concurrent (continuous) assignment.
type AssignDecl struct {
	Target LValue
	Expr   *Expr
	Span   source.Span
}

// ProcessDecl is one behavioural block (always/process).
type ProcessDecl struct {
	Kind        ir.ProcessKind
	Sensitivity SensitivityDecl
	Body        Stmt
	Span        source.Span
}

// SensitivityDecl mirrors ir.Sensitivity over unresolved signal names.
type SensitivityDecl struct {
	Kind    ir.SensitivityKind
	Edges   []EdgeDecl
	Signals []string
}

// EdgeDecl is one (signal-name, edge) pair.
type EdgeDecl struct {
	Signal string
	Edge   ir.Edge
}

// ParamBind is one `name => expr` parameter override at an instantiation
// site.
type ParamBind struct {
	Name string
	Expr *Expr
}

// ConnDecl is one `port-name => expr-or-lvalue` connection at an
// instantiation site.
type ConnDecl struct {
	Port string
	// Signal is the connected signal for every port direction; the
	// direction itself is taken from the callee's declared port during
	// elaboration.
	Signal LValue
	Span   source.Span
}

// InstanceDecl is one module/entity instantiation.
type InstanceDecl struct {
	ModuleName   string
	InstanceName string
	Params       []ParamBind
	Connections  []ConnDecl
	Span         source.Span
}

// GenerateDecl is an elaboration-only conditional block (§3.1 EXPANDED
// "Generate constructs"): its Condition is evaluated against the enclosing
// module's resolved parameters, and if true its nested declarations are
// spliced into the module before further elaboration proceeds. It never
// appears in the final IR — only the modules/signals/cells it expands to
// do.
type GenerateDecl struct {
	Condition *Expr
	Signals   []SignalDecl
	Assigns   []AssignDecl
	Instances []InstanceDecl
	Span      source.Span
}

// ModuleDecl is one source-language module/entity declaration, as produced
// by any of the three front-ends.
type ModuleDecl struct {
	Name       string
	Parameters []ParamDecl
	Ports      []PortDecl
	Signals    []SignalDecl
	Assigns    []AssignDecl
	Processes  []ProcessDecl
	Instances  []InstanceDecl
	Generates  []GenerateDecl
	Span       source.Span
}
