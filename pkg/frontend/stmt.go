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
package frontend

import (
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/source"
)

// StmtKind tags the variant held by a Stmt, pre-elaboration.
type StmtKind uint8

// Recognised pre-elaboration statement variants.
const (
	StmtAssign StmtKind = iota
	StmtIf
	StmtCase
	StmtBlock
	StmtAssertion
	StmtNop
)

// CaseArm is one pattern/body pairing of a pre-elaboration case statement.
type CaseArm struct {
	Patterns []*Expr
	Body     *Stmt
}

// Stmt is the pre-elaboration statement tree (mirrors ir.Stmt over
// unresolved names).
type Stmt struct {
	Kind StmtKind
	Span source.Span
	// StmtAssign.
	Target LValue
	Expr   *Expr
	// StmtIf.
	Cond *Expr
	Then *Stmt
	Else *Stmt
	// StmtCase.
	Subject *Expr
	Arms    []CaseArm
	Default *Stmt
	// StmtBlock.
	Stmts []*Stmt
	// StmtAssertion.
	AssertKind ir.AssertionKind
	Message    string
}
