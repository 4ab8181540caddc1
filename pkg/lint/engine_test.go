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
package lint_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/lint"
	"github.com/aion-eda/aion/pkg/source"
)

// alwaysFires is a stub Rule used only to exercise Engine's policy logic,
// independent of any real structural check.
type alwaysFires struct{}

func (alwaysFires) Code() diag.Code               { return diag.C201NamingViolation }
func (alwaysFires) Name() string                  { return "always-fires" }
func (alwaysFires) Description() string           { return "fires on every module, for testing" }
func (alwaysFires) DefaultSeverity() diag.Severity { return diag.Warning }

func (alwaysFires) Check(_ *ir.Design, _ *ir.Module, _ *ident.Interner, sink *diag.Sink) {
	sink.Emit(diag.New(diag.Warning, diag.C201NamingViolation, source.Dummy, "stub finding"))
}

func newTestDesign() (*ir.Design, *ir.Module) {
	interner := ident.New()
	design := ir.NewDesign(interner)
	module := ir.NewModule(interner.Intern("top"))
	id := design.AllocModule(module)
	design.Top = id
	return design, module
}

func TestEngineDefaultPolicyEmitsAsIs(t *testing.T) {
	design, _ := newTestDesign()
	engine := lint.NewEngine(alwaysFires{})
	sink := diag.NewSink()
	//
	engine.Run(design, design.Interner, lint.Config{}, sink)
	//
	found := sink.Snapshot()
	assert.Len(t, found, 1)
	assert.Equal(t, diag.Warning, found[0].Severity)
}

func TestEngineAllowDropsDiagnostics(t *testing.T) {
	design, _ := newTestDesign()
	engine := lint.NewEngine(alwaysFires{})
	sink := diag.NewSink()
	//
	engine.Run(design, design.Interner, lint.Config{Allow: []string{"always-fires"}}, sink)
	//
	assert.Empty(t, sink.Snapshot())
}

func TestEngineDenyPromotesToError(t *testing.T) {
	design, _ := newTestDesign()
	engine := lint.NewEngine(alwaysFires{})
	sink := diag.NewSink()
	//
	engine.Run(design, design.Interner, lint.Config{Deny: []string{"always-fires"}}, sink)
	//
	found := sink.Snapshot()
	assert.Len(t, found, 1)
	assert.Equal(t, diag.Error, found[0].Severity)
	assert.True(t, sink.HasErrors())
}
