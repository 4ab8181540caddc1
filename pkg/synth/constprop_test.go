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
package synth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/logic"
	"github.com/aion-eda/aion/pkg/synth"
)

func newModule(t *testing.T, name string) (*ir.Design, *ir.Module, ir.TypeId) {
	t.Helper()
	interner := ident.New()
	design := ir.NewDesign(interner)
	bit4 := design.Types.Intern(ir.BitVecType(4, false))
	module := ir.NewModule(interner.Intern(name))
	design.AllocModule(module)
	return design, module, bit4
}

func TestConstantPropagateFoldsAllLiteralBinary(t *testing.T) {
	design, module, bit4 := newModule(t, "top")
	out := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("out"), Type: bit4, Kind: ir.Wire})

	lhs := ir.LiteralExpr(logic.FromUint(4, 2), bit4)
	rhs := ir.LiteralExpr(logic.FromUint(4, 3), bit4)
	expr := ir.BinaryExpr(ir.BinaryAdd, lhs, rhs, bit4)

	module.Assigns = append(module.Assigns, ir.Assignment{Target: ir.Sig(out), Expr: expr})

	changed := synth.ConstantPropagate(design, module)
	assert.True(t, changed)
	assert.Equal(t, ir.ExprLiteral, module.Assigns[0].Expr.Kind)

	v, ok := module.Assigns[0].Expr.Literal.ToUint()
	assert.True(t, ok)
	assert.Equal(t, uint64(5), v)
}

func TestConstantPropagateLeavesSignalDependentExprAlone(t *testing.T) {
	design, module, bit4 := newModule(t, "top")
	in := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("in"), Type: bit4, Kind: ir.Wire})
	out := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("out"), Type: bit4, Kind: ir.Wire})

	expr := ir.BinaryExpr(ir.BinaryAdd, ir.SignalExpr(ir.Sig(in), bit4), ir.LiteralExpr(logic.FromUint(4, 1), bit4), bit4)
	module.Assigns = append(module.Assigns, ir.Assignment{Target: ir.Sig(out), Expr: expr})

	changed := synth.ConstantPropagate(design, module)
	assert.False(t, changed)
	assert.Equal(t, ir.ExprBinary, module.Assigns[0].Expr.Kind)
}

func TestConstantPropagateFoldsConstantTernary(t *testing.T) {
	design, module, bit4 := newModule(t, "top")
	out := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("out"), Type: bit4, Kind: ir.Wire})

	cond := ir.LiteralExpr(logic.FromUint(1, 1), bit4)
	then := ir.LiteralExpr(logic.FromUint(4, 9), bit4)
	els := ir.LiteralExpr(logic.FromUint(4, 1), bit4)
	expr := ir.TernaryExpr(cond, then, els, bit4)

	module.Assigns = append(module.Assigns, ir.Assignment{Target: ir.Sig(out), Expr: expr})

	changed := synth.ConstantPropagate(design, module)
	assert.True(t, changed)
	v, ok := module.Assigns[0].Expr.Literal.ToUint()
	assert.True(t, ok)
	assert.Equal(t, uint64(9), v)
}
