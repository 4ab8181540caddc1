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

	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/logic"
	"github.com/aion-eda/aion/pkg/synth"
)

func TestDeadCodeEliminateDropsUnobservedAssign(t *testing.T) {
	design, module, bit4 := newModule(t, "top")
	outSig := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("o"), Type: bit4, Kind: ir.Wire})
	module.Ports = append(module.Ports, ir.PortDecl{Name: design.Interner.Intern("o"), Direction: ir.Output, Type: bit4, Signal: outSig})

	deadSig := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("dead"), Type: bit4, Kind: ir.Wire})

	module.Assigns = append(module.Assigns,
		ir.Assignment{Target: ir.Sig(outSig), Expr: ir.LiteralExpr(logic.FromUint(4, 1), bit4)},
		ir.Assignment{Target: ir.Sig(deadSig), Expr: ir.LiteralExpr(logic.FromUint(4, 2), bit4)},
	)

	nl := synth.NewNetlist(module)
	changed := synth.DeadCodeEliminate(module, nl)

	assert.True(t, changed)
	assert.Len(t, module.Assigns, 1)
	assert.Equal(t, outSig, module.Assigns[0].Target.Signal)
}

func TestDeadCodeEliminateKeepsChainFeedingOutput(t *testing.T) {
	design, module, bit4 := newModule(t, "top")
	outSig := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("o"), Type: bit4, Kind: ir.Wire})
	module.Ports = append(module.Ports, ir.PortDecl{Name: design.Interner.Intern("o"), Direction: ir.Output, Type: bit4, Signal: outSig})

	midSig := module.AllocSignal(ir.Signal{Name: design.Interner.Intern("mid"), Type: bit4, Kind: ir.Wire})

	module.Assigns = append(module.Assigns,
		ir.Assignment{Target: ir.Sig(outSig), Expr: ir.SignalExpr(ir.Sig(midSig), bit4)},
		ir.Assignment{Target: ir.Sig(midSig), Expr: ir.LiteralExpr(logic.FromUint(4, 3), bit4)},
	)

	nl := synth.NewNetlist(module)
	synth.DeadCodeEliminate(module, nl)

	assert.Len(t, module.Assigns, 2)
}
