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
package synth

import "github.com/aion-eda/aion/pkg/ir"

// Result reports which of the four optimisation passes actually changed
// something, for the caller's cache-invalidation and reporting purposes.
type Result struct {
	ConstProp bool
	Dce       bool
	Cse       bool
	DceFinal  bool
}

// Changed reports whether any pass modified the module.
func (r Result) Changed() bool {
	return r.ConstProp || r.Dce || r.Cse || r.DceFinal
}

// Optimize runs the fixed pass pipeline of spec §4.4 over module exactly
// once each, in order: constant propagation, dead-code elimination, common
// subexpression elimination, dead-code elimination again to clean up
// whatever CSE's aliasing left behind. Future iteration to a fixed point is
// permitted by the spec but not required; this runner does the minimum.
func Optimize(design *ir.Design, module *ir.Module) (Result, *Netlist) {
	var r Result

	r.ConstProp = ConstantPropagate(design, module)

	nl := NewNetlist(module)
	r.Dce = DeadCodeEliminate(module, nl)

	r.Cse = CommonSubexpressionEliminate(module)

	r.DceFinal = DeadCodeEliminate(module, nl)

	return r, nl
}
