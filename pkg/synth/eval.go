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

import (
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/logic"
)

// evalUnary evaluates a fully-constant unary operation. Negation round-trips
// through ToUint, so it gives up (ok=false) past 64 bits, same as the
// arithmetic ops of evalBinary below; NOT and the reduction operators work
// bit by bit at any width, and the reductions give up on any X/Z bit.
func evalUnary(op ir.UnaryOp, v logic.Vector) (logic.Vector, bool) {
	switch op {
	case ir.UnaryNot:
		return v.Not(), true
	case ir.UnaryNeg:
		u, ok := v.ToUint()
		if !ok {
			return logic.Vector{}, false
		}
		return logic.FromUint(v.Width(), uint64(-int64(u))), true
	case ir.UnaryReduceAnd, ir.UnaryReduceOr, ir.UnaryReduceXor:
		if !v.IsFullyDriven() {
			return logic.Vector{}, false
		}
		acc := v.Get(0)
		for i := uint(1); i < v.Width(); i++ {
			b := v.Get(i)
			switch op {
			case ir.UnaryReduceAnd:
				acc = acc.And(b)
			case ir.UnaryReduceOr:
				acc = acc.Or(b)
			case ir.UnaryReduceXor:
				acc = acc.Xor(b)
			}
		}
		return logic.NewVector(1, acc), true
	default:
		return logic.Vector{}, false
	}
}

// evalBinary evaluates a fully-constant binary operation, producing a
// result of the given width. Bitwise ops use Vector's own IEEE 1164
// element-wise operators directly (correct at any width); arithmetic,
// shift and comparison ops round-trip through a uint64, so constant folding
// of operands wider than 64 bits simply does not fire — a documented
// limitation (see DESIGN.md, "64-bit constant-folding ceiling").
func evalBinary(op ir.BinaryOp, lhs, rhs logic.Vector, width uint) (logic.Vector, bool) {
	switch op {
	case ir.BinaryAnd:
		return widen(lhs, width).And(widen(rhs, width)), true
	case ir.BinaryOr:
		return widen(lhs, width).Or(widen(rhs, width)), true
	case ir.BinaryXor:
		return widen(lhs, width).Xor(widen(rhs, width)), true
	}

	lu, lok := lhs.ToUint()
	ru, rok := rhs.ToUint()
	if !lok || !rok {
		return logic.Vector{}, false
	}

	var result uint64
	switch op {
	case ir.BinaryAdd:
		result = lu + ru
	case ir.BinarySub:
		result = lu - ru
	case ir.BinaryMul:
		result = lu * ru
	case ir.BinaryShl:
		result = lu << ru
	case ir.BinaryShr:
		result = lu >> ru
	case ir.BinaryEq:
		result = boolUint(lu == ru)
	case ir.BinaryNeq:
		result = boolUint(lu != ru)
	case ir.BinaryLt:
		result = boolUint(lu < ru)
	case ir.BinaryLe:
		result = boolUint(lu <= ru)
	case ir.BinaryGt:
		result = boolUint(lu > ru)
	case ir.BinaryGe:
		result = boolUint(lu >= ru)
	case ir.BinaryLogicalAnd:
		result = boolUint(lu != 0 && ru != 0)
	case ir.BinaryLogicalOr:
		result = boolUint(lu != 0 || ru != 0)
	default:
		return logic.Vector{}, false
	}

	return logic.FromUint(width, result), true
}

func boolUint(b bool) uint64 {
	if b {
		return 1
	}
	return 0
}

// widen pads or truncates v to width by re-encoding through FromUint when
// the widths differ, so bitwise ops (which Vector panics on mismatch) never
// see a width mismatch here. Operands reaching a binary gate cell are
// always pre-sized to the node's own width by elaboration, so this is a
// no-op in practice; it exists defensively for literals folded earlier in
// the same pass.
func widen(v logic.Vector, width uint) logic.Vector {
	if v.Width() == width {
		return v
	}
	u, ok := v.ToUint()
	if !ok {
		// Can't re-encode an X/Z-bearing vector at a new width; truncate/pad
		// with the existing bits as best effort.
		if v.Width() > width {
			out := logic.NewVector(width, logic.Zero)
			for i := uint(0); i < width; i++ {
				out.Set(i, v.Get(i))
			}
			return out
		}
		out := logic.NewVector(width, logic.Zero)
		for i := uint(0); i < v.Width(); i++ {
			out.Set(i, v.Get(i))
		}
		return out
	}
	return logic.FromUint(width, u)
}
