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
package ir

import "github.com/aion-eda/aion/pkg/logic"

// RefKind tags the variant held by a SignalRef (spec §3 "Signal
// reference").
type RefKind uint8

// Recognised signal-reference variants.
const (
	RefSignal RefKind = iota
	RefSlice
	RefConcat
	RefConst
)

// SignalRef names the thing a Cell connection or Process target refers to:
// a whole signal, a bit-slice of one, a concatenation of references, or an
// inline constant.
type SignalRef struct {
	Kind RefKind
	// RefSignal / RefSlice.
	Signal SignalId
	High   uint
	Low    uint
	// RefConcat, most-significant element first.
	Parts []SignalRef
	// RefConst.
	Const logic.Vector
}

// Sig constructs a whole-signal reference.
func Sig(id SignalId) SignalRef {
	return SignalRef{Kind: RefSignal, Signal: id}
}

// SliceOf constructs a bit-slice reference `signal[high:low]`.
func SliceOf(id SignalId, high, low uint) SignalRef {
	return SignalRef{Kind: RefSlice, Signal: id, High: high, Low: low}
}

// Concat constructs a concatenation reference, most-significant part first.
func Concat(parts ...SignalRef) SignalRef {
	return SignalRef{Kind: RefConcat, Parts: parts}
}

// ConstRef constructs an inline-constant reference.
func ConstRef(v logic.Vector) SignalRef {
	return SignalRef{Kind: RefConst, Const: v}
}

// Width returns the bit width denoted by this reference. Resolving a
// RefSignal's width requires the owning module's signal arena, so callers
// pass a lookup function for the element width of a whole signal.
func (r SignalRef) Width(signalWidth func(SignalId) uint) uint {
	switch r.Kind {
	case RefSignal:
		return signalWidth(r.Signal)
	case RefSlice:
		return r.High - r.Low + 1
	case RefConcat:
		var total uint
		for _, p := range r.Parts {
			total += p.Width(signalWidth)
		}
		return total
	case RefConst:
		return r.Const.Width()
	default:
		return 0
	}
}

// Signals appends every distinct SignalId mentioned by this reference
// (recursively, for concatenations) onto out and returns the result.
func (r SignalRef) Signals(out []SignalId) []SignalId {
	switch r.Kind {
	case RefSignal, RefSlice:
		return append(out, r.Signal)
	case RefConcat:
		for _, p := range r.Parts {
			out = p.Signals(out)
		}
		return out
	default:
		return out
	}
}
