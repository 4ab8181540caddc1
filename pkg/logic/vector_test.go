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
package logic_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/logic"
)

func TestFromUintTruncatesBeyondWidth(t *testing.T) {
	v := logic.FromUint(4, 0b10110)

	assert.EqualValues(t, 4, v.Width())
	n, ok := v.ToUint()
	require.True(t, ok)
	assert.EqualValues(t, 0b0110, n)
}

func TestNewVectorInitialisesEveryBit(t *testing.T) {
	v := logic.NewVector(3, logic.X)

	for i := uint(0); i < 3; i++ {
		assert.Equal(t, logic.X, v.Get(i))
	}
	assert.False(t, v.IsFullyDriven())
}

func TestSetMutatesSharedBackingAndCloneIsolates(t *testing.T) {
	v := logic.FromUint(4, 0)
	clone := v.Clone()

	v.Set(0, logic.One)

	assert.Equal(t, logic.One, v.Get(0))
	assert.Equal(t, logic.Zero, clone.Get(0))
}

func TestEqualComparesWidthAndBits(t *testing.T) {
	a := logic.FromUint(4, 5)
	b := logic.FromUint(4, 5)
	c := logic.FromUint(4, 6)
	d := logic.FromUint(5, 5)

	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
}

func TestToUintFailsWhenNotFullyDriven(t *testing.T) {
	v := logic.NewVector(4, logic.Zero)
	v.Set(1, logic.X)

	_, ok := v.ToUint()
	assert.False(t, ok)
}

func TestToBigIntMatchesToUintForFullyDrivenVector(t *testing.T) {
	v := logic.FromUint(8, 0xAB)

	n, ok := v.ToUint()
	require.True(t, ok)

	bi, ok := v.ToBigInt()
	require.True(t, ok)
	assert.EqualValues(t, n, bi.Uint64())
}

func TestBitwiseVectorOpsAreElementWise(t *testing.T) {
	a := logic.FromUint(4, 0b1100)
	b := logic.FromUint(4, 0b1010)

	and, ok := a.And(b).ToUint()
	require.True(t, ok)
	assert.EqualValues(t, 0b1000, and)

	or, ok := a.Or(b).ToUint()
	require.True(t, ok)
	assert.EqualValues(t, 0b1110, or)

	xor, ok := a.Xor(b).ToUint()
	require.True(t, ok)
	assert.EqualValues(t, 0b0110, xor)
}

func TestBitwiseOpPanicsOnWidthMismatch(t *testing.T) {
	a := logic.FromUint(4, 0)
	b := logic.FromUint(8, 0)

	assert.Panics(t, func() { a.And(b) })
}

func TestVectorStringRendersMostSignificantBitFirst(t *testing.T) {
	v := logic.FromUint(4, 0b0010)
	assert.Equal(t, "0010", v.String())
}

func TestVectorGobRoundTrips(t *testing.T) {
	v := logic.FromUint(6, 0b101101)

	data, err := v.GobEncode()
	require.NoError(t, err)

	var decoded logic.Vector
	require.NoError(t, decoded.GobDecode(data))

	assert.True(t, v.Equal(decoded))
}
