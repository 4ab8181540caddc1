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
package xc7_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/bitstream/xc7"
	"github.com/aion-eda/aion/pkg/ir"
)

func TestLUTConfigBitsEncodesEveryTruthTableEntry(t *testing.T) {
	db := xc7.New()
	bits := db.LUTConfigBits("7", 0b0110, 2)

	require.Len(t, bits, 4)
	assert.False(t, bits[0].Value)
	assert.True(t, bits[1].Value)
	assert.True(t, bits[2].Value)
	assert.False(t, bits[3].Value)
}

func TestPIPConfigBitsIsDeterministicForTheSamePIPName(t *testing.T) {
	db := xc7.New()
	a := db.PIPConfigBits("CLBLL_L.CLBLL_LL_A1->CLBLL_LOGIC_OUTS0")
	b := db.PIPConfigBits("CLBLL_L.CLBLL_LL_A1->CLBLL_LOGIC_OUTS0")

	require.Len(t, a, 1)
	assert.Equal(t, a[0].Frame, b[0].Frame)
}

func TestFFConfigBitsUsesDedicatedSRPin(t *testing.T) {
	db := xc7.New()
	bits := db.FFConfigBits("SLICE_X0Y0")
	require.Len(t, bits, 1)
	assert.True(t, bits[0].Value)
}

func TestIOBufConfigBitsDiffersByDirection(t *testing.T) {
	db := xc7.New()
	in := db.IOBufConfigBits("IOB_X0Y0", ir.Input, "LVCMOS33")
	out := db.IOBufConfigBits("IOB_X0Y0", ir.Output, "LVCMOS33")
	assert.NotEqual(t, in[0].Value, out[0].Value)
}
