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
package arch_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/arch"
)

func TestResourceCountsTotal(t *testing.T) {
	r := arch.ResourceCounts{LUTs: 10, FFs: 10, BRAM: 1, DSP: 1, IO: 4, PLL: 1}
	assert.Equal(t, uint(27), r.Total())
}

func TestRoutingGraphEmpty(t *testing.T) {
	assert.True(t, arch.RoutingGraph{}.Empty())
	assert.False(t, arch.RoutingGraph{Wires: []arch.Wire{{Name: "w"}}}.Empty())
	assert.False(t, arch.RoutingGraph{PIPs: []arch.PIP{{SrcWire: "a", DstWire: "b"}}}.Empty())
}
