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
package chash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/chash"
)

func TestOfIsDeterministicAndContentSensitive(t *testing.T) {
	a := chash.Of([]byte("netlist-a"))
	b := chash.Of([]byte("netlist-a"))
	c := chash.Of([]byte("netlist-b"))

	assert.Equal(t, a, b)
	assert.NotEqual(t, a, c)
}

func TestZeroHashIsZero(t *testing.T) {
	var h chash.Hash
	assert.True(t, h.IsZero())
	assert.False(t, chash.Of([]byte("x")).IsZero())
}

func TestBytesRoundTripsThroughFromBytes(t *testing.T) {
	h := chash.Of([]byte("roundtrip"))
	restored := chash.FromBytes(h.Bytes())
	assert.Equal(t, h, restored)
}

func TestStringRendersThirtyTwoLowercaseHexDigits(t *testing.T) {
	h := chash.Of([]byte("render-me"))
	s := h.String()

	assert.Len(t, s, 32)
	assert.Regexp(t, "^[0-9a-f]{32}$", s)
}
