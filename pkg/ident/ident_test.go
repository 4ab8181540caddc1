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
package ident_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/ident"
)

func TestInternIsIdempotentForTheSameString(t *testing.T) {
	in := ident.New()

	a := in.Intern("clk")
	b := in.Intern("clk")

	assert.Equal(t, a, b)
	assert.EqualValues(t, 1, in.Len())
}

func TestInternAssignsDistinctIdsToDistinctStrings(t *testing.T) {
	in := ident.New()

	clk := in.Intern("clk")
	rst := in.Intern("rst")

	assert.NotEqual(t, clk, rst)
	assert.EqualValues(t, 2, in.Len())
}

func TestStringRecoversTheOriginalText(t *testing.T) {
	in := ident.New()
	id := in.Intern("data_out")

	assert.Equal(t, "data_out", in.String(id))
}

func TestLookupReportsWhetherAStringWasInterned(t *testing.T) {
	in := ident.New()
	in.Intern("q")

	id, ok := in.Lookup("q")
	assert.True(t, ok)
	assert.Equal(t, in.Intern("q"), id)

	_, ok = in.Lookup("never_seen")
	assert.False(t, ok)
}

func TestStringPanicsOnUnknownId(t *testing.T) {
	in := ident.New()
	assert.Panics(t, func() { in.String(ident.ID(99)) })
}

func TestInternIsSafeForConcurrentUse(t *testing.T) {
	in := ident.New()
	names := []string{"a", "b", "c", "d", "e"}

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			in.Intern(names[i%len(names)])
		}(i)
	}
	wg.Wait()

	assert.EqualValues(t, len(names), in.Len())
}
