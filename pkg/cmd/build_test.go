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
package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/chash"
)

func TestParseHashRoundTripsThroughString(t *testing.T) {
	original := chash.Of([]byte("aion"))

	parsed := parseHash(original.String())

	assert.Equal(t, original, parsed)
}

func TestParseHashOfGarbageIsZero(t *testing.T) {
	assert.True(t, parseHash("not-a-hash").IsZero())
	assert.True(t, parseHash("").IsZero())
}

func TestDefaultFormatPerFamily(t *testing.T) {
	assert.Equal(t, "rbf", defaultFormat("cyclone"))
	assert.Equal(t, "bit", defaultFormat("xc7"))
	assert.Equal(t, "", defaultFormat("unknown"))
}
