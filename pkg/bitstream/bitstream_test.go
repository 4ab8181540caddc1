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
package bitstream_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/bitstream"
	"github.com/aion-eda/aion/pkg/bitstream/cyclone"
	"github.com/aion-eda/aion/pkg/bitstream/xc7"
)

var (
	_ bitstream.ConfigBitDatabase = cyclone.Database{}
	_ bitstream.ConfigBitDatabase = xc7.Database{}
)

func TestConfigImageFinalizeSortsByAscendingAddress(t *testing.T) {
	img := bitstream.NewConfigImage(4)
	img.SetBit(5, 0, true)
	img.SetBit(1, 0, true)
	img.SetBit(3, 0, true)

	frames := img.Finalize()
	require.Len(t, frames, 3)
	assert.Equal(t, []uint32{1, 3, 5}, []uint32{frames[0].Address, frames[1].Address, frames[2].Address})
}

func TestConfigImageSetBitSetsAndClears(t *testing.T) {
	img := bitstream.NewConfigImage(2)
	img.SetBit(0, 0, true)
	img.SetBit(0, 1, true)
	img.SetBit(0, 1, false)

	frames := img.Finalize()
	require.Len(t, frames, 1)
	assert.Equal(t, uint32(1), frames[0].Words[0])
}

func TestConfigImageOnlyTouchedFramesAreMaterialised(t *testing.T) {
	img := bitstream.NewConfigImage(4)
	img.SetBit(0, 0, true)

	assert.Len(t, img.Finalize(), 1)
}
