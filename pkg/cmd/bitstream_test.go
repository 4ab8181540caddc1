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
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/bitstream"
)

func TestWriteBitstreamDispatchesByFormat(t *testing.T) {
	img := bitstream.NewConfigImage(1)
	img.SetBit(0, 0, true)

	for _, format := range []string{"rbf", "sof", "pof", "bit"} {
		payload, err := writeBitstream(format, img, "10CL025", "top")
		require.NoError(t, err, format)
		assert.NotEmpty(t, payload, format)
	}
}

func TestWriteBitstreamUnknownFormatErrors(t *testing.T) {
	img := bitstream.NewConfigImage(1)
	_, err := writeBitstream("vhd", img, "10CL025", "top")
	assert.Error(t, err)
}
