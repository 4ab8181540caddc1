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
package cyclone_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/aion-eda/aion/pkg/arch/cyclone"
)

func TestNewUnknownDeviceFails(t *testing.T) {
	_, ok := cyclone.New("nonexistent-device")
	assert.False(t, ok)
}

func TestNewKnownDeviceReportsResourcesAndMapper(t *testing.T) {
	a, ok := cyclone.New("10CL025")
	assert.True(t, ok)
	assert.Equal(t, "cyclone", a.FamilyName())
	assert.Equal(t, "10CL025", a.DeviceName())
	assert.Equal(t, uint(4), a.LUTInputCount())
	assert.Greater(t, a.Resources().Total(), uint(0))

	mapper := a.TechMapper()
	assert.Equal(t, "cyclone", mapper.Name())
	assert.False(t, mapper.SupportsAsyncReset())
}

func TestRoutingGraphIsEmpty(t *testing.T) {
	a, _ := cyclone.New("10CL025")
	assert.True(t, a.RoutingGraph().Empty())
}
