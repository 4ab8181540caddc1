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
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/arch/xc7"
)

func TestNewUnknownDeviceFails(t *testing.T) {
	_, ok := xc7.New("nonexistent-device", "")
	assert.False(t, ok)
}

func TestNewWithoutDatabaseHasEmptyRoutingGraph(t *testing.T) {
	a, ok := xc7.New("xc7a35t", "")
	require.True(t, ok)
	assert.Equal(t, "xc7", a.FamilyName())
	assert.Equal(t, uint(6), a.LUTInputCount())
	assert.True(t, a.RoutingGraph().Empty())

	mapper := a.TechMapper()
	assert.True(t, mapper.SupportsAsyncReset())
}

func TestNewLoadsRoutingGraphFromDatabaseDirectory(t *testing.T) {
	dir := t.TempDir()
	deviceDir := filepath.Join(dir, "xc7a35t")
	require.NoError(t, os.MkdirAll(deviceDir, 0o755))

	tile := map[string]any{
		"wires": []string{"A0", "B0"},
		"pips": []map[string]any{
			{"src_wire": "A0", "dst_wire": "B0", "min_delay_ns": 0.1, "typ_delay_ns": 0.2, "max_delay_ns": 0.3},
		},
	}
	data, err := json.Marshal(tile)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(deviceDir, "tile_type.json"), data, 0o644))

	a, ok := xc7.New("xc7a35t", dir)
	require.True(t, ok)

	graph := a.RoutingGraph()
	assert.False(t, graph.Empty())
	assert.Len(t, graph.Wires, 2)
	assert.Len(t, graph.PIPs, 1)
	assert.Equal(t, "A0", graph.PIPs[0].SrcWire)
}

func TestNewFallsBackToEmptyGraphWhenDatabaseMissing(t *testing.T) {
	a, ok := xc7.New("xc7a35t", t.TempDir())
	require.True(t, ok)
	assert.True(t, a.RoutingGraph().Empty())
}
