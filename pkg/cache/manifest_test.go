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
package cache_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/cache"
)

func TestLoadManifestMissingFileIsAMiss(t *testing.T) {
	_, ok := cache.LoadManifest(t.TempDir())
	assert.False(t, ok)
}

func TestSaveThenLoadManifestRoundtrips(t *testing.T) {
	dir := t.TempDir()
	m := cache.NewManifest("0.1.0")
	m.Files["src/a.v"] = cache.FileCache{ContentHash: "deadbeef", ModulesDefined: []string{"top"}}
	m.Modules["top"] = cache.ModuleCacheEntry{InterfaceHash: "aa", BodyHash: "bb"}
	m.Targets["board"] = cache.TargetCache{Device: "10CL025"}

	require.NoError(t, cache.SaveManifest(dir, m))

	loaded, ok := cache.LoadManifest(dir)
	require.True(t, ok)
	assert.Equal(t, m, loaded)
}

func TestLoadManifestMalformedJSONIsAMiss(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, cache.ManifestFileName), []byte("{not json"), 0o644))

	_, ok := cache.LoadManifest(dir)
	assert.False(t, ok)
}
