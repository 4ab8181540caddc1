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
	"github.com/aion-eda/aion/pkg/chash"
)

func TestStorePutThenGetRoundtrips(t *testing.T) {
	store := cache.NewStore(t.TempDir())
	payload := []byte("an elaborated design, serialized")

	hash, err := store.Put(cache.KindAST, payload)
	require.NoError(t, err)

	got, ok := store.Get(cache.KindAST, hash)
	require.True(t, ok)
	assert.Equal(t, payload, got)
}

func TestStoreGetMissingArtifactIsAMiss(t *testing.T) {
	store := cache.NewStore(t.TempDir())
	_, ok := store.Get(cache.KindAIR, chash.Of([]byte("never written")))
	assert.False(t, ok)
}

func TestStoreGetCorruptedPayloadIsAMiss(t *testing.T) {
	dir := t.TempDir()
	store := cache.NewStore(dir)
	payload := []byte("synth netlist bytes")

	hash, err := store.Put(cache.KindSynth, payload)
	require.NoError(t, err)

	path := filepath.Join(dir, string(cache.KindSynth), hash.String()+".bin")
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	raw[len(raw)-1] ^= 0xFF // corrupt the last payload byte without touching the header
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	_, ok := store.Get(cache.KindSynth, hash)
	assert.False(t, ok)
}

func TestStoreGetTruncatedHeaderIsAMiss(t *testing.T) {
	dir := t.TempDir()
	store := cache.NewStore(dir)
	hash, err := store.Put(cache.KindAST, []byte("x"))
	require.NoError(t, err)

	path := filepath.Join(dir, string(cache.KindAST), hash.String()+".bin")
	require.NoError(t, os.WriteFile(path, []byte("short"), 0o644))

	_, ok := store.Get(cache.KindAST, hash)
	assert.False(t, ok)
}
