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

func TestHashFileMatchesContentHashOfBytes(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "a.v")
	require.NoError(t, os.WriteFile(path, []byte("module a; endmodule"), 0o644))

	h, err := cache.HashFile(path)
	require.NoError(t, err)
	assert.Equal(t, chash.Of([]byte("module a; endmodule")), h)
}

func TestHashFileMissingReturnsError(t *testing.T) {
	_, err := cache.HashFile(filepath.Join(t.TempDir(), "missing.v"))
	assert.Error(t, err)
}

// TestDetectChangesClassifiesNewModifiedDeletedUnchanged matches spec §8
// scenario 5: a manifest with src/a.v at hash H0, and a current hash map
// of src/a.v -> H0, src/b.v -> H1 (H1 absent from the manifest), yields
// {new: [src/b.v], modified: [], deleted: [], unchanged: [src/a.v]}.
func TestDetectChangesClassifiesNewModifiedDeletedUnchanged(t *testing.T) {
	h0 := chash.Of([]byte("unchanged content"))
	h1 := chash.Of([]byte("new content"))

	manifest := map[string]cache.FileCache{
		"src/a.v": {ContentHash: h0.String()},
	}
	current := map[string]chash.Hash{
		"src/a.v": h0,
		"src/b.v": h1,
	}

	changes := cache.DetectChanges(current, manifest)
	assert.Equal(t, []string{"src/b.v"}, changes.New)
	assert.Empty(t, changes.Modified)
	assert.Empty(t, changes.Deleted)
	assert.Equal(t, []string{"src/a.v"}, changes.Unchanged)
}

func TestDetectChangesReportsModifiedAndDeleted(t *testing.T) {
	h0 := chash.Of([]byte("old"))
	h1 := chash.Of([]byte("new"))

	manifest := map[string]cache.FileCache{
		"src/a.v": {ContentHash: h0.String()},
		"src/c.v": {ContentHash: h0.String()},
	}
	current := map[string]chash.Hash{
		"src/a.v": h1,
	}

	changes := cache.DetectChanges(current, manifest)
	assert.Equal(t, []string{"src/a.v"}, changes.Modified)
	assert.Equal(t, []string{"src/c.v"}, changes.Deleted)
	assert.Empty(t, changes.New)
	assert.Empty(t, changes.Unchanged)
}
