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
package cache

import (
	"os"
	"sort"

	"github.com/aion-eda/aion/pkg/chash"
)

// HashFile reads path and returns its XXH3-128 content hash (spec §4.11
// "Hasher: reads a file, computes XXH3-128").
func HashFile(path string) (chash.Hash, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return chash.Hash{}, err
	}
	return chash.Of(data), nil
}

// Changes is the outcome of DetectChanges: every path bucketed by how it
// compares against a manifest's recorded content hashes, each sorted for
// deterministic output (spec §4.11 "each sorted for determinism").
type Changes struct {
	New       []string
	Modified  []string
	Deleted   []string
	Unchanged []string
}

// DetectChanges compares current (a fresh hash of every source file on
// disk) against manifest's recorded FileCache entries, classifying every
// path as new, modified, deleted, or unchanged (spec §4.11
// "detect-changes(current-hashes, manifest) returns sets").
func DetectChanges(current map[string]chash.Hash, manifest map[string]FileCache) Changes {
	var c Changes

	for path, hash := range current {
		entry, known := manifest[path]
		switch {
		case !known:
			c.New = append(c.New, path)
		case entry.ContentHash == hash.String():
			c.Unchanged = append(c.Unchanged, path)
		default:
			c.Modified = append(c.Modified, path)
		}
	}
	for path := range manifest {
		if _, present := current[path]; !present {
			c.Deleted = append(c.Deleted, path)
		}
	}

	sort.Strings(c.New)
	sort.Strings(c.Modified)
	sort.Strings(c.Deleted)
	sort.Strings(c.Unchanged)
	return c
}
