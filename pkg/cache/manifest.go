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

// Package cache implements spec §4.11: the content-addressed incremental
// build cache — the JSON manifest, the XXH3-128 file hasher and change
// detector, and the header-prefixed binary artifact store, all under the
// fail-safe rule that any read failure is a cache miss rather than an
// error.
package cache

import (
	"os"
	"path/filepath"

	json "github.com/segmentio/encoding/json"
)

// ManifestFileName is the manifest's fixed name under a cache directory
// (spec §6 "stored as manifest.json under the cache directory").
const ManifestFileName = "manifest.json"

// FileCache is one source file's entry in a CacheManifest (spec §4.11
// "map path -> {content-hash, AST-cache-key, modules-defined}").
type FileCache struct {
	ContentHash    string   `json:"content_hash"`
	ASTCacheKey    string   `json:"ast_cache_key"`
	ModulesDefined []string `json:"modules_defined"`
}

// ModuleCacheEntry is one module's entry in a CacheManifest (spec §4.11
// "per-module {interface-hash, body-hash, dependencies, IR-cache-key,
// optional synth-cache-key}").
type ModuleCacheEntry struct {
	InterfaceHash string   `json:"interface_hash"`
	BodyHash      string   `json:"body_hash"`
	Dependencies  []string `json:"dependencies"`
	IRCacheKey    string   `json:"ir_cache_key"`
	SynthCacheKey string   `json:"synth_cache_key,omitempty"`
}

// TargetCache is one build target's entry in a CacheManifest (spec §4.11
// "per-target {device, placed-cache-key, routed-cache-key}").
type TargetCache struct {
	Device         string `json:"device"`
	PlacedCacheKey string `json:"placed_cache_key"`
	RoutedCacheKey string `json:"routed_cache_key"`
}

// CacheManifest is the top-level, JSON-serialized record of one cache
// directory's contents (spec §4.11 "Manifest").
type CacheManifest struct {
	ToolVersion string                      `json:"tool_version"`
	Files       map[string]FileCache        `json:"files"`
	Modules     map[string]ModuleCacheEntry `json:"modules"`
	Targets     map[string]TargetCache      `json:"targets"`
}

// NewManifest returns an empty manifest stamped with toolVersion.
func NewManifest(toolVersion string) CacheManifest {
	return CacheManifest{
		ToolVersion: toolVersion,
		Files:       make(map[string]FileCache),
		Modules:     make(map[string]ModuleCacheEntry),
		Targets:     make(map[string]TargetCache),
	}
}

// LoadManifest reads manifest.json from cacheDir. Per the fail-safe rule
// (spec §4.11), a missing file or malformed JSON is reported as ok=false
// rather than an error: the caller treats this exactly like a full cache
// miss and proceeds to rebuild.
func LoadManifest(cacheDir string) (manifest CacheManifest, ok bool) {
	data, err := os.ReadFile(filepath.Join(cacheDir, ManifestFileName))
	if err != nil {
		return CacheManifest{}, false
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return CacheManifest{}, false
	}
	return manifest, true
}

// SaveManifest writes m to manifest.json under cacheDir with two-space
// indentation (spec §6 "JSON with two-space indentation, stable key
// ordering"); Go's encoding/json-compatible map marshalling already sorts
// object keys lexicographically, so Files/Modules/Targets need no
// additional sorting step to be stable.
func SaveManifest(cacheDir string, m CacheManifest) error {
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(cacheDir, ManifestFileName), data, 0o644)
}
