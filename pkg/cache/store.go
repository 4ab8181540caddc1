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
	"encoding/binary"
	"os"
	"path/filepath"

	"github.com/aion-eda/aion/pkg/chash"
)

// Kind names one artifact-store subdirectory (spec §4.11 "subdirectories
// ast/, air/, synth/").
type Kind string

// Recognised artifact kinds.
const (
	KindAST   Kind = "ast"
	KindAIR   Kind = "air"
	KindSynth Kind = "synth"
)

// artifactMagic and formatVersion identify this store's header layout
// (spec §6 "<magic:8B> + <version:u32 LE> + <payload-len:u32 LE> +
// <payload-hash:16B XXH3-128> + payload bytes").
const (
	artifactMagic = "AION_ART"
	formatVersion = 1
	headerLen     = 8 + 4 + 4 + 16
)

// Store is the content-addressed artifact store rooted at one cache
// directory (spec §4.11 "Artifact store").
type Store struct {
	root string
}

// NewStore opens a Store rooted at root; root is created lazily by Put.
func NewStore(root string) *Store {
	return &Store{root: root}
}

func (s *Store) path(kind Kind, hash chash.Hash) string {
	return filepath.Join(s.root, string(kind), hash.String()+".bin")
}

// Put writes payload under kind, content-addressed by its own XXH3-128
// hash, and returns that hash as the artifact's cache key.
func (s *Store) Put(kind Kind, payload []byte) (chash.Hash, error) {
	hash := chash.Of(payload)
	path := s.path(kind, hash)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return hash, err
	}

	buf := make([]byte, 0, headerLen+len(payload))
	buf = append(buf, artifactMagic...)
	buf = binary.LittleEndian.AppendUint32(buf, formatVersion)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(payload)))
	hb := hash.Bytes()
	buf = append(buf, hb[:]...)
	buf = append(buf, payload...)

	return hash, os.WriteFile(path, buf, 0o644)
}

// Get reads the artifact stored under kind at hash. Per the fail-safe rule
// (spec §4.11 "any I/O error, parse failure, version mismatch, or checksum
// mismatch is treated as a cache miss"), every failure mode here — a
// missing file, a truncated header, a version mismatch, a payload-length
// mismatch, or a recomputed hash that disagrees with the stored one —
// returns ok=false rather than an error. A full rebuild from a miss is
// always correct; Get never gives a caller a reason to treat a corrupt
// cache directory as a hard failure.
func (s *Store) Get(kind Kind, hash chash.Hash) (payload []byte, ok bool) {
	data, err := os.ReadFile(s.path(kind, hash))
	if err != nil || len(data) < headerLen {
		return nil, false
	}
	if string(data[:8]) != artifactMagic {
		return nil, false
	}
	if binary.LittleEndian.Uint32(data[8:12]) != formatVersion {
		return nil, false
	}

	payloadLen := binary.LittleEndian.Uint32(data[12:16])
	var storedHash [16]byte
	copy(storedHash[:], data[16:32])
	body := data[32:]
	if uint32(len(body)) != payloadLen {
		return nil, false
	}
	if chash.Of(body) != chash.FromBytes(storedHash) {
		return nil, false
	}

	return body, true
}
