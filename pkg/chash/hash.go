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

// Package chash implements the 128-bit XXH3 content hash used throughout
// the cache and the foundation layer (§3 "Content hash"): two artifacts
// with the same hash are assumed identical.
package chash

import (
	"encoding/binary"
	"encoding/hex"

	"github.com/zeebo/xxh3"
)

// Hash is a 128-bit XXH3 digest.
type Hash struct {
	Hi, Lo uint64
}

// Of computes the content hash of data.
func Of(data []byte) Hash {
	h := xxh3.Hash128(data)
	return Hash{Hi: h.Hi, Lo: h.Lo}
}

// IsZero reports whether h is the zero hash, i.e. never computed.
func (h Hash) IsZero() bool {
	return h.Hi == 0 && h.Lo == 0
}

// Bytes returns the 16-byte big-endian encoding of h, the layout used by
// the artifact-store file header (§4.11, §6).
func (h Hash) Bytes() [16]byte {
	var out [16]byte
	binary.BigEndian.PutUint64(out[0:8], h.Hi)
	binary.BigEndian.PutUint64(out[8:16], h.Lo)
	//
	return out
}

// FromBytes reconstructs a Hash from its 16-byte big-endian encoding.
func FromBytes(b [16]byte) Hash {
	return Hash{
		Hi: binary.BigEndian.Uint64(b[0:8]),
		Lo: binary.BigEndian.Uint64(b[8:16]),
	}
}

// String renders h as 32 lowercase hex digits.
func (h Hash) String() string {
	b := h.Bytes()
	return hex.EncodeToString(b[:])
}
