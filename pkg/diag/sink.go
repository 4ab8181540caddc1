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
package diag

import (
	"sync"
	"sync/atomic"
)

// Sink is a thread-safe diagnostic accumulator (§4.1). Emit appends
// atomically under a mutex; HasErrors is lock-free, backed by a separate
// atomic counter, so the top-level driver can cheaply poll it from any
// goroutine without contending with emitters.
type Sink struct {
	mu   sync.Mutex
	all  []Diagnostic
	errs atomic.Int64
}

// NewSink constructs an empty sink.
func NewSink() *Sink {
	return &Sink{}
}

// Emit appends d to the sink. If d.Severity is Error, the lock-free error
// counter is incremented.
func (s *Sink) Emit(d Diagnostic) {
	s.mu.Lock()
	s.all = append(s.all, d)
	s.mu.Unlock()
	//
	if d.Severity == Error {
		s.errs.Add(1)
	}
}

// HasErrors reports whether any Error-severity diagnostic has been emitted.
// This is the top-level driver's exit-code decision (§7).
func (s *Sink) HasErrors() bool {
	return s.errs.Load() > 0
}

// ErrorCount returns the number of Error-severity diagnostics emitted so
// far.
func (s *Sink) ErrorCount() int64 {
	return s.errs.Load()
}

// Snapshot returns a copy of all diagnostics emitted so far, without
// clearing the sink.
func (s *Sink) Snapshot() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	//
	out := make([]Diagnostic, len(s.all))
	copy(out, s.all)
	//
	return out
}

// Drain returns all diagnostics emitted so far and clears the sink. The
// error counter is reset to match.
func (s *Sink) Drain() []Diagnostic {
	s.mu.Lock()
	defer s.mu.Unlock()
	//
	out := s.all
	s.all = nil
	s.errs.Store(0)
	//
	return out
}
