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

// Package aerr implements the programmer-facing error channel (§7
// "Internal errors"). These indicate invariant violations or truly
// unrecoverable conditions — a missing top module, an unknown architecture
// family, a corrupt cache artifact outside the fail-safe path. Presence of
// one should be treated as a bug, never as ordinary user-facing feedback;
// those go through pkg/diag instead.
package aerr

import "fmt"

// Error is a single-message internal error.
type Error struct {
	msg string
}

// New constructs an internal error with the given message.
func New(format string, args ...any) *Error {
	return &Error{msg: fmt.Sprintf(format, args...)}
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.msg
}

// Wrap builds an internal error that carries the message of an underlying
// cause, preserving it for %w-style unwrapping.
func Wrap(cause error, format string, args ...any) *wrapped {
	return &wrapped{msg: fmt.Sprintf(format, args...), cause: cause}
}

type wrapped struct {
	msg   string
	cause error
}

func (e *wrapped) Error() string {
	return fmt.Sprintf("%s: %s", e.msg, e.cause)
}

func (e *wrapped) Unwrap() error {
	return e.cause
}
