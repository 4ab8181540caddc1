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

// Package elaborate resolves a bundle of per-language ASTs (pkg/frontend)
// into a unified ir.Design (spec §4.2): module hierarchy, parameter
// propagation, and port/signal binding across the three input languages.
package elaborate

// Config carries the subset of project configuration elaboration needs.
type Config struct {
	// Top is the name of the top-level module to elaborate from.
	Top string
}
