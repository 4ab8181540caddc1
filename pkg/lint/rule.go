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
package lint

import (
	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
)

// Rule is one stateless lint check (spec §4.3: "code, kebab-case name,
// description, default severity, check(module, design, sink)").
type Rule interface {
	Code() diag.Code
	Name() string
	Description() string
	DefaultSeverity() diag.Severity
	Check(design *ir.Design, module *ir.Module, interner *ident.Interner, sink *diag.Sink)
}
