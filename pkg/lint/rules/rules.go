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
package rules

import "github.com/aion-eda/aion/pkg/lint"

// Default returns the built-in minimum rule set of spec §4.3, in the order
// the spec lists them.
func Default() []lint.Rule {
	return []lint.Rule{
		UnusedSignal{},
		UndrivenSignal{},
		WidthMismatch{},
		MissingReset{},
		IncompleteSensitivity{},
		LatchInferred{},
		Truncation{},
		DeadLogic{},
		MultipleDrivers{},
		NonSynthesizable{},
		PortMismatch{},
		NamingViolation{},
		MissingDoc{},
		MagicNumber{},
		InconsistentStyle{},
	}
}
