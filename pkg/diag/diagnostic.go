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

// Package diag implements the structured diagnostic model shared by every
// pipeline stage (§4.1, §6). Diagnostics are the user-facing error channel;
// the core never returns a Go error for a user-level finding, it emits one
// of these into a Sink instead.
package diag

import (
	"fmt"

	"github.com/aion-eda/aion/pkg/source"
)

// Severity classifies a diagnostic. Order matches increasing urgency.
type Severity uint8

// Severity levels, in increasing order of urgency.
const (
	Help Severity = iota
	Note
	Warning
	Error
)

// String renders the severity the way the JSON rendering contract (§6)
// expects: lower-case.
func (s Severity) String() string {
	switch s {
	case Help:
		return "help"
	case Note:
		return "note"
	case Warning:
		return "warning"
	case Error:
		return "error"
	default:
		return "unknown"
	}
}

// Category is the leading letter of a diagnostic Code: E (elaboration),
// W (lint/warnings), C (convention), T (timing), S (vendor-specific).
type Category byte

// Recognised diagnostic categories.
const (
	CategoryElaboration Category = 'E'
	CategoryLint        Category = 'W'
	CategoryConvention  Category = 'C'
	CategoryTiming      Category = 'T'
	CategoryVendor      Category = 'S'
)

// Code is a structured diagnostic code: a category letter plus a zero-padded
// 3-digit number, e.g. E206, W101, T020.
type Code struct {
	Category Category
	Number   uint16
}

// String renders a Code as "PNNN".
func (c Code) String() string {
	return fmt.Sprintf("%c%03d", c.Category, c.Number)
}

// Well-known elaboration diagnostic codes (§6 "Diagnostic codes").
var (
	E200UnknownModule       = Code{CategoryElaboration, 200}
	E201PortMismatch        = Code{CategoryElaboration, 201}
	E202DuplicateModule     = Code{CategoryElaboration, 202}
	E203DuplicateSignal     = Code{CategoryElaboration, 203}
	E204UnknownSignal       = Code{CategoryElaboration, 204}
	E205TypeMismatch        = Code{CategoryElaboration, 205}
	E206TopMissing          = Code{CategoryElaboration, 206}
	E207CircularInstantiate = Code{CategoryElaboration, 207}
	E208UnknownPort         = Code{CategoryElaboration, 208}
	E209NonConstantParam    = Code{CategoryElaboration, 209}
	E210Unsupported         = Code{CategoryElaboration, 210}
	E211MissingArchitecture = Code{CategoryElaboration, 211}

	W101Unused               = Code{CategoryLint, 101}
	W102Undriven             = Code{CategoryLint, 102}
	W103WidthMismatch        = Code{CategoryLint, 103}
	W104MissingReset         = Code{CategoryLint, 104}
	W105IncompleteSensitivty = Code{CategoryLint, 105}
	W106LatchInferred        = Code{CategoryLint, 106}
	W107Truncation           = Code{CategoryLint, 107}
	W108DeadLogic            = Code{CategoryLint, 108}
	// W109-W111 extend the §4.3 "minimum set" with the three remaining
	// built-in rules the spec names but the §6 code table doesn't
	// pre-assign a number to (multiple-drivers, non-synthesizable,
	// port-mismatch), following the same W1xx numbering scheme.
	W109MultipleDrivers  = Code{CategoryLint, 109}
	W110NonSynthesizable = Code{CategoryLint, 110}
	W111PortMismatch     = Code{CategoryLint, 111}

	W200WidthMismatch   = Code{CategoryLint, 200}
	W201UnconnectedPort = Code{CategoryLint, 201}

	// C201-C204 cover the remaining style/convention rules of §4.3:
	// naming-violation, missing-doc, magic-number, inconsistent-style.
	C201NamingViolation   = Code{CategoryConvention, 201}
	C202MissingDoc        = Code{CategoryConvention, 202}
	C203MagicNumber       = Code{CategoryConvention, 203}
	C204InconsistentStyle = Code{CategoryConvention, 204}

	T020RoutingNotConverged = Code{CategoryTiming, 20}
)

// Label annotates a secondary span within a diagnostic, e.g. pointing back
// at an earlier conflicting declaration.
type Label struct {
	Span    source.Span
	Message string
}

// Replacement is one machine-applicable edit: replace the text covered by
// Span with NewText.
type Replacement struct {
	Span    source.Span
	NewText string
}

// Fix bundles a set of replacements that together resolve a diagnostic.
type Fix struct {
	Message      string
	Replacements []Replacement
}

// Diagnostic is the fully structured finding produced by any stage: lex,
// elaborate, lint, timing, or bitstream emission.
type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Primary  source.Span
	Labels   []Label
	Notes    []string
	Help     []string
	Fix      *Fix
}

// New constructs a minimal diagnostic with no labels, notes or fix.
func New(sev Severity, code Code, primary source.Span, message string) Diagnostic {
	return Diagnostic{Severity: sev, Code: code, Message: message, Primary: primary}
}

// WithLabel returns a copy of d with an additional secondary label.
func (d Diagnostic) WithLabel(span source.Span, message string) Diagnostic {
	d.Labels = append(d.Labels[:len(d.Labels):len(d.Labels)], Label{span, message})
	return d
}

// WithNote returns a copy of d with an additional note line.
func (d Diagnostic) WithNote(note string) Diagnostic {
	d.Notes = append(d.Notes[:len(d.Notes):len(d.Notes)], note)
	return d
}

// Error implements the error interface so a Diagnostic can be logged or
// wrapped like any other Go error, even though the sink is the canonical
// channel for it.
func (d Diagnostic) Error() string {
	return fmt.Sprintf("%s: %s", d.Code, d.Message)
}
