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
	"github.com/aion-eda/aion/pkg/source"
	json "github.com/segmentio/encoding/json"
)

// jsonSpan is the wire shape for a primary or label span (§6 "Diagnostics
// (JSON rendering contract)").
type jsonSpan struct {
	FilePath string `json:"file_path"`
	StartLine uint32 `json:"start_line"`
	StartCol  uint32 `json:"start_col"`
	EndLine   uint32 `json:"end_line"`
	EndCol    uint32 `json:"end_col"`
}

type jsonLabel struct {
	Span    jsonSpan `json:"span"`
	Message string   `json:"message"`
}

type jsonReplacement struct {
	Span    jsonSpan `json:"span"`
	NewText string   `json:"new_text"`
}

type jsonFix struct {
	Message      string            `json:"message"`
	Replacements []jsonReplacement `json:"replacements"`
}

type jsonDiagnostic struct {
	Severity string    `json:"severity"`
	Code     string    `json:"code"`
	Message  string    `json:"message"`
	Primary  jsonSpan  `json:"primary_span"`
	Labels   []jsonLabel `json:"labels"`
	Notes    []string  `json:"notes"`
	Help     []string  `json:"help"`
	Fix      *jsonFix  `json:"fix,omitempty"`
}

func renderSpan(db *source.Database, span source.Span) jsonSpan {
	path := "<synthetic>"
	var start, end source.Position
	//
	var f *source.File
	if db != nil {
		f = db.Get(span.File)
	}
	if f != nil {
		path = f.Name()
		start = f.Resolve(span.Start)
		end = f.Resolve(span.End)
	}
	//
	return jsonSpan{
		FilePath:  path,
		StartLine: start.Line,
		StartCol:  start.Col,
		EndLine:   end.Line,
		EndCol:    end.Col,
	}
}

// ToJSON renders diagnostics per the §6 wire contract.  db resolves spans to
// file paths and line/col positions; pass nil to render synthetic paths only.
func ToJSON(db *source.Database, diags []Diagnostic) ([]byte, error) {
	out := make([]jsonDiagnostic, len(diags))
	//
	for i, d := range diags {
		jd := jsonDiagnostic{
			Severity: d.Severity.String(),
			Code:     d.Code.String(),
			Message:  d.Message,
			Primary:  renderSpan(db, d.Primary),
			Notes:    d.Notes,
			Help:     d.Help,
		}
		//
		for _, l := range d.Labels {
			jd.Labels = append(jd.Labels, jsonLabel{renderSpan(db, l.Span), l.Message})
		}
		//
		if d.Fix != nil {
			fix := &jsonFix{Message: d.Fix.Message}
			for _, r := range d.Fix.Replacements {
				fix.Replacements = append(fix.Replacements, jsonReplacement{renderSpan(db, r.Span), r.NewText})
			}
			jd.Fix = fix
		}
		//
		out[i] = jd
	}
	//
	return json.MarshalIndent(out, "", "  ")
}
