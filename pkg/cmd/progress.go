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
package cmd

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/term"
)

// ansi escape codes used by buildProgress when writing to a real terminal
// (teacher: pkg/util/termio/terminal.go, which drives a full raw-mode
// widget screen off the same package; a build's progress report only
// needs width and color, not a managed screen).
const (
	ansiBold  = "\x1b[1m"
	ansiGreen = "\x1b[32m"
	ansiReset = "\x1b[0m"
)

const fallbackWidth = 80

// buildProgress reports `aion build`'s stage-by-stage progress to stderr,
// sized and colored to the invoking terminal.
type buildProgress struct {
	width int
	color bool
}

// newBuildProgress detects whether stderr is attached to a terminal and,
// if so, its current width; a non-terminal (redirected to a file, piped in
// CI) falls back to a fixed width with color disabled.
func newBuildProgress() *buildProgress {
	fd := int(os.Stderr.Fd())
	if !term.IsTerminal(fd) {
		return &buildProgress{width: fallbackWidth, color: false}
	}

	w, _, err := term.GetSize(fd)
	if err != nil || w <= 0 {
		w = fallbackWidth
	}

	return &buildProgress{width: w, color: true}
}

// line renders s in bold green (if color is enabled) and truncates it to
// the terminal width so a redirected or narrow terminal never wraps mid
// escape-sequence.
func (p *buildProgress) line(s string) string {
	if len(s) > p.width {
		s = s[:p.width]
	}
	if !p.color {
		return s
	}
	return ansiBold + ansiGreen + s + ansiReset
}

// Stage reports that the pipeline has just crossed into s, suitable as
// runPipeline's onStage hook.
func (p *buildProgress) Stage(s stage) {
	fmt.Fprintln(os.Stderr, p.line(fmt.Sprintf("==> %s", s)))
}

// Done reports that the whole build finished in elapsed.
func (p *buildProgress) Done(elapsed time.Duration) {
	fmt.Fprintln(os.Stderr, p.line(fmt.Sprintf("==> done in %s", elapsed.Round(time.Millisecond))))
}
