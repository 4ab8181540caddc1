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
package timing

import (
	"bufio"
	"strconv"
	"strings"

	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/source"
)

// T010UnknownConstraint warns that an SDC/XDC directive was not recognised
// (spec §4.9 "Unknown directives are reported as warnings and ignored").
var T010UnknownConstraint = diag.Code{Category: 'T', Number: 10}

// Clock is one create_clock constraint.
type Clock struct {
	Name   string
	Period float64 // nanoseconds
	Port   string
}

// PortDelay is one set_input_delay / set_output_delay constraint.
type PortDelay struct {
	Clock string
	Port  string
	Delay float64
}

// PathException is a set_false_path, set_multicycle_path or set_max_delay
// constraint between two endpoints.
type PathException struct {
	Kind       PathExceptionKind
	From, To   string
	Multiplier int     // set_multicycle_path only
	MaxDelay   float64 // set_max_delay only, nanoseconds
}

// PathExceptionKind tags a PathException's directive.
type PathExceptionKind uint8

// Recognised path-exception kinds.
const (
	FalsePath PathExceptionKind = iota
	MulticyclePath
	MaxDelayPath
)

// Constraints is the parsed contents of one SDC/XDC file.
type Constraints struct {
	Clocks       []Clock
	InputDelays  []PortDelay
	OutputDelays []PortDelay
	Exceptions   []PathException
}

// ParseSDC reads a line-oriented flat-Tcl subset of SDC/XDC, recognising
// create_clock, set_input_delay, set_output_delay, set_false_path,
// set_multicycle_path and set_max_delay. Every other directive is reported
// as a T010 warning into sink and otherwise ignored; ParseSDC never fails,
// matching spec §7's rule that timing analysis emits diagnostics rather
// than returning errors for user-level findings.
func ParseSDC(text string, sink *diag.Sink) Constraints {
	var c Constraints

	scanner := bufio.NewScanner(strings.NewReader(text))
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := tokenizeSDC(line)
		if len(fields) == 0 {
			continue
		}

		directive := fields[0]
		args := parseArgs(fields[1:])

		switch directive {
		case "create_clock":
			c.Clocks = append(c.Clocks, Clock{
				Name:   args.flag("-name"),
				Period: args.floatFlag("-period"),
				Port:   args.tail(),
			})
		case "set_input_delay":
			c.InputDelays = append(c.InputDelays, PortDelay{
				Clock: args.flag("-clock"),
				Delay: args.floatPositional(0),
				Port:  args.tail(),
			})
		case "set_output_delay":
			c.OutputDelays = append(c.OutputDelays, PortDelay{
				Clock: args.flag("-clock"),
				Delay: args.floatPositional(0),
				Port:  args.tail(),
			})
		case "set_false_path":
			c.Exceptions = append(c.Exceptions, PathException{
				Kind: FalsePath,
				From: args.flag("-from"),
				To:   args.flag("-to"),
			})
		case "set_multicycle_path":
			c.Exceptions = append(c.Exceptions, PathException{
				Kind:       MulticyclePath,
				Multiplier: int(args.intPositional(0)),
				From:       args.flag("-from"),
				To:         args.flag("-to"),
			})
		case "set_max_delay":
			c.Exceptions = append(c.Exceptions, PathException{
				Kind:     MaxDelayPath,
				MaxDelay: args.floatPositional(0),
				From:     args.flag("-from"),
				To:       args.flag("-to"),
			})
		default:
			if sink != nil {
				sink.Emit(diag.New(diag.Warning, T010UnknownConstraint, source.Dummy,
					"unrecognised timing constraint directive "+strconv.Quote(directive)))
			}
		}
	}

	return c
}

// tokenizeSDC splits one SDC command line into fields, unwrapping Tcl
// bracket-expressions like "[get_ports clk]" or "[get_pins u1/Q]" down to
// their trailing argument, since this toolchain has no Tcl interpreter
// and treats SDC as a flat command-per-line subset.
func tokenizeSDC(line string) []string {
	raw := strings.Fields(line)
	out := make([]string, 0, len(raw))
	for i := 0; i < len(raw); i++ {
		tok := raw[i]
		if strings.HasPrefix(tok, "[") {
			// Collect until the closing bracket, then keep only the last
			// identifier inside — "[get_ports clk]" -> "clk".
			group := []string{strings.TrimPrefix(tok, "[")}
			for !strings.HasSuffix(raw[i], "]") && i+1 < len(raw) {
				i++
				group = append(group, raw[i])
			}
			last := strings.TrimSuffix(group[len(group)-1], "]")
			out = append(out, last)
			continue
		}
		out = append(out, tok)
	}
	return out
}

// argList is a parsed command's flags plus trailing positional tokens.
type argList struct {
	flags      map[string]string
	positional []string
}

func parseArgs(fields []string) argList {
	a := argList{flags: make(map[string]string)}
	for i := 0; i < len(fields); i++ {
		if strings.HasPrefix(fields[i], "-") && i+1 < len(fields) {
			a.flags[fields[i]] = fields[i+1]
			i++
			continue
		}
		a.positional = append(a.positional, fields[i])
	}
	return a
}

func (a argList) flag(name string) string { return a.flags[name] }

func (a argList) floatFlag(name string) float64 {
	v, _ := strconv.ParseFloat(a.flags[name], 64)
	return v
}

func (a argList) floatPositional(i int) float64 {
	if i >= len(a.positional) {
		return 0
	}
	v, _ := strconv.ParseFloat(a.positional[i], 64)
	return v
}

func (a argList) intPositional(i int) int64 {
	if i >= len(a.positional) {
		return 0
	}
	v, _ := strconv.ParseInt(a.positional[i], 10, 64)
	return v
}

// tail returns the last positional token, the usual place a command's
// target port/pin ends up after flag parsing.
func (a argList) tail() string {
	if len(a.positional) == 0 {
		return ""
	}
	return a.positional[len(a.positional)-1]
}
