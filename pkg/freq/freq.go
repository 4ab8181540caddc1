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

// Package freq implements Hertz-valued frequencies, as used by project
// configuration (target_frequency) and timing constraints (create_clock).
package freq

import (
	"fmt"
	"strconv"
	"strings"
)

// Hz is a frequency expressed in cycles per second.
type Hz float64

var unitMultiplier = map[string]float64{
	"hz":  1,
	"khz": 1e3,
	"mhz": 1e6,
	"ghz": 1e9,
}

// Parse accepts "NNNunit" where unit is one of Hz, KHz, MHz, GHz
// (case-insensitive), optionally with a decimal point, e.g. "100MHz",
// "3.5ghz", "50Hz".
func Parse(s string) (Hz, error) {
	s = strings.TrimSpace(s)
	//
	i := len(s)
	for i > 0 && !isDigitOrDot(s[i-1]) {
		i--
	}
	//
	numPart, unitPart := s[:i], strings.ToLower(s[i:])
	//
	mult, ok := unitMultiplier[unitPart]
	if !ok {
		return 0, fmt.Errorf("freq: unrecognised unit %q", unitPart)
	}
	//
	value, err := strconv.ParseFloat(numPart, 64)
	if err != nil {
		return 0, fmt.Errorf("freq: invalid numeric part %q: %w", numPart, err)
	}
	//
	return Hz(value * mult), nil
}

func isDigitOrDot(b byte) bool {
	return (b >= '0' && b <= '9') || b == '.'
}

// PeriodNs returns the clock period in nanoseconds, the unit pkg/timing's
// graph edges and AppliedConstraints.Period both use (§4.9), for a
// non-zero frequency. Zero or negative frequencies have no period.
func (f Hz) PeriodNs() float64 {
	if f <= 0 {
		return 0
	}
	//
	return 1e9 / float64(f)
}

// String renders a human-scaled frequency, e.g. "100MHz".
func (f Hz) String() string {
	switch {
	case f >= 1e9:
		return fmt.Sprintf("%gGHz", float64(f)/1e9)
	case f >= 1e6:
		return fmt.Sprintf("%gMHz", float64(f)/1e6)
	case f >= 1e3:
		return fmt.Sprintf("%gKHz", float64(f)/1e3)
	default:
		return fmt.Sprintf("%gHz", float64(f))
	}
}
