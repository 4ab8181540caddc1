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

// Package project loads and validates the TOML project configuration (spec
// §6 "External interfaces" / §4.12 EXPANDED): the one on-disk input that
// names a design's top module, its build targets, and its pin/constraint
// wiring. A malformed or invalid config is an aerr.Error, never a
// diag.Diagnostic — configuration is a precondition the driver checks
// before a pipeline invocation exists to report diagnostics against, not a
// finding about a design.
package project

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/aion-eda/aion/pkg/aerr"
)

// Optimization selects the synthesis/PnR cost function a build target
// optimizes for.
type Optimization string

// Recognised optimization modes (spec §6 "optimization ∈ {area, speed,
// balanced}").
const (
	OptimizationArea     Optimization = "area"
	OptimizationSpeed    Optimization = "speed"
	OptimizationBalanced Optimization = "balanced"
)

// Info is the required `[project]` table.
type Info struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Top     string `toml:"top"`
}

// Target is one `[targets.<name>]` entry: a device/family pairing plus the
// pin and constraint files it builds against.
type Target struct {
	Device      string   `toml:"device"`
	Family      string   `toml:"family"`
	Pins        []string `toml:"pins"`
	Constraints []string `toml:"constraints"`
	// XrayDBPath overrides AION_XRAY_DB for this target (spec §6 "xray_db_path
	// config entry"); empty means fall back to the environment variable.
	XrayDBPath string `toml:"xray_db_path"`
}

// Pin is one `[pins.<name>]` entry, binding a logical port name to a
// physical package pin and its I/O electrical standard.
type Pin struct {
	Pin       string `toml:"pin"`
	IOStandard string `toml:"io_standard"`
}

// Build is the `[build]` table shared across targets.
type Build struct {
	Optimization    Optimization `toml:"optimization"`
	TargetFrequency float64      `toml:"target_frequency"`
}

// Lint is the `[lint]` table: rule names bucketed by the severity a design
// violating them should be reported at.
type Lint struct {
	Deny  []string `toml:"deny"`
	Allow []string `toml:"allow"`
	Warn  []string `toml:"warn"`
}

// Project is a fully parsed and validated project configuration.
type Project struct {
	Project      Info              `toml:"project"`
	Targets      map[string]Target `toml:"targets"`
	Pins         map[string]Pin    `toml:"pins"`
	Build        Build             `toml:"build"`
	Lint         Lint              `toml:"lint"`
	Dependencies map[string]string `toml:"dependencies"`
}

// Load reads and parses the TOML project configuration at path, then
// validates it: non-empty `name` and `top`, and (when set) an `optimization`
// drawn from the recognised set. Every failure — I/O, malformed TOML, a
// failed validation rule — returns a non-nil *aerr.Error wrapped as error;
// callers should treat any non-nil error here as refusing to start the
// pipeline, not as something to route through the diagnostic sink.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, aerr.Wrap(err, "project: reading %q", path)
	}

	var p Project
	if err := toml.Unmarshal(data, &p); err != nil {
		return nil, aerr.Wrap(err, "project: parsing %q", path)
	}

	if err := p.validate(path); err != nil {
		return nil, err
	}

	return &p, nil
}

func (p *Project) validate(path string) error {
	if p.Project.Name == "" {
		return aerr.New("project: %q: [project] name must not be empty", path)
	}
	if p.Project.Top == "" {
		return aerr.New("project: %q: [project] top must not be empty", path)
	}

	switch p.Build.Optimization {
	case "", OptimizationArea, OptimizationSpeed, OptimizationBalanced:
	default:
		return aerr.New("project: %q: [build] optimization %q is not one of area, speed, balanced",
			path, p.Build.Optimization)
	}

	return nil
}

// XrayDBPath resolves the X-Ray database directory for a named target,
// preferring its own xray_db_path over the process-wide environment
// variable (spec §6 "Location from AION_XRAY_DB environment variable or
// xray_db_path config entry").
func (p *Project) XrayDBPath(target string, envVar string) string {
	if t, ok := p.Targets[target]; ok && t.XrayDBPath != "" {
		return t.XrayDBPath
	}
	return os.Getenv(envVar)
}

// String renders a Target for diagnostic/log messages.
func (t Target) String() string {
	return fmt.Sprintf("%s/%s", t.Family, t.Device)
}
