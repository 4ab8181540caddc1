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
package project_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aion-eda/aion/pkg/project"
)

func writeToml(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "aion.toml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadMinimalProject(t *testing.T) {
	path := writeToml(t, `
[project]
name = "blinky"
version = "0.1.0"
top = "blinky_top"
`)

	p, err := project.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "blinky", p.Project.Name)
	assert.Equal(t, "blinky_top", p.Project.Top)
	assert.Empty(t, p.Targets)
}

func TestLoadFullProject(t *testing.T) {
	path := writeToml(t, `
[project]
name = "blinky"
version = "0.1.0"
top = "blinky_top"

[targets.de10lite]
device = "10M50DAF484C7G"
family = "cyclone10lp"
pins = ["clk", "led0"]
constraints = ["constraints/de10lite.sdc"]

[targets.arty]
device = "xc7a35t"
family = "xc7"
xray_db_path = "/opt/xray/xc7a35t"

[pins.clk]
pin = "P11"
io_standard = "3.3-V LVTTL"

[pins.led0]
pin = "A8"
io_standard = "3.3-V LVTTL"

[build]
optimization = "speed"
target_frequency = 50000000

[lint]
deny = ["latch-inferred"]
allow = ["unused-port"]
warn = ["wide-mux"]

[dependencies]
uart = "1.2.0"
`)

	p, err := project.Load(path)
	require.NoError(t, err)

	require.Contains(t, p.Targets, "de10lite")
	assert.Equal(t, "cyclone10lp", p.Targets["de10lite"].Family)
	assert.Equal(t, []string{"clk", "led0"}, p.Targets["de10lite"].Pins)

	require.Contains(t, p.Pins, "clk")
	assert.Equal(t, "P11", p.Pins["clk"].Pin)

	assert.Equal(t, project.OptimizationSpeed, p.Build.Optimization)
	assert.Equal(t, []string{"latch-inferred"}, p.Lint.Deny)
	assert.Equal(t, "1.2.0", p.Dependencies["uart"])

	assert.Equal(t, "/opt/xray/xc7a35t", p.XrayDBPath("arty", "AION_XRAY_DB"))
}

func TestLoadMalformedTomlReturnsError(t *testing.T) {
	path := writeToml(t, `[project
name = "broken"`)

	_, err := project.Load(path)
	assert.Error(t, err)
}

func TestLoadMissingFileReturnsError(t *testing.T) {
	_, err := project.Load(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}

func TestLoadRejectsEmptyName(t *testing.T) {
	path := writeToml(t, `
[project]
name = ""
top = "top"
`)
	_, err := project.Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyTop(t *testing.T) {
	path := writeToml(t, `
[project]
name = "blinky"
top = ""
`)
	_, err := project.Load(path)
	assert.Error(t, err)
}

func TestLoadRejectsUnknownOptimization(t *testing.T) {
	path := writeToml(t, `
[project]
name = "blinky"
top = "top"

[build]
optimization = "fastest"
`)
	_, err := project.Load(path)
	assert.Error(t, err)
}

func TestXrayDBPathFallsBackToEnv(t *testing.T) {
	path := writeToml(t, `
[project]
name = "blinky"
top = "top"

[targets.arty]
device = "xc7a35t"
family = "xc7"
`)
	p, err := project.Load(path)
	require.NoError(t, err)

	t.Setenv("AION_XRAY_DB", "/opt/xray/default")
	assert.Equal(t, "/opt/xray/default", p.XrayDBPath("arty", "AION_XRAY_DB"))
}
