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
	"math/rand/v2"
	"os"

	json "github.com/segmentio/encoding/json"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/aion-eda/aion/pkg/arch"
	"github.com/aion-eda/aion/pkg/arch/cyclone"
	"github.com/aion-eda/aion/pkg/arch/xc7"
	"github.com/aion-eda/aion/pkg/bitstream"
	bscyclone "github.com/aion-eda/aion/pkg/bitstream/cyclone"
	bsxc7 "github.com/aion-eda/aion/pkg/bitstream/xc7"
	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/elaborate"
	"github.com/aion-eda/aion/pkg/freq"
	"github.com/aion-eda/aion/pkg/frontend"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/lint"
	"github.com/aion-eda/aion/pkg/lint/rules"
	"github.com/aion-eda/aion/pkg/pnr"
	"github.com/aion-eda/aion/pkg/pnr/place"
	"github.com/aion-eda/aion/pkg/pnr/route"
	"github.com/aion-eda/aion/pkg/project"
	"github.com/aion-eda/aion/pkg/source"
	"github.com/aion-eda/aion/pkg/synth"
	"github.com/aion-eda/aion/pkg/timing"
)

// stage identifies how far runPipeline should carry a build before
// returning, so every subcommand can share the one driver function instead
// of re-deriving the stage sequence (spec §4.14 "one subcommand per stage
// plus a build composite that chains all of them").
type stage int

// Stage boundaries runPipeline recognises, in pipeline order.
const (
	stageElaborate stage = iota
	stageLint
	stageSynth
	stagePnr
	stageTiming
	stageBitstream
)

// String names a stage the way the "stage" log field and the build
// progress reporter render it.
func (s stage) String() string {
	switch s {
	case stageElaborate:
		return "elaborate"
	case stageLint:
		return "lint"
	case stageSynth:
		return "synth"
	case stagePnr:
		return "pnr"
	case stageTiming:
		return "timing"
	case stageBitstream:
		return "bitstream"
	default:
		return "unknown"
	}
}

// pipelineResult accumulates every artifact a pipeline run up to some stage
// produced. Fields past the requested stage are left at their zero value.
type pipelineResult struct {
	proj     *project.Project
	interner *ident.Interner
	sink     *diag.Sink
	design   *ir.Design
	top      *ir.Module
	device   arch.Architecture
	netlist  *synth.Netlist
	pnrNl    *pnr.Netlist
	timing   *timing.Graph
	report   timing.Report
	image    *bitstream.ConfigImage
}

// loadBundle reads and decodes a frontend.Bundle from path. The toolchain's
// own three parsers are out of scope (spec "Deliberately out of scope");
// this is the JSON contract an external frontend produces against, so the
// CLI's own input is just that same bundle serialised to disk.
func loadBundle(path string) (frontend.Bundle, error) {
	var bundle frontend.Bundle

	data, err := os.ReadFile(path)
	if err != nil {
		return bundle, fmt.Errorf("reading bundle %s: %w", path, err)
	}

	if err := json.Unmarshal(data, &bundle); err != nil {
		return bundle, fmt.Errorf("decoding bundle %s: %w", path, err)
	}

	return bundle, nil
}

// resolveDevice picks the project.Target named by targetName (or the
// project's sole target, if it declares exactly one and targetName is
// empty) and instantiates the matching arch.Architecture.
func resolveDevice(proj *project.Project, targetName string) (arch.Architecture, error) {
	if targetName == "" {
		switch len(proj.Targets) {
		case 0:
			return nil, fmt.Errorf("project declares no [targets.*]")
		case 1:
			for name := range proj.Targets {
				targetName = name
			}
		default:
			return nil, fmt.Errorf("project declares multiple targets; pass --target")
		}
	}

	target, ok := proj.Targets[targetName]
	if !ok {
		return nil, fmt.Errorf("no such target %q", targetName)
	}

	switch target.Family {
	case "cyclone":
		device, ok := cyclone.New(target.Device)
		if !ok {
			return nil, fmt.Errorf("unknown cyclone device %q", target.Device)
		}
		return device, nil
	case "xc7":
		dbPath := proj.XrayDBPath(targetName, "AION_XRAY_DB")
		device, ok := xc7.New(target.Device, dbPath)
		if !ok {
			return nil, fmt.Errorf("unknown xc7 device %q", target.Device)
		}
		return device, nil
	default:
		return nil, fmt.Errorf("unrecognised device family %q (target %q)", target.Family, targetName)
	}
}

// configBitDatabase picks the ConfigBitDatabase matching device's family.
func configBitDatabase(device arch.Architecture) (bitstream.ConfigBitDatabase, error) {
	switch device.FamilyName() {
	case "cyclone":
		return bscyclone.New(), nil
	case "xc7":
		return bsxc7.New(), nil
	default:
		return nil, fmt.Errorf("no bitstream database for family %q", device.FamilyName())
	}
}

// runPipeline drives the pipeline from a freshly loaded project and bundle
// through upTo, sharing one code path across every cmd/*.go subcommand
// (elaborate, lint, synth, pnr, timing, bitstream, build). A non-nil error
// means the stage that failed never produced diagnostics explaining why
// (e.g. a bad project file or an unresolvable target); diagnostics reaching
// res.sink are reported separately by the caller via printDiagnostics.
//
// Each stage logs its entry/exit and pass-level counters at Debug and any
// recoverable anomaly (lint errors, unmet timing) at Warn, tagged with the
// `stage` field plus `module`/`device` once those are known (spec:
// "structured fields mirroring pkg/cmd/corset/debug.go"). onStage, if
// given, is additionally invoked once per stage boundary crossed, so that
// `aion build` can drive its terminal progress reporter off the same
// traversal instead of re-deriving it.
func runPipeline(cmd *cobra.Command, bundlePath string, upTo stage, onStage ...func(stage)) (*pipelineResult, error) {
	if GetFlag(cmd, "verbose") {
		log.SetLevel(log.DebugLevel)
	}

	notify := func(s stage) {
		for _, fn := range onStage {
			fn(s)
		}
	}

	log.WithFields(log.Fields{"stage": upTo.String(), "bundle": bundlePath}).Debug("pipeline run starting")

	proj, err := project.Load(GetString(cmd, "project"))
	if err != nil {
		return nil, fmt.Errorf("loading project: %w", err)
	}

	bundle, err := loadBundle(bundlePath)
	if err != nil {
		return nil, err
	}

	interner := ident.New()
	sink := diag.NewSink()
	design := elaborate.Elaborate(bundle, elaborate.Config{Top: proj.Project.Top}, interner, sink)

	res := &pipelineResult{proj: proj, interner: interner, sink: sink, design: design}
	log.WithFields(log.Fields{"stage": "elaborate", "modules": design.ModuleCount()}).Debug("elaboration complete")
	notify(stageElaborate)
	if upTo == stageElaborate {
		return res, nil
	}

	lint.NewEngine(rules.Default()...).Run(design, interner, lint.Config(proj.Lint), sink)
	if n := sink.ErrorCount(); n > 0 {
		log.WithFields(log.Fields{"stage": "lint", "errors": n}).Warn("lint reported errors")
	}
	log.WithFields(log.Fields{"stage": "lint", "diagnostics": len(sink.Snapshot())}).Debug("lint pass complete")
	notify(stageLint)
	if upTo == stageLint {
		return res, nil
	}

	top := design.TopModule()
	if top == nil {
		return res, fmt.Errorf("design has no top module")
	}
	res.top = top

	device, err := resolveDevice(proj, GetString(cmd, "target"))
	if err != nil {
		return res, err
	}
	res.device = device
	log.WithFields(log.Fields{
		"stage":  "synth",
		"device": device.DeviceName(),
		"family": device.FamilyName(),
	}).Debug("resolved target device")

	var topNetlist *synth.Netlist
	for i := uint32(0); i < design.ModuleCount(); i++ {
		m := design.Module(ir.ModuleId(i))
		_, nl := synth.Optimize(design, m)
		synth.MapModule(design, m, nl, device.TechMapper())
		log.WithFields(log.Fields{
			"stage":  "synth",
			"module": interner.String(m.Name),
			"device": device.DeviceName(),
		}).Debug("tech-mapped module")
		if ir.ModuleId(i) == design.Top {
			topNetlist = nl
		}
	}
	res.netlist = topNetlist
	notify(stageSynth)
	if upTo == stageSynth {
		return res, nil
	}

	pnrNl := pnr.Build(top, topNetlist)
	res.pnrNl = pnrNl

	rng := rand.New(rand.NewPCG(1, 2))
	if err := place.RandomPlace(pnrNl, device.Resources(), nil, rng); err != nil {
		return res, fmt.Errorf("placement: %w", err)
	}
	place.Anneal(pnrNl, rng)
	log.WithFields(log.Fields{
		"stage":  "pnr",
		"device": device.DeviceName(),
		"cells":  pnrNl.Cells.Len(),
	}).Debug("placement complete")

	route.Route(pnrNl, device.RoutingGraph(), interner, route.Options{}.WithDefaults())
	log.WithFields(log.Fields{"stage": "pnr", "nets": pnrNl.Nets.Len()}).Debug("routing complete")
	notify(stagePnr)
	if upTo == stagePnr {
		return res, nil
	}

	graph := timing.Build(top, pnrNl, device.RoutingGraph(), interner)
	res.timing = graph

	sdcPath := GetString(cmd, "sdc")
	var constraints timing.Constraints
	if sdcPath != "" {
		text, err := os.ReadFile(sdcPath)
		if err != nil {
			return res, fmt.Errorf("reading sdc %s: %w", sdcPath, err)
		}
		constraints = timing.ParseSDC(string(text), sink)
	}
	applied := timing.ResolveConstraints(graph, constraints)
	if applied.Period == 0 {
		applied.Period = freq.Hz(proj.Build.TargetFrequency).PeriodNs()
	}
	res.report = timing.Analyze(graph, applied, 1)
	if res.report.Met {
		log.WithFields(log.Fields{"stage": "timing", "worst_slack_ns": res.report.WorstSlack}).Debug("timing analysis complete")
	} else {
		log.WithFields(log.Fields{"stage": "timing", "worst_slack_ns": res.report.WorstSlack}).Warn("timing not met")
	}
	notify(stageTiming)
	if upTo == stageTiming {
		return res, nil
	}

	db, err := configBitDatabase(device)
	if err != nil {
		return res, err
	}
	res.image = bitstream.Program(top, pnrNl, interner, db)
	log.WithFields(log.Fields{"stage": "bitstream", "device": device.DeviceName()}).Debug("bitstream image generated")
	notify(stageBitstream)

	return res, nil
}

// printDiagnostics writes diags to stderr in the plain-text form every
// subcommand reports before exiting: "severity code: message", followed by
// any notes indented two spaces. No source.Database is available here (a
// bundle's spans come from whichever external frontend produced it), so
// spans themselves are not rendered; pass --json for the full §6 wire
// rendering, which degrades spans to "<synthetic>" the same way.
func printDiagnostics(diags []diag.Diagnostic) {
	for _, d := range diags {
		fmt.Fprintf(os.Stderr, "%s %s: %s\n", d.Severity, d.Code, d.Message)
		for _, note := range d.Notes {
			fmt.Fprintf(os.Stderr, "  note: %s\n", note)
		}
	}
}

// printDiagnosticsJSON writes diags per the §6 JSON rendering contract. An
// empty, file-less source.Database is passed: every span's FileId then
// falls outside its range, which ToJSON renders as "<synthetic>" — the same
// outcome as passing a nil db.
func printDiagnosticsJSON(diags []diag.Diagnostic) error {
	out, err := diag.ToJSON(source.NewDatabase(), diags)
	if err != nil {
		return err
	}
	fmt.Println(string(out))
	return nil
}

// reportAndExit prints res.sink's diagnostics (as JSON if the --json flag
// is set) and exits 1 if any reached Error severity.
func reportAndExit(cmd *cobra.Command, res *pipelineResult) {
	diags := res.sink.Snapshot()
	if GetFlag(cmd, "json") {
		if err := printDiagnosticsJSON(diags); err != nil {
			fmt.Println(err)
			os.Exit(2)
		}
	} else {
		printDiagnostics(diags)
	}

	if res.sink.HasErrors() {
		os.Exit(1)
	}
}
