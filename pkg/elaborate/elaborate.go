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
package elaborate

import (
	"fmt"

	"github.com/aion-eda/aion/pkg/diag"
	"github.com/aion-eda/aion/pkg/frontend"
	"github.com/aion-eda/aion/pkg/ident"
	"github.com/aion-eda/aion/pkg/ir"
	"github.com/aion-eda/aion/pkg/logic"
	"github.com/aion-eda/aion/pkg/source"
)

// color marks a module's elaboration state for cycle detection (spec §9
// "tricolor marking").
type color uint8

const (
	white color = iota
	gray
	black
)

// elaborator carries the state threaded through one Elaborate call.
type elaborator struct {
	decls    map[string]frontend.ModuleDecl
	order    []string // declaration order, for deterministic duplicate reporting
	interner *ident.Interner
	sink     *diag.Sink
	design   *ir.Design
	ids      map[string]ir.ModuleId
	colors   map[string]color
}

// Elaborate merges a bundle of per-language ASTs into a unified Design
// (spec §4.2). User-level errors go to sink; Elaborate itself never fails
// outright — a module that cannot be elaborated is replaced by a BlackBox
// so the rest of the design still elaborates.
func Elaborate(bundle frontend.Bundle, cfg Config, interner *ident.Interner, sink *diag.Sink) *ir.Design {
	e := &elaborator{
		decls:  make(map[string]frontend.ModuleDecl),
		ids:    make(map[string]ir.ModuleId),
		colors: make(map[string]color),
		interner: interner,
		sink:   sink,
		design: ir.NewDesign(interner),
	}
	// Step 1+2: collect declarations, detect duplicates (E202).
	for _, m := range bundle.Modules {
		if first, ok := e.decls[m.Name]; ok {
			d := diag.New(diag.Error, diag.E202DuplicateModule, m.Span,
				fmt.Sprintf("duplicate module %q", m.Name))
			d = d.WithLabel(first.Span, "first defined here")
			sink.Emit(d)
			continue
		}
		//
		e.decls[m.Name] = m
		e.order = append(e.order, m.Name)
	}
	// Step 3: resolve top.
	top, ok := e.decls[cfg.Top]
	if !ok {
		sink.Emit(diag.New(diag.Error, diag.E206TopMissing, source.Dummy,
			fmt.Sprintf("top module %q not found", cfg.Top)))
		// Best-effort: elaborate every declared module as an independent
		// root so the rest of the design is still available (spec §4.2
		// scenario: "design still elaborates with foo present").
		for _, name := range e.order {
			e.elaborateModule(name)
		}
		//
		e.design.Top = ir.InvalidModule
		//
		return e.design
	}
	//
	topId := e.elaborateModule(top.Name)
	e.design.Top = topId
	//
	return e.design
}

// elaborateModule elaborates (or returns the already-elaborated id of)
// module name, detecting instantiation cycles via tricolor marking (spec
// §4.2 step 4, §9 "Cyclic structures").
func (e *elaborator) elaborateModule(name string) ir.ModuleId {
	if id, ok := e.ids[name]; ok {
		return id
	}
	//
	decl, ok := e.decls[name]
	if !ok {
		// Unknown module referenced from an instantiation; caller already
		// emitted E200. Substitute an empty black-box module.
		return e.blackBoxModule(name)
	}
	//
	if e.colors[name] == gray {
		e.sink.Emit(diag.New(diag.Error, diag.E207CircularInstantiate, decl.Span,
			fmt.Sprintf("circular instantiation involving module %q", name)))
		return e.blackBoxModule(name)
	}
	//
	e.colors[name] = gray
	//
	id, ok := e.elaborateModuleBodySafe(decl)
	if !ok {
		id = e.blackBoxModule(name)
	}
	//
	e.ids[name] = id
	e.colors[name] = black
	//
	return id
}

// elaborateModuleBodySafe runs elaborateModuleBody under a recover, so a
// panic deep in body lowering (e.g. a malformed non-ANSI port list from a
// front-end that this elaborator does not fully validate — see DESIGN.md,
// "Non-ANSI Verilog ports") degrades to an E210 diagnostic and a black-box
// substitution instead of aborting the whole run.
func (e *elaborator) elaborateModuleBodySafe(decl frontend.ModuleDecl) (id ir.ModuleId, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			e.sink.Emit(diag.New(diag.Error, diag.E210Unsupported, decl.Span,
				fmt.Sprintf("module %q failed to elaborate: %v", decl.Name, r)))
			ok = false
		}
	}()
	//
	return e.elaborateModuleBody(decl), true
}

// blackBoxModule fabricates a stand-in BlackBox module for one that failed
// to elaborate, so the rest of the design still elaborates (spec §4.2
// "Error handling").
func (e *elaborator) blackBoxModule(name string) ir.ModuleId {
	if id, ok := e.ids[name]; ok {
		return id
	}
	//
	m := ir.NewModule(e.interner.Intern(name))
	id := e.design.AllocModule(m)
	e.ids[name] = id
	//
	return id
}

// elaborateModuleBody lowers one module declaration's parameters, ports,
// signals, concurrent assignments, processes and instantiations into a
// fresh ir.Module (spec §4.2 step 4). Modules are elaborated once against
// their declared parameter defaults, not once per instantiation: per-site
// parameter overrides are constant-evaluated and validated (E209) and
// recorded on the instantiating Cell's ParamBinding list for synthesis and
// bitstream stages to consume, but they do not re-specialize the callee's
// signal widths or body (see DESIGN.md, "module specialization").
func (e *elaborator) elaborateModuleBody(decl frontend.ModuleDecl) ir.ModuleId {
	m := ir.NewModule(e.interner.Intern(decl.Name))
	id := e.design.AllocModule(m)
	e.design.Source.PutModule(id, decl.Span)
	//
	ctx := &moduleCtx{
		e:      e,
		module: m,
		modId:  id,
		sigMap: make(map[string]ir.SignalId),
		params: make(map[string]uint64),
	}
	//
	e.elaborateParameters(ctx, decl.Parameters)
	signals, assigns, instances := e.spliceGenerates(decl, ctx)
	//
	e.elaboratePorts(ctx, decl.Ports)
	e.elaborateSignals(ctx, signals)
	//
	for _, a := range assigns {
		m.Assigns = append(m.Assigns, ir.Assignment{
			Target: ctx.resolveLValue(a.Target),
			Expr:   ctx.resolveExpr(a.Expr),
		})
	}
	//
	for _, p := range decl.Processes {
		e.elaborateProcess(ctx, p)
	}
	//
	for _, inst := range instances {
		e.elaborateInstance(ctx, inst)
	}
	//
	return id
}

// spliceGenerates evaluates each GenerateDecl's condition against the
// module's already-resolved parameter environment and, for those that fold
// true, appends their nested declarations to the plain declaration lists
// (§3.1 EXPANDED "Generate constructs"). A condition that is absent counts
// as true; one that fails to constant-fold is treated as false and
// reported.
func (e *elaborator) spliceGenerates(decl frontend.ModuleDecl, ctx *moduleCtx) ([]frontend.SignalDecl, []frontend.AssignDecl, []frontend.InstanceDecl) {
	signals := append([]frontend.SignalDecl(nil), decl.Signals...)
	assigns := append([]frontend.AssignDecl(nil), decl.Assigns...)
	instances := append([]frontend.InstanceDecl(nil), decl.Instances...)
	//
	for _, g := range decl.Generates {
		taken := true
		//
		if g.Condition != nil {
			v, ok := constEval(g.Condition, ctx.params)
			if !ok {
				e.sink.Emit(diag.New(diag.Error, diag.E209NonConstantParam, g.Span,
					"generate condition is not a constant expression"))
			}
			taken = ok && v != 0
		}
		//
		if !taken {
			continue
		}
		//
		signals = append(signals, g.Signals...)
		assigns = append(assigns, g.Assigns...)
		instances = append(instances, g.Instances...)
	}
	//
	return signals, assigns, instances
}

// elaborateParameters evaluates each parameter's default expression (§4.2
// step 4(a)) against the parameters already resolved earlier in the same
// declaration list, recording both the resolved value (ctx.params, for
// width/generate evaluation) and the ir.Parameter record.
func (e *elaborator) elaborateParameters(ctx *moduleCtx, decls []frontend.ParamDecl) {
	for _, p := range decls {
		var val uint64
		//
		if p.Default != nil {
			v, ok := constEval(p.Default, ctx.params)
			if !ok {
				e.sink.Emit(diag.New(diag.Error, diag.E209NonConstantParam, p.Span,
					fmt.Sprintf("parameter %q default is not a constant expression", p.Name)))
			} else {
				val = v
			}
		}
		//
		ctx.params[p.Name] = val
		//
		ctx.module.Parameters = append(ctx.module.Parameters, ir.Parameter{
			Name:  e.interner.Intern(p.Name),
			Type:  e.design.Types.Intern(ir.IntType),
			Value: logic.FromUint(32, val),
		})
	}
}

// elaborateSignal allocates one signal (port or plain) on ctx's module,
// reporting E203 ("first declaration wins") if the name is already bound.
// Returns the allocated id and whether allocation actually happened.
func (e *elaborator) elaborateSignal(ctx *moduleCtx, name string, span source.Span, width *frontend.Expr, signed bool, kind ir.SignalKind) (ir.SignalId, bool) {
	if _, dup := ctx.sigMap[name]; dup {
		e.sink.Emit(diag.New(diag.Error, diag.E203DuplicateSignal, span,
			fmt.Sprintf("duplicate signal %q", name)))
		return ir.InvalidSignal, false
	}
	//
	w := evalWidth(width, ctx.params)
	typ := ctx.bitVecType(w, signed)
	sigId := ctx.module.AllocSignal(ir.Signal{Name: e.interner.Intern(name), Type: typ, Kind: kind})
	e.design.Source.PutSignal(ctx.modId, sigId, span)
	ctx.sigMap[name] = sigId
	//
	return sigId, true
}

func (e *elaborator) elaboratePorts(ctx *moduleCtx, decls []frontend.PortDecl) {
	for _, p := range decls {
		sigId, ok := e.elaborateSignal(ctx, p.Name, p.Span, p.Width, p.Signed, ir.Port)
		if !ok {
			continue
		}
		//
		ctx.module.Ports = append(ctx.module.Ports, ir.PortDecl{
			Name:      e.interner.Intern(p.Name),
			Direction: p.Direction,
			Type:      ctx.module.Signal(sigId).Type,
			Signal:    sigId,
		})
	}
}

func (e *elaborator) elaborateSignals(ctx *moduleCtx, decls []frontend.SignalDecl) {
	for _, s := range decls {
		e.elaborateSignal(ctx, s.Name, s.Span, s.Width, s.Signed, s.Kind)
	}
}

// elaborateProcess lowers one behavioural block, resolving its sensitivity
// list against ctx's signal bindings (E204 for a name that isn't a declared
// signal) and its body via resolveStmt.
func (e *elaborator) elaborateProcess(ctx *moduleCtx, p frontend.ProcessDecl) {
	sens := ir.Sensitivity{Kind: p.Sensitivity.Kind}
	//
	for _, ed := range p.Sensitivity.Edges {
		sigId, ok := ctx.lookupSignal(ed.Signal)
		if !ok {
			e.sink.Emit(diag.New(diag.Error, diag.E204UnknownSignal, p.Span,
				fmt.Sprintf("unknown signal %q in sensitivity list", ed.Signal)))
			continue
		}
		//
		sens.Edges = append(sens.Edges, ir.EdgeEntry{Signal: sigId, Edge: ed.Edge})
	}
	//
	for _, name := range p.Sensitivity.Signals {
		sigId, ok := ctx.lookupSignal(name)
		if !ok {
			e.sink.Emit(diag.New(diag.Error, diag.E204UnknownSignal, p.Span,
				fmt.Sprintf("unknown signal %q in sensitivity list", name)))
			continue
		}
		//
		sens.Signals = append(sens.Signals, sigId)
	}
	//
	body := ctx.resolveStmt(&p.Body)
	procId := ctx.module.AllocProcess(ir.Process{Kind: p.Kind, Body: body, Sensitivity: sens})
	e.design.Source.PutProcess(ctx.modId, procId, p.Span)
}

// elaborateInstance lowers one instantiation into an ir.Cell, recursively
// elaborating the callee (E200 if unknown), validating connections against
// the callee's declared ports (E208 unknown port, W201 unconnected port),
// and constant-evaluating parameter overrides (E209 if not constant).
func (e *elaborator) elaborateInstance(ctx *moduleCtx, inst frontend.InstanceDecl) {
	if _, known := e.decls[inst.ModuleName]; !known {
		e.sink.Emit(diag.New(diag.Error, diag.E200UnknownModule, inst.Span,
			fmt.Sprintf("unknown module %q", inst.ModuleName)))
	}
	//
	calleeId := e.elaborateModule(inst.ModuleName)
	callee := e.design.Module(calleeId)
	//
	var bindings []ir.ParamBinding
	//
	for _, pb := range inst.Params {
		v, ok := constEval(pb.Expr, ctx.params)
		if !ok {
			e.sink.Emit(diag.New(diag.Error, diag.E209NonConstantParam, inst.Span,
				fmt.Sprintf("parameter override %q is not a constant expression", pb.Name)))
			continue
		}
		//
		bindings = append(bindings, ir.ParamBinding{Name: e.interner.Intern(pb.Name), Value: logic.FromUint(32, v)})
	}
	//
	connected := make(map[ident.ID]bool, len(inst.Connections))
	var conns []ir.Connection
	//
	for _, c := range inst.Connections {
		portName := e.interner.Intern(c.Port)
		//
		port, ok := callee.FindPort(portName)
		if !ok {
			e.sink.Emit(diag.New(diag.Error, diag.E208UnknownPort, c.Span,
				fmt.Sprintf("module %q has no port %q", inst.ModuleName, c.Port)))
			continue
		}
		//
		conns = append(conns, ir.Connection{
			Port:      portName,
			Signal:    ctx.resolveLValue(c.Signal),
			Direction: port.Direction,
		})
		connected[portName] = true
	}
	//
	for _, port := range callee.Ports {
		if !connected[port.Name] {
			e.sink.Emit(diag.New(diag.Warning, diag.W201UnconnectedPort, inst.Span,
				fmt.Sprintf("port %q of instance %q is unconnected", e.interner.String(port.Name), inst.InstanceName)))
		}
	}
	//
	cell := ir.Cell{
		Instance:    e.interner.Intern(inst.InstanceName),
		Kind:        ir.CellKind{Tag: ir.CellInstance, Module: calleeId, Params: bindings},
		Connections: conns,
		HierPath:    inst.InstanceName,
	}
	//
	cellId := ctx.module.AllocCell(cell)
	e.design.Source.PutCell(ctx.modId, cellId, inst.Span)
}
