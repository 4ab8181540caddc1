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
	"sort"

	"github.com/aion-eda/aion/pkg/arena"
)

// PathElement is one hop of a reported critical path.
type PathElement struct {
	Node     NodeId
	Arrival  float64
	Required float64
	Delay    float64
}

// CriticalPath is one worst-slack path from a launch point to an endpoint.
type CriticalPath struct {
	Slack    float64
	Elements []PathElement
}

// Report is the outcome of one Analyze call (spec §4.9 steps 3-5).
type Report struct {
	WorstSlack float64
	Met        bool
	Paths      []CriticalPath
}

// Analyze runs the forward arrival-time pass and backward required-time
// pass over g and reports the worstN distinct critical paths (spec §4.9
// steps 1-5).
//
// PrimaryInput and Register nodes (a register's Q pin conceptually
// relaunches data every cycle) start the forward pass at arrival 0, or at
// applied.InputDelay[node] if set. PrimaryOutput and Register nodes are
// bounded by required = applied.Period (scaled by applied.Multiplier for a
// set_multicycle_path endpoint, or overridden outright by
// applied.MaxDelayBound for a set_max_delay endpoint) minus
// applied.OutputDelay[node], in the backward pass. Endpoints in
// applied.Exempt (set_false_path) are skipped entirely: no slack is
// computed and they never appear in Report.Paths.
func Analyze(g *Graph, applied AppliedConstraints, worstN int) Report {
	order := topoOrder(g)

	arrival := make(map[NodeId]float64, int(g.Nodes.Len()))
	g.Nodes.All(func(id arena.Id, n Node) bool {
		if n.Kind == PrimaryInput || n.Kind == Register {
			arrival[NodeId(id)] = applied.InputDelay[NodeId(id)]
		}
		return true
	})

	for _, id := range order {
		for _, eIdx := range g.Out(id) {
			e := g.Edges[eIdx]
			cand := arrival[id] + e.Delay.Max
			if cand > arrival[e.To] {
				arrival[e.To] = cand
			}
		}
	}

	required := make(map[NodeId]float64, int(g.Nodes.Len()))
	g.Nodes.All(func(id arena.Id, n Node) bool {
		if n.Kind != PrimaryOutput && n.Kind != Register {
			return true
		}
		if applied.Exempt[NodeId(id)] {
			return true
		}
		if bound, ok := applied.MaxDelayBound[NodeId(id)]; ok {
			required[NodeId(id)] = bound
			return true
		}
		bound := applied.Period
		if mult, ok := applied.Multiplier[NodeId(id)]; ok && mult > 0 {
			bound *= float64(mult)
		}
		required[NodeId(id)] = bound - applied.OutputDelay[NodeId(id)]
		return true
	})

	for i := len(order) - 1; i >= 0; i-- {
		id := order[i]
		reqId, hasReq := required[id]
		if !hasReq {
			// Nothing downstream of id ever established a required time
			// (id is a non-endpoint dead end, or an exempted endpoint) —
			// nothing to propagate backward from it.
			continue
		}
		for _, eIdx := range g.In(id) {
			e := g.Edges[eIdx]
			cand := reqId - e.Delay.Max
			if existing, seen := required[e.From]; !seen || cand < existing {
				required[e.From] = cand
			}
		}
	}

	worstSlack := applied.Period
	slackOf := func(id NodeId) (float64, bool) {
		req, hasReq := required[id]
		arr, hasArr := arrival[id]
		if !hasReq || !hasArr {
			return 0, false
		}
		return req - arr, true
	}

	type endpoint struct {
		id    NodeId
		slack float64
	}
	var endpoints []endpoint
	g.Nodes.All(func(id arena.Id, n Node) bool {
		if n.Kind != PrimaryOutput && n.Kind != Register {
			return true
		}
		if applied.Exempt[NodeId(id)] {
			return true
		}
		if s, ok := slackOf(NodeId(id)); ok {
			endpoints = append(endpoints, endpoint{NodeId(id), s})
			if s < worstSlack {
				worstSlack = s
			}
		}
		return true
	})

	sort.Slice(endpoints, func(i, j int) bool { return endpoints[i].slack < endpoints[j].slack })
	if worstN > len(endpoints) {
		worstN = len(endpoints)
	}

	paths := make([]CriticalPath, 0, worstN)
	for _, ep := range endpoints[:worstN] {
		paths = append(paths, tracePath(g, ep.id, arrival, required, ep.slack))
	}

	return Report{WorstSlack: worstSlack, Met: worstSlack >= 0, Paths: paths}
}

// topoOrder computes a topological order of g's nodes via Kahn's
// algorithm, falling back to arena allocation order for any node left
// unvisited by a true combinational feedback loop (not expected to occur:
// see the package doc comment on what this graph actually models — every
// cycle-forming path would have to avoid both module ports and every
// register boundary).
func topoOrder(g *Graph) []NodeId {
	indegree := make(map[NodeId]int, int(g.Nodes.Len()))
	g.Nodes.All(func(id arena.Id, _ Node) bool {
		indegree[NodeId(id)] = len(g.In(NodeId(id)))
		return true
	})

	var queue []NodeId
	g.Nodes.All(func(id arena.Id, _ Node) bool {
		if indegree[NodeId(id)] == 0 {
			queue = append(queue, NodeId(id))
		}
		return true
	})

	visited := make(map[NodeId]bool, int(g.Nodes.Len()))
	order := make([]NodeId, 0, int(g.Nodes.Len()))
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		if visited[id] {
			continue
		}
		visited[id] = true
		order = append(order, id)

		for _, eIdx := range g.Out(id) {
			to := g.Edges[eIdx].To
			indegree[to]--
			if indegree[to] == 0 {
				queue = append(queue, to)
			}
		}
	}

	if len(order) < int(g.Nodes.Len()) {
		g.Nodes.All(func(id arena.Id, _ Node) bool {
			if !visited[NodeId(id)] {
				order = append(order, NodeId(id))
			}
			return true
		})
	}

	return order
}

// tracePath follows the minimum-slack chain backward from endpoint to a
// launch point, reconstructing the worst path's per-element timing.
func tracePath(g *Graph, endpoint NodeId, arrival, required map[NodeId]float64, slack float64) CriticalPath {
	var elements []PathElement
	cur := endpoint
	incomingDelay := 0.0

	for {
		el := PathElement{Node: cur, Arrival: arrival[cur], Required: required[cur], Delay: incomingDelay}
		elements = append([]PathElement{el}, elements...)

		in := g.In(cur)
		if len(in) == 0 {
			break
		}
		best := in[0]
		for _, idx := range in[1:] {
			if arrival[g.Edges[idx].From]+g.Edges[idx].Delay.Max > arrival[g.Edges[best].From]+g.Edges[best].Delay.Max {
				best = idx
			}
		}
		incomingDelay = g.Edges[best].Delay.Max
		cur = g.Edges[best].From
	}

	return CriticalPath{Slack: slack, Elements: elements}
}
