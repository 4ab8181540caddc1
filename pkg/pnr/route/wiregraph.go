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
package route

import (
	"container/heap"

	"github.com/aion-eda/aion/pkg/arch"
)

// pipEdge is one traversed PIP in an A*-found path.
type pipEdge struct {
	src, dst string
	delay    float64
}

// wireGraph is an adjacency-list view of an arch.RoutingGraph's PIPs, plus
// a stable index per wire used for the Manhattan-distance heuristic (spec
// §4.8 "Heuristic is a scaled Manhattan distance between wire indices").
type wireGraph struct {
	graph   arch.RoutingGraph
	out     map[string][]arch.PIP
	wireIdx map[string]int
}

func buildWireGraph(graph arch.RoutingGraph) *wireGraph {
	g := &wireGraph{graph: graph, out: make(map[string][]arch.PIP), wireIdx: make(map[string]int)}
	for i, w := range graph.Wires {
		g.wireIdx[w.Name] = i
	}
	for _, p := range graph.PIPs {
		g.out[p.SrcWire] = append(g.out[p.SrcWire], p)
	}
	return g
}

func (g *wireGraph) heuristic(from, to string) float64 {
	const scale = 0.01
	return scale * float64(abs(g.wireIdx[from]-g.wireIdx[to]))
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// congestionMap tracks PathFinder's per-wire present-demand and
// persistent history cost (spec §4.8 "Clear present-demand counts
// (history costs persist)").
type congestionMap struct {
	present  map[string]int
	history  map[string]float64
	capacity int
}

func newCongestionMap(capacity int) *congestionMap {
	return &congestionMap{present: make(map[string]int), history: make(map[string]float64), capacity: capacity}
}

func (c *congestionMap) resetPresentDemand() {
	c.present = make(map[string]int)
}

// cost is a wire's routing cost: max(0, present_demand - capacity) +
// history_cost (spec §4.8).
func (c *congestionMap) cost(wire string) float64 {
	over := c.present[wire] - c.capacity
	if over < 0 {
		over = 0
	}
	return float64(over) + c.history[wire]
}

func (c *congestionMap) recordUsage(path []pipEdge) {
	for _, e := range path {
		c.present[e.dst]++
	}
}

func (c *congestionMap) anyOverCapacity() bool {
	for _, n := range c.present {
		if n > c.capacity {
			return true
		}
	}
	return false
}

// raiseHistory increases the history cost of every over-capacity wire by
// overflow * history_factor (spec §4.8 step 5).
func (c *congestionMap) raiseHistory(factor float64) {
	for wire, n := range c.present {
		if over := n - c.capacity; over > 0 {
			c.history[wire] += float64(over) * factor
		}
	}
}

// astarItem is one entry in the A* open set.
type astarItem struct {
	wire  string
	g     float64
	f     float64
	index int
}

type astarQueue []*astarItem

func (q astarQueue) Len() int            { return len(q) }
func (q astarQueue) Less(i, j int) bool  { return q[i].f < q[j].f }
func (q astarQueue) Swap(i, j int)       { q[i], q[j] = q[j], q[i]; q[i].index, q[j].index = i, j }
func (q *astarQueue) Push(x any)         { it := x.(*astarItem); it.index = len(*q); *q = append(*q, it) }
func (q *astarQueue) Pop() any {
	old := *q
	n := len(old)
	it := old[n-1]
	*q = old[:n-1]
	return it
}

// aStar finds the lowest-cost path from src to dst over g's PIPs, with
// per-edge cost pip.delay.max + wire_congestion_cost(dst_wire) (spec
// §4.8 step 2) and a Manhattan-distance-over-wire-index heuristic.
func aStar(g *wireGraph, congestion *congestionMap, src, dst string) ([]pipEdge, bool) {
	if src == dst {
		return nil, true
	}

	open := &astarQueue{{wire: src, g: 0, f: g.heuristic(src, dst)}}
	heap.Init(open)

	best := map[string]float64{src: 0}
	cameFrom := map[string]pipEdge{}
	visited := map[string]bool{}

	for open.Len() > 0 {
		cur := heap.Pop(open).(*astarItem)
		if visited[cur.wire] {
			continue
		}
		visited[cur.wire] = true

		if cur.wire == dst {
			return reconstructPath(cameFrom, src, dst), true
		}

		for _, pip := range g.out[cur.wire] {
			edgeCost := pip.MaxDelay + congestion.cost(pip.DstWire)
			tentative := cur.g + edgeCost

			if existing, ok := best[pip.DstWire]; !ok || tentative < existing {
				best[pip.DstWire] = tentative
				cameFrom[pip.DstWire] = pipEdge{src: pip.SrcWire, dst: pip.DstWire, delay: pip.MaxDelay}
				heap.Push(open, &astarItem{wire: pip.DstWire, g: tentative, f: tentative + g.heuristic(pip.DstWire, dst)})
			}
		}
	}

	return nil, false
}

func reconstructPath(cameFrom map[string]pipEdge, src, dst string) []pipEdge {
	var path []pipEdge
	w := dst
	for w != src {
		e, ok := cameFrom[w]
		if !ok {
			break
		}
		path = append([]pipEdge{e}, path...)
		w = e.src
	}
	return path
}
