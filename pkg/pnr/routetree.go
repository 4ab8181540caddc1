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
package pnr

// RouteResourceKind tags one node of a RouteTree (spec §4.8 "Each internal
// node is one routing resource (site pin, wire, PIP, or Direct)").
type RouteResourceKind uint8

// Recognised route-tree resource kinds.
const (
	ResourceSitePin RouteResourceKind = iota
	ResourceWire
	ResourcePIP
	ResourceDirect
)

// RouteTree is one net's physical path, rooted at the driver's site pin
// and branching to each sink (spec §4.8 "Route tree"). A Direct-fallback
// tree (used when no routing graph is loaded) is a root plus one
// ResourceDirect child per sink, with no intermediate wires or PIPs.
type RouteTree struct {
	Kind     RouteResourceKind
	Name     string
	Children []*RouteTree
}

// ResourceCount returns the size of the subtree rooted at t, counting t
// itself.
func (t *RouteTree) ResourceCount() int {
	if t == nil {
		return 0
	}
	n := 1
	for _, c := range t.Children {
		n += c.ResourceCount()
	}
	return n
}

// Depth returns the longest root-to-leaf path length, in edges.
func (t *RouteTree) Depth() int {
	if t == nil || len(t.Children) == 0 {
		return 0
	}
	max := 0
	for _, c := range t.Children {
		if d := c.Depth(); d > max {
			max = d
		}
	}
	return max + 1
}

// WiresUsed appends the name of every ResourceWire node in the subtree
// rooted at t onto out and returns the result.
func (t *RouteTree) WiresUsed(out []string) []string {
	return t.collect(ResourceWire, out)
}

// PIPsUsed appends the name of every ResourcePIP node in the subtree
// rooted at t onto out and returns the result.
func (t *RouteTree) PIPsUsed(out []string) []string {
	return t.collect(ResourcePIP, out)
}

func (t *RouteTree) collect(kind RouteResourceKind, out []string) []string {
	if t == nil {
		return out
	}
	if t.Kind == kind {
		out = append(out, t.Name)
	}
	for _, c := range t.Children {
		out = c.collect(kind, out)
	}
	return out
}
