// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package index

import "github.com/poiesic/clausewise/core"

// DependencyGraph is a directed graph over segment positions built from
// each segment's declared dependencies. Edges point from a segment to the
// segments it depends on; reverse edges are kept so dependents can be
// found without a scan.
type DependencyGraph struct {
	out [][]int
	in  [][]int
}

// NewDependencyGraph builds the graph for a segment slice. References to
// positions outside the slice are kept as declared; traversal skips them.
func NewDependencyGraph(segments []core.Segment) *DependencyGraph {
	n := len(segments)
	g := &DependencyGraph{
		out: make([][]int, n),
		in:  make([][]int, n),
	}
	for i, seg := range segments {
		for _, dep := range seg.Dependencies {
			g.out[i] = append(g.out[i], dep)
			if dep >= 0 && dep < n {
				g.in[dep] = append(g.in[dep], i)
			}
		}
	}
	return g
}

// Len reports the number of segments in the graph.
func (g *DependencyGraph) Len() int {
	return len(g.out)
}

// Related returns the segments reachable from start by following
// dependency edges up to depth hops, in discovery order, followed by
// start's direct dependents. start itself is never included, each
// position appears at most once, and cycles terminate via the visited
// set. Depth zero returns dependents only; an out-of-range start returns
// an empty slice.
func (g *DependencyGraph) Related(start, depth int) []int {
	if start < 0 || start >= len(g.out) {
		return []int{}
	}

	visited := map[int]bool{start: true}
	related := []int{}

	var walk func(node, remaining int)
	walk = func(node, remaining int) {
		if remaining <= 0 {
			return
		}
		for _, next := range g.out[node] {
			if next < 0 || next >= len(g.out) || visited[next] {
				continue
			}
			visited[next] = true
			related = append(related, next)
			walk(next, remaining-1)
		}
	}
	walk(start, depth)

	for _, dependent := range g.in[start] {
		if !visited[dependent] {
			visited[dependent] = true
			related = append(related, dependent)
		}
	}
	return related
}
