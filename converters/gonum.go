// SPDX-License-Identifier: MIT
//
// File: gonum.go
// Role: core.Graph <-> gonum simple.UndirectedGraph, plus component queries
// built on gonum/graph/topo.

package converters

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/beecolor/core"
)

// ErrNilGraph is returned when a nil graph is passed to a converter.
var ErrNilGraph = errors.New("converters: nil graph")

// ToGonum copies g into a new gonum simple.UndirectedGraph.
// Complexity: O(V + E).
func ToGonum(g *core.Graph) (*simple.UndirectedGraph, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	out := simple.NewUndirectedGraph()
	for _, id := range g.Nodes() {
		out.AddNode(simple.Node(id))
	}
	for _, e := range g.Edges() {
		out.SetEdge(out.NewEdge(simple.Node(e.From), simple.Node(e.To)))
	}

	return out, nil
}

// FromGonum copies any gonum undirected graph into a new core.Graph.
// Node IDs must fit core's non-negative int range.
// Complexity: O(V + E log d) (neighbor sets are walked per node).
func FromGonum(src graph.Undirected) (*core.Graph, error) {
	if src == nil {
		return nil, ErrNilGraph
	}
	nodes := graph.NodesOf(src.Nodes())
	out := core.NewGraph(core.WithCapacity(len(nodes)))
	for _, n := range nodes {
		if err := out.AddVertex(int(n.ID())); err != nil {
			return nil, fmt.Errorf("FromGonum: node %d: %w", n.ID(), err)
		}
	}
	for _, n := range nodes {
		u := n.ID()
		for _, m := range graph.NodesOf(src.From(u)) {
			v := m.ID()
			if v < u {
				continue
			}
			if err := out.AddEdge(int(u), int(v)); err != nil {
				return nil, fmt.Errorf("FromGonum: edge %d-%d: %w", u, v, err)
			}
		}
	}

	return out, nil
}

// ConnectedComponents returns the connected components of g, each sorted
// ascending, ordered by their smallest node.
func ConnectedComponents(g *core.Graph) ([][]int, error) {
	gg, err := ToGonum(g)
	if err != nil {
		return nil, err
	}
	cc := topo.ConnectedComponents(gg)

	out := make([][]int, 0, len(cc))
	for _, comp := range cc {
		ids := make([]int, len(comp))
		for i, n := range comp {
			ids[i] = int(n.ID())
		}
		sort.Ints(ids)
		out = append(out, ids)
	}
	sort.Slice(out, func(i, j int) bool { return out[i][0] < out[j][0] })

	return out, nil
}

// IsConnected reports whether g has exactly one component. An empty graph
// is not connected.
func IsConnected(g *core.Graph) (bool, error) {
	cc, err := ConnectedComponents(g)
	if err != nil {
		return false, err
	}

	return len(cc) == 1, nil
}
