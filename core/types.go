// SPDX-License-Identifier: MIT
// Package core defines the central Graph and Edge types and the sentinel
// errors of the package.
//
// All core APIs use separate sync.RWMutex locks internally (muVert for
// vertices, muEdgeAdj for edges and adjacency), so graphs can be built and
// read across goroutines with minimal contention.
package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNegativeVertexID indicates that a vertex ID below zero was supplied.
	ErrNegativeVertexID = errors.New("core: vertex ID is negative")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Edge is an unordered vertex pair. Edges returned by the Graph are
// normalized so that From < To.
type Edge struct {
	From int
	To   int
}

// NewEdge returns the normalized Edge for the pair {u,v}.
func NewEdge(u, v int) Edge {
	if u > v {
		u, v = v, u
	}

	return Edge{From: u, To: v}
}

// Graph is a simple undirected graph over integer vertex IDs.
//
// muVert protects vertices; muEdgeAdj protects edgeCount and adjacency.
// adjacency[u][v] exists iff adjacency[v][u] exists (mirrored storage).
type Graph struct {
	muVert    sync.RWMutex // guards vertices
	muEdgeAdj sync.RWMutex // guards edgeCount and adjacency

	vertices  map[int]struct{}
	edgeCount int

	// adjacency[u][v] = struct{}{} for every edge {u,v}.
	adjacency map[int]map[int]struct{}
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithCapacity pre-sizes the vertex and adjacency catalogs for n vertices.
func WithCapacity(n int) GraphOption {
	return func(g *Graph) {
		if n <= 0 {
			return
		}
		g.vertices = make(map[int]struct{}, n)
		g.adjacency = make(map[int]map[int]struct{}, n)
	}
}

// NewGraph creates an empty Graph.
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		vertices:  make(map[int]struct{}),
		adjacency: make(map[int]map[int]struct{}),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
