// File: methods_vertices.go
// Role: Vertex lifecycle & queries.
//
// Determinism:
//   - Nodes() and Isolated() return IDs sorted ascending.
//
// Concurrency:
//   - Vertex catalog protected by muVert.
//   - Adjacency bootstrap under muEdgeAdj (lock order muVert -> muEdgeAdj).
package core

import "sort"

// AddVertex inserts a vertex if missing (idempotent).
//
// Implementation:
//   - Stage 1: Reject negative IDs (ErrNegativeVertexID).
//   - Stage 2: Under muVert write lock, register the ID if absent.
//   - Stage 3: Under muEdgeAdj write lock, bootstrap an empty adjacency bucket.
//
// Complexity:
//   - Time O(1) amortized, Space O(1) amortized.
func (g *Graph) AddVertex(id int) error {
	if id < 0 {
		return ErrNegativeVertexID
	}

	g.muVert.Lock()
	defer g.muVert.Unlock()

	if _, exists := g.vertices[id]; exists {
		return nil
	}
	g.vertices[id] = struct{}{}

	g.muEdgeAdj.Lock()
	ensureAdjacency(g, id)
	g.muEdgeAdj.Unlock()

	return nil
}

// HasVertex reports whether the vertex ID exists.
// Complexity: O(1).
func (g *Graph) HasVertex(id int) bool {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	_, ok := g.vertices[id]

	return ok
}

// Nodes returns all vertex IDs sorted ascending.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	out := make([]int, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}

// VertexCount returns the number of vertices.
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of neighbors of id. Unknown vertices have
// degree 0; use HasVertex to distinguish them from isolated ones.
// Complexity: O(1).
func (g *Graph) Degree(id int) int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return len(g.adjacency[id])
}

// Isolated returns the sorted IDs of all degree-0 vertices.
// Complexity: O(V log V).
func (g *Graph) Isolated() []int {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	var out []int
	for id := range g.vertices {
		if len(g.adjacency[id]) == 0 {
			out = append(out, id)
		}
	}
	sort.Ints(out)

	return out
}

// ensureAdjacency creates the adjacency bucket for id if it is missing.
// Caller must hold muEdgeAdj for writing.
func ensureAdjacency(g *Graph, id int) {
	if _, ok := g.adjacency[id]; !ok {
		g.adjacency[id] = make(map[int]struct{})
	}
}
