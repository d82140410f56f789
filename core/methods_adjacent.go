// File: methods_adjacent.go
// Role: Neighborhood queries.
// Determinism:
//   - Neighbors() and NeighborIDs() return IDs sorted ascending.

package core

import "sort"

// Neighbors returns the sorted neighbor IDs of id. Unknown vertices yield
// nil; use NeighborIDs when the distinction matters.
// Complexity: O(d log d).
func (g *Graph) Neighbors(id int) []int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	return sortedKeys(g.adjacency[id])
}

// NeighborIDs is the strict form of Neighbors: it returns ErrVertexNotFound
// for an unknown vertex.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}

	return g.Neighbors(id), nil
}

// AdjacencyList returns a copy of the adjacency as vertex -> sorted neighbors.
// Complexity: O(V + E log d).
func (g *Graph) AdjacencyList() map[int][]int {
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := make(map[int][]int, len(g.adjacency))
	for id, nbrs := range g.adjacency {
		out[id] = sortedKeys(nbrs)
	}

	return out
}

func sortedKeys(set map[int]struct{}) []int {
	if len(set) == 0 {
		return nil
	}
	out := make([]int, 0, len(set))
	for id := range set {
		out = append(out, id)
	}
	sort.Ints(out)

	return out
}
