// File: methods_clone.go
// Role: Deep copies.
// Concurrency:
//   - Read locks on the source; the result is a fresh, unshared instance.

package core

// Clone returns a deep copy of the Graph: vertices and adjacency.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	g.muVert.RLock()
	defer g.muVert.RUnlock()
	g.muEdgeAdj.RLock()
	defer g.muEdgeAdj.RUnlock()

	out := NewGraph(WithCapacity(len(g.vertices)))
	for id := range g.vertices {
		out.vertices[id] = struct{}{}
	}
	for id, nbrs := range g.adjacency {
		cp := make(map[int]struct{}, len(nbrs))
		for v := range nbrs {
			cp[v] = struct{}{}
		}
		out.adjacency[id] = cp
	}
	out.edgeCount = g.edgeCount

	return out
}
