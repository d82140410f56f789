// Package core provides a small, thread-safe, in-memory simple undirected
// graph with dense integer vertex IDs.
//
// The Graph G = (V,E) is the read-only input of the coloring search:
//
//   - Vertices are non-negative ints; builders emit 0..n-1 in order.
//   - Edges are unordered pairs {u,v} with u != v, stored once and
//     normalized so that Edge.From < Edge.To.
//   - No self-loops (ErrLoopNotAllowed) and no parallel edges
//     (ErrMultiEdgeNotAllowed).
//   - AddEdge auto-registers missing endpoints, so every vertex referenced
//     by an edge exists in the vertex set.
//   - Separate sync.RWMutex for vertices (muVert) and edges+adjacency
//     (muEdgeAdj), lock order muVert -> muEdgeAdj.
//
// Determinism:
//
//	Nodes(), Edges() and Neighbors() return sorted results, so algorithms
//	that iterate them are reproducible for a fixed seed.
//
// Core Methods:
//
//	// Vertex lifecycle
//	AddVertex(id int) error          // O(1)
//	HasVertex(id int) bool           // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v int) error          // O(1) amortized
//	RemoveEdge(u, v int) error       // O(1)
//	HasEdge(u, v int) bool           // O(1)
//
//	// Read-only view (what coloring.GraphView consumes)
//	Nodes() []int                    // O(V log V)
//	Edges() []Edge                   // O(E log E)
//	Neighbors(id int) []int          // O(d log d)
//	Degree(id int) int               // O(1)
//
//	// Counts, stats, cloning
//	VertexCount() int, EdgeCount() int, Isolated() []int, Stats() GraphStats, Clone() *Graph
//
// Errors:
//
//	ErrNegativeVertexID    – vertex ID < 0
//	ErrVertexNotFound      – missing vertex
//	ErrEdgeNotFound        – missing edge
//	ErrLoopNotAllowed      – u == v
//	ErrMultiEdgeNotAllowed – {u,v} already present
package core
