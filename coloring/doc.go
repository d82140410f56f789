// Package coloring searches for a low-conflict coloring of an undirected
// graph with a bee-colony metaheuristic.
//
// A single candidate coloring (the "live" Assignment) is driven through a
// fixed number of iterations. Each iteration:
//
//  1. Scout   – ranks every node by its local conflict count in a min-heap
//     and reassigns the S least-conflicted nodes to a uniformly random
//     color in [1, max color in use].
//  2. Repair  – a WorkerPolicy greedily moves nodes to the smallest color in
//     [1, max] that no neighbor uses (Exhaustive: every node once, ascending;
//     Sampled: W nodes drawn uniformly with replacement).
//  3. Evaluate – quality = −(number of edges whose endpoints share a color).
//  4. The best snapshot is replaced only on strict improvement; every
//     SamplingInterval iterations the best quality is appended to the trace.
//
// Quality is an int in [−|E|, 0]; 0 means a proper coloring. Nothing here
// guarantees a proper coloring or convergence.
//
// Randomness:
//
//	All randomness comes from an explicit *rand.Rand (WithRand/WithSeed).
//	A nil RNG falls back to a fixed default seed, never to a time-based one,
//	so equal inputs always reproduce equal results.
//
// Errors:
//
//	Misuse is reported as *DomainError, which matches ErrDomain and unwraps
//	to the concrete cause:
//	  ErrEmptyGraph     – graph has no nodes (max color is undefined)
//	  ErrUncoveredNode  – assignment has no color for a graph node
//	  ErrNegativeNode   – a node ID is below zero
//	  ErrUnknownNode    – an edge references a node outside Nodes()
//	  ErrScoutCount     – scout count < 0 or > |V|
//	Invalid option values surface as ErrOptionViolation.
//
// Concurrency:
//
//	Search is single-threaded and synchronous. Assignments are plain slices
//	and must not be shared with concurrent writers; *rand.Rand is not
//	goroutine-safe either (use DeriveRNG for independent streams).
package coloring
