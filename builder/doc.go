// Package builder provides reusable "functional-options"-style graph
// constructors that produce core.Graph fixtures and inputs for the coloring
// search.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        create a graph and apply constructors in order.
//     – Constructor:       a closure mutating a graph under a resolved config.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: deterministic randomness for stochastic builders.
//   - Topologies:
//     – Empty, Path, Cycle, Star, Complete   (deterministic)
//     – RandomSparse(n, p)                   (Erdős–Rényi-like)
//     – BoundedDegree(n, maxDegree)          (greedy degree-capped synthesis)
//     – RandomRegular(n, d)                  (stub matching, bounded retries)
//     – Wheel, CompleteBipartite, Grid       (fixtures with known chromatic number)
//
// Guarantees:
//
//   - Vertices are emitted as 0..n-1 in ascending order.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Structured runtime errors wrapping builder sentinels for invalid build
//     parameters (check with errors.Is).
//   - Same seed, options and constructor order ⇒ identical graphs.
package builder
