// Package beecolor searches for low-conflict colorings of undirected graphs
// with a bee-colony metaheuristic, and ships the graph generator, charting
// and CLI around it.
//
// 🚀 What is beecolor?
//
//	A small, deterministic toolkit that brings together:
//		• Core primitives: thread-safe simple undirected graph with int IDs
//		• Builders: bounded-degree random graphs + classic fixtures
//		• Search: scout/worker loop, best snapshot, sampled quality trace
//		• Charts: PNG quality plot (gonum/plot) + trace statistics
//		• Interop: core.Graph <-> gonum graph, connected components
//
// ✨ Why beecolor?
//
//   - Reproducible – every random draw comes from an explicit seeded RNG
//   - Honest – quality is −(conflicting edges); nothing is promised beyond it
//   - Pluggable – worker policies, renderers and loggers are interfaces
//
// Under the hood, everything is organized under these subpackages:
//
//	core/        — Graph, Edge and thread-safe primitives
//	builder/     — BoundedDegree, Path, Cycle, Star, Complete, RandomSparse
//	coloring/    — Evaluate, Scout, Exhaustive/Sampled repair, Search
//	chart/       — PNG line chart and Summary of a quality trace
//	converters/  — gonum interop and component queries
//	config/      — YAML run configuration and profiles
//	cmd/beecolor — the driver: `beecolor run`, `beecolor graph`
//
// Quick ASCII example (K4, one color, quality −6):
//
//	    0───1
//	    │ ╳ │
//	    3───2
//
// One exhaustive repair with four colors available yields 2,3,4,1: quality 0.
//
//	go install github.com/katalvlaran/beecolor/cmd/beecolor@latest
package beecolor
