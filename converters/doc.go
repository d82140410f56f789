// Package converters provides two-way adapters between core.Graph and
// gonum.org/v1/gonum/graph, so that gonum's analysis packages (topo, path,
// network, ...) can run on beecolor graphs.
//
// Node IDs map one to one (core int ↔ gonum int64). Only simple undirected
// graphs are supported; gonum self-loops are rejected on import.
package converters
