// SPDX-License-Identifier: MIT

// Package chart turns a search quality trace into something a person can
// read: a PNG line chart (gonum.org/v1/plot) and a numeric Summary
// (gonum.org/v1/gonum/stat).
//
// The x axis of every chart is the iteration index k*interval of trace
// entry k; the y axis is the best coloring quality at that point (≤ 0).
//
// Renderers are write-only collaborators of the search: they never read or
// mutate search state and are safe to swap for tests (see Renderer).
package chart
