// SPDX-License-Identifier: MIT
// Package: beecolor/builder
//
// impl_grid.go — Grid(rows, cols): orthogonal lattice.
//
// Contract:
//   • rows ≥ 1, cols ≥ 1.
//   • Cell (r,c) is vertex r*cols + c (row-major).
//   • For each cell in row-major order, the right then the bottom edge is
//     emitted when that neighbor exists.
//
// Complexity: O(rows·cols).

package builder

import "github.com/katalvlaran/beecolor/core"

// GridID returns the vertex ID of cell (r,c) in a grid with cols columns.
func GridID(r, c, cols int) int { return r*cols + c }

// Grid returns a Constructor that builds a rows×cols grid.
func Grid(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if err := validateMin(MethodGrid, "rows", rows, MinGridDim); err != nil {
			return err
		}
		if err := validateMin(MethodGrid, "cols", cols, MinGridDim); err != nil {
			return err
		}
		if err := addVertices(MethodGrid, g, rows*cols); err != nil {
			return err
		}

		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				u := GridID(r, c, cols)
				if c+1 < cols {
					if err := addEdge(MethodGrid, g, u, GridID(r, c+1, cols)); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge(MethodGrid, g, u, GridID(r+1, c, cols)); err != nil {
						return err
					}
				}
			}
		}

		return nil
	}
}
