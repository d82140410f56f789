// SPDX-License-Identifier: MIT
// Package: beecolor/builder
//
// impl_wheel.go — Wheel(n): Wₙ = Cₙ₋₁ + hub.
//
// Contract:
//   • n ≥ 4 (the rim must be a valid cycle: n-1 ≥ 3).
//   • Rim vertices 0..n-2 are built by Cycle(n-1); the hub is vertex n-1.
//   • Spokes are emitted hub–i for increasing rim index i.
//
// Coloring note: an even rim needs 3 colors, an odd rim 4.
//
// Complexity: O(n).

package builder

import (
	"fmt"

	"github.com/katalvlaran/beecolor/core"
)

// Wheel returns a Constructor that builds the wheel graph Wₙ.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodWheel, "n", n, MinWheelNodes); err != nil {
			return err
		}

		if err := Cycle(n-1)(g, cfg); err != nil {
			return fmt.Errorf("%s: rim C_%d: %w", MethodWheel, n-1, err)
		}

		hub := n - 1
		for i := 0; i < hub; i++ {
			if err := addEdge(MethodWheel, g, hub, i); err != nil {
				return err
			}
		}

		return nil
	}
}
