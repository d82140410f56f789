// SPDX-License-Identifier: MIT
// Package: beecolor/builder
//
// impl_random_regular.go — RandomRegular(n, d) via stub matching.
//
// Canonical model:
//   • Every vertex contributes d stubs; stubs are shuffled and paired
//     consecutively. A pairing with a loop or a duplicate pair is discarded
//     and reshuffled, up to MaxStubMatchingAttempts times.
//   • The pairing is validated before any edge is added, so a failed attempt
//     leaves only the isolated vertices 0..n-1 behind.
//
// Contract:
//   • n ≥ 1; 0 ≤ d < n; n·d even (else ErrTooFewVertices).
//   • cfg.rng must be non-nil (else ErrNeedRandSource).
//   • ErrConstructFailed after MaxStubMatchingAttempts invalid pairings.
//
// Complexity: O(n·d) per attempt; attempts are constant-bounded.
//
// Determinism: fixed attempt limit and shuffle order ⇒ same seed, same graph.

package builder

import (
	"fmt"

	"github.com/katalvlaran/beecolor/core"
)

// RandomRegular returns a Constructor that builds a random d-regular graph.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateMin(MethodRandomRegular, "n", n, MinNodes); err != nil {
			return err
		}
		if d < 0 || d >= n {
			return fmt.Errorf("%s: degree must be in [0,%d), got %d: %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if (n*d)%2 != 0 {
			return fmt.Errorf("%s: n*d must be even (n=%d, d=%d): %w",
				MethodRandomRegular, n, d, ErrTooFewVertices)
		}
		if cfg.rng == nil {
			return fmt.Errorf("%s: %w", MethodRandomRegular, ErrNeedRandSource)
		}
		if err := addVertices(MethodRandomRegular, g, n); err != nil {
			return err
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}
		if len(stubs) == 0 {
			return nil
		}

		for attempt := 1; attempt <= MaxStubMatchingAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !validPairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := addEdge(MethodRandomRegular, g, stubs[i], stubs[i+1]); err != nil {
					return err
				}
			}

			return nil
		}

		return fmt.Errorf("%s: no simple pairing after %d attempts: %w",
			MethodRandomRegular, MaxStubMatchingAttempts, ErrConstructFailed)
	}
}

// validPairing reports whether consecutive stub pairs form a simple graph.
func validPairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
