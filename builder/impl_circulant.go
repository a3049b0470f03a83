// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_circulant.go: implementation of Circulant(n, offsets) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrNegativeSize). Offsets may be any integer; |o| is used.
//   • Adds n nodes, then for each node i ascending and each offset in the
//     given order emits (i, (i+|o|) mod n). Offsets that are multiples of n
//     yield self-loops; repeated targets are counted and suppressed.
//   • n=0 adds nothing regardless of offsets.
//
// Complexity:
//   • Time: O(n·len(offsets)). Space: O(1) extra.

package builder

import "github.com/katalvlaran/topograph/core"

// Circulant returns a Constructor that builds C_n(offsets).
func Circulant(n int, offsets []int) Constructor {
	// Offsets are captured by value.
	offs := append([]int(nil), offsets...)

	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodCirculant, "n", n); err != nil {
			return err
		}

		start := g.NumberOfNodes()
		if err := addNodes(g, cfg, MethodCirculant, start, n); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for _, o := range offs {
				if o < 0 {
					o = -o
				}
				if err := addEdge(g, cfg, MethodCirculant, start+i, start+(i+o)%n); err != nil {
					return err
				}
			}
		}

		return nil
	}
}
