// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_wheel.go: implementation of Wheel(n) constructor.
//
// Canonical definition:
//   • W_n = Star(n-1) + rim cycle over the n-1 leaves, hub at index initial.
//
// Contract:
//   • n ≥ 0 (else ErrNegativeSize). n=0 is a no-op.
//   • n ≤ 2 builds Star(n-1) only (no rim cycle).
//   • n ≥ 3: Star(n-1), then AddCycle over the rim, then one more closing
//     edge (rim last, rim first). That extra call is counted by the store even
//     when the rows already hold the pair.
//
// Complexity:
//   • Time: O(n) nodes + O(n) edges. Space: O(n) for the rim labels.
//
// Determinism:
//   • Spokes hub→leaf ascending, then rim edges ascending, then the closing edge.

package builder

import "github.com/katalvlaran/topograph/core"

// Wheel returns a Constructor that builds the wheel W_n.
func Wheel(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodWheel, "n", n); err != nil {
			return err
		}
		if n == 0 {
			return nil
		}

		start := g.NumberOfNodes()
		if err := addStar(g, cfg, MethodWheel, start, n-1); err != nil {
			return err
		}
		if n < wheelCycleMin {
			return nil
		}

		rim := labelRange(cfg, start+1, n-1)
		if err := g.AddCycle(rim); err != nil {
			return builderErrorf(MethodWheel, err, "AddCycle(rim)")
		}

		return addEdge(g, cfg, MethodWheel, start+n-1, start+1)
	}
}
