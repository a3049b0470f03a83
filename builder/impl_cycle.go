// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_cycle.go - implementation of Cycle(n) constructor.
//
// Contract:
//   - n ≥ 0 (else ErrNegativeSize).
//   - n=0 is a no-op; n=1 adds one node with a self-loop; n=2 adds the pair
//     twice (second call counted, suppressed in the rows).
//   - Otherwise: path over the new nodes plus the closing edge (last, first).
//
// Complexity:
//   - Time: O(n). Space: O(n) for the label slice.

package builder

import "github.com/katalvlaran/topograph/core"

// Cycle returns a Constructor that builds C_n over new nodes.
func Cycle(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodCycle, "n", n); err != nil {
			return err
		}
		start := g.NumberOfNodes()
		if err := g.AddCycle(labelRange(cfg, start, n)); err != nil {
			return builderErrorf(MethodCycle, err, "AddCycle(%d..%d)", start, start+n-1)
		}

		return nil
	}
}
