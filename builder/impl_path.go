// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_path.go - implementation of Path(n) constructor.
//
// Contract:
//   - n ≥ 0 (else ErrNegativeSize).
//   - Registers nodes initial..initial+n-1, then emits (i-1, i) for i=1..n-1.
//   - n ≤ 1 adds no edge.
//
// Complexity:
//   - Time: O(n) nodes + O(n-1) edges. Space: O(n) for the label slice.

package builder

import "github.com/katalvlaran/topograph/core"

// Path returns a Constructor that builds a simple path P_n over new nodes.
func Path(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodPath, "n", n); err != nil {
			return err
		}

		return addPath(g, cfg, MethodPath, g.NumberOfNodes(), n)
	}
}
