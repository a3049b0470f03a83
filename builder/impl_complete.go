// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_complete.go: implementation of Complete(n) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrNegativeSize). n=0 is a no-op; n=1 adds a single node.
//   • Adds nodes initial..initial+n-1 first, then emits every pair (i,j), i<j,
//     in lexicographic order.
//   • Directed stores also receive (j,i) immediately after (i,j).
//
// Complexity:
//   • Time: O(n) nodes + O(n²) edges.
//   • Space: O(1) extra.
//
// Determinism:
//   • Edge emission order is i asc, inner j asc.

package builder

import "github.com/katalvlaran/topograph/core"

// Complete returns a Constructor that builds the clique K_n.
func Complete(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodComplete, "n", n); err != nil {
			return err
		}

		return addClique(g, cfg, MethodComplete, g.NumberOfNodes(), n)
	}
}
