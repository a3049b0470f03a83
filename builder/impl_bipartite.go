// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_bipartite.go - implementation of CompleteBipartite(n1, n2) constructor.
//
// Contract:
//   - n1 ≥ 0 and n2 ≥ 0 (else ErrNegativeSize, checked in that order).
//   - Left side takes indices start..start+n1-1, right side follows.
//   - Emits every cross pair (left i, right j), i asc then j asc.
//   - Same emission as CompleteMultipartite(n1, n2); kept as its own method
//     so errors and logs carry the bipartite name.
//
// Complexity:
//   - Time: O(n1 + n2) nodes + O(n1·n2) edges. Space: O(1) extra.

package builder

import "github.com/katalvlaran/topograph/core"

// CompleteBipartite returns a Constructor for K_{n1,n2}.
func CompleteBipartite(n1, n2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodCompleteBipartite, "n1", n1); err != nil {
			return err
		}
		if err := validateSize(MethodCompleteBipartite, "n2", n2); err != nil {
			return err
		}

		return addMultipartite(g, cfg, MethodCompleteBipartite, g.NumberOfNodes(), []int{n1, n2})
	}
}
