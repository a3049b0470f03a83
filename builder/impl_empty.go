// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_empty.go: implementation of Empty(n) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrNegativeSize).
//   • Adds n isolated nodes with indices initial..initial+n-1.
//   • Adds no edges; the edge counter is unchanged.
//
// Complexity:
//   • Time: O(n). Space: O(1) extra.

package builder

import "github.com/katalvlaran/topograph/core"

// Empty returns a Constructor that appends n isolated nodes.
func Empty(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodEmpty, "n", n); err != nil {
			return err
		}

		return addNodes(g, cfg, MethodEmpty, g.NumberOfNodes(), n)
	}
}
