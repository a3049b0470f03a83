// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_star.go: implementation of Star(k) constructor.
//
// Contract:
//   • k ≥ 0 (else ErrNegativeSize).
//   • Hub is index initial; leaves are initial+1..initial+k.
//   • k=0 adds the hub alone.
//   • Emits (hub, leaf) for every leaf in ascending order.
//
// Complexity:
//   • Time: O(k). Space: O(1) extra.

package builder

import "github.com/katalvlaran/topograph/core"

// Star returns a Constructor that builds a hub with k leaves.
func Star(k int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodStar, "k", k); err != nil {
			return err
		}

		return addStar(g, cfg, MethodStar, g.NumberOfNodes(), k)
	}
}

// addStar lays out hub at start and k leaves right after it.
func addStar(g *core.Graph, cfg builderConfig, method string, start, k int) error {
	if err := addNodes(g, cfg, method, start, k+1); err != nil {
		return err
	}
	for leaf := 1; leaf <= k; leaf++ {
		if err := addEdge(g, cfg, method, start, start+leaf); err != nil {
			return err
		}
	}

	return nil
}
