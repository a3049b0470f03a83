// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_ladder.go: Ladder(n) and CircularLadder(n) constructors.
//
// Contract:
//   • n ≥ 0 (else ErrNegativeSize).
//   • Ladder: rail A = path over initial..initial+n-1, rail B = path over
//     initial+n..initial+2n-1, then rungs (i, i+n) for i ascending.
//   • CircularLadder: Ladder(n), then for n ≥ 1 closing edges
//     (A last, A first) and (B last, B first). n=1 closes each rail on itself.
//
// Complexity:
//   • Time: O(n). Space: O(n) for rail labels.

package builder

import "github.com/katalvlaran/topograph/core"

// Ladder returns a Constructor that builds the ladder graph L_n on 2n nodes.
func Ladder(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodLadder, "n", n); err != nil {
			return err
		}

		return addLadder(g, cfg, MethodLadder, g.NumberOfNodes(), n)
	}
}

// CircularLadder returns a Constructor that builds the prism graph CL_n.
func CircularLadder(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodCircularLadder, "n", n); err != nil {
			return err
		}

		start := g.NumberOfNodes()
		if err := addLadder(g, cfg, MethodCircularLadder, start, n); err != nil {
			return err
		}
		if n == 0 {
			return nil
		}
		if err := addEdge(g, cfg, MethodCircularLadder, start+n-1, start); err != nil {
			return err
		}

		return addEdge(g, cfg, MethodCircularLadder, start+2*n-1, start+n)
	}
}

func addLadder(g *core.Graph, cfg builderConfig, method string, start, n int) error {
	if err := addPath(g, cfg, method, start, n); err != nil {
		return err
	}
	if err := addPath(g, cfg, method, start+n, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		if err := addEdge(g, cfg, method, start+i, start+i+n); err != nil {
			return err
		}
	}

	return nil
}
