// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_barbell.go: Barbell(m1, m2) and Lollipop(m, n) constructors.
//
// Contract:
//   • Barbell: m1 ≥ 2 (else ErrConstraint), m2 ≥ 0 (else ErrNegativeSize).
//     Order of emission:
//       1. clique K_m1 on initial..initial+m1-1
//       2. path over m2 new nodes initial+m1..initial+m1+m2-1
//       3. bridge (initial+m1-1, initial+m1) when m2 > 0
//       4. clique K_m1 on the next m1 nodes
//       5. bridge (initial+m1+m2-1, initial+m1+m2); with m2 = 0 this joins
//          the two cliques directly.
//   • Lollipop: m ≥ 2 (else ErrConstraint), n ≥ 0 (else ErrNegativeSize).
//     clique K_m, path over n new nodes, bridge (initial+m-1, initial+m) when n > 0.
//
// Complexity:
//   • Barbell: O(m1² + m2). Lollipop: O(m² + n).

package builder

import "github.com/katalvlaran/topograph/core"

// Barbell returns a Constructor that builds two K_m1 joined by a path of m2 nodes.
func Barbell(m1, m2 int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateAtLeast(MethodBarbell, "m1", m1, minCliqueSize); err != nil {
			return err
		}
		if err := validateSize(MethodBarbell, "m2", m2); err != nil {
			return err
		}

		start := g.NumberOfNodes()
		if err := addCandy(g, cfg, MethodBarbell, start, m1, m2); err != nil {
			return err
		}
		second := start + m1 + m2
		if err := addClique(g, cfg, MethodBarbell, second, m1); err != nil {
			return err
		}

		return addEdge(g, cfg, MethodBarbell, second-1, second)
	}
}

// Lollipop returns a Constructor that builds K_m with a path of n nodes attached.
func Lollipop(m, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateAtLeast(MethodLollipop, "m", m, minCliqueSize); err != nil {
			return err
		}
		if err := validateSize(MethodLollipop, "n", n); err != nil {
			return err
		}

		return addCandy(g, cfg, MethodLollipop, g.NumberOfNodes(), m, n)
	}
}

// addCandy builds a clique of m nodes followed by a tail path of n nodes,
// bridged from the last clique node to the first tail node.
func addCandy(g *core.Graph, cfg builderConfig, method string, start, m, n int) error {
	if err := addClique(g, cfg, method, start, m); err != nil {
		return err
	}
	if err := addPath(g, cfg, method, start+m, n); err != nil {
		return err
	}
	if n == 0 {
		return nil
	}

	return addEdge(g, cfg, method, start+m-1, start+m)
}
