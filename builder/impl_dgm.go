// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_dgm.go: DorogovtsevGoltsevMendes(gen) constructor.
//
// Contract:
//   • gen ≥ 0 (else ErrNegativeSize) and gen ≤ 19 (else ErrConstraint).
//   • Generation 0 is the single edge (0, 1).
//   • Each further generation snapshots the current edge list and, for every
//     listed edge (u, v) in order, appends a new node w with edges (u, w) and (v, w).
//   • Result: (3^gen + 3)/2 nodes and 3^gen edges.
//
// Complexity:
//   • Time and space O(3^gen) for the explicit edge list.

package builder

import "github.com/katalvlaran/topograph/core"

// DorogovtsevGoltsevMendes returns a Constructor for the pseudo-fractal
// scale-free graph of the given generation.
func DorogovtsevGoltsevMendes(gen int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodDorogovtsevGoltsevMendes, "gen", gen); err != nil {
			return err
		}
		if err := validateAtMost(MethodDorogovtsevGoltsevMendes, "gen", gen, maxDGMGeneration); err != nil {
			return err
		}

		n := 2
		edges := []treeEdge{{u: 0, v: 1}}
		for step := 0; step < gen; step++ {
			size := len(edges)
			for i := 0; i < size; i++ {
				w := n
				n++
				edges = append(edges, treeEdge{u: edges[i].u, v: w}, treeEdge{u: edges[i].v, v: w})
			}
		}

		start := g.NumberOfNodes()
		if err := addNodes(g, cfg, MethodDorogovtsevGoltsevMendes, start, n); err != nil {
			return err
		}
		for _, e := range edges {
			if err := addEdge(g, cfg, MethodDorogovtsevGoltsevMendes, start+e.u, start+e.v); err != nil {
				return err
			}
		}

		return nil
	}
}
