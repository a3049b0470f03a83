// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract (strict):
//   - One orchestrator pair: BuildGraph(gopts, bopts, cons...) creates a store;
//     Apply(g, bopts, cons...) extends an existing one. Both run cons in order.
//   - All public factories are declared here, implemented in impl_*.go.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig.
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical stores.
//   - Append-only: every constructor works relative to g.NumberOfNodes() at call
//     time and never touches existing ids.
//
// AI-Hints (practical):
//   - Compose constructors to union disjoint topologies; connect them afterwards
//     with g.AddEdge on the labels you know (initial + offset under the ID scheme).
//   - Validation failures leave the store unchanged. A core failure in the middle
//     of composition (only possible with a colliding ID scheme) does not roll back.

package builder

import (
	"fmt"

	"github.com/katalvlaran/topograph/core"
)

// Constructor applies a deterministic graph mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters before the first mutation and return *InvalidParameterError.
//   - Address new nodes as initial+offset through the configured ID scheme.
//   - Preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph with graph options gopts, resolves the
// builder configuration from bopts, and applies all constructors in order.
// Any constructor error is wrapped with the context "BuildGraph: %w" and
// returned immediately.
//
// Complexity:
//   - Resolving options: O(len(bopts)).
//   - Applying K constructors: Σ cost of each constructor; wrapper overhead O(K).
func BuildGraph(gopts []core.GraphOption, bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph(gopts...)
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs cons in order against an existing store.
// Errors are wrapped with "Apply: %w"; constructors applied before the failing
// one keep their effect.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return fmt.Errorf("Apply: nil graph: %w", ErrConstructFailed)
	}
	if err := apply(g, newBuilderConfig(bopts...), cons); err != nil {
		return fmt.Errorf("Apply: %w", err)
	}

	return nil
}

func apply(g *core.Graph, cfg builderConfig, cons []Constructor) error {
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		nodes, edges := g.NumberOfNodes(), g.NumberOfEdges()
		if err := fn(g, cfg); err != nil {
			cfg.debug("constructor failed", "index", i, "err", err)
			return err
		}
		cfg.debug("constructor applied",
			"index", i,
			"nodes", g.NumberOfNodes()-nodes,
			"edges", g.NumberOfEdges()-edges,
		)
	}

	return nil
}

// =============================================================================
// Topology factories (declarations) - implemented in impl_*.go
// =============================================================================
//
// Empty(n)                        n isolated nodes.                         impl_empty.go
// Complete(n)                     clique K_n.                               impl_complete.go
// Path(n), Cycle(n)               P_n and C_n over new nodes.               impl_path.go, impl_cycle.go
// Star(k)                         hub + k leaves.                           impl_star.go
// Wheel(n)                        hub + (n-1)-rim.                          impl_wheel.go
// Ladder(n), CircularLadder(n)    two rails + rungs (closed rails).         impl_ladder.go
// Circulant(n, offsets)           i → (i+|o|) mod n.                         impl_circulant.go
// BinomialTree(order)             doubling construction.                    impl_trees.go
// BalancedTree(r, h)              perfect r-ary tree of height h.           impl_trees.go
// FullMaryTree(m, n)              n nodes, m children per parent.           impl_trees.go
// Barbell(m1, m2)                 clique - path - clique.                   impl_barbell.go
// Lollipop(m, n)                  clique - path.                            impl_barbell.go
// CompleteMultipartite(sizes...)  full inter-block connectivity.            impl_multipartite.go
// Turan(n, r)                     balanced r-partite.                       impl_multipartite.go
// DorogovtsevGoltsevMendes(gen)   iterative triangle expansion.             impl_dgm.go
// RandomSparse(n, p)              Erdős–Rényi G(n,p), needs an RNG.         impl_random_sparse.go
