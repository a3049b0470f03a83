// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_random_sparse.go - implementation of RandomSparse(n, p) constructor.
//
// Canonical model:
//   - Erdős–Rényi G(n,p): include each admissible edge independently with prob p.
//   - Undirected: iterate unordered pairs {i,j} with i<j.
//   - Directed: iterate ordered pairs (i,j), i≠j.
//
// Contract:
//   - n ≥ 0 (else ErrNegativeSize).
//   - 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - cfg.rng must be non-nil when 0 < p < 1 (else ErrNeedRandSource);
//     p ∈ {0,1} is deterministic and needs no RNG.
//
// Complexity:
//   - Time: O(n) nodes + O(n²) Bernoulli trials. Space: O(1) extra.
//
// Determinism:
//   - Stable trial order: i asc, j asc. Fixed seed ⇒ identical store.

package builder

import "github.com/katalvlaran/topograph/core"

// RandomSparse returns a Constructor that samples G(n,p) over n new nodes.
func RandomSparse(n int, p float64) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodRandomSparse, "n", n); err != nil {
			return err
		}
		if err := validateProbability(MethodRandomSparse, p); err != nil {
			return err
		}
		if cfg.rng == nil && p > MinProbability && p < MaxProbability {
			return builderErrorf(MethodRandomSparse, ErrNeedRandSource, "p=%.6f", p)
		}

		start := g.NumberOfNodes()
		if err := addNodes(g, cfg, MethodRandomSparse, start, n); err != nil {
			return err
		}

		directed := g.Directed()
		for i := 0; i < n; i++ {
			j := i + 1
			if directed {
				j = 0
			}
			for ; j < n; j++ {
				if i == j || !trial(cfg, p) {
					continue
				}
				if err := addEdge(g, cfg, MethodRandomSparse, start+i, start+j); err != nil {
					return err
				}
			}
		}

		return nil
	}
}

// trial draws one Bernoulli(p) outcome; p ∈ {0,1} never touches the RNG.
func trial(cfg builderConfig, p float64) bool {
	switch p {
	case MinProbability:
		return false
	case MaxProbability:
		return true
	default:
		return cfg.rng.Float64() < p
	}
}
