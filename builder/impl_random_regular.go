// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_random_regular.go - implementation of RandomRegular(n, d) constructor.
//
// Canonical model:
//   - Undirected simple d-regular graph via stub matching: every node
//     contributes d stubs, the stub list is shuffled and paired consecutively.
//   - A pairing with a self-loop or a repeated pair is rejected before any
//     edge is written, and the stubs are reshuffled (bounded attempts).
//
// Contract:
//   - Undirected stores only (else ErrUnsupportedMode).
//   - n ≥ 0 (else ErrNegativeSize); d in [0, max(n-1,0)] and n·d even
//     (else ErrConstraint).
//   - cfg.rng must be non-nil when d > 0 (else ErrNeedRandSource).
//   - After regularAttempts failed pairings returns ErrConstructFailed with
//     the n nodes already added.
//
// Complexity:
//   - O(n·d) per attempt, bounded attempts.
//
// Determinism:
//   - Fixed seed ⇒ identical shuffle sequence ⇒ identical store.

package builder

import "github.com/katalvlaran/topograph/core"

// regularAttempts bounds the number of stub reshuffles.
const regularAttempts = 200

// RandomRegular returns a Constructor that samples a d-regular graph on n nodes.
func RandomRegular(n, d int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if g.Directed() {
			return builderErrorf(MethodRandomRegular, ErrUnsupportedMode, "directed store")
		}
		if err := validateSize(MethodRandomRegular, "n", n); err != nil {
			return err
		}
		if err := validateRange(MethodRandomRegular, "d", d, 0, max(n-1, 0)); err != nil {
			return err
		}
		if (n*d)%2 != 0 {
			return violated(MethodRandomRegular, "d", d, "such that n·d is even")
		}
		if d > 0 && cfg.rng == nil {
			return builderErrorf(MethodRandomRegular, ErrNeedRandSource, "d=%d", d)
		}

		start := g.NumberOfNodes()
		if err := addNodes(g, cfg, MethodRandomRegular, start, n); err != nil {
			return err
		}
		if d == 0 {
			return nil
		}

		stubs := make([]int, 0, n*d)
		for i := 0; i < n; i++ {
			for k := 0; k < d; k++ {
				stubs = append(stubs, i)
			}
		}

		for attempt := 1; attempt <= regularAttempts; attempt++ {
			cfg.rng.Shuffle(len(stubs), func(i, j int) { stubs[i], stubs[j] = stubs[j], stubs[i] })
			if !simplePairing(stubs) {
				continue
			}
			for i := 0; i < len(stubs); i += 2 {
				if err := addEdge(g, cfg, MethodRandomRegular, start+stubs[i], start+stubs[i+1]); err != nil {
					return err
				}
			}
			cfg.debug("random regular pairing accepted", "method", MethodRandomRegular, "attempt", attempt)

			return nil
		}

		return builderErrorf(MethodRandomRegular, ErrConstructFailed, "no simple pairing after %d attempts", regularAttempts)
	}
}

// simplePairing reports whether consecutive stub pairs form a simple graph.
func simplePairing(stubs []int) bool {
	seen := make(map[[2]int]struct{}, len(stubs)/2)
	for i := 0; i < len(stubs); i += 2 {
		u, v := stubs[i], stubs[i+1]
		if u == v {
			return false
		}
		if u > v {
			u, v = v, u
		}
		key := [2]int{u, v}
		if _, dup := seen[key]; dup {
			return false
		}
		seen[key] = struct{}{}
	}

	return true
}
