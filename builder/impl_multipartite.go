// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_multipartite.go: CompleteMultipartite(sizes...) and Turan(n, r).
//
// Contract:
//   • CompleteMultipartite: every size ≥ 0 (else ErrNegativeSize naming
//     sizes[i]); zero-size blocks contribute nothing. Adds Σsizes nodes, block
//     b occupying a contiguous index range in argument order. For every block
//     pair a<b, emits (u, v) for u in a ascending, v in b ascending.
//   • Turan: n ≥ 0 (else ErrNegativeSize); 1 ≤ r ≤ n (else ErrConstraint).
//     Partition = (r - n mod r) blocks of ⌊n/r⌋ followed by (n mod r) blocks
//     of ⌊n/r⌋+1, delegated to CompleteMultipartite.
//
// Complexity:
//   • O(Σsizes) nodes + O(Σ_{a<b} |a|·|b|) edges. Space: O(len(sizes)).
//
// Determinism:
//   • Block order is argument order; edge order is (a, b, u, v) lexicographic.

package builder

import "github.com/katalvlaran/topograph/core"

// CompleteMultipartite returns a Constructor for K_{s1,…,sk}.
func CompleteMultipartite(sizes ...int) Constructor {
	parts := append([]int(nil), sizes...)

	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSizes(MethodCompleteMultipartite, "sizes", parts); err != nil {
			return err
		}

		return addMultipartite(g, cfg, MethodCompleteMultipartite, g.NumberOfNodes(), parts)
	}
}

// Turan returns a Constructor for the Turán graph T(n, r).
func Turan(n, r int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodTuran, "n", n); err != nil {
			return err
		}
		if err := validateRange(MethodTuran, "r", r, minParts, n); err != nil {
			return err
		}

		return addMultipartite(g, cfg, MethodTuran, g.NumberOfNodes(), turanPartition(n, r))
	}
}

// turanPartition splits n into r sizes differing by at most one,
// smaller blocks first.
func turanPartition(n, r int) []int {
	q, rem := n/r, n%r
	parts := make([]int, 0, r)
	for i := 0; i < r-rem; i++ {
		parts = append(parts, q)
	}
	for i := 0; i < rem; i++ {
		parts = append(parts, q+1)
	}

	return parts
}

func addMultipartite(g *core.Graph, cfg builderConfig, method string, start int, sizes []int) error {
	offsets := make([]int, len(sizes)+1)
	for i, s := range sizes {
		offsets[i+1] = offsets[i] + s
	}
	if err := addNodes(g, cfg, method, start, offsets[len(sizes)]); err != nil {
		return err
	}
	for a := 0; a < len(sizes); a++ {
		for b := a + 1; b < len(sizes); b++ {
			for u := offsets[a]; u < offsets[a+1]; u++ {
				for v := offsets[b]; v < offsets[b+1]; v++ {
					if err := addEdge(g, cfg, method, start+u, start+v); err != nil {
						return err
					}
				}
			}
		}
	}

	return nil
}
