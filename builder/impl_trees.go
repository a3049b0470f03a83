// SPDX-License-Identifier: MIT
// Package: topograph/builder
//
// impl_trees.go: BinomialTree, BalancedTree and FullMaryTree constructors.
//
// Contract:
//   • BinomialTree(order): order < 1 adds a single node (not an error);
//     order > 30 is ErrConstraint. Otherwise builds B_order on 2^order nodes with an explicit edge list:
//     for k = 0..order-1, replicate every listed edge shifted by 2^k, then
//     append the root edge (0, 2^k). Nodes are added first, then edges in
//     list order.
//   • FullMaryTree(m, n): m ≥ 0 and n ≥ 0 (else ErrNegativeSize). Adds n nodes;
//     parent i (ascending) receives children cur+1..cur+m bounded by n, and
//     cur advances by m after each parent.
//   • BalancedTree(r, h): r ≥ 0 and h ≥ 0 (else ErrNegativeSize).
//     h = 0 → one node; r = 1 → path of h+1 nodes; otherwise
//     FullMaryTree(r, (r^(h+1)-1)/(r-1)). A node count above 2^31-1 is
//     ErrConstraint on h.
//
// Complexity:
//   • BinomialTree: O(2^order) time and space for the edge list.
//   • FullMaryTree / BalancedTree: O(n) time, O(1) extra space.
//
// Determinism:
//   • BinomialTree edge order is the doubling list order.
//   • FullMaryTree edge order is parent asc, child asc.

package builder

import "github.com/katalvlaran/topograph/core"

// treeEdge is a (parent, child) pair in offsets relative to the tree root.
type treeEdge struct {
	u, v int
}

// BinomialTree returns a Constructor that builds the binomial tree B_order.
func BinomialTree(order int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateAtMost(MethodBinomialTree, "order", order, maxBinomialOrder); err != nil {
			return err
		}
		start := g.NumberOfNodes()
		if order < 1 {
			return addNodes(g, cfg, MethodBinomialTree, start, 1)
		}

		n := 1
		edges := make([]treeEdge, 0, (1<<order)-1)
		for k := 0; k < order; k++ {
			size := len(edges)
			for i := 0; i < size; i++ {
				edges = append(edges, treeEdge{u: edges[i].u + n, v: edges[i].v + n})
			}
			edges = append(edges, treeEdge{u: 0, v: n})
			n *= 2
		}

		if err := addNodes(g, cfg, MethodBinomialTree, start, n); err != nil {
			return err
		}
		for _, e := range edges {
			if err := addEdge(g, cfg, MethodBinomialTree, start+e.u, start+e.v); err != nil {
				return err
			}
		}

		return nil
	}
}

// FullMaryTree returns a Constructor that builds a full m-ary tree on n nodes.
func FullMaryTree(m, n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodFullMaryTree, "m", m); err != nil {
			return err
		}
		if err := validateSize(MethodFullMaryTree, "n", n); err != nil {
			return err
		}

		return addFullMary(g, cfg, MethodFullMaryTree, g.NumberOfNodes(), m, n)
	}
}

// BalancedTree returns a Constructor that builds the perfect r-ary tree of height h.
func BalancedTree(r, h int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if err := validateSize(MethodBalancedTree, "r", r); err != nil {
			return err
		}
		if err := validateSize(MethodBalancedTree, "h", h); err != nil {
			return err
		}
		size, ok := balancedSize(r, h)
		if !ok {
			return violated(MethodBalancedTree, "h", h, "such that the tree has ≤ "+itoa(maxTreeNodes)+" nodes")
		}

		start := g.NumberOfNodes()
		switch {
		case h == 0:
			return addNodes(g, cfg, MethodBalancedTree, start, 1)
		case r == 1:
			return addPath(g, cfg, MethodBalancedTree, start, h+1)
		default:
			return addFullMary(g, cfg, MethodBalancedTree, start, r, size)
		}
	}
}

// balancedSize returns 1 + r + r² + … + r^h, the node count of a perfect r-ary tree.
// Equal to (r^(h+1)-1)/(r-1) for r ≥ 2; r = 0 yields the lone root.
// ok is false once the count would exceed maxTreeNodes.
func balancedSize(r, h int) (total int, ok bool) {
	if r == 1 {
		return h + 1, h < maxTreeNodes
	}
	total, level := 1, 1
	for d := 1; d <= h && r > 0; d++ {
		if level > maxTreeNodes/r {
			return 0, false
		}
		level *= r
		total += level
		if total > maxTreeNodes {
			return 0, false
		}
	}

	return total, true
}

func addFullMary(g *core.Graph, cfg builderConfig, method string, start, m, n int) error {
	if err := addNodes(g, cfg, method, start, n); err != nil {
		return err
	}
	if m == 0 {
		return nil
	}
	cur := 0
	for parent := 0; parent < n && cur < n; parent++ {
		for c := 1; c <= m; c++ {
			child := cur + c
			if child >= n {
				break
			}
			if err := addEdge(g, cfg, method, start+parent, start+child); err != nil {
				return err
			}
		}
		cur += m
	}

	return nil
}
