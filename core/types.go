// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Graph, GraphOption, sentinel errors and the NewGraph constructor.
//
// Errors:
//
//	ErrDuplicateLabel - AddNode with an existing label.
//	ErrUnknownLabel   - query referenced a label that is not registered.
//	ErrUnknownID      - id outside 0..N-1.
//	ErrEmptyGraph     - statistic undefined on a store with no nodes.
//	ErrTooFewNodes    - statistic undefined below two nodes.
package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrDuplicateLabel indicates AddNode was called with a label that already exists.
	ErrDuplicateLabel = errors.New("core: duplicate label")

	// ErrUnknownLabel indicates an operation referenced a label absent from the store.
	ErrUnknownLabel = errors.New("core: unknown label")

	// ErrUnknownID indicates an operation referenced an id outside 0..N-1.
	ErrUnknownID = errors.New("core: unknown node id")

	// ErrEmptyGraph indicates a statistic was requested on a store with no nodes.
	ErrEmptyGraph = errors.New("core: graph has no nodes")

	// ErrTooFewNodes indicates a statistic that needs at least two nodes.
	ErrTooFewNodes = errors.New("core: too few nodes")
)

// Node is a value copy of a stored node.
//
// ID is the zero-based insertion index; Label is the unique user-facing name.
// Nodes returned by the store are copies: mutating them never affects the Graph.
type Node struct {
	// ID is the dense insertion index of the node.
	ID int

	// Label is the unique string identity of the node.
	Label string
}

// GraphOption configures a Graph before first use.
type GraphOption func(g *Graph)

// WithDirected selects directed (true) or undirected (false) edge insertion.
func WithDirected(directed bool) GraphOption {
	return func(g *Graph) { g.directed = directed }
}

// Graph is the label↔id node store with ordered adjacency rows.
//
// Invariants (hold after every public call):
//   - len(adjacency) == len(labelsByID) == len(identities) == len(labels).
//   - identities[labelsByID[i]] == i for every id i.
//   - For undirected stores, v ∈ adjacency[u] ⇔ u ∈ adjacency[v].
//
// The zero value is not usable; construct with NewGraph.
// Graph is not safe for concurrent use.
type Graph struct {
	adjacency  [][]Node            // adjacency[id] = neighbor copies in insertion order
	labels     map[string]struct{} // existence set
	identities map[string]int      // label → id
	labelsByID []string            // id → label
	edges      int                 // accepted AddEdge calls
	directed   bool
}

// NewGraph returns an empty Graph configured by opts, applied left to right.
//
// Complexity: O(len(opts)).
func NewGraph(opts ...GraphOption) *Graph {
	g := &Graph{
		labels:     make(map[string]struct{}),
		identities: make(map[string]int),
	}
	for _, opt := range opts {
		opt(g)
	}

	return g
}
