// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Thin public facade of read-only getters and mode switches.
// Policy:
//   - No algorithms here; every getter is O(1).
//   - Counters are reported exactly as stored (see NumberOfEdges caveat).

package core

// NumberOfNodes returns the count of registered nodes.
//
// Complexity: O(1).
func (g *Graph) NumberOfNodes() int { return len(g.labelsByID) }

// NumberOfEdges returns the number of accepted AddEdge calls since the last Clear.
//
// The value is a call counter: a repeated edge between two pre-existing,
// already adjacent nodes is counted again even though the adjacency rows are
// left unchanged. Sum of row lengths may therefore differ from 2*NumberOfEdges.
//
// Complexity: O(1).
func (g *Graph) NumberOfEdges() int { return g.edges }

// Directed reports whether AddEdge inserts one-way entries only.
func (g *Graph) Directed() bool { return g.directed }

// SetDirected switches the insertion mode for subsequent edges.
// Rows already stored are not rewritten: arcs added while directed stay
// one-way, and Edges still reports them once after switching back.
func (g *Graph) SetDirected(directed bool) { g.directed = directed }
