// SPDX-License-Identifier: MIT

// Package core provides the in-memory graph store used by every other
// topograph package: a label↔id bijection over densely numbered nodes plus
// ordered adjacency lists.
//
// The Graph G = (V,E) keeps four collections in lock-step:
//
//   - adjacency[id]    ordered neighbor Node copies, in insertion order
//   - labels           existence set of node labels
//   - identities       label → id
//   - labelsByID       id → label (inverse of identities)
//
// plus an edge counter and a directed flag.
//
// Identity model:
//
//	Ids are zero-based insertion indices. They are dense (0..N-1) and never
//	reassigned until Clear. Labels are unique strings; an empty label passed
//	to AddNode defaults to strconv.Itoa(NumberOfNodes()).
//
// Edge model:
//
//	AddEdge auto-creates missing endpoints and counts every accepted call.
//	When both endpoints already existed and label2 is already a neighbor of
//	label1, the adjacency rows are left untouched but the counter still moves:
//	NumberOfEdges is a call counter, not a unique-edge count.
//	Undirected stores mirror the neighbor entry, so a self-loop is listed twice.
//
// Core Methods:
//
//	// Nodes
//	AddNode(label string) (Node, error)         // O(1) amortized
//	HasLabel(label string) bool                 // O(1)
//	ID(label string) (int, error)               // O(1)
//	Label(id int) (string, error)               // O(1)
//	Nodes() []Node                              // O(V), id order
//
//	// Edges and sequences
//	AddEdge(label1, label2 string) error        // O(deg(label1)) for the dedup probe
//	AddEdgeNodes(n1, n2 Node) error
//	AddPath(labels []string) error
//	AddCycle(labels []string) error
//
//	// Queries
//	Degree, AverageDegree, Density
//	Neighbors, NonNeighbors, CommonNeighbors
//	AdjacencyList(delimiter string) string      // debug dump, stable contract
//
//	// Maintenance
//	Clear()                                     // reset collections and counter, keep directed flag
//	Clone() *Graph                              // deep copy
//
// Errors:
//
//	ErrDuplicateLabel  AddNode with a label that already exists; store untouched.
//	ErrUnknownLabel    a query names a label the store does not hold.
//	ErrEmptyGraph      AverageDegree on a store with no nodes.
//	ErrTooFewNodes     Density on a store with fewer than two nodes.
//
// Concurrency:
//
//	Graph carries no locks and is not safe for concurrent use. Callers that
//	need parallel construction build independent stores and merge them.
//
// Read boundary:
//
//	Layout and render packages consume the View interface only; *Graph
//	satisfies it and nothing behind View mutates the store.
package core
