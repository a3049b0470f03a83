// File: methods_adjacent.go
// Role: Neighborhood and degree queries over the adjacency rows.
// Determinism:
//   - Neighbors follow row insertion order.
//   - NonNeighbors follow id order.
//   - CommonNeighbors follow label1's row order.
// Policy:
//   - Queries never mutate the store.
//   - Unknown labels fail with ErrUnknownLabel wrapped with the query name.

package core

import "fmt"

// Degree returns the length of label's neighbor row.
//
// An undirected self-loop counts twice; dedup-suppressed calls add nothing.
//
// Errors:
//   - ErrUnknownLabel if label is not registered.
//
// Complexity: O(1).
func (g *Graph) Degree(label string) (int, error) {
	id, ok := g.identities[label]
	if !ok {
		return 0, fmt.Errorf("Degree(%q): %w", label, ErrUnknownLabel)
	}

	return len(g.adjacency[id]), nil
}

// AverageDegree returns the arithmetic mean of row lengths over all nodes.
//
// Errors:
//   - ErrEmptyGraph if the store holds no nodes.
//
// Complexity: O(V).
func (g *Graph) AverageDegree() (float64, error) {
	n := len(g.adjacency)
	if n == 0 {
		return 0, fmt.Errorf("AverageDegree: %w", ErrEmptyGraph)
	}
	total := 0
	for _, row := range g.adjacency {
		total += len(row)
	}

	return float64(total) / float64(n), nil
}

// Density returns E/(N(N-1)) for directed stores and 2E/(N(N-1)) otherwise,
// where E is the raw NumberOfEdges counter.
//
// Errors:
//   - ErrTooFewNodes if N ≤ 1.
//
// Complexity: O(1).
func (g *Graph) Density() (float64, error) {
	n := float64(len(g.adjacency))
	if n <= 1 {
		return 0, fmt.Errorf("Density: n=%d: %w", len(g.adjacency), ErrTooFewNodes)
	}
	e := float64(g.edges)
	if g.directed {
		return e / (n * (n - 1)), nil
	}

	return 2 * e / (n * (n - 1)), nil
}

// Neighbors returns the labels in label's row, in insertion order.
//
// Errors:
//   - ErrUnknownLabel if label is not registered.
//
// Complexity: O(deg).
func (g *Graph) Neighbors(label string) ([]string, error) {
	id, ok := g.identities[label]
	if !ok {
		return nil, fmt.Errorf("Neighbors(%q): %w", label, ErrUnknownLabel)
	}
	out := make([]string, len(g.adjacency[id]))
	for i, nb := range g.adjacency[id] {
		out[i] = nb.Label
	}

	return out, nil
}

// NeighborNodes returns a copy of row(id). Out-of-range ids yield nil.
//
// Complexity: O(deg).
func (g *Graph) NeighborNodes(id int) []Node {
	if id < 0 || id >= len(g.adjacency) {
		return nil
	}
	out := make([]Node, len(g.adjacency[id]))
	copy(out, g.adjacency[id])

	return out
}

// NonNeighbors returns every other label absent from label's row, in id order.
// The queried label itself is never included, even without a self-loop.
//
// Errors:
//   - ErrUnknownLabel if label is not registered.
//
// Complexity: O(V + deg).
func (g *Graph) NonNeighbors(label string) ([]string, error) {
	id, ok := g.identities[label]
	if !ok {
		return nil, fmt.Errorf("NonNeighbors(%q): %w", label, ErrUnknownLabel)
	}
	seen := g.rowSet(id)
	out := make([]string, 0, len(g.labelsByID))
	for other, l := range g.labelsByID {
		if other == id {
			continue
		}
		if _, adj := seen[other]; adj {
			continue
		}
		out = append(out, l)
	}

	return out, nil
}

// CommonNeighbors returns labels present in both rows, preserving label1's order.
// Each label is reported once, even when a self-loop repeats it in the row.
//
// Errors:
//   - ErrUnknownLabel if either label is not registered.
//
// Complexity: O(deg(label1) + deg(label2)).
func (g *Graph) CommonNeighbors(label1, label2 string) ([]string, error) {
	id1, ok := g.identities[label1]
	if !ok {
		return nil, fmt.Errorf("CommonNeighbors(%q,%q): %w", label1, label2, ErrUnknownLabel)
	}
	id2, ok := g.identities[label2]
	if !ok {
		return nil, fmt.Errorf("CommonNeighbors(%q,%q): %w", label1, label2, ErrUnknownLabel)
	}
	other := g.rowSet(id2)
	out := make([]string, 0)
	for _, nb := range g.adjacency[id1] {
		if _, shared := other[nb.ID]; shared {
			out = append(out, nb.Label)
			delete(other, nb.ID)
		}
	}

	return out, nil
}

// rowSet indexes row(id) by neighbor id.
func (g *Graph) rowSet(id int) map[int]struct{} {
	set := make(map[int]struct{}, len(g.adjacency[id]))
	for _, nb := range g.adjacency[id] {
		set[nb.ID] = struct{}{}
	}

	return set
}
