// File: view.go
// Role: Read-only boundary consumed by layout and render packages.
// Determinism:
//   - Edges() walks ids ascending and each row in insertion order.
// AI-HINT (file):
//   - Anything holding a View must not type-assert back to *Graph to mutate it.

package core

// View is the read-only surface of a graph store.
type View interface {
	// NumberOfNodes returns the count of nodes; ids are 0..NumberOfNodes()-1.
	NumberOfNodes() int
	// NumberOfEdges returns the raw edge call counter.
	NumberOfEdges() int
	// Directed reports the insertion mode.
	Directed() bool
	// Nodes returns every node in id order.
	Nodes() []Node
	// NeighborNodes returns a copy of row(id) in insertion order.
	NeighborNodes(id int) []Node
}

var _ View = (*Graph)(nil)

// Edge is an ordered pair of node ids as stored in the adjacency rows.
type Edge struct {
	From int
	To   int
}

// Edges lists the stored relation of v once per edge.
//
// Directed views report every row entry. Undirected views report each
// unordered pair once, at its first occurrence in id order: a mirrored pair
// comes out as From ≤ To, a self-loop appears once, and a one-way entry left
// over from a directed phase (see Graph.SetDirected) is still reported.
//
// Complexity: O(V + Σdeg).
func Edges(v View) []Edge {
	out := make([]Edge, 0, v.NumberOfEdges())
	n := v.NumberOfNodes()
	directed := v.Directed()
	seen := make(map[Edge]struct{})
	for id := 0; id < n; id++ {
		for _, nb := range v.NeighborNodes(id) {
			e := Edge{From: id, To: nb.ID}
			if !directed {
				key := Edge{From: min(id, nb.ID), To: max(id, nb.ID)}
				if _, dup := seen[key]; dup {
					continue
				}
				seen[key] = struct{}{}
			}
			out = append(out, e)
		}
	}

	return out
}
