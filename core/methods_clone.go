// File: methods_clone.go
// Role: Cloning and clearing graph instances.
// AI-HINT (file):
//   - Clone copies the edge counter verbatim, dedup history included.
//   - Clear() preserves the directed flag but resets all collections and the counter.

package core

// Clone returns a deep copy: same mode, same ids, same rows, same counter.
//
// Complexity: O(V + Σdeg).
func (g *Graph) Clone() *Graph {
	out := NewGraph(WithDirected(g.directed))
	out.edges = g.edges
	out.labelsByID = make([]string, len(g.labelsByID))
	copy(out.labelsByID, g.labelsByID)
	out.adjacency = make([][]Node, len(g.adjacency))
	for id, row := range g.adjacency {
		if row != nil {
			out.adjacency[id] = make([]Node, len(row))
			copy(out.adjacency[id], row)
		}
		label := g.labelsByID[id]
		out.identities[label] = id
		out.labels[label] = struct{}{}
	}

	return out
}

// Clear empties the four node collections and resets the edge counter.
// The directed flag is kept.
//
// Complexity: O(1) plus garbage collection of the old collections.
func (g *Graph) Clear() {
	g.adjacency = nil
	g.labels = make(map[string]struct{})
	g.identities = make(map[string]int)
	g.labelsByID = nil
	g.edges = 0
}
