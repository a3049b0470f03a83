// File: methods_edges.go
// Role: Edge insertion and the path/cycle helpers built on it.
// Determinism:
//   - Neighbor rows grow in call order; nothing is sorted.
// AI-HINT (file):
//   - NumberOfEdges counts calls. A dedup-suppressed AddEdge still increments it.
//   - AddPath/AddCycle register every element first, so later pairs may hit the dedup rule.

package core

import "fmt"

// AddEdge connects label1 to label2, creating either endpoint when absent.
//
// Steps:
//  1. Resolve or create label1, then label2 (AddNode semantics for new labels).
//  2. Increment the edge counter.
//  3. If both endpoints pre-existed and label2 is already in label1's row, stop.
//  4. Append node2 to row(id1); for undirected stores also append node1 to
//     row(id2). An undirected self-loop therefore occupies two row entries.
//
// Errors:
//   - Only AddNode failures surface (e.g. an empty label whose decimal default collides).
//
// Complexity: O(deg(label1)) for the adjacency probe, O(1) amortized otherwise.
func (g *Graph) AddEdge(label1, label2 string) error {
	n1, created1, err := g.ensureNode(label1)
	if err != nil {
		return fmt.Errorf("AddEdge(%q,%q): %w", label1, label2, err)
	}
	n2, created2, err := g.ensureNode(label2)
	if err != nil {
		return fmt.Errorf("AddEdge(%q,%q): %w", label1, label2, err)
	}
	g.link(n1, n2, !created1 && !created2)

	return nil
}

// AddEdgeNodes is AddEdge over node values. Only the carried labels are used;
// carried ids are ignored and never trusted.
func (g *Graph) AddEdgeNodes(n1, n2 Node) error {
	return g.AddEdge(n1.Label, n2.Label)
}

// HasEdge reports whether label2 appears in label1's neighbor row.
// Unknown labels yield false.
func (g *Graph) HasEdge(label1, label2 string) bool {
	id1, ok := g.identities[label1]
	if !ok {
		return false
	}
	id2, ok := g.identities[label2]
	if !ok {
		return false
	}

	return g.adjacent(id1, id2)
}

// link records one accepted edge call; probe enables the dedup check.
func (g *Graph) link(n1, n2 Node, probe bool) {
	g.edges++
	if probe && g.adjacent(n1.ID, n2.ID) {
		return
	}
	g.adjacency[n1.ID] = append(g.adjacency[n1.ID], n2)
	if !g.directed {
		g.adjacency[n2.ID] = append(g.adjacency[n2.ID], n1)
	}
}

// adjacent reports whether id2 is already in row(id1).
func (g *Graph) adjacent(id1, id2 int) bool {
	for _, nb := range g.adjacency[id1] {
		if nb.ID == id2 {
			return true
		}
	}

	return false
}

// AddPath registers every label, then connects each consecutive pair in order.
//
// Zero or one label adds no edge; k labels add max(k-1, 0) counted edges.
// On error the nodes registered so far remain.
func (g *Graph) AddPath(labels []string) error {
	nodes, err := g.register(labels)
	if err != nil {
		return fmt.Errorf("AddPath: %w", err)
	}
	g.chain(nodes, false)

	return nil
}

// AddPathNodes is AddPath over node values (labels only).
func (g *Graph) AddPathNodes(nodes []Node) error {
	return g.AddPath(nodeLabels(nodes))
}

// AddCycle is AddPath plus a closing edge from the last label back to the first.
//
// An empty sequence is a no-op; a single label produces one self-loop call.
func (g *Graph) AddCycle(labels []string) error {
	nodes, err := g.register(labels)
	if err != nil {
		return fmt.Errorf("AddCycle: %w", err)
	}
	g.chain(nodes, true)

	return nil
}

// AddCycleNodes is AddCycle over node values (labels only).
func (g *Graph) AddCycleNodes(nodes []Node) error {
	return g.AddCycle(nodeLabels(nodes))
}

// register resolves labels to nodes, creating the missing ones in order.
func (g *Graph) register(labels []string) ([]Node, error) {
	nodes := make([]Node, len(labels))
	for i, label := range labels {
		n, _, err := g.ensureNode(label)
		if err != nil {
			return nil, err
		}
		nodes[i] = n
	}

	return nodes, nil
}

// chain links consecutive pre-registered nodes and optionally closes the ring.
func (g *Graph) chain(nodes []Node, closed bool) {
	if len(nodes) == 0 {
		return
	}
	for i := 1; i < len(nodes); i++ {
		g.link(nodes[i-1], nodes[i], true)
	}
	if closed {
		g.link(nodes[len(nodes)-1], nodes[0], true)
	}
}

func nodeLabels(nodes []Node) []string {
	labels := make([]string, len(nodes))
	for i, n := range nodes {
		labels[i] = n.Label
	}

	return labels
}
