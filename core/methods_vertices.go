// File: methods_vertices.go
// Role: Node lifecycle & lookups.
//
// Determinism:
//   - Nodes() and Labels() enumerate in id (insertion) order.
//
// AI-Hints (file):
//   - AddNode("") assigns strconv.Itoa(NumberOfNodes()); that default may
//     collide with an explicit numeric label and then fails with ErrDuplicateLabel.
package core

import (
	"fmt"
	"strconv"
)

// AddNode registers a new node and returns its value copy.
//
// Implementation:
//   - Stage 1: Default an empty label to the next id in decimal form.
//   - Stage 2: Reject an existing label with ErrDuplicateLabel (no mutation).
//   - Stage 3: Append an empty adjacency row and record both directions of the bijection.
//
// Returns:
//   - Node: {id, label} of the created node.
//
// Errors:
//   - ErrDuplicateLabel: label already registered.
//
// Complexity:
//   - Time O(1) amortized, Space O(1).
func (g *Graph) AddNode(label string) (Node, error) {
	if label == "" {
		label = strconv.Itoa(len(g.labelsByID))
	}
	if _, exists := g.labels[label]; exists {
		return Node{}, fmt.Errorf("AddNode(%q): %w", label, ErrDuplicateLabel)
	}

	id := len(g.labelsByID)
	g.adjacency = append(g.adjacency, nil)
	g.identities[label] = id
	g.labelsByID = append(g.labelsByID, label)
	g.labels[label] = struct{}{}

	return Node{ID: id, Label: label}, nil
}

// ensureNode returns the node for label, creating it when absent.
// created reports whether this call registered the node.
func (g *Graph) ensureNode(label string) (n Node, created bool, err error) {
	if id, ok := g.identities[label]; ok {
		return Node{ID: id, Label: label}, false, nil
	}
	n, err = g.AddNode(label)
	if err != nil {
		return Node{}, false, err
	}

	return n, true, nil
}

// HasLabel reports whether a node with the given label exists.
//
// Complexity: O(1).
func (g *Graph) HasLabel(label string) bool {
	_, ok := g.labels[label]
	return ok
}

// ID returns the id bound to label.
//
// Errors:
//   - ErrUnknownLabel if label is not registered.
func (g *Graph) ID(label string) (int, error) {
	id, ok := g.identities[label]
	if !ok {
		return 0, fmt.Errorf("ID(%q): %w", label, ErrUnknownLabel)
	}

	return id, nil
}

// Label returns the label bound to id.
//
// Errors:
//   - ErrUnknownID if id is outside 0..N-1.
func (g *Graph) Label(id int) (string, error) {
	if id < 0 || id >= len(g.labelsByID) {
		return "", fmt.Errorf("Label(%d): %w", id, ErrUnknownID)
	}

	return g.labelsByID[id], nil
}

// Node returns the node bound to label.
func (g *Graph) Node(label string) (Node, error) {
	id, err := g.ID(label)
	if err != nil {
		return Node{}, err
	}

	return Node{ID: id, Label: label}, nil
}

// Nodes returns a copy of every node in id order.
//
// Complexity: O(V).
func (g *Graph) Nodes() []Node {
	out := make([]Node, len(g.labelsByID))
	for id, label := range g.labelsByID {
		out[id] = Node{ID: id, Label: label}
	}

	return out
}

// Labels returns every label in id order.
func (g *Graph) Labels() []string {
	out := make([]string, len(g.labelsByID))
	copy(out, g.labelsByID)

	return out
}
