// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for topograph/core.
//
// Purpose:
//   - Provide small, deterministic fixtures and assertion utilities for core.Graph.
//   - Keep magic labels and counts out of test bodies.

package core_test

import (
	"strings"
	"testing"

	"github.com/katalvlaran/topograph/core"
)

// Common labels used across core tests.
const (
	LabelA = "a"
	LabelB = "b"
	LabelC = "c"
	LabelD = "d"

	LabelMissing = "missing"
)

// MustAddNode adds label or fails the test immediately.
func MustAddNode(t *testing.T, g *core.Graph, label string) core.Node {
	t.Helper()
	n, err := g.AddNode(label)
	if err != nil {
		t.Fatalf("AddNode(%q) unexpected error: %v", label, err)
	}

	return n
}

// MustAddEdge adds label1→label2 or fails the test immediately.
func MustAddEdge(t *testing.T, g *core.Graph, label1, label2 string) {
	t.Helper()
	if err := g.AddEdge(label1, label2); err != nil {
		t.Fatalf("AddEdge(%q,%q) unexpected error: %v", label1, label2, err)
	}
}

// MustNeighbors returns Neighbors(label) or fails the test.
func MustNeighbors(t *testing.T, g *core.Graph, label string) []string {
	t.Helper()
	nbs, err := g.Neighbors(label)
	if err != nil {
		t.Fatalf("Neighbors(%q) unexpected error: %v", label, err)
	}

	return nbs
}

// parseDump splits an adjacency dump back into label → neighbor labels.
// Order of the returned slice mirrors line order.
func parseDump(dump, delimiter string) (order []string, rows map[string][]string) {
	rows = make(map[string][]string)
	for _, line := range strings.Split(strings.TrimSuffix(dump, "\n"), "\n") {
		if line == "" {
			continue
		}
		fields := strings.Split(strings.TrimSuffix(line, delimiter), delimiter)
		order = append(order, fields[0])
		rows[fields[0]] = append([]string{}, fields[1:]...)
	}

	return order, rows
}
