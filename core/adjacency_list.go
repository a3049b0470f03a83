// SPDX-License-Identifier: MIT
//
// File: adjacency_list.go
// Role: Deterministic text dump of the adjacency rows.
// Format:
//   - One line per id, ids ascending, each terminated by "\n".
//   - Fields: the node label, then its neighbor labels in row order.
//   - Every field, the last one included, is followed by the delimiter.
//     Example with " ": "0 1 \n1 0 2 \n".

package core

import "strings"

// DefaultDelimiter separates fields in String().
const DefaultDelimiter = " "

// AdjacencyList renders the store as a debug dump using delimiter between fields.
//
// The format is a stable contract for golden tests; no parser is provided by
// this package.
//
// Complexity: O(V + Σdeg) time and output size.
func (g *Graph) AdjacencyList(delimiter string) string {
	var sb strings.Builder
	for id, row := range g.adjacency {
		sb.WriteString(g.labelsByID[id])
		sb.WriteString(delimiter)
		for _, nb := range row {
			sb.WriteString(nb.Label)
			sb.WriteString(delimiter)
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// String implements fmt.Stringer with DefaultDelimiter.
func (g *Graph) String() string { return g.AdjacencyList(DefaultDelimiter) }
