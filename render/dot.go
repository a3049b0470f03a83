// SPDX-License-Identifier: MIT
//
// File: dot.go
// Role: DOT serialization of a core.View.
// Determinism:
//   - Nodes in id order, edges in core.Edges order.

package render

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/katalvlaran/topograph/core"
	"github.com/katalvlaran/topograph/layout"
)

// DefaultGraphName names the DOT graph when Options.Name is empty.
const DefaultGraphName = "G"

// Options configures DOT output.
type Options struct {
	// Name is the DOT graph identifier.
	Name string
	// Positions, when non-nil, pins node id i at Positions[i].
	Positions []layout.Position
	// Frame is the coordinate space of Positions; its height flips the y axis.
	Frame layout.Frame
	// NodeShape overrides the default "circle".
	NodeShape string
}

// FromResult returns options pinning every node of a computed layout.
func FromResult(r *layout.Result) Options {
	return Options{Positions: r.Positions(), Frame: r.Frame}
}

// Engine returns the Graphviz program that honours these options: neato when
// positions are pinned, dot otherwise.
func (o Options) Engine() Engine {
	if o.Positions != nil {
		return EngineNeato
	}

	return EngineDot
}

// ToDOT renders v as a "graph" (undirected) or "digraph" (directed). Each
// node is emitted as its id with a label attribute; each stored edge is
// emitted once.
//
// Complexity: O(V + E).
func ToDOT(v core.View, opts Options) string {
	name := opts.Name
	if name == "" {
		name = DefaultGraphName
	}
	shape := opts.NodeShape
	if shape == "" {
		shape = "circle"
	}
	kind, op := "graph", "--"
	if v.Directed() {
		kind, op = "digraph", "->"
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s %q {\n", kind, name)
	fmt.Fprintf(&buf, "  node [shape=%s];\n", shape)
	if opts.Positions != nil {
		// pos is written in points; neato reads inches unless told otherwise.
		buf.WriteString("  layout=neato;\n")
		buf.WriteString("  inputscale=72;\n")
		buf.WriteString("  splines=true;\n")
	}
	buf.WriteString("\n")

	for _, n := range v.Nodes() {
		attrs := []string{fmt.Sprintf("label=%q", n.Label)}
		if n.ID < len(opts.Positions) {
			p := opts.Positions[n.ID]
			attrs = append(attrs, fmt.Sprintf("pos=\"%s,%s!\"", num(p.X), num(opts.Frame.Height-p.Y)))
		}
		fmt.Fprintf(&buf, "  %d [%s];\n", n.ID, strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, e := range core.Edges(v) {
		fmt.Fprintf(&buf, "  %d %s %d;\n", e.From, op, e.To)
	}

	buf.WriteString("}\n")

	return buf.String()
}

// num formats a coordinate with at most two decimals and no trailing zeros.
func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}

	return s
}
