// SPDX-License-Identifier: MIT
//
// File: result.go
// Role: Serializable bundle of a computed layout.

package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/topograph/core"
)

// PlacedNode is a node with its label and computed coordinates.
type PlacedNode struct {
	ID    int     `json:"id" yaml:"id"`
	Label string  `json:"label" yaml:"label"`
	X     float64 `json:"x" yaml:"x"`
	Y     float64 `json:"y" yaml:"y"`
}

// Result is the exportable form of a layout.
type Result struct {
	Kind     Kind         `json:"kind" yaml:"kind"`
	Frame    Frame        `json:"frame" yaml:"frame"`
	Directed bool         `json:"directed" yaml:"directed"`
	Nodes    []PlacedNode `json:"nodes" yaml:"nodes"`
	Edges    [][2]int     `json:"edges" yaml:"edges"`
	Arcs     []Arc        `json:"arcs,omitempty" yaml:"arcs,omitempty"`
}

// Run computes l over v and packages the positions with labels and edges.
// Arc layouts also carry their arc geometry.
func Run(v core.View, l Layout, f Frame) (*Result, error) {
	pos, err := l.Compute(v, f)
	if err != nil {
		return nil, fmt.Errorf("Run(%s): %w", l.Kind(), err)
	}

	nodes := v.Nodes()
	res := &Result{
		Kind:     l.Kind(),
		Frame:    f,
		Directed: v.Directed(),
		Nodes:    make([]PlacedNode, len(nodes)),
		Edges:    [][2]int{},
	}
	for i, n := range nodes {
		res.Nodes[i] = PlacedNode{ID: n.ID, Label: n.Label, X: pos[n.ID].X, Y: pos[n.ID].Y}
	}
	for _, e := range core.Edges(v) {
		res.Edges = append(res.Edges, [2]int{e.From, e.To})
	}
	if arc, ok := l.(ArcConfig); ok {
		if res.Arcs, err = arc.Arcs(v, f); err != nil {
			return nil, fmt.Errorf("Run(%s): %w", l.Kind(), err)
		}
	}

	return res, nil
}

// Positions returns the coordinates indexed by node id.
func (r *Result) Positions() []Position {
	out := make([]Position, len(r.Nodes))
	for _, n := range r.Nodes {
		out[n.ID] = Position{X: n.X, Y: n.Y}
	}

	return out
}

// JSON renders r with two-space indentation.
func (r *Result) JSON() ([]byte, error) {
	return json.MarshalIndent(r, "", "  ")
}

// YAML renders r as a YAML document.
func (r *Result) YAML() ([]byte, error) {
	return yaml.Marshal(r)
}

// Encode renders r as "json" or "yaml".
func (r *Result) Encode(format string) ([]byte, error) {
	switch strings.ToLower(format) {
	case "json", "":
		return r.JSON()
	case "yaml", "yml":
		return r.YAML()
	default:
		return nil, fmt.Errorf("encode layout: unsupported format %q", format)
	}
}

// WriteFile writes r to path, choosing YAML for .yaml/.yml and JSON otherwise.
func (r *Result) WriteFile(path string) error {
	format := strings.TrimPrefix(filepath.Ext(path), ".")
	if format != "yaml" && format != "yml" {
		format = "json"
	}
	data, err := r.Encode(format)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}
