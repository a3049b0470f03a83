// SPDX-License-Identifier: MIT

package layout

import (
	"math"

	"github.com/katalvlaran/topograph/core"
)

// ArcConfig places nodes left to right on the horizontal midline, spaced
// W/N apart with a half-gap margin. Edges are drawn as semicircles; see Arcs.
type ArcConfig struct{}

// Arc is one edge of an arc diagram: a semicircle centered between its
// endpoints. Up arcs bulge above the midline; the rest bulge below.
type Arc struct {
	From   int     `json:"from" yaml:"from"`
	To     int     `json:"to" yaml:"to"`
	CX     float64 `json:"cx" yaml:"cx"`
	CY     float64 `json:"cy" yaml:"cy"`
	Radius float64 `json:"radius" yaml:"radius"`
	Up     bool    `json:"up" yaml:"up"`
}

// Kind implements Layout.
func (ArcConfig) Kind() Kind { return KindArc }

// Compute implements Layout.
//
// Complexity: O(V).
func (ArcConfig) Compute(v core.View, f Frame) ([]Position, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	n := v.NumberOfNodes()
	out := make([]Position, n)
	if n == 0 {
		return out, nil
	}
	r := f.Width / float64(2*n) / 2
	for i := range out {
		out[i] = Position{X: 2*r + 4*r*float64(i), Y: f.Height / 2}
	}

	return out, nil
}

// Arcs lists one arc per edge of v in core.Edges order. The first half of the
// edges bulge above the midline, the second half below.
func (c ArcConfig) Arcs(v core.View, f Frame) ([]Arc, error) {
	pos, err := c.Compute(v, f)
	if err != nil {
		return nil, err
	}

	edges := core.Edges(v)
	out := make([]Arc, len(edges))
	for idx, e := range edges {
		a, b := pos[e.From], pos[e.To]
		radius := math.Abs(a.X-b.X) / 2
		up := idx*2 < len(edges)
		cy := f.Height / 2
		if up {
			cy -= radius
		} else {
			cy += radius
		}
		out[idx] = Arc{From: e.From, To: e.To, CX: (a.X + b.X) / 2, CY: cy, Radius: radius, Up: up}
	}

	return out, nil
}
