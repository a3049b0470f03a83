// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topograph/core"
)

// Spiral constants.
const (
	spiralChord           = 1.0 // arc length between consecutive nodes when equidistant
	spiralStep            = 1.0 // radial growth per node (plain spiral)
	spiralStepEquidistant = 0.5 // radial growth per radian (equidistant spiral)
)

// SpiralConfig places nodes on an Archimedean spiral centered in the frame.
//
// Plain mode advances angle by Resolution and radius by one unit per node.
// Equidistant mode keeps a constant chord between consecutive nodes, starting
// at θ = Resolution. The spiral is scaled so its extent along the smaller frame
// dimension fits within min(W,H) - 4·NodeRadius.
type SpiralConfig struct {
	NodeRadius  float64 `json:"node_radius" yaml:"node_radius"`
	Resolution  float64 `json:"resolution" yaml:"resolution"`
	Equidistant bool    `json:"equidistant" yaml:"equidistant"`
}

// DefaultSpiralConfig returns NodeRadius 10, Resolution 0.35, plain mode.
func DefaultSpiralConfig() SpiralConfig {
	return SpiralConfig{NodeRadius: 10, Resolution: 0.35}
}

// Kind implements Layout.
func (SpiralConfig) Kind() Kind { return KindSpiral }

// Compute implements Layout.
//
// Complexity: O(V).
func (c SpiralConfig) Compute(v core.View, f Frame) ([]Position, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if c.Resolution <= 0 {
		return nil, fmt.Errorf("spiral: resolution=%g: %w", c.Resolution, ErrBadConfig)
	}

	n := v.NumberOfNodes()
	raw := make([]Position, 0, n)
	if c.Equidistant {
		theta := c.Resolution
		for i := 0; i <= n; i++ {
			r := spiralStepEquidistant * theta
			theta += spiralChord / r
			if i > 0 {
				raw = append(raw, Position{X: math.Cos(theta) * r, Y: math.Sin(theta) * r})
			}
		}
	} else {
		angle := 0.0
		for i := 0; i < n; i++ {
			dist := float64(i) * spiralStep
			raw = append(raw, Position{X: math.Cos(angle) * dist, Y: math.Sin(angle) * dist})
			angle += c.Resolution
		}
	}

	// Extent along the constraining axis.
	widthBound := f.Width <= f.Height
	extent := 0.0
	for _, p := range raw {
		coord := math.Abs(p.Y)
		if widthBound {
			coord = math.Abs(p.X)
		}
		extent = math.Max(extent, coord)
	}

	factor := 0.0
	if extent > 0 {
		factor = (f.minDim() - 4*c.NodeRadius) / extent / 2
	}
	cx, cy := f.center()
	for i := range raw {
		raw[i] = Position{X: raw[i].X*factor + cx, Y: raw[i].Y*factor + cy}
	}

	return raw, nil
}
