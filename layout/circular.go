// SPDX-License-Identifier: MIT

package layout

import (
	"fmt"
	"math"

	"github.com/katalvlaran/topograph/core"
)

// circlePadding separates the ring from the frame border.
const circlePadding = 5

// CircularConfig places node i at angle 2π·i/N on a centered circle of
// radius min(W,H)/2 - 5 - NodeRadius.
type CircularConfig struct {
	NodeRadius float64 `json:"node_radius" yaml:"node_radius"`
}

// DefaultCircularConfig returns NodeRadius 20.
func DefaultCircularConfig() CircularConfig { return CircularConfig{NodeRadius: 20} }

// Kind implements Layout.
func (CircularConfig) Kind() Kind { return KindCircular }

// Compute implements Layout.
//
// Complexity: O(V).
func (c CircularConfig) Compute(v core.View, f Frame) ([]Position, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if c.NodeRadius < 0 {
		return nil, fmt.Errorf("circular: node_radius=%g: %w", c.NodeRadius, ErrBadConfig)
	}

	n := v.NumberOfNodes()
	cx, cy := f.center()
	radius := math.Max(f.minDim()/2-circlePadding-c.NodeRadius, 0)
	out := make([]Position, n)
	for i := range out {
		angle := float64(i) / float64(n) * 2 * math.Pi
		out[i] = Position{X: cx + radius*math.Cos(angle), Y: cy + radius*math.Sin(angle)}
	}

	return out, nil
}
