// SPDX-License-Identifier: MIT

package layout

import (
	"math/rand"

	"github.com/katalvlaran/topograph/core"
)

// RandomConfig places every node uniformly inside the frame, inset by
// NodeRadius from the top-left edges. Equal seeds give equal layouts.
type RandomConfig struct {
	NodeRadius float64 `json:"node_radius" yaml:"node_radius"`
	Seed       int64   `json:"seed" yaml:"seed"`
}

// DefaultRandomConfig returns NodeRadius 20, Seed 1.
func DefaultRandomConfig() RandomConfig { return RandomConfig{NodeRadius: 20, Seed: 1} }

// Kind implements Layout.
func (RandomConfig) Kind() Kind { return KindRandom }

// Compute implements Layout.
//
// Complexity: O(V).
func (c RandomConfig) Compute(v core.View, f Frame) ([]Position, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(c.Seed))
	unit := make([]Position, v.NumberOfNodes())
	for i := range unit {
		unit[i] = Position{X: rng.Float64(), Y: rng.Float64()}
	}

	return toFrame(unit, f, c.NodeRadius), nil
}

// toFrame maps unit-square coordinates into f, inset by r.
func toFrame(unit []Position, f Frame, r float64) []Position {
	out := make([]Position, len(unit))
	for i, p := range unit {
		out[i] = Position{X: p.X*(f.Width-r) + r, Y: p.Y*(f.Height-r) + r}
	}

	return out
}
