// SPDX-License-Identifier: MIT
//
// File: force.go
// Role: Fruchterman–Reingold force-directed placement.
//
// Algorithm:
//   - Start from a seeded uniform placement in the unit square.
//   - Each iteration: repulsion k²/d between every pair, attraction d²/k
//     along every edge of core.Edges, displacement capped by the temperature.
//   - Temperature cools linearly from 0.1 to 0 over Iterations+1 steps.
//   - Normalize the bounding box into [0.05, 0.95]² and map into the frame.
//
// Complexity: O(I·(V² + E)).
// Determinism: fixed Seed ⇒ identical output.

package layout

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/katalvlaran/topograph/core"
)

const (
	initialTemperature = 0.1
	minDistance        = 1e-9 // coincident points are treated as this far apart
	normalizeSpan      = 0.9
)

// ForceDirectedConfig tunes the Fruchterman–Reingold layout.
type ForceDirectedConfig struct {
	NodeRadius float64 `json:"node_radius" yaml:"node_radius"`
	Iterations int     `json:"iterations" yaml:"iterations"`
	Seed       int64   `json:"seed" yaml:"seed"`
}

// DefaultForceDirectedConfig returns NodeRadius 20, Iterations 50, Seed 1.
func DefaultForceDirectedConfig() ForceDirectedConfig {
	return ForceDirectedConfig{NodeRadius: 20, Iterations: 50, Seed: 1}
}

// Kind implements Layout.
func (ForceDirectedConfig) Kind() Kind { return KindForce }

// Compute implements Layout.
func (c ForceDirectedConfig) Compute(v core.View, f Frame) ([]Position, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if c.Iterations < 0 {
		return nil, fmt.Errorf("force: iterations=%d: %w", c.Iterations, ErrBadConfig)
	}

	n := v.NumberOfNodes()
	if n == 0 {
		return []Position{}, nil
	}

	rng := rand.New(rand.NewSource(c.Seed))
	pos := make([]Position, n)
	for i := range pos {
		pos[i] = Position{X: rng.Float64(), Y: rng.Float64()}
	}

	k := math.Sqrt(1 / float64(n))
	temperature := initialTemperature
	cooling := initialTemperature / float64(c.Iterations+1)
	move := make([]Position, n)
	edges := core.Edges(v)

	for iter := 0; iter < c.Iterations; iter++ {
		for i := range move {
			move[i] = Position{}
		}

		// Repulsion between every unordered pair.
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				dx, dy, d := separation(pos[i], pos[j], i, j)
				force := k * k / d
				fx, fy := dx/d*force, dy/d*force
				move[i].X += fx
				move[i].Y += fy
				move[j].X -= fx
				move[j].Y -= fy
			}
		}

		// Attraction along every edge; self-loops exert no force.
		for _, e := range edges {
			i, j := e.From, e.To
			if i == j {
				continue
			}
			dx, dy, d := separation(pos[i], pos[j], i, j)
			force := d * d / k
			fx, fy := dx/d*force, dy/d*force
			move[i].X -= fx
			move[i].Y -= fy
			move[j].X += fx
			move[j].Y += fy
		}

		for i := range pos {
			length := math.Hypot(move[i].X, move[i].Y)
			if length == 0 {
				continue
			}
			step := math.Min(length, temperature)
			pos[i].X += move[i].X / length * step
			pos[i].Y += move[i].Y / length * step
		}
		temperature -= cooling
	}

	normalize(pos)

	return toFrame(pos, f, c.NodeRadius), nil
}

// separation returns the vector a-b and its length, never zero. Coincident
// points are pushed apart along a direction derived from their ids.
func separation(a, b Position, i, j int) (float64, float64, float64) {
	dx, dy := a.X-b.X, a.Y-b.Y
	d := math.Hypot(dx, dy)
	if d >= minDistance {
		return dx, dy, d
	}
	angle := float64(i*31+j) * 0.618
	dx, dy = math.Cos(angle)*minDistance, math.Sin(angle)*minDistance

	return dx, dy, minDistance
}

// normalize rescales pos in place so the bounding box is centered at
// (0.5, 0.5) with its larger side spanning 0.9.
func normalize(pos []Position) {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range pos {
		minX, maxX = math.Min(minX, p.X), math.Max(maxX, p.X)
		minY, maxY = math.Min(minY, p.Y), math.Max(maxY, p.Y)
	}

	span := math.Max(maxX-minX, maxY-minY)
	scale := 0.0
	if span > 0 {
		scale = normalizeSpan / span
	}
	midX, midY := (maxX+minX)/2, (maxY+minY)/2
	for i := range pos {
		pos[i].X = (pos[i].X-midX)*scale + 0.5
		pos[i].Y = (pos[i].Y-midY)*scale + 0.5
	}
}
