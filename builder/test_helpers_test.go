// SPDX-License-Identifier: MIT
// Package builder_test: shared fixtures for constructor tests.

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topograph/builder"
	"github.com/katalvlaran/topograph/core"
)

// MustBuild builds an undirected store from cons or fails the test.
func MustBuild(t *testing.T, cons ...builder.Constructor) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(nil, nil, cons...)
	require.NoError(t, err)

	return g
}

// MustApply applies cons to g or fails the test.
func MustApply(t *testing.T, g *core.Graph, cons ...builder.Constructor) {
	t.Helper()
	require.NoError(t, builder.Apply(g, nil, cons...))
}

// degrees returns Degree(label) for every label in id order.
func degrees(t *testing.T, g *core.Graph) []int {
	t.Helper()
	out := make([]int, 0, g.NumberOfNodes())
	for _, label := range g.Labels() {
		d, err := g.Degree(label)
		require.NoError(t, err)
		out = append(out, d)
	}

	return out
}
