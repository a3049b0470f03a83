// SPDX-License-Identifier: MIT

package builder_test

import (
	"bytes"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/katalvlaran/topograph/builder"
	"github.com/katalvlaran/topograph/core"
)

// ComposeSuite covers append-only composition on a shared store.
type ComposeSuite struct {
	suite.Suite
	g *core.Graph
}

func (s *ComposeSuite) SetupTest() {
	s.g = core.NewGraph()
}

func (s *ComposeSuite) TestDisjointUnion() {
	s.Require().NoError(builder.Apply(s.g, nil, builder.Complete(3), builder.Star(2)))

	s.Equal(6, s.g.NumberOfNodes())
	s.Equal(5, s.g.NumberOfEdges())
	nbs, err := s.g.Neighbors("3")
	s.Require().NoError(err)
	s.Equal([]string{"4", "5"}, nbs)

	non, err := s.g.NonNeighbors("0")
	s.Require().NoError(err)
	s.Equal([]string{"3", "4", "5"}, non)
}

func (s *ComposeSuite) TestCallerBridgesComponents() {
	s.Require().NoError(builder.Apply(s.g, nil, builder.Cycle(3), builder.Cycle(3)))
	s.Require().NoError(s.g.AddEdge("2", "3"))

	s.Equal(6, s.g.NumberOfNodes())
	s.Equal(7, s.g.NumberOfEdges())
	common, err := s.g.CommonNeighbors("2", "4")
	s.Require().NoError(err)
	s.Equal([]string{"3"}, common)
}

func (s *ComposeSuite) TestAfterClearRestartsAtZero() {
	s.Require().NoError(builder.Apply(s.g, nil, builder.Path(4)))
	s.g.Clear()
	s.Require().NoError(builder.Apply(s.g, nil, builder.Barbell(2, 2)))
	s.Equal("0 1 \n1 0 2 \n2 3 1 \n3 2 4 \n4 5 3 \n5 4 \n", s.g.String())
}

func (s *ComposeSuite) TestIDScheme() {
	err := builder.Apply(s.g, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Lollipop(2, 1))
	s.Require().NoError(err)
	s.Equal("A B \nB A C \nC B \n", s.g.String())

	// Composition continues the scheme from the current size.
	err = builder.Apply(s.g, []builder.BuilderOption{builder.WithExcelColumnIDs()}, builder.Star(1))
	s.Require().NoError(err)
	s.Equal([]string{"A", "B", "C", "D", "E"}, s.g.Labels())
}

func TestComposeSuite(t *testing.T) {
	suite.Run(t, new(ComposeSuite))
}

func TestRandomSparse_Deterministic(t *testing.T) {
	build := func(seed int64) string {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomSparse(20, 0.3))
		require.NoError(t, err)
		require.Equal(t, 20, g.NumberOfNodes())
		return g.String()
	}
	require.Equal(t, build(7), build(7))

	// p ∈ {0,1} needs no RNG.
	g := MustBuild(t, builder.RandomSparse(5, 1))
	require.Equal(t, 10, g.NumberOfEdges())
	g = MustBuild(t, builder.RandomSparse(5, 0))
	require.Equal(t, 0, g.NumberOfEdges())

	d, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.RandomSparse(4, 1))
	require.NoError(t, err)
	require.Equal(t, 12, d.NumberOfEdges())
}

func TestBuildGraph_LogsConstructorDeltas(t *testing.T) {
	var buf bytes.Buffer
	logger := log.NewWithOptions(&buf, log.Options{Level: log.DebugLevel})

	_, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithLogger(logger)}, builder.Complete(3), builder.Path(2))
	require.NoError(t, err)

	out := buf.String()
	require.Contains(t, out, "constructor applied")
	require.Contains(t, out, "nodes=3")
	require.Contains(t, out, "edges=1")
}
