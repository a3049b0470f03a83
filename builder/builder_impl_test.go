// File: builder_impl_test.go
// Package builder_test contains functional tests for all Constructor
// implementations, verifying node/edge counts and literal adjacency dumps.
package builder_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topograph/builder"
	"github.com/katalvlaran/topograph/core"
)

// TestBuilders_Counts runs table-driven count checks for each constructor.
// Counts are edge CALLS, so suppressed duplicates (wheel rim, circulant wrap) count.
func TestBuilders_Counts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		ctor  builder.Constructor
		wantV int
		wantE int
	}{
		{"Empty(5)", builder.Empty(5), 5, 0},
		{"Empty(0)", builder.Empty(0), 0, 0},
		{"Complete(0)", builder.Complete(0), 0, 0},
		{"Complete(1)", builder.Complete(1), 1, 0},
		{"Complete(2)", builder.Complete(2), 2, 1},
		{"Complete(5)", builder.Complete(5), 5, 10},
		{"Path(0)", builder.Path(0), 0, 0},
		{"Path(4)", builder.Path(4), 4, 3},
		{"Cycle(1)", builder.Cycle(1), 1, 1},
		{"Cycle(5)", builder.Cycle(5), 5, 5},
		{"Star(0)", builder.Star(0), 1, 0},
		{"Star(2)", builder.Star(2), 3, 2},
		{"Wheel(0)", builder.Wheel(0), 0, 0},
		{"Wheel(1)", builder.Wheel(1), 1, 0},
		{"Wheel(2)", builder.Wheel(2), 2, 1},
		{"Wheel(3)", builder.Wheel(3), 3, 5},
		{"Wheel(5)", builder.Wheel(5), 5, 9},
		{"Ladder(0)", builder.Ladder(0), 0, 0},
		{"Ladder(3)", builder.Ladder(3), 6, 7},
		{"CircularLadder(0)", builder.CircularLadder(0), 0, 0},
		{"CircularLadder(1)", builder.CircularLadder(1), 2, 3},
		{"CircularLadder(2)", builder.CircularLadder(2), 4, 6},
		{"CircularLadder(3)", builder.CircularLadder(3), 6, 9},
		{"Circulant(2,{1,2})", builder.Circulant(2, []int{1, 2}), 2, 4},
		{"Circulant(5,{-1})", builder.Circulant(5, []int{-1}), 5, 5},
		{"Circulant(0,{1})", builder.Circulant(0, []int{1}), 0, 0},
		{"BinomialTree(-1)", builder.BinomialTree(-1), 1, 0},
		{"BinomialTree(0)", builder.BinomialTree(0), 1, 0},
		{"BinomialTree(1)", builder.BinomialTree(1), 2, 1},
		{"BinomialTree(2)", builder.BinomialTree(2), 4, 3},
		{"BinomialTree(3)", builder.BinomialTree(3), 8, 7},
		{"BinomialTree(4)", builder.BinomialTree(4), 16, 15},
		{"BalancedTree(3,2)", builder.BalancedTree(3, 2), 13, 12},
		{"BalancedTree(2,0)", builder.BalancedTree(2, 0), 1, 0},
		{"BalancedTree(1,1)", builder.BalancedTree(1, 1), 2, 1},
		{"BalancedTree(2,2)", builder.BalancedTree(2, 2), 7, 6},
		{"BalancedTree(0,3)", builder.BalancedTree(0, 3), 1, 0},
		{"FullMaryTree(2,3)", builder.FullMaryTree(2, 3), 3, 2},
		{"FullMaryTree(0,3)", builder.FullMaryTree(0, 3), 3, 0},
		{"FullMaryTree(3,10)", builder.FullMaryTree(3, 10), 10, 9},
		{"Barbell(2,3)", builder.Barbell(2, 3), 7, 6},
		{"Barbell(3,0)", builder.Barbell(3, 0), 6, 7},
		{"Lollipop(3,1)", builder.Lollipop(3, 1), 4, 4},
		{"Lollipop(3,0)", builder.Lollipop(3, 0), 3, 3},
		{"CompleteMultipartite(1,2,3)", builder.CompleteMultipartite(1, 2, 3), 6, 11},
		{"CompleteMultipartite(0,2,0,2)", builder.CompleteMultipartite(0, 2, 0, 2), 4, 4},
		{"CompleteMultipartite()", builder.CompleteMultipartite(), 0, 0},
		{"Turan(3,2)", builder.Turan(3, 2), 3, 2},
		{"Turan(6,3)", builder.Turan(6, 3), 6, 12},
		{"Turan(5,5)", builder.Turan(5, 5), 5, 10},
		{"DGM(0)", builder.DorogovtsevGoltsevMendes(0), 2, 1},
		{"DGM(1)", builder.DorogovtsevGoltsevMendes(1), 3, 3},
		{"DGM(2)", builder.DorogovtsevGoltsevMendes(2), 6, 9},
		{"DGM(3)", builder.DorogovtsevGoltsevMendes(3), 15, 27},
		{"CompleteBipartite(2,3)", builder.CompleteBipartite(2, 3), 5, 6},
		{"CompleteBipartite(0,3)", builder.CompleteBipartite(0, 3), 3, 0},
		{"Grid(2,3)", builder.Grid(2, 3), 6, 7},
		{"Grid(1,1)", builder.Grid(1, 1), 1, 0},
		{"Grid(0,4)", builder.Grid(0, 4), 0, 0},
		{"RandomRegular(5,0)", builder.RandomRegular(5, 0), 5, 0},
		{"RandomRegular(0,0)", builder.RandomRegular(0, 0), 0, 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := MustBuild(t, tc.ctor)
			require.Equal(t, tc.wantV, g.NumberOfNodes(), "nodes")
			require.Equal(t, tc.wantE, g.NumberOfEdges(), "edges")
		})
	}
}

// TestBuilders_Dumps pins the exact emission order of composite constructors.
func TestBuilders_Dumps(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ctor builder.Constructor
		want string
	}{
		{
			name: "Barbell(2,2)",
			ctor: builder.Barbell(2, 2),
			want: "0 1 \n1 0 2 \n2 3 1 \n3 2 4 \n4 5 3 \n5 4 \n",
		},
		{
			name: "Barbell(2,3)",
			ctor: builder.Barbell(2, 3),
			want: "0 1 \n1 0 2 \n2 3 1 \n3 2 4 \n4 3 5 \n5 6 4 \n6 5 \n",
		},
		{
			name: "Barbell(2,0)",
			ctor: builder.Barbell(2, 0),
			want: "0 1 \n1 0 2 \n2 3 1 \n3 2 \n",
		},
		{
			name: "Lollipop(3,2)",
			ctor: builder.Lollipop(3, 2),
			want: "0 1 2 \n1 0 2 \n2 0 1 3 \n3 4 2 \n4 3 \n",
		},
		{
			name: "Wheel(4)",
			ctor: builder.Wheel(4),
			want: "0 1 2 3 \n1 0 2 3 \n2 0 1 3 \n3 0 2 1 \n",
		},
		{
			name: "Ladder(2)",
			ctor: builder.Ladder(2),
			want: "0 1 2 \n1 0 3 \n2 3 0 \n3 2 1 \n",
		},
		{
			name: "CircularLadder(1)",
			ctor: builder.CircularLadder(1),
			want: "0 1 0 0 \n1 0 1 1 \n",
		},
		{
			name: "Circulant(2,{1,2})",
			ctor: builder.Circulant(2, []int{1, 2}),
			want: "0 1 0 0 \n1 0 1 1 \n",
		},
		{
			name: "Cycle(1)",
			ctor: builder.Cycle(1),
			want: "0 0 0 \n",
		},
		{
			name: "BinomialTree(2)",
			ctor: builder.BinomialTree(2),
			want: "0 1 2 \n1 0 \n2 3 0 \n3 2 \n",
		},
		{
			name: "FullMaryTree(2,5)",
			ctor: builder.FullMaryTree(2, 5),
			want: "0 1 2 \n1 0 3 4 \n2 0 \n3 1 \n4 1 \n",
		},
		{
			name: "CompleteMultipartite(1,2)",
			ctor: builder.CompleteMultipartite(1, 2),
			want: "0 1 2 \n1 0 \n2 0 \n",
		},
		{
			name: "CompleteBipartite(1,2)",
			ctor: builder.CompleteBipartite(1, 2),
			want: "0 1 2 \n1 0 \n2 0 \n",
		},
		{
			name: "Grid(2,2)",
			ctor: builder.Grid(2, 2),
			want: "0 1 2 \n1 0 3 \n2 0 3 \n3 1 2 \n",
		},
		{
			name: "DGM(1)",
			ctor: builder.DorogovtsevGoltsevMendes(1),
			want: "0 1 2 \n1 0 2 \n2 0 1 \n",
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, MustBuild(t, tc.ctor).AdjacencyList(" "))
		})
	}
}

func TestTuran_RegularDegree(t *testing.T) {
	g := MustBuild(t, builder.Turan(6, 3))
	require.Equal(t, []int{4, 4, 4, 4, 4, 4}, degrees(t, g))

	// Uneven split: sizes {1,2,2} → block of one sees 4, the others see 3.
	g = MustBuild(t, builder.Turan(5, 3))
	require.Equal(t, []int{4, 3, 3, 3, 3}, degrees(t, g))
}

func TestComplete_Directed(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Complete(3))
	require.NoError(t, err)
	require.Equal(t, 6, g.NumberOfEdges())
	require.Equal(t, "0 1 2 \n1 0 2 \n2 0 1 \n", g.AdjacencyList(" "))
}

func TestBinomialTree_IsTree(t *testing.T) {
	for order := 0; order <= 6; order++ {
		g := MustBuild(t, builder.BinomialTree(order))
		require.Equal(t, g.NumberOfNodes()-1, g.NumberOfEdges(), "order %d", order)
		require.Equal(t, 1<<order, g.NumberOfNodes())
		d, err := g.Degree("0")
		require.NoError(t, err)
		require.Equal(t, order, d, "root degree equals order")
	}
}

func TestGrid_DirectedMirrorsArcs(t *testing.T) {
	g, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)}, nil, builder.Grid(2, 2))
	require.NoError(t, err)
	require.Equal(t, 8, g.NumberOfEdges())
	require.Equal(t, "0 1 2 \n1 0 3 \n2 0 3 \n3 1 2 \n", g.AdjacencyList(" "))
}

func TestRandomRegular_SeededIsRegularAndSimple(t *testing.T) {
	build := func(seed int64) *core.Graph {
		g, err := builder.BuildGraph(nil, []builder.BuilderOption{builder.WithSeed(seed)}, builder.RandomRegular(10, 3))
		require.NoError(t, err)
		return g
	}

	g := build(4)
	require.Equal(t, 10, g.NumberOfNodes())
	require.Equal(t, 15, g.NumberOfEdges())
	for _, d := range degrees(t, g) {
		require.Equal(t, 3, d)
	}
	for _, label := range g.Labels() {
		require.False(t, g.HasEdge(label, label), "self-loop at %s", label)
	}
	require.Equal(t, g.AdjacencyList(" "), build(4).AdjacencyList(" "))
}

func TestRandomRegular_ModeAndRandErrors(t *testing.T) {
	_, err := builder.BuildGraph([]core.GraphOption{core.WithDirected(true)},
		[]builder.BuilderOption{builder.WithSeed(1)}, builder.RandomRegular(4, 2))
	require.ErrorIs(t, err, builder.ErrUnsupportedMode)

	_, err = builder.BuildGraph(nil, nil, builder.RandomRegular(4, 2))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}
