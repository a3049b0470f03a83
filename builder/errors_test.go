// SPDX-License-Identifier: MIT

package builder_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topograph/builder"
	"github.com/katalvlaran/topograph/core"
)

// TestValidation_ParameterErrors checks class, parameter name and value for
// every validation branch, and that the store is left untouched.
func TestValidation_ParameterErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		ctor   builder.Constructor
		kind   error
		param  string
		value  int
		method string
	}{
		{"Empty(-1)", builder.Empty(-1), builder.ErrNegativeSize, "n", -1, builder.MethodEmpty},
		{"Complete(-1)", builder.Complete(-1), builder.ErrNegativeSize, "n", -1, builder.MethodComplete},
		{"Path(-2)", builder.Path(-2), builder.ErrNegativeSize, "n", -2, builder.MethodPath},
		{"Cycle(-1)", builder.Cycle(-1), builder.ErrNegativeSize, "n", -1, builder.MethodCycle},
		{"Star(-1)", builder.Star(-1), builder.ErrNegativeSize, "k", -1, builder.MethodStar},
		{"Wheel(-1)", builder.Wheel(-1), builder.ErrNegativeSize, "n", -1, builder.MethodWheel},
		{"Ladder(-1)", builder.Ladder(-1), builder.ErrNegativeSize, "n", -1, builder.MethodLadder},
		{"CircularLadder(-1)", builder.CircularLadder(-1), builder.ErrNegativeSize, "n", -1, builder.MethodCircularLadder},
		{"Circulant(-1,[])", builder.Circulant(-1, nil), builder.ErrNegativeSize, "n", -1, builder.MethodCirculant},
		{"FullMaryTree(1,-1)", builder.FullMaryTree(1, -1), builder.ErrNegativeSize, "n", -1, builder.MethodFullMaryTree},
		{"FullMaryTree(-1,3)", builder.FullMaryTree(-1, 3), builder.ErrNegativeSize, "m", -1, builder.MethodFullMaryTree},
		{"BalancedTree(-1,2)", builder.BalancedTree(-1, 2), builder.ErrNegativeSize, "r", -1, builder.MethodBalancedTree},
		{"BalancedTree(2,-1)", builder.BalancedTree(2, -1), builder.ErrNegativeSize, "h", -1, builder.MethodBalancedTree},
		{"Barbell(0,1)", builder.Barbell(0, 1), builder.ErrConstraint, "m1", 0, builder.MethodBarbell},
		{"Barbell(2,-1)", builder.Barbell(2, -1), builder.ErrNegativeSize, "m2", -1, builder.MethodBarbell},
		{"Lollipop(1,1)", builder.Lollipop(1, 1), builder.ErrConstraint, "m", 1, builder.MethodLollipop},
		{"Lollipop(3,-1)", builder.Lollipop(3, -1), builder.ErrNegativeSize, "n", -1, builder.MethodLollipop},
		{"CompleteMultipartite(1,-2,3)", builder.CompleteMultipartite(1, -2, 3), builder.ErrNegativeSize, "sizes[1]", -2, builder.MethodCompleteMultipartite},
		{"Turan(0,1)", builder.Turan(0, 1), builder.ErrConstraint, "r", 1, builder.MethodTuran},
		{"Turan(1,0)", builder.Turan(1, 0), builder.ErrConstraint, "r", 0, builder.MethodTuran},
		{"Turan(3,4)", builder.Turan(3, 4), builder.ErrConstraint, "r", 4, builder.MethodTuran},
		{"Turan(-1,1)", builder.Turan(-1, 1), builder.ErrNegativeSize, "n", -1, builder.MethodTuran},
		{"DGM(-1)", builder.DorogovtsevGoltsevMendes(-1), builder.ErrNegativeSize, "gen", -1, builder.MethodDorogovtsevGoltsevMendes},
		{"DGM(40)", builder.DorogovtsevGoltsevMendes(40), builder.ErrConstraint, "gen", 40, builder.MethodDorogovtsevGoltsevMendes},
		{"BinomialTree(31)", builder.BinomialTree(31), builder.ErrConstraint, "order", 31, builder.MethodBinomialTree},
		{"BinomialTree(64)", builder.BinomialTree(64), builder.ErrConstraint, "order", 64, builder.MethodBinomialTree},
		{"BalancedTree(10,30)", builder.BalancedTree(10, 30), builder.ErrConstraint, "h", 30, builder.MethodBalancedTree},
		{"BalancedTree(2,62)", builder.BalancedTree(2, 62), builder.ErrConstraint, "h", 62, builder.MethodBalancedTree},
		{"RandomSparse(-1,0.5)", builder.RandomSparse(-1, 0.5), builder.ErrNegativeSize, "n", -1, builder.MethodRandomSparse},
		{"CompleteBipartite(-1,2)", builder.CompleteBipartite(-1, 2), builder.ErrNegativeSize, "n1", -1, builder.MethodCompleteBipartite},
		{"CompleteBipartite(2,-1)", builder.CompleteBipartite(2, -1), builder.ErrNegativeSize, "n2", -1, builder.MethodCompleteBipartite},
		{"Grid(-1,2)", builder.Grid(-1, 2), builder.ErrNegativeSize, "rows", -1, builder.MethodGrid},
		{"Grid(2,-3)", builder.Grid(2, -3), builder.ErrNegativeSize, "cols", -3, builder.MethodGrid},
		{"RandomRegular(-1,0)", builder.RandomRegular(-1, 0), builder.ErrNegativeSize, "n", -1, builder.MethodRandomRegular},
		{"RandomRegular(4,4)", builder.RandomRegular(4, 4), builder.ErrConstraint, "d", 4, builder.MethodRandomRegular},
		{"RandomRegular(3,1)", builder.RandomRegular(3, 1), builder.ErrConstraint, "d", 1, builder.MethodRandomRegular},
		{"RandomRegular(0,1)", builder.RandomRegular(0, 1), builder.ErrConstraint, "d", 1, builder.MethodRandomRegular},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			// Pre-populate so "unchanged" is observable on a non-empty store.
			g := MustBuild(t, builder.Path(3))
			before := g.AdjacencyList(" ")

			err := builder.Apply(g, nil, tc.ctor)
			require.Error(t, err)
			require.ErrorIs(t, err, builder.ErrInvalidParameter)
			require.ErrorIs(t, err, tc.kind)

			var perr *builder.InvalidParameterError
			require.True(t, errors.As(err, &perr))
			require.Equal(t, tc.method, perr.Method)
			require.Equal(t, tc.param, perr.Param)
			require.Equal(t, tc.value, perr.Value)

			require.Equal(t, 3, g.NumberOfNodes())
			require.Equal(t, 2, g.NumberOfEdges())
			require.Equal(t, before, g.AdjacencyList(" "))
		})
	}
}

// TestValidation_KindsAreExclusive ensures a negative size never reads as a
// relational violation and vice versa.
func TestValidation_KindsAreExclusive(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Complete(-1))
	require.ErrorIs(t, err, builder.ErrNegativeSize)
	require.NotErrorIs(t, err, builder.ErrConstraint)

	_, err = builder.BuildGraph(nil, nil, builder.Lollipop(1, 1))
	require.ErrorIs(t, err, builder.ErrConstraint)
	require.NotErrorIs(t, err, builder.ErrNegativeSize)
	require.Contains(t, err.Error(), "Lollipop: m=1 must be ≥ 2")
}

func TestRandomSparse_Errors(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.RandomSparse(4, 1.5))
	require.ErrorIs(t, err, builder.ErrInvalidProbability)

	_, err = builder.BuildGraph(nil, nil, builder.RandomSparse(4, 0.5))
	require.ErrorIs(t, err, builder.ErrNeedRandSource)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Empty(1), nil)
	require.ErrorIs(t, err, builder.ErrConstructFailed)

	require.ErrorIs(t, builder.Apply(nil, nil, builder.Empty(1)), builder.ErrConstructFailed)
}

// TestCompose_LabelCollision shows a core failure surfacing through a constructor.
func TestCompose_LabelCollision(t *testing.T) {
	g := core.NewGraph()
	_, err := g.AddNode("2")
	require.NoError(t, err)

	// Complete(3) on a 1-node store wants labels 1,2,3; "2" is taken.
	err = builder.Apply(g, nil, builder.Complete(3))
	require.ErrorIs(t, err, core.ErrDuplicateLabel)
	require.Contains(t, err.Error(), builder.MethodComplete)
}
