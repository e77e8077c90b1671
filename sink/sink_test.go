// SPDX-License-Identifier: MIT

package sink_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilpsolver/pilp/bigrat"
	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/region"
	"github.com/pilpsolver/pilp/sink"
	"github.com/pilpsolver/pilp/tableau"
)

func ints(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

// lexminMain builds the 0<=x<=n scenario of spec §8's first example and
// leaves x non-basic, its lex-minimal value 0 regardless of n.
func lexminMain(t *testing.T) *tableau.Tableau {
	tb := tableau.New(1, 1, 0, false, false)
	_, err := tb.AddRow(ints(0, 0, 1), false) // x >= 0
	require.NoError(t, err)
	_, err = tb.AddRow(ints(0, 1, -1), false) // n - x >= 0
	require.NoError(t, err)
	return tb
}

// lexmaxMain builds the same scenario but pivots x basic against the
// n - x >= 0 row, making its value n: the lex-maximal vertex on
// max-mode's own tableau before sign inversion (§4.5's "x' = M - x").
func lexmaxMain(t *testing.T) *tableau.Tableau {
	tb := tableau.New(1, 1, 0, false, false)
	_, err := tb.AddRow(ints(0, 0, 1), false) // x >= 0
	require.NoError(t, err)
	r1, err := tb.AddRow(ints(0, 1, -1), false) // n - x >= 0
	require.NoError(t, err)
	require.NoError(t, tb.Pivot(r1, 1))
	return tb
}

func nonNegContext(t *testing.T) *region.Context {
	ctx, err := region.New(1, 4, 4, 0)
	require.NoError(t, err)
	require.NoError(t, region.AddInequality(ctx, ints(0, 1))) // n >= 0
	return ctx
}

func TestRelationAddLexminPiece(t *testing.T) {
	main := lexminMain(t)
	ctx := nonNegContext(t)

	r := sink.NewRelation(1, false)
	require.NoError(t, r.Add(ctx, main, false))
	require.Len(t, r.Pieces, 1)

	piece := r.Pieces[0]
	assert.Equal(t, 1, piece.NIn)
	assert.Equal(t, 1, piece.NOut)
	require.Len(t, piece.Eq, 1)
	// x's pinning equality must read back as x = 0: no parameter term.
	eq := piece.Eq[0]
	assert.True(t, eq[0].Sign() == 0)
	assert.True(t, eq[1].Sign() == 0)
}

func TestRelationAddLexmaxPieceInvertsSign(t *testing.T) {
	main := lexmaxMain(t)
	ctx := nonNegContext(t)

	r := sink.NewRelation(1, false)
	require.NoError(t, r.Add(ctx, main, true))
	require.Len(t, r.Pieces, 1)

	// The tableau's own variable has value n on this branch; max-mode
	// emission negates it, so the pinning equality
	// d*x - sign*(c0 + coef*n) = 0 reads x + n = 0: a zero constant and a
	// non-zero parameter coefficient of the same sign as x's.
	eq := findOutputEq(t, r.Pieces[0])
	assert.True(t, eq[0].Sign() == 0)
	assert.True(t, eq[1].Sign() != 0)
}

// findOutputEq returns the one equality row of bm that has a non-zero
// output coefficient (bm.NIn==1 so output columns start at index 2).
func findOutputEq(t *testing.T, bm *polyset.BasicMap) polyset.Vec {
	for _, row := range bm.Eq {
		if row[1+bm.NIn].Sign() != 0 {
			return row
		}
	}
	t.Fatal("no output-pinning equality found")
	return nil
}

func TestRelationAddTracksEmptyBranch(t *testing.T) {
	main := lexminMain(t)
	main.Empty = true
	ctx := nonNegContext(t)

	r := sink.NewRelation(1, true)
	require.NoError(t, r.Add(ctx, main, false))
	assert.Len(t, r.Pieces, 0)
	assert.Len(t, r.Empty, 1)
}

func TestRelationAddSkipsEmptyBranchWhenNotTracking(t *testing.T) {
	main := lexminMain(t)
	main.Empty = true
	ctx := nonNegContext(t)

	r := sink.NewRelation(1, false)
	require.NoError(t, r.Add(ctx, main, false))
	assert.Len(t, r.Pieces, 0)
	assert.Len(t, r.Empty, 0)
}

func TestRelationAddRejectsUnboundedBigM(t *testing.T) {
	tb := tableau.New(1, 1, 0, true, false) // x nonbasic, bigM on
	ctx := nonNegContext(t)

	r := sink.NewRelation(1, false)
	err := r.Add(ctx, tb, false)
	assert.ErrorIs(t, err, sink.ErrUnbounded)
}

func TestCallbackAddStreamsAffineMatrix(t *testing.T) {
	main := lexminMain(t)
	ctx := nonNegContext(t)

	var gotMatrix [][]bigrat.Val
	var gotDomain *polyset.BasicSet
	cb := sink.NewCallback(1, func(domain *polyset.BasicSet, matrix [][]bigrat.Val) error {
		gotDomain = domain
		gotMatrix = matrix
		return nil
	})
	require.NoError(t, cb.Add(ctx, main, false))

	require.NotNil(t, gotDomain)
	require.Len(t, gotMatrix, 2)
	assert.Equal(t, "1", gotMatrix[0][0].String())
	assert.Equal(t, "0", gotMatrix[0][1].String())
	// x = 0 regardless of n.
	assert.Equal(t, "0", gotMatrix[1][0].String())
	assert.Equal(t, "0", gotMatrix[1][1].String())
}

func TestCallbackAddSkipsEmptyBranch(t *testing.T) {
	main := lexminMain(t)
	main.Empty = true
	ctx := nonNegContext(t)

	called := false
	cb := sink.NewCallback(1, func(domain *polyset.BasicSet, matrix [][]bigrat.Val) error {
		called = true
		return nil
	})
	require.NoError(t, cb.Add(ctx, main, false))
	assert.False(t, called)
}
