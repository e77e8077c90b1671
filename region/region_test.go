// SPDX-License-Identifier: MIT

package region_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilpsolver/pilp/region"
	"github.com/pilpsolver/pilp/tableau"
)

func ints(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func TestAddInequalityDropsStaleSample(t *testing.T) {
	ctx, err := region.New(1, 4, 4, 4)
	require.NoError(t, err)
	ctx.T.AddSample(ints(5)) // n = 5

	require.NoError(t, region.AddInequality(ctx, ints(10, -1))) // 10 - n >= 0
	assert.Len(t, ctx.T.LiveSamples(), 1)

	require.NoError(t, region.AddInequality(ctx, ints(-6, 1))) // n - 6 >= 0: violated by n=5
	assert.Len(t, ctx.T.LiveSamples(), 0)
}

func TestAddInequalityDetectsConstantContradiction(t *testing.T) {
	ctx, err := region.New(1, 4, 4, 4)
	require.NoError(t, err)
	require.NoError(t, region.AddInequality(ctx, ints(-1, 0))) // -1 >= 0
	assert.True(t, ctx.T.Empty)
}

func TestFeasibleRecordsLexminSample(t *testing.T) {
	ctx, err := region.New(1, 4, 4, 4)
	require.NoError(t, err)
	require.NoError(t, region.AddInequality(ctx, ints(0, 1)))   // n >= 0
	require.NoError(t, region.AddInequality(ctx, ints(10, -1))) // 10 - n >= 0

	sample, ok, err := region.Feasible(ctx)
	require.NoError(t, err)
	require.True(t, ok)
	require.Len(t, sample, 1)
	assert.Equal(t, int64(0), sample[0].Int64())
	assert.Len(t, ctx.T.LiveSamples(), 1)
}

func TestFeasibleReportsInfeasibleOnEmptyContext(t *testing.T) {
	ctx, err := region.New(1, 4, 4, 4)
	require.NoError(t, err)
	require.NoError(t, region.AddInequality(ctx, ints(-1, 0))) // -1 >= 0: empties ctx
	require.True(t, ctx.T.Empty)

	_, ok, err := region.Feasible(ctx)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestRowSignObviouslyPositive(t *testing.T) {
	main := tableau.New(1, 1, 0, false, false)
	main.Var[0].IsNonNeg = true // parameter n declared non-negative
	r, err := main.AddRow(ints(0, 1, 0), false)
	require.NoError(t, err)

	ctx, err := region.New(1, 4, 4, 4)
	require.NoError(t, err)

	sign, err := region.RowSign(main, ctx, r)
	require.NoError(t, err)
	assert.Equal(t, tableau.SignPos, sign)

	// Cached: a second call must return the same value without recomputing.
	sign2, err := region.RowSign(main, ctx, r)
	require.NoError(t, err)
	assert.Equal(t, sign, sign2)
}

func TestRowSignUsesSampleGuess(t *testing.T) {
	// Row n - 5 >= 0 over parameter n, pinned to exactly n = 10 by a
	// context equality (which eliminates n by pivoting it into its own
	// row, per lexmin.AddEquality's unit-coefficient path): the sample
	// guess sees a positive value at n = 10, and the negative-region
	// probe of step 5 substitutes n = 10 into 4 - n >= 0, which reduces
	// to the negative constant -6 >= 0 (its only other term is the killed
	// equality slack, which ObviousSign ignores) and is correctly
	// detected infeasible by ObviousSign, confirming pos.
	main := tableau.New(1, 0, 0, false, false)
	r, err := main.AddRow(ints(-5, 1), false) // n - 5 >= 0
	require.NoError(t, err)

	ctx, err := region.New(1, 4, 4, 4)
	require.NoError(t, err)
	require.NoError(t, region.AddEquality(ctx, ints(-10, 1))) // n - 10 == 0
	ctx.T.AddSample(ints(10))

	sign, err := region.RowSign(main, ctx, r)
	require.NoError(t, err)
	assert.Equal(t, tableau.SignPos, sign)
}

func TestBestSplitPicksEarliestOnTie(t *testing.T) {
	main := tableau.New(1, 0, 0, false, false)
	r0, err := main.AddRow(ints(0, 1), false) // n >= 0
	require.NoError(t, err)
	r1, err := main.AddRow(ints(0, 1), false) // identical row
	require.NoError(t, err)

	ctx, err := region.New(1, 4, 4, 4)
	require.NoError(t, err)

	best, err := region.BestSplit(main, ctx, []int{r0, r1})
	require.NoError(t, err)
	assert.Equal(t, r0, best)
}

func TestSplitAndContinueDivergeContext(t *testing.T) {
	main := tableau.New(1, 0, 0, false, false)
	r, err := main.AddRow(ints(0, 1), false) // n >= 0
	require.NoError(t, err)
	main.RowSign[r] = tableau.SignAny

	ctx, err := region.New(1, 4, 4, 4)
	require.NoError(t, err)

	posMain, posCtx, err := region.Split(main, ctx, r)
	require.NoError(t, err)
	assert.Equal(t, tableau.SignPos, posMain.RowSign[r])
	assert.Equal(t, 1, len(posCtx.BSet.Ineq))

	require.NoError(t, region.Continue(main, ctx, r))
	assert.Equal(t, tableau.SignNeg, main.RowSign[r])
	assert.Equal(t, 1, len(ctx.BSet.Ineq))
}
