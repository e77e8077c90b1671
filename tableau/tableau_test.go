// SPDX-License-Identifier: MIT

package tableau_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilpsolver/pilp/tableau"
)

func ints(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

func TestNewNonBigMLayout(t *testing.T) {
	tb := tableau.New(1, 1, 0, false, false)
	assert.Equal(t, 2, tb.NCol)
	assert.Equal(t, 0, tb.NRow())
	c0, d, _ := tb.VarValueParts(1)
	assert.Equal(t, int64(0), c0.Int64())
	assert.Equal(t, int64(1), d.Int64())
}

func TestNewBigMKeepsMidVarsNonBasic(t *testing.T) {
	tb := tableau.New(1, 1, 0, true, false)
	assert.Equal(t, 2, tb.NCol)
	assert.Equal(t, 0, tb.NRow())
	c0, d, m := tb.VarValueParts(1)
	assert.Equal(t, int64(0), c0.Int64())
	assert.Equal(t, int64(1), d.Int64())
	assert.Equal(t, int64(0), m.Int64())
}

func TestAddRowAndPivot(t *testing.T) {
	tb := tableau.New(1, 1, 0, false, false)

	// x >= 0
	r0, err := tb.AddRow(ints(0, 0, 1), false)
	require.NoError(t, err)
	// n - x >= 0
	r1, err := tb.AddRow(ints(0, 1, -1), false)
	require.NoError(t, err)

	pc := tb.ParametricConstant(r1)
	require.Len(t, pc, 2)
	assert.Equal(t, int64(1), pc[1].Int64())

	require.NoError(t, tb.Pivot(r0, 1))
	c0, d, _ := tb.VarValueParts(1) // x is now basic
	assert.Equal(t, int64(0), c0.Int64())
	assert.Equal(t, int64(1), d.Int64())

	_, _, _ = r1, c0, d
}

func TestPivotRollback(t *testing.T) {
	tb := tableau.New(1, 1, 0, false, false)
	r0, err := tb.AddRow(ints(0, 0, 1), true)
	require.NoError(t, err)
	mark := tb.Mark()

	require.NoError(t, tb.Pivot(r0, 1))
	assert.True(t, tb.Var[1].IsRow)

	require.NoError(t, tb.Rollback(mark))
	assert.False(t, tb.Var[1].IsRow)
}

func TestKillColFreezesAndRollsBack(t *testing.T) {
	tb := tableau.New(1, 0, 0, false, false)
	mark := tb.Mark()
	require.NoError(t, tb.KillCol(0))
	assert.True(t, tb.Var[0].Frozen)
	assert.Equal(t, 1, tb.NDead)

	require.NoError(t, tb.Rollback(mark))
	assert.False(t, tb.Var[0].Frozen)
	assert.Equal(t, 0, tb.NDead)
}

func TestObviousSign(t *testing.T) {
	tb := tableau.New(1, 1, 0, false, false)
	tb.Var[0].IsNonNeg = true // n declared non-negative for this test
	r, err := tb.AddRow(ints(2, 1, 0), false)
	require.NoError(t, err)
	assert.Equal(t, tableau.SignPos, tb.ObviousSign(r))

	r2, err := tb.AddRow(ints(-2, -1, 0), false)
	require.NoError(t, err)
	assert.Equal(t, tableau.SignNeg, tb.ObviousSign(r2))
}

func TestCloneIsIndependent(t *testing.T) {
	tb := tableau.New(1, 1, 0, false, false)
	_, err := tb.AddRow(ints(0, 0, 1), true)
	require.NoError(t, err)

	clone := tb.Clone()
	_, err = clone.AddRow(ints(0, 1, -1), false)
	require.NoError(t, err)

	assert.Equal(t, 1, tb.NRow())
	assert.Equal(t, 2, clone.NRow())
}
