// SPDX-License-Identifier: MIT

package lexmin_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilpsolver/pilp/lexmin"
	"github.com/pilpsolver/pilp/tableau"
)

func ints(xs ...int64) []*big.Int {
	out := make([]*big.Int, len(xs))
	for i, x := range xs {
		out[i] = big.NewInt(x)
	}
	return out
}

// bmap = { () -> (x) : x >= 3 }. x starts non-basic at 0, obviously
// violating x - 3 >= 0; restore_lexmin must pivot x up to exactly 3.
func TestRestoreLexminPivotsUpToFeasibility(t *testing.T) {
	tb := tableau.New(0, 1, 0, false, false)

	_, err := tb.AddRow(ints(-3, 1), false)
	require.NoError(t, err)

	require.NoError(t, lexmin.RestoreLexmin(tb))
	assert.False(t, tb.Empty)

	c0, d, _ := tb.VarValueParts(0)
	assert.Equal(t, int64(3), c0.Int64())
	assert.Equal(t, int64(1), d.Int64())
}

// bmap = { (n) -> (x) : 0 <= x, x <= n }, n declared non-negative. x
// starts at 0 which already satisfies both rows obviously, so
// restore_lexmin leaves it untouched — the n < 0 case is a context
// splitting concern (region), not a restore_lexmin one.
func TestRestoreLexminLeavesAlreadyFeasibleVertex(t *testing.T) {
	tb := tableau.New(1, 1, 0, false, false)
	tb.Var[0].IsNonNeg = true

	_, err := tb.AddRow(ints(0, 0, 1), false)
	require.NoError(t, err)
	_, err = tb.AddRow(ints(0, 1, -1), false)
	require.NoError(t, err)

	require.NoError(t, lexmin.RestoreLexmin(tb))
	assert.False(t, tb.Empty)

	c0, d, _ := tb.VarValueParts(1)
	assert.Equal(t, 0, c0.Sign())
	assert.Equal(t, int64(1), d.Int64())
}

func TestAddEqualityEliminatesMidVar(t *testing.T) {
	tb := tableau.New(0, 2, 0, false, false)
	// x + y = 5
	require.NoError(t, lexmin.AddEquality(tb, ints(-5, 1, 1)))
	assert.True(t, tb.Var[0].IsRow || tb.Var[1].IsRow)
	assert.Equal(t, 1, tb.NEq)
}

func TestAddEqualityPureParameterFallsBackToInequalityPair(t *testing.T) {
	tb := tableau.New(1, 1, 0, false, false)
	// 2n = 4, no mid-variable coefficient, parameter coefficient is 2 (not unit)
	require.NoError(t, lexmin.AddEquality(tb, ints(-4, 2, 0)))
	assert.Equal(t, 2, tb.NRow())
}
