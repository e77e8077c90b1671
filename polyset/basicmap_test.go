// SPDX-License-Identifier: MIT

package polyset_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilpsolver/pilp/polyset"
)

func row(xs ...int64) polyset.Vec { return vecOf(xs...) }

func TestBasicMapAppendRejectsWrongShape(t *testing.T) {
	bm, err := polyset.NewBasicMap(2, 1, 1, 1, 0)
	require.NoError(t, err)

	require.NoError(t, bm.AppendEq(row(0, 1, 0, 0)))
	assert.ErrorIs(t, bm.AppendEq(row(0, 1)), polyset.ErrDimensionMismatch)
	assert.ErrorIs(t, bm.AppendIneq(row(0, 1)), polyset.ErrDimensionMismatch)
}

func TestBasicMapAppendDivExtendsExistingRows(t *testing.T) {
	bm, err := polyset.NewBasicMap(1, 0, 1, 0, 0)
	require.NoError(t, err)
	require.NoError(t, bm.AppendEq(row(0, 1)))

	idx, err := bm.AppendDiv(polyset.Div{Denom: big.NewInt(2), Expr: row(0, 1)})
	require.NoError(t, err)
	assert.Equal(t, 0, idx)
	assert.Len(t, bm.Eq[0], 3)
	assert.Equal(t, int64(0), bm.Eq[0][2].Int64())
}

func TestBasicMapFindDivAndEqual(t *testing.T) {
	bm, err := polyset.NewBasicMap(1, 0, 0, 0, 0)
	require.NoError(t, err)
	d1 := polyset.Div{Denom: big.NewInt(3), Expr: row(1, 2)}
	_, err = bm.AppendDiv(d1)
	require.NoError(t, err)

	same := polyset.Div{Denom: big.NewInt(3), Expr: row(1, 2)}
	assert.Equal(t, 0, bm.FindDiv(same))

	diff := polyset.Div{Denom: big.NewInt(4), Expr: row(1, 2)}
	assert.Equal(t, -1, bm.FindDiv(diff))
}

func TestBasicMapSwapDivs(t *testing.T) {
	bm, err := polyset.NewBasicMap(1, 0, 1, 0, 0)
	require.NoError(t, err)
	require.NoError(t, bm.AppendEq(row(0, 1)))

	_, err = bm.AppendDiv(polyset.Div{Denom: big.NewInt(2), Expr: row(0, 1)})
	require.NoError(t, err)
	_, err = bm.AppendDiv(polyset.Div{Denom: big.NewInt(3), Expr: row(0, 1, 0)})
	require.NoError(t, err)

	bm.Eq[0][2] = big.NewInt(5) // coefficient on div 0
	bm.Eq[0][3] = big.NewInt(7) // coefficient on div 1

	require.NoError(t, bm.SwapDivs(0, 1))
	assert.Equal(t, int64(7), bm.Eq[0][2].Int64())
	assert.Equal(t, int64(5), bm.Eq[0][3].Int64())
	assert.Equal(t, int64(3), bm.Div[0].Denom.Int64())
	assert.Equal(t, int64(2), bm.Div[1].Denom.Int64())
}

func TestBasicMapExtendIn(t *testing.T) {
	bm, err := polyset.NewBasicMap(1, 1, 0, 0, 0)
	require.NoError(t, err)
	require.NoError(t, bm.AppendEq(row(0, 1, 2)))

	bm.ExtendIn(1)
	assert.Equal(t, 2, bm.NIn)
	assert.True(t, bm.Eq[0].Equal(row(0, 0, 1, 2)))
}

func TestBasicMapIsStructurallyEmpty(t *testing.T) {
	bm, err := polyset.NewBasicMap(1, 0, 0, 0, 0)
	require.NoError(t, err)
	assert.False(t, bm.IsStructurallyEmpty())

	require.NoError(t, bm.AppendEq(row(1, 0)))
	assert.True(t, bm.IsStructurallyEmpty())
}

func TestBasicMapGaussDetectsContradiction(t *testing.T) {
	bm, err := polyset.NewBasicMap(2, 0, 2, 0, 0)
	require.NoError(t, err)
	require.NoError(t, bm.AppendEq(row(0, 1, -1)))
	require.NoError(t, bm.AppendEq(row(-1, 1, -1)))

	empty, err := bm.Gauss()
	require.NoError(t, err)
	assert.True(t, empty)
}

func TestBasicMapGaussReducesConsistentSystem(t *testing.T) {
	bm, err := polyset.NewBasicMap(2, 0, 2, 0, 0)
	require.NoError(t, err)
	require.NoError(t, bm.AppendEq(row(0, 2, -1)))
	require.NoError(t, bm.AppendEq(row(0, 1, -1)))

	empty, err := bm.Finalize()
	require.NoError(t, err)
	assert.False(t, empty)
	assert.Len(t, bm.Eq, 2)
}

func TestBasicSetWrapping(t *testing.T) {
	bs, err := polyset.NewBasicSet(2, 1, 1, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, bs.NDim())

	require.NoError(t, bs.AppendIneq(row(0, 1, 0)))
	clone := bs.Copy()
	clone.Ineq[0][0] = big.NewInt(99)
	assert.Equal(t, int64(0), bs.Ineq[0][0].Int64())
}
