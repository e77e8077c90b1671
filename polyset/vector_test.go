// SPDX-License-Identifier: MIT

package polyset_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilpsolver/pilp/polyset"
)

func vecOf(xs ...int64) polyset.Vec {
	v := make(polyset.Vec, len(xs))
	for i, x := range xs {
		v[i] = big.NewInt(x)
	}
	return v
}

func TestVecBasics(t *testing.T) {
	v := vecOf(0, 4, 6, 8)
	assert.Equal(t, 1, v.FirstNonZero())
	assert.False(t, v.IsZero())
	assert.True(t, vecOf(0, 0).IsZero())

	g := v.GCD()
	assert.Equal(t, int64(2), g.Int64())

	v.Normalize()
	assert.True(t, v.Equal(vecOf(0, 2, 3, 4)))
}

func TestVecInnerProduct(t *testing.T) {
	a := vecOf(1, 2, 3)
	b := vecOf(4, 5, 6)
	ip, err := a.InnerProduct(b)
	require.NoError(t, err)
	assert.Equal(t, int64(32), ip.Int64())

	_, err = a.InnerProduct(vecOf(1))
	assert.ErrorIs(t, err, polyset.ErrDimensionMismatch)
}

func TestVecExtendDrop(t *testing.T) {
	v := vecOf(1, 2)
	ext := v.Extend(2)
	assert.True(t, ext.Equal(vecOf(1, 2, 0, 0)))

	dropped, err := ext.Drop(2)
	require.NoError(t, err)
	assert.True(t, dropped.Equal(vecOf(1, 2, 0)))

	_, err = v.Drop(5)
	assert.ErrorIs(t, err, polyset.ErrOutOfRange)
}

func TestVecAddScaledAndScale(t *testing.T) {
	a := vecOf(1, 1, 1)
	b := vecOf(1, 2, 3)
	out, err := a.AddScaled(big.NewInt(2), b)
	require.NoError(t, err)
	assert.True(t, out.Equal(vecOf(3, 5, 7)))

	scaled := b.Scale(big.NewInt(-1))
	assert.True(t, scaled.Equal(vecOf(-1, -2, -3)))
}

func TestSwapRows(t *testing.T) {
	rows := []polyset.Vec{vecOf(1), vecOf(2), vecOf(3)}
	require.NoError(t, polyset.SwapRows(rows, 0, 2))
	assert.Equal(t, int64(3), rows[0][0].Int64())
	assert.Equal(t, int64(1), rows[2][0].Int64())

	assert.ErrorIs(t, polyset.SwapRows(rows, 0, 9), polyset.ErrOutOfRange)
}
