// SPDX-License-Identifier: MIT

package bigrat_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilpsolver/pilp/bigrat"
)

func TestValNormalization(t *testing.T) {
	v := bigrat.FromFrac(big.NewInt(-6), big.NewInt(-4))
	assert.Equal(t, "3/2", v.String())

	v = bigrat.FromFrac(big.NewInt(4), big.NewInt(2))
	assert.Equal(t, "2", v.String())
}

func TestValSpecials(t *testing.T) {
	assert.True(t, bigrat.NaN().IsNaN())
	assert.True(t, bigrat.PosInf().IsPosInf())
	assert.True(t, bigrat.NegInf().IsNegInf())

	assert.Equal(t, "NaN", bigrat.FromFrac(big.NewInt(0), big.NewInt(0)).String())
	assert.Equal(t, "Inf", bigrat.FromFrac(big.NewInt(5), big.NewInt(0)).String())
	assert.Equal(t, "-Inf", bigrat.FromFrac(big.NewInt(-5), big.NewInt(0)).String())
}

func TestValArithmetic(t *testing.T) {
	half := bigrat.FromFrac(big.NewInt(1), big.NewInt(2))
	third := bigrat.FromFrac(big.NewInt(1), big.NewInt(3))

	assert.Equal(t, "5/6", half.Add(third).String())
	assert.Equal(t, "1/6", half.Sub(third).String())
	assert.Equal(t, "1/6", half.Mul(third).String())
	assert.Equal(t, "3/2", half.Div(third).String())

	assert.True(t, bigrat.PosInf().Add(bigrat.FromInt64(5)).IsPosInf())
	assert.True(t, bigrat.PosInf().Add(bigrat.NegInf()).IsNaN())
	assert.True(t, bigrat.PosInf().Mul(bigrat.Zero()).IsNaN())
	assert.True(t, bigrat.FromInt64(1).Div(bigrat.Zero()).IsPosInf())
	assert.True(t, bigrat.FromInt64(-1).Div(bigrat.Zero()).IsNegInf())
}

func TestValCmpOrdering(t *testing.T) {
	a := bigrat.FromInt64(3)
	b := bigrat.FromInt64(5)

	c, err := a.Cmp(b)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = bigrat.NegInf().Cmp(a)
	require.NoError(t, err)
	assert.Equal(t, -1, c)

	c, err = bigrat.PosInf().Cmp(b)
	require.NoError(t, err)
	assert.Equal(t, 1, c)

	_, err = bigrat.NaN().Cmp(a)
	assert.ErrorIs(t, err, bigrat.ErrNaN)

	assert.Equal(t, a, a.Min(b))
	assert.Equal(t, b, a.Max(b))
}

func TestValFloorCeil(t *testing.T) {
	v := bigrat.FromFrac(big.NewInt(7), big.NewInt(2))
	assert.Equal(t, "3", v.Floor().String())
	assert.Equal(t, "4", v.Ceil().String())

	neg := bigrat.FromFrac(big.NewInt(-7), big.NewInt(2))
	assert.Equal(t, "-4", neg.Floor().String())
	assert.Equal(t, "-3", neg.Ceil().String())
}
