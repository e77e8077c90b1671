// SPDX-License-Identifier: MIT

package bigrat_test

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pilpsolver/pilp/bigrat"
)

func big64(n int64) *big.Int { return big.NewInt(n) }

func TestFloorDiv(t *testing.T) {
	cases := []struct {
		a, b, q, r int64
	}{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{7, -2, -4, -1},
		{-7, -2, 3, -1},
		{0, 5, 0, 0},
	}
	for _, c := range cases {
		q, r, err := bigrat.FloorDiv(big64(c.a), big64(c.b))
		require.NoError(t, err)
		assert.Equal(t, c.q, q.Int64(), "quotient for %d/%d", c.a, c.b)
		assert.Equal(t, c.r, r.Int64(), "remainder for %d/%d", c.a, c.b)
	}

	_, _, err := bigrat.FloorDiv(big64(1), big64(0))
	assert.ErrorIs(t, err, bigrat.ErrDivisionByZero)
}

func TestCeilDiv(t *testing.T) {
	cases := []struct{ a, b, want int64 }{
		{7, 2, 4},
		{-7, 2, -3},
		{6, 2, 3},
		{-6, 2, -3},
	}
	for _, c := range cases {
		got, err := bigrat.CeilDiv(big64(c.a), big64(c.b))
		require.NoError(t, err)
		assert.Equal(t, c.want, got.Int64())
	}
}

func TestDivExact(t *testing.T) {
	got, err := bigrat.DivExact(big64(12), big64(3))
	require.NoError(t, err)
	assert.Equal(t, int64(4), got.Int64())

	_, err = bigrat.DivExact(big64(13), big64(3))
	assert.ErrorIs(t, err, bigrat.ErrNotExact)
}

func TestGCDAndExtGCD(t *testing.T) {
	assert.Equal(t, int64(6), bigrat.GCD(big64(24), big64(18)).Int64())
	assert.Equal(t, int64(0), bigrat.GCD(big64(0), big64(0)).Int64())

	g, x, y := bigrat.ExtGCD(big64(24), big64(18))
	assert.Equal(t, int64(6), g.Int64())
	lhs := new(big.Int).Add(
		new(big.Int).Mul(big64(24), x),
		new(big.Int).Mul(big64(18), y),
	)
	assert.Equal(t, g.Int64(), lhs.Int64())
}

func TestMul2ExpAndFits(t *testing.T) {
	assert.Equal(t, int64(40), bigrat.Mul2Exp(big64(5), 3).Int64())
	assert.True(t, bigrat.FitsInt64(big64(42)))

	huge := new(big.Int).Lsh(big.NewInt(1), 100)
	assert.False(t, bigrat.FitsInt64(huge))
}

func TestNormalizeFraction(t *testing.T) {
	n, d, err := bigrat.NormalizeFraction(big64(-6), big64(-4))
	require.NoError(t, err)
	assert.Equal(t, int64(3), n.Int64())
	assert.Equal(t, int64(2), d.Int64())

	n, d, err = bigrat.NormalizeFraction(big64(0), big64(5))
	require.NoError(t, err)
	assert.Equal(t, int64(0), n.Int64())
	assert.Equal(t, int64(1), d.Int64())

	_, _, err = bigrat.NormalizeFraction(big64(1), big64(0))
	assert.ErrorIs(t, err, bigrat.ErrDivisionByZero)
}
