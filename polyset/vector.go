// SPDX-License-Identifier: MIT

package polyset

import "math/big"

// Vec is a row of arbitrary-precision integer coefficients: for a
// constraint row it is laid out as [const, coef_1, ..., coef_n]; for a
// division's defining expression it is the same shape, scaled by the
// division's denominator.
//
// Vec never carries its own denominator — that convention belongs to
// tableau.Row (§3's "[d, c0, ...]" layout). polyset.Vec is the plain
// integer-vector contract of §6.2.
type Vec []*big.Int

// NewVec returns a Vec of length n, every entry initialized to zero.
func NewVec(n int) Vec {
	v := make(Vec, n)
	for i := range v {
		v[i] = big.NewInt(0)
	}
	return v
}

// Clone returns a deep copy of v.
func (v Vec) Clone() Vec {
	out := make(Vec, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Set(x)
	}
	return out
}

// Extend returns a copy of v padded with n zero entries at the end.
func (v Vec) Extend(n int) Vec {
	out := make(Vec, len(v)+n)
	copy(out, v)
	for i := len(v); i < len(out); i++ {
		out[i] = big.NewInt(0)
	}
	return out
}

// Drop returns a copy of v with the entry at index i removed.
func (v Vec) Drop(i int) (Vec, error) {
	if i < 0 || i >= len(v) {
		return nil, ErrOutOfRange
	}
	out := make(Vec, 0, len(v)-1)
	out = append(out, v[:i]...)
	out = append(out, v[i+1:]...)
	return out, nil
}

// InnerProduct returns sum(v[i]*w[i]). v and w must have equal length.
func (v Vec) InnerProduct(w Vec) (*big.Int, error) {
	if len(v) != len(w) {
		return nil, ErrDimensionMismatch
	}
	sum := big.NewInt(0)
	for i := range v {
		sum.Add(sum, new(big.Int).Mul(v[i], w[i]))
	}
	return sum, nil
}

// FirstNonZero returns the index of the first non-zero entry in v, or -1
// if v is the zero vector.
func (v Vec) FirstNonZero() int {
	for i, x := range v {
		if x.Sign() != 0 {
			return i
		}
	}
	return -1
}

// GCD returns the gcd of every entry's absolute value; the zero vector has
// gcd 0.
func (v Vec) GCD() *big.Int {
	g := big.NewInt(0)
	for _, x := range v {
		g = new(big.Int).GCD(nil, nil, g, new(big.Int).Abs(x))
	}
	return g
}

// Normalize divides every entry of v by gcd(v), in place, leaving v
// unchanged if it is the zero vector or already primitive.
func (v Vec) Normalize() {
	g := v.GCD()
	if g.Sign() == 0 || g.Cmp(big.NewInt(1)) == 0 {
		return
	}
	for i, x := range v {
		v[i] = new(big.Int).Quo(x, g)
	}
}

// IsZero reports whether every entry of v is zero.
func (v Vec) IsZero() bool { return v.FirstNonZero() == -1 }

// Equal reports whether v and w are entry-wise equal.
func (v Vec) Equal(w Vec) bool {
	if len(v) != len(w) {
		return false
	}
	for i := range v {
		if v[i].Cmp(w[i]) != 0 {
			return false
		}
	}
	return true
}

// AddScaled returns v + k*w (v, w same length).
func (v Vec) AddScaled(k *big.Int, w Vec) (Vec, error) {
	if len(v) != len(w) {
		return nil, ErrDimensionMismatch
	}
	out := make(Vec, len(v))
	for i := range v {
		out[i] = new(big.Int).Add(v[i], new(big.Int).Mul(k, w[i]))
	}
	return out, nil
}

// Scale returns k*v.
func (v Vec) Scale(k *big.Int) Vec {
	out := make(Vec, len(v))
	for i := range v {
		out[i] = new(big.Int).Mul(k, v[i])
	}
	return out
}

// SwapRows exchanges rows i and j of rows in place.
func SwapRows(rows []Vec, i, j int) error {
	if i < 0 || i >= len(rows) || j < 0 || j >= len(rows) {
		return ErrOutOfRange
	}
	rows[i], rows[j] = rows[j], rows[i]
	return nil
}
