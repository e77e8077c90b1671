// SPDX-License-Identifier: MIT

package bigrat

import (
	"fmt"
	"math"
	"math/big"
)

// Val is the external rational/value type used for I/O (§3). It is never
// used inside the solve; the tableau itself works with plain row
// denominators and numerators. Val additionally encodes NaN, +Inf and -Inf:
//
//	NaN  = 0/0
//	+Inf = (positive)/0
//	-Inf = (negative)/0
//
// Normalized finite values satisfy gcd(|Num|, Den) = 1 and Den > 0.
type Val struct {
	Num *big.Int // numerator; sign carries the value's sign for +/-Inf
	Den *big.Int // denominator; zero marks NaN/+Inf/-Inf
}

// NaN returns the canonical not-a-number value 0/0.
func NaN() Val { return Val{Num: big.NewInt(0), Den: big.NewInt(0)} }

// PosInf returns +infinity, encoded as 1/0.
func PosInf() Val { return Val{Num: big.NewInt(1), Den: big.NewInt(0)} }

// NegInf returns -infinity, encoded as -1/0.
func NegInf() Val { return Val{Num: big.NewInt(-1), Den: big.NewInt(0)} }

// Zero returns the rational 0.
func Zero() Val { return Val{Num: big.NewInt(0), Den: big.NewInt(1)} }

// FromInt64 returns the rational n/1.
func FromInt64(n int64) Val { return Val{Num: big.NewInt(n), Den: big.NewInt(1)} }

// FromFrac returns the normalized rational n/d. d == 0 is accepted and
// produces +Inf, -Inf or NaN per the sign of n, matching isl_val's
// constructor convention.
func FromFrac(n, d *big.Int) Val {
	if d.Sign() == 0 {
		switch n.Sign() {
		case 0:
			return NaN()
		case 1:
			return PosInf()
		default:
			return NegInf()
		}
	}
	nn, dd, _ := NormalizeFraction(n, d)
	return Val{Num: nn, Den: dd}
}

// IsNaN reports whether v is the canonical not-a-number value.
func (v Val) IsNaN() bool { return v.Den.Sign() == 0 && v.Num.Sign() == 0 }

// IsInf reports whether v is +Inf or -Inf.
func (v Val) IsInf() bool { return v.Den.Sign() == 0 && v.Num.Sign() != 0 }

// IsPosInf reports whether v is exactly +Inf.
func (v Val) IsPosInf() bool { return v.Den.Sign() == 0 && v.Num.Sign() > 0 }

// IsNegInf reports whether v is exactly -Inf.
func (v Val) IsNegInf() bool { return v.Den.Sign() == 0 && v.Num.Sign() < 0 }

// Sign returns -1, 0 or +1 for a finite value, and the sign of an infinity.
// Sign on NaN returns 0, mirroring isl_val's treatment of NaN as incomparable.
func (v Val) Sign() int {
	if v.IsNaN() {
		return 0
	}
	return v.Num.Sign()
}

// Add returns v + w, propagating NaN and the usual infinite-arithmetic
// rules (Inf + Inf of opposing sign is NaN; Inf + finite is the same Inf).
func (v Val) Add(w Val) Val {
	if v.IsNaN() || w.IsNaN() {
		return NaN()
	}
	if v.IsInf() && w.IsInf() {
		if v.Sign() != w.Sign() {
			return NaN()
		}
		return v
	}
	if v.IsInf() {
		return v
	}
	if w.IsInf() {
		return w
	}
	n := new(big.Int).Add(
		new(big.Int).Mul(v.Num, w.Den),
		new(big.Int).Mul(w.Num, v.Den),
	)
	d := new(big.Int).Mul(v.Den, w.Den)
	return FromFrac(n, d)
}

// Neg returns -v.
func (v Val) Neg() Val {
	if v.IsNaN() {
		return v
	}
	return Val{Num: new(big.Int).Neg(v.Num), Den: new(big.Int).Set(v.Den)}
}

// Sub returns v - w.
func (v Val) Sub(w Val) Val { return v.Add(w.Neg()) }

// Mul returns v * w. 0 * Inf is NaN, matching isl_val's convention.
func (v Val) Mul(w Val) Val {
	if v.IsNaN() || w.IsNaN() {
		return NaN()
	}
	if v.IsInf() || w.IsInf() {
		if (v.IsInf() && w.Sign() == 0) || (w.IsInf() && v.Sign() == 0) {
			return NaN()
		}
		if v.Sign()*w.Sign() < 0 {
			return NegInf()
		}
		return PosInf()
	}
	n := new(big.Int).Mul(v.Num, w.Num)
	d := new(big.Int).Mul(v.Den, w.Den)
	return FromFrac(n, d)
}

// Div returns v / w. Division by a finite zero yields a signed infinity
// (or NaN if v is also zero); Inf/Inf is NaN.
func (v Val) Div(w Val) Val {
	if v.IsNaN() || w.IsNaN() {
		return NaN()
	}
	if w.IsInf() {
		if v.IsInf() {
			return NaN()
		}
		return Zero()
	}
	if w.Sign() == 0 {
		if v.Sign() == 0 {
			return NaN()
		}
		if v.Sign() > 0 {
			return PosInf()
		}
		return NegInf()
	}
	if v.IsInf() {
		if w.Sign() < 0 {
			return v.Neg()
		}
		return v
	}
	n := new(big.Int).Mul(v.Num, w.Den)
	d := new(big.Int).Mul(v.Den, w.Num)
	return FromFrac(n, d)
}

// Cmp compares two finite values, returning -1, 0 or +1. Ordering on a NaN
// operand is undefined and reported via ErrNaN.
func (v Val) Cmp(w Val) (int, error) {
	if v.IsNaN() || w.IsNaN() {
		return 0, ErrNaN
	}
	if v.IsInf() || w.IsInf() {
		vs, ws := infOrd(v), infOrd(w)
		switch {
		case vs < ws:
			return -1, nil
		case vs > ws:
			return 1, nil
		default:
			return 0, nil
		}
	}
	lhs := new(big.Int).Mul(v.Num, w.Den)
	rhs := new(big.Int).Mul(w.Num, v.Den)
	return lhs.Cmp(rhs), nil
}

// infOrd maps a Val onto {-2 (-Inf), -1..1 (finite sign proxy), 2 (+Inf)}
// purely to give Cmp a total order across finite/infinite mixes.
func infOrd(v Val) int {
	switch {
	case v.IsNegInf():
		return -2
	case v.IsPosInf():
		return 2
	default:
		return v.Sign()
	}
}

// Min returns the smaller of v and w; NaN poisons the result.
func (v Val) Min(w Val) Val {
	c, err := v.Cmp(w)
	if err != nil {
		return NaN()
	}
	if c <= 0 {
		return v
	}
	return w
}

// Max returns the larger of v and w; NaN poisons the result.
func (v Val) Max(w Val) Val {
	c, err := v.Cmp(w)
	if err != nil {
		return NaN()
	}
	if c >= 0 {
		return v
	}
	return w
}

// Floor returns the greatest integer Val <= v.
func (v Val) Floor() Val {
	if v.IsNaN() || v.IsInf() {
		return v
	}
	q, _, _ := FloorDiv(v.Num, v.Den)
	return Val{Num: q, Den: big.NewInt(1)}
}

// Ceil returns the smallest integer Val >= v.
func (v Val) Ceil() Val {
	if v.IsNaN() || v.IsInf() {
		return v
	}
	q, err := CeilDiv(v.Num, v.Den)
	if err != nil {
		return NaN()
	}
	return Val{Num: q, Den: big.NewInt(1)}
}

// Float64 returns the nearest float64 approximation to v, for diagnostic
// use only (never on the solve path; polyset.Printer formats a Val with
// String, not with this).
func (v Val) Float64() float64 {
	if v.IsNaN() {
		return 0
	}
	if v.IsPosInf() {
		return math.Inf(1)
	}
	if v.IsNegInf() {
		return math.Inf(-1)
	}
	r := new(big.Rat).SetFrac(v.Num, v.Den)
	f, _ := r.Float64()
	return f
}

// String renders v the way isl_val does: "NaN", "Inf" / "-Inf", an integer
// for Den==1, or "num/den" otherwise.
func (v Val) String() string {
	switch {
	case v.IsNaN():
		return "NaN"
	case v.IsPosInf():
		return "Inf"
	case v.IsNegInf():
		return "-Inf"
	case v.Den.Cmp(big.NewInt(1)) == 0:
		return v.Num.String()
	default:
		return fmt.Sprintf("%s/%s", v.Num.String(), v.Den.String())
	}
}
