// SPDX-License-Identifier: MIT

package region

import (
	"math/big"

	"github.com/pilpsolver/pilp/cutdiv"
	"github.com/pilpsolver/pilp/lexmin"
	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/tableau"
)

// RowSign implements row_sign (§4.3): it classifies row r of main as
// non-negative, non-positive or sign-variable over the context c,
// caching the result in main.RowSign[r].
func RowSign(main *tableau.Tableau, c *Context, r int) (tableau.Sign, error) {
	if main.RowSign[r] != tableau.SignUnknown {
		return main.RowSign[r], nil
	}

	ineq := main.ParametricConstant(r)
	mcoef := rowMcoef(main, r)
	for r2 := 0; r2 < main.NRow(); r2++ {
		if r2 == r || main.RowSign[r2] == tableau.SignUnknown {
			continue
		}
		if !mcoefEqual(mcoef, rowMcoef(main, r2)) {
			continue
		}
		if !polyset.Vec(ineq).Equal(polyset.Vec(main.ParametricConstant(r2))) {
			continue
		}
		main.RowSign[r] = main.RowSign[r2]
		return main.RowSign[r], nil
	}

	sign, err := classify(main, c, r)
	if err != nil {
		return tableau.SignUnknown, err
	}
	main.RowSign[r] = sign
	return sign, nil
}

// classify runs steps 2, 4, 5 and 6 of §4.3's classification without
// touching main.RowSign's cache (steps 1 and 3): BestSplit needs to
// score a candidate row against a hypothetical, not-yet-committed
// context, so it must be able to reclassify other candidates without
// disturbing their real cached sign.
func classify(main *tableau.Tableau, c *Context, r int) (tableau.Sign, error) {
	if main.ObviousSign(r) == tableau.SignPos {
		return tableau.SignPos, nil
	}

	ineq := main.ParametricConstant(r)
	sign := sampleGuess(main, c, r, ineq)

	if sign == tableau.SignUnknown || sign == tableau.SignPos {
		feasible, err := testFeasible(c, negRegion(ineq))
		if err != nil {
			return tableau.SignUnknown, err
		}
		switch {
		case !feasible:
			sign = tableau.SignPos
		case sign == tableau.SignUnknown:
			sign = tableau.SignNeg
		default:
			sign = tableau.SignAny
		}
	}
	if sign == tableau.SignNeg {
		feasible, err := testFeasible(c, shrink(ineq))
		if err != nil {
			return tableau.SignUnknown, err
		}
		if feasible {
			sign = tableau.SignAny
		}
	}
	return sign, nil
}

// sampleGuess implements §4.3 step 4: an initial sign guess from how
// ineq evaluates against every live context sample, with the
// criticality adjustment — when r has no pivot column, or ineq is
// strict over the integers (its coefficient gcd does not divide its
// constant), a sample landing exactly on zero counts only as
// non-negative evidence, never as non-positive, so a boundary sample
// can't by itself produce a silent "neg" guess that skips the
// feasibility checks of steps 5 and 6.
func sampleGuess(main *tableau.Tableau, c *Context, r int, ineq []*big.Int) tableau.Sign {
	critical := lexmin.LexPivotCol(main, r) < 0 || isStrict(ineq)

	seenPos, seenNeg := false, false
	for _, s := range c.T.LiveSamples() {
		switch v := evalIneq(ineq, s).Sign(); {
		case v > 0:
			seenPos = true
		case v < 0:
			seenNeg = true
		default:
			seenPos = true
			if !critical {
				seenNeg = true
			}
		}
	}
	switch {
	case seenPos && seenNeg:
		return tableau.SignAny
	case seenPos:
		return tableau.SignPos
	case seenNeg:
		return tableau.SignNeg
	default:
		return tableau.SignUnknown
	}
}

// isStrict reports whether ineq >= 0 admits no integer point exactly on
// its boundary: gcd of its non-constant coefficients does not divide
// its constant term.
func isStrict(ineq []*big.Int) bool {
	g := polyset.Vec(ineq[1:]).GCD()
	if g.Sign() == 0 {
		return false
	}
	return new(big.Int).Mod(ineq[0], g).Sign() != 0
}

// testFeasible reports whether ineq >= 0 can be satisfied by some
// integer point of c, without mutating c: it probes a private clone.
func testFeasible(c *Context, ineq []*big.Int) (bool, error) {
	probe := c.Clone()
	if err := AddInequality(probe, ineq); err != nil {
		return false, err
	}
	if probe.T.Empty {
		return false, nil
	}
	if err := cutdiv.CutToIntegerLexmin(probe.T); err != nil {
		return false, err
	}
	return !probe.T.Empty, nil
}

// negRegion returns -ineq - 1, the strict negative region tested by
// step 5.
func negRegion(ineq []*big.Int) []*big.Int {
	out := make([]*big.Int, len(ineq))
	out[0] = new(big.Int).Sub(new(big.Int).Neg(ineq[0]), big.NewInt(1))
	for i, v := range ineq[1:] {
		out[1+i] = new(big.Int).Neg(v)
	}
	return out
}

// shrink returns ineq - 1, the "non-critical" (strictly positive)
// region tested by step 6.
func shrink(ineq []*big.Int) []*big.Int {
	out := append([]*big.Int(nil), ineq...)
	out[0] = new(big.Int).Sub(out[0], big.NewInt(1))
	return out
}

// evalIneq evaluates ineq (laid out [const, param_0.., div_0..]) at
// sample s (laid out [param_0.., div_0..]), treating any coordinate
// beyond len(s) — a division introduced after the sample was recorded —
// as zero.
func evalIneq(ineq []*big.Int, s []*big.Int) *big.Int {
	v := new(big.Int).Set(ineq[0])
	for i, c := range ineq[1:] {
		if i >= len(s) {
			break
		}
		v.Add(v, new(big.Int).Mul(c, s[i]))
	}
	return v
}

func rowMcoef(t *tableau.Tableau, r int) *big.Int {
	if !t.BigM {
		return nil
	}
	return t.RowOf(r)[2]
}

func mcoefEqual(a, b *big.Int) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Cmp(b) == 0
}
