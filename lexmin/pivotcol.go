// SPDX-License-Identifier: MIT

package lexmin

import (
	"math/big"

	"github.com/pilpsolver/pilp/tableau"
)

// LexPivotCol implements lex_pivot_col (§4.2): among the live,
// non-frozen, non-context-variable columns with a strictly positive
// coefficient in row r, it picks the one inducing the lexicographically
// smallest non-negative increment on the problem-variable sample point.
// It returns -1 when no such column exists.
func LexPivotCol(t *tableau.Tableau, r int) int {
	var candidates []int
	for c := 0; c < t.NCol; c++ {
		if t.ColFrozen(c) || t.ColIsContextVar(c) {
			continue
		}
		if t.Coef(r, c).Sign() > 0 {
			candidates = append(candidates, c)
		}
	}
	if len(candidates) == 0 {
		return -1
	}
	best := candidates[0]
	for _, c := range candidates[1:] {
		if cmpCols(t, r, c, best) < 0 {
			best = c
		}
	}
	return best
}

// cmpCols orders two candidate columns by the lexicographic increment
// rule of §4.2: negative means j1 induces a lexicographically smaller
// increment than j2.
func cmpCols(t *tableau.Tableau, r, j1, j2 int) int {
	mrj1 := t.Coef(r, j1)
	mrj2 := t.Coef(r, j2)
	for v := t.NParam; v < t.NParam+t.NMid; v++ {
		a1 := incrementNumerator(t, v, j1)
		a2 := incrementNumerator(t, v, j2)
		left := new(big.Int).Mul(a1, mrj2)
		right := new(big.Int).Mul(a2, mrj1)
		if c := left.Cmp(right); c != 0 {
			return c
		}
	}
	return 0
}

// incrementNumerator computes A_{v,j} of §4.2: 1 if problem variable v
// is non-basic in column j, 0 if non-basic elsewhere, or the row
// coefficient of column j in v's own row when v is basic.
func incrementNumerator(t *tableau.Tableau, v, j int) *big.Int {
	loc := t.Var[v]
	if !loc.IsRow {
		if loc.Index == j {
			return big.NewInt(1)
		}
		return big.NewInt(0)
	}
	return new(big.Int).Set(t.Coef(loc.Index, j))
}
