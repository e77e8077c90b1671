// SPDX-License-Identifier: MIT

package lexmin

import "github.com/pilpsolver/pilp/tableau"

// RestoreLexmin implements restore_lexmin (§4.2): while a violated
// non-negativity row exists, it pivots it towards feasibility, choosing
// the lexicographically smallest increment each time. It marks t empty
// and returns nil when a violated row has no positive pivot column.
func RestoreLexmin(t *tableau.Tableau) error {
	for {
		r, found := selectViolatedRow(t)
		if !found {
			return nil
		}
		c := LexPivotCol(t, r)
		if c < 0 {
			t.Empty = true
			return nil
		}
		if err := t.Pivot(r, c); err != nil {
			return err
		}
	}
}

// selectViolatedRow finds the first row whose owner requires
// non-negativity and whose current sign is (obviously, or previously
// classified) negative. In big-M mode a violated row with a negative
// big-M coefficient is preferred over one without (§4.2 step 1).
func selectViolatedRow(t *tableau.Tableau) (int, bool) {
	first := -1
	for r := t.NRedundant; r < t.NRow(); r++ {
		if !violated(t, r) {
			continue
		}
		if first < 0 {
			first = r
		}
		if t.BigM && t.RowOf(r)[2].Sign() < 0 {
			return r, true
		}
	}
	if first >= 0 {
		return first, true
	}
	return 0, false
}

func violated(t *tableau.Tableau, r int) bool {
	if !t.RowOwnerLoc(r).IsNonNeg {
		return false
	}
	if t.RowSign != nil && t.RowSign[r] == tableau.SignNeg {
		return true
	}
	return t.ObviousSign(r) == tableau.SignNeg
}
