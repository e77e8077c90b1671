// SPDX-License-Identifier: MIT

package lexmin

import (
	"fmt"
	"math/big"

	"github.com/pilpsolver/pilp/tableau"
)

// AddEquality implements "adding an equality" (§4.2): coef is a
// constant-then-per-variable coefficient vector in the convention of
// tableau.AddRow. A mid-variable column is eliminated when possible,
// falling back to a unit-coefficient parameter, falling back to adding
// the equality as two complementary inequalities when it is a pure
// parameter constraint with no unit coefficient.
func AddEquality(t *tableau.Tableau, coef []*big.Int) error {
	if len(coef) != 1+t.NVar() {
		return fmt.Errorf("lexmin: AddEquality: %w", ErrInvalidInput)
	}

	if v, ok := eliminableMidVar(t, coef); ok {
		return eliminateVia(t, coef, v)
	}
	if p, ok := unitCoefParam(t, coef); ok {
		return eliminateVia(t, coef, p)
	}
	return addAsTwoInequalities(t, coef)
}

func eliminableMidVar(t *tableau.Tableau, coef []*big.Int) (int, bool) {
	for v := t.NParam; v < t.NParam+t.NMid; v++ {
		if coef[1+v].Sign() != 0 && !t.Var[v].IsRow {
			return v, true
		}
	}
	return 0, false
}

func unitCoefParam(t *tableau.Tableau, coef []*big.Int) (int, bool) {
	for p := 0; p < t.NParam; p++ {
		c := coef[1+p]
		if c.Sign() != 0 && c.CmpAbs(big.NewInt(1)) == 0 && !t.Var[p].IsRow {
			return p, true
		}
	}
	return 0, false
}

// eliminateVia materializes coef as an equality row, pivots variable v
// into it, and kills the column that now holds the equality's own
// slack, pinning it at zero forever.
func eliminateVia(t *tableau.Tableau, coef []*big.Int, v int) error {
	col := t.Var[v].Index
	r, err := t.AddRow(coef, true)
	if err != nil {
		return err
	}
	if err := t.Pivot(r, col); err != nil {
		return err
	}
	if err := t.KillCol(col); err != nil {
		return err
	}
	t.NEq++
	return RestoreLexmin(t)
}

func addAsTwoInequalities(t *tableau.Tableau, coef []*big.Int) error {
	if _, err := t.AddRow(coef, false); err != nil {
		return err
	}
	if err := RestoreLexmin(t); err != nil {
		return err
	}
	if t.Empty {
		return nil
	}
	if _, err := t.AddRow(negate(coef), false); err != nil {
		return err
	}
	return RestoreLexmin(t)
}

func negate(coef []*big.Int) []*big.Int {
	out := make([]*big.Int, len(coef))
	for i, c := range coef {
		out[i] = new(big.Int).Neg(c)
	}
	return out
}

