// SPDX-License-Identifier: MIT

package cutdiv

import (
	"math/big"

	"github.com/pilpsolver/pilp/tableau"
)

// Classify computes the I_CST/I_PAR/I_VAR bits of §4.4 for row r of a
// tableau whose denominator is > 1: I_CST iff d divides the constant,
// I_PAR iff d divides every parameter/context-div coefficient, I_VAR
// iff d divides every problem-variable (or constraint-slack) coefficient.
func Classify(t *tableau.Tableau, r int) (iCst, iPar, iVar bool) {
	row := t.RowOf(r)
	d := row[0]
	iCst = divides(d, row[1])
	off := t.Off()
	iPar, iVar = true, true
	for c := 0; c < t.NCol; c++ {
		coef := row[off+c]
		if t.ColIsContextVar(c) {
			if !divides(d, coef) {
				iPar = false
			}
		} else {
			if !divides(d, coef) {
				iVar = false
			}
		}
	}
	return
}

func divides(d, v *big.Int) bool {
	if v.Sign() == 0 {
		return true
	}
	return new(big.Int).Mod(v, d).Sign() == 0
}

// rem returns the unique value in [0, d) congruent to v mod d.
func rem(v, d *big.Int) *big.Int {
	return new(big.Int).Mod(v, d)
}
