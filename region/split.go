// SPDX-License-Identifier: MIT

package region

import (
	"math/big"

	"github.com/pilpsolver/pilp/tableau"
)

// BestSplit implements best_split (§4.3): among candidates (row indices
// of main already classified SignAny), it picks the one whose
// inequality, when hypothetically added to the context, resolves the
// most of the other candidates away from SignAny. Ties go to the
// earliest candidate in the slice, for reproducibility.
func BestSplit(main *tableau.Tableau, c *Context, candidates []int) (int, error) {
	if len(candidates) == 0 {
		return -1, ErrInvalidInput
	}
	best, bestScore := candidates[0], -1
	for _, e := range candidates {
		score, err := redundancyScore(main, c, candidates, e)
		if err != nil {
			return -1, err
		}
		if score > bestScore {
			best, bestScore = e, score
		}
	}
	return best, nil
}

// redundancyScore counts how many of candidates (other than e itself)
// stop being classified SignAny once e's inequality is added to a
// private probe clone of c.
func redundancyScore(main *tableau.Tableau, c *Context, candidates []int, e int) (int, error) {
	probe := c.Clone()
	if err := AddInequality(probe, main.ParametricConstant(e)); err != nil {
		return 0, err
	}
	if probe.T.Empty {
		return len(candidates) - 1, nil
	}
	score := 0
	for _, o := range candidates {
		if o == e {
			continue
		}
		sign, err := classify(main, probe, o)
		if err != nil {
			return 0, err
		}
		if sign != tableau.SignAny {
			score++
		}
	}
	return score, nil
}

// Split begins the §4.3 splitting recursion for row r of main, whose
// sign was classified SignAny: it clones main for the positive branch,
// adds e >= 0 (row r's own inequality) to a clone of the context, and
// marks r pos on the returned clone. The caller recurses into the
// returned (posMain, posCtx) pair; once that recursion returns, call
// Continue on the ORIGINAL main/c to advance them in place to the
// negative branch.
func Split(main *tableau.Tableau, c *Context, r int) (posMain *tableau.Tableau, posCtx *Context, err error) {
	posMain = main.Clone()
	posCtx = c.Clone()
	e := main.ParametricConstant(r)
	if err = AddInequality(posCtx, e); err != nil {
		return nil, nil, err
	}
	posMain.RowSign[r] = tableau.SignPos
	return posMain, posCtx, nil
}

// Continue advances main/c in place to the negative branch of the split
// begun by Split for row r: adds -e-1 >= 0 to c and marks r neg.
func Continue(main *tableau.Tableau, c *Context, r int) error {
	e := main.ParametricConstant(r)
	neg := make([]*big.Int, len(e))
	neg[0] = new(big.Int).Sub(new(big.Int).Neg(e[0]), big.NewInt(1))
	for i, v := range e[1:] {
		neg[1+i] = new(big.Int).Neg(v)
	}
	if err := AddInequality(c, neg); err != nil {
		return err
	}
	main.RowSign[r] = tableau.SignNeg
	return nil
}
