// SPDX-License-Identifier: MIT

package sink

import (
	"math/big"

	"github.com/pilpsolver/pilp/region"
	"github.com/pilpsolver/pilp/tableau"
)

// Sink is the polymorphic collector contract of §4.5 and §9's "tagged
// variant rather than a vtable": Add is called whenever a driver
// terminates a branch, either on an empty tableau (an infeasible
// region) or at a finite lex-optimal vertex.
type Sink interface {
	Add(c *region.Context, main *tableau.Tableau, max bool) error
}

// affineRow extracts output variable varIdx's value as an affine
// expression num/den over (params, context divs), sign-flipped when max
// is set (§4.5: "outputs therefore need sign inversion at emission").
// num has length 1+nParam+nDiv. It returns ErrUnbounded when the
// variable is nonbasic under a big-M tableau (no finite value — the
// bootstrap convention this module omits never pivoted it down) or when
// its row's big-M coefficient fails the "M cancels out" assertion.
func affineRow(main *tableau.Tableau, varIdx, nParam, nDiv int, max bool) (num []*big.Int, den *big.Int, err error) {
	loc := main.Var[varIdx]
	width := 1 + nParam + nDiv

	if !loc.IsRow {
		if main.BigM {
			return nil, nil, ErrUnbounded
		}
		num = make([]*big.Int, width)
		for i := range num {
			num[i] = big.NewInt(0)
		}
		return num, big.NewInt(1), nil
	}

	row := main.RowOf(loc.Index)
	d := row[0]
	if main.BigM && row[2].Cmp(d) != 0 {
		return nil, nil, ErrUnbounded
	}

	pc := main.ParametricConstant(loc.Index)
	sign := big.NewInt(1)
	if max {
		sign = big.NewInt(-1)
	}
	num = make([]*big.Int, width)
	for i, v := range pc {
		num[i] = new(big.Int).Mul(sign, v)
	}
	for i := len(pc); i < width; i++ {
		num[i] = big.NewInt(0)
	}
	return num, new(big.Int).Set(d), nil
}
