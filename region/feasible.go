// SPDX-License-Identifier: MIT

package region

import (
	"math/big"

	"github.com/pilpsolver/pilp/bigrat"
	"github.com/pilpsolver/pilp/cutdiv"
)

// Feasible implements context_is_feasible (§4.3): it explores whether
// the context currently admits an integer point by cutting a private
// clone to an integer lex-min vertex. Because adding divisions during
// that exploration grows the clone's own BasicSet and samples, not the
// original's, the exploration is always thrown away — "snapshot, run,
// roll back" is realized here as "clone, run, discard the clone" rather
// than tableau.Mark/Rollback, since BSet is not part of the undo journal
// (a division GetDiv appends to it survives a Rollback). On success the
// point found is recorded as a new sample of the original context.
func Feasible(c *Context) ([]*big.Int, bool, error) {
	clone := c.Clone()
	if err := cutdiv.CutToIntegerLexmin(clone.T); err != nil {
		return nil, false, err
	}
	if clone.T.Empty {
		return nil, false, nil
	}

	n := c.T.NParam + c.T.NDiv
	sample := make([]*big.Int, n)
	for i := 0; i < n; i++ {
		c0, d, _ := clone.T.VarValueParts(i)
		q, _, err := bigrat.FloorDiv(c0, d)
		if err != nil {
			return nil, false, err
		}
		sample[i] = q
	}
	c.T.AddSample(sample)
	return sample, true, nil
}
