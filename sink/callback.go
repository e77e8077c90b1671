// SPDX-License-Identifier: MIT

package sink

import (
	"github.com/pilpsolver/pilp/bigrat"
	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/region"
	"github.com/pilpsolver/pilp/tableau"
)

// Callback streams each branch's (domain, affine matrix) pair to Fn
// instead of accumulating pieces, the collector foreach_lexopt drives
// (§4.5). The matrix has 1+NOut rows and 1+NIn+NDiv columns: row 0 is
// the constant row (1,0,...,0), row 1+i is output i's affine expression
// over (params, context divs) as reduced rationals.
type Callback struct {
	NOut int
	Fn   func(domain *polyset.BasicSet, matrix [][]bigrat.Val) error
}

// NewCallback returns a Callback collector over nOut output variables,
// invoking fn once per non-empty branch.
func NewCallback(nOut int, fn func(domain *polyset.BasicSet, matrix [][]bigrat.Val) error) *Callback {
	return &Callback{NOut: nOut, Fn: fn}
}

// Add implements Sink for the callback collector. Empty branches are
// silently skipped: foreach_lexopt has no notion of tracking them, that
// belongs to Relation alone.
func (cb *Callback) Add(c *region.Context, main *tableau.Tableau, max bool) error {
	if main.Empty {
		return nil
	}

	nIn := c.BSet.NIn
	nDiv := len(c.BSet.Div)
	width := 1 + nIn + nDiv

	matrix := make([][]bigrat.Val, 1+cb.NOut)
	matrix[0] = make([]bigrat.Val, width)
	matrix[0][0] = bigrat.FromInt64(1)
	for j := 1; j < width; j++ {
		matrix[0][j] = bigrat.Zero()
	}

	for i := 0; i < cb.NOut; i++ {
		varIdx := main.NParam + i
		num, den, err := affineRow(main, varIdx, nIn, nDiv, max)
		if err != nil {
			return err
		}
		row := make([]bigrat.Val, width)
		for j, n := range num {
			row[j] = bigrat.FromFrac(n, den)
		}
		matrix[1+i] = row
	}

	return cb.Fn(c.BSet.Copy(), matrix)
}
