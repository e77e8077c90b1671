// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"
	"math/big"

	"github.com/pilpsolver/pilp/lexmin"
	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/region"
	"github.com/pilpsolver/pilp/tableau"
)

// build implements the preprocessing step implied by §8's boundary
// behavior ("a purely parametric equality in bmap is transferred to
// context at preprocessing; the main tableau is left with that row
// marked redundant"): it allocates the context from dom, folds in every
// constraint of bmap that touches no output variable as a context
// constraint (leaving a redundant placeholder row in main so main's row
// count and content still reflect it), and materializes every remaining
// constraint directly against main.
//
// Pre-existing divisions on dom or bmap are out of scope: re-deriving a
// division already baked into a basic-set/basic-map's closed form into
// a freshly built context tableau is a distinct problem this module
// does not attempt (see DESIGN.md); callers are expected to pass
// division-free inputs, which is what every caller in this module
// (cmd/pilp's YAML-driven construction) produces.
func build(bmap *polyset.BasicMap, dom *polyset.BasicSet, max bool, o *options) (*tableau.Tableau, *region.Context, error) {
	if bmap.NIn != dom.NIn {
		return nil, nil, fmt.Errorf("solver: domain has %d dims, basic map expects %d: %w", dom.NIn, bmap.NIn, ErrInvalidInput)
	}
	if len(dom.Div) != 0 || len(bmap.Div) != 0 {
		return nil, nil, fmt.Errorf("solver: pre-existing divisions in the input are not supported: %w", ErrInvalidInput)
	}

	nParam := bmap.NIn
	nOut := bmap.NOut

	ctx, err := region.New(nParam, len(dom.Eq)+len(bmap.Eq), len(dom.Ineq)+len(bmap.Ineq), 4)
	if err != nil {
		return nil, nil, err
	}

	for _, row := range dom.Eq {
		if err := region.AddEquality(ctx, row); err != nil {
			return nil, nil, err
		}
		if ctx.T.Empty {
			return tableau.New(nParam, nOut, 0, o.bigParam, o.rational), ctx, nil
		}
	}
	for _, row := range dom.Ineq {
		if err := region.AddInequality(ctx, row); err != nil {
			return nil, nil, err
		}
		if ctx.T.Empty {
			return tableau.New(nParam, nOut, 0, o.bigParam, o.rational), ctx, nil
		}
	}

	main := tableau.New(nParam, nOut, 0, o.bigParam, o.rational)

	// Pass 1: every purely parametric row of bmap is transferred to the
	// context and left in main only as a marked-redundant placeholder.
	// This must run to completion before pass 2 adds any real row,
	// since tableau.MarkRedundant's "redundant prefix" convention
	// (lexmin.RestoreLexmin and cutdiv's row scans both skip rows
	// [0, NRedundant)) only holds when the marked rows are genuinely
	// the first ones in main.
	for _, row := range bmap.Eq {
		if !isPureParametric(row, nParam, nOut) {
			continue
		}
		if err := region.AddEquality(ctx, paramPart(row, nParam)); err != nil {
			return nil, nil, err
		}
		if ctx.T.Empty {
			return main, ctx, nil
		}
		if _, err := main.AddRow(row, true); err != nil {
			return nil, nil, err
		}
		main.MarkRedundant()
	}
	for _, row := range bmap.Ineq {
		if !isPureParametric(row, nParam, nOut) {
			continue
		}
		if err := region.AddInequality(ctx, paramPart(row, nParam)); err != nil {
			return nil, nil, err
		}
		if ctx.T.Empty {
			return main, ctx, nil
		}
		if _, err := main.AddRow(row, false); err != nil {
			return nil, nil, err
		}
		main.MarkRedundant()
	}

	// Pass 2: every row touching at least one output variable becomes a
	// real main-tableau constraint, its output coefficients negated
	// when max is set (the v_i = -x_i substitution that lets the same
	// lex-min machinery compute a lex-max vertex; see DESIGN.md).
	for _, row := range bmap.Eq {
		if isPureParametric(row, nParam, nOut) {
			continue
		}
		if err := lexmin.AddEquality(main, mainCoef(row, nParam, nOut, max)); err != nil {
			return nil, nil, err
		}
		if main.Empty {
			return main, ctx, nil
		}
	}
	for _, row := range bmap.Ineq {
		if isPureParametric(row, nParam, nOut) {
			continue
		}
		if _, err := main.AddRow(mainCoef(row, nParam, nOut, max), false); err != nil {
			return nil, nil, err
		}
		if err := lexmin.RestoreLexmin(main); err != nil {
			return nil, nil, err
		}
		if main.Empty {
			return main, ctx, nil
		}
	}

	return main, ctx, nil
}

// isPureParametric reports whether row (laid out [const, in_1..nIn,
// out_1..nOut]) has a zero coefficient on every output dimension.
func isPureParametric(row polyset.Vec, nParam, nOut int) bool {
	for i := 0; i < nOut; i++ {
		if row[1+nParam+i].Sign() != 0 {
			return false
		}
	}
	return true
}

// paramPart returns the leading [const, in_1..nParam] slice of row, the
// shape region.AddEquality/AddInequality expect from a context tableau
// with no divs yet.
func paramPart(row polyset.Vec, nParam int) []*big.Int {
	return row[:1+nParam]
}

// mainCoef returns row re-expressed as a coefficient vector over main's
// own variable space [param_0..nParam-1, out_0..nOut-1], negating the
// output block when max is set.
func mainCoef(row polyset.Vec, nParam, nOut int, max bool) []*big.Int {
	coef := make([]*big.Int, 1+nParam+nOut)
	copy(coef, row[:1+nParam])
	for i := 0; i < nOut; i++ {
		v := row[1+nParam+i]
		if max {
			coef[1+nParam+i] = new(big.Int).Neg(v)
		} else {
			coef[1+nParam+i] = v
		}
	}
	return coef
}
