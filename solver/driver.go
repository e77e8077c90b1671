// SPDX-License-Identifier: MIT

package solver

import (
	"fmt"

	"github.com/pilpsolver/pilp/cutdiv"
	"github.com/pilpsolver/pilp/lexmin"
	"github.com/pilpsolver/pilp/region"
	"github.com/pilpsolver/pilp/tableau"
)

// collector is whatever C5 piece (sink.Relation.Add or sink.Callback.Add)
// the entry point was built against: it is handed the fully restored,
// cut-closed (main, ctx) pair for one leaf of the splitting recursion.
type collector func(c *region.Context, main *tableau.Tableau, max bool) error

// solveVertex implements the outer loop §4.2's restore_lexmin assumes a
// caller already ran: lexmin.RestoreLexmin and cutdiv.Close only ever
// trust a row's cached RowSign or tableau.ObviousSign, never consulting
// region.RowSign themselves (lexmin cannot import region without a
// cycle), so this driver is the one place responsible for resolving
// every row whose non-negativity depends on which part of parameter
// space is live, splitting the context wherever that resolves to
// SignAny (§4.3), before it ever lets restore_lexmin or the cut engine
// run against it.
func solveVertex(main *tableau.Tableau, ctx *region.Context, max bool, depth int, o *options, collect collector) error {
	for {
		candidates, err := classifyCandidates(main, ctx)
		if err != nil {
			return err
		}
		if len(candidates) > 0 {
			if o.maxSplits > 0 && depth >= o.maxSplits {
				return fmt.Errorf("solver: split depth exceeded WithMaxSplits(%d): %w", o.maxSplits, ErrInternalInvariant)
			}
			r, err := region.BestSplit(main, ctx, candidates)
			if err != nil {
				return err
			}
			posMain, posCtx, err := region.Split(main, ctx, r)
			if err != nil {
				return err
			}
			if err := solveVertex(posMain, posCtx, max, depth+1, o, collect); err != nil {
				return err
			}
			if err := region.Continue(main, ctx, r); err != nil {
				return err
			}
			continue
		}

		if err := lexmin.RestoreLexmin(main); err != nil {
			return err
		}
		resetRowSigns(main)
		if main.Empty {
			return collect(ctx, main, max)
		}
		if o.rational {
			return collect(ctx, main, max)
		}

		before := main.NRow()
		onSplitDiv := func(info cutdiv.SplitDivInfo) error {
			return emitSplitComplement(ctx, info, max, collect)
		}
		if err := cutdiv.Close(main, ctx.T, ctx.BSet, onSplitDiv); err != nil {
			return err
		}
		resetRowSigns(main)
		if main.Empty {
			return collect(ctx, main, max)
		}
		if main.NRow() == before {
			return collect(ctx, main, max)
		}
		// Close added rows (cuts) whose own sign may again depend on the
		// parameter region, or pinned a new division in ctx via a
		// split-div cut: loop back to reclassify before trusting them.
	}
}

// emitSplitComplement records the "no integer solution in this strict
// half" region a split-div cut (cutdiv.OutcomeSplitDiv) leaves behind
// (§4.4 last paragraph): only a caller holding the full region.Context
// can fork it, which is why cutdiv.Close reports info back here instead
// of exploring it itself. A private clone of ctx is narrowed by
// info.Ineq; if that narrowed parameter region is still non-empty, it is
// reported to collect as an empty branch — via a dummy tableau with
// Empty set, the same shape sink.Relation.Add and sink.Callback.Add
// already expect from any other empty leaf of the recursion — before
// the caller continues down the branch where the division's defining
// equality actually holds.
func emitSplitComplement(ctx *region.Context, info cutdiv.SplitDivInfo, max bool, collect collector) error {
	clone := ctx.Clone()
	if err := region.AddInequality(clone, info.Ineq); err != nil {
		return err
	}
	if clone.T.Empty {
		return nil
	}
	return collect(clone, &tableau.Tableau{Empty: true}, max)
}

// classifyCandidates resolves every not-yet-classified non-negativity
// row of main against ctx, returning the indices that come back
// SignAny — the §4.3 splitting candidates. Rows resolving to SignPos or
// SignNeg are left cached on main.RowSign by region.RowSign itself and
// need no further attention this round.
func classifyCandidates(main *tableau.Tableau, ctx *region.Context) ([]int, error) {
	var candidates []int
	for r := main.NRedundant; r < main.NRow(); r++ {
		if !main.RowOwnerLoc(r).IsNonNeg {
			continue
		}
		if main.RowSign[r] != tableau.SignUnknown {
			if main.RowSign[r] == tableau.SignAny {
				candidates = append(candidates, r)
			}
			continue
		}
		sign, err := region.RowSign(main, ctx, r)
		if err != nil {
			return nil, err
		}
		if sign == tableau.SignAny {
			candidates = append(candidates, r)
		}
	}
	return candidates, nil
}

// resetRowSigns invalidates every cached RowSign on main. tableau.Pivot
// rewrites a row's entire content as a side effect of eliminating a
// column elsewhere in the matrix, so a sign classification cached
// before a pivot is not safe to trust afterwards; nothing in tableau
// tracks which specific rows a given pivot touched, so the conservative
// choice is to drop the whole cache rather than risk trusting a stale
// entry.
func resetRowSigns(main *tableau.Tableau) {
	for r := range main.RowSign {
		main.RowSign[r] = tableau.SignUnknown
	}
}
