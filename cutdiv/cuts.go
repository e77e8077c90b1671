// SPDX-License-Identifier: MIT

package cutdiv

import (
	"fmt"
	"math/big"

	"github.com/pilpsolver/pilp/lexmin"
	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/tableau"
)

// Outcome records what Step did to the tableau(s) it was given, so Close's
// caller (region's context-feasibility loop, or the solver's main loop)
// knows whether to keep iterating, split, or stop.
type Outcome int

const (
	OutcomeNone     Outcome = iota // row r was already integral; nothing to do
	OutcomeSkipped                 // I_CST&&I_PAR: the row's parametric part is already integral
	OutcomeInfeasible              // !I_CST&&I_PAR&&I_VAR: no integer point can satisfy this row
	OutcomeNonParametricCut
	OutcomeParametricCut
	OutcomeSplitDiv
)

// SplitDivInfo carries the complementary region a split-div cut leaves
// unexplored (§4.4, last paragraph): the division q it introduced pins
// ctx to the branch where e - d*q = 0, but ctx also admits e - d*q >= 1
// — the "no integer solution in this strict half" branch isl's
// no_sol_in_strict (isl_tab_pip.c) reports back to its caller instead of
// exploring itself. Ineq is that complementary inequality, laid out over
// ctx's own variable space ([const, param_0.., div_0..]), ready to feed
// directly into a context tableau or region.AddInequality.
type SplitDivInfo struct {
	Ineq []*big.Int
}

// Step applies one round of the §4.4 decision table to row r of main,
// whose denominator is d = M[r][0] > 1. ctx and ctxBSet are the context
// tableau and its shadow basic set; main's own parameters/divs are
// assumed to mirror ctx's 1:1, as GetDiv maintains. The returned
// *SplitDivInfo is non-nil exactly when outcome is OutcomeSplitDiv.
func Step(main, ctx *tableau.Tableau, ctxBSet *polyset.BasicSet, r int) (Outcome, *SplitDivInfo, error) {
	row := main.RowOf(r)
	d := row[0]
	if d.Sign() <= 0 {
		return OutcomeNone, nil, fmt.Errorf("cutdiv: Step: row %d has non-positive denominator: %w", r, ErrInternalInvariant)
	}
	if d.Cmp(big.NewInt(1)) == 0 {
		return OutcomeNone, nil, nil
	}

	iCst, iPar, iVar := Classify(main, r)
	switch {
	case iCst && iPar:
		return OutcomeSkipped, nil, nil
	case !iCst && iPar && iVar:
		main.Empty = true
		return OutcomeInfeasible, nil, nil
	case !iCst && iPar && !iVar:
		if err := nonParametricCut(main, r); err != nil {
			return OutcomeNone, nil, err
		}
		return OutcomeNonParametricCut, nil, nil
	case !iPar && !iVar:
		if err := parametricCut(main, ctx, ctxBSet, r); err != nil {
			return OutcomeNone, nil, err
		}
		return OutcomeParametricCut, nil, nil
	default: // !iPar && iVar
		info, err := splitDivCut(main, ctx, ctxBSet, r)
		if err != nil {
			return OutcomeNone, nil, err
		}
		return OutcomeSplitDiv, info, nil
	}
}

// nonParametricCut implements the !I_CST&&I_PAR&&!I_VAR branch of §4.4:
// the row's parametric part is already integral for every value of the
// parameters, so the cut needs no division — it is built directly from
// the residues of the problem-variable coefficients mod d, and is
// violated (negative) at the row's current, pre-cut sample.
func nonParametricCut(main *tableau.Tableau, r int) error {
	row := main.RowOf(r)
	d := row[0]
	off := main.Off()
	coefs := make([]*big.Int, main.NCol)
	for c := 0; c < main.NCol; c++ {
		if main.ColIsContextVar(c) {
			coefs[c] = big.NewInt(0)
			continue
		}
		coefs[c] = rem(row[off+c], d)
	}
	c0 := new(big.Int).Neg(rem(new(big.Int).Neg(row[1]), d))
	newRow, err := main.AddRawRow(new(big.Int).Set(d), c0, big.NewInt(0), coefs, false)
	if err != nil {
		return err
	}
	main.RowSign[newRow] = tableau.SignNeg
	return lexmin.RestoreLexmin(main)
}

// parametricCut implements the !I_PAR&&!I_VAR branch: a fresh context
// division q = floor(-a/d) is introduced over the row's parameter/div
// residues, and the cut row
//
//	-{-c0/d} + sum {-a_i/d} y_i + sum {b_i/d} x_i + q >= 0
//
// is added to main, folding q in by substitution if it has since become
// basic (GetDiv always introduces q as a fresh, non-basic column, but a
// caller may have pivoted on it before this cut is applied).
func parametricCut(main, ctx *tableau.Tableau, ctxBSet *polyset.BasicSet, r int) error {
	row := main.RowOf(r)
	d := row[0]
	off := main.Off()
	oldNCol := main.NCol

	// Snapshot row's coefficients and residues before GetDiv grows main
	// by a column: it may replace main.M[r] under us, and the freshly
	// allocated div column has no entry in this row to read anyway (its
	// contribution is folded in afterwards as an explicit "+ q" term).
	expr := make(polyset.Vec, 1+main.NParam+main.NDiv)
	expr[0] = rem(new(big.Int).Neg(row[1]), d)
	for i := range expr[1:] {
		expr[1+i] = big.NewInt(0)
	}
	varCoefs := make([]*big.Int, oldNCol)
	for c := 0; c < oldNCol; c++ {
		coef := row[off+c]
		if main.ColIsContextVar(c) {
			idx := main.ContextVarOffset(c)
			expr[1+idx] = rem(new(big.Int).Neg(coef), d)
		}
		varCoefs[c] = new(big.Int).Set(coef)
	}

	mainIdx, _, err := GetDiv(main, ctx, ctxBSet, polyset.Div{Denom: new(big.Int).Set(d), Expr: expr})
	if err != nil {
		return err
	}

	coefs := make([]*big.Int, main.NCol)
	for c := 0; c < main.NCol; c++ {
		if c >= oldNCol {
			coefs[c] = big.NewInt(0)
			continue
		}
		if main.ColIsContextVar(c) {
			idx := main.ContextVarOffset(c)
			coefs[c] = new(big.Int).Set(expr[1+idx])
		} else {
			coefs[c] = rem(varCoefs[c], d)
		}
	}
	c0 := new(big.Int).Neg(expr[0])
	nd, nc0, nm, ncoefs := main.FoldVarTerm(new(big.Int).Set(d), c0, big.NewInt(0), coefs, big.NewInt(1), mainIdx)

	newRow, err := main.AddRawRow(nd, nc0, nm, ncoefs, false)
	if err != nil {
		return err
	}
	main.RowSign[newRow] = tableau.SignNeg
	return lexmin.RestoreLexmin(main)
}

// splitDivCut implements the !I_PAR&&I_VAR branch: the problem-variable
// coefficients are already integral (I_VAR), only the parametric part is
// fractional, so q = floor(Σ a_i y_i / d) is introduced into the context
// and pinned there by an equality e - d*q = 0 — the region bounded by
// GetDiv's pair of defining inequalities, narrowed to its exact edge. In
// the branch of the context where that equality holds, c0 + Σ a_i y_i
// collapses to exactly d*q, so row r can be rewritten in place as the
// clean integral row q + Σ (b_i/d) x_i. The complementary branch (the
// equality's negation, e - d*q >= 1, "no solution in this strict half")
// is reported back to the caller as the returned SplitDivInfo rather
// than explored here: only a caller holding the full region.Context —
// not this package, which sits below it — can fork and probe it (§4.4
// last paragraph).
func splitDivCut(main, ctx *tableau.Tableau, ctxBSet *polyset.BasicSet, r int) (*SplitDivInfo, error) {
	row := main.RowOf(r)
	d := row[0]
	off := main.Off()
	oldNCol := main.NCol

	expr := make(polyset.Vec, 1+main.NParam+main.NDiv)
	expr[0] = new(big.Int).Set(row[1])
	for i := range expr[1:] {
		expr[1+i] = big.NewInt(0)
	}
	varCoefs := make([]*big.Int, oldNCol)
	for c := 0; c < oldNCol; c++ {
		coef := row[off+c]
		if main.ColIsContextVar(c) {
			idx := main.ContextVarOffset(c)
			expr[1+idx] = new(big.Int).Set(coef)
		}
		varCoefs[c] = new(big.Int).Set(coef)
	}

	mainIdx, ctxIdx, err := GetDiv(main, ctx, ctxBSet, polyset.Div{Denom: new(big.Int).Set(d), Expr: expr})
	if err != nil {
		return nil, err
	}

	eq := append(polyset.Vec(nil), expr.Extend(1+ctx.NVar()-len(expr))...)
	eq[1+ctxIdx] = new(big.Int).Sub(eq[1+ctxIdx], d)

	compl := append(polyset.Vec(nil), eq...)
	compl[0] = new(big.Int).Sub(compl[0], big.NewInt(1))
	info := &SplitDivInfo{Ineq: compl}

	if err := lexmin.AddEquality(ctx, eq); err != nil {
		return nil, err
	}
	if ctx.Empty {
		return info, nil
	}

	coefs := make([]*big.Int, main.NCol)
	for c := 0; c < main.NCol; c++ {
		switch {
		case c >= oldNCol:
			coefs[c] = big.NewInt(0)
		case main.ColIsContextVar(c):
			coefs[c] = big.NewInt(0)
		default:
			coefs[c] = new(big.Int).Quo(varCoefs[c], d)
		}
	}
	nd, nc0, nm, ncoefs := main.FoldVarTerm(big.NewInt(1), big.NewInt(0), big.NewInt(0), coefs, big.NewInt(1), mainIdx)
	if err := main.ReplaceRow(r, nd, nc0, nm, ncoefs); err != nil {
		return nil, err
	}
	if err := lexmin.RestoreLexmin(main); err != nil {
		return nil, err
	}
	return info, nil
}

// Close drives Step to a fixed point over main: repeatedly finds the first
// row with a denominator other than 1 and cuts it, until none remains or
// main is marked empty. It is the main loop the solver's PartialLexopt
// calls after each RestoreLexmin to integrality-check the current
// vertex (§4.4, §6).
//
// onSplitDiv, when non-nil, is invoked synchronously for every split-div
// cut Step performs, before Close moves on to the next fractional row:
// the caller is expected to fork ctx on the reported SplitDivInfo and
// record the "no integer solution" branch before continuing (§4.4 last
// paragraph). A nil onSplitDiv simply discards that branch — the right
// choice for a throwaway feasibility probe that only needs to know
// whether some integer point exists, not to account for every one that
// doesn't (region.Feasible, region.RowSign's testFeasible).
func Close(main, ctx *tableau.Tableau, ctxBSet *polyset.BasicSet, onSplitDiv func(SplitDivInfo) error) error {
	for !main.Empty {
		r, found := findFractionalRow(main)
		if !found {
			return nil
		}
		_, info, err := Step(main, ctx, ctxBSet, r)
		if err != nil {
			return err
		}
		if info != nil && onSplitDiv != nil {
			if err := onSplitDiv(*info); err != nil {
				return err
			}
		}
	}
	return nil
}

// CutToIntegerLexmin implements the restricted, non-parametric form of
// the cut loop region's context_is_feasible uses (§4.3): a context
// tableau has no further context of its own, so it plays both roles in
// Step, introducing any divisions it needs against its own shadow
// BasicSet. It is always a throwaway probe, so any split-div
// complementary branch is discarded rather than reported.
func CutToIntegerLexmin(ctx *tableau.Tableau) error {
	return Close(ctx, ctx, ctx.BSet, nil)
}

// findFractionalRow returns the first non-redundant row whose
// denominator differs from 1.
func findFractionalRow(t *tableau.Tableau) (int, bool) {
	one := big.NewInt(1)
	for r := t.NRedundant; r < t.NRow(); r++ {
		if t.RowOf(r)[0].Cmp(one) != 0 {
			return r, true
		}
	}
	return 0, false
}
