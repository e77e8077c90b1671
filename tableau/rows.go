// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"
	"math/big"
)

// New allocates a tableau tracking nParam parameter variables, nMid
// problem variables and nDiv context-division variables (§3's
// [parameters | problem vars | divs] layout). Every variable starts
// non-basic at value 0; non-negativity is never inherent to a variable,
// only to the constraint rows a caller adds (§4.1's con[] records), so
// the initial state is trivially feasible regardless of bigM.
//
// When bigM is set, every row in this tableau carries an extra symbolic
// M coefficient (§3, §9): never pivoted on directly, but propagated
// through Pivot/AddRow and decisive in ObviousSign whenever a row's
// value needs to be compared against "larger than any concrete integer"
// — the mechanism the cut & div engine and the unbounded-output check of
// the solution sink rely on.
func New(nParam, nMid, nDiv int, bigM, rational bool) *Tableau {
	nVar := nParam + nMid + nDiv
	t := &Tableau{
		NParam:   nParam,
		NMid:     nMid,
		NDiv:     nDiv,
		BigM:     bigM,
		Rational: rational,
		Var:      make([]VarLoc, nVar),
		ColOwner: make([]ref, 0, nVar),
	}
	for i := 0; i < nVar; i++ {
		t.Var[i] = VarLoc{IsRow: false, Index: i}
		t.ColOwner = append(t.ColOwner, ref{idx: i})
	}
	t.NCol = nVar
	return t
}

// growCols appends n fresh, all-zero column slots, extending every
// existing row to match.
func (t *Tableau) growCols(n int) []int {
	off := t.off()
	start := t.NCol
	idxs := make([]int, n)
	for i := 0; i < n; i++ {
		idxs[i] = start + i
	}
	t.NCol += n
	for r, row := range t.M {
		grown := make(Row, off+t.NCol)
		copy(grown, row)
		for j := len(row); j < len(grown); j++ {
			grown[j] = zero()
		}
		t.M[r] = grown
	}
	for i := 0; i < n; i++ {
		t.ColOwner = append(t.ColOwner, ref{})
	}
	return idxs
}

// AllocVar appends a fresh tracked variable (used by cutdiv.GetDiv to
// introduce a division into a tableau) as a new non-basic column, and
// returns its index into Var.
func (t *Tableau) AllocVar(nonNeg bool) int {
	idxs := t.growCols(1)
	col := idxs[0]
	varIdx := len(t.Var)
	t.Var = append(t.Var, VarLoc{IsRow: false, Index: col, IsNonNeg: nonNeg})
	t.ColOwner[col] = ref{idx: varIdx}
	t.NDiv++
	t.Undo = append(t.Undo, UndoEntry{Kind: UndoAllocVar})
	return varIdx
}

// AddRow materializes coef (length 1+NVar: constant then one coefficient
// per tracked variable, in [param|mid|div] order) against the current
// basis and appends it as a new row owned by a fresh Con record (§4.1).
// eq selects whether the new constraint is an equality (is_nonneg=false)
// or inequality (is_nonneg=true). It returns the new row's index.
func (t *Tableau) AddRow(coef []*big.Int, eq bool) (int, error) {
	nVar := t.NVar()
	if len(coef) != 1+nVar {
		return 0, fmt.Errorf("tableau: AddRow: len(coef)=%d, want %d: %w", len(coef), 1+nVar, ErrInvalidInput)
	}
	off := t.off()
	acc := make(Row, off+t.NCol)
	acc[0] = one()
	acc[1] = new(big.Int).Set(coef[0])
	if t.BigM {
		acc[2] = zero()
	}
	for j := range acc[off:] {
		acc[off+j] = zero()
	}

	for i := 0; i < nVar; i++ {
		c := coef[1+i]
		if c.Sign() == 0 {
			continue
		}
		loc := t.Var[i]
		if !loc.IsRow {
			acc[off+loc.Index] = new(big.Int).Add(acc[off+loc.Index], c)
			continue
		}
		acc = foldRow(acc, c, t.M[loc.Index], off, t.BigM)
	}
	normalizeRow(acc)

	t.M = append(t.M, acc)
	rowIdx := len(t.M) - 1
	conIdx := len(t.Con)
	t.Con = append(t.Con, VarLoc{IsRow: true, Index: rowIdx, IsNonNeg: !eq})
	t.RowOwner = append(t.RowOwner, ref{isCon: true, idx: conIdx})
	t.RowSign = append(t.RowSign, SignUnknown)
	t.Undo = append(t.Undo,
		UndoEntry{Kind: UndoAllocCon},
		UndoEntry{Kind: UndoAddRow, AddedRow: true},
	)
	return rowIdx, nil
}

// foldRow cross-multiplies acc (an accumulating [d,c0,(M?),a...] row) with
// coef*row, the contribution of a basic variable's own row equation, the
// same substitution arithmetic Pivot uses to eliminate a column.
func foldRow(acc Row, coef *big.Int, row Row, off int, bigM bool) Row {
	d, dr := acc[0], row[0]
	k := new(big.Int).Mul(coef, d)
	out := make(Row, len(acc))
	out[0] = new(big.Int).Mul(d, dr)
	out[1] = combine(dr, acc[1], k, row[1])
	if bigM {
		out[2] = combine(dr, acc[2], k, row[2])
	}
	for j := off; j < len(acc); j++ {
		out[j] = combine(dr, acc[j], k, row[j])
	}
	return out
}

// AddRawRow appends a row given directly in the current column space
// (length NCol, no re-materialization against the basis), owned by a
// fresh Con record. It is the primitive cutdiv's cut construction uses:
// a cut is built from an existing row's own column coefficients, already
// expressed against the live basis, and must not be re-substituted.
func (t *Tableau) AddRawRow(denom, c0, mcoef *big.Int, coefs []*big.Int, eq bool) (int, error) {
	if len(coefs) != t.NCol {
		return 0, fmt.Errorf("tableau: AddRawRow: len(coefs)=%d, want %d: %w", len(coefs), t.NCol, ErrInvalidInput)
	}
	off := t.off()
	row := make(Row, off+t.NCol)
	row[0] = new(big.Int).Set(denom)
	row[1] = new(big.Int).Set(c0)
	if t.BigM {
		m := zero()
		if mcoef != nil {
			m = new(big.Int).Set(mcoef)
		}
		row[2] = m
	}
	for j, v := range coefs {
		row[off+j] = new(big.Int).Set(v)
	}
	normalizeRow(row)

	t.M = append(t.M, row)
	rowIdx := len(t.M) - 1
	conIdx := len(t.Con)
	t.Con = append(t.Con, VarLoc{IsRow: true, Index: rowIdx, IsNonNeg: !eq})
	t.RowOwner = append(t.RowOwner, ref{isCon: true, idx: conIdx})
	t.RowSign = append(t.RowSign, SignUnknown)
	t.Undo = append(t.Undo,
		UndoEntry{Kind: UndoAllocCon},
		UndoEntry{Kind: UndoAddRow, AddedRow: true},
	)
	return rowIdx, nil
}

// FoldVarTerm adds coef*variable(varIdx) into an accumulating row given
// as (denom, c0, mcoef, coefs) in column space, the same substitution
// arithmetic AddRow uses internally, exposed for cutdiv's parametric cut
// construction which must account for a division variable that may have
// become basic since it was introduced.
func (t *Tableau) FoldVarTerm(denom, c0, mcoef *big.Int, coefs []*big.Int, coef *big.Int, varIdx int) (*big.Int, *big.Int, *big.Int, []*big.Int) {
	off := t.off()
	acc := make(Row, off+len(coefs))
	acc[0] = denom
	acc[1] = c0
	if t.BigM {
		m := mcoef
		if m == nil {
			m = zero()
		}
		acc[2] = m
	}
	copy(acc[off:], coefs)

	loc := t.Var[varIdx]
	if !loc.IsRow {
		acc[off+loc.Index] = new(big.Int).Add(acc[off+loc.Index], coef)
	} else {
		acc = foldRow(acc, coef, t.M[loc.Index], off, t.BigM)
	}

	newMcoef := (*big.Int)(nil)
	if t.BigM {
		newMcoef = acc[2]
	}
	return acc[0], acc[1], newMcoef, acc[off:]
}

// ReplaceRow overwrites row r's coefficients in place, keeping its
// current owner: the split-div cut of cutdiv rewrites a row's content
// directly once its fractional parametric part has been pinned exact by
// a context equality, rather than retiring it and adding a new one.
func (t *Tableau) ReplaceRow(r int, denom, c0, mcoef *big.Int, coefs []*big.Int) error {
	if r < 0 || r >= len(t.M) {
		return fmt.Errorf("tableau: ReplaceRow(%d): %w", r, ErrInvalidInput)
	}
	if len(coefs) != t.NCol {
		return fmt.Errorf("tableau: ReplaceRow: len(coefs)=%d, want %d: %w", len(coefs), t.NCol, ErrInvalidInput)
	}
	off := t.off()
	row := make(Row, off+t.NCol)
	row[0] = new(big.Int).Set(denom)
	row[1] = new(big.Int).Set(c0)
	if t.BigM {
		m := zero()
		if mcoef != nil {
			m = new(big.Int).Set(mcoef)
		}
		row[2] = m
	}
	for j, v := range coefs {
		row[off+j] = new(big.Int).Set(v)
	}
	normalizeRow(row)

	t.Undo = append(t.Undo, UndoEntry{Kind: UndoReplaceRow, VarIdx: r, ReplacedRow: t.M[r]})
	t.M[r] = row
	return nil
}

// VarValueParts returns the row-normalized (c0, denom, Mcoef) triple for
// tracked variable i: its current sample value is c0/denom (plus the
// Mcoef*M term, symbolically, when BigM). A non-basic (column) variable
// always has value 0 (§3 invariant 5).
func (t *Tableau) VarValueParts(i int) (c0, denom, mcoef *big.Int) {
	loc := t.Var[i]
	if !loc.IsRow {
		return zero(), one(), zero()
	}
	row := t.M[loc.Index]
	m := zero()
	if t.BigM {
		m = row[2]
	}
	return row[1], row[0], m
}

// ConValueParts is VarValueParts for a constraint/slack variable.
func (t *Tableau) ConValueParts(i int) (c0, denom, mcoef *big.Int) {
	loc := t.Con[i]
	if !loc.IsRow {
		return zero(), one(), zero()
	}
	row := t.M[loc.Index]
	m := zero()
	if t.BigM {
		m = row[2]
	}
	return row[1], row[0], m
}

// RowOf returns row index r's coefficient row.
func (t *Tableau) RowOf(r int) Row { return t.M[r] }

// Coef returns row r's coefficient for column slot c.
func (t *Tableau) Coef(r, c int) *big.Int { return t.M[r][t.off()+c] }

// MarkRedundant extends the redundant prefix [0, NRedundant) by one row:
// it just bumps the counter and journals it, without moving any row.
// Consumers skip rows with index < NRedundant by position, so this is
// only correct when rows are marked in the order they were added, before
// any row that is not redundant.
func (t *Tableau) MarkRedundant() {
	t.NRedundant++
	t.Undo = append(t.Undo, UndoEntry{Kind: UndoMarkRedundant})
}

// KillCol freezes column slot c: its owning variable becomes permanently
// pinned at value 0 and is excluded from future pivot search. Physical
// column reordering ("swap to the front") described in §4.1 is replaced
// here by a Frozen marker consulted wherever the design asks for
// "columns >= n_dead" (lexmin.LexPivotCol; cutdiv's Classify does not
// consult it); the effect — dead
// columns never participate in a pivot again — is identical, and the
// marker is trivially reversible under Rollback.
func (t *Tableau) KillCol(c int) error {
	if c < 0 || c >= t.NCol {
		return fmt.Errorf("tableau: KillCol(%d): %w", c, ErrInvalidInput)
	}
	owner := t.ColOwner[c]
	if t.loc(owner).Frozen {
		return nil
	}
	t.setFrozen(owner, true)
	t.Undo = append(t.Undo, UndoEntry{Kind: UndoKillCol, VarIdx: owner.idx, IsCon: owner.isCon})
	t.NDead++
	return nil
}

func (t *Tableau) loc(r ref) VarLoc {
	if r.isCon {
		return t.Con[r.idx]
	}
	return t.Var[r.idx]
}

func (t *Tableau) setFrozen(r ref, frozen bool) {
	if r.isCon {
		t.Con[r.idx].Frozen = frozen
	} else {
		t.Var[r.idx].Frozen = frozen
	}
}

// ColFrozen reports whether column slot c's owning variable has been
// killed.
func (t *Tableau) ColFrozen(c int) bool {
	return t.loc(t.ColOwner[c]).Frozen
}

// ColIsContextVar reports whether column slot c is owned by a parameter
// or div variable (as opposed to a problem variable or a con slack),
// the "is not a context variable" test lex_pivot_col applies (§4.2).
func (t *Tableau) ColIsContextVar(c int) bool {
	owner := t.ColOwner[c]
	if owner.isCon {
		return false
	}
	return owner.idx < t.NParam || owner.idx >= t.NParam+t.NMid
}
