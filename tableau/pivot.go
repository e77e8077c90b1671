// SPDX-License-Identifier: MIT

package tableau

import (
	"fmt"
	"math/big"
)

// Pivot exchanges the basic variable of row r with the non-basic
// variable of column c (§4.1). Every other row is updated so that column
// c becomes the unit column for the newly basic variable, denominators
// are recombined exactly, and every touched row is reduced by its gcd
// before control returns (§9, numerical normalization).
func (t *Tableau) Pivot(r, c int) error {
	if r < 0 || r >= len(t.M) || c < 0 || c >= t.NCol {
		return fmt.Errorf("tableau: Pivot(%d,%d): %w", r, c, ErrInvalidInput)
	}
	off := t.off()
	pv := t.M[r][off+c]
	if pv.Sign() == 0 {
		return fmt.Errorf("tableau: Pivot(%d,%d): zero pivot element: %w", r, c, ErrInternalInvariant)
	}

	t.Undo = append(t.Undo, UndoEntry{
		Kind:         UndoPivot,
		PrevM:        cloneRows(t.M),
		PrevRowOwner: cloneRefs(t.RowOwner),
		PrevColOwner: cloneRefs(t.ColOwner),
		PrevVar:      cloneLocs(t.Var),
		PrevCon:      cloneLocs(t.Con),
	})

	oldRow := append(Row(nil), t.M[r]...)
	dr := oldRow[0]
	c0r := oldRow[1]
	var mr *big.Int
	if t.BigM {
		mr = oldRow[2]
	}

	flip := pv.Sign() < 0
	sign := func(x *big.Int) *big.Int {
		if flip {
			return new(big.Int).Neg(x)
		}
		return new(big.Int).Set(x)
	}

	dPrime := sign(pv)
	newPivotRow := make(Row, len(oldRow))
	newPivotRow[0] = dPrime
	newPivotRow[1] = sign(new(big.Int).Neg(c0r))
	if t.BigM {
		newPivotRow[2] = sign(new(big.Int).Neg(mr))
	}
	for j := 0; j < t.NCol; j++ {
		if j == c {
			newPivotRow[off+j] = sign(dr)
			continue
		}
		newPivotRow[off+j] = sign(new(big.Int).Neg(oldRow[off+j]))
	}

	for i := range t.M {
		if i == r {
			continue
		}
		a := t.M[i][off+c]
		if a.Sign() == 0 {
			continue
		}
		di := t.M[i][0]
		newRow := make(Row, len(t.M[i]))
		newRow[0] = new(big.Int).Mul(di, dPrime)
		newRow[1] = combine(dPrime, t.M[i][1], a, newPivotRow[1])
		if t.BigM {
			newRow[2] = combine(dPrime, t.M[i][2], a, newPivotRow[2])
		}
		for j := 0; j < t.NCol; j++ {
			if j == c {
				newRow[off+j] = new(big.Int).Mul(a, newPivotRow[off+j])
				continue
			}
			newRow[off+j] = combine(dPrime, t.M[i][off+j], a, newPivotRow[off+j])
		}
		normalizeRow(newRow)
		t.M[i] = newRow
	}

	normalizeRow(newPivotRow)
	t.M[r] = newPivotRow

	rOwner, cOwner := t.RowOwner[r], t.ColOwner[c]
	t.RowOwner[r], t.ColOwner[c] = cOwner, rOwner
	t.assign(cOwner, true, r)
	t.assign(rOwner, false, c)
	return nil
}

// combine computes dPrime*x + a*y, the cross-multiplied substitution
// term shared by the constant, big-M and per-column updates of Pivot.
func combine(dPrime, x, a, y *big.Int) *big.Int {
	out := new(big.Int).Mul(dPrime, x)
	out.Add(out, new(big.Int).Mul(a, y))
	return out
}

// normalizeRow divides row by gcd(d, c0, Mcoef?, a_1..a_n) and restores
// d > 0.
func normalizeRow(row Row) {
	g := new(big.Int).Abs(row[0])
	for _, v := range row[1:] {
		if v.Sign() == 0 {
			continue
		}
		g = new(big.Int).GCD(nil, nil, g, new(big.Int).Abs(v))
	}
	if g.Sign() == 0 {
		g = big.NewInt(1)
	}
	for i, v := range row {
		if v.Sign() == 0 {
			continue
		}
		row[i] = new(big.Int).Quo(v, g)
	}
	if row[0].Sign() < 0 {
		for i, v := range row {
			row[i] = new(big.Int).Neg(v)
		}
	}
}

func (t *Tableau) assign(r ref, isRow bool, idx int) {
	if r.isCon {
		t.Con[r.idx].IsRow = isRow
		t.Con[r.idx].Index = idx
	} else {
		t.Var[r.idx].IsRow = isRow
		t.Var[r.idx].Index = idx
	}
}
