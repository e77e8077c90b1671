// SPDX-License-Identifier: MIT

package tableau

import "math/big"

// Clone returns a deep copy of t, independent of the original's future
// mutations and undo journal (§5: "Cloning for splits" — the main
// tableau is cloned for the positive recursion of region.Context.Split).
// The clone starts with an empty undo journal; it is a fresh branch, not
// a continuation of the parent's history.
func (t *Tableau) Clone() *Tableau {
	c := &Tableau{
		NParam:     t.NParam,
		NMid:       t.NMid,
		NDiv:       t.NDiv,
		NCol:       t.NCol,
		NDead:      t.NDead,
		NRedundant: t.NRedundant,
		BigM:       t.BigM,
		Rational:   t.Rational,
		Empty:      t.Empty,
		NOutside:   t.NOutside,
	}
	c.M = cloneRows(t.M)
	c.Var = cloneLocs(t.Var)
	c.Con = cloneLocs(t.Con)
	c.RowOwner = cloneRefs(t.RowOwner)
	c.ColOwner = cloneRefs(t.ColOwner)
	c.RowSign = append([]Sign(nil), t.RowSign...)
	if t.Samples != nil {
		c.Samples = make([][]*big.Int, len(t.Samples))
		for i, s := range t.Samples {
			row := make([]*big.Int, len(s))
			for j, v := range s {
				row[j] = new(big.Int).Set(v)
			}
			c.Samples[i] = row
		}
	}
	if t.BSet != nil {
		c.BSet = t.BSet.Copy()
	}
	return c
}
