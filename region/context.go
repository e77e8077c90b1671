// SPDX-License-Identifier: MIT

package region

import (
	"math/big"

	"github.com/pilpsolver/pilp/lexmin"
	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/tableau"
)

// Div mirrors one entry of Context.BSet().Div, adding the bookkeeping
// isl_tab_pip.c keeps on the side (§3 SUPPLEMENTED FEATURES item 4):
// whether the division has since been pinned to an equality by a
// split-div cut. The flag is set only through MarkDivFrozen, which no
// package in this module calls, and BestSplit does not consult it.
type Div struct {
	Frozen bool
}

// Context is a parameter-only tableau.Tableau paired with its
// polyset.BasicSet shadow and the integer sample points row_sign and
// context_is_feasible maintain against it (§4.3).
type Context struct {
	T    *tableau.Tableau
	BSet *polyset.BasicSet
	Divs []Div
}

// New allocates an empty context over nParam parameters.
func New(nParam, capEq, capIneq, capDiv int) (*Context, error) {
	bset, err := polyset.NewBasicSet(nParam, capEq, capIneq, capDiv)
	if err != nil {
		return nil, err
	}
	t := tableau.New(nParam, 0, 0, false, false)
	t.BSet = bset
	return &Context{T: t, BSet: bset}, nil
}

// Clone returns a deep, independent copy of c: its tableau, BasicSet and
// samples all copied (tableau.Tableau.Clone already copies BSet and
// Samples), so mutating the clone — adding rows, cutting, introducing
// divisions — never touches c.
func (c *Context) Clone() *Context {
	t2 := c.T.Clone()
	return &Context{T: t2, BSet: t2.BSet, Divs: append([]Div(nil), c.Divs...)}
}

// syncDivs appends an unfrozen Div record for every division GetDiv has
// introduced into BSet since the last sync: cutdiv's GetDiv knows
// nothing about region.Context, so this package's own Divs bookkeeping
// can only ever trail BSet.Div and must be caught up explicitly after
// any call that might have grown it.
func (c *Context) syncDivs() {
	for len(c.Divs) < len(c.BSet.Div) {
		c.Divs = append(c.Divs, Div{})
	}
}

// MarkDivFrozen pins division i as no longer eligible for a later
// split: the caller that just ran a split-div cut against this
// division's defining equality is the only one that knows which index
// that was, so this is an explicit setter rather than something region
// infers on its own.
func (c *Context) MarkDivFrozen(i int) {
	c.syncDivs()
	if i >= 0 && i < len(c.Divs) {
		c.Divs[i].Frozen = true
	}
}

// AddInequality adds coef >= 0 to the context: materializes it against
// the context tableau, restores lex-minimality, records it in the
// shadow BasicSet, and drops any live sample that no longer satisfies
// it. coef is laid out [const, param_0.., div_0..], matching the
// context tableau's own variable space.
func AddInequality(c *Context, coef []*big.Int) error {
	if len(coef) != 1+c.T.NVar() {
		return ErrInvalidInput
	}
	if _, err := c.T.AddRow(coef, false); err != nil {
		return err
	}
	if err := lexmin.RestoreLexmin(c.T); err != nil {
		return err
	}
	c.syncDivs()
	if c.T.Empty {
		return nil
	}
	if err := c.BSet.AppendIneq(polyset.Vec(coef)); err != nil {
		return err
	}
	dropFailingSamples(c.T, coef, false)
	return nil
}

// AddEquality adds coef == 0 to the context, via lexmin's equality
// elimination ladder (a context tableau has no problem variables, so
// this always resolves to a unit-coefficient parameter elimination or
// the two-inequality fallback, never the mid-variable path).
func AddEquality(c *Context, coef []*big.Int) error {
	if len(coef) != 1+c.T.NVar() {
		return ErrInvalidInput
	}
	if err := lexmin.AddEquality(c.T, coef); err != nil {
		return err
	}
	c.syncDivs()
	if c.T.Empty {
		return nil
	}
	if err := c.BSet.AppendEq(polyset.Vec(coef)); err != nil {
		return err
	}
	dropFailingSamples(c.T, coef, true)
	return nil
}

// dropFailingSamples moves every live sample that no longer satisfies
// coef (as an equality when eq is set, an inequality otherwise) into the
// dropped prefix, per §4.3's "sample maintenance" paragraph. It walks
// the live region from its current start. DropSample swaps the failing
// sample with the first live one, which the walk has already tested (or
// which is the failing sample itself), so the walk advances after a drop
// as well as after a pass.
func dropFailingSamples(t *tableau.Tableau, coef []*big.Int, eq bool) {
	i := t.NOutside
	for i < len(t.Samples) {
		ok := tableau.SatisfiesIneq(coef, t.Samples[i])
		if ok && eq {
			ok = tableau.SatisfiesIneq(negateVec(coef), t.Samples[i])
		}
		if !ok {
			t.DropSample(i)
		}
		i++
	}
}

func negateVec(v []*big.Int) []*big.Int {
	out := make([]*big.Int, len(v))
	for i, x := range v {
		out[i] = new(big.Int).Neg(x)
	}
	return out
}
