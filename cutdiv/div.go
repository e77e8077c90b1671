// SPDX-License-Identifier: MIT

package cutdiv

import (
	"math/big"

	"github.com/pilpsolver/pilp/bigrat"
	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/tableau"
)

// GetDiv implements get_div (§4.4): it finds an existing division in
// ctxBSet structurally equal to div, or introduces a fresh one into both
// main and ctx in lockstep, adding the two canonical inequalities to ctx
// and extending every existing context sample by floor(e*sample/m) on
// the new coordinate. It returns the new division's tracked-variable
// index in main and in ctx.
func GetDiv(main, ctx *tableau.Tableau, ctxBSet *polyset.BasicSet, div polyset.Div) (mainIdx, ctxIdx int, err error) {
	if i := ctxBSet.FindDiv(div); i >= 0 {
		return main.NParam + main.NMid + i, ctx.NParam + i, nil
	}

	if _, err = ctxBSet.AppendDiv(div); err != nil {
		return 0, 0, err
	}
	ctxIdx = ctx.AllocVar(false)
	mainIdx = main.AllocVar(false)

	m := div.Denom
	e := make([]*big.Int, 1+ctx.NVar())
	for i, v := range div.Expr {
		e[i] = new(big.Int).Set(v)
	}
	for i := len(div.Expr); i < len(e); i++ {
		e[i] = big.NewInt(0)
	}

	first := append([]*big.Int(nil), e...)
	first[1+ctxIdx] = new(big.Int).Sub(first[1+ctxIdx], m)
	if _, err = ctx.AddRow(first, false); err != nil {
		return 0, 0, err
	}

	second := make([]*big.Int, len(e))
	for i, v := range e {
		second[i] = new(big.Int).Neg(v)
	}
	second[1+ctxIdx] = new(big.Int).Add(second[1+ctxIdx], m)
	second[0] = new(big.Int).Add(second[0], new(big.Int).Sub(m, big.NewInt(1)))
	if _, err = ctx.AddRow(second, false); err != nil {
		return 0, 0, err
	}

	extendSamples(ctx, div, m)
	return mainIdx, ctxIdx, nil
}

// extendSamples appends floor(e.sample/m) as the new coordinate of every
// existing context sample.
func extendSamples(ctx *tableau.Tableau, div polyset.Div, m *big.Int) {
	for i, s := range ctx.Samples {
		num := new(big.Int).Set(div.Expr[0])
		for j, v := range div.Expr[1:] {
			if j < len(s) {
				num.Add(num, new(big.Int).Mul(v, s[j]))
			}
		}
		q, _, _ := bigrat.FloorDiv(num, m)
		ctx.Samples[i] = append(s, q)
	}
}
