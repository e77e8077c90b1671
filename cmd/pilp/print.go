// SPDX-License-Identifier: MIT

package main

import (
	"math/big"
	"strconv"
	"strings"

	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/sink"
)

// printRelation renders rel the way the CLI's own tests check (§2.1, §6.4):
// one block per piece, each row of its Eq/Ineq spelled out in terms of the
// problem's own param/var names rather than raw column indices, followed by
// one line per region where no integer solution exists.
func printRelation(p *polyset.Printer, prob *problem, rel *sink.Relation) error {
	for i, piece := range rel.Pieces {
		if err := p.Printf("piece %d:\n", i); err != nil {
			return err
		}
		if err := printRows(p, prob, piece, piece.Eq, "="); err != nil {
			return err
		}
		if err := printRows(p, prob, piece, piece.Ineq, ">="); err != nil {
			return err
		}
	}
	for _, empty := range rel.Empty {
		if err := p.PrintString("no integer solution where:\n"); err != nil {
			return err
		}
		if err := printRows(p, prob, empty.AsMap(), empty.Eq, "="); err != nil {
			return err
		}
		if err := printRows(p, prob, empty.AsMap(), empty.Ineq, ">="); err != nil {
			return err
		}
	}
	return nil
}

func printRows(p *polyset.Printer, prob *problem, bm *polyset.BasicMap, rows []polyset.Vec, rel string) error {
	for _, row := range rows {
		if err := p.PrintString("  " + formatRow(prob, bm, row, rel) + "\n"); err != nil {
			return err
		}
	}
	return nil
}

// formatRow spells out row . (1, in, out, div) rel 0 as a sum of named
// terms, skipping any zero coefficient, matching polyset.Printer's role as
// the module's one diagnostic-formatting seam (§6.4).
func formatRow(prob *problem, bm *polyset.BasicMap, row polyset.Vec, rel string) string {
	var terms []string
	if row[0].Sign() != 0 {
		terms = append(terms, row[0].String())
	}
	for i := 0; i < bm.NIn; i++ {
		terms = append(terms, term(row[1+i], name(prob.Params, i))...)
	}
	for i := 0; i < bm.NOut; i++ {
		terms = append(terms, term(row[1+bm.NIn+i], name(prob.Vars, i))...)
	}
	for i := range bm.Div {
		terms = append(terms, term(row[1+bm.NIn+bm.NOut+i], divName(i))...)
	}
	if len(terms) == 0 {
		terms = []string{"0"}
	}
	return strings.Join(terms, " + ") + " " + rel + " 0"
}

// term returns a single-element slice holding "coef*label" (or just
// "label"/"-label" for unit coefficients), or nil when coef is zero.
func term(coef *big.Int, label string) []string {
	switch {
	case coef.Sign() == 0:
		return nil
	case coef.Cmp(big.NewInt(1)) == 0:
		return []string{label}
	case coef.Cmp(big.NewInt(-1)) == 0:
		return []string{"-" + label}
	default:
		return []string{coef.String() + "*" + label}
	}
}

func name(names []string, i int) string {
	if i < len(names) {
		return names[i]
	}
	return "v" + strconv.Itoa(i)
}

func divName(i int) string { return "q" + strconv.Itoa(i) }
