// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/region"
	"github.com/pilpsolver/pilp/sink"
	"github.com/pilpsolver/pilp/tableau"
)

// PartialLexopt implements partial_lexopt (§6): it drives bmap's
// relation to a full sink.Relation, one polyset.BasicMap piece per
// region of dom where the lex-optimum vertex (lex-min when max is
// false, lex-max otherwise) has uniform affine structure, tracking
// every region where the relation is empty.
func PartialLexopt(bmap *polyset.BasicMap, dom *polyset.BasicSet, max bool, opts ...Option) (*sink.Relation, error) {
	o := gatherOptions(opts...)
	main, ctx, err := build(bmap, dom, max, o)
	if err != nil {
		return nil, err
	}

	rel := sink.NewRelation(bmap.NOut, true)
	collect := func(c *region.Context, m *tableau.Tableau, max bool) error {
		return rel.Add(c, m, max)
	}
	if err := solveVertex(main, ctx, max, 0, o, collect); err != nil {
		return nil, err
	}
	return rel, nil
}
