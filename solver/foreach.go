// SPDX-License-Identifier: MIT

package solver

import (
	"github.com/pilpsolver/pilp/bigrat"
	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/region"
	"github.com/pilpsolver/pilp/sink"
	"github.com/pilpsolver/pilp/tableau"
)

// ForeachLexopt implements foreach_lexopt (§6): rather than assembling a
// sink.Relation, it streams each region's (domain, affine matrix) pair
// to fn as soon as that region's vertex is closed, never holding more
// than one piece in memory at a time.
//
// spec.md's own pseudocode signature, foreach_lexopt(bmap, max, fn,
// user), omits a domain argument; PartialLexopt's signature needs one
// to restrict which part of parameter space is explored, and there is
// no reason for this entry point to behave differently, so dom is
// added here too for symmetry with PartialLexopt rather than silently
// defaulting to "unconstrained".
func ForeachLexopt(bmap *polyset.BasicMap, dom *polyset.BasicSet, max bool, fn func(domain *polyset.BasicSet, matrix [][]bigrat.Val) error, opts ...Option) error {
	o := gatherOptions(opts...)
	main, ctx, err := build(bmap, dom, max, o)
	if err != nil {
		return err
	}

	cb := sink.NewCallback(bmap.NOut, fn)
	collect := func(c *region.Context, m *tableau.Tableau, max bool) error {
		return cb.Add(c, m, max)
	}
	return solveVertex(main, ctx, max, 0, o, collect)
}
