// SPDX-License-Identifier: MIT

package sink

import (
	"math/big"

	"github.com/pilpsolver/pilp/polyset"
	"github.com/pilpsolver/pilp/region"
	"github.com/pilpsolver/pilp/tableau"
)

// Relation accumulates disjoint basic-map pieces, the collector
// partial_lexopt drives (§4.5).
type Relation struct {
	NOut       int
	TrackEmpty bool

	Pieces []*polyset.BasicMap
	Empty  []*polyset.BasicSet
}

// NewRelation allocates an empty Relation over nOut output variables.
// When trackEmpty is set, branches that terminate on an empty tableau
// have their context's basic-set recorded in Empty.
func NewRelation(nOut int, trackEmpty bool) *Relation {
	return &Relation{NOut: nOut, TrackEmpty: trackEmpty}
}

// Add implements Sink for the relation collector.
func (r *Relation) Add(c *region.Context, main *tableau.Tableau, max bool) error {
	if main.Empty {
		if r.TrackEmpty {
			r.Empty = append(r.Empty, c.BSet.Copy())
		}
		return nil
	}

	bm, err := r.buildPiece(c, main, max)
	if err != nil {
		return err
	}
	empty, err := bm.Finalize()
	if err != nil {
		return err
	}
	if empty {
		if r.TrackEmpty {
			r.Empty = append(r.Empty, c.BSet.Copy())
		}
		return nil
	}
	r.Pieces = append(r.Pieces, bm)
	return nil
}

// buildPiece constructs the basic-map for one emitted piece: its domain
// constraints copied from the context's basic-set — params as input
// dimensions, the context's divs carried over as the map's own divs —
// widened to make room for the output block, plus one equality row per
// output variable pinning its value (§4.5).
func (r *Relation) buildPiece(c *region.Context, main *tableau.Tableau, max bool) (*polyset.BasicMap, error) {
	nIn := c.BSet.NIn
	nDiv := len(c.BSet.Div)
	bm, err := polyset.NewBasicMap(nIn, r.NOut, len(c.BSet.Eq)+r.NOut, len(c.BSet.Ineq), nDiv)
	if err != nil {
		return nil, err
	}
	bm.Div = make([]polyset.Div, nDiv)
	for i, d := range c.BSet.Div {
		bm.Div[i] = d.Clone()
	}

	widen := func(row polyset.Vec) polyset.Vec {
		out := make(polyset.Vec, len(row)+r.NOut)
		copy(out, row[:1+nIn])
		for i := 0; i < r.NOut; i++ {
			out[1+nIn+i] = big.NewInt(0)
		}
		copy(out[1+nIn+r.NOut:], row[1+nIn:])
		return out
	}

	for _, row := range c.BSet.Eq {
		if err := bm.AppendEq(widen(row)); err != nil {
			return nil, err
		}
	}
	for _, row := range c.BSet.Ineq {
		if err := bm.AppendIneq(widen(row)); err != nil {
			return nil, err
		}
	}

	for i := 0; i < r.NOut; i++ {
		varIdx := main.NParam + i
		num, den, err := affineRow(main, varIdx, nIn, nDiv, max)
		if err != nil {
			return nil, err
		}
		row := make(polyset.Vec, 1+nIn+r.NOut+nDiv)
		row[0] = new(big.Int).Neg(num[0])
		for j := 1; j <= nIn; j++ {
			row[j] = new(big.Int).Neg(num[j])
		}
		for j := 0; j < r.NOut; j++ {
			row[1+nIn+j] = big.NewInt(0)
		}
		row[1+nIn+i] = new(big.Int).Set(den)
		for j := 0; j < nDiv; j++ {
			row[1+nIn+r.NOut+j] = new(big.Int).Neg(num[1+nIn+j])
		}
		if err := bm.AppendEq(row); err != nil {
			return nil, err
		}
	}
	return bm, nil
}
