// SPDX-License-Identifier: MIT

package polyset

// BasicSet is a BasicMap with no output dimensions: the conjunction of
// equalities, inequalities and divs over a parameter space alone. The
// context tableau's shadow bset (§3) and the domain dom passed to
// solver.PartialLexopt are both BasicSets.
type BasicSet struct {
	*BasicMap
}

// NewBasicSet allocates an empty BasicSet over nDim dimensions with the
// given reserve capacities.
func NewBasicSet(nDim, capEq, capIneq, capDiv int) (*BasicSet, error) {
	bm, err := NewBasicMap(nDim, 0, capEq, capIneq, capDiv)
	if err != nil {
		return nil, err
	}
	return &BasicSet{BasicMap: bm}, nil
}

// NDim returns the set's dimension count (an alias for NIn, since a
// BasicSet has no output dimensions).
func (bs *BasicSet) NDim() int { return bs.NIn }

// Copy returns a deep clone of bs.
func (bs *BasicSet) Copy() *BasicSet {
	return &BasicSet{BasicMap: bs.BasicMap.Copy()}
}

// AsMap reinterprets bs as the corresponding zero-output-dimension
// BasicMap, useful when a function is written generically against
// BasicMap (e.g. Gauss, Normalize) but called from set-only code.
func (bs *BasicSet) AsMap() *BasicMap { return bs.BasicMap }
