// SPDX-License-Identifier: MIT

package tableau

import (
	"math/big"

	"github.com/pilpsolver/pilp/polyset"
)

// Sign is the row-sign classification of §4.3, cached per row of a
// parametric main tableau.
type Sign int

const (
	SignUnknown Sign = iota
	SignPos
	SignNeg
	SignAny
)

func (s Sign) String() string {
	switch s {
	case SignPos:
		return "pos"
	case SignNeg:
		return "neg"
	case SignAny:
		return "any"
	default:
		return "unknown"
	}
}

// ref names the variable or constraint occupying a row or column slot.
// IsCon distinguishes the con[] table (constraint/slack variables) from
// the var[] table (parameter, problem and div variables).
type ref struct {
	isCon bool
	idx   int
}

// VarLoc is a var[] or con[] record (§3): where the variable currently
// lives, whether it is pinned non-negative, and whether its column has
// been frozen ("killed") by an equality elimination.
type VarLoc struct {
	IsRow    bool
	Index    int // row index if IsRow, else column slot
	IsNonNeg bool
	Frozen   bool
}

// Tableau is the rational parametric tableau of C1: a dense
// arbitrary-precision matrix with a per-row denominator, an optional
// symbolic big-M column, a row/column-to-variable mapping, and an undo
// journal (§5).
//
// Coordinate space: the tracked variables are laid out
// [parameters (NParam) | problem variables (NMid) | context divs (NDiv)],
// matching §3's "first n_param and last n_div are context-shared".
type Tableau struct {
	M []Row // M[r] is row r's coefficients: [d, c0, (Mcoef?), a_0..a_{NCol-1}]

	NParam int
	NMid   int
	NDiv   int

	NCol       int
	NDead      int
	NRedundant int

	BigM     bool
	Rational bool
	Empty    bool

	Var []VarLoc // length NParam+NMid+NDiv
	Con []VarLoc // grows by one per added constraint

	RowOwner []ref // length len(M); which Var/Con occupies each row
	ColOwner []ref // length NCol; which Var/Con occupies each column slot

	RowSign []Sign // length len(M), meaningful only when BigM/parametric

	// Samples holds integer points over (parameters, context divs)
	// satisfying every constraint currently in BSet, with the first
	// NOutside rows marked dropped (§3, §4.3). Populated only on context
	// tableaux; nil on main tableaux.
	Samples   [][]*big.Int
	NOutside  int
	BSet      *polyset.BasicSet // shadow; nil on main tableaux

	// NEq counts equalities eliminated via column pivot+kill (§4.2); it is
	// a diagnostic counter, not load-bearing for any invariant.
	NEq int

	Undo []UndoEntry
}

// RowOwnerLoc returns the VarLoc record of whichever Var or Con owns
// row r.
func (t *Tableau) RowOwnerLoc(r int) VarLoc { return t.loc(t.RowOwner[r]) }

// ColOwnerLoc returns the VarLoc record of whichever Var or Con owns
// column slot c.
func (t *Tableau) ColOwnerLoc(c int) VarLoc { return t.loc(t.ColOwner[c]) }

// Row is one coefficient row of the matrix.
type Row []*big.Int

// NVar is the total number of tracked variables.
func (t *Tableau) NVar() int { return t.NParam + t.NMid + t.NDiv }

// off is the column offset where problem/parameter coefficients begin:
// 2 for [d, c0, ...], 3 when a big-M column is present.
func (t *Tableau) off() int {
	if t.BigM {
		return 3
	}
	return 2
}

// Off is the exported form of off, for packages building rows directly
// in column space (cutdiv's cut construction, sink's emission).
func (t *Tableau) Off() int { return t.off() }

// NRow is the current number of rows, the redundant prefix included,
// i.e. len(M).
func (t *Tableau) NRow() int { return len(t.M) }

// IsContext reports whether t carries a basic-set shadow, i.e. is a
// context tableau rather than a main tableau.
func (t *Tableau) IsContext() bool { return t.BSet != nil }

func zero() *big.Int { return big.NewInt(0) }
func one() *big.Int  { return big.NewInt(1) }
