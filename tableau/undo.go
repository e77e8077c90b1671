// SPDX-License-Identifier: MIT

package tableau

import "math/big"

// UndoKind tags one entry of the undo journal (§5, §9: "Undo journal as
// explicit enum").
type UndoKind int

const (
	UndoPivot UndoKind = iota
	UndoMarkRedundant
	UndoDropSample
	UndoPushBasis
	UndoAllocVar
	UndoAllocCon
	UndoNonNeg
	UndoAddRow
	UndoKillCol
	UndoReplaceRow
	UndoAddSample
)

// UndoEntry is one journal record. Only the fields relevant to Kind are
// populated; the rest are zero.
type UndoEntry struct {
	Kind UndoKind

	// UndoPivot restores the whole matrix and the row/column owner maps
	// as they stood immediately before the pivot. Pivoting touches every
	// row, so anything less than a full snapshot cannot be undone
	// exactly; §9 explicitly leaves the undo representation to the
	// implementer.
	PrevM        []Row
	PrevRowOwner []ref
	PrevColOwner []ref
	PrevVar      []VarLoc
	PrevCon      []VarLoc

	SampleIdx int // UndoDropSample: index moved below NOutside
	SampleRow []*big.Int

	VarIdx int // UndoAllocVar/AllocCon/NonNeg/KillCol: index into Var or Con
	IsCon  bool

	AddedRow bool // UndoAddRow: a row (true) or column (false) was appended

	ReplacedRow Row // UndoReplaceRow: row r's content before ReplaceRow overwrote it
}

// Mark returns a snapshot token: the current journal length. Rollback to
// this token undoes everything logged since.
func (t *Tableau) Mark() int { return len(t.Undo) }

// PushBasis records an explicit checkpoint, matching the
// "snap = snap(T); push_basis(T); ...; rollback(T, snap)" discipline of
// §5. It carries no payload; its presence just anchors Mark/Rollback
// pairs for callers that want a named checkpoint distinct from len(Undo).
func (t *Tableau) PushBasis() {
	t.Undo = append(t.Undo, UndoEntry{Kind: UndoPushBasis})
}

// Rollback replays the journal in reverse down to (and including) token,
// restoring every logged mutation.
func (t *Tableau) Rollback(token int) error {
	for len(t.Undo) > token {
		e := t.Undo[len(t.Undo)-1]
		t.Undo = t.Undo[:len(t.Undo)-1]
		if err := t.undoOne(e); err != nil {
			return err
		}
	}
	return nil
}

func (t *Tableau) undoOne(e UndoEntry) error {
	switch e.Kind {
	case UndoPushBasis:
		return nil
	case UndoPivot:
		return t.undoPivot(e)
	case UndoMarkRedundant:
		t.NRedundant--
		return nil
	case UndoDropSample:
		t.NOutside--
		t.Samples[e.SampleIdx], t.Samples[t.NOutside] = t.Samples[t.NOutside], t.Samples[e.SampleIdx]
		return nil
	case UndoAddSample:
		t.Samples = t.Samples[:len(t.Samples)-1]
		return nil
	case UndoAllocVar:
		// AllocVar always grows NCol by exactly one column, appended at
		// the end (growCols has no other caller), so undoing it is the
		// exact mirror: drop that trailing column from every row, the
		// ColOwner slot, and the Var record that named it.
		t.Var = t.Var[:len(t.Var)-1]
		t.ColOwner = t.ColOwner[:len(t.ColOwner)-1]
		t.NCol--
		t.NDiv--
		off := t.off()
		for r := range t.M {
			t.M[r] = t.M[r][:off+t.NCol]
		}
		return nil
	case UndoAllocCon:
		t.Con = t.Con[:len(t.Con)-1]
		return nil
	case UndoNonNeg:
		if e.IsCon {
			t.Con[e.VarIdx].IsNonNeg = false
		} else {
			t.Var[e.VarIdx].IsNonNeg = false
		}
		return nil
	case UndoKillCol:
		if e.IsCon {
			t.Con[e.VarIdx].Frozen = false
		} else {
			t.Var[e.VarIdx].Frozen = false
		}
		t.NDead--
		return nil
	case UndoAddRow:
		if e.AddedRow {
			t.M = t.M[:len(t.M)-1]
			t.RowOwner = t.RowOwner[:len(t.RowOwner)-1]
			t.RowSign = t.RowSign[:len(t.RowSign)-1]
		}
		return nil
	case UndoReplaceRow:
		t.M[e.VarIdx] = e.ReplacedRow
		return nil
	default:
		return ErrInternalInvariant
	}
}

func (t *Tableau) undoPivot(e UndoEntry) error {
	t.M = e.PrevM
	t.RowOwner = e.PrevRowOwner
	t.ColOwner = e.PrevColOwner
	t.Var = e.PrevVar
	t.Con = e.PrevCon
	return nil
}

func cloneRows(rows []Row) []Row {
	out := make([]Row, len(rows))
	for i, r := range rows {
		out[i] = append(Row(nil), r...)
	}
	return out
}

func cloneRefs(rs []ref) []ref { return append([]ref(nil), rs...) }

func cloneLocs(ls []VarLoc) []VarLoc { return append([]VarLoc(nil), ls...) }
