// SPDX-License-Identifier: MIT

package polyset

// Gauss reduces bm.Eq to row-echelon form using exact integer row
// operations (no division, so it never leaves the integer lattice): for
// each pivot column in turn it finds an equality row with a non-zero
// entry there and eliminates that column from every other equality row
// via row_r = row_r*pivotVal - row_pivot*rowVal, normalizing the result by
// its gcd afterward to keep coefficients small.
//
// It reports empty=true if the reduction produces an equality row whose
// only non-zero entry is the constant column — a direct contradiction
// (0 = k, k != 0) — without requiring a full LP call. This is the
// Gaussian-elimination contract of §6.3, used by sink.Relation to
// canonicalize each emitted piece before appending it to the result.
func (bm *BasicMap) Gauss() (empty bool, err error) {
	eqs := make([]Vec, len(bm.Eq))
	for i, row := range bm.Eq {
		eqs[i] = row.Clone()
	}

	nCols := bm.rowLen()
	rowIdx := 0
	for col := 1; col < nCols && rowIdx < len(eqs); col++ {
		pivot := -1
		for r := rowIdx; r < len(eqs); r++ {
			if eqs[r][col].Sign() != 0 {
				pivot = r
				break
			}
		}
		if pivot == -1 {
			continue
		}
		eqs[rowIdx], eqs[pivot] = eqs[pivot], eqs[rowIdx]

		pv := eqs[rowIdx][col]
		for r := 0; r < len(eqs); r++ {
			if r == rowIdx {
				continue
			}
			ov := eqs[r][col]
			if ov.Sign() == 0 {
				continue
			}
			scaled := eqs[r].Scale(pv)
			sub := eqs[rowIdx].Scale(ov)
			for k := range scaled {
				scaled[k].Sub(scaled[k], sub[k])
			}
			scaled.Normalize()
			eqs[r] = scaled
		}
		rowIdx++
	}

	for _, row := range eqs {
		if row.FirstNonZero() == 0 && row[1:].IsZero() {
			return true, nil
		}
	}
	bm.Eq = eqs
	return false, nil
}

// Finalize runs Gauss followed by Normalize, the combination §4.5 calls
// for when turning a context's accumulated constraints plus a tableau's
// row data into the basic-map of an emitted piece.
func (bm *BasicMap) Finalize() (empty bool, err error) {
	empty, err = bm.Gauss()
	if err != nil || empty {
		return empty, err
	}
	bm.Normalize()
	return false, nil
}
