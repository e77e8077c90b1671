// SPDX-License-Identifier: MIT

package tableau

import "math/big"

// AddSample appends s as a new live integer sample point over (params,
// context divs) satisfying every constraint currently in bset, per §3's
// "samples are appended, never removed except by the undo journal".
func (t *Tableau) AddSample(s []*big.Int) {
	t.Samples = append(t.Samples, s)
	t.Undo = append(t.Undo, UndoEntry{Kind: UndoAddSample})
}

// DropSample implements drop_sample (§4.3): moves the live sample at
// index i into the [0, n_outside) dropped prefix by swapping it with the
// sample currently at the boundary, then advancing n_outside.
func (t *Tableau) DropSample(i int) {
	t.Samples[i], t.Samples[t.NOutside] = t.Samples[t.NOutside], t.Samples[i]
	t.Undo = append(t.Undo, UndoEntry{Kind: UndoDropSample, SampleIdx: i})
	t.NOutside++
}

// LiveSamples returns the slice of samples not currently dropped.
func (t *Tableau) LiveSamples() [][]*big.Int { return t.Samples[t.NOutside:] }

// SatisfiesIneq reports whether sample s (over params then context
// divs, matching ParametricConstant's [const, param..., div...] layout
// minus the constant) makes ineq >= 0, where ineq is itself laid out
// [const, param_0.., div_0..].
func SatisfiesIneq(ineq []*big.Int, s []*big.Int) bool {
	v := new(big.Int).Set(ineq[0])
	for i, c := range ineq[1:] {
		if i >= len(s) {
			break
		}
		v.Add(v, new(big.Int).Mul(c, s[i]))
	}
	return v.Sign() >= 0
}
