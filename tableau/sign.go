// SPDX-License-Identifier: MIT

package tableau

import "math/big"

// ObviousSign implements the "obviously negative/non-negative" test of
// §4.2: decisive by the big-M coefficient when present, otherwise by
// the row's constant and parameter coefficients, provided every
// parameter with a non-zero coefficient is itself declared non-negative.
// It returns SignUnknown when the row's sign cannot be read off directly.
func (t *Tableau) ObviousSign(r int) Sign {
	row := t.M[r]
	off := t.off()
	if t.BigM {
		switch row[2].Sign() {
		case 1:
			return SignPos
		case -1:
			return SignNeg
		}
	}
	sign := 0
	note := func(v *big.Int) bool {
		s := v.Sign()
		if s == 0 {
			return true
		}
		if sign == 0 {
			sign = s
			return true
		}
		return sign == s
	}
	if !note(row[1]) {
		return SignUnknown
	}
	for c := 0; c < t.NCol; c++ {
		owner := t.ColOwner[c]
		if owner.isCon || owner.idx >= t.NParam {
			continue
		}
		coef := row[off+c]
		if coef.Sign() == 0 {
			continue
		}
		if !t.Var[owner.idx].IsNonNeg {
			return SignUnknown
		}
		if !note(coef) {
			return SignUnknown
		}
	}
	switch sign {
	case 1:
		return SignPos
	case -1:
		return SignNeg
	default:
		return SignPos
	}
}

// ContextVarOffset maps column slot c, assumed ColIsContextVar(c), to its
// position in the [param_0..param_{NParam-1}, div_0..div_{NDiv-1}]
// layout ParametricConstant uses, for callers (cutdiv's parametric cut)
// building a vector in that same coordinate space directly.
func (t *Tableau) ContextVarOffset(c int) int {
	owner := t.ColOwner[c]
	if owner.idx < t.NParam {
		return owner.idx
	}
	return t.NParam + (owner.idx - t.NParam - t.NMid)
}

// ParametricConstant returns row r's parametric constant (§4.3): the
// constant plus every parameter and context-div coefficient, excluding
// the big-M coefficient. The result has length 1+NParam+NDiv, laid out
// [const, param_0..param_{NParam-1}, div_0..div_{NDiv-1}].
//
// Parameters and divs are assumed non-basic in a main tableau (the only
// elimination path that could make one basic — a pure parameter
// equality with unit coefficient — is handled by routing the equality
// to the context instead, per §4.2); a basic parameter/div therefore
// reads back as zero here, which never arises on the paths this module
// exercises.
func (t *Tableau) ParametricConstant(r int) []*big.Int {
	out := make([]*big.Int, 1+t.NParam+t.NDiv)
	out[0] = new(big.Int).Set(t.M[r][1])
	for i := range out[1:] {
		out[1+i] = zero()
	}
	off := t.off()
	row := t.M[r]
	for c := 0; c < t.NCol; c++ {
		owner := t.ColOwner[c]
		if owner.isCon {
			continue
		}
		switch {
		case owner.idx < t.NParam:
			out[1+owner.idx] = new(big.Int).Set(row[off+c])
		case owner.idx >= t.NParam+t.NMid:
			divIdx := owner.idx - t.NParam - t.NMid
			out[1+t.NParam+divIdx] = new(big.Int).Set(row[off+c])
		}
	}
	return out
}
