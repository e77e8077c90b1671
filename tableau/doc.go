// SPDX-License-Identifier: MIT

// Package tableau implements C1, the rational parametric tableau: a
// revised-simplex matrix over arbitrary-precision integers with a common
// per-row denominator, an optional symbolic big-parameter (M) column, a
// row/column ↔ variable mapping, and an explicit undo journal.
//
// What & Why:
//
//	Every coefficient the solver ever manipulates lives in exactly one
//	Tableau row, laid out as [d, c0, (M-coef?), a_1, ..., a_n] (§3). This
//	package owns that layout, the classical simplex Pivot, row insertion
//	(AddRow does not detect redundancy; callers record it with
//	MarkRedundant), and the undo discipline every mutating
//	operation must honor (§5). It deliberately knows nothing about lex-min
//	pivoting strategy (lexmin), parameter-space splitting (region) or
//	integer cuts (cutdiv) — those packages drive a Tableau, they don't
//	extend its invariants.
//
// Complexity:
//
//	Pivot touches every row once: O(n_row * n_col) per pivot, each entry
//	costing a multi-precision multiply/subtract. AddRow is O(n_row) to
//	materialize against the current basis.
package tableau
