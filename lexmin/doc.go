// SPDX-License-Identifier: MIT

// Package lexmin implements C2, the lexicographic pivoting driver: it
// pivots a tableau.Tableau to its lexicographically smallest feasible
// vertex, resolving violated non-negativity rows one at a time, and
// handles equality insertion (AddEquality; there is no separate
// "possibly invalid" equality variant).
//
// What & Why:
//
//	RestoreLexmin never inspects parameters or context state; it only
//	ever needs the current row, its obvious sign, and the column search
//	of LexPivotCol (§4.2). Callers that need row-sign classification
//	against a context (region) or integer cuts (cutdiv) run on top of an
//	already lex-min tableau produced here.
package lexmin
