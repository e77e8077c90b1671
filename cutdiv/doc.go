// SPDX-License-Identifier: MIT

// Package cutdiv implements C4, the cut & div engine: once a branch has
// pivoted to a rational lex-min vertex, it enforces integrality row by
// row, classifying each fractional row into a non-parametric cut, a
// parametric cut, or a split-div cut, and introduces integer divisions
// shared between the main and context tableaux.
//
// What & Why:
//
//	This package never constructs or owns a context: GetDiv and Close take
//	a context tableau.Tableau and polyset.BasicSet as plain parameters,
//	so region (which owns the Context type) can depend on cutdiv for
//	cut_to_integer_lexmin without a import cycle.
package cutdiv
