// SPDX-License-Identifier: MIT

// Package solver ties C1-C5 together behind the two entry points of §6:
// PartialLexopt and ForeachLexopt. It owns the depth-first recursion
// that drives a main tableau to a lex-optimal integer (or, under
// WithRational, rational) vertex over every region of a parametric
// domain, splitting the context wherever a row's sign depends on which
// region of parameter space it is evaluated in.
//
// What & Why:
//
//	The package is a pure function of its inputs (§6: "Persisted state:
//	none"): every call allocates its own tableau.Tableau and
//	region.Context and returns or streams results without touching any
//	package-level state.
package solver
