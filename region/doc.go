// SPDX-License-Identifier: MIT

// Package region implements C3, the context manager: a Context wraps a
// parameter-only tableau.Tableau together with its polyset.BasicSet
// shadow and tracks the integer sample points used to classify a main
// tableau row's sign against that context without resolving the full
// integer program every time (§4.3).
//
// What & Why:
//
//	row_sign's sample-based guess and context_is_feasible's cut-then-
//	rollback both need a tableau that already knows how to pivot, cut and
//	undo (tableau, lexmin, cutdiv); region only adds the bookkeeping
//	those packages don't own: sample maintenance, sign caching, and the
//	split recursion that forks a context into two branches.
package region
