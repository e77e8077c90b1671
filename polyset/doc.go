// SPDX-License-Identifier: MIT

// Package polyset implements the polyhedral-library contracts the solver
// core treats as external collaborators (§6.2–§6.3 of SPEC_FULL.md):
// arbitrary-precision vectors, a minimal matrix helper, and the
// basic-set/basic-map containers used both to accumulate a context region
// (region.Context) and to hold a finalized emitted piece (sink.Relation).
//
// What & Why:
//
//	The solver core never represents a constraint system as anything other
//	than rows of a tableau while actively pivoting; polyset is the
//	exact-arithmetic bookkeeping layer used (a) to build the constraint
//	rows handed to tableau.New, and (b) to hold the final, Gauss-reduced
//	output once a branch of the recursion terminates. It intentionally
//	knows nothing about pivoting, row-sign classification or cuts.
//
// Complexity:
//
//	Vec operations are O(len(v)). BasicSet.Gauss is O(n_eq * n_dim^2) in
//	the worst case, matching a dense Gaussian elimination pass.
package polyset
