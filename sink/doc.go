// SPDX-License-Identifier: MIT

// Package sink implements C5, the solution sink: the polymorphic
// collector a driver's Add(sol, T) call feeds whenever it terminates a
// branch, either empty or at a finite lex-optimal vertex (§4.5).
//
// What & Why:
//
//	Two collectors share the same per-branch extraction logic (an output
//	variable's affine expression over the context's params and divs,
//	rejected if unbounded): Relation accumulates disjoint basic-map
//	pieces into a polyset.BasicMap slice for partial_lexopt; Callback
//	streams (domain, affine matrix) pairs to a user function for
//	foreach_lexopt, matching §9's "tagged variant rather than a vtable"
//	guidance — both are plain structs implementing the same Sink
//	interface, no shared base type.
package sink
