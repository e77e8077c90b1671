// SPDX-License-Identifier: MIT

// Package bigrat supplies the arbitrary-precision integer and rational
// primitives the solver core is built on (contract §6.1 of SPEC_FULL.md).
//
// What & Why:
//
//	Every numeric coefficient in the solver is an arbitrary-precision
//	signed integer. math/big.Int already implements almost all of the
//	required contract natively (Add, Sub, Mul, Neg, Abs, GCD with Bezout
//	coefficients, Cmp, Sign, IsInt64, Lsh for mul_2exp); this package adds
//	only the rounding-division conventions the tableau needs (floor, ceil,
//	truncated, exact) plus Val, the NaN/±Inf-aware rational used solely for
//	I/O (never on the solve path — see SPEC_FULL.md §4 Non-goals).
//
// Complexity:
//
//	Every function here is a thin wrapper around one or two math/big
//	operations; asymptotic cost is whatever math/big charges for the
//	underlying multi-precision operation.
package bigrat
