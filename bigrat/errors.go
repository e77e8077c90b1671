// SPDX-License-Identifier: MIT
// Package bigrat: sentinel error set.
//
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. Panics are reserved for programmer errors in private helpers.

package bigrat

import "errors"

var (
	// ErrDivisionByZero is returned by any rounding-division helper when the
	// divisor is zero.
	ErrDivisionByZero = errors.New("bigrat: division by zero")

	// ErrNotExact is returned by DivExact when the dividend is not a whole
	// multiple of the divisor.
	ErrNotExact = errors.New("bigrat: inexact division")

	// ErrOverflow is returned when a value cannot be represented in the
	// target machine type (e.g. Val.Float64 on a value whose magnitude
	// exceeds the float64 range is not this; this is reserved for explicit
	// fits-checks such as FitsInt64).
	ErrOverflow = errors.New("bigrat: arithmetic overflow")

	// ErrNaN is returned by operations that are undefined on a NaN Val
	// (e.g. ordering comparisons).
	ErrNaN = errors.New("bigrat: operation undefined on NaN")
)
