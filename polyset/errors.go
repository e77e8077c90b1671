// SPDX-License-Identifier: MIT
// Package polyset: sentinel error set (unified, consistent).
//
// All algorithms MUST return these sentinels and tests MUST check them via
// errors.Is. ERROR PRIORITY: shape/index -> dimension mismatch -> structural
// violations.

package polyset

import "errors"

var (
	// ErrBadShape is returned when a requested vector/matrix shape is
	// invalid (e.g. a negative dimension count).
	ErrBadShape = errors.New("polyset: invalid shape")

	// ErrOutOfRange indicates an index outside the valid bounds of a
	// vector, row list or div list.
	ErrOutOfRange = errors.New("polyset: index out of range")

	// ErrDimensionMismatch indicates incompatible row/column lengths
	// between operands.
	ErrDimensionMismatch = errors.New("polyset: dimension mismatch")

	// ErrZeroDivisor is returned by AppendDiv when a division's
	// denominator is zero.
	ErrZeroDivisor = errors.New("polyset: zero divisor")

	// ErrNoPivot names the case of a column with no non-zero entry left to
	// pivot on. Gauss does not return it: it skips such a column and
	// always returns a nil error.
	ErrNoPivot = errors.New("polyset: no pivot available")
)
