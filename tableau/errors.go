// SPDX-License-Identifier: MIT

package tableau

import "errors"

// Sentinel errors returned by this package. Callers compose them with
// fmt.Errorf("...: %w", ...) and test with errors.Is.
var (
	// ErrInvalidInput flags caller misuse: bad dimensions, out-of-range
	// row/column indices, malformed divisors.
	ErrInvalidInput = errors.New("tableau: invalid input")

	// ErrInternalInvariant flags a state the design forbids: pivoting on
	// a zero element, operating on a dead row, or a lex_pivot_col search
	// that finds no column while the design guarantees one must exist.
	ErrInternalInvariant = errors.New("tableau: internal invariant violated")

	// ErrEmpty is returned by operations that require a feasible tableau
	// when the tableau has already been marked empty.
	ErrEmpty = errors.New("tableau: operation on empty tableau")
)
