// SPDX-License-Identifier: MIT

package solver

import "errors"

// Sentinel errors surfaced at the boundary (§6, §7). This package wraps
// them with fmt.Errorf("...: %w", ...) in two places only: build's input
// checks (ErrInvalidInput) and the WithMaxSplits cap
// (ErrInternalInvariant). Internal packages' own sentinels
// (tableau.ErrInvalidInput, region.ErrInvalidInput,
// cutdiv.ErrInternalInvariant, ...) are returned as they are, not
// wrapped into these kinds.
var (
	// ErrInvalidInput flags caller misuse: an incompatible domain, a
	// malformed basic map, a divisor of zero on input.
	ErrInvalidInput = errors.New("solver: invalid input")

	// ErrArithmeticOverflow flags a resource-exhaustion failure: the
	// arbitrary-precision backend could not allocate, or a
	// fits_signed_long-style check failed. math/big never actually
	// fails to allocate in practice, so in this implementation the
	// sentinel exists for interface completeness (§6's three error
	// kinds) rather than a path this module's own code can trigger.
	ErrArithmeticOverflow = errors.New("solver: arithmetic overflow")

	// ErrInternalInvariant flags a state the design forbids: a pivot
	// column search that finds none while one is guaranteed to exist,
	// a context that becomes infeasible where the algorithm assumes it
	// cannot, or a configured split-depth cap (WithMaxSplits) exceeded.
	ErrInternalInvariant = errors.New("solver: internal invariant violated")
)
