// SPDX-License-Identifier: MIT

package sink

import "errors"

// ErrUnbounded is returned by Add when an output variable's value
// cannot be read off as a finite affine expression: its big-M
// coefficient fails §4.5's assertion (equal to the row's own
// denominator), meaning the lex-optimum on this branch is unbounded.
var ErrUnbounded = errors.New("sink: unbounded output")
