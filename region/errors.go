// SPDX-License-Identifier: MIT

package region

import "errors"

// ErrInvalidInput flags a malformed coefficient vector or out-of-range
// row index passed to one of this package's exported functions.
var ErrInvalidInput = errors.New("region: invalid input")
