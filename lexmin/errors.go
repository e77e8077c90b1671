// SPDX-License-Identifier: MIT

package lexmin

import "errors"

// ErrInvalidInput flags malformed coefficient vectors passed to
// AddEquality.
var ErrInvalidInput = errors.New("lexmin: invalid input")
