// SPDX-License-Identifier: MIT

package cutdiv

import "errors"

var ErrInternalInvariant = errors.New("cutdiv: internal invariant violated")
