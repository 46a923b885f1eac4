// SPDX-License-Identifier: MIT

package rng

import (
	"errors"
	"fmt"
)

// LCG parameters. The modulus is 2^31, realised as a mask on the low 31 bits.
const (
	Multiplier uint32 = 1103515245
	Increment  uint32 = 12345
	Mask       uint32 = 0x7FFFFFFF
)

// Method names used as error prefixes.
const (
	methodRange = "Range"
	methodPerm  = "Perm"
)

// ErrInvalidRange indicates that Range was called with hi < lo.
// The bounds are never swapped or clamped; the caller has a bug to fix.
var ErrInvalidRange = errors.New("rng: invalid range (max < min)")

// ErrInvalidLength indicates a negative length passed to Perm.
var ErrInvalidLength = errors.New("rng: negative length")

// rngErrorf prefixes a sentinel with the method name and call arguments,
// keeping it reachable through errors.Is.
func rngErrorf(method, format string, sentinel error, args ...interface{}) error {
	return fmt.Errorf("%s: %s: %w", method, fmt.Sprintf(format, args...), sentinel)
}
