// (c) 2019-2020, Ava Labs, Inc. All rights reserved.
// See the file LICENSE for licensing terms.

// Package math provides overflow-checked arithmetic. Amounts are uint64
// everywhere in the wire format; additions that would wrap are rejected
// rather than producing a silently wrong balance.
package math

import (
	"errors"
	stdmath "math"
)

// ErrOverflow is returned when an addition would wrap around.
var ErrOverflow = errors.New("overflow occurred")

// Add64 returns a + b, or ErrOverflow if the sum doesn't fit in a uint64.
func Add64(a, b uint64) (uint64, error) {
	if a > stdmath.MaxUint64-b {
		return 0, ErrOverflow
	}
	return a + b, nil
}

// Sub64 returns a - b, or ErrOverflow if b > a.
func Sub64(a, b uint64) (uint64, error) {
	if b > a {
		return 0, ErrOverflow
	}
	return a - b, nil
}
