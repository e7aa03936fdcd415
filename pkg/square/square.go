// Package square validates an integer and computes its square.
package square

import (
	"github.com/macropower/fivesquare/pkg/squareerrors"
)

const (
	// Divisor is the number every accepted argument must be a multiple of.
	Divisor = 5

	// RangeStart is the smallest accepted argument.
	RangeStart = 5

	// RangeEnd is the largest accepted argument.
	RangeEnd = 400000
)

// Compute returns number squared.
//
// It returns an [*squareerrors.InvalidArgumentError] if number is not a
// multiple of [Divisor]. Otherwise, it returns an
// [*squareerrors.OutOfRangeError] if number falls outside the inclusive range
// from [RangeStart] to [RangeEnd]. The multiple check always runs first, so 0
// is reported as out of range.
func Compute(number int) (float64, error) {
	if number%Divisor != 0 {
		return 0, squareerrors.NewInvalidArgumentError(number)
	}

	if number < RangeStart || number > RangeEnd {
		return 0, squareerrors.NewOutOfRangeError(number, RangeStart, RangeEnd)
	}

	return float64(number) * float64(number), nil
}
