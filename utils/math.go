package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// Rounding selects the division rounding direction for a conversion. Callers
// choose it per call site: paths that credit the depositor round down, paths
// that charge the depositor round up.
type Rounding uint8

const (
	// RoundDown floors the division result.
	RoundDown Rounding = iota
	// RoundUp ceils the division result.
	RoundUp
)

// MulDiv returns a * b / d at full intermediate precision with the requested
// rounding. The multiply happens first; dividing first would silently lose
// precision. Error if any input is negative or the denominator is zero.
func MulDiv(a, b, d math.Int, rounding Rounding) (math.Int, error) {
	if a.IsNegative() || b.IsNegative() || d.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if d.IsZero() {
		return math.Int{}, fmt.Errorf("invalid input: zero denominator")
	}

	num := a.Mul(b)
	quo := num.Quo(d)
	if rounding == RoundUp && !num.Mod(d).IsZero() {
		quo = quo.AddRaw(1)
	}
	return quo, nil
}
