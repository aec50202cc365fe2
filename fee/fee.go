// Package fee holds the pure yield-fee computation used by the vault keeper.
// It has no state; the keeper supplies balances and configuration.
package fee

import (
	"fmt"

	cosmosmath "cosmossdk.io/math"
)

// Precision is the fixed-point denominator for fee percentages.
// A percentage equal to Precision is 100%.
const Precision = uint64(1_000_000_000)

// ValidatePercentage rejects percentages above Precision.
func ValidatePercentage(percentage uint64) error {
	if percentage > Precision {
		return fmt.Errorf("fee percentage %d exceeds precision %d", percentage, Precision)
	}
	return nil
}

// CalculateYieldFee returns the fee share of the available yield:
//
//	fee = availableYield * percentage / Precision (integer floor)
//
// Zero if either factor is zero. Error if availableYield is negative or the
// percentage is out of range.
func CalculateYieldFee(availableYield cosmosmath.Int, percentage uint64) (cosmosmath.Int, error) {
	if availableYield.IsNegative() {
		return cosmosmath.Int{}, fmt.Errorf("invalid input: negative yield not allowed")
	}
	if err := ValidatePercentage(percentage); err != nil {
		return cosmosmath.Int{}, err
	}
	if availableYield.IsZero() || percentage == 0 {
		return cosmosmath.ZeroInt(), nil
	}

	pct := cosmosmath.NewIntFromUint64(percentage)
	return availableYield.Mul(pct).Quo(cosmosmath.NewIntFromUint64(Precision)), nil
}
