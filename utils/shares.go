package utils

import (
	"fmt"

	"cosmossdk.io/math"
)

// Conversions between asset and share amounts at an explicit exchange rate.
//
// The rate is expressed as assets per one assetUnit of shares, where
// assetUnit is 10^(asset decimals). Both directions are pure given the rate.
//
// IMPORTANT:
//   - When the amount or the rate is zero the conversion is the identity:
//     there is nothing to price, and a zero rate must not divide.
//   - Multiply-then-divide only. math.Int is big.Int backed, so the
//     intermediate product never overflows.

// ConvertToShares returns the number of shares that correspond to the given
// asset amount at rate.
//
// Formula (integer, rounding per caller):
//
//	shares = assets * assetUnit / rate
//
// Depositing assets for shares uses RoundDown, which protects the vault.
// Error if any input is negative.
func ConvertToShares(assets, rate, assetUnit math.Int, rounding Rounding) (math.Int, error) {
	if assets.IsNegative() || rate.IsNegative() || assetUnit.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if assets.IsZero() || rate.IsZero() {
		return assets, nil
	}
	return MulDiv(assets, assetUnit, rate, rounding)
}

// ConvertToAssets returns the asset amount that corresponds to the given
// number of shares at rate.
//
// Formula (integer, rounding per caller):
//
//	assets = shares * rate / assetUnit
//
// Minting an exact share amount uses RoundUp on the asset cost, which
// protects the vault, not the depositor. Error if any input is negative or
// assetUnit is zero with a nonzero conversion.
func ConvertToAssets(shares, rate, assetUnit math.Int, rounding Rounding) (math.Int, error) {
	if shares.IsNegative() || rate.IsNegative() || assetUnit.IsNegative() {
		return math.Int{}, fmt.Errorf("invalid input: negative values not allowed")
	}
	if shares.IsZero() || rate.IsZero() {
		return shares, nil
	}
	return MulDiv(shares, rate, assetUnit, rounding)
}
