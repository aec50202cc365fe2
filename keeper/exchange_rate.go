package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldvault/types"
	"github.com/provlabs/yieldvault/utils"
)

// TotalShareSupply returns the total claim supply: holder shares tracked by
// the balance ledger plus the accrued-but-unminted fee claim amount.
func (k Keeper) TotalShareSupply(ctx sdk.Context) (sdkmath.Int, error) {
	feeSupply, err := k.GetYieldFeeTotalSupply(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return k.BalanceLedger.TotalSupply(ctx, k.vaultAddr).Add(feeSupply), nil
}

// CurrentExchangeRate derives the current asset-per-assetUnit rate from live
// balances. The computation is pure and side-effect-free; only the mint path
// caches the result via recordExchangeRate.
//
// The sub-vault's redeemable balance is clamped to what the last recorded
// rate says the outstanding claims are worth, so unrealized yield never
// inflates the rate. Without the clamp a depositor could mint against
// sub-vault yield before fees are captured, under-paying the fee recipient.
func (k Keeper) CurrentExchangeRate(ctx sdk.Context) (sdkmath.Int, error) {
	totalClaims, err := k.TotalShareSupply(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}

	lastRate, err := k.getLastRecordedExchangeRate(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}

	claimsAsAssets, err := utils.ConvertToAssets(totalClaims, lastRate, k.assetUnit, utils.RoundDown)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to value outstanding claims: %w", err)
	}

	redeemable := k.YieldVault.MaxWithdraw(ctx, k.vaultAddr)
	if redeemable.GT(claimsAsAssets) {
		redeemable = claimsAsAssets
	}

	if totalClaims.IsZero() || redeemable.IsZero() {
		return k.assetUnit, nil
	}

	return redeemable.Mul(k.assetUnit).Quo(totalClaims), nil
}

// recordExchangeRate refreshes the cached rate from live balances. It must be
// called immediately after every ledger mint, in the same atomic step, or the
// unrealized-yield clamp desynchronizes from real supply.
func (k *Keeper) recordExchangeRate(ctx sdk.Context) error {
	rate, err := k.CurrentExchangeRate(ctx)
	if err != nil {
		return err
	}
	return k.LastRecordedExchangeRate.Set(ctx, rate)
}

// IsVaultCollateralized reports whether the exchange rate is at or above par.
func (k Keeper) IsVaultCollateralized(ctx sdk.Context) (bool, error) {
	rate, err := k.CurrentExchangeRate(ctx)
	if err != nil {
		return false, err
	}
	return rate.GTE(k.assetUnit), nil
}

// MaxMint returns the share-mint ceiling: the ledger's remaining representable
// supply delta when the vault is collateralized, zero otherwise. The vault
// refuses new claims entirely once under-collateralized rather than admitting
// them at a penalized rate.
func (k Keeper) MaxMint(ctx sdk.Context) (sdkmath.Int, error) {
	collateralized, err := k.IsVaultCollateralized(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !collateralized {
		return sdkmath.ZeroInt(), nil
	}

	supply := k.BalanceLedger.TotalSupply(ctx, k.vaultAddr)
	if supply.GTE(types.MaxLedgerAmount) {
		return sdkmath.ZeroInt(), nil
	}
	return types.MaxLedgerAmount.Sub(supply), nil
}

// MaxDeposit returns the asset-deposit ceiling: MaxMint converted to assets
// at the current rate (floor), zero when under-collateralized.
func (k Keeper) MaxDeposit(ctx sdk.Context) (sdkmath.Int, error) {
	maxMint, err := k.MaxMint(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if maxMint.IsZero() {
		return sdkmath.ZeroInt(), nil
	}

	rate, err := k.CurrentExchangeRate(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return utils.ConvertToAssets(maxMint, rate, k.assetUnit, utils.RoundDown)
}

// ConvertToShares prices an asset amount in shares at the current rate.
func (k Keeper) ConvertToShares(ctx sdk.Context, assets sdkmath.Int, rounding utils.Rounding) (sdkmath.Int, error) {
	rate, err := k.CurrentExchangeRate(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return utils.ConvertToShares(assets, rate, k.assetUnit, rounding)
}

// ConvertToAssets prices a share amount in assets at the current rate.
func (k Keeper) ConvertToAssets(ctx sdk.Context, shares sdkmath.Int, rounding utils.Rounding) (sdkmath.Int, error) {
	rate, err := k.CurrentExchangeRate(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return utils.ConvertToAssets(shares, rate, k.assetUnit, rounding)
}
