package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldvault/fee"
	"github.com/provlabs/yieldvault/types"
	"github.com/provlabs/yieldvault/utils"
)

// TotalAssets returns the total managed assets: the vault's idle asset buffer
// plus the sub-vault's currently redeemable balance for the vault's position.
func (k Keeper) TotalAssets(ctx sdk.Context) sdkmath.Int {
	idle := k.AssetKeeper.BalanceOf(ctx, k.vaultAddr)
	return idle.Add(k.YieldVault.MaxWithdraw(ctx, k.vaultAddr))
}

// AvailableYieldBalance returns the portion of total managed assets not owed
// to claim holders at the current rate (floor). Zero, never negative, while
// the vault is under-collateralized: yield is never reported positive while
// principal is impaired.
func (k Keeper) AvailableYieldBalance(ctx sdk.Context) (sdkmath.Int, error) {
	collateralized, err := k.IsVaultCollateralized(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if !collateralized {
		return sdkmath.ZeroInt(), nil
	}

	totalClaims, err := k.TotalShareSupply(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	owed, err := k.ConvertToAssets(ctx, totalClaims, utils.RoundDown)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to value outstanding claims: %w", err)
	}

	total := k.TotalAssets(ctx)
	if owed.GTE(total) {
		return sdkmath.ZeroInt(), nil
	}
	return total.Sub(owed), nil
}

// AvailableYieldFeeBalance returns the fee share of the available yield.
// This is a read-only projection; crediting the fee recipient's claim is an
// explicit accrual step owned by the liquidation flow, not the deposit path.
func (k Keeper) AvailableYieldFeeBalance(ctx sdk.Context) (sdkmath.Int, error) {
	yield, err := k.AvailableYieldBalance(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	pct, err := k.GetYieldFeePercentage(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	return fee.CalculateYieldFee(yield, pct)
}

// SetYieldFeePercentage updates the fee percentage. Authority-gated; values
// above FeePrecision are rejected and the prior value retained.
func (k *Keeper) SetYieldFeePercentage(ctx sdk.Context, authority sdk.AccAddress, percentage uint64) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if percentage > types.FeePrecision {
		return types.ErrFeePercentageOutOfRange.Wrapf("%d > %d", percentage, types.FeePrecision)
	}
	if err := k.YieldFeePercentage.Set(ctx, percentage); err != nil {
		return err
	}
	k.emitEvent(ctx, types.NewEventYieldFeePercentageUpdated(authority.String(), percentage))
	return nil
}

// SetYieldFeeRecipient updates the fee recipient. Authority-gated.
func (k *Keeper) SetYieldFeeRecipient(ctx sdk.Context, authority, recipient sdk.AccAddress) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if err := k.YieldFeeRecipient.Set(ctx, recipient.Bytes()); err != nil {
		return err
	}
	k.emitEvent(ctx, types.NewEventYieldFeeRecipientUpdated(authority.String(), recipient.String()))
	return nil
}

// SetClaimer updates the claimer. Authority-gated; an empty claimer is
// permitted and clears it.
func (k *Keeper) SetClaimer(ctx sdk.Context, authority, claimer sdk.AccAddress) error {
	if err := k.requireAuthority(authority); err != nil {
		return err
	}
	if err := k.Claimer.Set(ctx, claimer.Bytes()); err != nil {
		return err
	}
	k.emitEvent(ctx, types.NewEventClaimerUpdated(authority.String(), claimer.String()))
	return nil
}

func (k Keeper) requireAuthority(signer sdk.AccAddress) error {
	if !k.authority.Equals(signer) {
		return types.ErrUnauthorized.Wrapf("expected %s, got %s", k.authority, signer)
	}
	return nil
}
