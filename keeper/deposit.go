package keeper

import (
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldvault/types"
	"github.com/provlabs/yieldvault/utils"
)

// Deposit handles depositing base assets into the vault in exchange for newly
// minted shares, sized at the current exchange rate with floor rounding.
//
// It performs the following steps:
//  1. Checks the requested assets against the guard's current max deposit.
//  2. Converts assets to shares at the current rate (floor).
//  3. Pulls only the shortfall beyond the vault's idle asset buffer from the
//     depositor.
//  4. Forwards the full asset amount into the yield sub-vault.
//  5. Mints shares to the receiver via the balance ledger and refreshes the
//     cached exchange rate in the same step.
//  6. Emits a deposit event with caller, receiver, assets, and shares.
//
// Returns the minted share amount on success. No partial effects persist on
// failure.
func (k *Keeper) Deposit(ctx sdk.Context, caller, receiver sdk.AccAddress, assets sdkmath.Int) (sdkmath.Int, error) {
	maxDeposit, err := k.MaxDeposit(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if assets.GT(maxDeposit) {
		return sdkmath.Int{}, k.capacityError(ctx, "deposit", assets, receiver.String(), maxDeposit)
	}

	shares, err := k.ConvertToShares(ctx, assets, utils.RoundDown)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to calculate shares from assets: %w", err)
	}
	if shares.IsZero() && assets.IsPositive() {
		return sdkmath.Int{}, fmt.Errorf("deposit of %s is too small and results in zero shares", assets)
	}

	if err := k.depositAssets(ctx, caller, receiver, assets, shares); err != nil {
		return sdkmath.Int{}, err
	}
	return shares, nil
}

// Mint handles minting an exact share amount, charging the depositor the
// asset cost at the current exchange rate with ceiling rounding.
//
// The workflow is the same ordered sequence as Deposit; only the sizing
// direction differs. Returns the asset cost on success.
func (k *Keeper) Mint(ctx sdk.Context, caller, receiver sdk.AccAddress, shares sdkmath.Int) (sdkmath.Int, error) {
	maxMint, err := k.MaxMint(ctx)
	if err != nil {
		return sdkmath.Int{}, err
	}
	if shares.GT(maxMint) {
		return sdkmath.Int{}, k.capacityError(ctx, "mint", shares, receiver.String(), maxMint)
	}

	assets, err := k.ConvertToAssets(ctx, shares, utils.RoundUp)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to calculate assets from shares: %w", err)
	}

	if err := k.depositAssets(ctx, caller, receiver, assets, shares); err != nil {
		return sdkmath.Int{}, err
	}
	return assets, nil
}

// Sponsor performs the deposit workflow and then re-delegates the receiver to
// the ledger's sponsorship sentinel, so the sponsored balance contributes to
// the vault's asset base without contributing to the receiver's ledger-tracked
// weighting.
func (k *Keeper) Sponsor(ctx sdk.Context, caller, receiver sdk.AccAddress, assets sdkmath.Int) (sdkmath.Int, error) {
	shares, err := k.Deposit(ctx, caller, receiver, assets)
	if err != nil {
		return sdkmath.Int{}, err
	}

	sentinel := k.BalanceLedger.SponsorshipAddress()
	if !k.BalanceLedger.DelegateOf(ctx, k.vaultAddr, receiver).Equals(sentinel) {
		if err := k.BalanceLedger.Sponsor(ctx, receiver); err != nil {
			return sdkmath.Int{}, fmt.Errorf("failed to sponsor receiver: %w", err)
		}
	}

	k.emitEvent(ctx, types.NewEventSponsor(caller.String(), receiver.String(), assets, shares))
	return shares, nil
}

// DepositWithPermit consumes a signed authorization against the base asset
// before running the deposit workflow. A permit failure aborts the entire
// call with no side effects.
func (k *Keeper) DepositWithPermit(ctx sdk.Context, caller, receiver sdk.AccAddress, assets sdkmath.Int, permit types.Permit) (sdkmath.Int, error) {
	if err := k.consumePermit(ctx, caller, assets, permit); err != nil {
		return sdkmath.Int{}, err
	}
	return k.Deposit(ctx, caller, receiver, assets)
}

// MintWithPermit consumes a signed authorization for the share amount's asset
// cost (ceiling) before running the mint workflow.
func (k *Keeper) MintWithPermit(ctx sdk.Context, caller, receiver sdk.AccAddress, shares sdkmath.Int, permit types.Permit) (sdkmath.Int, error) {
	assets, err := k.ConvertToAssets(ctx, shares, utils.RoundUp)
	if err != nil {
		return sdkmath.Int{}, fmt.Errorf("failed to calculate assets from shares: %w", err)
	}
	if err := k.consumePermit(ctx, caller, assets, permit); err != nil {
		return sdkmath.Int{}, err
	}
	return k.Mint(ctx, caller, receiver, shares)
}

// SponsorWithPermit consumes a signed authorization before running the
// sponsor workflow.
func (k *Keeper) SponsorWithPermit(ctx sdk.Context, caller, receiver sdk.AccAddress, assets sdkmath.Int, permit types.Permit) (sdkmath.Int, error) {
	if err := k.consumePermit(ctx, caller, assets, permit); err != nil {
		return sdkmath.Int{}, err
	}
	return k.Sponsor(ctx, caller, receiver, assets)
}

// capacityError builds the admission failure for a deposit or mint. A zero
// ceiling caused by under-collateralization is named as the cause so callers
// can tell it apart from an exhausted ledger width.
func (k Keeper) capacityError(ctx sdk.Context, operation string, requested sdkmath.Int, receiver string, max sdkmath.Int) error {
	capErr := &types.CapacityError{Operation: operation, Requested: requested, Receiver: receiver, Max: max}
	if max.IsZero() {
		if collateralized, err := k.IsVaultCollateralized(ctx); err == nil && !collateralized {
			capErr.Cause = types.ErrUnderCollateralized
		}
	}
	return capErr
}

// consumePermit presents the signed authorization to the base asset with the
// vault as spender. Any rejection is surfaced as a PermitError with the
// asset's cause preserved.
func (k *Keeper) consumePermit(ctx sdk.Context, owner sdk.AccAddress, amount sdkmath.Int, permit types.Permit) error {
	if err := k.AssetKeeper.Permit(ctx, owner, k.vaultAddr, amount, permit.Deadline, permit.Signature); err != nil {
		return types.NewPermitError(err)
	}
	return nil
}

// depositAssets runs the ordered external effects shared by every deposit
// entry point. External asset movements that could re-enter happen before any
// internal mutation, so a re-entrant call observes assets already received
// and shares not yet minted; the guard recomputes from live balances, so no
// invariant can be violated from that state.
func (k *Keeper) depositAssets(ctx sdk.Context, caller, receiver sdk.AccAddress, assets, shares sdkmath.Int) error {
	if shares.GT(types.MaxLedgerAmount) {
		return types.ErrLedgerAmountOverflow.Wrapf("mint of %s shares", shares)
	}

	idle := k.AssetKeeper.BalanceOf(ctx, k.vaultAddr)
	if assets.GT(idle) {
		shortfall := assets.Sub(idle)
		if err := k.AssetKeeper.TransferFrom(ctx, caller, k.vaultAddr, shortfall); err != nil {
			return fmt.Errorf("failed to pull assets from depositor: %w", err)
		}
	}

	if err := k.AssetKeeper.IncreaseAllowance(ctx, k.vaultAddr, k.YieldVault.GetAddress(), assets); err != nil {
		return fmt.Errorf("failed to approve sub-vault deposit: %w", err)
	}
	if err := k.YieldVault.Deposit(ctx, assets, k.vaultAddr); err != nil {
		return fmt.Errorf("failed to re-deposit into sub-vault: %w", err)
	}

	if err := k.BalanceLedger.Mint(ctx, receiver, shares); err != nil {
		return fmt.Errorf("failed to mint shares: %w", err)
	}
	// The rate cache must follow the mint in the same atomic step.
	if err := k.recordExchangeRate(ctx); err != nil {
		return fmt.Errorf("failed to record exchange rate: %w", err)
	}

	k.emitEvent(ctx, types.NewEventDeposit(caller.String(), receiver.String(), assets, shares))
	return nil
}
