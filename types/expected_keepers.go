package types

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// BalanceLedger tracks per-holder and total balances for the vault's share
// token over time. It is the single source of truth for share supply; the
// vault never stores per-holder state itself. Amounts passed to Mint, Burn,
// and Transfer must not exceed MaxLedgerAmount.
type BalanceLedger interface {
	TotalSupply(ctx sdk.Context, vault sdk.AccAddress) sdkmath.Int
	BalanceOf(ctx sdk.Context, vault, holder sdk.AccAddress) sdkmath.Int
	Mint(ctx sdk.Context, holder sdk.AccAddress, amount sdkmath.Int) error
	Burn(ctx sdk.Context, holder sdk.AccAddress, amount sdkmath.Int) error
	Transfer(ctx sdk.Context, from, to sdk.AccAddress, amount sdkmath.Int) error

	// DelegateOf returns the holder's current delegate target.
	DelegateOf(ctx sdk.Context, vault, holder sdk.AccAddress) sdk.AccAddress
	// Sponsor re-delegates the holder to the ledger's sponsorship sentinel.
	Sponsor(ctx sdk.Context, holder sdk.AccAddress) error
	// SponsorshipAddress returns the sentinel delegate target for sponsored deposits.
	SponsorshipAddress() sdk.AccAddress
}

// YieldVault is the yield-generating counterparty the vault re-deposits
// pooled assets into. The vault treats it as opaque: deposits are attributed
// to the vault address, and MaxWithdraw reports the currently redeemable
// asset amount for that position.
type YieldVault interface {
	GetAddress() sdk.AccAddress
	Deposit(ctx sdk.Context, assets sdkmath.Int, onBehalfOf sdk.AccAddress) error
	MaxWithdraw(ctx sdk.Context, holder sdk.AccAddress) sdkmath.Int
}

// AssetKeeper is the transferable base asset, including the offline signed
// authorization (permit) mechanism. Replay protection is the asset's concern,
// managed through its internal nonce.
type AssetKeeper interface {
	Decimals() uint8
	BalanceOf(ctx sdk.Context, addr sdk.AccAddress) sdkmath.Int
	TransferFrom(ctx sdk.Context, from, to sdk.AccAddress, amount sdkmath.Int) error
	IncreaseAllowance(ctx sdk.Context, owner, spender sdk.AccAddress, amount sdkmath.Int) error
	Permit(ctx sdk.Context, owner, spender sdk.AccAddress, amount sdkmath.Int, deadline int64, signature []byte) error
}
