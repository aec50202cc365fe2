package keeper

import (
	"errors"

	"cosmossdk.io/collections"
	"cosmossdk.io/core/store"
	"cosmossdk.io/log"
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldvault/types"
)

// Keeper implements the vault's share-accounting core. Holder balances live
// in the injected balance ledger; the keeper persists only the scalar vault
// state and holds capability references to its collaborators.
type Keeper struct {
	schema    collections.Schema
	authority sdk.AccAddress
	vaultAddr sdk.AccAddress

	// assetUnit is 10^(base asset decimals), constant for the vault lifetime.
	assetUnit sdkmath.Int

	LastRecordedExchangeRate collections.Item[sdkmath.Int]
	YieldFeePercentage       collections.Item[uint64]
	YieldFeeRecipient        collections.Item[[]byte]
	Claimer                  collections.Item[[]byte]
	YieldFeeTotalSupply      collections.Item[sdkmath.Int]

	BalanceLedger types.BalanceLedger
	YieldVault    types.YieldVault
	AssetKeeper   types.AssetKeeper
}

// NewKeeper builds a vault keeper over the given store with its three
// external collaborators injected. A missing collaborator or an empty
// authority aborts construction with ErrZeroAddressConfig.
func NewKeeper(
	storeService store.KVStoreService,
	ledger types.BalanceLedger,
	yieldVault types.YieldVault,
	asset types.AssetKeeper,
	authority sdk.AccAddress,
) (*Keeper, error) {
	if ledger == nil {
		return nil, types.ErrZeroAddressConfig.Wrap("balance ledger is required")
	}
	if yieldVault == nil {
		return nil, types.ErrZeroAddressConfig.Wrap("yield sub-vault is required")
	}
	if asset == nil {
		return nil, types.ErrZeroAddressConfig.Wrap("base asset is required")
	}
	if authority.Empty() {
		return nil, types.ErrZeroAddressConfig.Wrap("authority is required")
	}

	builder := collections.NewSchemaBuilder(storeService)

	keeper := &Keeper{
		authority: authority,
		vaultAddr: types.GetVaultAddress(),
		assetUnit: sdkmath.NewIntWithDecimal(1, int(asset.Decimals())),

		LastRecordedExchangeRate: collections.NewItem(builder, types.LastRecordedExchangeRateKey, "last_recorded_exchange_rate", sdk.IntValue),
		YieldFeePercentage:       collections.NewItem(builder, types.YieldFeePercentageKey, "yield_fee_percentage", collections.Uint64Value),
		YieldFeeRecipient:        collections.NewItem(builder, types.YieldFeeRecipientKey, "yield_fee_recipient", collections.BytesValue),
		Claimer:                  collections.NewItem(builder, types.ClaimerKey, "claimer", collections.BytesValue),
		YieldFeeTotalSupply:      collections.NewItem(builder, types.YieldFeeTotalSupplyKey, "yield_fee_total_supply", sdk.IntValue),

		BalanceLedger: ledger,
		YieldVault:    yieldVault,
		AssetKeeper:   asset,
	}

	schema, err := builder.Build()
	if err != nil {
		return nil, err
	}

	keeper.schema = schema
	return keeper, nil
}

// GetAuthority returns the vault authority.
func (k Keeper) GetAuthority() sdk.AccAddress {
	return k.authority
}

// GetVaultAddress returns the address that owns the vault's idle asset
// buffer and its sub-vault position.
func (k Keeper) GetVaultAddress() sdk.AccAddress {
	return k.vaultAddr
}

// AssetUnit returns 10^(base asset decimals).
func (k Keeper) AssetUnit() sdkmath.Int {
	return k.assetUnit
}

// getLogger returns a logger with vault module context.
func (k Keeper) getLogger(ctx sdk.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+types.ModuleName)
}

// emitEvent emits an event through the context's event manager.
func (k Keeper) emitEvent(ctx sdk.Context, event sdk.Event) {
	ctx.EventManager().EmitEvent(event)
}

// getLastRecordedExchangeRate returns the cached exchange rate, defaulting to
// par (assetUnit) before the first mint records one.
func (k Keeper) getLastRecordedExchangeRate(ctx sdk.Context) (sdkmath.Int, error) {
	rate, err := k.LastRecordedExchangeRate.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return k.assetUnit, nil
		}
		return sdkmath.Int{}, err
	}
	if rate.IsZero() {
		return k.assetUnit, nil
	}
	return rate, nil
}

// GetYieldFeePercentage returns the configured fee percentage, zero if unset.
func (k Keeper) GetYieldFeePercentage(ctx sdk.Context) (uint64, error) {
	pct, err := k.YieldFeePercentage.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return 0, nil
		}
		return 0, err
	}
	return pct, nil
}

// GetYieldFeeTotalSupply returns the accrued-but-unminted fee claim amount.
func (k Keeper) GetYieldFeeTotalSupply(ctx sdk.Context) (sdkmath.Int, error) {
	supply, err := k.YieldFeeTotalSupply.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdkmath.ZeroInt(), nil
		}
		return sdkmath.Int{}, err
	}
	return supply, nil
}

// GetYieldFeeRecipient returns the configured fee recipient, empty if unset.
func (k Keeper) GetYieldFeeRecipient(ctx sdk.Context) (sdk.AccAddress, error) {
	addr, err := k.YieldFeeRecipient.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdk.AccAddress{}, nil
		}
		return nil, err
	}
	return sdk.AccAddress(addr), nil
}

// GetClaimer returns the configured claimer, empty if unset.
func (k Keeper) GetClaimer(ctx sdk.Context) (sdk.AccAddress, error) {
	addr, err := k.Claimer.Get(ctx)
	if err != nil {
		if errors.Is(err, collections.ErrNotFound) {
			return sdk.AccAddress{}, nil
		}
		return nil, err
	}
	return sdk.AccAddress(addr), nil
}
