package types

import (
	"math/big"

	"cosmossdk.io/collections"
	sdkmath "cosmossdk.io/math"

	"github.com/cometbft/cometbft/crypto"
	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	// ModuleName defines the module name
	ModuleName = "yieldvault"

	// StoreKey defines the primary module store key
	StoreKey = ModuleName

	// FeePrecision is the fixed-point denominator for yield fee percentages.
	// A fee percentage of FeePrecision is 100%.
	FeePrecision = uint64(1_000_000_000)
)

var (
	// LastRecordedExchangeRateKey is the prefix for the cached exchange rate.
	LastRecordedExchangeRateKey = collections.NewPrefix(0)
	// YieldFeePercentageKey is the prefix for the configured yield fee percentage.
	YieldFeePercentageKey = collections.NewPrefix(1)
	// YieldFeeRecipientKey is the prefix for the yield fee recipient address.
	YieldFeeRecipientKey = collections.NewPrefix(2)
	// ClaimerKey is the prefix for the claimer address.
	ClaimerKey = collections.NewPrefix(3)
	// YieldFeeTotalSupplyKey is the prefix for the accrued-but-unminted fee claim amount.
	YieldFeeTotalSupplyKey = collections.NewPrefix(4)
)

// MaxLedgerAmount is the largest amount representable by the balance ledger's
// 96-bit amount field. Mint, burn, and transfer amounts must not exceed it.
var MaxLedgerAmount = sdkmath.NewIntFromBigInt(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 96), big.NewInt(1)))

// GetVaultAddress returns the module account address that owns the vault's
// idle asset buffer and its position in the yield sub-vault.
func GetVaultAddress() sdk.AccAddress {
	return sdk.AccAddress(crypto.AddressHash([]byte(ModuleName + "/vault")))
}
