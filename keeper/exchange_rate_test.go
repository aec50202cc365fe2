package keeper_test

import (
	sdkmath "cosmossdk.io/math"

	"github.com/provlabs/yieldvault/types"
	"github.com/provlabs/yieldvault/utils"
)

func (s *TestSuite) TestExchangeRateBootstrapsToPar() {
	rate, err := s.k.CurrentExchangeRate(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.k.AssetUnit(), rate, "an empty vault prices at par")

	collateralized, err := s.k.IsVaultCollateralized(s.ctx)
	s.Require().NoError(err)
	s.True(collateralized)

	maxMint, err := s.k.MaxMint(s.ctx)
	s.Require().NoError(err)
	s.Equal(types.MaxLedgerAmount, maxMint, "full ledger width available before any mint")

	maxDeposit, err := s.k.MaxDeposit(s.ctx)
	s.Require().NoError(err)
	s.Equal(types.MaxLedgerAmount, maxDeposit, "at par the asset ceiling equals the share ceiling")
}

func (s *TestSuite) TestExchangeRateClampsUnrealizedYield() {
	s.fundDepositor(1_000)
	_, err := s.k.Deposit(s.ctx, s.depositor, s.receiver, s.amount(1_000))
	s.Require().NoError(err)

	// Sub-vault gains 5% that no one has realized yet.
	s.yieldVault.SetRedeemable(s.k.GetVaultAddress(), s.amount(1_050))

	rate, err := s.k.CurrentExchangeRate(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.k.AssetUnit(), rate, "unrealized yield must not inflate the rate")

	collateralized, err := s.k.IsVaultCollateralized(s.ctx)
	s.Require().NoError(err)
	s.True(collateralized)
}

func (s *TestSuite) TestExchangeRateDropsOnLoss() {
	s.fundDepositor(1_000)
	_, err := s.k.Deposit(s.ctx, s.depositor, s.receiver, s.amount(1_000))
	s.Require().NoError(err)

	// Sub-vault loses 10% of the principal.
	s.yieldVault.SetRedeemable(s.k.GetVaultAddress(), s.amount(900))

	rate, err := s.k.CurrentExchangeRate(s.ctx)
	s.Require().NoError(err)
	expected := s.amount(900).Mul(s.k.AssetUnit()).Quo(s.amount(1_000))
	s.Equal(expected, rate)
	s.True(rate.LT(s.k.AssetUnit()))

	collateralized, err := s.k.IsVaultCollateralized(s.ctx)
	s.Require().NoError(err)
	s.False(collateralized)

	maxMint, err := s.k.MaxMint(s.ctx)
	s.Require().NoError(err)
	s.True(maxMint.IsZero(), "no new claims while under-collateralized")

	maxDeposit, err := s.k.MaxDeposit(s.ctx)
	s.Require().NoError(err)
	s.True(maxDeposit.IsZero())
}

func (s *TestSuite) TestTotalShareSupplyIncludesFeeClaims() {
	s.Require().NoError(s.ledger.Mint(s.ctx, s.receiver, sdkmath.NewInt(100)))
	s.Require().NoError(s.k.YieldFeeTotalSupply.Set(s.ctx, sdkmath.NewInt(25)))

	supply, err := s.k.TotalShareSupply(s.ctx)
	s.Require().NoError(err)
	s.Equal(sdkmath.NewInt(125), supply)
}

func (s *TestSuite) TestMaxMintShrinksWithSupply() {
	seeded := sdkmath.NewInt(1_000)
	s.seedSharesAtRate(seeded, s.k.AssetUnit())

	maxMint, err := s.k.MaxMint(s.ctx)
	s.Require().NoError(err)
	s.Equal(types.MaxLedgerAmount.Sub(seeded), maxMint)
}

func (s *TestSuite) TestConvertersPriceAtCurrentRate() {
	// Rate of 1.5 assets per share unit.
	rate := s.k.AssetUnit().MulRaw(3).QuoRaw(2)
	s.seedSharesAtRate(sdkmath.NewInt(2), rate)

	shares, err := s.k.ConvertToShares(s.ctx, sdkmath.NewInt(3), utils.RoundDown)
	s.Require().NoError(err)
	s.Equal(sdkmath.NewInt(2), shares)

	assets, err := s.k.ConvertToAssets(s.ctx, sdkmath.NewInt(1), utils.RoundUp)
	s.Require().NoError(err)
	s.Equal(sdkmath.NewInt(2), assets, "a share and a half of value charges two asset units")
}

func (s *TestSuite) TestRecordedRateDefaultsToParWhenUnsetOrZero() {
	gotUnset, err := s.k.CurrentExchangeRate(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.k.AssetUnit(), gotUnset)

	s.Require().NoError(s.k.LastRecordedExchangeRate.Set(s.ctx, sdkmath.ZeroInt()))
	gotZero, err := s.k.CurrentExchangeRate(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.k.AssetUnit(), gotZero)
}
