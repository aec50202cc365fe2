package keeper_test

import (
	"errors"

	sdkmath "cosmossdk.io/math"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldvault/types"
)

func (s *TestSuite) validPermit() types.Permit {
	return types.Permit{
		Deadline:  s.ctx.BlockTime().Unix() + 3600,
		Signature: []byte{0x01},
	}
}

func (s *TestSuite) TestDepositMintsSharesAtPar() {
	s.fundDepositor(1_000)

	shares, err := s.k.Deposit(s.ctx, s.depositor, s.receiver, s.amount(1_000))
	s.Require().NoError(err)
	s.Equal(s.amount(1_000), shares, "first deposit prices at par")

	vaultAddr := s.k.GetVaultAddress()
	s.Equal(shares, s.ledger.BalanceOf(s.ctx, vaultAddr, s.receiver))
	s.True(s.asset.BalanceOf(s.ctx, s.depositor).IsZero(), "depositor paid the full amount")
	s.True(s.asset.BalanceOf(s.ctx, vaultAddr).IsZero(), "all assets forwarded to the sub-vault")
	s.Equal(s.amount(1_000), s.yieldVault.MaxWithdraw(s.ctx, vaultAddr))

	recorded, err := s.k.LastRecordedExchangeRate.Get(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.k.AssetUnit(), recorded, "rate cached in the same step as the mint")

	event := s.findEvent(types.EventTypeDeposit)
	s.assertAttribute(event, types.AttributeKeyCaller, s.depositor.String())
	s.assertAttribute(event, types.AttributeKeyReceiver, s.receiver.String())
	s.assertAttribute(event, types.AttributeKeyAssets, s.amount(1_000).String())
	s.assertAttribute(event, types.AttributeKeyShares, shares.String())
}

func (s *TestSuite) TestDepositRejectsZeroShareResult() {
	// Rate of 1.5 makes a single smallest asset unit floor to zero shares.
	rate := s.k.AssetUnit().MulRaw(3).QuoRaw(2)
	s.seedSharesAtRate(sdkmath.NewInt(2), rate)
	s.asset.Fund(s.depositor, sdkmath.NewInt(1))

	_, err := s.k.Deposit(s.ctx, s.depositor, s.receiver, sdkmath.NewInt(1))
	s.Require().ErrorContains(err, "results in zero shares")
	s.True(s.ledger.TotalSupply(s.ctx, s.k.GetVaultAddress()).Equal(sdkmath.NewInt(2)), "no shares minted")
}

func (s *TestSuite) TestDepositBlockedWhileUnderCollateralized() {
	s.fundDepositor(2_000)
	_, err := s.k.Deposit(s.ctx, s.depositor, s.receiver, s.amount(1_000))
	s.Require().NoError(err)

	s.yieldVault.SetRedeemable(s.k.GetVaultAddress(), s.amount(900))

	_, err = s.k.Deposit(s.ctx, s.depositor, s.receiver, s.amount(100))
	s.Require().ErrorIs(err, types.ErrCapacityExceeded)
	s.Require().ErrorIs(err, types.ErrUnderCollateralized, "the collapsed ceiling names its cause")

	var capErr *types.CapacityError
	s.Require().ErrorAs(err, &capErr)
	s.Equal("deposit", capErr.Operation)
	s.Equal(s.amount(100), capErr.Requested)
	s.Equal(s.receiver.String(), capErr.Receiver)
	s.True(capErr.Max.IsZero(), "ceiling collapses to zero below par")
}

func (s *TestSuite) TestDepositUsesIdleBufferBeforePulling() {
	// Assets left idle at the vault address cover part of the deposit; only
	// the shortfall is pulled from the depositor.
	s.asset.Fund(s.k.GetVaultAddress(), s.amount(300))
	s.fundDepositor(500)

	shares, err := s.k.Deposit(s.ctx, s.depositor, s.receiver, s.amount(500))
	s.Require().NoError(err)
	s.Equal(s.amount(500), shares)

	s.Equal(s.amount(300), s.asset.BalanceOf(s.ctx, s.depositor), "only the 200 shortfall was pulled")
	s.True(s.asset.BalanceOf(s.ctx, s.k.GetVaultAddress()).IsZero())
	s.Equal(s.amount(500), s.yieldVault.MaxWithdraw(s.ctx, s.k.GetVaultAddress()))
}

func (s *TestSuite) TestMintChargesCeilingAssetCost() {
	rate := s.k.AssetUnit().MulRaw(3).QuoRaw(2)
	s.seedSharesAtRate(sdkmath.NewInt(2), rate)
	s.asset.Fund(s.depositor, sdkmath.NewInt(10))

	assets, err := s.k.Mint(s.ctx, s.depositor, s.receiver, sdkmath.NewInt(1))
	s.Require().NoError(err)
	s.Equal(sdkmath.NewInt(2), assets, "1.5 asset units of value rounds up to 2")
	s.Equal(sdkmath.NewInt(8), s.asset.BalanceOf(s.ctx, s.depositor))
	s.Equal(sdkmath.NewInt(1), s.ledger.BalanceOf(s.ctx, s.k.GetVaultAddress(), s.receiver))
}

func (s *TestSuite) TestMintRejectsRequestOverLedgerWidth() {
	s.fundDepositor(1)

	_, err := s.k.Mint(s.ctx, s.depositor, s.receiver, types.MaxLedgerAmount.AddRaw(1))
	s.Require().ErrorIs(err, types.ErrCapacityExceeded)
	s.Require().NotErrorIs(err, types.ErrUnderCollateralized, "a full ledger is not a collateral problem")

	var capErr *types.CapacityError
	s.Require().ErrorAs(err, &capErr)
	s.Equal("mint", capErr.Operation)
	s.Equal(types.MaxLedgerAmount, capErr.Max)
}

func (s *TestSuite) TestSponsorDelegatesToSentinel() {
	s.fundDepositor(100)

	shares, err := s.k.Sponsor(s.ctx, s.depositor, s.receiver, s.amount(100))
	s.Require().NoError(err)
	s.Equal(s.amount(100), shares)

	sentinel := s.ledger.SponsorshipAddress()
	s.Equal(sentinel, s.ledger.DelegateOf(s.ctx, s.k.GetVaultAddress(), s.receiver))

	event := s.findEvent(types.EventTypeSponsor)
	s.assertAttribute(event, types.AttributeKeyReceiver, s.receiver.String())

	// A second sponsorship skips re-delegation when already at the sentinel.
	s.ledger.SponsorErr = errors.New("should not be called")
	s.fundDepositor(100)
	_, err = s.k.Sponsor(s.ctx, s.depositor, s.receiver, s.amount(100))
	s.Require().NoError(err)
}

func (s *TestSuite) TestDepositWithPermit() {
	s.fundDepositor(250)

	shares, err := s.k.DepositWithPermit(s.ctx, s.depositor, s.receiver, s.amount(250), s.validPermit())
	s.Require().NoError(err)
	s.Equal(s.amount(250), shares)
}

func (s *TestSuite) TestDepositWithPermitRejectionPreservesCause() {
	cause := errors.New("nonce mismatch")
	s.asset.PermitErr = cause
	s.fundDepositor(250)

	_, err := s.k.DepositWithPermit(s.ctx, s.depositor, s.receiver, s.amount(250), s.validPermit())
	s.Require().ErrorIs(err, types.ErrPermitAuthorizationFailed)
	s.Require().ErrorIs(err, cause, "the asset's rejection is preserved through Unwrap")

	s.Equal(s.amount(250), s.asset.BalanceOf(s.ctx, s.depositor), "no assets moved")
	s.True(s.ledger.TotalSupply(s.ctx, s.k.GetVaultAddress()).IsZero(), "no shares minted")
}

func (s *TestSuite) TestDepositWithExpiredPermit() {
	s.fundDepositor(250)
	expired := types.Permit{Deadline: s.ctx.BlockTime().Unix() - 10, Signature: []byte{0x01}}

	_, err := s.k.DepositWithPermit(s.ctx, s.depositor, s.receiver, s.amount(250), expired)
	s.Require().ErrorIs(err, types.ErrPermitAuthorizationFailed)
}

func (s *TestSuite) TestMintWithPermitSizesAuthorizationToAssetCost() {
	rate := s.k.AssetUnit().MulRaw(3).QuoRaw(2)
	s.seedSharesAtRate(sdkmath.NewInt(2), rate)
	s.asset.Fund(s.depositor, sdkmath.NewInt(10))

	assets, err := s.k.MintWithPermit(s.ctx, s.depositor, s.receiver, sdkmath.NewInt(1), s.validPermit())
	s.Require().NoError(err)
	s.Equal(sdkmath.NewInt(2), assets)
}

func (s *TestSuite) TestSponsorWithPermit() {
	s.fundDepositor(100)

	shares, err := s.k.SponsorWithPermit(s.ctx, s.depositor, s.receiver, s.amount(100), s.validPermit())
	s.Require().NoError(err)
	s.Equal(s.amount(100), shares)
	s.Equal(s.ledger.SponsorshipAddress(), s.ledger.DelegateOf(s.ctx, s.k.GetVaultAddress(), s.receiver))
}

// TestDepositReentrancyCannotObserveBrokenState re-enters Deposit at the
// asset-pull step, the moment assets have arrived but shares have not been
// minted. The re-entrant call must see a consistent guard and the outer call
// must not leave phantom shares behind.
func (s *TestSuite) TestDepositReentrancyCannotObserveBrokenState() {
	attacker := sdk.AccAddress("attacker____________")
	vaultAddr := s.k.GetVaultAddress()
	s.fundDepositor(100)

	var innerShares sdkmath.Int
	s.asset.TransferHook = func(ctx sdk.Context, _, _ sdk.AccAddress, _ sdkmath.Int) error {
		// Assets are in, shares are not.
		s.Equal(s.amount(100), s.asset.BalanceOf(ctx, vaultAddr))
		s.True(s.ledger.TotalSupply(ctx, vaultAddr).IsZero())

		rate, err := s.k.CurrentExchangeRate(ctx)
		s.Require().NoError(err)
		s.Equal(s.k.AssetUnit(), rate, "mid-flight rate still at par")

		// The inner deposit prices off the guard's live view and succeeds,
		// consuming the idle buffer the outer call just created.
		innerShares, err = s.k.Deposit(ctx, attacker, attacker, s.amount(40))
		return err
	}

	_, err := s.k.Deposit(s.ctx, s.depositor, s.receiver, s.amount(100))
	s.Require().Error(err, "outer deposit fails once its buffer was consumed")

	s.Equal(s.amount(40), innerShares)
	s.True(s.ledger.BalanceOf(s.ctx, vaultAddr, s.receiver).IsZero(), "outer receiver got nothing")

	// Whatever interleaving happened, pricing never left par and every minted
	// share stays fully backed.
	rate, err := s.k.CurrentExchangeRate(s.ctx)
	s.Require().NoError(err)
	s.Equal(s.k.AssetUnit(), rate)

	collateralized, err := s.k.IsVaultCollateralized(s.ctx)
	s.Require().NoError(err)
	s.True(collateralized)
}
