package keeper_test

import (
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldvault/types"
)

func (s *TestSuite) TestTotalAssetsIncludesIdleBuffer() {
	vaultAddr := s.k.GetVaultAddress()
	s.asset.Fund(vaultAddr, s.amount(10))
	s.yieldVault.SetRedeemable(vaultAddr, s.amount(40))

	s.Equal(s.amount(50), s.k.TotalAssets(s.ctx))
}

func (s *TestSuite) TestAvailableYieldBalance() {
	s.fundDepositor(1_000)
	_, err := s.k.Deposit(s.ctx, s.depositor, s.receiver, s.amount(1_000))
	s.Require().NoError(err)

	s.Run("no yield yet", func() {
		yield, err := s.k.AvailableYieldBalance(s.ctx)
		s.Require().NoError(err)
		s.True(yield.IsZero())
	})

	s.Run("sub-vault gain surfaces as yield", func() {
		s.yieldVault.SetRedeemable(s.k.GetVaultAddress(), s.amount(1_050))
		yield, err := s.k.AvailableYieldBalance(s.ctx)
		s.Require().NoError(err)
		s.Equal(s.amount(50), yield)
	})

	s.Run("zero while under-collateralized", func() {
		s.yieldVault.SetRedeemable(s.k.GetVaultAddress(), s.amount(900))
		yield, err := s.k.AvailableYieldBalance(s.ctx)
		s.Require().NoError(err)
		s.True(yield.IsZero(), "never negative, never positive while principal is impaired")
	})
}

func (s *TestSuite) TestAvailableYieldFeeBalance() {
	s.fundDepositor(1_000)
	_, err := s.k.Deposit(s.ctx, s.depositor, s.receiver, s.amount(1_000))
	s.Require().NoError(err)
	s.yieldVault.SetRedeemable(s.k.GetVaultAddress(), s.amount(1_050))

	s.Run("zero percentage takes nothing", func() {
		feeBalance, err := s.k.AvailableYieldFeeBalance(s.ctx)
		s.Require().NoError(err)
		s.True(feeBalance.IsZero())
	})

	s.Run("ten percent of the yield", func() {
		s.Require().NoError(s.k.SetYieldFeePercentage(s.ctx, s.authority, types.FeePrecision/10))
		feeBalance, err := s.k.AvailableYieldFeeBalance(s.ctx)
		s.Require().NoError(err)
		s.Equal(s.amount(5), feeBalance)
	})
}

func (s *TestSuite) TestSetYieldFeePercentage() {
	s.Run("authority sets percentage", func() {
		err := s.k.SetYieldFeePercentage(s.ctx, s.authority, 250_000_000)
		s.Require().NoError(err)

		pct, err := s.k.GetYieldFeePercentage(s.ctx)
		s.Require().NoError(err)
		s.Equal(uint64(250_000_000), pct)

		event := s.findEvent(types.EventTypeYieldFeePercentageUpdated)
		s.assertAttribute(event, types.AttributeKeyAuthority, s.authority.String())
		s.assertAttribute(event, types.AttributeKeyPercentage, "250000000")
	})

	s.Run("non-authority rejected", func() {
		err := s.k.SetYieldFeePercentage(s.ctx, s.depositor, 1)
		s.Require().ErrorIs(err, types.ErrUnauthorized)
	})

	s.Run("out of range retains prior value", func() {
		err := s.k.SetYieldFeePercentage(s.ctx, s.authority, types.FeePrecision+1)
		s.Require().ErrorIs(err, types.ErrFeePercentageOutOfRange)

		pct, err := s.k.GetYieldFeePercentage(s.ctx)
		s.Require().NoError(err)
		s.Equal(uint64(250_000_000), pct)
	})
}

func (s *TestSuite) TestSetYieldFeeRecipient() {
	recipient := sdk.AccAddress("fee_recipient_______")

	err := s.k.SetYieldFeeRecipient(s.ctx, recipient, recipient)
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	s.Require().NoError(s.k.SetYieldFeeRecipient(s.ctx, s.authority, recipient))
	got, err := s.k.GetYieldFeeRecipient(s.ctx)
	s.Require().NoError(err)
	s.Equal(recipient, got)

	event := s.findEvent(types.EventTypeYieldFeeRecipientUpdated)
	s.assertAttribute(event, types.AttributeKeyRecipient, recipient.String())
}

func (s *TestSuite) TestSetClaimer() {
	claimer := sdk.AccAddress("claimer_____________")

	err := s.k.SetClaimer(s.ctx, s.depositor, claimer)
	s.Require().ErrorIs(err, types.ErrUnauthorized)

	s.Require().NoError(s.k.SetClaimer(s.ctx, s.authority, claimer))
	got, err := s.k.GetClaimer(s.ctx)
	s.Require().NoError(err)
	s.Equal(claimer, got)

	// Clearing with an empty claimer is allowed.
	s.Require().NoError(s.k.SetClaimer(s.ctx, s.authority, nil))
	got, err = s.k.GetClaimer(s.ctx)
	s.Require().NoError(err)
	s.True(got.Empty())
}
