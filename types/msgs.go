package types

import (
	"context"
	"fmt"

	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

// MsgServer is the vault's transactional entry-point surface.
type MsgServer interface {
	Deposit(ctx context.Context, msg *MsgDepositRequest) (*MsgDepositResponse, error)
	Mint(ctx context.Context, msg *MsgMintRequest) (*MsgMintResponse, error)
	Sponsor(ctx context.Context, msg *MsgSponsorRequest) (*MsgSponsorResponse, error)
	DepositWithPermit(ctx context.Context, msg *MsgDepositWithPermitRequest) (*MsgDepositResponse, error)
	MintWithPermit(ctx context.Context, msg *MsgMintWithPermitRequest) (*MsgMintResponse, error)
	SponsorWithPermit(ctx context.Context, msg *MsgSponsorWithPermitRequest) (*MsgSponsorResponse, error)
	SetClaimer(ctx context.Context, msg *MsgSetClaimerRequest) (*MsgSetClaimerResponse, error)
	SetYieldFeePercentage(ctx context.Context, msg *MsgSetYieldFeePercentageRequest) (*MsgSetYieldFeePercentageResponse, error)
	SetYieldFeeRecipient(ctx context.Context, msg *MsgSetYieldFeeRecipientRequest) (*MsgSetYieldFeeRecipientResponse, error)
}

// Permit carries an offline signed authorization for the base asset.
type Permit struct {
	// Deadline is the unix time after which the authorization is rejected.
	Deadline int64
	// Signature is the owner's signature over the authorization.
	Signature []byte
}

type MsgDepositRequest struct {
	Depositor string
	Receiver  string
	Assets    sdkmath.Int
}

type MsgDepositResponse struct {
	Shares sdkmath.Int
}

type MsgMintRequest struct {
	Depositor string
	Receiver  string
	Shares    sdkmath.Int
}

type MsgMintResponse struct {
	Assets sdkmath.Int
}

type MsgSponsorRequest struct {
	Depositor string
	Receiver  string
	Assets    sdkmath.Int
}

type MsgSponsorResponse struct {
	Shares sdkmath.Int
}

type MsgDepositWithPermitRequest struct {
	MsgDepositRequest
	Permit Permit
}

type MsgMintWithPermitRequest struct {
	MsgMintRequest
	Permit Permit
}

type MsgSponsorWithPermitRequest struct {
	MsgSponsorRequest
	Permit Permit
}

type MsgSetClaimerRequest struct {
	Authority string
	// Claimer may be empty to clear the claimer.
	Claimer string
}

type MsgSetClaimerResponse struct{}

type MsgSetYieldFeePercentageRequest struct {
	Authority  string
	Percentage uint64
}

type MsgSetYieldFeePercentageResponse struct{}

type MsgSetYieldFeeRecipientRequest struct {
	Authority string
	Recipient string
}

type MsgSetYieldFeeRecipientResponse struct{}

func validateAmount(name string, amount sdkmath.Int) error {
	if amount.IsNil() {
		return fmt.Errorf("%s amount must be set", name)
	}
	if !amount.IsPositive() {
		return fmt.Errorf("%s amount must be positive: %s", name, amount)
	}
	return nil
}

func validateAddress(name, addr string) error {
	if _, err := sdk.AccAddressFromBech32(addr); err != nil {
		return fmt.Errorf("invalid %s address: %q: %w", name, addr, err)
	}
	return nil
}

// ValidateBasic performs stateless validation on a deposit request.
func (m MsgDepositRequest) ValidateBasic() error {
	if err := validateAddress("depositor", m.Depositor); err != nil {
		return err
	}
	if err := validateAddress("receiver", m.Receiver); err != nil {
		return err
	}
	return validateAmount("asset", m.Assets)
}

// ValidateBasic performs stateless validation on a mint request.
func (m MsgMintRequest) ValidateBasic() error {
	if err := validateAddress("depositor", m.Depositor); err != nil {
		return err
	}
	if err := validateAddress("receiver", m.Receiver); err != nil {
		return err
	}
	return validateAmount("share", m.Shares)
}

// ValidateBasic performs stateless validation on a sponsor request.
func (m MsgSponsorRequest) ValidateBasic() error {
	if err := validateAddress("depositor", m.Depositor); err != nil {
		return err
	}
	if err := validateAddress("receiver", m.Receiver); err != nil {
		return err
	}
	return validateAmount("asset", m.Assets)
}

// ValidateBasic validates the permit envelope on top of the deposit request.
func (m MsgDepositWithPermitRequest) ValidateBasic() error {
	if err := m.MsgDepositRequest.ValidateBasic(); err != nil {
		return err
	}
	return m.Permit.Validate()
}

// ValidateBasic validates the permit envelope on top of the mint request.
func (m MsgMintWithPermitRequest) ValidateBasic() error {
	if err := m.MsgMintRequest.ValidateBasic(); err != nil {
		return err
	}
	return m.Permit.Validate()
}

// ValidateBasic validates the permit envelope on top of the sponsor request.
func (m MsgSponsorWithPermitRequest) ValidateBasic() error {
	if err := m.MsgSponsorRequest.ValidateBasic(); err != nil {
		return err
	}
	return m.Permit.Validate()
}

// Validate checks the permit envelope is structurally complete. Deadline and
// signature correctness are evaluated by the base asset.
func (p Permit) Validate() error {
	if p.Deadline <= 0 {
		return fmt.Errorf("permit deadline must be positive: %d", p.Deadline)
	}
	if len(p.Signature) == 0 {
		return fmt.Errorf("permit signature must not be empty")
	}
	return nil
}

// ValidateBasic performs stateless validation on a set-claimer request.
// An empty claimer is permitted and clears the claimer.
func (m MsgSetClaimerRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if m.Claimer == "" {
		return nil
	}
	return validateAddress("claimer", m.Claimer)
}

// ValidateBasic performs stateless validation on a set-fee-percentage request.
func (m MsgSetYieldFeePercentageRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	if m.Percentage > FeePrecision {
		return ErrFeePercentageOutOfRange.Wrapf("%d > %d", m.Percentage, FeePrecision)
	}
	return nil
}

// ValidateBasic performs stateless validation on a set-fee-recipient request.
func (m MsgSetYieldFeeRecipientRequest) ValidateBasic() error {
	if err := validateAddress("authority", m.Authority); err != nil {
		return err
	}
	return validateAddress("recipient", m.Recipient)
}
