package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldvault/types"
)

var _ types.MsgServer = &msgServer{}

type msgServer struct {
	*Keeper
}

// NewMsgServer creates the transactional entry-point surface for the module.
func NewMsgServer(keeper *Keeper) types.MsgServer {
	return &msgServer{Keeper: keeper}
}

// Deposit deposits base assets for shares.
func (k msgServer) Deposit(goCtx context.Context, msg *types.MsgDepositRequest) (*types.MsgDepositResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	depositor := sdk.MustAccAddressFromBech32(msg.Depositor)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	shares, err := k.Keeper.Deposit(ctx, depositor, receiver, msg.Assets)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{Shares: shares}, nil
}

// Mint mints an exact share amount against the depositor's assets.
func (k msgServer) Mint(goCtx context.Context, msg *types.MsgMintRequest) (*types.MsgMintResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	depositor := sdk.MustAccAddressFromBech32(msg.Depositor)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	assets, err := k.Keeper.Mint(ctx, depositor, receiver, msg.Shares)
	if err != nil {
		return nil, err
	}
	return &types.MsgMintResponse{Assets: assets}, nil
}

// Sponsor deposits assets and delegates the receiver to the sponsorship sentinel.
func (k msgServer) Sponsor(goCtx context.Context, msg *types.MsgSponsorRequest) (*types.MsgSponsorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	depositor := sdk.MustAccAddressFromBech32(msg.Depositor)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	shares, err := k.Keeper.Sponsor(ctx, depositor, receiver, msg.Assets)
	if err != nil {
		return nil, err
	}
	return &types.MsgSponsorResponse{Shares: shares}, nil
}

// DepositWithPermit consumes a signed authorization, then deposits.
func (k msgServer) DepositWithPermit(goCtx context.Context, msg *types.MsgDepositWithPermitRequest) (*types.MsgDepositResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	depositor := sdk.MustAccAddressFromBech32(msg.Depositor)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	shares, err := k.Keeper.DepositWithPermit(ctx, depositor, receiver, msg.Assets, msg.Permit)
	if err != nil {
		return nil, err
	}
	return &types.MsgDepositResponse{Shares: shares}, nil
}

// MintWithPermit consumes a signed authorization, then mints.
func (k msgServer) MintWithPermit(goCtx context.Context, msg *types.MsgMintWithPermitRequest) (*types.MsgMintResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	depositor := sdk.MustAccAddressFromBech32(msg.Depositor)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	assets, err := k.Keeper.MintWithPermit(ctx, depositor, receiver, msg.Shares, msg.Permit)
	if err != nil {
		return nil, err
	}
	return &types.MsgMintResponse{Assets: assets}, nil
}

// SponsorWithPermit consumes a signed authorization, then sponsors.
func (k msgServer) SponsorWithPermit(goCtx context.Context, msg *types.MsgSponsorWithPermitRequest) (*types.MsgSponsorResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	depositor := sdk.MustAccAddressFromBech32(msg.Depositor)
	receiver := sdk.MustAccAddressFromBech32(msg.Receiver)

	shares, err := k.Keeper.SponsorWithPermit(ctx, depositor, receiver, msg.Assets, msg.Permit)
	if err != nil {
		return nil, err
	}
	return &types.MsgSponsorResponse{Shares: shares}, nil
}

// SetClaimer updates the claimer address.
func (k msgServer) SetClaimer(goCtx context.Context, msg *types.MsgSetClaimerRequest) (*types.MsgSetClaimerResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	authority := sdk.MustAccAddressFromBech32(msg.Authority)
	var claimer sdk.AccAddress
	if msg.Claimer != "" {
		claimer = sdk.MustAccAddressFromBech32(msg.Claimer)
	}

	if err := k.Keeper.SetClaimer(ctx, authority, claimer); err != nil {
		return nil, err
	}
	return &types.MsgSetClaimerResponse{}, nil
}

// SetYieldFeePercentage updates the yield fee percentage.
func (k msgServer) SetYieldFeePercentage(goCtx context.Context, msg *types.MsgSetYieldFeePercentageRequest) (*types.MsgSetYieldFeePercentageResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	authority := sdk.MustAccAddressFromBech32(msg.Authority)

	if err := k.Keeper.SetYieldFeePercentage(ctx, authority, msg.Percentage); err != nil {
		return nil, err
	}
	return &types.MsgSetYieldFeePercentageResponse{}, nil
}

// SetYieldFeeRecipient updates the yield fee recipient.
func (k msgServer) SetYieldFeeRecipient(goCtx context.Context, msg *types.MsgSetYieldFeeRecipientRequest) (*types.MsgSetYieldFeeRecipientResponse, error) {
	ctx := sdk.UnwrapSDKContext(goCtx)

	if err := msg.ValidateBasic(); err != nil {
		return nil, types.ErrInvalidRequest.Wrap(err.Error())
	}
	authority := sdk.MustAccAddressFromBech32(msg.Authority)
	recipient := sdk.MustAccAddressFromBech32(msg.Recipient)

	if err := k.Keeper.SetYieldFeeRecipient(ctx, authority, recipient); err != nil {
		return nil, err
	}
	return &types.MsgSetYieldFeeRecipientResponse{}, nil
}
