package keeper

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/provlabs/yieldvault/types"
	"github.com/provlabs/yieldvault/utils"
)

var _ types.QueryServer = &queryServer{}

type queryServer struct {
	*Keeper
}

// NewQueryServer creates the read-only surface for the module.
func NewQueryServer(keeper *Keeper) types.QueryServer {
	return &queryServer{Keeper: keeper}
}

// ExchangeRate returns the live and last-recorded exchange rates.
func (k queryServer) ExchangeRate(goCtx context.Context, req *types.QueryExchangeRateRequest) (*types.QueryExchangeRateResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	rate, err := k.CurrentExchangeRate(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	lastRate, err := k.getLastRecordedExchangeRate(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	return &types.QueryExchangeRateResponse{Rate: rate, LastRecordedRate: lastRate}, nil
}

// IsVaultCollateralized reports whether the rate is at or above par.
func (k queryServer) IsVaultCollateralized(goCtx context.Context, req *types.QueryIsVaultCollateralizedRequest) (*types.QueryIsVaultCollateralizedResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	collateralized, err := k.Keeper.IsVaultCollateralized(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryIsVaultCollateralizedResponse{Collateralized: collateralized}, nil
}

// TotalAssets returns the total managed assets.
func (k queryServer) TotalAssets(goCtx context.Context, req *types.QueryTotalAssetsRequest) (*types.QueryTotalAssetsResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	return &types.QueryTotalAssetsResponse{TotalAssets: k.Keeper.TotalAssets(ctx)}, nil
}

// TotalShares returns the total claim supply.
func (k queryServer) TotalShares(goCtx context.Context, req *types.QueryTotalSharesRequest) (*types.QueryTotalSharesResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	supply, err := k.TotalShareSupply(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryTotalSharesResponse{TotalShares: supply}, nil
}

// BalanceOf returns a holder's share balance from the balance ledger.
func (k queryServer) BalanceOf(goCtx context.Context, req *types.QueryBalanceOfRequest) (*types.QueryBalanceOfResponse, error) {
	if req == nil || req.Holder == "" {
		return nil, status.Error(codes.InvalidArgument, "holder must be provided")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	holder, err := sdk.AccAddressFromBech32(req.Holder)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid holder: %v", err)
	}

	return &types.QueryBalanceOfResponse{Shares: k.BalanceLedger.BalanceOf(ctx, k.vaultAddr, holder)}, nil
}

// AvailableYieldBalance returns the yield not owed to claim holders.
func (k queryServer) AvailableYieldBalance(goCtx context.Context, req *types.QueryAvailableYieldBalanceRequest) (*types.QueryAvailableYieldBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	yield, err := k.Keeper.AvailableYieldBalance(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryAvailableYieldBalanceResponse{Assets: yield}, nil
}

// AvailableYieldFeeBalance returns the fee share of the available yield.
func (k queryServer) AvailableYieldFeeBalance(goCtx context.Context, req *types.QueryAvailableYieldFeeBalanceRequest) (*types.QueryAvailableYieldFeeBalanceResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	feeBalance, err := k.Keeper.AvailableYieldFeeBalance(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	return &types.QueryAvailableYieldFeeBalanceResponse{Assets: feeBalance}, nil
}

// YieldFee returns the fee configuration and accrued fee claim supply.
func (k queryServer) YieldFee(goCtx context.Context, req *types.QueryYieldFeeRequest) (*types.QueryYieldFeeResponse, error) {
	if req == nil {
		return nil, status.Error(codes.InvalidArgument, "invalid request")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	pct, err := k.GetYieldFeePercentage(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	recipient, err := k.GetYieldFeeRecipient(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}
	feeSupply, err := k.GetYieldFeeTotalSupply(ctx)
	if err != nil {
		return nil, status.Error(codes.Internal, err.Error())
	}

	resp := &types.QueryYieldFeeResponse{Percentage: pct, TotalSupply: feeSupply}
	if !recipient.Empty() {
		resp.Recipient = recipient.String()
	}
	return resp, nil
}

// EstimateDeposit estimates the shares minted for a given asset amount.
func (k queryServer) EstimateDeposit(goCtx context.Context, req *types.QueryEstimateDepositRequest) (*types.QueryEstimateDepositResponse, error) {
	if req == nil || req.Assets.IsNil() {
		return nil, status.Error(codes.InvalidArgument, "assets must be provided")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	shares, err := k.ConvertToShares(ctx, req.Assets, utils.RoundDown)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to estimate shares: %v", err)
	}

	return &types.QueryEstimateDepositResponse{
		Shares: shares,
		Height: ctx.BlockHeight(),
		Time:   ctx.BlockTime().UTC(),
	}, nil
}

// EstimateMint estimates the asset cost of minting an exact share amount.
func (k queryServer) EstimateMint(goCtx context.Context, req *types.QueryEstimateMintRequest) (*types.QueryEstimateMintResponse, error) {
	if req == nil || req.Shares.IsNil() {
		return nil, status.Error(codes.InvalidArgument, "shares must be provided")
	}
	ctx := sdk.UnwrapSDKContext(goCtx)

	assets, err := k.ConvertToAssets(ctx, req.Shares, utils.RoundUp)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to estimate assets: %v", err)
	}

	return &types.QueryEstimateMintResponse{
		Assets: assets,
		Height: ctx.BlockHeight(),
		Time:   ctx.BlockTime().UTC(),
	}, nil
}
