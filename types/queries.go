package types

import (
	"context"
	"time"

	sdkmath "cosmossdk.io/math"
)

// QueryServer is the vault's read-only surface. Nothing here mutates state;
// in particular, exchange-rate reads never refresh the cached rate.
type QueryServer interface {
	ExchangeRate(ctx context.Context, req *QueryExchangeRateRequest) (*QueryExchangeRateResponse, error)
	IsVaultCollateralized(ctx context.Context, req *QueryIsVaultCollateralizedRequest) (*QueryIsVaultCollateralizedResponse, error)
	TotalAssets(ctx context.Context, req *QueryTotalAssetsRequest) (*QueryTotalAssetsResponse, error)
	TotalShares(ctx context.Context, req *QueryTotalSharesRequest) (*QueryTotalSharesResponse, error)
	BalanceOf(ctx context.Context, req *QueryBalanceOfRequest) (*QueryBalanceOfResponse, error)
	AvailableYieldBalance(ctx context.Context, req *QueryAvailableYieldBalanceRequest) (*QueryAvailableYieldBalanceResponse, error)
	AvailableYieldFeeBalance(ctx context.Context, req *QueryAvailableYieldFeeBalanceRequest) (*QueryAvailableYieldFeeBalanceResponse, error)
	YieldFee(ctx context.Context, req *QueryYieldFeeRequest) (*QueryYieldFeeResponse, error)
	EstimateDeposit(ctx context.Context, req *QueryEstimateDepositRequest) (*QueryEstimateDepositResponse, error)
	EstimateMint(ctx context.Context, req *QueryEstimateMintRequest) (*QueryEstimateMintResponse, error)
}

type QueryExchangeRateRequest struct{}

type QueryExchangeRateResponse struct {
	// Rate is assets per assetUnit of shares.
	Rate sdkmath.Int
	// LastRecordedRate is the cached rate as of the last mint.
	LastRecordedRate sdkmath.Int
}

type QueryIsVaultCollateralizedRequest struct{}

type QueryIsVaultCollateralizedResponse struct {
	Collateralized bool
}

type QueryTotalAssetsRequest struct{}

type QueryTotalAssetsResponse struct {
	TotalAssets sdkmath.Int
}

type QueryTotalSharesRequest struct{}

type QueryTotalSharesResponse struct {
	// TotalShares is holder supply plus the accrued fee claim supply.
	TotalShares sdkmath.Int
}

type QueryBalanceOfRequest struct {
	Holder string
}

type QueryBalanceOfResponse struct {
	Shares sdkmath.Int
}

type QueryAvailableYieldBalanceRequest struct{}

type QueryAvailableYieldBalanceResponse struct {
	Assets sdkmath.Int
}

type QueryAvailableYieldFeeBalanceRequest struct{}

type QueryAvailableYieldFeeBalanceResponse struct {
	Assets sdkmath.Int
}

type QueryYieldFeeRequest struct{}

type QueryYieldFeeResponse struct {
	Percentage  uint64
	Recipient   string
	TotalSupply sdkmath.Int
}

type QueryEstimateDepositRequest struct {
	Assets sdkmath.Int
}

type QueryEstimateDepositResponse struct {
	Shares sdkmath.Int
	Height int64
	Time   time.Time
}

type QueryEstimateMintRequest struct {
	Shares sdkmath.Int
}

type QueryEstimateMintResponse struct {
	Assets sdkmath.Int
	Height int64
	Time   time.Time
}
