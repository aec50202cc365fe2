// Package mocks provides in-memory implementations of the vault's external
// collaborators (balance ledger, yield sub-vault, base asset) plus a
// store-backed test context, so keeper tests run without a full app.
package mocks

import (
	"fmt"
	"testing"
	"time"

	sdkmath "cosmossdk.io/math"
	storetypes "cosmossdk.io/store/types"

	"github.com/cosmos/cosmos-sdk/runtime"
	"github.com/cosmos/cosmos-sdk/testutil"
	sdk "github.com/cosmos/cosmos-sdk/types"

	"github.com/provlabs/yieldvault/keeper"
	"github.com/provlabs/yieldvault/types"
)

// NewVaultKeeper returns a keeper wired to fresh mocks over a test store.
func NewVaultKeeper(t testing.TB, authority sdk.AccAddress) (sdk.Context, *keeper.Keeper, *Ledger, *YieldVault, *Asset) {
	t.Helper()

	key := storetypes.NewKVStoreKey(types.StoreKey)
	tkey := storetypes.NewTransientStoreKey(fmt.Sprintf("transient_%s", types.ModuleName))
	wrapper := testutil.DefaultContextWithDB(t, key, tkey)

	asset := NewAsset(18)
	ledger := NewLedger()
	yieldVault := NewYieldVault(asset)

	k, err := keeper.NewKeeper(runtime.NewKVStoreService(key), ledger, yieldVault, asset, authority)
	if err != nil {
		t.Fatalf("failed to build vault keeper: %v", err)
	}

	ctx := wrapper.Ctx.WithBlockTime(time.Now().UTC())
	return ctx, k, ledger, yieldVault, asset
}

// Ledger is an in-memory types.BalanceLedger. Holders delegate to themselves
// until sponsored.
type Ledger struct {
	sponsorship sdk.AccAddress

	supply    sdkmath.Int
	balances  map[string]sdkmath.Int
	delegates map[string]sdk.AccAddress

	// MintErr, when set, is returned by Mint to simulate ledger failures.
	MintErr error
	// SponsorErr, when set, is returned by Sponsor.
	SponsorErr error
}

var _ types.BalanceLedger = (*Ledger)(nil)

func NewLedger() *Ledger {
	return &Ledger{
		sponsorship: sdk.AccAddress("sponsorship_________"),
		supply:      sdkmath.ZeroInt(),
		balances:    map[string]sdkmath.Int{},
		delegates:   map[string]sdk.AccAddress{},
	}
}

func (l *Ledger) TotalSupply(_ sdk.Context, _ sdk.AccAddress) sdkmath.Int {
	return l.supply
}

func (l *Ledger) BalanceOf(_ sdk.Context, _ sdk.AccAddress, holder sdk.AccAddress) sdkmath.Int {
	if bal, ok := l.balances[holder.String()]; ok {
		return bal
	}
	return sdkmath.ZeroInt()
}

func (l *Ledger) Mint(ctx sdk.Context, holder sdk.AccAddress, amount sdkmath.Int) error {
	if l.MintErr != nil {
		return l.MintErr
	}
	if amount.GT(types.MaxLedgerAmount) {
		return fmt.Errorf("amount %s exceeds ledger width", amount)
	}
	l.balances[holder.String()] = l.BalanceOf(ctx, nil, holder).Add(amount)
	l.supply = l.supply.Add(amount)
	return nil
}

func (l *Ledger) Burn(ctx sdk.Context, holder sdk.AccAddress, amount sdkmath.Int) error {
	bal := l.BalanceOf(ctx, nil, holder)
	if bal.LT(amount) {
		return fmt.Errorf("insufficient shares: %s < %s", bal, amount)
	}
	l.balances[holder.String()] = bal.Sub(amount)
	l.supply = l.supply.Sub(amount)
	return nil
}

func (l *Ledger) Transfer(ctx sdk.Context, from, to sdk.AccAddress, amount sdkmath.Int) error {
	bal := l.BalanceOf(ctx, nil, from)
	if bal.LT(amount) {
		return fmt.Errorf("insufficient shares: %s < %s", bal, amount)
	}
	l.balances[from.String()] = bal.Sub(amount)
	l.balances[to.String()] = l.BalanceOf(ctx, nil, to).Add(amount)
	return nil
}

func (l *Ledger) DelegateOf(_ sdk.Context, _ sdk.AccAddress, holder sdk.AccAddress) sdk.AccAddress {
	if delegate, ok := l.delegates[holder.String()]; ok {
		return delegate
	}
	return holder
}

func (l *Ledger) Sponsor(_ sdk.Context, holder sdk.AccAddress) error {
	if l.SponsorErr != nil {
		return l.SponsorErr
	}
	l.delegates[holder.String()] = l.sponsorship
	return nil
}

func (l *Ledger) SponsorshipAddress() sdk.AccAddress {
	return l.sponsorship
}

// YieldVault is an in-memory types.YieldVault. Deposits consume allowance on
// the backing asset and move balances into the sub-vault's own address, the
// same observable effects as a real counterparty. Tests adjust Redeemable
// directly to simulate gains or losses.
type YieldVault struct {
	addr  sdk.AccAddress
	asset *Asset

	redeemable map[string]sdkmath.Int

	// DepositErr, when set, is returned by Deposit.
	DepositErr error
}

var _ types.YieldVault = (*YieldVault)(nil)

func NewYieldVault(asset *Asset) *YieldVault {
	return &YieldVault{
		addr:       sdk.AccAddress("yield_sub_vault_____"),
		asset:      asset,
		redeemable: map[string]sdkmath.Int{},
	}
}

func (v *YieldVault) GetAddress() sdk.AccAddress {
	return v.addr
}

func (v *YieldVault) Deposit(ctx sdk.Context, assets sdkmath.Int, onBehalfOf sdk.AccAddress) error {
	if v.DepositErr != nil {
		return v.DepositErr
	}
	if err := v.asset.spendAllowance(onBehalfOf, v.addr, assets); err != nil {
		return err
	}
	if err := v.asset.move(onBehalfOf, v.addr, assets); err != nil {
		return err
	}
	v.redeemable[onBehalfOf.String()] = v.MaxWithdraw(ctx, onBehalfOf).Add(assets)
	return nil
}

func (v *YieldVault) MaxWithdraw(_ sdk.Context, holder sdk.AccAddress) sdkmath.Int {
	if amt, ok := v.redeemable[holder.String()]; ok {
		return amt
	}
	return sdkmath.ZeroInt()
}

// SetRedeemable overrides the redeemable balance for a holder, simulating
// sub-vault gains or losses.
func (v *YieldVault) SetRedeemable(holder sdk.AccAddress, amount sdkmath.Int) {
	v.redeemable[holder.String()] = amount
}

// Asset is an in-memory types.AssetKeeper with balances, allowances, and a
// permit check against the block time.
type Asset struct {
	decimals   uint8
	balances   map[string]sdkmath.Int
	allowances map[string]sdkmath.Int

	// TransferHook, when set, runs after a TransferFrom lands. It lets tests
	// re-enter the keeper at the asset-movement step.
	TransferHook func(ctx sdk.Context, from, to sdk.AccAddress, amount sdkmath.Int) error
	// TransferErr, when set, is returned by TransferFrom.
	TransferErr error
	// PermitErr, when set, is returned by Permit.
	PermitErr error
}

var _ types.AssetKeeper = (*Asset)(nil)

func NewAsset(decimals uint8) *Asset {
	return &Asset{
		decimals:   decimals,
		balances:   map[string]sdkmath.Int{},
		allowances: map[string]sdkmath.Int{},
	}
}

func (a *Asset) Decimals() uint8 {
	return a.decimals
}

func (a *Asset) BalanceOf(_ sdk.Context, addr sdk.AccAddress) sdkmath.Int {
	if bal, ok := a.balances[addr.String()]; ok {
		return bal
	}
	return sdkmath.ZeroInt()
}

// Fund credits an address, standing in for an external faucet.
func (a *Asset) Fund(addr sdk.AccAddress, amount sdkmath.Int) {
	a.balances[addr.String()] = a.balanceOf(addr).Add(amount)
}

func (a *Asset) TransferFrom(ctx sdk.Context, from, to sdk.AccAddress, amount sdkmath.Int) error {
	if a.TransferErr != nil {
		return a.TransferErr
	}
	if err := a.move(from, to, amount); err != nil {
		return err
	}
	if a.TransferHook != nil {
		hook := a.TransferHook
		a.TransferHook = nil
		return hook(ctx, from, to, amount)
	}
	return nil
}

func (a *Asset) IncreaseAllowance(_ sdk.Context, owner, spender sdk.AccAddress, amount sdkmath.Int) error {
	key := allowanceKey(owner, spender)
	current, ok := a.allowances[key]
	if !ok {
		current = sdkmath.ZeroInt()
	}
	a.allowances[key] = current.Add(amount)
	return nil
}

func (a *Asset) Permit(ctx sdk.Context, owner, spender sdk.AccAddress, amount sdkmath.Int, deadline int64, signature []byte) error {
	if a.PermitErr != nil {
		return a.PermitErr
	}
	if deadline < ctx.BlockTime().Unix() {
		return fmt.Errorf("permit expired at %d", deadline)
	}
	if len(signature) == 0 {
		return fmt.Errorf("invalid permit signature")
	}
	return a.IncreaseAllowance(ctx, owner, spender, amount)
}

func (a *Asset) balanceOf(addr sdk.AccAddress) sdkmath.Int {
	if bal, ok := a.balances[addr.String()]; ok {
		return bal
	}
	return sdkmath.ZeroInt()
}

func (a *Asset) move(from, to sdk.AccAddress, amount sdkmath.Int) error {
	bal := a.balanceOf(from)
	if bal.LT(amount) {
		return fmt.Errorf("insufficient funds: %s < %s", bal, amount)
	}
	a.balances[from.String()] = bal.Sub(amount)
	a.balances[to.String()] = a.balanceOf(to).Add(amount)
	return nil
}

func (a *Asset) spendAllowance(owner, spender sdk.AccAddress, amount sdkmath.Int) error {
	key := allowanceKey(owner, spender)
	current, ok := a.allowances[key]
	if !ok || current.LT(amount) {
		return fmt.Errorf("insufficient allowance for %s", spender)
	}
	a.allowances[key] = current.Sub(amount)
	return nil
}

func allowanceKey(owner, spender sdk.AccAddress) string {
	return owner.String() + "/" + spender.String()
}
