package types

import (
	sdkmath "cosmossdk.io/math"

	sdk "github.com/cosmos/cosmos-sdk/types"
)

const (
	EventTypeDeposit                   = "vault_deposit"
	EventTypeSponsor                   = "vault_sponsor"
	EventTypeClaimerUpdated            = "vault_claimer_updated"
	EventTypeYieldFeePercentageUpdated = "vault_yield_fee_percentage_updated"
	EventTypeYieldFeeRecipientUpdated  = "vault_yield_fee_recipient_updated"

	AttributeKeyCaller     = "caller"
	AttributeKeyReceiver   = "receiver"
	AttributeKeyAssets     = "assets"
	AttributeKeyShares     = "shares"
	AttributeKeyAuthority  = "authority"
	AttributeKeyClaimer    = "claimer"
	AttributeKeyRecipient  = "recipient"
	AttributeKeyPercentage = "percentage"
)

// NewEventDeposit creates the deposit notification emitted after every
// successful deposit, mint, or sponsor workflow.
func NewEventDeposit(caller, receiver string, assets, shares sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeDeposit,
		sdk.NewAttribute(AttributeKeyCaller, caller),
		sdk.NewAttribute(AttributeKeyReceiver, receiver),
		sdk.NewAttribute(AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
	)
}

// NewEventSponsor creates the sponsorship notification emitted when a deposit
// re-delegates the receiver to the ledger's sponsorship sentinel.
func NewEventSponsor(caller, receiver string, assets, shares sdkmath.Int) sdk.Event {
	return sdk.NewEvent(EventTypeSponsor,
		sdk.NewAttribute(AttributeKeyCaller, caller),
		sdk.NewAttribute(AttributeKeyReceiver, receiver),
		sdk.NewAttribute(AttributeKeyAssets, assets.String()),
		sdk.NewAttribute(AttributeKeyShares, shares.String()),
	)
}

// NewEventClaimerUpdated creates a claimer update event.
func NewEventClaimerUpdated(authority, claimer string) sdk.Event {
	return sdk.NewEvent(EventTypeClaimerUpdated,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
		sdk.NewAttribute(AttributeKeyClaimer, claimer),
	)
}

// NewEventYieldFeePercentageUpdated creates a fee percentage update event.
func NewEventYieldFeePercentageUpdated(authority string, percentage uint64) sdk.Event {
	return sdk.NewEvent(EventTypeYieldFeePercentageUpdated,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
		sdk.NewAttribute(AttributeKeyPercentage, sdkmath.NewIntFromUint64(percentage).String()),
	)
}

// NewEventYieldFeeRecipientUpdated creates a fee recipient update event.
func NewEventYieldFeeRecipientUpdated(authority, recipient string) sdk.Event {
	return sdk.NewEvent(EventTypeYieldFeeRecipientUpdated,
		sdk.NewAttribute(AttributeKeyAuthority, authority),
		sdk.NewAttribute(AttributeKeyRecipient, recipient),
	)
}
