package types

import (
	"fmt"

	"cosmossdk.io/errors"
	sdkmath "cosmossdk.io/math"
)

var (
	ErrInvalidRequest = errors.Register(ModuleName, 1, "invalid request")

	// ErrZeroAddressConfig indicates a required dependency or address was
	// missing at construction. Construction aborts entirely.
	ErrZeroAddressConfig = errors.Register(ModuleName, 2, "required configuration address is empty")

	// ErrFeePercentageOutOfRange indicates a requested yield fee percentage
	// above FeePrecision. The prior value is retained.
	ErrFeePercentageOutOfRange = errors.Register(ModuleName, 3, "yield fee percentage exceeds precision denominator")

	// ErrCapacityExceeded indicates a deposit or mint request above the
	// vault's current max. See CapacityError for the structured fields.
	ErrCapacityExceeded = errors.Register(ModuleName, 4, "requested amount exceeds vault capacity")

	// ErrUnderCollateralized indicates the vault's exchange rate is below par.
	// Surfaced as the cause of a CapacityError when the guard collapses the
	// deposit and mint ceilings to zero.
	ErrUnderCollateralized = errors.Register(ModuleName, 5, "vault is under-collateralized")

	// ErrPermitAuthorizationFailed indicates the base asset rejected a signed
	// authorization. The underlying cause is preserved via Unwrap.
	ErrPermitAuthorizationFailed = errors.Register(ModuleName, 6, "permit authorization failed")

	// ErrLedgerAmountOverflow indicates an amount above the balance ledger's
	// 96-bit field. Amounts are bounds-checked at the module boundary rather
	// than silently truncated.
	ErrLedgerAmountOverflow = errors.Register(ModuleName, 7, "amount exceeds balance ledger width")

	// ErrUnauthorized indicates a gated operation was attempted by an address
	// other than the vault authority.
	ErrUnauthorized = errors.Register(ModuleName, 8, "signer is not the vault authority")
)

// CapacityError reports a deposit or mint request that exceeds the vault's
// current max. It carries the requested amount, the receiver, and the max at
// the time of the call so callers can match on fields instead of message text.
type CapacityError struct {
	// Operation is "deposit" or "mint".
	Operation string
	// Requested is the asset amount (deposit) or share amount (mint) asked for.
	Requested sdkmath.Int
	// Receiver is the intended share receiver.
	Receiver string
	// Max is the guard's current ceiling for the operation.
	Max sdkmath.Int
	// Cause is the condition that collapsed the ceiling, if any, such as
	// ErrUnderCollateralized.
	Cause error
}

// Error implements the error interface.
func (e *CapacityError) Error() string {
	return fmt.Sprintf("%s of %s for %s exceeds max %s", e.Operation, e.Requested, e.Receiver, e.Max)
}

// Is reports whether target matches the capacity-exceeded error kind, so
// errors.Is(err, ErrCapacityExceeded) holds for any CapacityError.
func (e *CapacityError) Is(target error) bool { return target == ErrCapacityExceeded }

// Unwrap exposes the cause, if any, to errors.Is/As.
func (e *CapacityError) Unwrap() error { return e.Cause }

// NewCapacityError constructs a CapacityError for the given operation.
func NewCapacityError(operation string, requested sdkmath.Int, receiver string, max sdkmath.Int) error {
	return &CapacityError{Operation: operation, Requested: requested, Receiver: receiver, Max: max}
}

// PermitError wraps a failure from the base asset's permit check (expired
// deadline, bad signature, nonce mismatch). The asset's error is propagated
// verbatim through Unwrap; the whole composite call aborts with no side effects.
type PermitError struct {
	// Err is the asset's permit rejection.
	Err error
}

// Error implements the error interface by returning the underlying message.
func (e *PermitError) Error() string { return e.Err.Error() }

// Unwrap allows errors.Is/As to inspect the asset's underlying error.
func (e *PermitError) Unwrap() error { return e.Err }

// Is reports whether target matches the permit-failure error kind.
func (e *PermitError) Is(target error) bool { return target == ErrPermitAuthorizationFailed }

// NewPermitError wraps err as a permit authorization failure.
func NewPermitError(err error) error {
	return &PermitError{Err: err}
}
