package plan

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by the custody engine matches exactly one
// of them through errors.Is.
var (
	// ErrAlreadyInitialized is returned when the admin bootstrap runs twice.
	ErrAlreadyInitialized = errors.New("already initialized")
	// ErrUnauthorized is returned when the caller is not the admin, owner or beneficiary required.
	ErrUnauthorized = errors.New("unauthorized")
	// ErrPlanNotFound is returned when the owner has no live plan.
	ErrPlanNotFound = errors.New("plan not found")
	// ErrPlanAlreadyExists is returned when the owner already has a live plan.
	ErrPlanAlreadyExists = errors.New("plan already exists")
	// ErrInvalidParameter is returned for zero timeouts, zero deposits and bad addresses.
	ErrInvalidParameter = errors.New("invalid parameter")
	// ErrInvalidState is returned when the plan lifecycle forbids the operation.
	ErrInvalidState = errors.New("invalid state")
	// ErrInsufficientFunds is returned when there is nothing to pay out.
	ErrInsufficientFunds = errors.New("insufficient funds")
	// ErrReentrancyRejected is returned while another fund-moving call is in flight.
	ErrReentrancyRejected = errors.New("reentrancy rejected")
	// ErrTransferFailed is returned after a failed payout has been rolled back.
	ErrTransferFailed = errors.New("transfer failed")
)

// Specific errors. Each wraps its kind.
var (
	ErrPlanExists           = fmt.Errorf("%w: owner already has an inheritance plan", ErrPlanAlreadyExists)
	ErrInvalidTimeout       = fmt.Errorf("%w: timeout must be positive", ErrInvalidParameter)
	ErrNoDeposit            = fmt.Errorf("%w: deposit must be positive", ErrInvalidParameter)
	ErrZeroAddress          = fmt.Errorf("%w: zero address", ErrInvalidParameter)
	ErrInvalidAddress       = fmt.Errorf("%w: malformed address", ErrInvalidParameter)
	ErrBalanceOverflow      = fmt.Errorf("%w: deposit overflows plan balance", ErrInvalidParameter)
	ErrTooManyBeneficiaries = fmt.Errorf("%w: at most %d beneficiaries", ErrInvalidParameter, MaxBeneficiaries)
	ErrDuplicateBeneficiary = fmt.Errorf("%w: beneficiary already exists", ErrInvalidParameter)
	ErrNotBeneficiary       = fmt.Errorf("%w: not a beneficiary", ErrUnauthorized)
	ErrNotAdmin             = fmt.Errorf("%w: only admin", ErrUnauthorized)
	ErrShareLocked          = fmt.Errorf("%w: share is locked", ErrInvalidState)
	ErrNotExpired           = fmt.Errorf("%w: plan not expired yet", ErrInvalidState)
	ErrAlreadyLocked        = fmt.Errorf("%w: share already locked", ErrInvalidState)
	ErrNotLocked            = fmt.Errorf("%w: share not locked", ErrInvalidState)
	ErrAlreadyClaimed       = fmt.Errorf("%w: already claimed", ErrInvalidState)
	ErrNoBeneficiaries      = fmt.Errorf("%w: no beneficiaries", ErrInvalidState)
	ErrNoFunds              = fmt.Errorf("%w: no funds to distribute", ErrInsufficientFunds)
	ErrNothingToRedeem      = fmt.Errorf("%w: nothing to redeem", ErrInsufficientFunds)
	ErrNothingToWithdraw    = fmt.Errorf("%w: nothing to withdraw", ErrInsufficientFunds)
	ErrReentrancy           = fmt.Errorf("%w: fund movement already in flight", ErrReentrancyRejected)
)

// kinds lists the error kinds in match order.
//
//nolint:gochecknoglobals // Read-only lookup table.
var kinds = []error{
	ErrAlreadyInitialized,
	ErrUnauthorized,
	ErrPlanNotFound,
	ErrPlanAlreadyExists,
	ErrInvalidParameter,
	ErrInvalidState,
	ErrInsufficientFunds,
	ErrReentrancyRejected,
	ErrTransferFailed,
}

// Kind returns the error kind err belongs to, or nil when err is not a vault error.
func Kind(err error) error {
	for _, kind := range kinds {
		if errors.Is(err, kind) {
			return kind
		}
	}

	return nil
}
