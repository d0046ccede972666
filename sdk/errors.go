package sdk

import "errors"

// Failure kinds shared by every ledger in the module. Operations wrap these
// with call-site detail via %w; callers match with errors.Is. Any failure
// aborts the whole enclosing operation with no partial state mutation.
var (
	// ErrAlreadyInitialized indicates one-time setup was run twice.
	ErrAlreadyInitialized = errors.New("ledger: already initialized")

	// ErrInvalidAmount indicates a non-positive amount where a positive one is
	// required, or a negative amount where a non-negative one is required.
	ErrInvalidAmount = errors.New("ledger: invalid amount")

	// ErrAmountOverflow indicates an amount that would overflow a running total.
	ErrAmountOverflow = errors.New("ledger: amount overflows total")

	// ErrInsufficientBalance indicates a funds shortfall.
	ErrInsufficientBalance = errors.New("ledger: insufficient balance")

	// ErrInsufficientAllowance indicates a spend beyond the approved allowance.
	ErrInsufficientAllowance = errors.New("ledger: insufficient allowance")

	// ErrNotAuthenticated indicates the call was not authorized by the
	// required actor identity.
	ErrNotAuthenticated = errors.New("ledger: not authenticated")

	// ErrNotFound indicates an unknown proposal or instance id.
	ErrNotFound = errors.New("ledger: not found")

	// ErrAlreadyExecuted indicates re-execution of a terminal proposal.
	ErrAlreadyExecuted = errors.New("ledger: proposal already executed")

	// ErrNotApproved indicates execution attempted with a non-positive tally.
	ErrNotApproved = errors.New("ledger: proposal not approved")

	// ErrDivisionByZero indicates a distribution attempted with zero total supply.
	ErrDivisionByZero = errors.New("ledger: zero total supply")
)
