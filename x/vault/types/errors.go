package types

import "errors"

// The vault surfaces five failure classes. Collaborator rejections (ledger,
// rate service, custodian, debt token) are wrapped with operation context
// only and otherwise passed through verbatim.
var (
	// ErrUnauthorized is returned when the caller lacks the admin or
	// operator membership an operation requires.
	ErrUnauthorized = errors.New("caller not authorized")

	// ErrUnrecognizedParameter is returned for parameter names outside the
	// recognized set.
	ErrUnrecognizedParameter = errors.New("unrecognized parameter")

	// ErrNullOutputTarget is returned when the output routing target would
	// be set to the null identity.
	ErrNullOutputTarget = errors.New("output target cannot be null")

	// ErrRateServiceNotConfigured is returned when a debt operation runs
	// before a rate-accrual service reference has been set.
	ErrRateServiceNotConfigured = errors.New("rate service not configured")

	// ErrIntOverflow is returned when a checked fixed-point operation
	// leaves the signed 256-bit range the ledger accepts for deltas.
	ErrIntOverflow = errors.New("integer overflow")

	// ErrLedgerStillLive is returned when quit is invoked while the ledger
	// has not asserted shutdown.
	ErrLedgerStillLive = errors.New("ledger is still live")

	// ErrNotInitialized is returned when a value-moving operation runs
	// before the one-time construction wiring.
	ErrNotInitialized = errors.New("vault not initialized")

	// ErrAlreadyInitialized is returned when the construction wiring is
	// attempted a second time.
	ErrAlreadyInitialized = errors.New("vault already initialized")
)
