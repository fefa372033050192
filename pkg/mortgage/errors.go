package mortgage

import "errors"

// Validation errors. All are detected before any schedule generation
// begins; a failed invocation never produces a partial schedule.
var (
	// ErrInvalidRate indicates a negative quoted interest rate.
	ErrInvalidRate = errors.New("quoted interest rate must not be negative")

	// ErrInvalidTerm indicates a non-positive principal or period count.
	ErrInvalidTerm = errors.New("principal and amortization period must be positive")

	// ErrInvalidFrequency indicates a non-positive payments-per-year count.
	ErrInvalidFrequency = errors.New("payments per year must be positive")
)
