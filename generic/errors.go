/*
errors.go - Centralized error types for the billing primitives

PURPOSE:
  All sentinel errors in one place for consistency and discoverability.
  Domain packages wrap these errors with additional context.

USAGE:
  if errors.Is(err, generic.ErrInvalidPeriod) {
      // client supplied an end before the start
  }

SEE ALSO:
  - period.go: Returns ErrInvalidPeriod
  - time.go: Returns ErrInvalidDate
  - rent/ledger.go: Wraps these errors with domain context
*/
package generic

import "errors"

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrInvalidPeriod is returned when a period is malformed (end before start).
	ErrInvalidPeriod = errors.New("invalid period: end before start")

	// ErrInvalidDate is returned when a date is not in a supported ISO-8601 form.
	ErrInvalidDate = errors.New("invalid ISO-8601 date")

	// ErrInvalidAmount is returned when an amount is not a decimal number.
	ErrInvalidAmount = errors.New("invalid amount")
)

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidPeriod) ||
		errors.Is(err, ErrInvalidDate) ||
		errors.Is(err, ErrInvalidAmount)
}
