package generic

// =============================================================================
// SCHEDULE - Interface for how a period is split into billed lines
// =============================================================================

// Schedule splits a period into billing lines.
// Implementations define the business logic (fixed-length, calendar-month, etc.)
//
// Contract for every implementation:
//   - Lines are chronological and gap-free: each Start is one day after the
//     previous End.
//   - The first Start equals period.Start and the last End equals period.End.
//   - Amounts are already rounded with Amount.Round.
type Schedule interface {
	// Lines returns the billing lines covering [period.Start, period.End].
	Lines(period Period) []Line
}

