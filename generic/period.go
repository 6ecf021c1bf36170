package generic

import (
	"fmt"
	"time"
)

// =============================================================================
// PERIOD - The interval a schedule bills
// =============================================================================

// Period is the inclusive interval [Start, End] being billed.
//
// Examples:
//   - A six month tenancy: 2021-01-31T14:48Z - 2021-07-30T14:48Z
//   - A single day: Start == End
type Period struct {
	Start time.Time
	End   time.Time
}

// NewPeriod builds a period in UTC, rejecting an End before Start.
func NewPeriod(start, end time.Time) (Period, error) {
	start, end = start.UTC(), end.UTC()
	if end.Before(start) {
		return Period{}, fmt.Errorf("%w: %s > %s", ErrInvalidPeriod, FormatISO8601(start), FormatISO8601(end))
	}
	return Period{Start: start, End: end}, nil
}

// ParsePeriod parses two ISO-8601 strings into a period.
func ParsePeriod(start, end string) (Period, error) {
	s, err := ParseISO8601(start)
	if err != nil {
		return Period{}, fmt.Errorf("start: %w", err)
	}
	e, err := ParseISO8601(end)
	if err != nil {
		return Period{}, fmt.Errorf("end: %w", err)
	}
	return NewPeriod(s, e)
}

// Contains returns true if t is within [Start, End].
func (p Period) Contains(t time.Time) bool {
	return !t.Before(p.Start) && !t.After(p.End)
}

// Days returns the inclusive number of days the period spans.
func (p Period) Days() int { return InclusiveDays(p.Start, p.End) }

func (p Period) String() string {
	return "[" + FormatISO8601(p.Start) + ", " + FormatISO8601(p.End) + "]"
}
