// Package rent implements the rent ledger domain.
// It uses the generic billing primitives with rent specific schedules.
package rent

import (
	"fmt"

	"github.com/warp/rent-ledger/generic"
)

// =============================================================================
// FREQUENCY
// =============================================================================

// Frequency is how often rent falls due.
type Frequency string

const (
	Weekly      Frequency = "weekly"
	Fortnightly Frequency = "fortnightly"
	Monthly     Frequency = "monthly"
)

// Frequencies lists every supported frequency in display order.
func Frequencies() []Frequency { return []Frequency{Weekly, Fortnightly, Monthly} }

func (f Frequency) Valid() bool {
	switch f {
	case Weekly, Fortnightly, Monthly:
		return true
	}
	return false
}

// ParseFrequency converts a wire value into a Frequency.
func ParseFrequency(s string) (Frequency, error) {
	f := Frequency(s)
	if !f.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFrequency, s)
	}
	return f, nil
}

// =============================================================================
// REQUEST & LEDGER
// =============================================================================

// Request is a billing period request. The caller guarantees
// Period.Start <= Period.End and a non-negative WeeklyRent.
type Request struct {
	Period     generic.Period
	Frequency  Frequency
	WeeklyRent generic.Amount
}

// Ledger is the ordered list of lines covering a request's period.
type Ledger []generic.Line

// Total sums the amounts of every line.
func (l Ledger) Total() generic.Amount {
	var total generic.Amount
	for _, line := range l {
		total = total.Add(line.Amount)
	}
	return total
}

// Period returns the interval the ledger covers.
func (l Ledger) Period() (generic.Period, bool) {
	if len(l) == 0 {
		return generic.Period{}, false
	}
	return generic.Period{Start: l[0].Start, End: l[len(l)-1].End}, true
}
