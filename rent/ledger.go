package rent

import (
	"errors"
	"fmt"

	"github.com/warp/rent-ledger/generic"
)

// ErrUnknownFrequency is returned for a frequency outside Frequencies().
var ErrUnknownFrequency = errors.New("unknown frequency")

// Compile-time checks that the schedules implement generic.Schedule
var (
	_ generic.Schedule = (*FixedPeriodSchedule)(nil)
	_ generic.Schedule = (*CalendarMonthSchedule)(nil)
)

// ScheduleFor returns the schedule that bills weeklyRent at freq.
func ScheduleFor(freq Frequency, weeklyRent generic.Amount) (generic.Schedule, error) {
	switch freq {
	case Monthly:
		return &CalendarMonthSchedule{WeeklyRent: weeklyRent}, nil
	case Weekly:
		return &FixedPeriodSchedule{PeriodDays: 7, PeriodRent: weeklyRent, WeeklyRent: weeklyRent}, nil
	case Fortnightly:
		return &FixedPeriodSchedule{PeriodDays: 14, PeriodRent: weeklyRent.MulInt(2), WeeklyRent: weeklyRent}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFrequency, freq)
	}
}

// Compute builds the ledger for req.
func Compute(req Request) (Ledger, error) {
	if req.Period.End.Before(req.Period.Start) {
		return nil, fmt.Errorf("rent.Compute: %w", generic.ErrInvalidPeriod)
	}
	schedule, err := ScheduleFor(req.Frequency, req.WeeklyRent)
	if err != nil {
		return nil, fmt.Errorf("rent.Compute: %w", err)
	}
	return Ledger(schedule.Lines(req.Period)), nil
}

// ComputeLedger builds the ledger for a period given as ISO-8601 strings.
func ComputeLedger(startISO, endISO string, freq Frequency, weeklyRent generic.Amount) (Ledger, error) {
	period, err := generic.ParsePeriod(startISO, endISO)
	if err != nil {
		return nil, fmt.Errorf("rent.ComputeLedger: %w", err)
	}
	return Compute(Request{Period: period, Frequency: freq, WeeklyRent: weeklyRent})
}
