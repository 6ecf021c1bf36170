/*
schedule.go - Rent schedule implementations

PURPOSE:
  Implements generic.Schedule for rent. A schedule walks the billed period
  with a cursor, emitting one line per rent period.

SCHEDULE TYPES:
  FixedPeriodSchedule:
    - Weekly (7 days) and fortnightly (14 days)
    - Each full period is charged the full period rent
    - A trailing short period is prorated at weekly rent / 7 per day

  CalendarMonthSchedule:
    - Monthly, anchored on the start date's day of month
    - Each full month is charged weekly rent / 7 * 365 / 12,
      regardless of how many days the month actually has
    - A trailing short month is prorated per day like the fixed schedule

MONTH LENGTH:
  Starting on the 31st targets the 31st of every later month. When the
  target month is shorter the next start is clamped:
  - February: the 29th in a leap year, the 28th otherwise
  - Any other month: the anchor day minus one

EXAMPLE:
  // $555/week, monthly, Jan 31 - May 30 2021
  s := &CalendarMonthSchedule{WeeklyRent: generic.MustParseAmount("555")}
  lines := s.Lines(period)
  // Starts: Jan 31, Feb 28, Mar 31, Apr 30 - each charged 2411.61

SEE ALSO:
  - generic/schedule.go: Schedule interface
  - ledger.go: Picks the schedule for a frequency
*/
package rent

import (
	"time"

	"github.com/warp/rent-ledger/generic"
)

const (
	daysPerYear   = 365
	monthsPerYear = 12
	daysPerWeek   = 7
)

// Prorate charges weeklyRent / 7 for each of days, rounded. The
// multiplication happens first so exact ties stay exact.
func Prorate(weeklyRent generic.Amount, days int) generic.Amount {
	return weeklyRent.MulInt(days).DivInt(daysPerWeek).Round()
}

// MonthlyRent is the fixed average-month charge: weeklyRent / 7 * 365 / 12.
func MonthlyRent(weeklyRent generic.Amount) generic.Amount {
	return weeklyRent.MulInt(daysPerYear).DivInt(daysPerWeek * monthsPerYear).Round()
}

// =============================================================================
// FIXED PERIOD SCHEDULE
// =============================================================================

// FixedPeriodSchedule implements generic.Schedule for "X days per period".
type FixedPeriodSchedule struct {
	PeriodDays int
	PeriodRent generic.Amount
	WeeklyRent generic.Amount
}

func (s *FixedPeriodSchedule) Lines(period generic.Period) []generic.Line {
	var lines []generic.Line
	full := s.PeriodRent.Round()

	for cursor := period.Start; !cursor.After(period.End); cursor = generic.AddDays(cursor, 1) {
		remaining := generic.InclusiveDays(cursor, period.End)

		if remaining < s.PeriodDays {
			lines = append(lines, generic.Line{
				Start:  cursor,
				End:    period.End,
				Amount: Prorate(s.WeeklyRent, remaining),
			})
			cursor = period.End
			continue
		}

		end := generic.AddDays(cursor, s.PeriodDays-1)
		// A period end earlier in the day than the start can leave the
		// last full period just past period.End.
		if !period.Contains(end) {
			end = period.End
		}
		lines = append(lines, generic.Line{Start: cursor, End: end, Amount: full})
		cursor = end
	}
	return lines
}

// =============================================================================
// CALENDAR MONTH SCHEDULE
// =============================================================================

// CalendarMonthSchedule implements generic.Schedule for monthly rent.
type CalendarMonthSchedule struct {
	WeeklyRent generic.Amount
}

func (s *CalendarMonthSchedule) Lines(period generic.Period) []generic.Line {
	var lines []generic.Line
	anchor := period.Start.Day()
	full := MonthlyRent(s.WeeklyRent)

	for cursor := period.Start; !cursor.After(period.End); cursor = generic.AddDays(cursor, 1) {
		end := generic.AddDays(NextMonthlyStart(cursor, anchor), -1)

		if !period.Contains(end) {
			lines = append(lines, generic.Line{
				Start:  cursor,
				End:    period.End,
				Amount: Prorate(s.WeeklyRent, generic.InclusiveDays(cursor, period.End)),
			})
			cursor = period.End
			continue
		}

		lines = append(lines, generic.Line{Start: cursor, End: end, Amount: full})
		cursor = end
	}
	return lines
}

// NextMonthlyStart returns the anchor day of the month after cursor's month,
// at cursor's time of day, clamped when that month is too short.
func NextMonthlyStart(cursor time.Time, anchor int) time.Time {
	year, month := cursor.Year(), cursor.Month()+1
	h, m, sec := cursor.Clock()
	at := func(d int) time.Time {
		return time.Date(year, month, d, h, m, sec, cursor.Nanosecond(), cursor.Location())
	}

	if anchor <= generic.DaysInMonth(year, month) {
		return at(anchor)
	}
	if month == time.February {
		if generic.IsLeapYear(year) {
			return at(29)
		}
		return at(28)
	}
	return at(anchor - 1)
}
