package generic

import (
	"fmt"
	"strings"
	"time"
)

// =============================================================================
// CALENDAR ARITHMETIC - All calculations run in UTC
// =============================================================================

const day = 24 * time.Hour

// AddDays moves t by n calendar days, keeping the time of day.
func AddDays(t time.Time, n int) time.Time { return t.AddDate(0, 0, n) }

// InclusiveDays counts the days in [from, to]: the distance in days rounded
// up, plus one for the first day. The order of the arguments is irrelevant.
func InclusiveDays(from, to time.Time) int {
	d := to.Sub(from)
	if d < 0 {
		d = -d
	}
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	return days + 1
}

func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// =============================================================================
// ISO-8601 - Wire format for dates
// =============================================================================

// ISO8601Layout matches the millisecond UTC form, e.g. 2021-06-01T14:48:00.000Z.
const ISO8601Layout = "2006-01-02T15:04:05.000Z07:00"

// Fractional seconds are accepted after any layout with seconds.
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05Z0700",
	"2006-01-02T15:04:05Z07",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04Z07:00",
	"2006-01-02T15:04Z0700",
	"2006-01-02T15:04",
	"2006-01-02T15Z07:00",
	"2006-01-02T15",
	"2006-01-02",
	"20060102T150405Z0700",
	"20060102T150405",
	"20060102",
}

// ParseISO8601 parses the common ISO-8601 date and date-time forms.
// Values without an offset are read as UTC. The result is always in UTC.
func ParseISO8601(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
}

func FormatISO8601(t time.Time) string { return t.UTC().Format(ISO8601Layout) }
