package api

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/warp/rent-ledger/generic"
	"github.com/warp/rent-ledger/rent"
)

// Messages are part of the public API; clients match on them.
const (
	msgStartDateMissing  = "start_date does not exists"
	msgEndDateMissing    = "end_date does not exists"
	msgFrequencyMissing  = "frequency does not exists"
	msgWeeklyRentMissing = "weekly_rent does not exists"

	msgStartDateFormat  = "start_date has to be an ISO string"
	msgEndDateFormat    = "end_date has to be an ISO string"
	msgStartAfterEnd    = "start_date is a date after end_date."
	msgWeeklyRentNumber = "weekly_rent has to decimal or integer"
	msgWeeklyRentSign   = "weekly_rent must not be negative"
	msgWeeklyRentRange  = "weekly_rent is out of range"
	msgFrequencyValue   = "frequency has to 'weekly','fortnightly' or 'monthly'"
	msgPeriodTooLong    = "end_date is too far after start_date"
)

// Limits bound the work a single ledger request can trigger.
type Limits struct {
	MaxPeriodDays int
	MaxWeeklyRent generic.Amount
}

// validateLedgerRequest checks every field of req and returns either the
// core request or the complete list of problems. Presence checks come
// first, then format checks, so a missing field reports both.
func validateLedgerRequest(req LedgerRequest, limits Limits) (rent.Request, []FieldError) {
	var errs []FieldError
	add := func(field, message string) {
		errs = append(errs, FieldError{Field: field, Message: message})
	}

	if !present(req.StartDate) {
		add("start_date", msgStartDateMissing)
	}
	if !present(req.EndDate) {
		add("end_date", msgEndDateMissing)
	}
	if !present(req.Frequency) {
		add("frequency", msgFrequencyMissing)
	}
	if !present(req.WeeklyRent) {
		add("weekly_rent", msgWeeklyRentMissing)
	}

	start, startOK := parseDate(req.StartDate)
	if !startOK {
		add("start_date", msgStartDateFormat)
	}
	end, endOK := parseDate(req.EndDate)
	if !endOK {
		add("end_date", msgEndDateFormat)
	}
	period := generic.Period{Start: start, End: end}
	switch {
	case !startOK || !endOK || !start.Before(end):
		add("start_date", msgStartAfterEnd)
	case period.Days() > limits.MaxPeriodDays:
		add("end_date", msgPeriodTooLong)
	}

	weeklyRent, rentOK := parseAmount(req.WeeklyRent)
	switch {
	case !rentOK:
		add("weekly_rent", msgWeeklyRentNumber)
	case weeklyRent.IsNegative():
		add("weekly_rent", msgWeeklyRentSign)
	case !weeklyRent.WithinLimit(limits.MaxWeeklyRent):
		add("weekly_rent", msgWeeklyRentRange)
	}

	freq, freqOK := parseFrequency(req.Frequency)
	if !freqOK {
		add("frequency", msgFrequencyValue)
	}

	if len(errs) > 0 {
		return rent.Request{}, errs
	}
	return rent.Request{
		Period:     period,
		Frequency:  freq,
		WeeklyRent: weeklyRent,
	}, nil
}

// present treats an absent field and an explicit null alike.
func present(raw json.RawMessage) bool {
	raw = bytes.TrimSpace(raw)
	return len(raw) > 0 && !bytes.Equal(raw, []byte("null"))
}

func parseString(raw json.RawMessage) (string, bool) {
	if !present(raw) {
		return "", false
	}
	var s string
	if err := json.Unmarshal(raw, &s); err != nil {
		return "", false
	}
	return s, true
}

func parseDate(raw json.RawMessage) (time.Time, bool) {
	s, ok := parseString(raw)
	if !ok {
		return time.Time{}, false
	}
	t, err := generic.ParseISO8601(s)
	return t, err == nil
}

func parseAmount(raw json.RawMessage) (generic.Amount, bool) {
	if !present(raw) {
		return generic.Amount{}, false
	}
	var a generic.Amount
	if err := json.Unmarshal(raw, &a); err != nil {
		return generic.Amount{}, false
	}
	return a, true
}

func parseFrequency(raw json.RawMessage) (rent.Frequency, bool) {
	s, ok := parseString(raw)
	if !ok {
		return "", false
	}
	f, err := rent.ParseFrequency(s)
	return f, err == nil
}
