package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/warp/rent-ledger/generic"
	"github.com/warp/rent-ledger/rent"
)

var testLimits = Limits{MaxPeriodDays: 30, MaxWeeklyRent: generic.NewAmountFromInt(1_000_000_000)}

func decodeRequest(t *testing.T, body string) LedgerRequest {
	t.Helper()
	var req LedgerRequest
	require.NoError(t, json.Unmarshal([]byte(body), &req))
	return req
}

func TestValidateLedgerRequest_Valid(t *testing.T) {
	req := decodeRequest(t, `{"start_date":"2021-06-01T14:48:00.000Z","end_date":"2021-06-30","frequency":"fortnightly","weekly_rent":"101.50","timezone":"Australia/Perth"}`)

	got, errs := validateLedgerRequest(req, Limits{MaxPeriodDays: 36600, MaxWeeklyRent: testLimits.MaxWeeklyRent})
	require.Empty(t, errs)
	assert.Equal(t, rent.Fortnightly, got.Frequency)
	assert.Equal(t, "101.5", got.WeeklyRent.String())
	assert.Equal(t, 2021, got.Period.End.Year())
	assert.Equal(t, 0, got.Period.End.Hour())
}

func TestValidateLedgerRequest_FieldProblems(t *testing.T) {
	tests := []struct {
		name string
		body string
		want []FieldError
	}{
		{
			name: "equal dates are an inverted range",
			body: `{"start_date":"2021-06-01","end_date":"2021-06-01","frequency":"weekly","weekly_rent":1}`,
			want: []FieldError{{"start_date", msgStartAfterEnd}},
		},
		{
			name: "non-string date",
			body: `{"start_date":20210601,"end_date":"2021-06-30","frequency":"weekly","weekly_rent":1}`,
			want: []FieldError{{"start_date", msgStartDateFormat}, {"start_date", msgStartAfterEnd}},
		},
		{
			name: "null is missing",
			body: `{"start_date":"2021-06-01","end_date":"2021-06-30","frequency":null,"weekly_rent":1}`,
			want: []FieldError{{"frequency", msgFrequencyMissing}, {"frequency", msgFrequencyValue}},
		},
		{
			name: "unknown frequency",
			body: `{"start_date":"2021-06-01","end_date":"2021-06-30","frequency":"daily","weekly_rent":1}`,
			want: []FieldError{{"frequency", msgFrequencyValue}},
		},
		{
			name: "non-numeric rent",
			body: `{"start_date":"2021-06-01","end_date":"2021-06-30","frequency":"weekly","weekly_rent":"lots"}`,
			want: []FieldError{{"weekly_rent", msgWeeklyRentNumber}},
		},
		{
			name: "boolean rent",
			body: `{"start_date":"2021-06-01","end_date":"2021-06-30","frequency":"weekly","weekly_rent":true}`,
			want: []FieldError{{"weekly_rent", msgWeeklyRentNumber}},
		},
		{
			name: "negative rent",
			body: `{"start_date":"2021-06-01","end_date":"2021-06-30","frequency":"weekly","weekly_rent":-5}`,
			want: []FieldError{{"weekly_rent", msgWeeklyRentSign}},
		},
		{
			name: "rent above the limit",
			body: `{"start_date":"2021-06-01","end_date":"2021-06-30","frequency":"weekly","weekly_rent":1000000000.01}`,
			want: []FieldError{{"weekly_rent", msgWeeklyRentRange}},
		},
		{
			name: "rent with a huge exponent",
			body: `{"start_date":"2021-06-01","end_date":"2021-06-30","frequency":"weekly","weekly_rent":1e2000000}`,
			want: []FieldError{{"weekly_rent", msgWeeklyRentRange}},
		},
		{
			name: "rent with a huge negative exponent",
			body: `{"start_date":"2021-06-01","end_date":"2021-06-30","frequency":"weekly","weekly_rent":"1e-2000000"}`,
			want: []FieldError{{"weekly_rent", msgWeeklyRentRange}},
		},
		{
			name: "period too long",
			body: `{"start_date":"2021-06-01","end_date":"2021-07-01","frequency":"weekly","weekly_rent":1}`,
			want: []FieldError{{"end_date", msgPeriodTooLong}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, errs := validateLedgerRequest(decodeRequest(t, tt.body), testLimits)
			assert.Equal(t, tt.want, errs)
		})
	}
}

func TestValidateLedgerRequest_ZeroRentAllowed(t *testing.T) {
	req := decodeRequest(t, `{"start_date":"2021-06-01","end_date":"2021-06-30","frequency":"monthly","weekly_rent":0}`)

	got, errs := validateLedgerRequest(req, testLimits)
	require.Empty(t, errs)
	assert.True(t, got.WeeklyRent.Value.IsZero())
}

func TestValidateLedgerRequest_TimezoneIgnored(t *testing.T) {
	withTZ := decodeRequest(t, `{"start_date":"2021-06-01T14:48:00.000Z","end_date":"2021-06-30T14:48:00.000Z","frequency":"weekly","weekly_rent":555,"timezone":"Australia/Perth"}`)
	withoutTZ := decodeRequest(t, `{"start_date":"2021-06-01T14:48:00.000Z","end_date":"2021-06-30T14:48:00.000Z","frequency":"weekly","weekly_rent":555}`)
	assert.JSONEq(t, `"Australia/Perth"`, string(withTZ.Timezone))

	a, errs := validateLedgerRequest(withTZ, testLimits)
	require.Empty(t, errs)
	b, errs := validateLedgerRequest(withoutTZ, testLimits)
	require.Empty(t, errs)
	assert.Equal(t, b, a)
}
