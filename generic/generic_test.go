package generic

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// =============================================================================
// AMOUNT TESTS
// =============================================================================

func TestAmount_Round(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"158.5714285714285714", "158.57"},
		{"2411.6071428571428571", "2411.61"},
		{"1.005", "1.01"},
		{"1.015", "1.02"},
		{"0.125", "0.13"},
		{"-0.125", "-0.12"},
		{"555", "555"},
		{"0", "0"},
	}

	for _, tt := range tests {
		got := MustParseAmount(tt.in).Round()
		assert.Equal(t, tt.want, got.String(), "Round(%s)", tt.in)
	}
}

func TestAmount_JSON(t *testing.T) {
	b, err := json.Marshal(struct {
		Amount Amount `json:"amount"`
	}{MustParseAmount("158.57")})
	require.NoError(t, err)
	assert.JSONEq(t, `{"amount":158.57}`, string(b))

	var a Amount
	require.NoError(t, json.Unmarshal([]byte(`555`), &a))
	assert.Equal(t, "555", a.String())

	require.NoError(t, json.Unmarshal([]byte(`"101.5"`), &a))
	assert.Equal(t, "101.5", a.String())

	for _, bad := range []string{`"abc"`, `true`, `null`, `""`, `[1]`} {
		err := json.Unmarshal([]byte(bad), &a)
		assert.ErrorIs(t, err, ErrInvalidAmount, "input %s", bad)
	}
}

// =============================================================================
// CALENDAR TESTS
// =============================================================================

func TestInclusiveDays(t *testing.T) {
	base := time.Date(2021, time.June, 1, 14, 48, 0, 0, time.UTC)

	assert.Equal(t, 1, InclusiveDays(base, base))
	assert.Equal(t, 2, InclusiveDays(base, AddDays(base, 1)))
	assert.Equal(t, 7, InclusiveDays(base, AddDays(base, 6)))
	assert.Equal(t, 7, InclusiveDays(AddDays(base, 6), base), "order does not matter")
	// 5 days and 19 hours rounds up to 6
	assert.Equal(t, 7, InclusiveDays(base, base.Add(5*24*time.Hour+19*time.Hour)))
}

func TestIsLeapYear(t *testing.T) {
	assert.True(t, IsLeapYear(2020))
	assert.True(t, IsLeapYear(2000))
	assert.False(t, IsLeapYear(2021))
	assert.False(t, IsLeapYear(1900))
}

func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 29, DaysInMonth(2020, time.February))
	assert.Equal(t, 28, DaysInMonth(2021, time.February))
	assert.Equal(t, 30, DaysInMonth(2021, time.April))
	assert.Equal(t, 31, DaysInMonth(2021, time.December))
}

func TestParseISO8601(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2021-06-01T14:48:00.000Z", "2021-06-01T14:48:00.000Z"},
		{"2021-06-01T14:48:00Z", "2021-06-01T14:48:00.000Z"},
		{"2021-06-01T22:48:00+08:00", "2021-06-01T14:48:00.000Z"},
		{"2021-06-01T14:48:00", "2021-06-01T14:48:00.000Z"},
		{"2021-06-01T14:48", "2021-06-01T14:48:00.000Z"},
		{"2021-06-01", "2021-06-01T00:00:00.000Z"},
		{"2021-06-01T14:48:00+0000", "2021-06-01T14:48:00.000Z"},
		{"2021-06-01T22:48:00.250+0800", "2021-06-01T14:48:00.250Z"},
		{"2021-06-01T22:48:00+08", "2021-06-01T14:48:00.000Z"},
		{"2021-06-01T14:48Z", "2021-06-01T14:48:00.000Z"},
		{"2021-06-01T22:48+0800", "2021-06-01T14:48:00.000Z"},
		{"2021-06-01T14Z", "2021-06-01T14:00:00.000Z"},
		{"2021-06-01T14", "2021-06-01T14:00:00.000Z"},
		{"20210601T224800+0800", "2021-06-01T14:48:00.000Z"},
		{"20210601T144800", "2021-06-01T14:48:00.000Z"},
		{"20210601", "2021-06-01T00:00:00.000Z"},
	}
	for _, tt := range tests {
		got, err := ParseISO8601(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, FormatISO8601(got))
	}

	for _, bad := range []string{"", "yesterday", "2021-13-01", "01/06/2021", "2021-02-30"} {
		_, err := ParseISO8601(bad)
		assert.ErrorIs(t, err, ErrInvalidDate, "input %q", bad)
	}
}

func TestAmount_WithinLimit(t *testing.T) {
	limit := NewAmountFromInt(1_000_000_000)

	tests := []struct {
		in   string
		want bool
	}{
		{"0", true},
		{"555", true},
		{"101.5", true},
		{"1000000000", true},
		{"1e9", true},
		{"0.0000000001", true},
		{"1000000000.01", false},
		{"1e10", false},
		{"1e2000000", false},
		{"0e2000000", false},
		{"1e-2000000", false},
		{"0.00000000001", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, MustParseAmount(tt.in).WithinLimit(limit), tt.in)
	}
}

// =============================================================================
// PERIOD TESTS
// =============================================================================

func TestPeriod(t *testing.T) {
	p, err := ParsePeriod("2021-06-01T14:48:00.000Z", "2021-06-30T14:48:00.000Z")
	require.NoError(t, err)

	assert.Equal(t, 30, p.Days())
	assert.True(t, p.Contains(p.Start))
	assert.True(t, p.Contains(p.End))
	assert.False(t, p.Contains(AddDays(p.End, 1)))
	assert.Equal(t, "[2021-06-01T14:48:00.000Z, 2021-06-30T14:48:00.000Z]", p.String())

	_, err = ParsePeriod("2021-06-30", "2021-06-01")
	assert.ErrorIs(t, err, ErrInvalidPeriod)
	assert.True(t, IsClientError(err))

	_, err = ParsePeriod("soon", "2021-06-01")
	assert.ErrorIs(t, err, ErrInvalidDate)
}
