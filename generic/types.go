/*
Package generic provides the domain-agnostic billing primitives.

PURPOSE:
  This package contains the types and calendar helpers that any periodic
  billing schedule is built from. Whether the schedule charges rent weekly
  or monthly, the same primitives describe the period being billed, the
  lines produced for it and the amounts on those lines.

KEY CONCEPTS IN THIS FILE (types.go):
  - Amount: A currency value backed by decimal.Decimal
  - Line: An immutable billing line covering [Start, End]

DESIGN PRINCIPLES:
  1. Immutability: Lines are values, never modified after construction
  2. Precision: Uses decimal.Decimal to avoid floating-point errors
  3. Rounding: Currency is rounded to 2 places, half-up on ties

USAGE:
  weekly := generic.MustParseAmount("555")
  twoDays := weekly.MulInt(2).DivInt(7).Round() // 158.57

SEE ALSO:
  - period.go: Period definition
  - schedule.go: Schedule interface implemented by domain packages
  - time.go: Calendar helpers
*/
package generic

import (
	"bytes"
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Currency value (single currency, no tax)
// =============================================================================

// CurrencyPlaces is the number of decimal places amounts are rounded to.
const CurrencyPlaces = 2

// Input amounts are bounded in exponent before any arithmetic. Rescaling a
// decimal like 1e2000000 or 1e-2000000 allocates one digit per unit of
// exponent.
const (
	MaxInputScale    = 10
	MaxInputExponent = 18
)

var half = decimal.NewFromFloat(0.5)

type Amount struct {
	Value decimal.Decimal
}

func NewAmountFromInt(value int64) Amount { return Amount{Value: decimal.NewFromInt(value)} }

// ParseAmount parses a decimal string such as "555" or "101.5".
func ParseAmount(s string) (Amount, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Amount{Value: d}, nil
}

func MustParseAmount(s string) Amount {
	a, err := ParseAmount(s)
	if err != nil {
		panic(err)
	}
	return a
}

func (a Amount) Add(b Amount) Amount          { return Amount{Value: a.Value.Add(b.Value)} }
func (a Amount) Mul(s decimal.Decimal) Amount { return Amount{Value: a.Value.Mul(s)} }
func (a Amount) MulInt(n int) Amount          { return a.Mul(decimal.NewFromInt(int64(n))) }
func (a Amount) DivInt(n int) Amount          { return Amount{Value: a.Value.Div(decimal.NewFromInt(int64(n)))} }
func (a Amount) IsNegative() bool             { return a.Value.IsNegative() }
func (a Amount) String() string               { return a.Value.String() }

// WithinLimit reports whether an input amount is no greater than limit.
// Amounts with more than MaxInputScale fractional digits or an exponent
// above MaxInputExponent are never within the limit, zero included.
func (a Amount) WithinLimit(limit Amount) bool {
	exp := a.Value.Exponent()
	if exp < -MaxInputScale || exp > MaxInputExponent {
		return false
	}
	return a.Value.Cmp(limit.Value) <= 0
}

// Round rounds to CurrencyPlaces, resolving exact ties towards positive
// infinity (round-half-up). decimal.Decimal.Round rounds ties away from
// zero, which differs for negative values.
func (a Amount) Round() Amount {
	return Amount{Value: a.Value.Shift(CurrencyPlaces).Add(half).Floor().Shift(-CurrencyPlaces)}
}

// MarshalJSON encodes the amount as a bare JSON number.
func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Value.String()), nil
}

// UnmarshalJSON accepts a JSON number or a string holding a number.
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("%w: empty value", ErrInvalidAmount)
	}
	s := string(data)
	if data[0] == '"' {
		unquoted, err := strconv.Unquote(s)
		if err != nil {
			return fmt.Errorf("%w: %s", ErrInvalidAmount, s)
		}
		s = unquoted
	}
	parsed, err := ParseAmount(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// =============================================================================
// LINE - One billed interval
// =============================================================================

// Line is a single billing line. Start and End are both inclusive and carry
// the time-of-day of the schedule's first line.
type Line struct {
	Start  time.Time
	End    time.Time
	Amount Amount
}

func (l Line) String() string {
	return fmt.Sprintf("[%s, %s] %s", FormatISO8601(l.Start), FormatISO8601(l.End), l.Amount)
}
