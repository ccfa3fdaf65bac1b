// Package core provides money parsing and handling utilities.
//
// Amounts are held as integer cents so sums never drift. Parsing and
// formatting go through shopspring/decimal; rounding happens once, at the
// edge, never during accumulation.
package core

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// CurrencySymbol prefixes formatted amounts.
const CurrencySymbol = "€"

// Money is a non-negative amount in cents.
type Money struct {
	Cents int64
}

// MaxCents bounds a single amount at just under €10 trillion.
const MaxCents int64 = 1e15 - 1

var maxAmount = decimal.New(MaxCents, -2)

// ParseAmount converts a decimal string to Money with half-up rounding on
// the third decimal place.
//
// Both dot (12.34) and comma (12,34) separators are accepted. Blank,
// non-numeric and negative input fails with ErrInvalidAmount; zero is allowed.
//
//	ParseAmount("12.34")  -> 1234 cents
//	ParseAmount("12,345") -> 1235 cents
func ParseAmount(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, ErrInvalidAmount
	}
	return FromDecimal(d)
}

// FromDecimal rounds d to cents.
func FromDecimal(d decimal.Decimal) (Money, error) {
	if d.IsNegative() {
		return Money{}, ErrInvalidAmount
	}
	d = d.Round(2)
	if d.GreaterThan(maxAmount) {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: d.Shift(2).IntPart()}, nil
}

// Validate rejects negative amounts.
func (m Money) Validate() error {
	if m.Cents < 0 {
		return ErrInvalidAmount
	}
	return nil
}

// Add returns m+o, saturating at math.MaxInt64 instead of wrapping.
func (m Money) Add(o Money) Money {
	if o.Cents > 0 && m.Cents > math.MaxInt64-o.Cents {
		return Money{Cents: math.MaxInt64}
	}
	return Money{Cents: m.Cents + o.Cents}
}

func (m Money) IsZero() bool {
	return m.Cents == 0
}

// Decimal returns the exact decimal value of m.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// String formats m with two decimals and the currency symbol, e.g. "€4.50".
func (m Money) String() string {
	return CurrencySymbol + m.Decimal().StringFixed(2)
}

// Percent returns m as a share of total, rounded to one decimal place.
func (m Money) Percent(total Money) decimal.Decimal {
	if total.Cents == 0 {
		return decimal.Zero
	}
	return decimal.NewFromInt(m.Cents).
		Mul(decimal.NewFromInt(100)).
		Div(decimal.NewFromInt(total.Cents)).
		Round(1)
}

// MarshalJSON writes a plain JSON number such as 4.5 or 500.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string; older documents
// stored amounts both ways. null decodes as zero.
func (m *Money) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" {
		*m = Money{}
		return nil
	}
	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrInvalidAmount
		}
		raw = s
	}
	parsed, err := ParseAmount(raw)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
