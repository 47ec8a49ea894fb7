package model

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount reports user-entered money text that is not a plain
// non-negative decimal with at most two fractional digits.
var ErrInvalidAmount = errors.New("invalid amount")

// amountPattern accepts "10", "10.5", "10.50" (comma already normalized to dot).
var amountPattern = regexp.MustCompile(`^[0-9]+(\.[0-9]{0,2})?$`)

// Money is an immutable amount in integer minor units (cents).
// All arithmetic is integer-exact; floats never enter the representation.
type Money struct {
	cents int64
}

// FromCents creates a Money from an amount in cents.
func FromCents(cents int64) Money {
	return Money{cents: cents}
}

// ParseMoney creates a Money from user-entered decimal text.
// Both "10.50" and "10,50" parse to 1050 cents. Whitespace-only input is
// zero; anything else that does not match digits(.digits{0,2}) fails with
// ErrInvalidAmount.
func ParseMoney(s string) (Money, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Money{}, nil
	}

	s = strings.ReplaceAll(s, ",", ".")
	if !amountPattern.MatchString(s) {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	d, err := decimal.NewFromString(strings.TrimSuffix(s, "."))
	if err != nil {
		return Money{}, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return Money{cents: d.Shift(2).IntPart()}, nil
}

// Cents returns the amount in cents.
func (m Money) Cents() int64 {
	return m.cents
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{cents: m.cents + other.cents}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{cents: m.cents - other.cents}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.cents < 0
}

// GreaterThan reports m > other.
func (m Money) GreaterThan(other Money) bool {
	return m.cents > other.cents
}

// LessThan reports m < other.
func (m Money) LessThan(other Money) bool {
	return m.cents < other.cents
}

// Equal reports m == other.
func (m Money) Equal(other Money) bool {
	return m.cents == other.cents
}

// Format renders the amount as "<sign><int>.<2 digits> <CODE>",
// e.g. FromCents(-1050).Format("EUR") == "-10.50 EUR".
func (m Money) Format(currency string) string {
	return decimal.New(m.cents, -2).StringFixed(2) + " " + currency
}
