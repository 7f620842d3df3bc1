package entities

import (
	"errors"
	"fmt"
	"math"
)

var ErrCurrencyMismatch = errors.New("currency mismatch")

// Currency is an ISO 4217 code.
//
// COP is treated as having no minor subdivision: one minor unit is one peso.
// USD minor units are cents.
type Currency string

const (
	CurrencyCOP Currency = "COP"
	CurrencyUSD Currency = "USD"
)

// MinorUnitDecimals returns how many decimal places the currency displays.
func (c Currency) MinorUnitDecimals() int {
	if c == CurrencyUSD {
		return 2
	}
	return 0
}

// Money is an integer amount in the currency's smallest unit.
//
// All arithmetic happens in integer minor units. Floating point is only
// allowed transiently inside a single rounding step (see RoundHalfUp) and
// for display formatting.
type Money struct {
	Amount   int64    `json:"amount"`
	Currency Currency `json:"currency"`
}

func NewMoney(amount int64, currency Currency) Money {
	return Money{Amount: amount, Currency: currency}
}

func (m Money) IsNegative() bool { return m.Amount < 0 }

func (m Money) IsZero() bool { return m.Amount == 0 }

// Add returns m + o. Both operands must share a currency.
func (m Money) Add(o Money) (Money, error) {
	if m.Currency != o.Currency {
		return Money{}, fmt.Errorf("%w: %s + %s", ErrCurrencyMismatch, m.Currency, o.Currency)
	}
	return Money{Amount: m.Amount + o.Amount, Currency: m.Currency}, nil
}

// MulRound multiplies the amount by factor and rounds half-up once.
// The result must never be re-rounded.
func (m Money) MulRound(factor float64) Money {
	return Money{Amount: RoundHalfUp(float64(m.Amount) * factor), Currency: m.Currency}
}

// Format renders the amount for human-facing text (notifications, logs).
func (m Money) Format() string {
	if d := m.Currency.MinorUnitDecimals(); d > 0 {
		div := math.Pow10(d)
		return fmt.Sprintf("%.*f %s", d, float64(m.Amount)/div, m.Currency)
	}
	return fmt.Sprintf("%d %s", m.Amount, m.Currency)
}

// RoundHalfUp rounds to the nearest integer, ties away from zero upward.
func RoundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
