package kernel

import (
	"fmt"

	"orderdesk/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a non-negative amount in the restaurant's currency.
type Money struct {
	amount decimal.Decimal
}

// NewMoney rejects negative amounts.
func NewMoney(amount decimal.Decimal) (Money, error) {
	if amount.IsNegative() {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", fmt.Errorf("%s is negative", amount))
	}
	return Money{amount: amount}, nil
}

// MoneyFromFloat is used for prices coming from JSON payloads and receipt extraction.
func MoneyFromFloat(f float64) (Money, error) {
	return NewMoney(decimal.NewFromFloat(f))
}

// MoneyFromString parses a decimal string such as "12.50".
func MoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("amount", err)
	}
	return NewMoney(d)
}

func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Mul multiplies by a line quantity.
func (m Money) Mul(quantity int) Money {
	return Money{amount: m.amount.Mul(decimal.NewFromInt(int64(quantity)))}
}

func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// String formats with two decimals.
func (m Money) String() string {
	return m.amount.StringFixed(2)
}
