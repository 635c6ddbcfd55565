// Package money provides the monetary amount value object used throughout the
// calculation engine. Amounts are non-negative, carry exactly two decimal
// places, and every arithmetic operation rounds its result before returning,
// so accumulated totals are reproducible regardless of evaluation order.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/format"
	"github.com/iwvelando/mortgage-planner/pkg/mathutil"
)

var (
	// ErrInvalidAmount indicates a negative, NaN, or infinite monetary value.
	ErrInvalidAmount = errors.New("invalid monetary amount")

	// ErrDivisionByZero indicates division of an amount by zero.
	ErrDivisionByZero = errors.New("division by zero")
)

// Money is an immutable monetary amount. The zero value is zero złoty.
type Money struct {
	amount decimal.Decimal
}

// New validates and constructs an amount, rounding to two decimal places half
// away from zero.
func New(value float64) (Money, error) {
	if !mathutil.IsFinite(value) {
		return Money{}, fmt.Errorf("%w: value must be a finite number", ErrInvalidAmount)
	}
	if value < 0 {
		return Money{}, fmt.Errorf("%w: value cannot be negative", ErrInvalidAmount)
	}
	return Money{amount: decimal.NewFromFloat(value).Round(constants.DecimalPlaces)}, nil
}

// Must constructs an amount and panics on error. Intended for constants and
// tests where the value is known to be valid.
func Must(value float64) Money {
	m, err := New(value)
	if err != nil {
		panic(err)
	}
	return m
}

// Zero returns the zero amount.
func Zero() Money {
	return Money{}
}

// Add returns the sum of two amounts. Both operands carry two decimal places
// so the sum is already exact.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Subtract returns the difference of two amounts. A negative result is an
// invariant violation and fails with ErrInvalidAmount.
func (m Money) Subtract(other Money) (Money, error) {
	result := m.amount.Sub(other.amount)
	if result.IsNegative() {
		return Money{}, fmt.Errorf("%w: subtraction result %s is negative", ErrInvalidAmount, result)
	}
	return Money{amount: result}, nil
}

// Multiply returns the amount scaled by a factor, rounded to two decimals.
func (m Money) Multiply(factor float64) (Money, error) {
	if !mathutil.IsFinite(factor) {
		return Money{}, fmt.Errorf("%w: factor must be a finite number", ErrInvalidAmount)
	}
	if factor < 0 {
		return Money{}, fmt.Errorf("%w: factor cannot be negative", ErrInvalidAmount)
	}
	return Money{amount: m.amount.Mul(decimal.NewFromFloat(factor)).Round(constants.DecimalPlaces)}, nil
}

// Divide returns the amount divided by a divisor, rounded to two decimals.
func (m Money) Divide(divisor float64) (Money, error) {
	if divisor == 0 {
		return Money{}, ErrDivisionByZero
	}
	if !mathutil.IsFinite(divisor) {
		return Money{}, fmt.Errorf("%w: divisor must be a finite number", ErrInvalidAmount)
	}
	if divisor < 0 {
		return Money{}, fmt.Errorf("%w: divisor cannot be negative", ErrInvalidAmount)
	}
	return Money{amount: m.amount.Div(decimal.NewFromFloat(divisor)).Round(constants.DecimalPlaces)}, nil
}

// GreaterThan reports whether m exceeds other. Comparisons are exact on the
// rounded values, with no epsilon.
func (m Money) GreaterThan(other Money) bool {
	return m.amount.GreaterThan(other.amount)
}

// LessThan reports whether m is below other.
func (m Money) LessThan(other Money) bool {
	return m.amount.LessThan(other.amount)
}

// Equal reports whether two amounts are exactly equal.
func (m Money) Equal(other Money) bool {
	return m.amount.Equal(other.amount)
}

// IsZero reports whether the amount is exactly zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsPositive reports whether the amount is strictly greater than zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// Float64 returns the amount as a float64 for formula-level math.
func (m Money) Float64() float64 {
	f, _ := m.amount.Float64()
	return f
}

// Display formats the amount as whole złoty with locale grouping, e.g. "1 235 zł".
func (m Money) Display() string {
	return format.Currency(m.Float64())
}

// String returns the plain decimal representation without a currency symbol.
func (m Money) String() string {
	return m.amount.String()
}

// MarshalJSON encodes the amount as a plain JSON number.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.amount.String()), nil
}
