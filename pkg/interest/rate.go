// Package interest provides the annual interest rate value object.
package interest

import (
	"errors"
	"fmt"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/mathutil"
)

// ErrInvalidRate indicates a negative, above-100%, or non-finite rate.
var ErrInvalidRate = errors.New("invalid interest rate")

// Rate is an immutable annual interest rate. The zero value is a 0% rate.
type Rate struct {
	annualPercent float64
}

// FromPercentage constructs a rate from an annual percentage, e.g. 5.5 for 5.5%.
func FromPercentage(percentage float64) (Rate, error) {
	if !mathutil.IsFinite(percentage) {
		return Rate{}, fmt.Errorf("%w: rate must be a finite number", ErrInvalidRate)
	}
	if percentage < 0 {
		return Rate{}, fmt.Errorf("%w: rate cannot be negative", ErrInvalidRate)
	}
	if percentage > constants.MaxAnnualRatePercent {
		return Rate{}, fmt.Errorf("%w: rate cannot exceed %.0f%%", ErrInvalidRate, constants.MaxAnnualRatePercent)
	}
	return Rate{annualPercent: percentage}, nil
}

// FromDecimal constructs a rate from an annual decimal, e.g. 0.055 for 5.5%.
func FromDecimal(decimal float64) (Rate, error) {
	return FromPercentage(decimal * constants.PercentageMultiplier)
}

// Zero returns the 0% rate used for no-interest loans.
func Zero() Rate {
	return Rate{}
}

// AnnualPercentage returns the rate as a percentage value.
func (r Rate) AnnualPercentage() float64 {
	return r.annualPercent
}

// AnnualDecimal returns the rate as an annual decimal fraction.
func (r Rate) AnnualDecimal() float64 {
	return r.annualPercent / constants.PercentageMultiplier
}

// MonthlyDecimal returns the periodic rate applied to a monthly balance.
func (r Rate) MonthlyDecimal() float64 {
	return r.AnnualDecimal() / constants.MonthsPerYear
}

// MonthlyPercentage returns the monthly rate as a percentage value.
func (r Rate) MonthlyPercentage() float64 {
	return r.annualPercent / constants.MonthsPerYear
}

// IsZero reports whether the rate is exactly 0%.
func (r Rate) IsZero() bool {
	return r.annualPercent == 0
}

// IsPositive reports whether the rate is strictly above 0%.
func (r Rate) IsPositive() bool {
	return r.annualPercent > 0
}

func (r Rate) String() string {
	return fmt.Sprintf("%g%%", r.annualPercent)
}
