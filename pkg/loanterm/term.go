// Package loanterm provides the loan term value object measured in whole
// months, bounded at 600 months (50 years).
package loanterm

import (
	"errors"
	"fmt"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
)

// ErrInvalidTerm indicates a non-positive or over-limit term, or a
// subtraction that would leave no remaining term.
var ErrInvalidTerm = errors.New("invalid loan term")

// Term is an immutable count of monthly periods.
type Term struct {
	months int
}

// FromMonths constructs a term from a month count in [1, 600].
func FromMonths(months int) (Term, error) {
	if months <= 0 {
		return Term{}, fmt.Errorf("%w: term must be positive", ErrInvalidTerm)
	}
	if months > constants.MaxTermMonths {
		return Term{}, fmt.Errorf("%w: term cannot exceed %d months", ErrInvalidTerm, constants.MaxTermMonths)
	}
	return Term{months: months}, nil
}

// FromYears constructs a term from a whole number of years.
func FromYears(years int) (Term, error) {
	return FromMonths(years * constants.MonthsPerYear)
}

// Months returns the term length in months.
func (t Term) Months() int {
	return t.months
}

// Years returns the term length in (possibly fractional) years.
func (t Term) Years() float64 {
	return float64(t.months) / constants.MonthsPerYear
}

// FullYears returns the whole-year component of the term.
func (t Term) FullYears() int {
	return t.months / constants.MonthsPerYear
}

// RemainingMonths returns the months left over after the whole years.
func (t Term) RemainingMonths() int {
	return t.months % constants.MonthsPerYear
}

// Add returns the combined term, re-validating the upper bound.
func (t Term) Add(other Term) (Term, error) {
	return FromMonths(t.months + other.months)
}

// Subtract returns the shortened term. A result of zero or fewer months fails
// with ErrInvalidTerm: a remaining term of zero is not representable here.
func (t Term) Subtract(other Term) (Term, error) {
	remaining := t.months - other.months
	if remaining <= 0 {
		return Term{}, fmt.Errorf("%w: cannot subtract %d months from %d", ErrInvalidTerm, other.months, t.months)
	}
	return FromMonths(remaining)
}

// GreaterThan reports whether t is longer than other.
func (t Term) GreaterThan(other Term) bool {
	return t.months > other.months
}

// LessThan reports whether t is shorter than other.
func (t Term) LessThan(other Term) bool {
	return t.months < other.months
}

// Equal reports whether two terms have the same length.
func (t Term) Equal(other Term) bool {
	return t.months == other.months
}

// Display formats the term in Polish, e.g. "25 lat 6 miesięcy".
func (t Term) Display() string {
	fullYears := t.FullYears()
	remaining := t.RemainingMonths()
	if fullYears == 0 {
		return fmt.Sprintf("%d miesięcy", remaining)
	}
	return fmt.Sprintf("%d lat %d miesięcy", fullYears, remaining)
}

func (t Term) String() string {
	return fmt.Sprintf("%d months", t.months)
}
