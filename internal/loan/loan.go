// Package loan defines the loan entity and the overpayment plan that together
// drive schedule generation. Both are immutable; every mutator returns a new
// value and re-runs construction validation.
package loan

import (
	"errors"
	"fmt"
	"math"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
	"github.com/iwvelando/mortgage-planner/pkg/format"
	"github.com/iwvelando/mortgage-planner/pkg/interest"
	"github.com/iwvelando/mortgage-planner/pkg/loanterm"
	"github.com/iwvelando/mortgage-planner/pkg/money"
	"github.com/iwvelando/mortgage-planner/pkg/period"
)

// ErrInvalidLoan indicates loan parameters that violate the entity's own
// bounds, independent of the general value-object invariants.
var ErrInvalidLoan = errors.New("invalid loan")

// PaymentStyle selects the amortization formula.
type PaymentStyle string

const (
	// StyleEqual keeps the total payment (principal + interest) constant.
	StyleEqual PaymentStyle = "equal"

	// StyleDecreasing keeps the principal portion constant; interest declines
	// with the balance so the total payment shrinks over time.
	StyleDecreasing PaymentStyle = "decreasing"
)

// Loan is an immutable entity holding a loan's fixed terms.
type Loan struct {
	principal money.Money
	rate      interest.Rate
	term      loanterm.Term
	style     PaymentStyle
	start     period.Date
}

// New validates and constructs a loan. The principal must fall within
// [1 000, 10 000 000] złoty.
func New(principal money.Money, rate interest.Rate, term loanterm.Term, style PaymentStyle, start period.Date) (Loan, error) {
	if !principal.IsPositive() {
		return Loan{}, fmt.Errorf("%w: principal must be positive", ErrInvalidLoan)
	}
	if principal.Float64() < constants.MinPrincipal {
		return Loan{}, fmt.Errorf("%w: principal must be at least %s", ErrInvalidLoan, format.Currency(constants.MinPrincipal))
	}
	if principal.Float64() > constants.MaxPrincipal {
		return Loan{}, fmt.Errorf("%w: principal cannot exceed %s", ErrInvalidLoan, format.Currency(constants.MaxPrincipal))
	}
	if style != StyleEqual && style != StyleDecreasing {
		return Loan{}, fmt.Errorf("%w: unknown payment style %q", ErrInvalidLoan, style)
	}
	return Loan{
		principal: principal,
		rate:      rate,
		term:      term,
		style:     style,
		start:     start,
	}, nil
}

// Principal returns the original loan amount.
func (l Loan) Principal() money.Money { return l.principal }

// Rate returns the annual interest rate.
func (l Loan) Rate() interest.Rate { return l.rate }

// Term returns the nominal loan term.
func (l Loan) Term() loanterm.Term { return l.term }

// Style returns the payment style.
func (l Loan) Style() PaymentStyle { return l.style }

// StartDate returns the first billing period.
func (l Loan) StartDate() period.Date { return l.start }

// Installment computes the fixed periodic payment for the loan.
//
// For a zero rate the principal is amortized linearly regardless of style.
// For the equal style this is the standard annuity payment (principal plus
// interest, constant until payoff). For the decreasing style it is the
// constant principal portion only; interest is computed per period on the
// remaining balance.
func (l Loan) Installment() (money.Money, error) {
	months := l.term.Months()
	if l.rate.IsZero() {
		return l.principal.Divide(float64(months))
	}

	if l.style == StyleEqual {
		r := l.rate.MonthlyDecimal()
		factor := math.Pow(1+r, float64(months))
		payment := l.principal.Float64() * (r * factor) / (factor - 1)
		return money.New(payment)
	}

	return l.principal.Divide(float64(months))
}

// InterestFor computes one period's interest on the given remaining balance.
func (l Loan) InterestFor(balance money.Money) (money.Money, error) {
	return balance.Multiply(l.rate.MonthlyDecimal())
}

// PeriodDate returns the billing date for a 1-indexed period number.
func (l Loan) PeriodDate(number int) (period.Date, error) {
	if number < 1 || number > l.term.Months() {
		return period.Date{}, fmt.Errorf("%w: period number %d must be between 1 and %d",
			period.ErrInvalidPeriod, number, l.term.Months())
	}
	return l.start.AddMonths(number - 1), nil
}

// IsValid re-checks the construction bounds. Used as a cheap pre-flight check
// before schedule generation.
func (l Loan) IsValid() bool {
	p := l.principal.Float64()
	return l.principal.IsPositive() &&
		p >= constants.MinPrincipal &&
		p <= constants.MaxPrincipal &&
		l.term.Months() > 0
}

// WithPrincipal returns a copy with a different principal.
func (l Loan) WithPrincipal(principal money.Money) (Loan, error) {
	return New(principal, l.rate, l.term, l.style, l.start)
}

// WithInterestRate returns a copy with a different rate.
func (l Loan) WithInterestRate(rate interest.Rate) (Loan, error) {
	return New(l.principal, rate, l.term, l.style, l.start)
}

// WithTerm returns a copy with a different term.
func (l Loan) WithTerm(term loanterm.Term) (Loan, error) {
	return New(l.principal, l.rate, term, l.style, l.start)
}

// WithPaymentStyle returns a copy with a different payment style.
func (l Loan) WithPaymentStyle(style PaymentStyle) (Loan, error) {
	return New(l.principal, l.rate, l.term, style, l.start)
}

// WithStartDate returns a copy with a different start date.
func (l Loan) WithStartDate(start period.Date) (Loan, error) {
	return New(l.principal, l.rate, l.term, l.style, start)
}
