// Package schedule generates loan amortization schedules and their aggregate
// savings metrics.
package schedule

import (
	"fmt"

	"github.com/iwvelando/mortgage-planner/pkg/loanterm"
	"github.com/iwvelando/mortgage-planner/pkg/money"
	"github.com/iwvelando/mortgage-planner/pkg/period"
)

// Payment holds the values for a single period of the schedule. Amounts are
// Money, so non-negativity is guaranteed by construction.
type Payment struct {
	Month             int
	Date              period.Date
	Principal         money.Money
	Interest          money.Money
	Overpayment       money.Money
	RemainingBalance  money.Money
	CustomOverpayment bool
}

// NewPayment validates and constructs one schedule entry.
func NewPayment(month int, date period.Date, principal, interest, overpayment, remainingBalance money.Money, custom bool) (Payment, error) {
	if month < 1 {
		return Payment{}, fmt.Errorf("%w: payment month must be positive", period.ErrInvalidPeriod)
	}
	return Payment{
		Month:             month,
		Date:              date,
		Principal:         principal,
		Interest:          interest,
		Overpayment:       overpayment,
		RemainingBalance:  remainingBalance,
		CustomOverpayment: custom,
	}, nil
}

// TotalPayment returns principal + interest + overpayment.
func (p Payment) TotalPayment() money.Money {
	return p.Principal.Add(p.Interest).Add(p.Overpayment)
}

// RegularPayment returns the contractual portion only (principal + interest).
func (p Payment) RegularPayment() money.Money {
	return p.Principal.Add(p.Interest)
}

// PrincipalReduction returns everything that lowered the balance this period.
func (p Payment) PrincipalReduction() money.Money {
	return p.Principal.Add(p.Overpayment)
}

// HasOverpayment reports whether any extra amount was applied.
func (p Payment) HasOverpayment() bool {
	return p.Overpayment.IsPositive()
}

// IsFinal reports whether this payment cleared the loan.
func (p Payment) IsFinal() bool {
	return p.RemainingBalance.IsZero()
}

// WithOverpayment returns a copy carrying a different overpayment, clamped to
// what the balance can absorb, with the remaining balance recomputed.
func (p Payment) WithOverpayment(overpayment money.Money, custom bool) (Payment, error) {
	// RemainingBalance excludes what this payment already applied, so the
	// period's opening balance has to be rebuilt before re-applying.
	afterPrincipal := p.RemainingBalance.Add(p.Overpayment)

	actual := overpayment
	if actual.GreaterThan(afterPrincipal) {
		actual = afterPrincipal
	}

	newBalance, err := afterPrincipal.Subtract(actual)
	if err != nil {
		return Payment{}, err
	}

	return NewPayment(p.Month, p.Date, p.Principal, p.Interest, actual, newBalance, custom)
}

// Result is the full outcome of one schedule generation, including the
// baseline comparison. Computed per call and never persisted.
type Result struct {
	Payments         []Payment
	TotalInterest    money.Money
	BaselineInterest money.Money
	InterestSaved    money.Money
	TotalPaid        money.Money
	TotalOverpaid    money.Money
	ActualTerm       loanterm.Term
	OriginalTerm     loanterm.Term
}
