package schedule

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/iwvelando/mortgage-planner/internal/loan"
	"github.com/iwvelando/mortgage-planner/pkg/loanterm"
	"github.com/iwvelando/mortgage-planner/pkg/money"
)

// Generator produces amortization schedules for a loan under an overpayment
// plan. It is stateless apart from its logger; calls are independent and safe
// to run concurrently.
type Generator struct {
	logger *zap.Logger
}

// NewGenerator creates a new generator instance.
func NewGenerator(logger *zap.Logger) *Generator {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Generator{logger: logger}
}

// Generate computes the full schedule for the loan and plan, plus a baseline
// (no-overpayment) run of the same loan used to derive savings metrics.
func (g *Generator) Generate(l loan.Loan, plan loan.OverpaymentPlan) (*Result, error) {
	if !l.IsValid() {
		return nil, fmt.Errorf("%w: parameters failed pre-flight check", loan.ErrInvalidLoan)
	}

	payments, err := g.run(l, plan)
	if err != nil {
		return nil, err
	}

	// The baseline run is only totaled, never retained entry by entry.
	baseline, err := g.run(l, loan.NoOverpayment())
	if err != nil {
		return nil, err
	}
	baselineInterest := sumInterest(baseline)

	totalInterest := sumInterest(payments)
	interestSaved, err := baselineInterest.Subtract(totalInterest)
	if err != nil {
		return nil, err
	}

	actualTerm, err := loanterm.FromMonths(len(payments))
	if err != nil {
		return nil, err
	}

	return &Result{
		Payments:         payments,
		TotalInterest:    totalInterest,
		BaselineInterest: baselineInterest,
		InterestSaved:    interestSaved,
		TotalPaid:        sumTotalPaid(payments),
		TotalOverpaid:    sumOverpaid(payments),
		ActualTerm:       actualTerm,
		OriginalTerm:     l.Term(),
	}, nil
}

// run executes the core amortization loop. The loop is bounded by the term
// and the balance strictly decreases each period, so it always terminates.
func (g *Generator) run(l loan.Loan, plan loan.OverpaymentPlan) ([]Payment, error) {
	installment, err := l.Installment()
	if err != nil {
		return nil, err
	}

	months := l.Term().Months()
	balance := l.Principal()
	payments := make([]Payment, 0, months)

	for month := 1; balance.IsPositive() && month <= months; month++ {
		date, err := l.PeriodDate(month)
		if err != nil {
			return nil, err
		}

		interestDue, err := l.InterestFor(balance)
		if err != nil {
			return nil, err
		}

		var principal money.Money
		if l.Style() == loan.StyleEqual {
			principal, err = installment.Subtract(interestDue)
		} else {
			principal, err = l.Principal().Divide(float64(months))
		}
		if err != nil {
			return nil, err
		}

		// Final-period correction: the last regular payment zeroes the
		// balance exactly before any overpayment is considered.
		if principal.GreaterThan(balance) {
			principal = balance
		}

		requested := plan.AmountFor(month)
		actual, err := plan.ClampToAffordable(requested, balance, principal)
		if err != nil {
			return nil, err
		}
		if actual.LessThan(requested) {
			g.logger.Debug("capping overpayment to remaining balance",
				zap.String("op", "schedule.run"),
				zap.Int("month", month),
				zap.String("requested", requested.String()),
				zap.String("applied", actual.String()),
			)
		}

		afterPrincipal, err := balance.Subtract(principal)
		if err != nil {
			return nil, err
		}
		newBalance, err := afterPrincipal.Subtract(actual)
		if err != nil {
			return nil, err
		}

		// The custom flag reports that an override was requested for the
		// period, independent of whether the applied amount was clamped.
		payment, err := NewPayment(month, date, principal, interestDue, actual, newBalance, plan.HasCustom(month))
		if err != nil {
			return nil, err
		}
		payments = append(payments, payment)

		balance = newBalance
		if balance.IsZero() {
			break
		}
	}

	return payments, nil
}

func sumInterest(payments []Payment) money.Money {
	total := money.Zero()
	for _, payment := range payments {
		total = total.Add(payment.Interest)
	}
	return total
}

func sumTotalPaid(payments []Payment) money.Money {
	total := money.Zero()
	for _, payment := range payments {
		total = total.Add(payment.TotalPayment())
	}
	return total
}

func sumOverpaid(payments []Payment) money.Money {
	total := money.Zero()
	for _, payment := range payments {
		total = total.Add(payment.Overpayment)
	}
	return total
}
