package schedule

import (
	"errors"
	"testing"

	"github.com/iwvelando/mortgage-planner/pkg/money"
	"github.com/iwvelando/mortgage-planner/pkg/period"
)

func mustDate(t *testing.T, value string) period.Date {
	t.Helper()
	date, err := period.Parse(value)
	if err != nil {
		t.Fatalf("Parse(%q) unexpected error: %v", value, err)
	}
	return date
}

func TestNewPayment(t *testing.T) {
	date := mustDate(t, "2025-01")

	payment, err := NewPayment(1, date, money.Must(547.28), money.Must(2291.67), money.Must(500), money.Must(498952.72), false)
	if err != nil {
		t.Fatalf("NewPayment() unexpected error: %v", err)
	}
	if payment.Month != 1 {
		t.Errorf("Month = %d, want 1", payment.Month)
	}

	if _, err := NewPayment(0, date, money.Zero(), money.Zero(), money.Zero(), money.Zero(), false); !errors.Is(err, period.ErrInvalidPeriod) {
		t.Errorf("NewPayment(0) error = %v, want ErrInvalidPeriod", err)
	}
}

func TestPaymentAggregates(t *testing.T) {
	date := mustDate(t, "2025-01")
	payment, err := NewPayment(1, date, money.Must(547.28), money.Must(2291.67), money.Must(500), money.Must(498952.72), false)
	if err != nil {
		t.Fatalf("NewPayment() unexpected error: %v", err)
	}

	if got := payment.TotalPayment().Float64(); got != 3338.95 {
		t.Errorf("TotalPayment() = %v, want 3338.95", got)
	}
	if got := payment.RegularPayment().Float64(); got != 2838.95 {
		t.Errorf("RegularPayment() = %v, want 2838.95", got)
	}
	if got := payment.PrincipalReduction().Float64(); got != 1047.28 {
		t.Errorf("PrincipalReduction() = %v, want 1047.28", got)
	}
	if !payment.HasOverpayment() {
		t.Error("expected HasOverpayment() for a positive overpayment")
	}
	if payment.IsFinal() {
		t.Error("expected IsFinal() false for a positive balance")
	}
}

func TestWithOverpayment(t *testing.T) {
	date := mustDate(t, "2025-01")

	// Opening balance 10000: principal 1000, no overpayment, 9000 remains.
	payment, err := NewPayment(5, date, money.Must(1000), money.Must(50), money.Zero(), money.Must(9000), false)
	if err != nil {
		t.Fatalf("NewPayment() unexpected error: %v", err)
	}

	updated, err := payment.WithOverpayment(money.Must(2000), true)
	if err != nil {
		t.Fatalf("WithOverpayment() unexpected error: %v", err)
	}
	if got := updated.Overpayment.Float64(); got != 2000 {
		t.Errorf("Overpayment = %v, want 2000", got)
	}
	if got := updated.RemainingBalance.Float64(); got != 7000 {
		t.Errorf("RemainingBalance = %v, want 7000", got)
	}
	if !updated.CustomOverpayment {
		t.Error("expected CustomOverpayment flag to carry through")
	}

	// An overpayment beyond the balance is clamped and clears the loan.
	cleared, err := payment.WithOverpayment(money.Must(50000), true)
	if err != nil {
		t.Fatalf("WithOverpayment() unexpected error: %v", err)
	}
	if got := cleared.Overpayment.Float64(); got != 9000 {
		t.Errorf("Overpayment = %v, want clamped 9000", got)
	}
	if !cleared.IsFinal() {
		t.Error("expected clamped overpayment to clear the balance")
	}

	// Replacing an existing overpayment rebuilds from the opening balance.
	withExisting, err := NewPayment(5, date, money.Must(1000), money.Must(50), money.Must(2000), money.Must(7000), true)
	if err != nil {
		t.Fatalf("NewPayment() unexpected error: %v", err)
	}
	reduced, err := withExisting.WithOverpayment(money.Must(500), true)
	if err != nil {
		t.Fatalf("WithOverpayment() unexpected error: %v", err)
	}
	if got := reduced.RemainingBalance.Float64(); got != 8500 {
		t.Errorf("RemainingBalance = %v, want 8500", got)
	}
}
