package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadConfiguration(t *testing.T) {
	path := writeConfig(t, `loan:
  amount: 500000
  interestRate: 5.5
  termMonths: 360
  paymentStyle: equal
  startDate: "2025-01"
overpayment:
  baseAmount: 500
  effect: shorten_term
  custom:
    "13": 2000
logging:
  level: debug
  format: console
output:
  format: csv
`)

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration() unexpected error: %v", err)
	}

	if conf.Loan.Amount != 500000 {
		t.Errorf("Loan.Amount = %v, want 500000", conf.Loan.Amount)
	}
	if conf.Loan.InterestRate != 5.5 {
		t.Errorf("Loan.InterestRate = %v, want 5.5", conf.Loan.InterestRate)
	}
	if conf.Loan.TermMonths != 360 {
		t.Errorf("Loan.TermMonths = %v, want 360", conf.Loan.TermMonths)
	}
	if conf.Overpayment.BaseAmount != 500 {
		t.Errorf("Overpayment.BaseAmount = %v, want 500", conf.Overpayment.BaseAmount)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", conf.Logging.Level)
	}
	if conf.Output.Format != "csv" {
		t.Errorf("Output.Format = %q, want csv", conf.Output.Format)
	}
}

func TestLoadConfigurationMissingFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("LoadConfiguration() expected error for missing file, got nil")
	}
}

func TestLoanInput(t *testing.T) {
	conf := &Configuration{
		Loan: LoanConfig{
			Amount:       500000,
			InterestRate: 5.5,
			TermMonths:   360,
			PaymentStyle: "equal",
			StartDate:    "2025-01",
		},
	}

	in := conf.LoanInput(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	if in.StartDate != "2025-01" {
		t.Errorf("StartDate = %q, want configured 2025-01", in.StartDate)
	}
	if in.Amount != 500000 || in.AnnualRatePercent != 5.5 || in.TermMonths != 360 {
		t.Errorf("unexpected input: %+v", in)
	}

	// Unset start date falls back to the month containing now.
	conf.Loan.StartDate = ""
	in = conf.LoanInput(time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC))
	if in.StartDate != "2026-03" {
		t.Errorf("StartDate = %q, want 2026-03", in.StartDate)
	}
}

func TestOverpaymentInput(t *testing.T) {
	conf := &Configuration{
		Overpayment: OverpaymentConfig{
			BaseAmount: 500,
			Effect:     "shorten_term",
			Custom: map[string]float64{
				"13":  2000,
				"bad": 100,
			},
		},
	}

	in := conf.OverpaymentInput()
	if in.BaseAmount != 500 {
		t.Errorf("BaseAmount = %v, want 500", in.BaseAmount)
	}
	if got := in.Custom[13]; got != 2000 {
		t.Errorf("Custom[13] = %v, want 2000", got)
	}
	if len(in.Custom) != 1 {
		t.Errorf("Custom has %d entries, want 1 (unparseable key dropped)", len(in.Custom))
	}
}

func TestValidateConfiguration(t *testing.T) {
	conf := &Configuration{
		Loan: LoanConfig{
			Amount:     100000,
			TermMonths: 120,
		},
		Overpayment: OverpaymentConfig{
			BaseAmount: 200000,
			Custom: map[string]float64{
				"bad": 100,
				"500": 100,
			},
		},
		Output: OutputConfig{Format: "xml"},
	}

	warnings := conf.ValidateConfiguration()
	if len(warnings) == 0 {
		t.Fatal("expected warnings, got none")
	}

	wantSubstrings := []string{
		"paymentStyle not set",
		"startDate not set",
		"base overpayment exceeds the loan principal",
		"is not a number",
		"beyond the 120-month term",
		"unknown output format",
	}
	for _, want := range wantSubstrings {
		found := false
		for _, warning := range warnings {
			if strings.Contains(warning, want) {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("missing warning containing %q in %v", want, warnings)
		}
	}
}
