package interest

import (
	"errors"
	"math"
	"testing"
)

func TestFromPercentage(t *testing.T) {
	tests := []struct {
		name       string
		percentage float64
		wantErr    bool
	}{
		{
			name:       "Typical mortgage rate",
			percentage: 5.5,
		},
		{
			name:       "Zero rate",
			percentage: 0,
		},
		{
			name:       "Upper bound",
			percentage: 100,
		},
		{
			name:       "Above upper bound",
			percentage: 100.01,
			wantErr:    true,
		},
		{
			name:       "Negative",
			percentage: -0.1,
			wantErr:    true,
		},
		{
			name:       "NaN",
			percentage: math.NaN(),
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rate, err := FromPercentage(tt.percentage)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidRate) {
					t.Fatalf("FromPercentage(%v) error = %v, want ErrInvalidRate", tt.percentage, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromPercentage(%v) unexpected error: %v", tt.percentage, err)
			}
			if got := rate.AnnualPercentage(); got != tt.percentage {
				t.Errorf("AnnualPercentage() = %v, want %v", got, tt.percentage)
			}
		})
	}
}

func TestFromDecimal(t *testing.T) {
	rate, err := FromDecimal(0.055)
	if err != nil {
		t.Fatalf("FromDecimal(0.055) unexpected error: %v", err)
	}
	if got := rate.AnnualPercentage(); math.Abs(got-5.5) > 1e-9 {
		t.Errorf("AnnualPercentage() = %v, want 5.5", got)
	}

	if _, err := FromDecimal(1.5); err == nil {
		t.Error("FromDecimal(1.5) expected error, got nil")
	}
}

func TestRateConversions(t *testing.T) {
	rate, err := FromPercentage(6)
	if err != nil {
		t.Fatalf("FromPercentage(6) unexpected error: %v", err)
	}

	if got := rate.AnnualDecimal(); got != 0.06 {
		t.Errorf("AnnualDecimal() = %v, want 0.06", got)
	}
	if got := rate.MonthlyDecimal(); got != 0.005 {
		t.Errorf("MonthlyDecimal() = %v, want 0.005", got)
	}
	if got := rate.MonthlyPercentage(); got != 0.5 {
		t.Errorf("MonthlyPercentage() = %v, want 0.5", got)
	}
}

func TestZeroRate(t *testing.T) {
	if !Zero().IsZero() {
		t.Error("expected Zero() to report IsZero")
	}
	if Zero().IsPositive() {
		t.Error("expected Zero() not to be positive")
	}

	rate, _ := FromPercentage(3.5)
	if rate.IsZero() {
		t.Error("expected 3.5% not to be zero")
	}
	if !rate.IsPositive() {
		t.Error("expected 3.5% to be positive")
	}
}

func TestRateString(t *testing.T) {
	rate, _ := FromPercentage(5.5)
	if got := rate.String(); got != "5.5%" {
		t.Errorf("String() = %q, want %q", got, "5.5%")
	}
}
