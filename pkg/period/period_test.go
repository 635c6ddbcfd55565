package period

import (
	"errors"
	"testing"
	"time"
)

func TestFromYearMonth(t *testing.T) {
	tests := []struct {
		name    string
		year    int
		month   int
		wantErr bool
	}{
		{
			name:  "Valid date",
			year:  2025,
			month: 1,
		},
		{
			name:  "December",
			year:  2025,
			month: 12,
		},
		{
			name:    "Month zero",
			year:    2025,
			month:   0,
			wantErr: true,
		},
		{
			name:    "Month thirteen",
			year:    2025,
			month:   13,
			wantErr: true,
		},
		{
			name:    "Year zero",
			year:    0,
			month:   1,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := FromYearMonth(tt.year, tt.month)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidPeriod) {
					t.Fatalf("FromYearMonth(%d, %d) error = %v, want ErrInvalidPeriod", tt.year, tt.month, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("FromYearMonth(%d, %d) unexpected error: %v", tt.year, tt.month, err)
			}
			if date.Year() != tt.year || date.Month() != tt.month {
				t.Errorf("got %d-%02d, want %d-%02d", date.Year(), date.Month(), tt.year, tt.month)
			}
		})
	}
}

func TestParse(t *testing.T) {
	date, err := Parse("2025-06")
	if err != nil {
		t.Fatalf("Parse(2025-06) unexpected error: %v", err)
	}
	if date.Year() != 2025 || date.Month() != 6 {
		t.Errorf("Parse(2025-06) = %s", date)
	}

	for _, bad := range []string{"", "2025", "2025-13", "06-2025", "2025-06-01", "not a date"} {
		if _, err := Parse(bad); !errors.Is(err, ErrInvalidPeriod) {
			t.Errorf("Parse(%q) error = %v, want ErrInvalidPeriod", bad, err)
		}
	}
}

func TestAddMonths(t *testing.T) {
	tests := []struct {
		name   string
		start  string
		months int
		want   string
	}{
		{
			name:   "Within a year",
			start:  "2025-01",
			months: 5,
			want:   "2025-06",
		},
		{
			name:   "Year rollover",
			start:  "2025-11",
			months: 3,
			want:   "2026-02",
		},
		{
			name:   "Multi-year step",
			start:  "2025-01",
			months: 359,
			want:   "2054-12",
		},
		{
			name:   "Backward across year boundary",
			start:  "2025-02",
			months: -3,
			want:   "2024-11",
		},
		{
			name:   "Zero is identity",
			start:  "2025-07",
			months: 0,
			want:   "2025-07",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, err := Parse(tt.start)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.start, err)
			}
			if got := start.AddMonths(tt.months).String(); got != tt.want {
				t.Errorf("%s + %d months = %s, want %s", tt.start, tt.months, got, tt.want)
			}
		})
	}
}

func TestComparisons(t *testing.T) {
	early, _ := Parse("2025-01")
	late, _ := Parse("2025-02")
	nextYear, _ := Parse("2026-01")

	if !early.Before(late) {
		t.Error("expected 2025-01 before 2025-02")
	}
	if !late.After(early) {
		t.Error("expected 2025-02 after 2025-01")
	}
	if !early.Before(nextYear) {
		t.Error("expected 2025-01 before 2026-01")
	}
	if !early.Equal(early) {
		t.Error("expected 2025-01 equal to itself")
	}
	if early.Equal(late) {
		t.Error("expected 2025-01 not equal to 2025-02")
	}
}

func TestAt(t *testing.T) {
	now := time.Date(2025, time.March, 17, 14, 30, 0, 0, time.UTC)
	date := At(now)
	if date.Year() != 2025 || date.Month() != 3 {
		t.Errorf("At() = %s, want 2025-03", date)
	}
}

func TestDisplay(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		display string
		short   string
		machine string
	}{
		{
			name:    "January",
			value:   "2025-01",
			display: "styczeń 2025",
			short:   "01.2025",
			machine: "2025-01",
		},
		{
			name:    "December",
			value:   "2030-12",
			display: "grudzień 2030",
			short:   "12.2030",
			machine: "2030-12",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			date, err := Parse(tt.value)
			if err != nil {
				t.Fatalf("Parse(%q) unexpected error: %v", tt.value, err)
			}
			if got := date.Display(); got != tt.display {
				t.Errorf("Display() = %q, want %q", got, tt.display)
			}
			if got := date.Short(); got != tt.short {
				t.Errorf("Short() = %q, want %q", got, tt.short)
			}
			if got := date.String(); got != tt.machine {
				t.Errorf("String() = %q, want %q", got, tt.machine)
			}
		})
	}
}

func TestMarshalJSON(t *testing.T) {
	date, _ := Parse("2025-06")
	data, err := date.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON() unexpected error: %v", err)
	}
	if string(data) != `"2025-06"` {
		t.Errorf("MarshalJSON() = %s, want %q", data, "2025-06")
	}
}
