// Package period provides the billing period date value object. A period date
// is always the first day of a month; stepping by months performs
// calendar-correct rollover.
package period

import (
	"errors"
	"fmt"
	"time"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
)

// ErrInvalidPeriod indicates an unparseable period date or a period number
// outside the valid range for a loan's term.
var ErrInvalidPeriod = errors.New("invalid period")

// Months in Polish, indexed by time.Month.
var polishMonths = [13]string{
	"",
	"styczeń", "luty", "marzec", "kwiecień", "maj", "czerwiec",
	"lipiec", "sierpień", "wrzesień", "październik", "listopad", "grudzień",
}

// Date is an immutable first-of-month date.
type Date struct {
	year  int
	month time.Month
}

// FromYearMonth constructs a period date from a year and a 1-indexed month.
func FromYearMonth(year, month int) (Date, error) {
	if year < 1 {
		return Date{}, fmt.Errorf("%w: year %d", ErrInvalidPeriod, year)
	}
	if month < 1 || month > constants.MonthsPerYear {
		return Date{}, fmt.Errorf("%w: month %d", ErrInvalidPeriod, month)
	}
	return Date{year: year, month: time.Month(month)}, nil
}

// FromTime constructs a period date from any calendar timestamp, normalized
// to the first of its month.
func FromTime(t time.Time) Date {
	return Date{year: t.Year(), month: t.Month()}
}

// At returns the period containing the given clock reading. The caller
// injects the current time so the engine stays deterministic.
func At(now time.Time) Date {
	return FromTime(now)
}

// Parse reads a "YYYY-MM" formatted period date.
func Parse(value string) (Date, error) {
	t, err := time.Parse(constants.DateTimeLayout, value)
	if err != nil {
		return Date{}, fmt.Errorf("%w: %q", ErrInvalidPeriod, value)
	}
	return FromTime(t), nil
}

// Year returns the calendar year.
func (d Date) Year() int {
	return d.year
}

// Month returns the 1-indexed calendar month.
func (d Date) Month() int {
	return int(d.month)
}

// Time returns the first of the month at midnight UTC.
func (d Date) Time() time.Time {
	return time.Date(d.year, d.month, 1, 0, 0, 0, 0, time.UTC)
}

// AddMonths steps the date by the given number of months, which may be
// negative. Year carry is handled by the calendar.
func (d Date) AddMonths(months int) Date {
	return FromTime(d.Time().AddDate(0, months, 0))
}

// Before reports whether d precedes other.
func (d Date) Before(other Date) bool {
	return d.year < other.year || (d.year == other.year && d.month < other.month)
}

// After reports whether d follows other.
func (d Date) After(other Date) bool {
	return other.Before(d)
}

// Equal reports whether two period dates denote the same month.
func (d Date) Equal(other Date) bool {
	return d.year == other.year && d.month == other.month
}

// Display formats the date in long Polish form, e.g. "styczeń 2025".
func (d Date) Display() string {
	return fmt.Sprintf("%s %d", polishMonths[d.month], d.year)
}

// Short formats the date as "MM.YYYY", e.g. "01.2025".
func (d Date) Short() string {
	return fmt.Sprintf("%02d.%d", int(d.month), d.year)
}

// String returns the machine-readable "YYYY-MM" form.
func (d Date) String() string {
	return d.Time().Format(constants.DateTimeLayout)
}

// MarshalJSON encodes the date as its "YYYY-MM" string form.
func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", d.String())), nil
}
