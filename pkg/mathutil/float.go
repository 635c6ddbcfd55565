// Package mathutil provides common mathematical utility functions.
package mathutil

import (
	"math"

	"github.com/iwvelando/mortgage-planner/pkg/constants"
)

// Round rounds a value to two decimals, i.e. to represent real currency.
// Rounding is half away from zero on the cent.
func Round(val float64) float64 {
	return math.Round(val*100) / 100
}

// IsFinite reports whether a value is neither NaN nor infinite.
func IsFinite(val float64) bool {
	return !math.IsNaN(val) && !math.IsInf(val, 0)
}

// IsWholeNumber reports whether a value has no fractional part.
func IsWholeNumber(val float64) bool {
	return IsFinite(val) && val == math.Trunc(val)
}

// ApplyPercentage applies a percentage to a value.
func ApplyPercentage(value, percentage float64) float64 {
	return value * (percentage / constants.PercentageMultiplier)
}
