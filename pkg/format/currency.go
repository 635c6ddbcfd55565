// Package format provides locale-aware display formatting for monetary values
// and loan terms. All output uses Polish conventions (space grouping, comma
// decimal separator, "zł" suffix).
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.Polish)

// Currency returns a whole-złoty currency string with grouping, e.g. "1 235 zł".
// The amount is rounded half away from zero to zero fraction digits.
func Currency(amount float64) string {
	rounded := int64(math.Round(math.Abs(amount)))
	if amount < 0 {
		rounded = -rounded
	}
	return printer.Sprintf("%d zł", rounded)
}

// Amount returns a currency string keeping two fraction digits, e.g. "2 838,95 zł".
func Amount(amount float64) string {
	return printer.Sprintf("%.2f zł", amount)
}

// Number returns a grouped number without a currency suffix, e.g. "1 234,56".
func Number(amount float64) string {
	return printer.Sprintf("%.2f", amount)
}
