// Package format renders amounts for human-readable output.
package format

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Currency returns a currency string with a dollar sign and thousands separators (e.g., "-$1,234.56").
func Currency(amount float64) string {
	if amount < 0 {
		return "-$" + NumericCurrency(-amount)
	}
	return "$" + NumericCurrency(amount)
}

// NumericCurrency returns a currency string without a currency symbol but with separators (e.g., "-1,234.56").
func NumericCurrency(amount float64) string {
	if math.IsNaN(amount) || math.IsInf(amount, 0) {
		return printer.Sprint(amount)
	}
	// Avoid printing "-0.00" for tiny negatives.
	if math.Abs(amount) < 0.005 {
		amount = 0
	}
	return printer.Sprintf("%.2f", amount)
}

// Percent returns a percentage with two decimals (e.g., "54.34%").
func Percent(value float64) string {
	return printer.Sprintf("%.2f%%", value)
}
